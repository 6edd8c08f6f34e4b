package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-proxy/internal/domain/chat"
	"github.com/yanqian/travel-proxy/internal/domain/geocode"
	"github.com/yanqian/travel-proxy/internal/domain/poi"
	"github.com/yanqian/travel-proxy/internal/domain/translate"
	"github.com/yanqian/travel-proxy/internal/domain/weather"
	"github.com/yanqian/travel-proxy/internal/infra/config"
	"github.com/yanqian/travel-proxy/pkg/util"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	translateSvc translate.Service
	weatherSvc   weather.Service
	geocodeSvc   geocode.Service
	poiSvc       poi.Service
	chatSvc      chat.Service
	cfg          *config.Config
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	cfg *config.Config,
	translateSvc translate.Service,
	weatherSvc weather.Service,
	geocodeSvc geocode.Service,
	poiSvc poi.Service,
	chatSvc chat.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		translateSvc: translateSvc,
		weatherSvc:   weatherSvc,
		geocodeSvc:   geocodeSvc,
		poiSvc:       poiSvc,
		chatSvc:      chatSvc,
		cfg:          cfg,
		logger:       logger.With("component", "http.handler"),
	}
}

// HealthResponse reports liveness plus which upstream credentials are present.
type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: util.ISOTimestamp(util.NowUTC()),
		Services: map[string]bool{
			"openweathermap": h.cfg.Weather.APIKey != "",
			"huggingface":    h.cfg.Chat.APIToken != "",
		},
	})
}

// Translate handles POST /api/translate.
func (h *Handler) Translate(c *gin.Context) {
	var req translate.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.translateSvc.Translate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("translate_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CurrentWeather handles POST /api/weather/current.
func (h *Handler) CurrentWeather(c *gin.Context) {
	var req weather.CurrentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.weatherSvc.Current(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("weather_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Forecast handles POST /api/weather/forecast.
func (h *Handler) Forecast(c *gin.Context) {
	var req weather.ForecastRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.weatherSvc.Forecast(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("forecast_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Geocode handles POST /api/geocode.
func (h *Handler) Geocode(c *gin.Context) {
	var req geocode.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.geocodeSvc.Geocode(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("geocode_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POI handles POST /api/poi.
func (h *Handler) POI(c *gin.Context) {
	var req poi.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.poiSvc.Search(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("poi_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Chat handles POST /api/chat. Upstream failures arrive as canned replies with status 200.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.chatSvc.Chat(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("chat_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}
