package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-proxy/internal/infra/config"
	"github.com/yanqian/travel-proxy/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		metricsMiddleware(collector),
		corsMiddleware(cfg.HTTP),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	api := router.Group("/api")
	{
		api.POST("/translate", handler.Translate)
		api.POST("/weather/current", handler.CurrentWeather)
		api.POST("/weather/forecast", handler.Forecast)
		api.POST("/geocode", handler.Geocode)
		api.POST("/poi", handler.POI)
		api.POST("/chat", handler.Chat)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
