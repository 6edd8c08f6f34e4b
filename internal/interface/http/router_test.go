package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-proxy/internal/domain/chat"
	"github.com/yanqian/travel-proxy/internal/domain/geocode"
	"github.com/yanqian/travel-proxy/internal/domain/poi"
	"github.com/yanqian/travel-proxy/internal/domain/translate"
	"github.com/yanqian/travel-proxy/internal/domain/weather"
	"github.com/yanqian/travel-proxy/internal/infra/config"
	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
	"github.com/yanqian/travel-proxy/pkg/metrics"
)

func TestRouter_Health(t *testing.T) {
	cfg := testConfig()
	cfg.Weather.APIKey = "owm-key"
	server := newRouterUnderTest(t, cfg, &stubServices{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "healthy", got.Status)
	require.NotEmpty(t, got.Timestamp)
	require.Equal(t, map[string]bool{"openweathermap": true, "huggingface": false}, got.Services)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_TranslateSuccess(t *testing.T) {
	svc := &stubServices{
		translateFn: func(ctx context.Context, req translate.Request) (translate.Response, error) {
			require.Equal(t, "hello", req.Text)
			require.Equal(t, "en", req.SourceLang)
			require.Equal(t, "vi", req.TargetLang)
			return translate.Response{OriginalText: "hello", TranslatedText: "xin chào", SourceLanguage: "en", TargetLanguage: "vi"}, nil
		},
	}

	rec := performRequest("/api/translate", `{"text":"hello","source_lang":"en","target_lang":"vi"}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusOK, rec.Code)

	var got translate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "xin chào", got.TranslatedText)
	require.Equal(t, "vi", got.TargetLanguage)
}

func TestRouter_TranslateInvalidJSON(t *testing.T) {
	rec := performRequest("/api/translate", `{"text":123}`, newRouterUnderTest(t, testConfig(), &stubServices{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_TranslateUpstreamFailure(t *testing.T) {
	svc := &stubServices{
		translateFn: func(ctx context.Context, req translate.Request) (translate.Response, error) {
			return translate.Response{}, apperrors.Wrap(apperrors.CodeUpstream, "translation failed", errors.New("timeout"))
		},
	}

	rec := performRequest("/api/translate", `{"text":"a","source_lang":"en","target_lang":"vi"}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "translate_failed", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "translation failed")
}

func TestRouter_WeatherMissingKey(t *testing.T) {
	svc := &stubServices{
		currentFn: func(ctx context.Context, req weather.CurrentRequest) (weather.CurrentResponse, error) {
			return weather.CurrentResponse{}, apperrors.Wrap(apperrors.CodeConfig, "OpenWeatherMap API key not configured", nil)
		},
	}

	rec := performRequest("/api/weather/current", `{"lat":21.03,"lon":105.85,"city_name":"Hà Nội"}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "config_error", errBody["error"]["code"])
}

func TestRouter_ForecastInvalidInput(t *testing.T) {
	svc := &stubServices{
		forecastFn: func(ctx context.Context, req weather.ForecastRequest) (weather.ForecastResponse, error) {
			require.Nil(t, req.Lat)
			return weather.ForecastResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "lat and lon are required", nil)
		},
	}

	rec := performRequest("/api/weather/forecast", `{}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "forecast_failed", errBody["error"]["code"])
}

func TestRouter_GeocodeNotFound(t *testing.T) {
	svc := &stubServices{
		geocodeFn: func(ctx context.Context, req geocode.Request) (geocode.Response, error) {
			require.Equal(t, "Atlantis", req.Location)
			return geocode.Response{}, apperrors.Wrap(apperrors.CodeNotFound, "location not found", nil)
		},
	}

	rec := performRequest("/api/geocode", `{"location":"Atlantis"}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusNotFound, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "not_found", errBody["error"]["code"])
	require.Equal(t, "location not found", errBody["error"]["message"])
}

func TestRouter_POISuccess(t *testing.T) {
	svc := &stubServices{
		poiFn: func(ctx context.Context, req poi.Request) (poi.Response, error) {
			require.NotNil(t, req.Lat)
			require.Equal(t, 0, req.Radius)
			return poi.Response{POIs: []poi.POI{{ID: "1", Name: "Chùa Một Cột", Type: "historic", Tags: map[string]string{}}}}, nil
		},
	}

	rec := performRequest("/api/poi", `{"lat":21.0359,"lon":105.8336}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"pois":[`)
	require.Contains(t, rec.Body.String(), `"tags":{}`)
}

func TestRouter_ChatSuccess(t *testing.T) {
	svc := &stubServices{
		chatFn: func(ctx context.Context, req chat.Request) (chat.Response, error) {
			require.Equal(t, "xin chào", req.Message)
			return chat.Response{Reply: "Chào bạn!", SessionID: "s1", Timestamp: "2024-07-01T00:00:00Z"}, nil
		},
	}

	rec := performRequest("/api/chat", `{"message":"xin chào","session_id":"s1"}`, newRouterUnderTest(t, testConfig(), svc))
	require.Equal(t, http.StatusOK, rec.Code)

	var got chat.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Chào bạn!", got.Reply)
	require.Equal(t, "s1", got.SessionID)
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), &stubServices{})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRouter_MetricsExposeRequestCounts(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), &stubServices{})

	rec := performRequest("/api/poi", `{"lat":1,"lon":2}`, server)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	server.Handler.ServeHTTP(metricsRec, req)
	require.Equal(t, http.StatusOK, metricsRec.Code)
	require.Contains(t, metricsRec.Body.String(), `travel_proxy_http_requests_total{method="POST",route="/api/poi",status="200"} 1`)
}

func performRequest(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			CORSOrigins:  []string{"*"},
		},
	}
}

func newRouterUnderTest(t *testing.T, cfg *config.Config, svc *stubServices) *http.Server {
	t.Helper()
	handler := NewHandler(cfg, svc, svc, svc, svc, svc, newTestLogger())
	return NewRouter(cfg, handler, metrics.New())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

// stubServices satisfies every domain service interface the handler depends on.
type stubServices struct {
	translateFn func(ctx context.Context, req translate.Request) (translate.Response, error)
	currentFn   func(ctx context.Context, req weather.CurrentRequest) (weather.CurrentResponse, error)
	forecastFn  func(ctx context.Context, req weather.ForecastRequest) (weather.ForecastResponse, error)
	geocodeFn   func(ctx context.Context, req geocode.Request) (geocode.Response, error)
	poiFn       func(ctx context.Context, req poi.Request) (poi.Response, error)
	chatFn      func(ctx context.Context, req chat.Request) (chat.Response, error)
}

func (s *stubServices) Translate(ctx context.Context, req translate.Request) (translate.Response, error) {
	if s.translateFn != nil {
		return s.translateFn(ctx, req)
	}
	return translate.Response{}, nil
}

func (s *stubServices) Current(ctx context.Context, req weather.CurrentRequest) (weather.CurrentResponse, error) {
	if s.currentFn != nil {
		return s.currentFn(ctx, req)
	}
	return weather.CurrentResponse{}, nil
}

func (s *stubServices) Forecast(ctx context.Context, req weather.ForecastRequest) (weather.ForecastResponse, error) {
	if s.forecastFn != nil {
		return s.forecastFn(ctx, req)
	}
	return weather.ForecastResponse{Forecast: []weather.ForecastItem{}}, nil
}

func (s *stubServices) Geocode(ctx context.Context, req geocode.Request) (geocode.Response, error) {
	if s.geocodeFn != nil {
		return s.geocodeFn(ctx, req)
	}
	return geocode.Response{}, nil
}

func (s *stubServices) Search(ctx context.Context, req poi.Request) (poi.Response, error) {
	if s.poiFn != nil {
		return s.poiFn(ctx, req)
	}
	return poi.Response{POIs: []poi.POI{}}, nil
}

func (s *stubServices) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	if s.chatFn != nil {
		return s.chatFn(ctx, req)
	}
	return chat.Response{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
