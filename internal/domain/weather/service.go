package weather

import (
	"context"
	"log/slog"
	"math"
	"strings"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
	"github.com/yanqian/travel-proxy/pkg/util"
)

const defaultForecastCount = 5

// Service exposes current conditions and short forecasts.
type Service interface {
	Current(ctx context.Context, req CurrentRequest) (CurrentResponse, error)
	Forecast(ctx context.Context, req ForecastRequest) (ForecastResponse, error)
}

// Provider is implemented by weather upstreams.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (Conditions, error)
	Forecast(ctx context.Context, lat, lon float64, count int) ([]ForecastPoint, error)
}

type service struct {
	cfg      Config
	provider Provider
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(cfg Config, provider Provider, logger *slog.Logger) Service {
	if cfg.ForecastCount <= 0 {
		cfg.ForecastCount = defaultForecastCount
	}
	return &service{cfg: cfg, provider: provider, logger: logger.With("component", "weather.service")}
}

func (s *service) Current(ctx context.Context, req CurrentRequest) (CurrentResponse, error) {
	if err := s.requireKey(); err != nil {
		return CurrentResponse{}, err
	}
	lat, lon, err := util.Coordinates(req.Lat, req.Lon)
	if err != nil {
		return CurrentResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}

	cond, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		s.logger.Error("current weather fetch failed", "lat", lat, "lon", lon, "error", err)
		return CurrentResponse{}, apperrors.Wrap(apperrors.CodeUpstream, "weather fetch failed", err)
	}

	return CurrentResponse{
		Temperature: roundTemp(cond.Temperature),
		Humidity:    cond.Humidity,
		WindSpeed:   cond.WindSpeed,
		Description: cond.Description,
		Icon:        cond.Icon,
		CityName:    req.CityName,
	}, nil
}

func (s *service) Forecast(ctx context.Context, req ForecastRequest) (ForecastResponse, error) {
	if err := s.requireKey(); err != nil {
		return ForecastResponse{}, err
	}
	lat, lon, err := util.Coordinates(req.Lat, req.Lon)
	if err != nil {
		return ForecastResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}

	points, err := s.provider.Forecast(ctx, lat, lon, s.cfg.ForecastCount)
	if err != nil {
		s.logger.Error("forecast fetch failed", "lat", lat, "lon", lon, "error", err)
		return ForecastResponse{}, apperrors.Wrap(apperrors.CodeUpstream, "forecast fetch failed", err)
	}
	if len(points) > s.cfg.ForecastCount {
		points = points[:s.cfg.ForecastCount]
	}

	items := make([]ForecastItem, 0, len(points))
	for _, pt := range points {
		items = append(items, ForecastItem{
			Time:        pt.Time,
			Temperature: roundTemp(pt.Temperature),
			Description: pt.Description,
			Icon:        pt.Icon,
		})
	}
	return ForecastResponse{Forecast: items}, nil
}

func (s *service) requireKey() error {
	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return apperrors.Wrap(apperrors.CodeConfig, "OpenWeatherMap API key not configured", nil)
	}
	return nil
}

func roundTemp(v float64) int {
	return int(math.Round(v))
}
