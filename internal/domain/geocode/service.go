package geocode

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
)

// Service resolves free-text locations to coordinates.
type Service interface {
	Geocode(ctx context.Context, req Request) (Response, error)
}

// Client is implemented by geocoding providers.
type Client interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
}

type service struct {
	cfg    Config
	client Client
	logger *slog.Logger
}

// NewService wires up the geocode domain.
func NewService(cfg Config, client Client, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, logger: logger.With("component", "geocode.service")}
}

func (s *service) Geocode(ctx context.Context, req Request) (Response, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "location cannot be empty", nil)
	}

	places, err := s.client.Search(ctx, s.query(location), 1)
	if err != nil {
		s.logger.Error("geocoding failed", "location", location, "error", err)
		return Response{}, apperrors.Wrap(apperrors.CodeUpstream, "geocoding failed", err)
	}
	if len(places) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeNotFound, "location not found", nil)
	}

	best := places[0]
	return Response{Lat: best.Lat, Lon: best.Lon}, nil
}

func (s *service) query(location string) string {
	suffix := strings.TrimSpace(s.cfg.CountrySuffix)
	if suffix == "" {
		return location
	}
	return location + ", " + suffix
}
