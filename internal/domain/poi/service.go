package poi

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
	"github.com/yanqian/travel-proxy/pkg/util"
)

const (
	defaultRadius = 2000
	defaultLimit  = 5
)

// Service finds tourist points of interest around a coordinate.
type Service interface {
	Search(ctx context.Context, req Request) (Response, error)
}

// Client is implemented by spatial data providers.
type Client interface {
	Search(ctx context.Context, q Query) ([]Element, error)
}

type service struct {
	cfg    Config
	client Client
	logger *slog.Logger
}

// NewService wires up the POI domain.
func NewService(cfg Config, client Client, logger *slog.Logger) Service {
	if cfg.DefaultRadius <= 0 {
		cfg.DefaultRadius = defaultRadius
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	return &service{cfg: cfg, client: client, logger: logger.With("component", "poi.service")}
}

func (s *service) Search(ctx context.Context, req Request) (Response, error) {
	lat, lon, err := util.Coordinates(req.Lat, req.Lon)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}
	radius := req.Radius
	if radius <= 0 {
		radius = s.cfg.DefaultRadius
	}

	elements, err := s.client.Search(ctx, Query{Lat: lat, Lon: lon, Radius: radius, Limit: s.cfg.Limit})
	if err != nil {
		s.logger.Error("poi search failed", "lat", lat, "lon", lon, "radius", radius, "error", err)
		return Response{}, apperrors.Wrap(apperrors.CodeUpstream, "POI fetch failed", err)
	}
	if len(elements) > s.cfg.Limit {
		elements = elements[:s.cfg.Limit]
	}

	pois := make([]POI, 0, len(elements))
	for _, el := range elements {
		pois = append(pois, toPOI(el))
	}
	s.logger.Debug("poi search completed", "results", len(pois))
	return Response{POIs: pois}, nil
}
