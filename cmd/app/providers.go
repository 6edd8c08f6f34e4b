package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-proxy/internal/domain/chat"
	"github.com/yanqian/travel-proxy/internal/domain/geocode"
	"github.com/yanqian/travel-proxy/internal/domain/poi"
	"github.com/yanqian/travel-proxy/internal/domain/weather"
	"github.com/yanqian/travel-proxy/internal/infra/config"
	"github.com/yanqian/travel-proxy/internal/infra/geo/nominatim"
	"github.com/yanqian/travel-proxy/internal/infra/llm/chatgpt"
	"github.com/yanqian/travel-proxy/internal/infra/poi/overpass"
	"github.com/yanqian/travel-proxy/internal/infra/sessionstore"
	"github.com/yanqian/travel-proxy/internal/infra/translate/gtx"
	"github.com/yanqian/travel-proxy/internal/infra/weather/owm"
	"github.com/yanqian/travel-proxy/pkg/metrics"
)

func upstreamHTTPClient(collector *metrics.Collector, provider string, timeout time.Duration) *http.Client {
	return collector.InstrumentClient(provider, &http.Client{Timeout: timeout})
}

func provideTranslateClient(cfg *config.Config, collector *metrics.Collector) *gtx.Client {
	return gtx.NewClient(cfg.Translate.BaseURL, upstreamHTTPClient(collector, "translate", cfg.Translate.Timeout))
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{APIKey: cfg.Weather.APIKey, ForecastCount: 5}
}

func provideWeatherClient(cfg *config.Config, collector *metrics.Collector) *owm.Client {
	return owm.NewClient(owm.Options{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Units:   cfg.Weather.Units,
		Lang:    cfg.Weather.Lang,
	}, upstreamHTTPClient(collector, "openweathermap", cfg.Weather.Timeout))
}

func provideGeocodeConfig(cfg *config.Config) geocode.Config {
	return geocode.Config{CountrySuffix: cfg.Geocode.CountrySuffix}
}

func provideGeocodeClient(cfg *config.Config, collector *metrics.Collector) *nominatim.Client {
	return nominatim.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, upstreamHTTPClient(collector, "nominatim", cfg.Geocode.Timeout))
}

func providePOIConfig(cfg *config.Config) poi.Config {
	return poi.Config{DefaultRadius: cfg.POI.DefaultRadius, Limit: cfg.POI.Limit}
}

func providePOIClient(cfg *config.Config, collector *metrics.Collector) *overpass.Client {
	return overpass.NewClient(cfg.POI.BaseURL, upstreamHTTPClient(collector, "overpass", cfg.POI.Timeout))
}

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		APIToken:      cfg.Chat.APIToken,
		Model:         cfg.Chat.Model,
		MaxTokens:     cfg.Chat.MaxTokens,
		Temperature:   cfg.Chat.Temperature,
		HistoryLimit:  cfg.Chat.HistoryLimit,
		ContextWindow: cfg.Chat.ContextWindow,
	}
}

func provideChatGPTClient(cfg *config.Config, collector *metrics.Collector) *chatgpt.Client {
	return chatgpt.NewClient(cfg.Chat.APIToken, cfg.Chat.BaseURL, upstreamHTTPClient(collector, "huggingface", cfg.Chat.Timeout))
}

// provideSessionStore falls back to process memory whenever Valkey is disabled or unreachable.
func provideSessionStore(cfg *config.Config, logger *slog.Logger) (chat.SessionStore, func(), error) {
	noop := func() {}
	if !cfg.Sessions.Valkey.Enabled {
		return sessionstore.NewMemoryStore(), noop, nil
	}
	opt, err := buildValkeyOptions(cfg.Sessions.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop, nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return sessionstore.NewMemoryStore(), noop, nil
	}
	logger.Info("chat valkey session store enabled", "addr", cfg.Sessions.Valkey.Addr, "ttl", cfg.Sessions.Valkey.TTL.String())
	store := sessionstore.NewValkeyStore(client, "chat", cfg.Sessions.Valkey.TTL)
	return store, store.Close, nil
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
