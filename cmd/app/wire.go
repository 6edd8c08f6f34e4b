//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/travel-proxy/internal/bootstrap"
	"github.com/yanqian/travel-proxy/internal/domain/chat"
	"github.com/yanqian/travel-proxy/internal/domain/geocode"
	"github.com/yanqian/travel-proxy/internal/domain/poi"
	"github.com/yanqian/travel-proxy/internal/domain/translate"
	"github.com/yanqian/travel-proxy/internal/domain/weather"
	"github.com/yanqian/travel-proxy/internal/infra/config"
	"github.com/yanqian/travel-proxy/internal/infra/geo/nominatim"
	"github.com/yanqian/travel-proxy/internal/infra/llm/chatgpt"
	overpassclient "github.com/yanqian/travel-proxy/internal/infra/poi/overpass"
	"github.com/yanqian/travel-proxy/internal/infra/translate/gtx"
	"github.com/yanqian/travel-proxy/internal/infra/weather/owm"
	httpiface "github.com/yanqian/travel-proxy/internal/interface/http"
	"github.com/yanqian/travel-proxy/pkg/logger"
	"github.com/yanqian/travel-proxy/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideTranslateClient,
		provideWeatherConfig,
		provideWeatherClient,
		provideGeocodeConfig,
		provideGeocodeClient,
		providePOIConfig,
		providePOIClient,
		provideChatConfig,
		provideChatGPTClient,
		provideSessionStore,
		translate.NewService,
		weather.NewService,
		geocode.NewService,
		poi.NewService,
		chat.NewService,
		wire.Bind(new(translate.Client), new(*gtx.Client)),
		wire.Bind(new(weather.Provider), new(*owm.Client)),
		wire.Bind(new(geocode.Client), new(*nominatim.Client)),
		wire.Bind(new(poi.Client), new(*overpassclient.Client)),
		wire.Bind(new(chat.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
