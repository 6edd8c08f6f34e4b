package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Translate TranslateConfig `yaml:"translate"`
	Weather   WeatherConfig   `yaml:"weather"`
	Geocode   GeocodeConfig   `yaml:"geocode"`
	POI       POIConfig       `yaml:"poi"`
	Chat      ChatConfig      `yaml:"chat"`
	Sessions  SessionsConfig  `yaml:"sessions"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
}

// TranslateConfig points at the public translation endpoint.
type TranslateConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// WeatherConfig contains OpenWeatherMap settings.
type WeatherConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Units   string        `yaml:"units"`
	Lang    string        `yaml:"lang"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeocodeConfig contains Nominatim settings.
type GeocodeConfig struct {
	BaseURL       string        `yaml:"baseUrl"`
	CountrySuffix string        `yaml:"countrySuffix"`
	UserAgent     string        `yaml:"userAgent"`
	Timeout       time.Duration `yaml:"timeout"`
}

// POIConfig contains Overpass settings.
type POIConfig struct {
	BaseURL       string        `yaml:"baseUrl"`
	DefaultRadius int           `yaml:"defaultRadius"`
	Limit         int           `yaml:"limit"`
	Timeout       time.Duration `yaml:"timeout"`
}

// ChatConfig contains the OpenAI-compatible chat provider settings.
type ChatConfig struct {
	APIToken      string        `yaml:"apiToken"`
	BaseURL       string        `yaml:"baseUrl"`
	Model         string        `yaml:"model"`
	MaxTokens     int           `yaml:"maxTokens"`
	Temperature   float32       `yaml:"temperature"`
	HistoryLimit  int           `yaml:"historyLimit"`
	ContextWindow int           `yaml:"contextWindow"`
	Timeout       time.Duration `yaml:"timeout"`
}

// SessionsConfig selects the chat session backend.
type SessionsConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the shared session store.
type ValkeyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
}

// Load reads configuration from a YAML file and environment variables. A local .env
// file, when present, is merged into the environment without overriding set variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HTTP_ADDRESS") == "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("TRANSLATE_BASE_URL"); v != "" {
		cfg.Translate.BaseURL = v
	}
	// Credentials are taken verbatim, an empty variable clears a file value.
	if v, ok := os.LookupEnv("OPENWEATHERMAP_API_KEY"); ok {
		cfg.Weather.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_LANG"); v != "" {
		cfg.Weather.Lang = v
	}
	if v := os.Getenv("WEATHER_UNITS"); v != "" {
		cfg.Weather.Units = v
	}
	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		cfg.Geocode.BaseURL = v
	}
	if v := os.Getenv("GEOCODE_COUNTRY_SUFFIX"); v != "" {
		cfg.Geocode.CountrySuffix = v
	}
	if v := os.Getenv("GEOCODE_USER_AGENT"); v != "" {
		cfg.Geocode.UserAgent = v
	}
	if v := os.Getenv("POI_BASE_URL"); v != "" {
		cfg.POI.BaseURL = v
	}
	if v := os.Getenv("POI_DEFAULT_RADIUS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.POI.DefaultRadius = parsed
		}
	}
	if v, ok := os.LookupEnv("HF_API_TOKEN"); ok {
		cfg.Chat.APIToken = strings.TrimSpace(v)
	}
	if v := os.Getenv("HF_MODEL"); v != "" {
		cfg.Chat.Model = v
	}
	if v := os.Getenv("CHAT_BASE_URL"); v != "" {
		cfg.Chat.BaseURL = v
	}
	if v := os.Getenv("CHAT_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.MaxTokens = parsed
		}
	}
	if v := os.Getenv("CHAT_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Chat.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("SESSIONS_VALKEY_ENABLED"); v != "" {
		cfg.Sessions.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SESSIONS_VALKEY_ADDR"); v != "" {
		cfg.Sessions.Valkey.Addr = v
	}
	if v := os.Getenv("SESSIONS_VALKEY_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Sessions.Valkey.TTL = parsed
		}
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 45 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Translate: TranslateConfig{
			BaseURL: "https://translate.googleapis.com",
			Timeout: 10 * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org",
			Units:   "metric",
			Lang:    "vi",
			Timeout: 10 * time.Second,
		},
		Geocode: GeocodeConfig{
			BaseURL:       "https://nominatim.openstreetmap.org",
			CountrySuffix: "Vietnam",
			UserAgent:     "POI-VN-App/1.0",
			Timeout:       10 * time.Second,
		},
		POI: POIConfig{
			BaseURL:       "https://overpass-api.de",
			DefaultRadius: 2000,
			Limit:         5,
			Timeout:       30 * time.Second,
		},
		Chat: ChatConfig{
			BaseURL:       "https://router.huggingface.co/v1",
			Model:         "meta-llama/Llama-3.2-3B-Instruct",
			MaxTokens:     150,
			Temperature:   0.7,
			HistoryLimit:  20,
			ContextWindow: 10,
			Timeout:       30 * time.Second,
		},
		Sessions: SessionsConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				TTL:     24 * time.Hour,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Translate.BaseURL) == "" {
		return errors.New("translate.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Weather.BaseURL) == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Geocode.BaseURL) == "" {
		return errors.New("geocode.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.POI.BaseURL) == "" {
		return errors.New("poi.baseUrl cannot be empty")
	}
	if c.POI.DefaultRadius <= 0 {
		return errors.New("poi.defaultRadius must be positive")
	}
	if c.POI.Limit <= 0 {
		return errors.New("poi.limit must be positive")
	}
	if strings.TrimSpace(c.Chat.Model) == "" {
		return errors.New("chat.model cannot be empty")
	}
	if c.Chat.MaxTokens <= 0 {
		return errors.New("chat.maxTokens must be positive")
	}
	if c.Chat.HistoryLimit <= 0 {
		return errors.New("chat.historyLimit must be positive")
	}
	if c.Chat.ContextWindow <= 0 || c.Chat.ContextWindow > c.Chat.HistoryLimit {
		return errors.New("chat.contextWindow must be positive and not exceed chat.historyLimit")
	}
	for name, timeout := range map[string]time.Duration{
		"translate.timeout": c.Translate.Timeout,
		"weather.timeout":   c.Weather.Timeout,
		"geocode.timeout":   c.Geocode.Timeout,
		"poi.timeout":       c.POI.Timeout,
		"chat.timeout":      c.Chat.Timeout,
	} {
		if timeout <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Sessions.Valkey.Enabled && strings.TrimSpace(c.Sessions.Valkey.Addr) == "" {
		return errors.New("sessions.valkey.addr cannot be empty when valkey sessions are enabled")
	}
	if c.Sessions.Valkey.TTL < 0 {
		return errors.New("sessions.valkey.ttl cannot be negative")
	}
	return nil
}
