package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/travel-proxy/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Options configures the OpenWeatherMap client.
type Options struct {
	APIKey  string
	BaseURL string
	Units   string
	Lang    string
}

// Client fetches current conditions and forecasts from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	units      string
	lang       string
	httpClient *http.Client
}

type httpStatusError struct {
	status int
	body   string
}

func (e httpStatusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("weather API returned status %d", e.status)
	}
	return fmt.Sprintf("weather API returned status %d: %s", e.status, e.body)
}

// NewClient builds an OpenWeatherMap client.
func NewClient(opts Options, httpClient *http.Client) *Client {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	units := opts.Units
	if units == "" {
		units = "metric"
	}
	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    strings.TrimRight(base, "/"),
		units:      units,
		lang:       opts.Lang,
		httpClient: httpClient,
	}
}

// Current implements weather.Provider.
func (c *Client) Current(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
	var raw currentResponse
	if err := c.getJSON(ctx, "/data/2.5/weather", c.params(lat, lon), &raw); err != nil {
		return weather.Conditions{}, fmt.Errorf("fetching current weather: %w", err)
	}
	return raw.normalize(), nil
}

// Forecast implements weather.Provider.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, count int) ([]weather.ForecastPoint, error) {
	params := c.params(lat, lon)
	if count > 0 {
		params.Set("cnt", strconv.Itoa(count))
	}
	var raw forecastResponse
	if err := c.getJSON(ctx, "/data/2.5/forecast", params, &raw); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	return raw.normalize(), nil
}

func (c *Client) params(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	if c.lang != "" {
		params.Set("lang", c.lang)
	}
	return params
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return httpStatusError{status: resp.StatusCode, body: upstreamMessage(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode weather response: %w", err)
	}
	return nil
}

// upstreamMessage extracts {"message": ...} from OWM error bodies.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

type currentResponse struct {
	Main    mainBlock   `json:"main"`
	Wind    windBlock   `json:"wind"`
	Weather []condition `json:"weather"`
	Name    string      `json:"name"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"`
	Main    mainBlock   `json:"main"`
	Weather []condition `json:"weather"`
}

type mainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func firstCondition(items []condition) condition {
	if len(items) == 0 {
		return condition{}
	}
	return items[0]
}

func (r currentResponse) normalize() weather.Conditions {
	cond := firstCondition(r.Weather)
	return weather.Conditions{
		Temperature: r.Main.Temp,
		Humidity:    int(math.Round(r.Main.Humidity)),
		WindSpeed:   r.Wind.Speed,
		Description: cond.Description,
		Icon:        cond.Icon,
	}
}

func (r forecastResponse) normalize() []weather.ForecastPoint {
	points := make([]weather.ForecastPoint, 0, len(r.List))
	for _, item := range r.List {
		cond := firstCondition(item.Weather)
		ts := item.DtTxt
		if ts == "" && item.Dt > 0 {
			ts = time.Unix(item.Dt, 0).UTC().Format("2006-01-02 15:04:05")
		}
		points = append(points, weather.ForecastPoint{
			Time:        ts,
			Temperature: item.Main.Temp,
			Description: cond.Description,
			Icon:        cond.Icon,
		})
	}
	return points
}
