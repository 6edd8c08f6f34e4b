package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/travel-proxy/internal/domain/geocode"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "POI-VN-App/1.0"
)

// Client searches OpenStreetMap's Nominatim service.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a geocoding client. Nominatim requires an identifying User-Agent.
func NewClient(baseURL, userAgent string, httpClient *http.Client) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), userAgent: userAgent, httpClient: httpClient}
}

// Search implements geocode.Client.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]geocode.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	return normalizeResults(results)
}

// searchResult keeps coordinates as Nominatim sends them: decimal strings.
type searchResult struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func normalizeResults(results []searchResult) ([]geocode.Place, error) {
	places := make([]geocode.Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(strings.TrimSpace(r.Lat), 64)
		if err != nil {
			return nil, fmt.Errorf("parse latitude %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(r.Lon), 64)
		if err != nil {
			return nil, fmt.Errorf("parse longitude %q: %w", r.Lon, err)
		}
		places = append(places, geocode.Place{Lat: lat, Lon: lon, DisplayName: r.DisplayName})
	}
	return places, nil
}
