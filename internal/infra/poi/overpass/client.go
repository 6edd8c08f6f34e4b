package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/travel-proxy/internal/domain/poi"
)

const defaultBaseURL = "https://overpass-api.de"

// Client runs Overpass QL queries against an Overpass API instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an Overpass client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), httpClient: httpClient}
}

// Search implements poi.Client.
func (c *Client) Search(ctx context.Context, q poi.Query) ([]poi.Element, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/interpreter", strings.NewReader(BuildQuery(q)))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("overpass request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}
	return raw.normalize(), nil
}

// BuildQuery renders the tourist-attraction query around a point.
func BuildQuery(q poi.Query) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", q.Radius, formatCoord(q.Lat), formatCoord(q.Lon))
	limit := q.Limit
	if limit <= 0 {
		limit = 5
	}

	var sb strings.Builder
	sb.WriteString("[out:json][timeout:25];\n(\n")
	sb.WriteString(`  node["tourism"~"attraction|museum|viewpoint|artwork|gallery"]` + around + ";\n")
	sb.WriteString(`  node["historic"]` + around + ";\n")
	sb.WriteString(`  node["amenity"~"place_of_worship|theatre"]` + around + ";\n")
	sb.WriteString(");\n")
	sb.WriteString("out body " + strconv.Itoa(limit) + ";\n")
	return sb.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type apiResponse struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

func (r apiResponse) normalize() []poi.Element {
	out := make([]poi.Element, 0, len(r.Elements))
	for _, el := range r.Elements {
		out = append(out, poi.Element{ID: el.ID, Lat: el.Lat, Lon: el.Lon, Tags: el.Tags})
	}
	return out
}
