package gtx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/yanqian/travel-proxy/internal/domain/translate"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Client talks to the public Google Translate endpoint used by the gtx web client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a translate client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), httpClient: httpClient}
}

// Translate implements translate.Client.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (translate.Result, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)
	endpoint := c.baseURL + "/translate_a/single?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return translate.Result{}, fmt.Errorf("build translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return translate.Result{}, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return translate.Result{}, fmt.Errorf("translate request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return translate.Result{}, fmt.Errorf("read translate response: %w", err)
	}

	parsed, err := parseResponse(body)
	if err != nil {
		return translate.Result{}, err
	}
	return parsed.normalize(), nil
}

// apiResponse is the positional payload: [[[translated, original, ...], ...], null, detectedLang, ...].
type apiResponse struct {
	Segments         []segment
	DetectedLanguage string
}

type segment struct {
	Translated string
	Original   string
}

func parseResponse(body []byte) (apiResponse, error) {
	if !gjson.ValidBytes(body) {
		return apiResponse{}, errors.New("decode translate response: invalid json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return apiResponse{}, errors.New("decode translate response: expected top-level array")
	}

	var out apiResponse
	if segments := root.Get("0"); segments.IsArray() {
		segments.ForEach(func(_, item gjson.Result) bool {
			if !item.IsArray() {
				return true
			}
			out.Segments = append(out.Segments, segment{
				Translated: stringAt(item, "0"),
				Original:   stringAt(item, "1"),
			})
			return true
		})
	}
	out.DetectedLanguage = stringAt(root, "2")
	return out, nil
}

func stringAt(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func (r apiResponse) normalize() translate.Result {
	var sb strings.Builder
	for _, seg := range r.Segments {
		sb.WriteString(seg.Translated)
	}
	return translate.Result{
		TranslatedText:   sb.String(),
		DetectedLanguage: r.DetectedLanguage,
	}
}
