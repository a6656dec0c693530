package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultUserAgent   = "fluxview/0.1"
	httpRequestTimeout = 5 * time.Second
	maxResponseBytes   = 1 << 20
	predictionsPath    = "/api/predictions"
)

// HTTP predicts by asking a search service:
//
//	GET /api/predictions?q=<query>&limit=<n>
//	{"predictions": ["Sintel", ...]}
type HTTP struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewHTTP builds an HTTP predictor for the service at baseURL. A bare
// host:port is treated as http.
func NewHTTP(baseURL string) (*HTTP, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &HTTP{
		baseURL:   base,
		http:      &http.Client{Timeout: httpRequestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Predict implements Predictor.
func (c *HTTP) Predict(ctx context.Context, query string, limit int) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	values := url.Values{}
	values.Set("q", q)
	values.Set("limit", strconv.Itoa(limit))
	rel := &url.URL{Path: predictionsPath, RawQuery: values.Encode()}

	body, err := c.get(ctx, rel)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode response: invalid json")
	}
	list := gjson.GetBytes(body, "predictions")
	if !list.IsArray() {
		return nil, fmt.Errorf("decode response: predictions is not an array")
	}

	var titles []string
	for _, v := range list.Array() {
		if v.Type != gjson.String {
			return nil, fmt.Errorf("decode response: prediction %s is not a string", v.Raw)
		}
		titles = append(titles, v.String())
		if len(titles) == limit {
			break
		}
	}
	return titles, nil
}

func (c *HTTP) get(ctx context.Context, rel *url.URL) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
