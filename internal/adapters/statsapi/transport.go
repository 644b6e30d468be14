package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is where the stats API listens in local development.
const DefaultBaseURL = "http://127.0.0.1:8000"

type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL is the resolved API root.
func (c *Client) BaseURL() string { return c.baseURL }

// getJSON: arma la URL, hace el GET y decodifica. Cualquier status fuera de
// 2xx vuelve como *APIError; sin reintentos.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("stats api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("stats api unreachable", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("stats api http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		c.log.Warn("stats api error status", zap.String("path", path), zap.Int("status", res.StatusCode))
		return newAPIError(res.StatusCode, b)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("stats api decode %s: %w", path, err)
	}
	return nil
}
