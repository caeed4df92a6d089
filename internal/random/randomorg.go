package random

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultURL is the random.org decimal-fractions endpoint.
const DefaultURL = "https://www.random.org/decimal-fractions/"

// Client draws random decimal fractions from the random.org HTTP API.
//
// Every failure mode - network error, timeout, non-200 status, unparseable
// body - surfaces as ErrUnavailable. The caller decides whether to retry;
// the client never substitutes a local value.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a random.org client. An empty baseURL uses DefaultURL;
// a non-positive timeout defaults to 5 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Float requests one decimal fraction in [0,1) with two decimal places.
func (c *Client) Float(ctx context.Context) (float64, error) {
	query := url.Values{
		"num":    {"1"},
		"dec":    {"2"},
		"col":    {"1"},
		"format": {"plain"},
		"rnd":    {"new"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: request random.org: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: random.org returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid response %q", ErrUnavailable, strings.TrimSpace(string(body)))
	}

	if value < 0 || value >= 1 {
		return 0, fmt.Errorf("%w: value %v outside [0,1)", ErrUnavailable, value)
	}

	return value, nil
}
