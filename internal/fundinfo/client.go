// Package fundinfo looks up fund display names from the danjuanfunds public
// API. The upstream is treated as best effort and every call is independent,
// with no retry and no caching.
package fundinfo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the production endpoint.
const DefaultBaseURL = "https://danjuanfunds.com"

// Client fetches fund information over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. baseURL may be empty to use the production endpoint.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FundName returns the display name for a 6-digit fund code. The response
// document is treated as opaque: a missing or non-string name field yields an
// empty string, only transport failures and non-2xx statuses are errors.
func (c *Client) FundName(ctx context.Context, code string) (string, error) {
	url := fmt.Sprintf("%s/djapi/fund/%s", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch fund info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch fund info: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read fund info: %w", err)
	}

	name := gjson.GetBytes(body, "data.fd_name")
	if name.Type != gjson.String {
		return "", nil
	}
	return name.String(), nil
}
