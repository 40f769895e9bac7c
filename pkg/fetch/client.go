// Package fetch downloads background images over HTTP. A slow origin must
// never hang a render call, so the client always carries a timeout.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	httpClient *resty.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
	}
}

// FetchImage downloads the raw bytes behind url. No decoding happens here;
// the renderer validates the content.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d fetching %s", resp.StatusCode(), url)
	}

	return resp.Body(), nil
}
