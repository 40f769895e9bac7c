// Package storage is a thin client for the Supabase storage REST API. It is
// the blob-store collaborator: upload bytes, resolve public URLs, download
// and delete objects.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/festwish/wish-service/environments"
	"github.com/festwish/wish-service/pkg/logger"
)

type Client struct {
	httpClient *resty.Client
	baseURL    string
	bucket     string
}

func NewClient(cfg environments.StorageConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "Bearer "+cfg.ServiceKey)

	return &Client{
		httpClient: client,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		bucket:     cfg.Bucket,
	}
}

// Put uploads bytes under path and returns the public URL. Existing objects
// at the same path are overwritten, which keeps re-rendering idempotent.
func (c *Client) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(uploadURL)
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d uploading %s: %s", resp.StatusCode(), path, resp.String())
	}

	logger.Debugf("Uploaded %d bytes to %s", len(data), path)

	return c.PublicURL(path), nil
}

// PublicURL returns the public URL for an object path in the bucket.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}

// Get downloads an object by public URL or by bucket-relative path.
func (c *Client) Get(ctx context.Context, urlOrPath string) ([]byte, error) {
	url := urlOrPath
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		url = c.PublicURL(urlOrPath)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d downloading %s", resp.StatusCode(), url)
	}

	return resp.Body(), nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Delete(deleteURL)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code %d deleting %s", resp.StatusCode(), path)
	}

	return nil
}
