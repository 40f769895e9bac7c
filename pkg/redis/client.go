package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/festwish/wish-service/environments"
	"github.com/festwish/wish-service/pkg/logger"
)

type Client struct {
	client valkey.Client
}

const (
	cardURLKeyPrefix = "card_url:"
	cardURLTTL       = 24 * time.Hour
)

func NewRedisClient(cfg environments.RedisConfig) (*Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Connected to Redis (via Valkey client)")

	return &Client{client: client}, nil
}

// CacheCardURL remembers the storage URL of a freshly rendered card so the
// download path can serve it without a wish lookup. Re-rendering overwrites
// the entry.
func (c *Client) CacheCardURL(ctx context.Context, wishID int64, cardURL string) error {
	key := fmt.Sprintf("%s%d", cardURLKeyPrefix, wishID)

	err := c.client.Do(ctx, c.client.B().Set().Key(key).Value(cardURL).Ex(cardURLTTL).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to cache card url: %w", err)
	}

	logger.Debugf("Cached card url for wish %d", wishID)

	return nil
}

// GetCachedCardURL returns the cached card URL for a wish, or "" on a miss.
func (c *Client) GetCachedCardURL(ctx context.Context, wishID int64) (string, error) {
	key := fmt.Sprintf("%s%d", cardURLKeyPrefix, wishID)

	result := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if result.Error() != nil {
		if valkey.IsValkeyNil(result.Error()) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cached card url: %w", result.Error())
	}

	url, err := result.ToString()
	if err != nil {
		return "", fmt.Errorf("failed to read cached card url: %w", err)
	}

	return url, nil
}

func (c *Client) Close() error {
	c.client.Close()
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}
