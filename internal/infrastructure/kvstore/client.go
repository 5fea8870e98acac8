package kvstore

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const DefaultSettingsKey = "settings"

type Client struct {
	redis        *redis.Client
	prefix       string
	settingsKey  string
	queryTimeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	logger.Info("connecting to redis kv store")

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	c := newClient(rdb, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), c.queryTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, err
	}

	return c, nil
}

func newClient(rdb *redis.Client, cfg Config) *Client {
	settingsKey := cfg.SettingsKey
	if settingsKey == "" {
		settingsKey = DefaultSettingsKey
	}

	timeout := time.Duration(cfg.QueryTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		redis:        rdb,
		prefix:       cfg.KeyPrefix,
		settingsKey:  settingsKey,
		queryTimeout: timeout,
	}
}

func (c *Client) key(k string) string {
	return c.prefix + k
}

func (c *Client) Close() error {
	return c.redis.Close()
}
