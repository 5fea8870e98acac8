package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tgimg/internal/domain/entity"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

const defaultPublishTimeout = 3 * time.Second

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &Publisher{
		client:  client,
		timeout: timeout,
	}
}

func (p *Publisher) Publish(ctx context.Context, message string) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("redis not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{"body": message},
	}).Err()
}

// Report publishes the compression outcome as a JSON body on the stream.
func (p *Publisher) Report(ctx context.Context, report *entity.CompressionReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return err
	}

	return p.Publish(ctx, string(body))
}
