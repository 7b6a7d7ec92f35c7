package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher delivers notifications over Redis pub/sub. Delivery is
// best-effort: callers decide whether to ignore a failed publish.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr string) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.client.Publish(ctx, topic, payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
