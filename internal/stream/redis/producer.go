package redis

import (
	"context"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publish appends a check request to stream and returns the entry ID
func Publish(ctx context.Context, client redis.Cmdable, stream string, req models.CheckRequest) (string, error) {
	return add(ctx, client, stream, req)
}

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

func add(ctx context.Context, client streamAdder, stream string, v any) (string, error) {
	values, err := encodePayload(v)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
}
