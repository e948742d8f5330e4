package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker"
	red "github.com/povarna/generative-ai-agents/dupcheck/internal/redis"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/stream/redis"
	"github.com/rs/zerolog"
)

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	c *checker.Checker,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.Connect(ctx, red.Options{
			Addr:       cfg.RedisConfig.RedisAddr,
			Password:   cfg.RedisConfig.RedisPassword,
			MaxRetries: cfg.RedisConfig.MaxRetries,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, c, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
