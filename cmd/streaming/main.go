package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/setup"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/stream"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/stream/redis"
	"github.com/rs/zerolog"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	redisCfg := redis.NewRedisStreamConfig(
		cfg.RedisAddr,
		cfg.RedisPassword,
		deps.Service.Stream.Name,
		deps.Service.Stream.Group,
		cfg.ConsumerName,
		deps.Service.Stream.Results,
	)
	redisCfg.MaxRetries = cfg.RedisRetries

	consumer, err := stream.NewStreamConsumer(ctx, &stream.StreamConfig{
		Provider:    cfg.StreamProvider,
		RedisConfig: redisCfg,
	}, deps.Checker, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := run(ctx, consumer, &log); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}
	log.Info().Msg("Dupcheck consumer stopped")
}

// run consumes until ctx is done. The consumer is stopped only after Start
// has returned, so no in-flight ACK races the client close.
func run(ctx context.Context, consumer stream.StreamConsumer, log *zerolog.Logger) error {
	defer consumer.Stop()

	if err := consumer.Setup(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	<-ctx.Done()
	<-done
	return nil
}
