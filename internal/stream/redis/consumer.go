package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=consumer.go -destination=mocks/mocks.go -package=mocks

// StreamClient is the subset of the Redis client the consumer needs
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	Close() error
}

const (
	// newMessages reads entries never delivered to the group
	newMessages = ">"
	// ownPending re-reads entries delivered to this consumer but not yet ACKed
	ownPending = "0"

	pendingBatch = 100
)

type Consumer struct {
	client       StreamClient
	stream       string
	groupID      string
	consumerName string
	resultStream string
	checker      *checker.Checker
	logger       *zerolog.Logger

	// set while some entry delivered to this consumer is still un-ACKed
	hasPending bool
}

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, c *checker.Checker, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		resultStream: cfg.ResultStream,
		checker:      c,
		logger:       logger,
		// entries left un-ACKed by a previous run of this consumer
		hasPending: true,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Str("results", c.resultStream).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if c.hasPending {
			if err := c.retryPending(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Error().Err(err).Msg("Failed to read pending entries")
			}
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, newMessages},
			Count:    10,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		c.handle(ctx, msgs)
	}
}

// retryPending processes this consumer's un-ACKed entries again, paging
// through the pending list. Entries that still cannot be completed stay
// pending for the next pass.
func (c *Consumer) retryPending(ctx context.Context) error {
	c.hasPending = false
	start := ownPending

	for {
		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, start},
			Count:    pendingBatch,
			Block:    -1,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			c.hasPending = true
			return err
		}

		count := pendingCount(msgs)
		if count == 0 {
			return nil
		}

		c.logger.Info().Int("count", count).Str("from", start).Msg("Retrying pending entries")
		c.handle(ctx, msgs)

		if count < pendingBatch {
			return nil
		}
		start = lastID(msgs)
	}
}

func (c *Consumer) handle(ctx context.Context, msgs []redis.XStream) {
	for _, s := range msgs {
		for _, msg := range s.Messages {
			if !c.process(ctx, msg) {
				c.hasPending = true
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// process reports whether the entry was ACKed. Un-ACKed entries are picked
// up again by retryPending.
func (c *Consumer) process(ctx context.Context, msg redis.XMessage) bool {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	req, err := decodeRequest(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Skipping bad message")
		return c.ack(ctx, msg.ID)
	}

	result, err := c.checker.Check(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Check rejected")
		return c.ack(ctx, msg.ID)
	}

	resultID, err := add(ctx, c.client, c.resultStream, result)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result, will retry")
		return false
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("result_id", resultID).
		Bool("has_duplicate", result.HasDuplicate).
		Msg("Check complete")

	return c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, msgID string) bool {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
		return false
	}
	return true
}

func pendingCount(msgs []redis.XStream) int {
	count := 0
	for _, s := range msgs {
		count += len(s.Messages)
	}
	return count
}

func lastID(msgs []redis.XStream) string {
	id := ownPending
	for _, s := range msgs {
		if n := len(s.Messages); n > 0 {
			id = s.Messages[n-1].ID
		}
	}
	return id
}
