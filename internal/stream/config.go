package stream

import "github.com/povarna/generative-ai-agents/dupcheck/internal/stream/redis"

type StreamConfig struct {
	Provider    string // redis only for now
	RedisConfig *redis.RedisStreamConfig
}
