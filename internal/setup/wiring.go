package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/config"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel       string
	APIPort        string
	RedisAddr      string
	RedisPassword  string
	RedisRetries   int
	StreamProvider string
	ConsumerName   string
	MaxValues      int
}

type Dependencies struct {
	Checker *checker.Checker
	Service *config.ServiceConfig
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	hostname, _ := os.Hostname()

	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIPort:        getEnv("DUPCHECK_API_PORT", ""),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisRetries:   getEnvInt("REDIS_MAX_RETRIES", 5),
		StreamProvider: getEnv("STREAM_PROVIDER", "redis"),
		ConsumerName:   getEnv("HOSTNAME", hostname),
		MaxValues:      getEnvInt("DUPCHECK_MAX_VALUES", 0),
	}
}

// Wire loads the YAML service config and builds the checker. Environment
// values override the file where both are set.
func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	serviceCfg, err := config.LoadServiceConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load service config: %w", err)
	}

	if cfg.APIPort != "" {
		serviceCfg.API.Port = cfg.APIPort
	}
	if cfg.MaxValues > 0 {
		serviceCfg.Limits.MaxValues = cfg.MaxValues
	}

	c := checker.NewChecker(checker.JSONDecoder{}, checker.ScanDetector{}, serviceCfg.Limits.MaxValues, logger)

	logger.Info().
		Str("stream", serviceCfg.Stream.Name).
		Int("maxValues", serviceCfg.Limits.MaxValues).
		Msg("dependencies wired")

	return &Dependencies{
		Checker: c,
		Service: serviceCfg,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
