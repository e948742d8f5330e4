package redis

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	MaxRetries    int
	Stream        string
	Group         string
	ConsumerName  string
	ResultStream  string
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, group string, consumerName string, resultStream string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		MaxRetries:    5,
		Stream:        stream,
		Group:         group,
		ConsumerName:  consumerName,
		ResultStream:  resultStream,
	}
}
