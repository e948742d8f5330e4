package config

// ServiceConfig holds the runtime behaviour shared by the API, stream and MCP binaries
type ServiceConfig struct {
	API    APIConfig    `yaml:"api"`
	Stream StreamConfig `yaml:"stream"`
	Limits LimitsConfig `yaml:"limits"`
}

type APIConfig struct {
	Port string `yaml:"port"`
}

// StreamConfig names the Redis stream requests are read from and the stream results are written to
type StreamConfig struct {
	Name    string `yaml:"name"`
	Group   string `yaml:"group"`
	Results string `yaml:"results"`
}

type LimitsConfig struct {
	MaxValues int `yaml:"max_values"`
}
