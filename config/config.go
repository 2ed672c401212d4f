package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort uint16 `envconfig:"HEALTHCARE_HTTP_SERVER_PORT" default:"8080" required:"true"`
}

func New() *Config {
	return &Config{}
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
