package auth

import "github.com/kelseyhightower/envconfig"

// Tokens are issued by the external identity service; this service only
// validates them with the shared secret.
type Config struct {
	JwtSecret string `envconfig:"HEALTHCARE_JWT_SECRET" required:"true"`
	JwtIssuer string `envconfig:"HEALTHCARE_JWT_ISSUER" default:"healthcare"`
}

func NewAuthConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
