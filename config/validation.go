package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration carries everything the
// server needs to start. Development and test fill gaps with local defaults,
// so only CI and production can realistically fail here.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server port": cfg.ServerPort,
		"server host": cfg.ServerHost,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db password": cfg.DBPassword,
		"db name":     cfg.DBName,
		"db ssl mode": cfg.DBSSLMode,
		"jwt secret":  cfg.JWTSecret,
	}

	var errors []string
	for _, field := range []string{
		"server port", "server host",
		"db host", "db port", "db user", "db password", "db name", "db ssl mode",
		"jwt secret",
	} {
		if required[field] == "" {
			errors = append(errors, fmt.Sprintf("%s is not set", field))
		}
	}

	// Redis is optional in development: caching and rate limiting degrade
	// gracefully, but production must have it.
	if IsProduction() {
		if cfg.RedisHost == "" || cfg.RedisPort == "" {
			errors = append(errors, "redis host and port are required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
