package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}

	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("sessions.idle_ttl must be > 0 (got %v)", c.Sessions.IdleTTL)
	}
	if c.Sessions.CleanupInterval <= 0 {
		return fmt.Errorf("sessions.cleanup_interval must be > 0 (got %v)", c.Sessions.CleanupInterval)
	}

	if c.Database.DSN != "" && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}
