// Package config reads process configuration from the environment once at
// startup. The resulting Config is passed explicitly to the server wiring
// instead of being consulted as ambient global state.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is used when PORT is unset or unusable.
const DefaultPort = 3000

// Config holds all recognized configuration for the service.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int
}

// Load builds a Config from the environment. PORT values that are missing,
// non-numeric, or outside the valid TCP port range fall back to DefaultPort.
func Load() *Config {
	return &Config{
		Port: portFromEnv("PORT", DefaultPort),
	}
}

// Addr returns the listen address for the configured port, e.g. ":3000".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func portFromEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return fallback
	}
	return port
}
