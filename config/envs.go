// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service's configuration values.
type Config struct {
	HostIP      string // Host IP for the server
	RESTPort    int    // Port for the REST API
	GinMode     string // Mode for the Gin framework (release, debug, test)
	MaxSessions int    // Maximum number of live grid sessions
	MaxRows     int    // Largest accepted grid height
	MaxCols     int    // Largest accepted grid width
	DefaultRows int    // Grid height when a request omits it
	DefaultCols int    // Grid width when a request omits it
}

// Load reads a .env file if present, then the environment, applying
// defaults for unset keys. Malformed or out-of-range values are errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("%s.env file not found or could not be loaded: %v", LogPrefixInfo, err)
	}

	cfg := Config{
		HostIP:  getEnvWithDefault("HOST_IP", "0.0.0.0"),
		GinMode: getEnvWithDefault("GIN_MODE", "release"),
	}
	ints := []struct {
		key  string
		def  int
		dest *int
	}{
		{"REST_PORT", 8080, &cfg.RESTPort},
		{"GRID_MAX_SESSIONS", 1024, &cfg.MaxSessions},
		{"GRID_MAX_ROWS", 200, &cfg.MaxRows},
		{"GRID_MAX_COLS", 200, &cfg.MaxCols},
		{"GRID_DEFAULT_ROWS", 20, &cfg.DefaultRows},
		{"GRID_DEFAULT_COLS", 20, &cfg.DefaultCols},
	}
	for _, it := range ints {
		v, err := getEnvAsInt(it.key, it.def)
		if err != nil {
			return Config{}, err
		}
		if v < 1 {
			return Config{}, fmt.Errorf("config: %s must be positive, got %d", it.key, v)
		}
		*it.dest = v
	}
	if cfg.DefaultRows > cfg.MaxRows || cfg.DefaultCols > cfg.MaxCols {
		return Config{}, fmt.Errorf("config: default grid %dx%d exceeds maximum %dx%d",
			cfg.DefaultRows, cfg.DefaultCols, cfg.MaxRows, cfg.MaxCols)
	}

	return cfg, nil
}

// MustLoad is Load for main packages: it logs and exits on error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("%s%v", LogPrefixError, err)
	}
	return cfg
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsInt retrieves an environment variable as an integer, or def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
