package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("OBSERVER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars cover it
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if len(config.EventTypes) == 0 {
		config.EventTypes = DefaultEventTypes()
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured, session persistence disabled")
	}

	// Auto-correct degenerate playback tunables
	if viper.GetFloat64("playback.max_rate") <= 0 {
		viper.Set("playback.max_rate", 16.0)
	}
	if viper.GetFloat64("playback.sync_tolerance") <= 0 {
		viper.Set("playback.sync_tolerance", 0.5)
	}
	if viper.GetFloat64("playback.seek_step") <= 0 {
		viper.Set("playback.seek_step", 5.0)
	}
	if viper.GetFloat64("playback.seek_step_large") <= 0 {
		viper.Set("playback.seek_step_large", 60.0)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Playback.MaxRate <= 0 {
		c.Playback.MaxRate = 16.0
	}
	if c.Playback.SyncTolerance <= 0 {
		c.Playback.SyncTolerance = 0.5
	}
	return nil
}

// DefaultEventTypes is the catalog seeded into sessions that don't restore one.
// Keys double as number-row hotkeys on the client.
func DefaultEventTypes() []EventTypeEntry {
	return []EventTypeEntry{
		{Key: 1, Name: "Pedestrian crossing", Color: "#4caf50"},
		{Key: 2, Name: "Cyclist crossing", Color: "#2196f3"},
		{Key: 3, Name: "Jaywalking", Color: "#f44336"},
		{Key: 4, Name: "Vehicle stop", Color: "#ff9800"},
		{Key: 5, Name: "Near miss", Color: "#9c27b0"},
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/observer.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.verbose", false)

	// Playback defaults
	viper.SetDefault("playback.max_rate", 16.0)
	viper.SetDefault("playback.sync_tolerance", 0.5)
	viper.SetDefault("playback.seek_step", 5.0)
	viper.SetDefault("playback.seek_step_large", 60.0)

	// Export defaults
	viper.SetDefault("export.delimiter", ",")
}
