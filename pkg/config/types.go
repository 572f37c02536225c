package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Playback   PlaybackConfig   `mapstructure:"playback"`
	Export     ExportConfig     `mapstructure:"export"`
	EventTypes []EventTypeEntry `mapstructure:"event_types"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose"`
}

// PlaybackConfig contains timeline playback tunables
type PlaybackConfig struct {
	// MaxRate bounds the playback rate magnitude in both directions.
	MaxRate float64 `mapstructure:"max_rate"`
	// SyncTolerance is the maximum drift (seconds) between a caller-reported
	// segment-local position and the mapper-derived one before the mapper wins.
	SyncTolerance float64 `mapstructure:"sync_tolerance"`
	SeekStep      float64 `mapstructure:"seek_step"`
	SeekStepLarge float64 `mapstructure:"seek_step_large"`
}

// ExportConfig contains CSV export settings
type ExportConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

// EventTypeEntry seeds one default catalog entry for new sessions
type EventTypeEntry struct {
	Key   int    `mapstructure:"key"`
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
}
