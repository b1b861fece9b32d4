package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	OpsManager OpsManagerConfig `mapstructure:"opsmanager"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// OpsManagerConfig holds Ops Manager / Cloud Manager API connection details
type OpsManagerConfig struct {
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	APIKey   string        `mapstructure:"api_key"`
	Variant  string        `mapstructure:"variant"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// FilterConfig contains named filter expressions usable with --preset
type FilterConfig map[string]string

// OutputConfig contains settings for commands that write files
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
