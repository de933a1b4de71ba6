package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Directory scanned for scenario plugins and config files
	WorkDir string

	// Config file, relative to WorkDir unless absolute
	ConfigFile string

	// Environment section to resolve
	Environment string

	// Default pool size for Repeat
	Workers int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	List        bool
	All         bool
	Environment string
	WorkDir     string
	ConfigFile  string
	Workers     int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		WorkDir:     DefaultWorkDir,
		ConfigFile:  DefaultConfigFile,
		Environment: DefaultEnvironment,
		Workers:     DefaultWorkers,
	}
}

// Apply stores flags and lets non-zero values override the defaults.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.WorkDir != "" {
		c.WorkDir = flags.WorkDir
	}
	if flags.ConfigFile != "" {
		c.ConfigFile = flags.ConfigFile
	}
	if flags.Environment != "" {
		c.Environment = flags.Environment
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

// GetWorkDir returns the working directory as an absolute path when it
// can be resolved.
func (c *Config) GetWorkDir() string {
	if abs, err := filepath.Abs(c.WorkDir); err == nil {
		return abs
	}
	return c.WorkDir
}

// GetConfigPath returns the config file path, resolved against the
// working directory if it is relative
func (c *Config) GetConfigPath() string {
	if filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.WorkDir, c.ConfigFile)
}

// GetEnvFilePath returns the path of the optional dotenv file
func (c *Config) GetEnvFilePath() string {
	return filepath.Join(c.WorkDir, DefaultEnvFile)
}
