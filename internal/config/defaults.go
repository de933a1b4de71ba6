package config

const (
	// DefaultWorkDir is the directory scanned for scenarios
	DefaultWorkDir = "."
	// DefaultConfigFile is the config file name inside the working directory
	DefaultConfigFile = "config.ini"
	// DefaultEnvFile is the optional dotenv file inside the working directory
	DefaultEnvFile = ".env"
	// DefaultEnvironment is the config section used without -e
	DefaultEnvironment = "DEFAULT"
	// DefaultWorkers lets Repeat size its pool from the CPU count
	DefaultWorkers = 0
	// PluginSuffix marks scenario plugins in the working directory
	PluginSuffix = ".so"
	// FixtureName is reserved for the fixture extension and never runs as a scenario
	FixtureName = "fixture"
)
