package cli

import "scenario/internal/config"

// Flags holds command-line flags
type Flags struct {
	List        bool
	All         bool
	Environment string
	WorkDir     string
	ConfigFile  string
	Workers     int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		List:        f.List,
		All:         f.All,
		Environment: f.Environment,
		WorkDir:     f.WorkDir,
		ConfigFile:  f.ConfigFile,
		Workers:     f.Workers,
	}
}
