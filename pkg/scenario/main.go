package scenario

import (
	"os"

	"scenario/internal/cli/commands"
)

// Version is reported by --version.
var Version = "dev"

// Main runs the scenario command line with the Default registry and exits.
func Main() {
	os.Exit(commands.Execute(Default, Version, os.Args[1:]))
}
