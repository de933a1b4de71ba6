package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"scenario/internal/cli"
	"scenario/internal/config"
	"scenario/internal/discovery"
)

// NewRootCommand builds the scenario command around registry.
func NewRootCommand(registry discovery.Registry, version string, streams IO) *cobra.Command {
	// Create root command
	rootCmd := &cobra.Command{
		Short:         "Server scenario testing tool",
		Long:          `Run scenario scripts against a live server. Each scenario receives a fixture with authenticated HTTP helpers, polling and repetition utilities, targeting the host and token of the selected environment.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := NewCommands(cfg, registry, streams)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}

// Execute runs the scenario command with args and returns the process
// exit status.
func Execute(registry discovery.Registry, version string, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := DefaultIO()
	rootCmd := NewRootCommand(registry, version, streams)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if cli.ShouldReport(err) {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
