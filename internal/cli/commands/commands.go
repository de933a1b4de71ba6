package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scenario/internal/cli"
	"scenario/internal/config"
	"scenario/internal/discovery"
	"scenario/internal/runner"
	"scenario/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// IO holds the streams commands write to and read from
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultIO returns the process streams
func DefaultIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry discovery.Registry, streams IO) *Commands {
	// Initialize dependencies
	logger := log.NewWithOptions(streams.Err, log.Options{Prefix: "scenario"})
	scanner := discovery.NewScanner(config.PluginSuffix)
	opener := discovery.NewPluginOpener()
	discoverer := discovery.NewDiscoverer(registry, scanner, opener)
	fixtureLoader := discovery.NewFixtureLoader(registry, scanner, opener)
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter(streams.Out)
	scenarioRunner := runner.NewRunner(ui.NewPrinter(streams.Out), logger)

	return &Commands{
		Run:  NewRunCommand(cfg, discoverer, filter, fixtureLoader, scenarioRunner, formatter, streams),
		List: NewListCommand(cfg, discoverer, formatter),
	}
}

// Register wires the commands into the root command. Listing and running
// are flags of the root command rather than subcommands.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Use = "scenario [targets...]"
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// The environment is checked before anything else, listing included
		if _, err := resolveEnvironment(cfg); err != nil {
			return err
		}

		switch {
		case cfg.Flags.List:
			return c.List.Execute(cmd, args)
		case cfg.Flags.All:
			return c.Run.Execute(cmd, nil)
		case len(args) > 0:
			return c.Run.Execute(cmd, args)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("Please specify a scenario target or --all"))
		_ = cmd.Help()
		return &cli.ExitError{Code: cli.ExitUsage}
	}

	rootCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List all scenarios")
	rootCmd.Flags().BoolVar(&flags.All, "all", false, "Run all scenarios")
	rootCmd.Flags().StringVarP(&flags.Environment, "environment", "e", config.DefaultEnvironment, "Test environment (section of the config file)")
	rootCmd.Flags().StringVarP(&flags.WorkDir, "dir", "C", config.DefaultWorkDir, "Directory holding scenario plugins and the config file")
	rootCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", config.DefaultConfigFile, "Config file, relative to --dir unless absolute")
	rootCmd.Flags().IntVarP(&flags.Workers, "workers", "w", config.DefaultWorkers, "Default worker count for repeated jobs (0 = number of CPUs)")
}

// resolveEnvironment loads the dotenv file and the selected environment.
// Failures are configuration errors.
func resolveEnvironment(cfg *config.Config) (*config.Environment, error) {
	if err := config.LoadDotEnv(cfg.GetEnvFilePath()); err != nil {
		return nil, cli.ConfigError(err)
	}
	env, err := config.ResolveEnvironment(cfg.GetConfigPath(), cfg.Environment)
	if err != nil {
		return nil, cli.ConfigError(err)
	}
	return env, nil
}
