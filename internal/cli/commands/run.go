package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"scenario/internal/cli"
	"scenario/internal/config"
	"scenario/internal/discovery"
	"scenario/internal/runner"
	"scenario/internal/ui"
	"scenario/pkg/fixture"
)

// RunCommand runs the selected scenarios
type RunCommand struct {
	config        *config.Config
	discoverer    *discovery.Discoverer
	filter        *discovery.Filter
	fixtureLoader *discovery.FixtureLoader
	runner        *runner.Runner
	formatter     *ui.Formatter
	streams       IO
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	discoverer *discovery.Discoverer,
	filter *discovery.Filter,
	fixtureLoader *discovery.FixtureLoader,
	scenarioRunner *runner.Runner,
	formatter *ui.Formatter,
	streams IO,
) *RunCommand {
	return &RunCommand{
		config:        cfg,
		discoverer:    discoverer,
		filter:        filter,
		fixtureLoader: fixtureLoader,
		runner:        scenarioRunner,
		formatter:     formatter,
		streams:       streams,
	}
}

// Execute runs the scenarios named in targets, or all of them when
// targets is empty. Scenario failures are reported, not returned.
func (rc *RunCommand) Execute(cmd *cobra.Command, targets []string) error {
	env, err := resolveEnvironment(rc.config)
	if err != nil {
		return err
	}

	base := fixture.New(fixture.Options{
		Host:     env.Host,
		Token:    env.Token,
		Database: env.Database,
		Workers:  rc.config.Workers,
		In:       rc.streams.In,
		Out:      rc.streams.Out,
		Progress: rc.streams.Err,
	})
	defer base.Close()

	workDir := rc.config.GetWorkDir()
	f, err := rc.fixtureLoader.Load(workDir, base)
	if err != nil {
		if errors.Is(err, discovery.ErrAmbiguousFixture) {
			return cli.ConfigError(err)
		}
		return err
	}

	units, err := rc.discoverer.Discover(workDir)
	if err != nil {
		return err
	}

	rc.formatter.PrintMissingTargets(rc.filter.Missing(units, targets))
	units = rc.filter.FilterByTargets(units, targets)
	if len(units) == 0 {
		rc.formatter.PrintNoScenarios()
		return nil
	}

	rc.runner.Run(cmd.Context(), f, units)
	return nil
}
