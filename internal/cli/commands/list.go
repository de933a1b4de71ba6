package commands

import (
	"github.com/spf13/cobra"

	"scenario/internal/config"
	"scenario/internal/discovery"
	"scenario/internal/ui"
)

// ListCommand prints the discoverable scenario names
type ListCommand struct {
	config     *config.Config
	discoverer *discovery.Discoverer
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	discoverer *discovery.Discoverer,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		discoverer: discoverer,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	names, err := lc.discoverer.Names(lc.config.GetWorkDir())
	if err != nil {
		return err
	}

	lc.formatter.PrintScenarioList(names)
	return nil
}
