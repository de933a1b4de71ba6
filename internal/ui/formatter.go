package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Formatter formats and displays listings
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintScenarioList prints one scenario name per line so the output can
// be piped back into the runner.
func (f *Formatter) PrintScenarioList(names []string) {
	for _, name := range names {
		fmt.Fprintln(f.out, name)
	}
}

// PrintMissingTargets warns about targets that matched no scenario.
func (f *Formatter) PrintMissingTargets(targets []string) {
	for _, target := range targets {
		fmt.Fprintln(f.out, color.YellowString("! no scenario named %q", target))
	}
}

// PrintNoScenarios reports an empty discovery.
func (f *Formatter) PrintNoScenarios() {
	fmt.Fprintln(f.out, color.YellowString("No scenarios found"))
}
