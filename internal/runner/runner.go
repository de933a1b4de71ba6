// Package runner executes scenario units one at a time against a shared
// fixture.
package runner

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"scenario/internal/domain"
	"scenario/internal/ui"
	"scenario/pkg/fixture"
)

// Runner executes scenarios sequentially.
type Runner struct {
	printer *ui.Printer
	logger  *log.Logger
}

// NewRunner creates a new Runner
func NewRunner(printer *ui.Printer, logger *log.Logger) *Runner {
	return &Runner{printer: printer, logger: logger}
}

// Run executes every unit in order. A failing unit is reported and the
// run moves on to the next one. Cancelling ctx stops the run before the
// next unit starts and ends the fixture's pending requests and waits.
func (r *Runner) Run(ctx context.Context, f *fixture.Fixture, units []domain.Unit) {
	f = f.WithContext(ctx)
	r.printer.Header(f.Host())

	for i, unit := range units {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run interrupted", "remaining", len(units)-i, "error", err)
			return
		}

		r.printer.Running(unit.Name)
		result := r.runOne(f, unit)
		if result.Success() {
			r.printer.Done(unit.Name, result.Duration)
		} else {
			r.printer.Fail(unit.Name, result.Duration, result.Err, result.Stack)
		}
	}
}

func (r *Runner) runOne(f *fixture.Fixture, unit domain.Unit) (result domain.Result) {
	start := time.Now()
	result.Name = unit.Name

	defer func() {
		if rec := recover(); rec != nil {
			result.Err = fmt.Errorf("panic: %v", rec)
			result.Stack = string(debug.Stack())
		}
		result.Duration = time.Since(start)
	}()

	test, err := unit.Load()
	if err != nil {
		result.Err = fmt.Errorf("load scenario %s: %w", unit.Name, err)
		return result
	}

	if err := test(f); err != nil {
		result.Err = err
		result.Stack = stackOf(err)
	}
	return result
}

// stackOf returns the detailed form of err when it carries more than its
// message, as errors from github.com/pkg/errors do.
func stackOf(err error) string {
	detailed := fmt.Sprintf("%+v", err)
	if detailed == err.Error() {
		return ""
	}
	return detailed
}
