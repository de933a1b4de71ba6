package fixture

import (
	"github.com/pkg/errors"

	"scenario/internal/execution"
	"scenario/internal/ui"
)

// Job is one unit of work for Repeat.
type Job func() (any, error)

// repeat runs every job to completion and reports the error of the
// lowest-index job that failed.
func (f *Fixture) repeat(job Job, repeats, workers int) ([]any, error) {
	if repeats <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = f.opts.Workers
	}

	pool := execution.NewPool(workers)
	pool.SetProgress(ui.NewProgressBar(repeats, "Repeating", f.opts.Progress))

	outcomes := pool.Execute(repeats, func(int) (any, error) {
		return attempt(job)
	})

	results := make([]any, len(outcomes))
	var firstErr error
	for i, o := range outcomes {
		results[i] = o.Value
		if o.Err != nil && firstErr == nil {
			firstErr = errors.Wrapf(o.Err, "repeat job %d", i)
		}
	}
	return results, firstErr
}

// RepeatOf is Repeat for jobs with a concrete result type.
func RepeatOf[T any](f *Fixture, job func() (T, error), repeats, workers int) ([]T, error) {
	raw, err := f.Repeat(func() (any, error) {
		return job()
	}, repeats, workers)

	out := make([]T, len(raw))
	for i, v := range raw {
		if t, ok := v.(T); ok {
			out[i] = t
		}
	}
	return out, err
}
