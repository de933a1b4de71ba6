package fixture

import (
	"time"

	"github.com/pkg/errors"

	"scenario/internal/ui"
)

// DefaultInterval is the pause between polling attempts.
const DefaultInterval = 50 * time.Millisecond

// Predicate reports whether the awaited condition holds.
type Predicate func() (bool, error)

// Counter reports progress towards a total.
type Counter func() (int, error)

type waitOptions struct {
	ignoreErrors bool
	interval     time.Duration
}

// WaitOption configures WaitUntil and WaitUntilCount.
type WaitOption func(*waitOptions)

// IgnoreErrors controls whether errors and panics from the polled func
// count as "not yet" (the default) or end the wait.
func IgnoreErrors(ignore bool) WaitOption {
	return func(o *waitOptions) {
		o.ignoreErrors = ignore
	}
}

// WithInterval sets the pause between attempts.
func WithInterval(d time.Duration) WaitOption {
	return func(o *waitOptions) {
		o.interval = d
	}
}

func newWaitOptions(opts []WaitOption) waitOptions {
	o := waitOptions{ignoreErrors: true, interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (f *Fixture) sleep(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-f.ctx.Done():
	}
}

// waitUntil sleeps after every attempt, the successful one included.
func (f *Fixture) waitUntil(test Predicate, opts ...WaitOption) error {
	o := newWaitOptions(opts)
	if o.ignoreErrors {
		defer f.silence()()
	}

	for {
		ok, err := attempt(test)
		f.Sleep(o.interval)
		if err != nil && !o.ignoreErrors {
			return err
		}
		if err == nil && ok {
			return nil
		}
		if ctxErr := f.ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "wait interrupted")
		}
	}
}

func (f *Fixture) waitUntilCount(counter Counter, total int, opts ...WaitOption) error {
	o := newWaitOptions(opts)
	if o.ignoreErrors {
		defer f.silence()()
	}

	bar := ui.NewCountBar(total, f.opts.Progress)
	defer bar.Finish()

	for {
		count, err := attempt(counter)
		if err == nil {
			bar.Set(count)
		}
		f.Sleep(o.interval)
		if err != nil && !o.ignoreErrors {
			return err
		}
		if err == nil && count >= total {
			return nil
		}
		if ctxErr := f.ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "wait interrupted")
		}
	}
}

// attempt calls fn, turning a panic into an error.
func attempt[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
