package domain

import "time"

// Result is the outcome of running one scenario.
type Result struct {
	Name     string
	Err      error
	Stack    string // goroutine stack when the scenario panicked
	Duration time.Duration
}

// Success reports whether the scenario returned without error.
func (r Result) Success() bool {
	return r.Err == nil
}
