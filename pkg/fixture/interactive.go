package fixture

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"scenario/internal/ui"
)

func (f *Fixture) benchmark(title string) func() {
	start := time.Now()
	var once sync.Once
	return func() {
		once.Do(func() {
			ui.PrintBenchmark(f.opts.Out, title, time.Since(start))
		})
	}
}

func (f *Fixture) yes(prompt string) bool {
	if prompt == "" {
		prompt = "Continue"
	}
	fmt.Fprintf(f.opts.Out, "%s [y/n]: ", prompt)

	answer, err := f.input.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.TrimRight(answer, "\r\n") {
	case "y", "Y", "yes":
		return true
	}
	return false
}
