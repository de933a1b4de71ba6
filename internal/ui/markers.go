package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	running   = color.New(color.FgBlue).SprintFunc()
	done      = color.New(color.FgGreen).SprintFunc()
	fail      = color.New(color.FgRed).SprintFunc()
	benchmark = color.New(color.FgGreen).SprintFunc()
)

const leader = " .......................... "

// Printer writes per-scenario status lines
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Header announces the start of a run against host.
func (p *Printer) Header(host string) {
	fmt.Fprintf(p.out, "Run scenarios in %s\n\n", host)
}

// Running announces that a scenario has started.
func (p *Printer) Running(name string) {
	fmt.Fprintf(p.out, "* %s%s[%s]\n", name, leader, running("RUNNING"))
}

// Done reports a passed scenario and how long it took.
func (p *Printer) Done(name string, elapsed time.Duration) {
	fmt.Fprintf(p.out, "* %s%s[%s] %s\n", name, leader, done("DONE"), formatElapsed(elapsed))
}

// Fail prints the FAIL marker, the error message and the stack trace.
func (p *Printer) Fail(name string, elapsed time.Duration, err error, stack string) {
	fmt.Fprintf(p.out, "* %s%s[%s] %s\n", name, leader, fail("FAIL"), formatElapsed(elapsed))
	fmt.Fprintf(p.out, "Message: %v\n", err)
	if stack != "" {
		fmt.Fprintln(p.out, stack)
	}
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("(%.2fs)", d.Seconds())
}

// PrintBenchmark prints the elapsed time of a benchmarked block.
func PrintBenchmark(out io.Writer, title string, elapsed time.Duration) {
	fmt.Fprintf(out, "[%s] %s: %v sec\n", benchmark("BENCHMARK"), title, elapsed.Seconds())
}
