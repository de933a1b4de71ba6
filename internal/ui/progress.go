package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	title string
}

// NewProgressBar creates a progress bar that tracks success and failure counts
func NewProgressBar(count int, title string, w io.Writer) *ProgressBar {
	p := &ProgressBar{title: title}
	p.bar = newBar(count, p.describe(0, 0), w)
	return p
}

// NewCountBar creates a progress bar that follows a counter towards total
func NewCountBar(total int, w io.Writer) *ProgressBar {
	p := &ProgressBar{title: "Waiting"}
	p.bar = newBar(total, color.CyanString("Waiting: "), w)
	return p
}

func newBar(count int, description string, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func (p *ProgressBar) describe(successCount, failCount int) string {
	return color.CyanString("%s: ", p.title) +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	p.bar.Set(successCount + failCount)
	p.bar.Describe(p.describe(successCount, failCount))
}

// Set moves the bar to n
func (p *ProgressBar) Set(n int) {
	p.bar.Set(n)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
