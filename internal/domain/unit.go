package domain

import "scenario/pkg/fixture"

// Source tells where a scenario unit was discovered.
type Source string

const (
	SourceRegistry Source = "registry"
	SourcePlugin   Source = "plugin"
)

// Unit is a discovered scenario. Load resolves its entry point and is
// called once per run, right before the scenario executes.
type Unit struct {
	Name   string
	Source Source
	Path   string // plugin file, empty for registered scenarios
	Load   func() (func(f *fixture.Fixture) error, error)
}
