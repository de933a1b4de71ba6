package discovery

import (
	"errors"
	"fmt"

	"scenario/internal/config"
	"scenario/internal/domain"
	"scenario/pkg/fixture"
)

// ErrDuplicateScenario is returned when two units share a name.
var ErrDuplicateScenario = errors.New("duplicate scenario name")

// Registry supplies units and fixture extensions compiled into the binary.
type Registry interface {
	Units() []domain.Unit
	Fixtures() []fixture.Extension
}

// Discoverer enumerates the scenarios available for a run: registered
// units first, in registration order, then plugins in the working
// directory.
type Discoverer struct {
	registry Registry
	scanner  *Scanner
	opener   Opener
}

// NewDiscoverer creates a new Discoverer. registry may be nil.
func NewDiscoverer(registry Registry, scanner *Scanner, opener Opener) *Discoverer {
	return &Discoverer{
		registry: registry,
		scanner:  scanner,
		opener:   opener,
	}
}

// Discover returns every runnable unit. The fixture extension is never
// returned.
func (d *Discoverer) Discover(dir string) ([]domain.Unit, error) {
	var units []domain.Unit
	seen := make(map[string]domain.Unit)

	add := func(unit domain.Unit) error {
		if unit.Name == config.FixtureName {
			return nil
		}
		if prev, ok := seen[unit.Name]; ok {
			return fmt.Errorf("%w: %q from %s and %s", ErrDuplicateScenario, unit.Name, describe(prev), describe(unit))
		}
		seen[unit.Name] = unit
		units = append(units, unit)
		return nil
	}

	if d.registry != nil {
		for _, unit := range d.registry.Units() {
			if err := add(unit); err != nil {
				return nil, err
			}
		}
	}

	entries, err := d.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		path := entry.Path
		unit := domain.Unit{
			Name:   entry.Name,
			Source: domain.SourcePlugin,
			Path:   path,
			Load: func() (func(*fixture.Fixture) error, error) {
				return lookupTest(d.opener, path)
			},
		}
		if err := add(unit); err != nil {
			return nil, err
		}
	}

	return units, nil
}

// Names returns the names of the runnable units.
func (d *Discoverer) Names(dir string) ([]string, error) {
	units, err := d.Discover(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(units))
	for i, unit := range units {
		names[i] = unit.Name
	}
	return names, nil
}

func describe(unit domain.Unit) string {
	if unit.Path != "" {
		return unit.Path
	}
	return string(unit.Source)
}
