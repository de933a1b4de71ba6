// Package scenario is the entry point for projects that compile their
// scenarios into a runner binary:
//
//	func init() {
//		scenario.Register("create_user", func(f *fixture.Fixture) error {
//			resp, err := f.Post("/users", fixture.WithJSON(user))
//			if err != nil {
//				return err
//			}
//			return f.Assert2xx(resp)
//		})
//	}
//
//	func main() {
//		scenario.Main()
//	}
//
// Scenarios built as Go plugins and dropped in the working directory are
// picked up alongside the registered ones.
package scenario

import (
	"errors"
	"fmt"
	"sync"

	"scenario/internal/config"
	"scenario/internal/domain"
	"scenario/pkg/fixture"
)

var (
	// ErrInvalidName is returned for an empty or reserved scenario name.
	ErrInvalidName = errors.New("invalid scenario name")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("scenario already registered")
)

// TestFunc is a scenario entry point. A returned error or a panic marks
// the scenario failed.
type TestFunc func(f *fixture.Fixture) error

// Registry holds scenarios and fixture extensions in registration order.
type Registry struct {
	mu       sync.Mutex
	names    []string
	tests    map[string]TestFunc
	fixtures []fixture.Extension
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tests: make(map[string]TestFunc)}
}

// Register adds a named scenario.
func (r *Registry) Register(name string, test TestFunc) error {
	if name == "" || name == config.FixtureName {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if test == nil {
		return fmt.Errorf("scenario %q: nil test", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tests[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.names = append(r.names, name)
	r.tests[name] = test
	return nil
}

// RegisterFixture adds a fixture extension. More than one extension is
// reported as ambiguous when a run starts.
func (r *Registry) RegisterFixture(ext fixture.Extension) {
	if ext == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fixtures = append(r.fixtures, ext)
}

// Units returns the registered scenarios as discovery units.
func (r *Registry) Units() []domain.Unit {
	r.mu.Lock()
	defer r.mu.Unlock()

	units := make([]domain.Unit, len(r.names))
	for i, name := range r.names {
		test := r.tests[name]
		units[i] = domain.Unit{
			Name:   name,
			Source: domain.SourceRegistry,
			Load: func() (func(*fixture.Fixture) error, error) {
				return test, nil
			},
		}
	}
	return units
}

// Fixtures returns the registered fixture extensions.
func (r *Registry) Fixtures() []fixture.Extension {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]fixture.Extension(nil), r.fixtures...)
}

// Default is the registry used by Register, RegisterFixture and Main.
var Default = NewRegistry()

// Register adds a scenario to the Default registry. It panics on an
// invalid or duplicate name, so call it from init.
func Register(name string, test TestFunc) {
	if err := Default.Register(name, test); err != nil {
		panic(err)
	}
}

// RegisterFixture adds a fixture extension to the Default registry.
func RegisterFixture(ext fixture.Extension) {
	Default.RegisterFixture(ext)
}
