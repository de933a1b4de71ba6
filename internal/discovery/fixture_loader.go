package discovery

import (
	"errors"
	"fmt"
	"strings"

	"scenario/internal/config"
	"scenario/pkg/fixture"
)

// ErrAmbiguousFixture is returned when more than one fixture extension
// is available.
var ErrAmbiguousFixture = errors.New("ambiguous fixture extension")

type extensionCandidate struct {
	origin string
	load   func() (fixture.Extension, error)
}

// FixtureLoader applies the project's fixture extension, if any, to the
// default fixture.
type FixtureLoader struct {
	registry Registry
	scanner  *Scanner
	opener   Opener
}

// NewFixtureLoader creates a new FixtureLoader. registry may be nil.
func NewFixtureLoader(registry Registry, scanner *Scanner, opener Opener) *FixtureLoader {
	return &FixtureLoader{
		registry: registry,
		scanner:  scanner,
		opener:   opener,
	}
}

// Load returns base extended by the single available extension: one
// registered in the binary or a fixture plugin in dir. With none, base
// is returned as is; with several, ErrAmbiguousFixture.
func (l *FixtureLoader) Load(dir string, base *fixture.Fixture) (*fixture.Fixture, error) {
	candidates, err := l.candidates(dir)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return base, nil
	case 1:
		ext, err := candidates[0].load()
		if err != nil {
			return nil, fmt.Errorf("load fixture extension: %w", err)
		}
		return base.Extend(ext), nil
	}

	origins := make([]string, len(candidates))
	for i, c := range candidates {
		origins[i] = c.origin
	}
	return nil, fmt.Errorf("%w: %s", ErrAmbiguousFixture, strings.Join(origins, ", "))
}

func (l *FixtureLoader) candidates(dir string) ([]extensionCandidate, error) {
	var candidates []extensionCandidate

	if l.registry != nil {
		for _, ext := range l.registry.Fixtures() {
			ext := ext
			candidates = append(candidates, extensionCandidate{
				origin: "registry",
				load: func() (fixture.Extension, error) {
					return ext, nil
				},
			})
		}
	}

	entries, err := l.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Name != config.FixtureName {
			continue
		}
		path := entry.Path
		candidates = append(candidates, extensionCandidate{
			origin: path,
			load: func() (fixture.Extension, error) {
				return lookupFixture(l.opener, path)
			},
		})
	}

	return candidates, nil
}
