package discovery

import (
	"fmt"
	"plugin"

	"scenario/pkg/fixture"
)

const (
	// TestSymbol is the entry point a scenario plugin exports
	TestSymbol = "Test"
	// FixtureSymbol is the extension a fixture plugin exports
	FixtureSymbol = "Fixture"
)

// Symbols looks up exported names of an opened unit.
type Symbols interface {
	Lookup(name string) (plugin.Symbol, error)
}

// Opener opens unit files.
type Opener interface {
	Open(path string) (Symbols, error)
}

// PluginOpener opens Go plugins built with -buildmode=plugin.
type PluginOpener struct{}

// NewPluginOpener creates a new PluginOpener
func NewPluginOpener() *PluginOpener {
	return &PluginOpener{}
}

// Open loads the plugin at path.
func (o *PluginOpener) Open(path string) (Symbols, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %w", path, err)
	}
	return p, nil
}

func lookupTest(opener Opener, path string) (func(*fixture.Fixture) error, error) {
	sym, err := lookup(opener, path, TestSymbol)
	if err != nil {
		return nil, err
	}
	switch fn := sym.(type) {
	case func(*fixture.Fixture) error:
		return fn, nil
	case *func(*fixture.Fixture) error:
		return *fn, nil
	}
	return nil, fmt.Errorf("%s: %s has type %T, want func(*fixture.Fixture) error", path, TestSymbol, sym)
}

func lookupFixture(opener Opener, path string) (fixture.Extension, error) {
	sym, err := lookup(opener, path, FixtureSymbol)
	if err != nil {
		return nil, err
	}
	switch ext := sym.(type) {
	case func(*fixture.Fixture) fixture.Funcs:
		return ext, nil
	case fixture.Extension:
		return ext, nil
	case *fixture.Extension:
		return *ext, nil
	}
	return nil, fmt.Errorf("%s: %s has type %T, want func(*fixture.Fixture) fixture.Funcs", path, FixtureSymbol, sym)
}

func lookup(opener Opener, path, name string) (plugin.Symbol, error) {
	symbols, err := opener.Open(path)
	if err != nil {
		return nil, err
	}
	sym, err := symbols.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sym, nil
}
