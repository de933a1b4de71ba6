package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"testing"

	"scenario/internal/domain"
	"scenario/pkg/fixture"
)

type fakeRegistry struct {
	units    []domain.Unit
	fixtures []fixture.Extension
}

func (r *fakeRegistry) Units() []domain.Unit          { return r.units }
func (r *fakeRegistry) Fixtures() []fixture.Extension { return r.fixtures }

type fakeSymbols map[string]plugin.Symbol

func (s fakeSymbols) Lookup(name string) (plugin.Symbol, error) {
	sym, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("plugin: symbol %s not found", name)
	}
	return sym, nil
}

// fakeOpener serves symbols by file name and counts opens.
type fakeOpener struct {
	plugins map[string]fakeSymbols
	opened  []string
}

func (o *fakeOpener) Open(path string) (Symbols, error) {
	o.opened = append(o.opened, filepath.Base(path))
	symbols, ok := o.plugins[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("open plugin %s: not a plugin", path)
	}
	return symbols, nil
}

func registered(name string) domain.Unit {
	return domain.Unit{
		Name:   name,
		Source: domain.SourceRegistry,
		Load: func() (func(*fixture.Fixture) error, error) {
			return func(*fixture.Fixture) error { return nil }, nil
		},
	}
}

func touch(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte("plugin"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}
}
