package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenario/internal/cli"
	"scenario/internal/cli/commands"
	"scenario/pkg/fixture"
	"scenario/pkg/scenario"
)

const testConfig = `[DEFAULT]
host = http://127.0.0.1:1
token = secret

[staging]
host = http://staging.local
`

type testRun struct {
	out  *bytes.Buffer
	err  *bytes.Buffer
	code int
}

func newWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte(testConfig), 0644))
	return dir
}

func execute(t *testing.T, registry *scenario.Registry, args ...string) testRun {
	t.Helper()
	color.NoColor = true

	run := testRun{out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	rootCmd := commands.NewRootCommand(registry, "test", commands.IO{In: strings.NewReader(""), Out: run.out, Err: run.err})
	rootCmd.SetArgs(args)
	run.code = cli.ExitCode(rootCmd.ExecuteContext(context.Background()))
	return run
}

func newRegistry(t *testing.T, tests map[string]scenario.TestFunc, order ...string) *scenario.Registry {
	t.Helper()
	r := scenario.NewRegistry()
	for _, name := range order {
		require.NoError(t, r.Register(name, tests[name]))
	}
	return r
}

func TestRoot_RunAll(t *testing.T) {
	dir := newWorkDir(t)
	var hosts []string
	registry := newRegistry(t, map[string]scenario.TestFunc{
		"a": func(f *fixture.Fixture) error {
			hosts = append(hosts, f.Host())
			return errors.New("order rejected")
		},
		"b": func(f *fixture.Fixture) error {
			hosts = append(hosts, f.Host())
			return nil
		},
	}, "a", "b")

	run := execute(t, registry, "-C", dir, "--all")

	assert.Equal(t, cli.ExitOK, run.code, "scenario failures do not change the exit status")
	assert.Equal(t, []string{"http://127.0.0.1:1", "http://127.0.0.1:1"}, hosts)

	out := run.out.String()
	assert.Contains(t, out, "Run scenarios in http://127.0.0.1:1")
	assert.Contains(t, out, "* a .......................... [FAIL]")
	assert.Contains(t, out, "Message: order rejected")
	assert.Contains(t, out, "* b .......................... [DONE]")
	assert.Less(t, strings.Index(out, "* a"), strings.Index(out, "* b"))
}

func TestRoot_Environment(t *testing.T) {
	dir := newWorkDir(t)
	var host, token string
	registry := newRegistry(t, map[string]scenario.TestFunc{
		"probe": func(f *fixture.Fixture) error {
			host, token = f.Host(), f.Token()
			return nil
		},
	}, "probe")

	run := execute(t, registry, "-C", dir, "-e", "staging", "probe")
	require.Equal(t, cli.ExitOK, run.code)
	assert.Equal(t, "http://staging.local", host)
	assert.Equal(t, "secret", token, "token inherited from DEFAULT")

	run = execute(t, registry, "-C", dir, "-e", "production", "--all")
	assert.Equal(t, cli.ExitConfig, run.code)
	assert.NotContains(t, run.out.String(), "probe")
}

func TestRoot_MissingConfig(t *testing.T) {
	run := execute(t, scenario.NewRegistry(), "-C", t.TempDir(), "--list")
	assert.Equal(t, cli.ExitConfig, run.code)
}

func TestRoot_Usage(t *testing.T) {
	run := execute(t, scenario.NewRegistry(), "-C", newWorkDir(t))
	assert.Equal(t, cli.ExitUsage, run.code)
	assert.Contains(t, run.out.String(), "Please specify a scenario target or --all")
}

func TestRoot_List(t *testing.T) {
	dir := newWorkDir(t)
	called := false
	registry := newRegistry(t, map[string]scenario.TestFunc{
		"first":  func(*fixture.Fixture) error { called = true; return nil },
		"second": func(*fixture.Fixture) error { called = true; return nil },
	}, "first", "second")
	registry.RegisterFixture(func(*fixture.Fixture) fixture.Funcs { return fixture.Funcs{} })

	run := execute(t, registry, "-C", dir, "--list")
	require.Equal(t, cli.ExitOK, run.code)
	assert.Equal(t, "first\nsecond\n", run.out.String())
	assert.False(t, called)
}

func TestRoot_Targets(t *testing.T) {
	dir := newWorkDir(t)
	var ran []string
	record := func(name string) scenario.TestFunc {
		return func(*fixture.Fixture) error {
			ran = append(ran, name)
			return nil
		}
	}
	registry := newRegistry(t, map[string]scenario.TestFunc{
		"a": record("a"),
		"b": record("b"),
		"c": record("c"),
	}, "a", "b", "c")

	run := execute(t, registry, "-C", dir, "c", "missing", "a")
	require.Equal(t, cli.ExitOK, run.code)
	assert.Equal(t, []string{"a", "c"}, ran, "discovery order, not argument order")
	assert.Contains(t, run.out.String(), `! no scenario named "missing"`)
}

func TestRoot_FixtureExtension(t *testing.T) {
	dir := newWorkDir(t)
	var id string
	registry := newRegistry(t, map[string]scenario.TestFunc{
		"uses_uuid": func(f *fixture.Fixture) error {
			id = f.UUID()
			return nil
		},
	}, "uses_uuid")
	registry.RegisterFixture(func(*fixture.Fixture) fixture.Funcs {
		return fixture.Funcs{UUID: func() string { return "fixed" }}
	})

	run := execute(t, registry, "-C", dir, "--all")
	require.Equal(t, cli.ExitOK, run.code)
	assert.Equal(t, "fixed", id)

	registry.RegisterFixture(func(*fixture.Fixture) fixture.Funcs { return fixture.Funcs{} })
	run = execute(t, registry, "-C", dir, "--all")
	assert.Equal(t, cli.ExitConfig, run.code)
}
