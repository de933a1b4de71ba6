package fixture

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	*Fixture
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func newTestFixture(t *testing.T, opts Options) *testFixture {
	t.Helper()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	if opts.Out == nil {
		opts.Out = out
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	opts.Logger = log.NewWithOptions(logs, log.Options{Level: log.DebugLevel})
	return &testFixture{Fixture: New(opts), out: out, logs: logs}
}

func TestNew_Defaults(t *testing.T) {
	f := New(Options{Host: "http://api", Token: "secret"})

	assert.Equal(t, "http://api", f.Host())
	assert.Equal(t, "secret", f.Token())
	assert.Positive(t, f.opts.Workers)
	assert.NotNil(t, f.opts.Client)
	assert.NotNil(t, f.Context())

	funcs := f.Funcs()
	assert.NotNil(t, funcs.Request)
	assert.NotNil(t, funcs.Log)
	assert.NotNil(t, funcs.Yes)
}

func TestFuncs_Merge(t *testing.T) {
	defaults := Funcs{
		UUIDSearch: func(string) (string, error) { return "default-search", nil },
		UUID:       func() string { return "default-uuid" },
	}
	override := Funcs{
		UUIDSearch: func(string) (string, error) { return "project-search", nil },
	}

	merged := override.Merge(defaults)

	got, err := merged.UUIDSearch("x")
	require.NoError(t, err)
	assert.Equal(t, "project-search", got, "own definition wins")
	assert.Equal(t, "default-uuid", merged.UUID(), "missing definition is back-filled")
	assert.Nil(t, merged.Request, "nil on both sides stays nil")
}

func TestFixture_Extend(t *testing.T) {
	base := newTestFixture(t, Options{Host: "http://api"})

	var seenBase *Fixture
	ext := func(b *Fixture) Funcs {
		seenBase = b
		return Funcs{
			UUID: func() string { return "fixed-" + b.Host() },
		}
	}

	effective := base.Extend(ext)

	require.NotNil(t, seenBase)
	assert.Equal(t, "http://api", seenBase.Host())
	assert.Equal(t, "fixed-http://api", effective.UUID())
	assert.NotEqual(t, "fixed-http://api", seenBase.UUID(), "extension receives the table without its own overrides")

	id, err := effective.UUIDSearch("order/3f2a-9b")
	require.NoError(t, err)
	assert.Equal(t, "3f2a-9b", id, "default kept for names the extension leaves out")

	assert.NotEqual(t, "fixed-http://api", base.UUID(), "base fixture is not modified")
}

func TestFixture_WithContextKeepsExtensions(t *testing.T) {
	base := newTestFixture(t, Options{})
	effective := base.Extend(func(*Fixture) Funcs {
		return Funcs{UUID: func() string { return "fixed" }}
	})

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "run")
	bound := effective.WithContext(ctx)

	assert.Equal(t, "fixed", bound.UUID())
	assert.Equal(t, "run", bound.Context().Value(key{}))
	assert.Nil(t, effective.Context().Value(key{}), "the receiver is not rebound")
}

func TestFixture_ExtendNil(t *testing.T) {
	base := newTestFixture(t, Options{})
	assert.Same(t, base.Fixture, base.Extend(nil))
}

func TestFixture_Logging(t *testing.T) {
	f := newTestFixture(t, Options{})

	f.Debug("debug line")
	f.Info(map[string]int{"count": 3})
	f.Fatal("still running")

	logs := f.logs.String()
	assert.Contains(t, logs, "debug line")
	assert.Contains(t, logs, "count:3")
	assert.Contains(t, logs, "still running")
}

func TestFixture_LogOverride(t *testing.T) {
	f := newTestFixture(t, Options{})

	var got []string
	effective := f.Extend(func(*Fixture) Funcs {
		return Funcs{
			Log: func(level log.Level, msg any) {
				got = append(got, level.String()+":"+msg.(string))
			},
		}
	})

	effective.Warn("careful")
	assert.Equal(t, []string{"warn:careful"}, got)
	assert.Empty(t, f.logs.String())
}

func TestFixture_DBWithoutDSN(t *testing.T) {
	f := newTestFixture(t, Options{})

	_, err := f.DB()
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.NoError(t, f.Close())
}
