package fixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixture_Yes(t *testing.T) {
	f := newTestFixture(t, Options{In: strings.NewReader("y\nno\nyes\nY\r\nsure\n")})

	assert.True(t, f.Yes("Delete all orders"))
	assert.False(t, f.Yes(""))
	assert.True(t, f.Yes(""))
	assert.True(t, f.Yes(""))
	assert.False(t, f.Yes(""))
	assert.False(t, f.Yes(""), "end of input is a no")

	out := f.out.String()
	assert.Contains(t, out, "Delete all orders [y/n]: ")
	assert.Contains(t, out, "Continue [y/n]: ")
}

func TestFixture_Benchmark(t *testing.T) {
	f := newTestFixture(t, Options{})

	func() {
		defer f.Benchmark("create users")()
	}()

	stop := f.Benchmark("twice")
	stop()
	stop()

	out := f.out.String()
	assert.Equal(t, 1, strings.Count(out, "create users:"))
	assert.Equal(t, 1, strings.Count(out, "twice:"))
	assert.Contains(t, out, "BENCHMARK")
	assert.Contains(t, out, " sec\n")
}

func TestFixture_BenchmarkOnPanic(t *testing.T) {
	f := newTestFixture(t, Options{})

	assert.Panics(t, func() {
		defer f.Benchmark("exploding block")()
		panic("boom")
	})
	assert.Contains(t, f.out.String(), "exploding block:")
}
