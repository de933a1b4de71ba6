// Package fixture provides the helper toolkit handed to every scenario:
// authenticated HTTP wrappers, status assertions, polling loops, bounded
// repetition, timing and leveled logging.
//
// Every overridable operation lives in a Funcs dispatch table. A project
// can replace selected operations with an Extension; operations it leaves
// nil fall back to the defaults. The table is resolved when the extension
// is applied or the fixture is bound to a new context, not on every call.
package fixture

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-cleanhttp"
)

// Options configures a Fixture. Host and Token are required for any
// request helper to reach the server; the rest have defaults.
type Options struct {
	Host     string
	Token    string
	Database string

	// Workers is the default pool size for Repeat. Zero means runtime.NumCPU().
	Workers int

	Client   *http.Client
	Logger   *log.Logger
	In       io.Reader
	Out      io.Writer
	Progress io.Writer
}

// Funcs is the dispatch table behind a Fixture.
type Funcs struct {
	Request        func(method, path string, opts ...RequestOption) (*Response, error)
	Assert2xx      func(resp *Response) error
	UUIDSearch     func(text string) (string, error)
	UUID           func() string
	Sleep          func(d time.Duration)
	Repeat         func(job Job, repeats, workers int) ([]any, error)
	WaitUntil      func(test Predicate, opts ...WaitOption) error
	WaitUntilCount func(counter Counter, total int, opts ...WaitOption) error
	Benchmark      func(title string) (stop func())
	Yes            func(prompt string) bool
	Log            func(level log.Level, msg any)
}

// Merge returns fn with every nil operation taken from defaults.
func (fn Funcs) Merge(defaults Funcs) Funcs {
	if fn.Request == nil {
		fn.Request = defaults.Request
	}
	if fn.Assert2xx == nil {
		fn.Assert2xx = defaults.Assert2xx
	}
	if fn.UUIDSearch == nil {
		fn.UUIDSearch = defaults.UUIDSearch
	}
	if fn.UUID == nil {
		fn.UUID = defaults.UUID
	}
	if fn.Sleep == nil {
		fn.Sleep = defaults.Sleep
	}
	if fn.Repeat == nil {
		fn.Repeat = defaults.Repeat
	}
	if fn.WaitUntil == nil {
		fn.WaitUntil = defaults.WaitUntil
	}
	if fn.WaitUntilCount == nil {
		fn.WaitUntilCount = defaults.WaitUntilCount
	}
	if fn.Benchmark == nil {
		fn.Benchmark = defaults.Benchmark
	}
	if fn.Yes == nil {
		fn.Yes = defaults.Yes
	}
	if fn.Log == nil {
		fn.Log = defaults.Log
	}
	return fn
}

// Extension builds project-specific overrides. It receives a fixture
// holding the table as it was before the extension, so overrides can call
// back into the helpers they replace. It runs again each time the fixture
// is rebound with WithContext.
type Extension func(base *Fixture) Funcs

// Fixture is the helper set passed to each scenario.
type Fixture struct {
	opts  Options
	funcs Funcs
	exts  []Extension
	ctx   context.Context
	input *bufio.Reader
	quiet *atomic.Int32
	db    *dbHandle
}

// New creates a default fixture.
func New(opts Options) *Fixture {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Client == nil {
		opts.Client = cleanhttp.DefaultPooledClient()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Progress == nil {
		opts.Progress = os.Stderr
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(opts.Out, log.Options{Level: log.DebugLevel})
	}

	f := &Fixture{
		opts:  opts,
		ctx:   context.Background(),
		input: bufio.NewReader(opts.In),
		quiet: new(atomic.Int32),
		db:    &dbHandle{},
	}
	f.resolve()
	return f
}

// Defaults returns the built-in operations bound to f.
func (f *Fixture) Defaults() Funcs {
	return Funcs{
		Request:        f.request,
		Assert2xx:      f.assert2xx,
		UUIDSearch:     uuidSearch,
		UUID:           newUUID,
		Sleep:          f.sleep,
		Repeat:         f.repeat,
		WaitUntil:      f.waitUntil,
		WaitUntilCount: f.waitUntilCount,
		Benchmark:      f.benchmark,
		Yes:            f.yes,
		Log:            f.log,
	}
}

// Extend returns a fixture whose table is ext's overrides merged over f's
// operations. A nil ext returns f unchanged.
func (f *Fixture) Extend(ext Extension) *Fixture {
	if ext == nil {
		return f
	}
	out := f.clone()
	out.exts = append(f.exts[:len(f.exts):len(f.exts)], ext)
	out.resolve()
	return out
}

// WithContext returns a copy of f bound to ctx. Requests and waits made
// through the copy stop when ctx is done.
func (f *Fixture) WithContext(ctx context.Context) *Fixture {
	out := f.clone()
	out.ctx = ctx
	out.resolve()
	return out
}

// resolve rebuilds the table so the defaults are bound to f and every
// extension is layered over them in order.
func (f *Fixture) resolve() {
	f.funcs = f.Defaults()
	for _, ext := range f.exts {
		f.funcs = ext(f.clone()).Merge(f.funcs)
	}
}

// Context returns the context the fixture is bound to.
func (f *Fixture) Context() context.Context {
	return f.ctx
}

// Funcs returns the resolved dispatch table.
func (f *Fixture) Funcs() Funcs {
	return f.funcs
}

// Host returns the configured base URL.
func (f *Fixture) Host() string {
	return f.opts.Host
}

// Token returns the configured bearer token.
func (f *Fixture) Token() string {
	return f.opts.Token
}

// Close releases the database handle if one was opened.
func (f *Fixture) Close() error {
	return f.db.close()
}

func (f *Fixture) clone() *Fixture {
	out := *f
	return &out
}

// Request sends an authenticated request to the host.
func (f *Fixture) Request(method, path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(method, path, opts...)
}

// Get sends an authenticated GET request.
func (f *Fixture) Get(path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(http.MethodGet, path, opts...)
}

// Post sends an authenticated POST request.
func (f *Fixture) Post(path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(http.MethodPost, path, opts...)
}

// Put sends an authenticated PUT request.
func (f *Fixture) Put(path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(http.MethodPut, path, opts...)
}

// Patch sends an authenticated PATCH request.
func (f *Fixture) Patch(path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(http.MethodPatch, path, opts...)
}

// Delete sends an authenticated DELETE request.
func (f *Fixture) Delete(path string, opts ...RequestOption) (*Response, error) {
	return f.funcs.Request(http.MethodDelete, path, opts...)
}

// Assert2xx fails unless resp carries a 2xx status.
func (f *Fixture) Assert2xx(resp *Response) error {
	return f.funcs.Assert2xx(resp)
}

// UUIDSearch extracts the UUID-shaped suffix of text.
func (f *Fixture) UUIDSearch(text string) (string, error) {
	return f.funcs.UUIDSearch(text)
}

// UUID returns a new random UUID string.
func (f *Fixture) UUID() string {
	return f.funcs.UUID()
}

// Sleep pauses for d or until the fixture's context is done.
func (f *Fixture) Sleep(d time.Duration) {
	f.funcs.Sleep(d)
}

// Repeat runs job repeats times on a pool of workers goroutines and
// returns the results in submission order. workers <= 0 uses the
// fixture's default pool size.
func (f *Fixture) Repeat(job Job, repeats, workers int) ([]any, error) {
	return f.funcs.Repeat(job, repeats, workers)
}

// WaitUntil polls test until it reports true.
func (f *Fixture) WaitUntil(test Predicate, opts ...WaitOption) error {
	return f.funcs.WaitUntil(test, opts...)
}

// WaitUntilCount polls counter until it reaches total.
func (f *Fixture) WaitUntilCount(counter Counter, total int, opts ...WaitOption) error {
	return f.funcs.WaitUntilCount(counter, total, opts...)
}

// Benchmark starts a timer and returns the func that stops it:
//
//	defer f.Benchmark("create orders")()
func (f *Fixture) Benchmark(title string) func() {
	return f.funcs.Benchmark(title)
}

// Yes asks the user to confirm on the fixture's input.
func (f *Fixture) Yes(prompt string) bool {
	return f.funcs.Yes(prompt)
}
