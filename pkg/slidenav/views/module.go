package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
)

// ErrUnknownView is returned for references that were never defined.
var ErrUnknownView = errors.New("views: unknown view")

// Factory builds a view once its code is available.
// code is nil for views defined without a bundle.
type Factory func(code []byte) (View, error)

type definition struct {
	bundle  string
	factory Factory

	code    []byte
	ready   bool
	loading chan struct{} // closed when the in-flight fetch ends
	err     error

	view    View
	mounted bool
}

// DefineOption configures a single view definition.
type DefineOption func(*definition)

// WithBundle marks the view as needing its bundle fetched before it can be built.
func WithBundle(bundle string) DefineOption {
	return func(d *definition) {
		d.bundle = bundle
	}
}

// Module is a registry of lazily loaded views.
type Module struct {
	mu      sync.Mutex
	defs    map[string]*definition
	fetcher Fetcher
	logger  *slog.Logger
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithFetcher sets how bundles are fetched. Defaults to an HTTPFetcher.
func WithFetcher(f Fetcher) ModuleOption {
	return func(m *Module) {
		if f != nil {
			m.fetcher = f
		}
	}
}

// WithModuleLogger sets the logger. Defaults to the slidenav logger.
func WithModuleLogger(logger *slog.Logger) ModuleOption {
	return func(m *Module) {
		m.logger = logger
	}
}

// NewModule creates an empty registry.
func NewModule(opts ...ModuleOption) *Module {
	m := &Module{
		defs:    make(map[string]*definition),
		fetcher: NewHTTPFetcher(""),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = internal.LoggerOr(m.logger)
	return m
}

// Define registers ref. Views without a bundle are ready immediately.
// Redefining a reference replaces the previous definition.
func (m *Module) Define(ref string, factory Factory, opts ...DefineOption) {
	def := &definition{factory: factory}
	for _, opt := range opts {
		opt(def)
	}
	def.ready = def.bundle == ""

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs[ref] = def
}

// Defined reports whether ref has a definition.
func (m *Module) Defined(ref string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.defs[ref]
	return ok
}

// Ready reports whether the code for ref is available.
func (m *Module) Ready(ref string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := m.defs[ref]
	return ok && def.ready
}

// Ensure fetches the bundle of ref unless it is already available.
// Concurrent calls for the same ref share a single fetch. A failed fetch is
// reported to every waiter and retried by the next call.
func (m *Module) Ensure(ctx context.Context, ref string) error {
	m.mu.Lock()
	def, ok := m.defs[ref]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownView, ref)
	}
	if def.ready {
		m.mu.Unlock()
		return nil
	}

	if wait := def.loading; wait != nil {
		m.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if def.ready {
			return nil
		}
		return def.err
	}

	done := make(chan struct{})
	def.loading = done
	bundle := def.bundle
	m.mu.Unlock()

	m.logger.Debug("Fetching view bundle", "view", ref, "bundle", bundle)
	code, err := m.fetcher.Fetch(ctx, bundle)

	m.mu.Lock()
	def.loading = nil
	if err != nil {
		def.err = fmt.Errorf("views: fetch %q: %w", ref, err)
	} else {
		def.code = code
		def.ready = true
		def.err = nil
	}
	result := def.err
	m.mu.Unlock()
	close(done)

	return result
}

// Require returns the resident view for ref, building it on first use.
// Returns nil when ref is unknown, not ready, or its factory fails.
func (m *Module) Require(ref string) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	def, ok := m.defs[ref]
	if !ok || !def.ready {
		return nil
	}
	if def.view != nil {
		return def.view
	}

	view, err := def.factory(def.code)
	if err != nil {
		m.logger.Error("Failed to build view", "view", ref, "error", err)
		return nil
	}
	def.view = view
	return view
}

// mount attaches the view of ref to container the first time it is called.
func (m *Module) mount(ref, container string) {
	m.mu.Lock()
	def, ok := m.defs[ref]
	if !ok || def.view == nil || def.mounted {
		m.mu.Unlock()
		return
	}
	mountable, ok := def.view.(Mountable)
	def.mounted = true
	m.mu.Unlock()

	if ok {
		mountable.Mount(container)
	}
}
