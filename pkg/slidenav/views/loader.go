package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
	"go.uber.org/atomic"
)

// ErrNotResident is reported when a loaded view cannot be required.
var ErrNotResident = errors.New("views: view not resident after load")

// LoadOptions are passed along with every load request.
type LoadOptions struct {
	Container string // mount point for Mountable views
}

// Loader makes views ready before handing them to a continuation.
type Loader struct {
	module   *Module
	dispatch func(func())
	onError  func(ref string, err error)
	logger   *slog.Logger
	inflight *atomic.Int64
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDispatch sets how continuations of asynchronous loads are run, so an
// application can move them onto its UI loop. Defaults to running them on
// the loading goroutine.
func WithDispatch(dispatch func(func())) LoaderOption {
	return func(l *Loader) {
		if dispatch != nil {
			l.dispatch = dispatch
		}
	}
}

// WithErrorHandler is called once per view that failed to load.
func WithErrorHandler(fn func(ref string, err error)) LoaderOption {
	return func(l *Loader) {
		l.onError = fn
	}
}

// WithLoaderLogger sets the logger. Defaults to the slidenav logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader over module.
func NewLoader(module *Module, opts ...LoaderOption) *Loader {
	l := &Loader{
		module:   module,
		dispatch: func(fn func()) { fn() },
		inflight: atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = internal.LoggerOr(l.logger)
	return l
}

// Load ensures every view in refs is ready, then calls done with the views
// in the order of refs.
//
// When all views are ready already, done runs before Load returns. Otherwise
// the bundles are fetched concurrently and done is dispatched once all of
// them arrived. If any fetch fails, done is never called.
func (l *Loader) Load(refs []string, opts LoadOptions, done func([]View)) {
	var pending []string
	for _, ref := range refs {
		if !l.module.Ready(ref) && !slices.Contains(pending, ref) {
			pending = append(pending, ref)
		}
	}

	if len(pending) == 0 {
		l.finish(refs, opts, done)
		return
	}

	l.inflight.Inc()
	go func() {
		defer l.inflight.Dec()

		errs := make([]error, len(pending))
		var wg sync.WaitGroup
		for i, ref := range pending {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = l.module.Ensure(context.Background(), ref)
			}()
		}
		wg.Wait()

		failed := false
		for i, err := range errs {
			if err != nil {
				failed = true
				l.fail(pending[i], err)
			}
		}
		if failed {
			return
		}

		l.dispatch(func() {
			l.finish(refs, opts, done)
		})
	}()
}

// Pending returns the number of loads waiting on fetches.
func (l *Loader) Pending() int64 {
	return l.inflight.Load()
}

func (l *Loader) finish(refs []string, opts LoadOptions, done func([]View)) {
	views := make([]View, len(refs))
	for i, ref := range refs {
		view := l.module.Require(ref)
		if view == nil {
			err := ErrNotResident
			if !l.module.Defined(ref) {
				err = ErrUnknownView
			}
			l.fail(ref, fmt.Errorf("%w: %q", err, ref))
			return
		}
		if opts.Container != "" {
			l.module.mount(ref, opts.Container)
		}
		views[i] = view
	}
	done(views)
}

func (l *Loader) fail(ref string, err error) {
	l.logger.Error("Failed to load view", "view", ref, "error", err)
	if l.onError != nil {
		l.onError(ref, err)
	}
}
