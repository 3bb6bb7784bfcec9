package navigator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
)

// ErrEmptyView is returned by To when no view reference is given.
var ErrEmptyView = errors.New("navigator: empty view reference")

// Navigator tracks navigation history for one namespace and emits
// lifecycle events as the user moves through it.
type Navigator struct {
	id     string
	store  Store
	now    func() time.Time
	logger *slog.Logger

	mu        sync.Mutex
	history   *History
	records   *recordCache
	lastStamp int64

	onView      []ViewFunc
	onImmediate []ImmediateFunc
	onTo        []ToFunc
	onForward   []TransitionFunc
	onBack      []TransitionFunc
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithStore sets where navigation state is persisted. Defaults to a MemoryStore.
func WithStore(store Store) Option {
	return func(n *Navigator) {
		if store != nil {
			n.store = store
		}
	}
}

// WithClock replaces the clock used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(n *Navigator) {
		if now != nil {
			n.now = now
		}
	}
}

// WithLogger sets the logger. Defaults to the slidenav logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// WithMaxRecords bounds how many view records are kept. Zero means unbounded.
func WithMaxRecords(limit int) Option {
	return func(n *Navigator) {
		n.records = newRecordCache(limit)
	}
}

// New creates a Navigator for the namespace id.
func New(id string, opts ...Option) *Navigator {
	n := &Navigator{
		id:      id,
		store:   NewMemoryStore(),
		now:     time.Now,
		history: NewHistory(),
		records: newRecordCache(constants.DefaultMaxRecords),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = internal.LoggerOr(n.logger).With("navigator", id)
	return n
}

// ID returns the namespace id.
func (n *Navigator) ID() string {
	return n.id
}

// OnView registers a handler for the view event.
func (n *Navigator) OnView(fn ViewFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onView = append(n.onView, fn)
}

// OnImmediate registers a handler for the immediate event.
func (n *Navigator) OnImmediate(fn ImmediateFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onImmediate = append(n.onImmediate, fn)
}

// OnTo registers a handler for the to event.
func (n *Navigator) OnTo(fn ToFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onTo = append(n.onTo, fn)
}

// OnForward registers a handler for the forward event.
func (n *Navigator) OnForward(fn TransitionFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onForward = append(n.onForward, fn)
}

// OnBack registers a handler for the back event.
func (n *Navigator) OnBack(fn TransitionFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onBack = append(n.onBack, fn)
}

// Start restores the persisted state of the namespace.
//
// If a current record exists, immediate fires with every record followed by
// view for the current one. Otherwise Start navigates to home.
func (n *Navigator) Start(home string, args ...any) error {
	state, err := n.store.Load(n.id)
	if err != nil {
		return fmt.Errorf("navigator: load state %q: %w", n.id, err)
	}

	n.mu.Lock()
	n.history = restoreHistory(state.History, state.Cursor)
	n.records.load(state.Records)
	for _, info := range state.Records {
		n.lastStamp = max(n.lastStamp, info.Timestamp)
	}

	hash, ok := n.history.Current()
	current, hasRecord := n.records.Get(hash)
	if !ok || !hasRecord {
		n.mu.Unlock()
		n.logger.Debug("No navigation state to restore", "home", home)
		return n.To(home, args...)
	}

	records := n.records.Snapshot()
	immediate := slices.Clone(n.onImmediate)
	n.mu.Unlock()

	n.logger.Debug("Restored navigation state", "current", hash, "records", len(records))

	n.emit(EventImmediate, func() {
		for _, fn := range immediate {
			fn(hash, records)
		}
	})
	n.emitView(current.View, current.Args, Info{Hash: hash, Cache: true, Timestamp: current.Timestamp})
	return nil
}

// To navigates from the current view to view, dropping any forward history.
// Navigating to the current view refreshes its arguments and renders it again.
// Arguments the store cannot persist are rejected before anything changes.
func (n *Navigator) To(view string, args ...any) error {
	if view == "" {
		return ErrEmptyView
	}
	if checker, ok := n.store.(ArgChecker); ok {
		if err := checker.CheckArgs(args); err != nil {
			return fmt.Errorf("navigator: to %q: %w", view, err)
		}
	}

	n.mu.Lock()
	prevHash, hadPrev := n.history.Current()
	prevView := n.viewOf(prevHash)
	hash := view

	if !hadPrev || prevHash != hash {
		n.history.Push(hash)
	}

	ts := n.stamp()
	n.records.Set(hash, ViewInfo{View: view, Args: slices.Clone(args), Timestamp: ts})
	state := n.stateLocked()
	to := slices.Clone(n.onTo)
	n.mu.Unlock()

	n.persist(state)

	info := Info{Hash: hash, Cache: false, Timestamp: ts}
	if hadPrev && prevHash != hash {
		n.emit(EventTo, func() {
			for _, fn := range to {
				fn(prevView, view, info)
			}
		})
	}
	n.emitView(view, args, info)
	return nil
}

// Back moves one entry back in history. When triggerEvent is false the
// history moves and is persisted but no events fire.
// Returns false when there is nothing to go back to.
func (n *Navigator) Back(triggerEvent bool) bool {
	return n.move(EventBack, triggerEvent)
}

// Forward moves one entry forward in history. See Back for triggerEvent.
func (n *Navigator) Forward(triggerEvent bool) bool {
	return n.move(EventForward, triggerEvent)
}

func (n *Navigator) move(event Event, triggerEvent bool) bool {
	n.mu.Lock()
	var (
		from, to string
		ok       bool
		handlers []TransitionFunc
	)
	if event == EventBack {
		from, to, ok = n.history.Back()
		handlers = slices.Clone(n.onBack)
	} else {
		from, to, ok = n.history.Forward()
		handlers = slices.Clone(n.onForward)
	}
	if !ok {
		n.mu.Unlock()
		return false
	}

	current := n.viewOf(from)
	target, _ := n.records.Get(to)
	if target.View == "" {
		target.View = to
	}
	state := n.stateLocked()
	n.mu.Unlock()

	n.persist(state)

	if !triggerEvent {
		n.logger.Debug("Moved history silently", "event", event.String(), "from", from, "to", to)
		return true
	}

	n.emit(event, func() {
		for _, fn := range handlers {
			fn(current, target.View)
		}
	})
	n.emitView(target.View, target.Args, Info{Hash: to, Cache: true, Timestamp: target.Timestamp})
	return true
}

// Current returns the record under the history cursor.
func (n *Navigator) Current() (ViewInfo, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	hash, ok := n.history.Current()
	if !ok {
		return ViewInfo{}, false
	}
	info, ok := n.records.Get(hash)
	if !ok {
		return ViewInfo{View: hash}, true
	}
	info.Args = slices.Clone(info.Args)
	return info, true
}

// Len returns the number of history entries.
func (n *Navigator) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history.Len()
}

// Clear forgets all history and records of the namespace.
func (n *Navigator) Clear() error {
	n.mu.Lock()
	n.history.Clear()
	n.records.Clear()
	state := n.stateLocked()
	n.mu.Unlock()

	if err := n.store.Save(n.id, state); err != nil {
		return fmt.Errorf("navigator: clear state %q: %w", n.id, err)
	}
	return nil
}

func (n *Navigator) emitView(target string, args []any, info Info) {
	n.mu.Lock()
	handlers := slices.Clone(n.onView)
	n.mu.Unlock()

	n.emit(EventView, func() {
		for _, fn := range handlers {
			fn(target, slices.Clone(args), info)
		}
	})
}

func (n *Navigator) emit(event Event, fire func()) {
	n.logger.Debug("Emitting navigator event", "event", event.String())
	fire()
}

// stamp returns a strictly increasing unix millisecond timestamp.
func (n *Navigator) stamp() int64 {
	ts := n.now().UnixMilli()
	if ts <= n.lastStamp {
		ts = n.lastStamp + 1
	}
	n.lastStamp = ts
	return ts
}

func (n *Navigator) viewOf(hash string) string {
	if info, ok := n.records.Get(hash); ok {
		return info.View
	}
	return hash
}

func (n *Navigator) stateLocked() State {
	return State{
		History: n.history.Entries(),
		Cursor:  n.history.Cursor(),
		Records: n.records.Snapshot(),
	}
}

// persist saves state. A failed save is logged and navigation continues.
func (n *Navigator) persist(state State) {
	if err := n.store.Save(n.id, state); err != nil {
		n.logger.Warn("Failed to persist navigation state", "error", err)
	}
}
