// Package slider performs transitions between views and binds swipe-back
// actions to them.
//
// A Slider does not animate by itself. Applications that draw transitions
// plug an Animator in; the Slider decides which views are hidden, shown or
// rendered and when the bound back action runs.
package slider

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
	"go.uber.org/atomic"
)

// Direction is the kind of transition being played.
type Direction int

const (
	DirectionForward   Direction = iota // Browser-style forward
	DirectionBack                       // Browser-style back
	DirectionSwipeBack                  // Swipe-back gesture on a bound view
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBack:
		return "back"
	case DirectionSwipeBack:
		return "swipe_back"
	default:
		return "unknown"
	}
}

// Options accompany a swipe-back binding.
type Options struct {
	Args []any  // render arguments of the destination view
	Back func() // called after a swipe-back transition completed
}

// Animator is told about every transition after the views were switched.
type Animator func(from, to views.View, dir Direction)

type binding struct {
	destination views.View
	opts        Options
}

// Slider switches between views and keeps swipe-back bindings.
type Slider struct {
	mu       sync.Mutex
	bindings map[views.View]binding
	top      views.View

	animator Animator
	busy     *atomic.Bool
	logger   *slog.Logger
}

// Option configures a Slider.
type Option func(*Slider)

// WithAnimator sets the transition hook.
func WithAnimator(fn Animator) Option {
	return func(s *Slider) {
		s.animator = fn
	}
}

// WithLogger sets the logger. Defaults to the slidenav logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Slider) {
		s.logger = logger
	}
}

// New creates a Slider with no bindings.
func New(opts ...Option) *Slider {
	s := &Slider{
		bindings: make(map[views.View]binding),
		busy:     atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = internal.LoggerOr(s.logger)
	return s
}

// Slide binds swipe-back on anchor so that it returns to destination.
// A later binding for the same anchor replaces the earlier one.
func (s *Slider) Slide(anchor, destination views.View, opts Options) {
	if anchor == nil || destination == nil {
		s.logger.Warn("Ignoring slide binding with a missing view",
			"anchor_set", anchor != nil, "destination_set", destination != nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[anchor] = binding{destination: destination, opts: opts}
}

// Forward plays the forward transition from current to target.
func (s *Slider) Forward(current, target views.View) {
	s.transition(current, target, DirectionForward)
}

// Back plays the back transition from current to target.
func (s *Slider) Back(current, target views.View) {
	s.transition(current, target, DirectionBack)
}

// MarkTop records view as the one currently on top, for views shown outside
// of a slider transition.
func (s *Slider) MarkTop(view views.View) {
	if view == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = view
}

// Top returns the view on top, or nil before any view was shown.
func (s *Slider) Top() views.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top
}

// SwipeBackTop swipes back from the view on top. See SwipeBack.
func (s *Slider) SwipeBackTop() bool {
	top := s.Top()
	if top == nil {
		return false
	}
	return s.SwipeBack(top)
}

// SwipeBack runs the back transition bound to anchor, then the bound back
// action. Returns false when anchor has no binding or another transition is
// still running.
func (s *Slider) SwipeBack(anchor views.View) bool {
	s.mu.Lock()
	b, ok := s.bindings[anchor]
	s.mu.Unlock()
	if !ok {
		return false
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("Swipe-back rejected, transition in progress")
		return false
	}

	anchor.Hide()
	if b.destination.Rendered() {
		b.destination.Show()
	} else {
		b.destination.Render(b.opts.Args...)
	}
	s.MarkTop(b.destination)
	s.animate(anchor, b.destination, DirectionSwipeBack)
	s.busy.Store(false)

	if b.opts.Back != nil {
		b.opts.Back()
	}
	return true
}

// Bound returns the destination bound to anchor.
func (s *Slider) Bound(anchor views.View) (views.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bindings[anchor]
	return b.destination, ok
}

// Unbind removes the swipe-back binding of anchor.
func (s *Slider) Unbind(anchor views.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bindings, anchor)
}

// Busy reports whether a transition is running.
func (s *Slider) Busy() bool {
	return s.busy.Load()
}

func (s *Slider) transition(from, to views.View, dir Direction) {
	if to == nil {
		s.logger.Warn("Ignoring transition without a target", "direction", dir.String())
		return
	}
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("Transition rejected, another is in progress", "direction", dir.String())
		return
	}
	defer s.busy.Store(false)

	if from != nil {
		from.Hide()
	}
	to.Show()
	s.MarkTop(to)
	s.animate(from, to, dir)
}

func (s *Slider) animate(from, to views.View, dir Direction) {
	if s.animator != nil {
		s.animator(from, to, dir)
	}
}
