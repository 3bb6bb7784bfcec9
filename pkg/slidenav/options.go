package slidenav

import (
	"log/slog"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ Navigator  = (*navigator.Navigator)(nil)
	_ ViewLoader = (*views.Loader)(nil)
	_ ViewSlider = (*slider.Slider)(nil)
)

// Navigator is the event source the coordinator subscribes to.
// *navigator.Navigator implements it.
type Navigator interface {
	OnView(fn navigator.ViewFunc)
	OnImmediate(fn navigator.ImmediateFunc)
	OnTo(fn navigator.ToFunc)
	OnForward(fn navigator.TransitionFunc)
	OnBack(fn navigator.TransitionFunc)
	Back(triggerEvent bool) bool
}

// ViewLoader makes views ready and passes them to done in request order.
// *views.Loader implements it.
type ViewLoader interface {
	Load(refs []string, opts views.LoadOptions, done func([]views.View))
}

// ViewSlider plays transitions and binds swipe-back. *slider.Slider implements it.
type ViewSlider interface {
	// Slide binds swipe-back on anchor so that it returns to destination.
	Slide(anchor, destination views.View, opts slider.Options)
	Forward(current, target views.View)
	Back(current, target views.View)
}

// Options configures Create.
type Options struct {
	ViewSlider ViewSlider     // Required when Animate or Slide is enabled
	ID         string         // Namespace of the navigator state
	Module     views.Registry // Resolves view references
	Loader     ViewLoader     // Defaults to a views.Loader when Module is a *views.Module
	Dispatch   func(func())   // Runs continuations of the default Loader after fetches, e.g. on the UI loop
	Store      navigator.Store
	Container  string // Mount point passed to the loader (default "body")
	Preload    bool   // Load every cached view on Start and rebuild swipe-back bindings
	Slide      bool   // Bind swipe-back when navigating to a view
	Animate    bool   // Play slider transitions on history forward/back
	MaxRecords int    // Bound on remembered view records, 0 for the navigator default
	Language   string // Locale of configuration error messages
	Logger     *slog.Logger
	Metrics    prometheus.Registerer // Optional; registers navigation counters
}

// DefaultOptions returns Options with every flag enabled and the default container.
func DefaultOptions() Options {
	return Options{
		Container: constants.DefaultContainer,
		Preload:   true,
		Slide:     true,
		Animate:   true,
		Language:  constants.DefaultLanguage,
	}
}
