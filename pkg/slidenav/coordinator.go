package slidenav

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
)

// Create builds a navigator for opts.ID and wires it to the views of
// opts.Module, the way Attach does. The returned navigator is not started:
// register any extra handlers, then call Start.
func Create(opts Options) (*navigator.Navigator, error) {
	resolved, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	navOpts := []navigator.Option{
		navigator.WithStore(resolved.Store),
		navigator.WithLogger(resolved.Logger),
	}
	if resolved.MaxRecords > 0 {
		navOpts = append(navOpts, navigator.WithMaxRecords(resolved.MaxRecords))
	}

	nav := navigator.New(resolved.ID, navOpts...)
	wire(nav, resolved)
	return nav, nil
}

// Attach wires an existing navigator to the views of opts.Module.
func Attach(nav Navigator, opts Options) error {
	resolved, err := resolve(opts)
	if err != nil {
		return err
	}
	wire(nav, resolved)
	return nil
}

// resolve validates opts and fills in derived collaborators.
func resolve(opts Options) (Options, error) {
	logger := internal.LoggerOr(opts.Logger)

	fail := func(field string, err error) (Options, error) {
		cfgErr := newConfigError(field, err, opts.Language)
		logger.Error("Invalid navigator options", "id", opts.ID, "error", cfgErr.Error())
		return Options{}, cfgErr
	}

	if opts.Animate && opts.ViewSlider == nil {
		return fail("Animate", ErrAnimateRequiresSlider)
	}
	if opts.Slide && opts.ViewSlider == nil {
		return fail("Slide", ErrSlideRequiresSlider)
	}
	if opts.Module == nil {
		return fail("Module", ErrModuleRequired)
	}
	if opts.Loader == nil {
		module, ok := opts.Module.(*views.Module)
		if !ok {
			return fail("Loader", ErrLoaderRequired)
		}
		opts.Loader = views.NewLoader(module,
			views.WithLoaderLogger(logger),
			views.WithDispatch(opts.Dispatch),
		)
	}
	if opts.Container == "" {
		opts.Container = constants.DefaultContainer
	}
	opts.Logger = logger
	return opts, nil
}

// topMarker is implemented by sliders that track the visible view, such as
// *slider.Slider.
type topMarker interface {
	MarkTop(view views.View)
}

type coordinator struct {
	nav     Navigator
	opts    Options
	logger  *slog.Logger
	metrics *metrics
}

func wire(nav Navigator, opts Options) {
	c := &coordinator{
		nav:     nav,
		opts:    opts,
		logger:  opts.Logger.With("navigator", opts.ID),
		metrics: newMetrics(opts.Metrics, opts.Logger),
	}

	nav.OnView(c.onView)
	if opts.Preload {
		nav.OnImmediate(c.onImmediate)
	}
	if opts.Slide {
		nav.OnTo(c.onTo)
	}
	nav.OnForward(c.onForward)
	nav.OnBack(c.onBack)

	c.logger.Debug("Navigator wired",
		"preload", opts.Preload, "slide", opts.Slide, "animate", opts.Animate, "container", opts.Container)
}

// back follows a swipe-back in history without re-running the transition.
func (c *coordinator) back() {
	c.nav.Back(false)
}

func (c *coordinator) load(refs []string, done func([]views.View)) {
	c.opts.Loader.Load(refs, views.LoadOptions{Container: c.opts.Container}, done)
}

// onView shows a view that is re-entered and already rendered, and renders
// it with the navigation arguments otherwise.
func (c *coordinator) onView(target string, args []any, info navigator.Info) {
	c.metrics.event(navigator.EventView.String())

	c.load([]string{target}, func(vs []views.View) {
		view := vs[0]
		if info.Cache && view.Rendered() {
			c.logger.Debug("Showing cached view", "view", target)
			view.Show()
		} else {
			c.logger.Debug("Rendering view", "view", target, "args", len(args))
			view.Render(args...)
		}
		if marker, ok := c.opts.ViewSlider.(topMarker); ok {
			marker.MarkTop(view)
		}
	})
}

// onImmediate preloads every remembered view and rebuilds the swipe-back
// chain from the most recent record down.
func (c *coordinator) onImmediate(hash string, records map[string]navigator.ViewInfo) {
	c.metrics.event(navigator.EventImmediate.String())

	infos := byRecency(records)
	refs := make([]string, len(infos))
	for i, info := range infos {
		refs[i] = info.View
	}

	c.logger.Debug("Preloading views", "current", hash, "views", refs)

	c.load(refs, func([]views.View) {
		if !c.opts.Slide {
			return
		}
		for i := 0; i+1 < len(infos); i++ {
			current, next := infos[i], infos[i+1]
			c.opts.ViewSlider.Slide(
				c.opts.Module.Require(current.View),
				c.opts.Module.Require(next.View),
				slider.Options{Args: next.Args, Back: c.back},
			)
			c.metrics.transition("slide")
		}
	})
}

// onTo binds swipe-back on the view being entered so it returns to the one
// being left.
func (c *coordinator) onTo(current, target string, info navigator.Info) {
	c.metrics.event(navigator.EventTo.String())

	from := c.opts.Module.Require(current)
	c.load([]string{target}, func(vs []views.View) {
		c.opts.ViewSlider.Slide(vs[0], from, slider.Options{Back: c.back})
		c.metrics.transition("slide")
	})
}

func (c *coordinator) onForward(current, target string) {
	c.metrics.event(navigator.EventForward.String())
	c.switchViews(current, target, slider.DirectionForward)
}

func (c *coordinator) onBack(current, target string) {
	c.metrics.event(navigator.EventBack.String())
	c.switchViews(current, target, slider.DirectionBack)
}

func (c *coordinator) switchViews(current, target string, dir slider.Direction) {
	from := c.opts.Module.Require(current)

	c.load([]string{target}, func(vs []views.View) {
		to := vs[0]
		if c.opts.Animate {
			if dir == slider.DirectionForward {
				c.opts.ViewSlider.Forward(from, to)
			} else {
				c.opts.ViewSlider.Back(from, to)
			}
			c.metrics.transition(dir.String())
			return
		}

		if from != nil {
			from.Hide()
		} else {
			c.logger.Warn("Current view is not resident", "view", current)
		}
		to.Show()
		c.metrics.transition("direct")
	})
}

// byRecency orders records most recent first. Equal timestamps keep the
// order produced by map iteration.
func byRecency(records map[string]navigator.ViewInfo) []navigator.ViewInfo {
	infos := make([]navigator.ViewInfo, 0, len(records))
	for _, info := range records {
		infos = append(infos, info)
	}
	slices.SortStableFunc(infos, func(a, b navigator.ViewInfo) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return infos
}
