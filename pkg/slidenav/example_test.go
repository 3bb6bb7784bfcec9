package slidenav_test

import (
	"fmt"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
)

// screen prints what happens to it.
type screen struct {
	name     string
	rendered bool
}

func (s *screen) Render(args ...any) {
	s.rendered = true
	fmt.Printf("render %s %v\n", s.name, args)
}

func (s *screen) Show()          { fmt.Printf("show %s\n", s.name) }
func (s *screen) Hide()          { fmt.Printf("hide %s\n", s.name) }
func (s *screen) Rendered() bool { return s.rendered }

func define(m *views.Module, names ...string) {
	for _, name := range names {
		m.Define(name, func([]byte) (views.View, error) {
			return &screen{name: name}, nil
		})
	}
}

// Example demonstrates navigating forward and swiping back.
func Example() {
	module := views.NewModule()
	define(module, "GameList", "GameDetail")

	sl := slider.New()

	opts := slidenav.DefaultOptions()
	opts.ID = "games"
	opts.Module = module
	opts.ViewSlider = sl

	nav, err := slidenav.Create(opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = nav.Start("GameList")
	_ = nav.To("GameDetail", "Portal")

	sl.SwipeBack(module.Require("GameDetail"))

	current, _ := nav.Current()
	fmt.Println("current:", current.View)

	// Output:
	// render GameList []
	// render GameDetail [Portal]
	// hide GameDetail
	// show GameList
	// current: GameList
}

// Example_withoutAnimation demonstrates direct hide/show on browser back.
func Example_withoutAnimation() {
	module := views.NewModule()
	define(module, "Home", "Settings")

	opts := slidenav.DefaultOptions()
	opts.ID = "plain"
	opts.Module = module
	opts.Animate = false
	opts.Slide = false

	nav, err := slidenav.Create(opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = nav.Start("Home")
	_ = nav.To("Settings")
	nav.Back(true)

	// Output:
	// render Home []
	// render Settings []
	// hide Settings
	// show Home
	// show Home
}
