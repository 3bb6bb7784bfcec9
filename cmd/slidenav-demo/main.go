// Command slidenav-demo drives a slidenav navigator from the terminal.
//
// Navigation state is kept in a state directory, so quitting and starting
// the demo again restores the history and rebuilds the swipe-back chain.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var CLI struct {
	Config      string `short:"c" help:"Configuration file path (TOML)" type:"path"`
	StateDir    string `short:"s" help:"Directory for navigator state" default:"./slidenav-state" type:"path"`
	Home        string `help:"View shown when there is no saved state" default:"Home"`
	BundleBase  string `help:"Base URL to fetch page bodies from (<name>.txt)"`
	BackDevice  string `help:"evdev device whose back key triggers swipe-back (e.g. /dev/input/event1)"`
	Accent      uint32 `help:"Accent color as 0xRRGGBB" default:"0"`
	LogPath     string `help:"Log file path" default:"./slidenav-demo.log"`
	MetricsAddr string `help:"Serve Prometheus metrics on this address (e.g. :9100)"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
	Reset       bool   `help:"Forget saved navigation state before starting"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("slidenav-demo"),
		kong.Description("Terminal demo of slide navigation with swipe-back."),
	)

	cfg := slidenav.DefaultConfig()
	if CLI.Config != "" {
		loaded, err := slidenav.LoadConfig(CLI.Config)
		if err != nil {
			slidenav.GetLogger().Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cfg.ID == "" {
		cfg.ID = "demo"
	}
	if cfg.StateDir == "" {
		cfg.StateDir = CLI.StateDir
	}
	if cfg.LogPath == "" {
		cfg.LogPath = CLI.LogPath
	}
	if CLI.Verbose {
		cfg.LogLevel = "debug"
	}
	// stdout belongs to the terminal UI
	slidenav.SetConsoleLogging(false)
	cfg.ApplyLogging()
	defer slidenav.Close()

	if err := run(cfg); err != nil {
		slidenav.GetLogger().Error("Demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg slidenav.Config) error {
	logger := slidenav.GetLogger()

	var program *tea.Program
	status := new(string)
	d := &display{}

	moduleOpts := []views.ModuleOption{views.WithModuleLogger(logger)}
	if CLI.BundleBase != "" {
		moduleOpts = append(moduleOpts, views.WithFetcher(views.NewHTTPFetcher(CLI.BundleBase)))
	}
	module := views.NewModule(moduleOpts...)
	defineScreens(module, d, CLI.BundleBase != "")

	loader := views.NewLoader(module,
		views.WithLoaderLogger(logger),
		views.WithDispatch(func(fn func()) {
			program.Send(runMsg(fn))
		}),
		views.WithErrorHandler(func(ref string, err error) {
			program.Send(transitionMsg("failed to load " + ref))
		}),
	)

	sl := slider.New(
		slider.WithLogger(logger),
		slider.WithAnimator(func(from, to views.View, dir slider.Direction) {
			if s, ok := to.(*screen); ok {
				*status = dir.String() + " to " + s.name
			}
		}),
	)

	opts := cfg.Options()
	opts.Module = module
	opts.Loader = loader
	opts.ViewSlider = sl
	opts.Logger = logger
	registry := prometheus.NewRegistry()
	opts.Metrics = registry

	nav, err := slidenav.Create(opts)
	if err != nil {
		return err
	}
	if CLI.Reset {
		if err := nav.Clear(); err != nil {
			return err
		}
	}

	program = tea.NewProgram(model{
		nav:     nav,
		slider:  sl,
		display: d,
		styles:  newStyles(defaultTheme().withAccent(CLI.Accent)),
		status:  status,
	}, tea.WithAltScreen())

	if err := nav.Start(CLI.Home); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if CLI.MetricsAddr != "" {
		go serveMetrics(CLI.MetricsAddr, registry)
	}
	if CLI.BackDevice != "" {
		go listenBackKey(ctx, CLI.BackDevice, program)
	}

	_, err = program.Run()
	return err
}

func listenBackKey(ctx context.Context, device string, program *tea.Program) {
	listener := slider.NewBackKeyListener(device)
	listener.Logger = slidenav.GetLogger()

	err := listener.Listen(ctx, func() {
		program.Send(swipeBackMsg{})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		program.Send(transitionMsg("back key unavailable: " + err.Error()))
	}
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		slidenav.GetLogger().Error("Metrics server stopped", "addr", addr, "error", err)
	}
}
