package slidenav

import (
	"context"
	"testing"
	"time"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModule(log *journal, names ...string) *views.Module {
	m := views.NewModule()
	for _, n := range names {
		m.Define(n, func([]byte) (views.View, error) {
			return &fakeView{name: n, log: log}, nil
		})
	}
	return m
}

func newOptions(store navigator.Store, module *views.Module, sl *slider.Slider) Options {
	opts := DefaultOptions()
	opts.ID = "it"
	opts.Store = store
	opts.Module = module
	opts.ViewSlider = sl
	return opts
}

func TestSwipeBackFollowsHistorySilently(t *testing.T) {
	log := &journal{}
	module := newModule(log, "Home", "Detail")
	sl := slider.New()

	nav, err := Create(newOptions(navigator.NewMemoryStore(), module, sl))
	require.NoError(t, err)

	backEvents := 0
	nav.OnBack(func(current, target string) { backEvents++ })

	require.NoError(t, nav.Start("Home"))
	require.NoError(t, nav.To("Detail", 5))

	require.True(t, sl.SwipeBack(module.Require("Detail")))

	assert.Equal(t, []string{
		"Home.render[]",
		"Detail.render[5]",
		"Detail.hide",
		"Home.show",
	}, log.calls)

	cur, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, "Home", cur.View)
	assert.Zero(t, backEvents)
}

func TestSwipeBackTopUsesVisibleView(t *testing.T) {
	log := &journal{}
	module := newModule(log, "Home", "List", "Detail")
	sl := slider.New()

	nav, err := Create(newOptions(navigator.NewMemoryStore(), module, sl))
	require.NoError(t, err)

	require.NoError(t, nav.Start("Home"))
	require.NoError(t, nav.To("List"))
	require.NoError(t, nav.To("Detail"))
	assert.Same(t, module.Require("Detail"), sl.Top())

	require.True(t, nav.Back(true))
	assert.Same(t, module.Require("List"), sl.Top())

	require.True(t, sl.SwipeBackTop())
	assert.Same(t, module.Require("Home"), sl.Top())

	cur, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, "Home", cur.View)
	assert.False(t, sl.SwipeBackTop())
}

func TestBrowserBackAndForwardWithSlider(t *testing.T) {
	log := &journal{}
	module := newModule(log, "Home", "Detail")

	nav, err := Create(newOptions(navigator.NewMemoryStore(), module, slider.New()))
	require.NoError(t, err)

	require.NoError(t, nav.Start("Home"))
	require.NoError(t, nav.To("Detail"))
	log.calls = nil

	require.True(t, nav.Back(true))
	require.True(t, nav.Forward(true))

	assert.Equal(t, []string{
		"Detail.hide", "Home.show", // slider back
		"Home.show", // view, cached and rendered
		"Home.hide", "Detail.show",
		"Detail.show",
	}, log.calls)
}

func TestRestartRebuildsSwipeBackChain(t *testing.T) {
	store := navigator.NewMemoryStore()

	first, err := Create(newOptions(store, newModule(&journal{}, "Home", "List", "Detail"), slider.New()))
	require.NoError(t, err)
	require.NoError(t, first.Start("Home"))
	require.NoError(t, first.To("List", "page", 1))
	require.NoError(t, first.To("Detail", 9))

	log := &journal{}
	module := newModule(log, "Home", "List", "Detail")
	sl := slider.New()
	second, err := Create(newOptions(store, module, sl))
	require.NoError(t, err)
	require.NoError(t, second.Start("Home"))

	dest, ok := sl.Bound(module.Require("Detail"))
	require.True(t, ok)
	assert.Same(t, module.Require("List"), dest)

	dest, ok = sl.Bound(module.Require("List"))
	require.True(t, ok)
	assert.Same(t, module.Require("Home"), dest)

	assert.Equal(t, []string{"Detail.render[9]"}, log.calls)

	require.True(t, sl.SwipeBack(module.Require("Detail")))
	assert.Equal(t, []string{"Detail.render[9]", "Detail.hide", "List.render[page 1]"}, log.calls)

	cur, _ := second.Current()
	assert.Equal(t, "List", cur.View)
}

func TestCreateDispatchesBundledViewContinuations(t *testing.T) {
	log := &journal{}
	module := views.NewModule(views.WithFetcher(views.FetcherFunc(
		func(ctx context.Context, bundle string) ([]byte, error) {
			return []byte(bundle), nil
		})))
	home := &fakeView{name: "Home", log: log}
	module.Define("Home", func([]byte) (views.View, error) {
		return home, nil
	}, views.WithBundle("home.js"))

	queue := make(chan func(), 1)
	nav, err := Create(Options{
		ID:       "bundled",
		Module:   module,
		Dispatch: func(fn func()) { queue <- fn },
	})
	require.NoError(t, err)
	require.NoError(t, nav.Start("Home"))

	select {
	case fn := <-queue:
		assert.False(t, home.Rendered())
		fn()
	case <-time.After(time.Second):
		t.Fatal("continuation was not dispatched")
	}

	assert.True(t, home.Rendered())
	assert.Equal(t, []string{"Home.render[]"}, log.calls)
}
