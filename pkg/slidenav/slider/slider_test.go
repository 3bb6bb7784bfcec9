package slider

import (
	"testing"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal struct {
	calls []string
}

type fakeView struct {
	name     string
	log      *journal
	rendered bool
	args     []any
}

func (v *fakeView) Render(args ...any) {
	v.rendered = true
	v.args = args
	v.log.calls = append(v.log.calls, v.name+".render")
}

func (v *fakeView) Show()          { v.log.calls = append(v.log.calls, v.name+".show") }
func (v *fakeView) Hide()          { v.log.calls = append(v.log.calls, v.name+".hide") }
func (v *fakeView) Rendered() bool { return v.rendered }

func newViews(log *journal, names ...string) []*fakeView {
	out := make([]*fakeView, len(names))
	for i, name := range names {
		out[i] = &fakeView{name: name, log: log}
	}
	return out
}

func TestForwardAndBackSwitchViews(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "a", "b")

	var dirs []Direction
	s := New(WithAnimator(func(from, to views.View, dir Direction) {
		dirs = append(dirs, dir)
	}))

	s.Forward(vs[0], vs[1])
	s.Back(vs[1], vs[0])

	assert.Equal(t, []string{"a.hide", "b.show", "b.hide", "a.show"}, log.calls)
	assert.Equal(t, []Direction{DirectionForward, DirectionBack}, dirs)
	assert.False(t, s.Busy())
}

func TestSwipeBackRendersUnrenderedDestination(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "detail", "list")
	s := New()

	backs := 0
	s.Slide(vs[0], vs[1], Options{Args: []any{"page", 2}, Back: func() { backs++ }})

	require.True(t, s.SwipeBack(vs[0]))
	assert.Equal(t, []string{"detail.hide", "list.render"}, log.calls)
	assert.Equal(t, []any{"page", 2}, vs[1].args)
	assert.Equal(t, 1, backs)
}

func TestSwipeBackShowsRenderedDestination(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "detail", "list")
	vs[1].rendered = true
	s := New()
	s.Slide(vs[0], vs[1], Options{})

	require.True(t, s.SwipeBack(vs[0]))
	assert.Equal(t, []string{"detail.hide", "list.show"}, log.calls)
}

func TestSwipeBackWithoutBinding(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "a")
	s := New()

	assert.False(t, s.SwipeBack(vs[0]))
	assert.Empty(t, log.calls)
}

func TestSlideReplacesAndUnbinds(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "a", "b", "c")
	s := New()

	s.Slide(vs[0], vs[1], Options{})
	s.Slide(vs[0], vs[2], Options{})
	dest, ok := s.Bound(vs[0])
	require.True(t, ok)
	assert.Same(t, vs[2], dest)

	s.Unbind(vs[0])
	_, ok = s.Bound(vs[0])
	assert.False(t, ok)
}

func TestSlideIgnoresNilViews(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "a")
	s := New()

	s.Slide(vs[0], nil, Options{})
	_, ok := s.Bound(vs[0])
	assert.False(t, ok)
}

func TestSwipeBackRejectedWhileBusy(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "a", "b")
	s := New()
	s.Slide(vs[0], vs[1], Options{})

	s.busy.Store(true)
	assert.False(t, s.SwipeBack(vs[0]))
	assert.Empty(t, log.calls)
}

func TestSwipeBackTopFollowsTransitions(t *testing.T) {
	log := &journal{}
	vs := newViews(log, "home", "list", "detail")
	s := New()

	assert.Nil(t, s.Top())
	assert.False(t, s.SwipeBackTop())

	s.MarkTop(vs[0])
	s.Forward(vs[0], vs[1])
	assert.Same(t, vs[1], s.Top())

	s.Slide(vs[2], vs[1], Options{})
	s.Slide(vs[1], vs[0], Options{})
	s.MarkTop(vs[2])
	log.calls = nil

	require.True(t, s.SwipeBackTop())
	assert.Same(t, vs[1], s.Top())
	require.True(t, s.SwipeBackTop())
	assert.Same(t, vs[0], s.Top())
	assert.False(t, s.SwipeBackTop())

	assert.Equal(t, []string{"detail.hide", "list.render", "list.hide", "home.render"}, log.calls)

	s.Back(vs[0], vs[2])
	assert.Same(t, vs[2], s.Top())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", DirectionForward.String())
	assert.Equal(t, "back", DirectionBack.String())
	assert.Equal(t, "swipe_back", DirectionSwipeBack.String())
}
