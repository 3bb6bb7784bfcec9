package main

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/views"
)

type page struct {
	title string
	body  string
	links []string
}

var pages = map[string]page{
	"Home": {
		title: "Home",
		body:  "Pick a section. Links push a new view; swipe back returns without a browser back event.",
		links: []string{"Library", "Settings"},
	},
	"Library": {
		title: "Library",
		body:  "Everything you own.",
		links: []string{"Game", "Settings"},
	},
	"Game": {
		title: "Game",
		body:  "A single title with its details.",
	},
	"Settings": {
		title: "Settings",
		body:  "Nothing to configure here.",
		links: []string{"Home"},
	},
}

// display holds which screen is visible. It is only touched on the
// bubbletea goroutine.
type display struct {
	visible *screen
}

// screen is a terminal view backed by a page definition.
type screen struct {
	name     string
	page     page
	display  *display
	args     []any
	rendered bool
	mount    string
}

func (s *screen) Render(args ...any) {
	s.args = args
	s.rendered = true
	s.display.visible = s
}

func (s *screen) Show() {
	s.display.visible = s
}

func (s *screen) Hide() {
	if s.display.visible == s {
		s.display.visible = nil
	}
}

func (s *screen) Rendered() bool {
	return s.rendered
}

func (s *screen) Mount(container string) {
	s.mount = container
}

func (s *screen) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render(s.page.title))
	b.WriteString("\n\n")
	b.WriteString(st.body.Render(s.page.body))
	b.WriteString("\n")
	if len(s.args) > 0 {
		b.WriteString(st.args.Render(fmt.Sprintf("args: %v", s.args)))
		b.WriteString("\n")
	}
	if len(s.page.links) > 0 {
		b.WriteString("\n")
		for i, link := range s.page.links {
			b.WriteString(st.link.Render(fmt.Sprintf("[%d] %s", i+1, link)))
			b.WriteString("\n")
		}
	}
	return st.frame.Render(strings.TrimRight(b.String(), "\n"))
}

// defineScreens registers every page. With a bundle base, page bodies are
// fetched as "<name>.txt" before the screen is built.
func defineScreens(module *views.Module, d *display, bundled bool) {
	for name, p := range pages {
		factory := func(code []byte) (views.View, error) {
			pg := p
			if body := strings.TrimSpace(string(code)); body != "" {
				pg.body = body
			}
			return &screen{name: name, page: pg, display: d}, nil
		}
		if bundled {
			module.Define(name, factory, views.WithBundle(strings.ToLower(name)+".txt"))
		} else {
			module.Define(name, factory)
		}
	}
}
