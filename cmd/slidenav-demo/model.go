package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/slider"
	tea "github.com/charmbracelet/bubbletea"
)

// runMsg carries a continuation that must run on the UI goroutine.
type runMsg func()

// swipeBackMsg is sent by the hardware back key listener.
type swipeBackMsg struct{}

// transitionMsg reports the last transition played by the slider.
type transitionMsg string

type model struct {
	nav     *navigator.Navigator
	slider  *slider.Slider
	display *display
	styles  styles
	status  *string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()

	case swipeBackMsg:
		m.swipeBack()

	case transitionMsg:
		*m.status = string(msg)

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			if !m.nav.Back(true) {
				*m.status = "already at the first view"
			}
		case "right":
			if !m.nav.Forward(true) {
				*m.status = "already at the last view"
			}
		case "backspace", "b":
			m.swipeBack()
		default:
			if n, err := strconv.Atoi(key); err == nil {
				m.follow(n - 1)
			}
		}
	}
	return m, nil
}

func (m model) follow(index int) {
	visible := m.display.visible
	if visible == nil || index < 0 || index >= len(visible.page.links) {
		return
	}
	target := visible.page.links[index]
	if err := m.nav.To(target, "from "+visible.name); err != nil {
		*m.status = err.Error()
	}
}

func (m model) swipeBack() {
	if !m.slider.SwipeBackTop() {
		*m.status = "nothing to swipe back to"
	}
}

func (m model) View() string {
	var b strings.Builder

	if m.display.visible != nil {
		b.WriteString(m.display.visible.view(m.styles))
	} else {
		b.WriteString(m.styles.body.Render("loading…"))
	}
	b.WriteString("\n")

	help := fmt.Sprintf("1-9 open link  %s back  %s forward  %s b swipe back  q quit",
		glyphBack, glyphForward, glyphSwipe)
	b.WriteString(m.styles.footer.Render(help))
	b.WriteString("\n")

	status := fmt.Sprintf("history %d", m.nav.Len())
	if *m.status != "" {
		status += "  ·  " + *m.status
	}
	b.WriteString(m.styles.status.Render(status))
	b.WriteString("\n")
	return b.String()
}
