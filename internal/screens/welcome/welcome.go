package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/ui/theme"
)

// The splash advances on a fixed frame tick; phase boundaries are
// frame counts, not wall-clock durations.
const (
	frameInterval = 100 * time.Millisecond
	thoughtsAt    = 6  // the owl starts wondering at 600ms
	bannerAt      = 15 // banner, tagline and hint appear at 1.5s
)

const owlArt = `  ,___,
  [O.O]
  /)__)
  -"--"-`

// thoughtFrames cycle beside the owl once it starts wondering.
var thoughtFrames = []string{"?", "…", "!"}

type frameMsg struct{}

// WelcomeScreen plays a short splash, then swaps itself for the home
// screen on the first keypress.
type WelcomeScreen struct {
	homeFactory func() screen.Screen
	ticks       int
	done        bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands off to the screen produced by
// homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.nextFrame()
}

func (w *WelcomeScreen) nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		w.ticks++
		return w, w.nextFrame()

	case tea.KeyPressMsg:
		// Any key skips ahead; the splash is a greeting, not a gate.
		return w, w.enterHome()
	}

	return w, nil
}

func (w *WelcomeScreen) enterHome() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	owl := lipgloss.NewStyle().Foreground(theme.Primary).Render(owlArt)

	if w.ticks >= thoughtsAt {
		glyph := thoughtFrames[w.ticks%len(thoughtFrames)]
		mark := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(glyph)
		lines := strings.Split(owl, "\n")
		lines[0] += "  " + mark
		owl = strings.Join(lines, "\n")
	}

	content := owl
	if w.ticks >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Wisdom begins in wonder.")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		content = lipgloss.JoinVertical(lipgloss.Center,
			owl,
			"",
			RenderBanner(width),
			"",
			tagline,
			"",
			hint,
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
