package topics

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/screens/session"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/socralabs/socra/internal/ui/layout"
	"github.com/socralabs/socra/internal/ui/theme"
)

type entry struct {
	topic    topic.Topic
	concepts []topic.Concept
}

// TopicsScreen lets the learner pick a topic to explore. Selecting one
// starts a tutoring session over its concepts.
type TopicsScreen struct {
	ctrl    *tutor.Controller
	entries []entry
	cursor  int
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates a TopicsScreen over the built-in catalog. ctrl must be
// non-nil; the home screen gates on oracle availability.
func New(ctrl *tutor.Controller) *TopicsScreen {
	var entries []entry
	for _, t := range topic.Catalog() {
		_, concepts, err := topic.Lookup(t.ID)
		if err != nil {
			continue
		}
		entries = append(entries, entry{topic: t, concepts: concepts})
	}
	return &TopicsScreen{ctrl: ctrl, entries: entries}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	return "Topics"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		case "enter":
			return s, s.beginSession()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TopicsScreen) beginSession() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return nil
	}
	e := s.entries[s.cursor]
	next := session.New(s.ctrl, e.topic, e.concepts)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *TopicsScreen) View(width, height int) string {
	var b []string

	b = append(b, "")
	b = append(b, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render("What shall we explore?"))
	b = append(b, "")

	for i, e := range s.entries {
		b = append(b, s.renderEntry(e, i == s.cursor, width))
		b = append(b, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (s *TopicsScreen) renderEntry(e entry, selected bool, width int) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("(%d concepts)", len(e.concepts)))

	name := fmt.Sprintf("    %s%s  %s", cursor, nameStyle.Render(e.topic.Name), count)
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 10).
		Render(fmt.Sprintf("      %s", e.topic.Description))

	return lipgloss.JoinVertical(lipgloss.Left, name, desc)
}
