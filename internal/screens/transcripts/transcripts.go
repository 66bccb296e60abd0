package transcripts

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/ui/layout"
	"github.com/socralabs/socra/internal/ui/theme"
)

type transcriptsLoadedMsg struct {
	Sessions []store.SessionInfo
	Err      error
}

// TranscriptsScreen lists past sessions. Selecting one opens its full
// dialogue.
type TranscriptsScreen struct {
	events   store.EventRepo
	sessions []store.SessionInfo
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TranscriptsScreen)(nil)
var _ screen.KeyHintProvider = (*TranscriptsScreen)(nil)

// New creates a TranscriptsScreen backed by the event log.
func New(events store.EventRepo) *TranscriptsScreen {
	return &TranscriptsScreen{events: events}
}

func (s *TranscriptsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.events.QuerySessions(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return transcriptsLoadedMsg{Err: err}
		}
		return transcriptsLoadedMsg{Sessions: sessions}
	}
}

func (s *TranscriptsScreen) Title() string {
	return "Transcripts"
}

func (s *TranscriptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TranscriptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case transcriptsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.openTranscript()
		}
	}
	return s, nil
}

func (s *TranscriptsScreen) openTranscript() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return nil
	}
	sess := s.sessions[s.selected]
	viewer := newViewer(s.events, sess.SessionID, sess.TopicID)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: viewer}
	}
}

func (s *TranscriptsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading transcripts...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No dialogues yet. Pick a topic and start one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.StartedAt.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		var accuracy float64
		if sess.TotalExchanges > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.TotalExchanges) * 100
		}

		masteredStr := ""
		if n := len(sess.Mastered); n > 0 {
			masteredStr = fmt.Sprintf("  %d mastered", n)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-16s  %s  %2d exchanges  %.0f%% accuracy%s",
			prefix, dateStr, topicName(sess.TopicID), durationStr,
			sess.TotalExchanges, accuracy, masteredStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// topicName resolves a catalog topic's display name, falling back to
// the raw ID for topics no longer in the catalog.
func topicName(topicID string) string {
	t, _, err := topic.Lookup(topicID)
	if err != nil {
		return topicID
	}
	return t.Name
}
