package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/socralabs/socra/internal/ui/components"
	"github.com/socralabs/socra/internal/ui/layout"
	"github.com/socralabs/socra/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *tutor.SessionSummary

	// sess, when present, supplies concept names and final statuses.
	// The summary alone carries only concept IDs.
	sess *tutor.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. sess may be nil.
func New(summary *tutor.SessionSummary, sess *tutor.Session) *SummaryScreen {
	return &SummaryScreen{summary: summary, sess: sess}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop summary, session, and topic picker in one go.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	heading := "Session complete!"
	if len(sum.Mastered) == 0 {
		heading = "Session ended"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sum.TopicName))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy()*100)
	statsLine := fmt.Sprintf("Questions: %d        Answered: %d        Correct: %d        Accuracy: %s",
		sum.TotalExchanges, sum.TotalAnswers, sum.CorrectAnswers, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Mastery bar across the whole topic.
	lines := s.conceptLines()
	if len(lines) > 0 {
		frac := float64(len(sum.Mastered)) / float64(len(lines))
		bar := components.NewProgressBar("Mastered", frac, true, min(width-8, 48))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	// Concepts divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Concepts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, line := range lines {
		styled := lipgloss.NewStyle().Foreground(statusColor(line.status)).Render(
			fmt.Sprintf("  %s %-34s %s", line.status.Icon(), line.name, line.status.Label()))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
		b.WriteString("\n")
	}

	return b.String()
}

type conceptLine struct {
	name   string
	status topic.Status
}

// conceptLines lists every concept with its final status, in the
// topic's declaration order when the session is available.
func (s *SummaryScreen) conceptLines() []conceptLine {
	if s.sess != nil {
		concepts := s.sess.Graph.Concepts()
		lines := make([]conceptLine, 0, len(concepts))
		for _, c := range concepts {
			lines = append(lines, conceptLine{name: c.Name, status: s.sess.Graph.Status(c.ID)})
		}
		return lines
	}

	// Fall back to the summary's ID partitions.
	var lines []conceptLine
	for _, id := range s.summary.Mastered {
		lines = append(lines, conceptLine{name: id, status: topic.StatusMastered})
	}
	stalled := make(map[string]bool, len(s.summary.Stalled))
	for _, id := range s.summary.Stalled {
		stalled[id] = true
	}
	for _, id := range s.summary.Unmastered {
		st := topic.StatusUnvisited
		if stalled[id] {
			st = topic.StatusStalled
		}
		lines = append(lines, conceptLine{name: id, status: st})
	}
	return lines
}

// statusColor maps a concept status to its display color.
func statusColor(st topic.Status) color.Color {
	switch st {
	case topic.StatusMastered:
		return theme.Success
	case topic.StatusStalled:
		return theme.Error
	case topic.StatusProbing, topic.StatusRemediating:
		return theme.Accent
	default:
		return theme.TextDim
	}
}
