package transcripts

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
	"github.com/socralabs/socra/internal/ui/layout"
	"github.com/socralabs/socra/internal/ui/theme"
)

type archiveLoadedMsg struct {
	Archive *transcript.Archive
	Err     error
}

// viewerScreen renders one session's full dialogue, scrollable.
type viewerScreen struct {
	events       store.EventRepo
	sessionID    string
	topicID      string
	conceptNames map[string]string

	archive *transcript.Archive
	scroll  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*viewerScreen)(nil)
var _ screen.KeyHintProvider = (*viewerScreen)(nil)

func newViewer(events store.EventRepo, sessionID, topicID string) *viewerScreen {
	names := make(map[string]string)
	if _, concepts, err := topic.Lookup(topicID); err == nil {
		for _, c := range concepts {
			names[c.ID] = c.Name
		}
	}
	return &viewerScreen{
		events:       events,
		sessionID:    sessionID,
		topicID:      topicID,
		conceptNames: names,
	}
}

func (v *viewerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		a, err := v.events.SessionArchive(context.Background(), v.sessionID)
		return archiveLoadedMsg{Archive: a, Err: err}
	}
}

func (v *viewerScreen) Title() string {
	return "Transcript"
}

func (v *viewerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (v *viewerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case archiveLoadedMsg:
		if msg.Err != nil {
			v.errMsg = msg.Err.Error()
		} else {
			v.archive = msg.Archive
		}
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if v.scroll > 0 {
				v.scroll--
			}
		case "down", "j":
			v.scroll++
		case "pgup":
			v.scroll -= 10
			if v.scroll < 0 {
				v.scroll = 0
			}
		case "pgdown":
			v.scroll += 10
		}
	}
	return v, nil
}

func (v *viewerScreen) View(width, height int) string {
	if v.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", v.errMsg))
	}
	if !v.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading transcript...")
	}
	if v.archive == nil || len(v.archive.Records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  This session recorded no exchanges.")
	}

	lines := v.renderLines(width)

	// Clamp scroll and slice the visible window.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	end := v.scroll + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[v.scroll:end], "\n")
}

// renderLines flattens the archive into styled display lines, with a
// header whenever the dialogue moves to a new concept.
func (v *viewerScreen) renderLines(width int) []string {
	textWidth := width - 10
	if textWidth > 72 {
		textWidth = 72
	}
	if textWidth < 20 {
		textWidth = 20
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	questionStyle := lipgloss.NewStyle().Foreground(theme.Primary).Width(textWidth).PaddingLeft(4)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).PaddingLeft(4)
	probeStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(textWidth).PaddingLeft(6)

	var lines []string
	lines = append(lines, "")

	lastConcept := ""
	for _, r := range v.archive.Records {
		if r.ConceptID != lastConcept {
			lastConcept = r.ConceptID
			name := v.conceptNames[r.ConceptID]
			if name == "" {
				name = r.ConceptID
			}
			lines = append(lines, "")
			lines = append(lines, dim.Render(fmt.Sprintf("  ── %s ──", name)))
			lines = append(lines, "")
		}

		switch r.Role {
		case transcript.RoleTutor:
			q := r.Text
			if r.Simplified {
				q += "  (simpler)"
			}
			if r.Transfer {
				q += "  (transfer)"
			}
			lines = append(lines, strings.Split(questionStyle.Render("Q: "+q), "\n")...)
			if r.Example != "" {
				lines = append(lines, strings.Split(probeStyle.Render("e.g. "+r.Example), "\n")...)
			}

		case transcript.RoleLearner:
			marker := ""
			if r.Verdict != nil {
				marker = " " + gradeMarker(r.Verdict.Grade)
			}
			lines = append(lines, strings.Split(answerStyle.Render("A: "+r.Text+marker), "\n")...)
			if r.Verdict != nil && r.Verdict.Probe != "" {
				lines = append(lines, strings.Split(probeStyle.Render("↳ "+r.Verdict.Probe), "\n")...)
			}
		}
		lines = append(lines, "")
	}

	return lines
}

func gradeMarker(g oracle.Grade) string {
	switch g {
	case oracle.GradeCorrect:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case oracle.GradePartial:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("◐")
	case oracle.GradeIncorrect:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return ""
}
