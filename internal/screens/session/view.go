package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderQuestionView renders the open question and the answer input.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	if s.sess == nil || s.question == nil {
		return renderWait(width, height, "Preparing your first question", s.spinnerStep)
	}

	concept, err := s.sess.Graph.Get(s.question.ConceptID)
	if err != nil {
		concept = topic.Concept{ID: s.question.ConceptID, Name: s.question.ConceptID}
	}

	var b strings.Builder

	// Concept info line.
	counts := s.sess.Graph.CountByStatus()
	settled := counts[topic.StatusMastered] + counts[topic.StatusStalled]
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Concept: %s", concept.Name))

	depthStr := ""
	if s.question.Depth > 0 {
		depthStr = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("depth %d  ", s.question.Depth))
	}
	infoRight := depthStr + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d settled  %d:%02d", settled, s.sess.Graph.Len(), mins, secs))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Simplified / transfer markers.
	if s.question.Simplified {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("— a simpler angle —"))
		b.WriteString("\n\n")
	}
	if s.question.Transfer {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("— apply it somewhere new —"))
		b.WriteString("\n\n")
	}

	// Question text, wrapped and centered.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(s.question.Question.Text)))
	b.WriteString("\n")

	// Concrete example, when the question works through one.
	if ex := s.question.Question.Example; ex != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("Consider: %s", ex)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input area.
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the verdict overlay after a judged turn.
func (s *SessionScreen) renderFeedback(width, height int) string {
	out := s.outcome
	if out == nil || out.Exchange.Verdict == nil {
		return ""
	}
	v := out.Exchange.Verdict

	var b strings.Builder
	b.WriteString("\n\n")

	headStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	switch v.Grade {
	case oracle.GradeCorrect:
		b.WriteString(headStyle.Foreground(theme.Success).Render("✓ Correct"))
	case oracle.GradePartial:
		b.WriteString(headStyle.Foreground(theme.Accent).Render("◐ Partly there"))
	default:
		b.WriteString(headStyle.Foreground(theme.Error).Render("✗ Not yet"))
	}
	b.WriteString("\n\n")

	// The oracle's probe — what to think about next.
	if v.Probe != "" {
		probeStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			probeStyle.Render(v.Probe)))
		b.WriteString("\n\n")
	}

	// Status change notifications.
	if tr := out.Transition; tr != nil {
		switch tr.Trigger {
		case "transfer-shown":
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render("Concept mastered!"))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(fmt.Sprintf("\"%s\" — understood and applied.", tr.ConceptName)))
			b.WriteString("\n\n")
		case "repeated-miss":
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("Let's take a simpler angle on \"%s\".", tr.ConceptName)))
			b.WriteString("\n\n")
		case "self-corrected":
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Back on track!"))
			b.WriteString("\n\n")
		case "remediation-exhausted":
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("We'll set \"%s\" aside for now.", tr.ConceptName)))
			b.WriteString("\n\n")
		}
	}

	// Where the dialogue goes next.
	if out.NextConceptID != "" {
		if next, err := s.sess.Graph.Get(out.NextConceptID); err == nil {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Secondary).
				Render(fmt.Sprintf("Next up: %s", next.Name)))
			b.WriteString("\n\n")
		}
	}
	if out.SessionComplete {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Every concept is settled."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The dialogue so far is saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderWait renders an async wait state with a spinner.
func renderWait(width, height int, label string, step int) string {
	frame := spinnerFrames[step%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s %s...", frame, label))
}

// renderFarewell renders the oracle's closing remark.
func renderFarewell(width, height int, remark string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	remarkStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Italic(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		remarkStyle.Render(remark)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for your summary..."))

	return b.String()
}

// renderError renders an oracle failure.
func renderError(width, height int, errMsg string, retryable bool) string {
	hint := "Press any key to end the session."
	if retryable {
		hint = "[R] Retry   [Esc] End session"
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  %s", errMsg, hint))
}
