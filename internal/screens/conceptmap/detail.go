package conceptmap

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

type detailInput struct {
	concept   topic.Concept
	topicName string
	status    topic.Status
	siblings  []topic.Concept
	mastered  map[string]bool
	events    store.EventRepo
}

type accuracyLoadedMsg struct {
	accuracy float64
	answered int
	err      error
}

// ConceptDetailScreen shows a single concept: its place in the topic,
// the learner's status, and their answer record across all sessions.
type ConceptDetailScreen struct {
	concept    topic.Concept
	topicName  string
	status     topic.Status
	mastered   map[string]bool
	prereqs    []topic.Concept
	dependents []topic.Concept
	events     store.EventRepo

	accuracy float64
	answered int
	loaded   bool
}

var _ screen.Screen = (*ConceptDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptDetailScreen)(nil)

func newConceptDetail(in detailInput) *ConceptDetailScreen {
	d := &ConceptDetailScreen{
		concept:   in.concept,
		topicName: in.topicName,
		status:    in.status,
		mastered:  in.mastered,
		events:    in.events,
	}

	wanted := make(map[string]bool, len(in.concept.Prerequisites))
	for _, id := range in.concept.Prerequisites {
		wanted[id] = true
	}
	for _, c := range in.siblings {
		if wanted[c.ID] {
			d.prereqs = append(d.prereqs, c)
		}
		for _, p := range c.Prerequisites {
			if p == in.concept.ID {
				d.dependents = append(d.dependents, c)
			}
		}
	}
	return d
}

func (d *ConceptDetailScreen) Init() tea.Cmd {
	if d.events == nil {
		return nil
	}
	events, conceptID := d.events, d.concept.ID
	return func() tea.Msg {
		acc, n, err := events.ConceptAccuracy(context.Background(), conceptID)
		return accuracyLoadedMsg{accuracy: acc, answered: n, err: err}
	}
}

func (d *ConceptDetailScreen) Title() string {
	return d.concept.Name
}

func (d *ConceptDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ConceptDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case accuracyLoadedMsg:
		if msg.err == nil {
			d.accuracy = msg.accuracy
			d.answered = msg.answered
			d.loaded = true
		}
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *ConceptDetailScreen) View(width, height int) string {
	c := d.concept
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Concept name + status.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", d.status.Icon(), c.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", d.status.Label())))
	b.WriteString("\n\n")

	// Description.
	if c.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(c.Description))
		b.WriteString("\n\n")
	}

	// Metadata.
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Topic:     ") + valStyle.Render(d.topicName) + "\n")
	if len(c.Keywords) > 0 {
		b.WriteString(dimStyle.Render("  Touches:   ") + valStyle.Render(strings.Join(c.Keywords, ", ")) + "\n")
	}
	b.WriteString(dimStyle.Render("  Record:    ") + valStyle.Render(d.recordLine()) + "\n")
	b.WriteString("\n")

	// Prerequisites.
	if len(d.prereqs) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Builds on"))
		b.WriteString("\n")
		for _, p := range d.prereqs {
			icon := "○"
			style := dimStyle
			if d.mastered[p.ID] {
				icon = "●"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", icon, p.Name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Dependents (what this concept leads to).
	if len(d.dependents) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Leads to"))
		b.WriteString("\n")
		for _, dep := range d.dependents {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", dep.Name)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

func (d *ConceptDetailScreen) recordLine() string {
	if !d.loaded || d.answered == 0 {
		return "no answers yet"
	}
	return fmt.Sprintf("%.0f%% correct over %d answers", d.accuracy*100, d.answered)
}
