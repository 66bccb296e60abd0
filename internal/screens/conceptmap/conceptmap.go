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

type rowKind int

const (
	rowTopicHeader rowKind = iota
	rowConcept
)

type row struct {
	kind    rowKind
	topicID string
	topic   topic.Topic
	concept *topic.Concept
}

// ConceptMapScreen displays every catalog concept grouped by topic,
// with each concept's status from the latest snapshot.
type ConceptMapScreen struct {
	rows         []row
	byTopic      map[string][]topic.Concept
	statuses     map[string]map[string]topic.Status
	events       store.EventRepo
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*ConceptMapScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptMapScreen)(nil)

// New creates a ConceptMapScreen. Both repos may be nil; without them
// every concept shows as unvisited.
func New(snaps store.SnapshotRepo, events store.EventRepo) *ConceptMapScreen {
	s := &ConceptMapScreen{
		byTopic:  make(map[string][]topic.Concept),
		statuses: loadStatuses(snaps),
		events:   events,
	}

	for _, t := range topic.Catalog() {
		_, concepts, err := topic.Lookup(t.ID)
		if err != nil {
			continue
		}
		s.byTopic[t.ID] = concepts
		s.rows = append(s.rows, row{kind: rowTopicHeader, topicID: t.ID, topic: t})
		for i := range concepts {
			s.rows = append(s.rows, row{kind: rowConcept, topicID: t.ID, concept: &concepts[i]})
		}
	}

	for i, r := range s.rows {
		if r.kind == rowConcept {
			s.cursor = i
			break
		}
	}
	return s
}

// loadStatuses folds the latest snapshot into per-topic status maps.
func loadStatuses(snaps store.SnapshotRepo) map[string]map[string]topic.Status {
	statuses := make(map[string]map[string]topic.Status)
	if snaps == nil {
		return statuses
	}
	snap, err := snaps.Latest(context.Background())
	if err != nil || snap == nil {
		return statuses
	}
	for topicID, concepts := range snap.Data.Topics {
		m := make(map[string]topic.Status, len(concepts))
		for conceptID, raw := range concepts {
			if st, ok := topic.ParseStatus(raw); ok {
				m[conceptID] = st
			}
		}
		statuses[topicID] = m
	}
	return statuses
}

func (s *ConceptMapScreen) Init() tea.Cmd {
	return nil
}

func (s *ConceptMapScreen) Title() string {
	return "Concept Map"
}

func (s *ConceptMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Topic"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConceptMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTopic()
		case "shift+tab":
			s.prevTopic()
		case "enter":
			return s, s.selectConcept()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ConceptMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowTopicHeader:
			lines = append(lines, s.renderTopicHeader(r, width))
		case rowConcept:
			lines = append(lines, s.renderConceptRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

// status looks up a concept's recorded status, unvisited when absent.
func (s *ConceptMapScreen) status(topicID, conceptID string) topic.Status {
	if m, ok := s.statuses[topicID]; ok {
		if st, ok := m[conceptID]; ok {
			return st
		}
	}
	return topic.StatusUnvisited
}

// masteredIn reports which of a topic's concepts are mastered.
func (s *ConceptMapScreen) masteredIn(topicID string) map[string]bool {
	mastered := make(map[string]bool)
	for _, c := range s.byTopic[topicID] {
		if s.status(topicID, c.ID) == topic.StatusMastered {
			mastered[c.ID] = true
		}
	}
	return mastered
}

// moveCursor moves the cursor by delta, skipping topic headers.
func (s *ConceptMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowConcept {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextTopic jumps the cursor to the first concept of the next topic.
func (s *ConceptMapScreen) nextTopic() {
	current := s.rows[s.cursor].topicID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowConcept && s.rows[i].topicID != current {
			s.cursor = i
			return
		}
	}
}

// prevTopic jumps the cursor to the first concept of the previous topic.
func (s *ConceptMapScreen) prevTopic() {
	current := s.rows[s.cursor].topicID

	prevStart := -1
	var prev string
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowConcept && s.rows[i].topicID != current {
			prev = s.rows[i].topicID
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowConcept || s.rows[i].topicID != prev {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowConcept {
		s.moveCursor(1)
	}
}

// adjustScroll keeps the cursor visible, with its topic header above
// it when possible.
func (s *ConceptMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowTopicHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectConcept opens the detail screen for the concept under the
// cursor.
func (s *ConceptMapScreen) selectConcept() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowConcept || r.concept == nil {
		return nil
	}

	detail := newConceptDetail(detailInput{
		concept:   *r.concept,
		topicName: s.topicName(r.topicID),
		status:    s.status(r.topicID, r.concept.ID),
		siblings:  s.byTopic[r.topicID],
		mastered:  s.masteredIn(r.topicID),
		events:    s.events,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *ConceptMapScreen) topicName(topicID string) string {
	for _, r := range s.rows {
		if r.kind == rowTopicHeader && r.topicID == topicID {
			return r.topic.Name
		}
	}
	return topicID
}

// renderTopicHeader renders a topic section header with its mastery
// progress.
func (s *ConceptMapScreen) renderTopicHeader(r row, width int) string {
	mastered := 0
	concepts := s.byTopic[r.topicID]
	for _, c := range concepts {
		if s.status(r.topicID, c.ID) == topic.StatusMastered {
			mastered++
		}
	}

	name := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(r.topic.Name))
	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d mastered", mastered, len(concepts)))

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name + "  " + progress)
}

// renderConceptRow renders a single concept row.
func (s *ConceptMapScreen) renderConceptRow(r row, selected bool, width int) string {
	if r.concept == nil {
		return ""
	}

	st := s.status(r.topicID, r.concept.ID)
	icon := st.Icon()
	label := st.Label()

	padding := 4
	iconWidth := 3
	labelWidth := 12
	spacing := 4
	nameWidth := width - padding - iconWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := r.concept.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch st {
		case topic.StatusMastered:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case topic.StatusStalled:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Error)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Error)
		case topic.StatusProbing, topic.StatusRemediating:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		default:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		labelStyle.Render(fmt.Sprintf("%11s", label)),
	)
}
