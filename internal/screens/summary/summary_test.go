package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/tutor"
)

func testSummary() *tutor.SessionSummary {
	return &tutor.SessionSummary{
		SessionID:      "test-session",
		TopicID:        "recursion",
		TopicName:      "Recursion",
		Duration:       15 * time.Minute,
		Mastered:       []string{"base_case", "self_reference"},
		Unmastered:     []string{"leap_of_faith", "stack_growth"},
		Stalled:        []string{"stack_growth"},
		TotalExchanges: 14,
		TotalAnswers:   13,
		CorrectAnswers: 9,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Recursion") {
		t.Error("expected topic name in summary view")
	}
	if !strings.Contains(view, "69%") {
		t.Error("expected accuracy in summary view")
	}
	// Two of four concepts mastered feeds the mastery bar readout.
	if !strings.Contains(view, "50%") {
		t.Error("expected mastery bar percentage in summary view")
	}
}

func TestSummaryScreen_ConceptPartitions(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)

	if !strings.Contains(view, "base_case") {
		t.Error("expected mastered concept listed")
	}
	if !strings.Contains(view, "stack_growth") {
		t.Error("expected stalled concept listed")
	}
	if !strings.Contains(view, "Stalled") {
		t.Error("expected stalled label in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on Esc")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
