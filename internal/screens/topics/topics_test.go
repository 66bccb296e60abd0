package topics

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screens/session"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
)

func testTopicsScreen() *TopicsScreen {
	ctrl := tutor.NewController(oracle.NewScriptedOracle(), nil, nil)
	return New(ctrl)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTopicsScreen_ListsCatalog(t *testing.T) {
	s := testTopicsScreen()
	if len(s.entries) != len(topic.Catalog()) {
		t.Fatalf("entries = %d, want %d", len(s.entries), len(topic.Catalog()))
	}

	view := s.View(80, 24)
	for _, tp := range topic.Catalog() {
		if !strings.Contains(view, tp.Name) {
			t.Errorf("view missing topic %q", tp.Name)
		}
	}
}

func TestTopicsScreen_CursorBounds(t *testing.T) {
	s := testTopicsScreen()

	s.Update(keyPress('k'))
	if s.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", s.cursor)
	}

	for range s.entries {
		s.Update(keyPress('j'))
	}
	if s.cursor != len(s.entries)-1 {
		t.Errorf("cursor = %d after overshoot, want %d", s.cursor, len(s.entries)-1)
	}
}

func TestTopicsScreen_EnterBeginsSession(t *testing.T) {
	s := testTopicsScreen()
	s.Update(keyPress('j'))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", cmd())
	}
	sess, ok := push.Screen.(*session.SessionScreen)
	if !ok {
		t.Fatalf("pushed screen is %T, want *session.SessionScreen", push.Screen)
	}
	if sess.Title() != s.entries[1].topic.Name {
		t.Errorf("session title = %q, want %q", sess.Title(), s.entries[1].topic.Name)
	}
}

func TestTopicsScreen_EscPops(t *testing.T) {
	s := testTopicsScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("esc produced %T, want PopScreenMsg", cmd())
	}
}

func TestTopicsScreen_KeyHints(t *testing.T) {
	s := testTopicsScreen()
	if hints := s.KeyHints(); len(hints) != 3 {
		t.Errorf("hints = %v, want 3 entries", hints)
	}
}
