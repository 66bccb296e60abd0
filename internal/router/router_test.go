package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// stacked builds a router rooted at the first title with the rest
// pushed in order.
func stacked(titles ...string) (*Router, []*stubScreen) {
	screens := make([]*stubScreen, len(titles))
	for i, title := range titles {
		screens[i] = &stubScreen{title: title}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func assertActive(t *testing.T, r *Router, title string, depth int) {
	t.Helper()
	if r.Depth() != depth {
		t.Errorf("depth = %d, want %d", r.Depth(), depth)
	}
	if got := r.Active().Title(); got != title {
		t.Errorf("active = %q, want %q", got, title)
	}
}

func TestPushInitsAndActivates(t *testing.T) {
	r, screens := stacked("home", "topics")
	assertActive(t, r, "topics", 2)
	if !screens[1].initRan {
		t.Error("pushed screen Init did not run")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r, _ := stacked("home")
	next := &stubScreen{title: "topics"}
	r.Update(PushScreenMsg{Screen: next})
	assertActive(t, r, "topics", 2)
	if !next.initRan {
		t.Error("pushed screen Init did not run")
	}
}

func TestPopReturnsBelow(t *testing.T) {
	r, _ := stacked("home", "topics")
	r.Update(PopScreenMsg{})
	assertActive(t, r, "home", 1)
}

func TestPopKeepsRoot(t *testing.T) {
	r, _ := stacked("home")
	r.Pop()
	assertActive(t, r, "home", 1)
}

func TestPopToRootUnwindsAll(t *testing.T) {
	r, _ := stacked("home", "topics", "session")
	r.Update(PopToRootMsg{})
	assertActive(t, r, "home", 1)
}

func TestReplaceKeepsDepth(t *testing.T) {
	r, _ := stacked("home", "session")
	next := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: next})
	assertActive(t, r, "summary", 2)
	if !next.initRan {
		t.Error("replacement screen Init did not run")
	}
}

func TestReplaceRoot(t *testing.T) {
	r, _ := stacked("splash")
	r.Replace(&stubScreen{title: "home"})
	assertActive(t, r, "home", 1)
}

func TestUpdateForwardsToActive(t *testing.T) {
	type pingMsg struct{}
	r, screens := stacked("home", "topics")
	r.Update(pingMsg{})
	if _, ok := screens[1].lastMsg.(pingMsg); !ok {
		t.Errorf("active screen saw %T, want pingMsg", screens[1].lastMsg)
	}
	if screens[0].lastMsg != nil {
		t.Errorf("buried screen saw %T, want nothing", screens[0].lastMsg)
	}
}

func TestViewRendersActive(t *testing.T) {
	r, _ := stacked("home", "topics")
	if got := r.View(80, 24); got != "topics" {
		t.Errorf("View = %q, want %q", got, "topics")
	}
}
