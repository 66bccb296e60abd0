package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newSplash() (*WelcomeScreen, *int) {
	built := 0
	w := New(func() screen.Screen {
		built++
		return &stubScreen{}
	})
	return w, &built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg{})
	}
}

func TestSplashPhases(t *testing.T) {
	w, _ := newSplash()

	view := w.View(80, 24)
	if strings.Contains(view, "?") {
		t.Error("thought mark visible before the owl starts wondering")
	}
	if strings.Contains(view, "begins in wonder") {
		t.Error("tagline visible on the first frame")
	}

	advance(w, thoughtsAt)
	view = w.View(80, 24)
	if !strings.Contains(view, "?") {
		t.Errorf("expected a thought mark after %d frames", thoughtsAt)
	}
	if strings.Contains(view, "begins in wonder") {
		t.Error("tagline visible before the banner phase")
	}

	advance(w, bannerAt-thoughtsAt)
	view = w.View(80, 24)
	if !strings.Contains(view, "begins in wonder") {
		t.Errorf("expected the tagline after %d frames", bannerAt)
	}
	if !strings.Contains(view, "press any key") {
		t.Error("expected the continue hint alongside the banner")
	}
}

func TestThoughtMarksCycle(t *testing.T) {
	w, _ := newSplash()
	advance(w, thoughtsAt)

	seen := make(map[string]bool)
	for range len(thoughtFrames) {
		view := w.View(80, 24)
		for _, glyph := range thoughtFrames {
			if strings.Contains(view, glyph) {
				seen[glyph] = true
			}
		}
		advance(w, 1)
	}
	if len(seen) != len(thoughtFrames) {
		t.Errorf("expected all %d thought marks across consecutive frames, saw %d", len(thoughtFrames), len(seen))
	}
}

func TestAnyKeySkipsAhead(t *testing.T) {
	w, built := newSplash()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress mid-splash should hand off to home")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *built != 1 {
		t.Errorf("home factory called %d times, want 1", *built)
	}
}

func TestNoHandOffWithoutKeypress(t *testing.T) {
	w, built := newSplash()
	advance(w, 60)
	if *built != 0 {
		t.Errorf("home factory called %d times without a keypress", *built)
	}
}

func TestHomeBuiltOnce(t *testing.T) {
	w, built := newSplash()
	advance(w, 20)

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *built != 1 {
		t.Errorf("home factory called %d times, want 1", *built)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newSplash()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
