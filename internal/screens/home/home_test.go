package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screens/notice"
	"github.com/socralabs/socra/internal/screens/topics"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/tutor"
)

type fakeSnapshotRepo struct {
	snap *store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snap = snap
	return nil
}
func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return f.snap, nil
}
func (f *fakeSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func selectItem(h *HomeScreen, index int) tea.Cmd {
	for h.menu.Selected < index {
		h.Update(keyPress('j'))
	}
	for h.menu.Selected > index {
		h.Update(keyPress('k'))
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestHomeScreen_MenuItems(t *testing.T) {
	h := New(nil, nil, nil)
	if len(h.menu.Items) != 4 {
		t.Fatalf("menu items = %d, want 4", len(h.menu.Items))
	}
	view := h.View(100, 40)
	for _, label := range []string{"START SESSION", "CONCEPT MAP", "TRANSCRIPTS", "EXIT"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing menu item %q", label)
		}
	}
}

func TestHomeScreen_StartWithoutOracleExplains(t *testing.T) {
	h := New(nil, nil, nil)

	cmd := selectItem(h, 0)
	if cmd == nil {
		t.Fatal("expected a command from START SESSION")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*notice.NoticeScreen); !ok {
		t.Errorf("pushed %T, want the oracle notice screen", push.Screen)
	}
}

func TestHomeScreen_StartWithOracleOpensTopics(t *testing.T) {
	ctrl := tutor.NewController(oracle.NewScriptedOracle(), nil, nil)
	h := New(ctrl, nil, nil)

	cmd := selectItem(h, 0)
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*topics.TopicsScreen); !ok {
		t.Errorf("pushed %T, want *topics.TopicsScreen", push.Screen)
	}
}

func TestHomeScreen_ExitQuits(t *testing.T) {
	h := New(nil, nil, nil)

	cmd := selectItem(h, 3)
	if cmd == nil {
		t.Fatal("expected a command from EXIT")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T, want tea.QuitMsg", cmd())
	}
}

func TestHomeScreen_StatsFromSnapshot(t *testing.T) {
	snaps := &fakeSnapshotRepo{snap: &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Topics: map[string]map[string]string{
				"recursion": {
					"base_case":      "mastered",
					"self_reference": "mastered",
					"stack_growth":   "probing",
				},
				"pointers": {
					"memory_addresses": "remediating",
				},
			},
		},
	}}

	h := New(nil, nil, snaps)
	if h.masteredCount != 2 {
		t.Errorf("masteredCount = %d, want 2", h.masteredCount)
	}
	if h.inProgressCount != 2 {
		t.Errorf("inProgressCount = %d, want 2", h.inProgressCount)
	}
	if !strings.Contains(h.View(100, 40), "2 mastered") {
		t.Error("view missing mastered count")
	}
}
