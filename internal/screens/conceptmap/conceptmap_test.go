package conceptmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
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

func testSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Topics: map[string]map[string]string{
				"recursion": {
					"base_case":      "mastered",
					"self_reference": "stalled",
					"bogus_status":   "unheard_of",
				},
			},
		},
	}
}

func TestConceptMap_StatusesFromSnapshot(t *testing.T) {
	s := New(&fakeSnapshotRepo{snap: testSnapshot()}, nil)

	if got := s.status("recursion", "base_case"); got != topic.StatusMastered {
		t.Errorf("base_case status = %v, want mastered", got)
	}
	if got := s.status("recursion", "self_reference"); got != topic.StatusStalled {
		t.Errorf("self_reference status = %v, want stalled", got)
	}
	// Unknown statuses and unrecorded concepts fall back to unvisited.
	if got := s.status("recursion", "bogus_status"); got != topic.StatusUnvisited {
		t.Errorf("bogus status = %v, want unvisited", got)
	}
	if got := s.status("pointers", "aliasing"); got != topic.StatusUnvisited {
		t.Errorf("unrecorded status = %v, want unvisited", got)
	}
}

func TestConceptMap_NilReposShowUnvisited(t *testing.T) {
	s := New(nil, nil)
	if got := s.status("recursion", "base_case"); got != topic.StatusUnvisited {
		t.Errorf("status = %v, want unvisited", got)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected a non-empty view")
	}
}

func TestConceptMap_CursorSkipsHeaders(t *testing.T) {
	s := New(nil, nil)

	if s.rows[s.cursor].kind != rowConcept {
		t.Fatalf("initial cursor on row kind %d, want concept", s.rows[s.cursor].kind)
	}

	first := s.cursor
	s.Update(keyPress('k'))
	if s.cursor != first {
		t.Errorf("cursor = %d after up at top, want %d", s.cursor, first)
	}

	s.Update(keyPress('j'))
	if s.rows[s.cursor].kind != rowConcept {
		t.Errorf("cursor landed on row kind %d, want concept", s.rows[s.cursor].kind)
	}
}

func TestConceptMap_TabJumpsToNextTopic(t *testing.T) {
	s := New(nil, nil)
	startTopic := s.rows[s.cursor].topicID

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.rows[s.cursor].topicID == startTopic {
		t.Error("expected tab to move to a different topic")
	}
	if s.rows[s.cursor].kind != rowConcept {
		t.Error("expected tab to land on a concept row")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.rows[s.cursor].topicID != startTopic {
		t.Error("expected shift+tab to return to the first topic")
	}
}

func TestConceptMap_EnterPushesDetail(t *testing.T) {
	s := New(&fakeSnapshotRepo{snap: testSnapshot()}, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", cmd())
	}
	detail, ok := push.Screen.(*ConceptDetailScreen)
	if !ok {
		t.Fatalf("pushed screen is %T, want *ConceptDetailScreen", push.Screen)
	}
	if detail.concept.ID == "" {
		t.Error("detail screen missing its concept")
	}
}

func TestConceptMap_HeaderShowsProgress(t *testing.T) {
	s := New(&fakeSnapshotRepo{snap: testSnapshot()}, nil)
	view := s.View(100, 40)
	if !strings.Contains(view, "1/4 mastered") {
		t.Errorf("view missing recursion progress:\n%s", view)
	}
}

func TestConceptDetail_PrereqsAndDependents(t *testing.T) {
	_, concepts, err := topic.Lookup("recursion")
	if err != nil {
		t.Fatal(err)
	}
	var selfRef topic.Concept
	for _, c := range concepts {
		if c.ID == "self_reference" {
			selfRef = c
		}
	}

	d := newConceptDetail(detailInput{
		concept:   selfRef,
		topicName: "Recursion",
		status:    topic.StatusProbing,
		siblings:  concepts,
		mastered:  map[string]bool{"base_case": true},
	})

	if len(d.prereqs) != 1 || d.prereqs[0].ID != "base_case" {
		t.Fatalf("prereqs = %v, want [base_case]", d.prereqs)
	}
	if len(d.dependents) == 0 {
		t.Fatal("expected self_reference to lead to other concepts")
	}

	view := d.View(80, 40)
	if !strings.Contains(view, "Builds on") {
		t.Error("view missing prerequisites section")
	}
	if !strings.Contains(view, "Leads to") {
		t.Error("view missing dependents section")
	}
}

func TestConceptDetail_RecordLine(t *testing.T) {
	d := newConceptDetail(detailInput{
		concept: topic.Concept{ID: "base_case", Name: "Base case"},
		status:  topic.StatusMastered,
	})

	if got := d.recordLine(); got != "no answers yet" {
		t.Errorf("recordLine = %q before load, want %q", got, "no answers yet")
	}

	d.Update(accuracyLoadedMsg{accuracy: 0.75, answered: 8})
	if got := d.recordLine(); got != "75% correct over 8 answers" {
		t.Errorf("recordLine = %q, want %q", got, "75% correct over 8 answers")
	}
}
