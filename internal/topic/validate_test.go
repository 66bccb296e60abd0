package topic

import (
	"strings"
	"testing"
)

func TestValidate_DuplicateIDs(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "A again"},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error for duplicate IDs")
	}
	if !strings.Contains(err.Error(), "duplicate concept ID") {
		t.Errorf("err = %v, want duplicate concept ID mention", err)
	}
}

func TestValidate_DanglingPrerequisite(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A", Prerequisites: []string{"ghost"}},
		{ID: "b", Name: "B"},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("err = %v, want nonexistent prerequisite mention", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A", Prerequisites: []string{"c"}},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Prerequisites: []string{"b"}},
		{ID: "root", Name: "Root"},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error for cycle")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("err = %v, want cycle mention", err)
	}
}

func TestValidate_SelfCycle(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A", Prerequisites: []string{"a"}},
		{ID: "root", Name: "Root"},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error for self-referential prerequisite")
	}
}

func TestValidate_EmptyConceptSet(t *testing.T) {
	_, err := NewGraph(testTopic(), nil)
	if err == nil {
		t.Fatal("expected error for empty concept set")
	}
}

func TestValidate_NoRoot(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A", Prerequisites: []string{"b"}},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error for rootless graph")
	}
	if !strings.Contains(err.Error(), "no root concepts") {
		t.Errorf("err = %v, want no root concepts mention", err)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: ""},
		{ID: "a", Name: "Dup", Prerequisites: []string{"ghost"}},
	}
	_, err := NewGraph(testTopic(), concepts)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate concept ID", "nonexistent prerequisite", "has no name"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
}

func TestCatalog_AllTopicsBuild(t *testing.T) {
	topics := Catalog()
	if len(topics) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, top := range topics {
		tp, concepts, err := Lookup(top.ID)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", top.ID, err)
		}
		if tp.ID != top.ID {
			t.Errorf("Lookup(%q) returned topic %q", top.ID, tp.ID)
		}
		if _, err := NewGraph(tp, concepts); err != nil {
			t.Errorf("catalog topic %q does not validate: %v", top.ID, err)
		}
	}
}

func TestCatalog_UnknownTopic(t *testing.T) {
	_, _, err := Lookup("quantum-chromodynamics")
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestCatalog_RecursionShape(t *testing.T) {
	_, concepts, err := Lookup("recursion")
	if err != nil {
		t.Fatal(err)
	}

	byID := make(map[string]Concept, len(concepts))
	for _, c := range concepts {
		byID[c.ID] = c
	}
	for _, id := range []string{"base_case", "self_reference", "stack_growth"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("recursion topic missing concept %q", id)
		}
	}
	if len(byID["base_case"].Prerequisites) != 0 {
		t.Error("base_case should have no prerequisites")
	}
	for _, id := range []string{"self_reference", "stack_growth"} {
		found := false
		for _, p := range byID[id].Prerequisites {
			if p == "base_case" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should require base_case", id)
		}
	}
}
