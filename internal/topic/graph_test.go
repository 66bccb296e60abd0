package topic

import (
	"errors"
	"testing"
)

func testTopic() Topic {
	return Topic{ID: "recursion", Name: "Recursion"}
}

func recursionConcepts() []Concept {
	return []Concept{
		{ID: "base_case", Name: "Base case"},
		{ID: "self_reference", Name: "Self-reference", Prerequisites: []string{"base_case"}},
		{ID: "stack_growth", Name: "Call stack growth", Prerequisites: []string{"base_case"}},
	}
}

func mustGraph(t *testing.T, concepts []Concept) *Graph {
	t.Helper()
	g, err := NewGraph(testTopic(), concepts)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestNextEligible_RootFirst(t *testing.T) {
	g := mustGraph(t, recursionConcepts())

	c, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if !ok {
		t.Fatal("expected an eligible concept")
	}
	if c.ID != "base_case" {
		t.Errorf("first concept = %q, want base_case", c.ID)
	}
}

func TestNextEligible_RootFirstRegardlessOfDeclarationOrder(t *testing.T) {
	// Dependents declared before their shared prerequisite.
	concepts := []Concept{
		{ID: "stack_growth", Name: "Call stack growth", Prerequisites: []string{"base_case"}},
		{ID: "self_reference", Name: "Self-reference", Prerequisites: []string{"base_case"}},
		{ID: "base_case", Name: "Base case"},
	}
	g := mustGraph(t, concepts)

	c, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if !ok || c.ID != "base_case" {
		t.Errorf("first concept = %q (ok=%v), want base_case", c.ID, ok)
	}
}

func TestNextEligible_DeclarationOrderBreaksTies(t *testing.T) {
	g := mustGraph(t, recursionConcepts())
	g.SetStatus("base_case", StatusMastered)

	c, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if !ok || c.ID != "self_reference" {
		t.Errorf("next concept = %q (ok=%v), want self_reference", c.ID, ok)
	}
}

func TestNextEligible_FewestUnmasteredDependents(t *testing.T) {
	// hub unlocks two more concepts, leaf unlocks none. With both
	// eligible, leaf wins despite being declared after hub.
	concepts := []Concept{
		{ID: "root", Name: "Root"},
		{ID: "hub", Name: "Hub", Prerequisites: []string{"root"}},
		{ID: "leaf", Name: "Leaf", Prerequisites: []string{"root"}},
		{ID: "downstream_a", Name: "A", Prerequisites: []string{"hub"}},
		{ID: "downstream_b", Name: "B", Prerequisites: []string{"hub"}},
	}
	g := mustGraph(t, concepts)
	g.SetStatus("root", StatusMastered)

	c, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if !ok || c.ID != "leaf" {
		t.Errorf("next concept = %q (ok=%v), want leaf (fewest unmastered dependents)", c.ID, ok)
	}
}

func TestNextEligible_SkipsNonUnvisited(t *testing.T) {
	g := mustGraph(t, recursionConcepts())
	g.SetStatus("base_case", StatusMastered)
	g.SetStatus("self_reference", StatusProbing)

	c, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if !ok || c.ID != "stack_growth" {
		t.Errorf("next concept = %q (ok=%v), want stack_growth", c.ID, ok)
	}
}

func TestNextEligible_ExhaustedWhenAllTerminal(t *testing.T) {
	g := mustGraph(t, recursionConcepts())
	g.SetStatus("base_case", StatusMastered)
	g.SetStatus("self_reference", StatusMastered)
	g.SetStatus("stack_growth", StatusStalled)

	_, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible: %v", err)
	}
	if ok {
		t.Error("expected no eligible concept when all are terminal")
	}
	if !g.AllTerminal() {
		t.Error("AllTerminal = false, want true")
	}
}

func TestNextEligible_StalledPrerequisiteBlocksWithoutError(t *testing.T) {
	g := mustGraph(t, recursionConcepts())
	g.SetStatus("base_case", StatusStalled)

	_, ok, err := g.NextEligible()
	if err != nil {
		t.Fatalf("NextEligible returned error for stall-blocked graph: %v", err)
	}
	if ok {
		t.Error("expected no eligible concept behind a stalled prerequisite")
	}
	if g.AllTerminal() {
		t.Error("AllTerminal = true with unvisited concepts remaining")
	}
}

func TestNextEligible_WedgedGraphErrors(t *testing.T) {
	// Force the unreachable case by corrupting statuses: no stall,
	// no eligible concept, unvisited remaining.
	g := mustGraph(t, recursionConcepts())
	g.statuses["base_case"] = StatusProbing

	_, ok, err := g.NextEligible()
	if ok {
		t.Fatal("expected no eligible concept")
	}
	var wedged *NoEligibleConceptError
	if !errors.As(err, &wedged) {
		t.Fatalf("err = %v, want *NoEligibleConceptError", err)
	}
	if wedged.TopicID != "recursion" {
		t.Errorf("TopicID = %q, want recursion", wedged.TopicID)
	}
}

func TestEligible_RequiresAllPrerequisitesMastered(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C", Prerequisites: []string{"a", "b"}},
	}
	g := mustGraph(t, concepts)
	g.SetStatus("a", StatusMastered)

	if g.Eligible("c") {
		t.Error("c eligible with only one of two prerequisites mastered")
	}
	g.SetStatus("b", StatusMastered)
	if !g.Eligible("c") {
		t.Error("c not eligible with both prerequisites mastered")
	}
}

func TestDependents_DeclarationOrder(t *testing.T) {
	g := mustGraph(t, recursionConcepts())

	deps := g.Dependents("base_case")
	if len(deps) != 2 {
		t.Fatalf("len(Dependents) = %d, want 2", len(deps))
	}
	if deps[0].ID != "self_reference" || deps[1].ID != "stack_growth" {
		t.Errorf("Dependents order = [%s %s], want [self_reference stack_growth]", deps[0].ID, deps[1].ID)
	}
}

func TestTopologicalOrder_PrerequisitesFirst(t *testing.T) {
	g := mustGraph(t, recursionConcepts())

	order := g.TopologicalOrder()
	pos := make(map[string]int, len(order))
	for i, c := range order {
		pos[c.ID] = i
	}
	for _, c := range g.Concepts() {
		for _, prereq := range c.Prerequisites {
			if pos[prereq] > pos[c.ID] {
				t.Errorf("prerequisite %q ordered after %q", prereq, c.ID)
			}
		}
	}
}

func TestStatuses_CopyIsIndependent(t *testing.T) {
	g := mustGraph(t, recursionConcepts())

	snap := g.Statuses()
	snap["base_case"] = StatusMastered

	if g.Status("base_case") != StatusUnvisited {
		t.Error("mutating the Statuses copy leaked into the graph")
	}
}
