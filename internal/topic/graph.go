package topic

import (
	"fmt"
	"slices"
	"sort"
)

// NoEligibleConceptError indicates that unvisited concepts remain but
// none can ever become eligible. With load-time validation rejecting
// cycles this should be unreachable; it exists so a wedged graph fails
// loudly instead of looping.
type NoEligibleConceptError struct {
	TopicID   string
	Unvisited []string
}

func (e *NoEligibleConceptError) Error() string {
	return fmt.Sprintf("no eligible concept in topic %q: %d unvisited concepts are unreachable", e.TopicID, len(e.Unvisited))
}

// Graph holds one session's concept DAG with per-concept statuses and
// precomputed indices. Statuses are mutated only through the session
// controller.
type Graph struct {
	topic      Topic
	concepts   []Concept
	byID       map[string]*Concept
	declIndex  map[string]int
	dependents map[string][]string
	topoOrder  []string
	topoIndex  map[string]int
	statuses   map[string]Status
}

// NewGraph validates the concept set and builds the indices, including
// a topological order via Kahn's algorithm. Every concept starts
// Unvisited.
func NewGraph(t Topic, concepts []Concept) (*Graph, error) {
	if err := validateConcepts(t, concepts); err != nil {
		return nil, err
	}

	g := &Graph{
		topic:      t,
		concepts:   slices.Clone(concepts),
		byID:       make(map[string]*Concept, len(concepts)),
		declIndex:  make(map[string]int, len(concepts)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
		statuses:   make(map[string]Status, len(concepts)),
	}

	for i := range g.concepts {
		c := &g.concepts[i]
		g.byID[c.ID] = c
		g.declIndex[c.ID] = i
		g.statuses[c.ID] = StatusUnvisited
	}

	// Reverse edges
	for i := range g.concepts {
		for _, prereqID := range g.concepts[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.concepts[i].ID)
		}
	}

	// Kahn's algorithm with sorted queues for deterministic order
	inDegree := make(map[string]int, len(concepts))
	for i := range g.concepts {
		inDegree[g.concepts[i].ID] = len(g.concepts[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoOrder = append(g.topoOrder, id)

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	for i, id := range g.topoOrder {
		g.topoIndex[id] = i
	}

	return g, nil
}

// Topic returns the topic this graph was built for.
func (g *Graph) Topic() Topic {
	return g.topic
}

// Len returns the number of concepts.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Concepts returns all concepts in declaration order.
func (g *Graph) Concepts() []Concept {
	return slices.Clone(g.concepts)
}

// Get returns a concept by ID.
func (g *Graph) Get(id string) (Concept, error) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return *c, nil
}

// Status returns the current status for a concept ID. Unknown IDs
// report Unvisited.
func (g *Graph) Status(id string) Status {
	return g.statuses[id]
}

// SetStatus records a status change. The controller is the only caller.
func (g *Graph) SetStatus(id string, st Status) {
	if _, ok := g.byID[id]; ok {
		g.statuses[id] = st
	}
}

// Statuses returns a copy of the full status map.
func (g *Graph) Statuses() map[string]Status {
	out := make(map[string]Status, len(g.statuses))
	for id, st := range g.statuses {
		out[id] = st
	}
	return out
}

// Prerequisites returns the direct prerequisite concepts for an ID.
func (g *Graph) Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the concepts that directly depend on an ID,
// in declaration order.
func (g *Graph) Dependents(id string) []Concept {
	depIDs := slices.Clone(g.dependents[id])
	sort.Slice(depIDs, func(i, j int) bool {
		return g.declIndex[depIDs[i]] < g.declIndex[depIDs[j]]
	})
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		result = append(result, *g.byID[depID])
	}
	return result
}

// Eligible reports whether a concept is unvisited with every
// prerequisite mastered.
func (g *Graph) Eligible(id string) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	if g.statuses[id] != StatusUnvisited {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if g.statuses[prereqID] != StatusMastered {
			return false
		}
	}
	return true
}

// NextEligible selects the next concept to probe: among eligible
// concepts, the one with the fewest unmastered dependents, breaking
// ties by declaration order. ok is false when no concept is eligible
// now — either every concept is terminal, or the remaining unvisited
// ones sit behind a stalled prerequisite. The error case means
// unvisited concepts can never unblock and no stall explains it.
func (g *Graph) NextEligible() (Concept, bool, error) {
	best := -1
	bestUnmet := 0
	for i := range g.concepts {
		id := g.concepts[i].ID
		if !g.Eligible(id) {
			continue
		}
		unmet := 0
		for _, depID := range g.dependents[id] {
			if g.statuses[depID] != StatusMastered {
				unmet++
			}
		}
		if best < 0 || unmet < bestUnmet {
			best = i
			bestUnmet = unmet
		}
	}
	if best >= 0 {
		return g.concepts[best], true, nil
	}

	var unvisited []string
	for i := range g.concepts {
		if g.statuses[g.concepts[i].ID] == StatusUnvisited {
			unvisited = append(unvisited, g.concepts[i].ID)
		}
	}
	if len(unvisited) == 0 {
		return Concept{}, false, nil
	}
	// Unvisited concepts behind a stalled prerequisite are expected to
	// stay blocked; anything else means the DAG wedged.
	for _, id := range unvisited {
		if !g.blockedByStall(id, make(map[string]bool)) {
			return Concept{}, false, &NoEligibleConceptError{TopicID: g.topic.ID, Unvisited: unvisited}
		}
	}
	return Concept{}, false, nil
}

// blockedByStall reports whether some prerequisite chain of id reaches
// a stalled concept.
func (g *Graph) blockedByStall(id string, seen map[string]bool) bool {
	if seen[id] {
		return false
	}
	seen[id] = true
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if g.statuses[prereqID] == StatusStalled {
			return true
		}
		if g.statuses[prereqID] != StatusMastered && g.blockedByStall(prereqID, seen) {
			return true
		}
	}
	return false
}

// AllTerminal reports whether every concept is Mastered or Stalled.
func (g *Graph) AllTerminal() bool {
	for _, st := range g.statuses {
		if !st.Terminal() {
			return false
		}
	}
	return true
}

// CountByStatus returns how many concepts currently hold each status.
func (g *Graph) CountByStatus() map[Status]int {
	out := make(map[Status]int)
	for _, st := range g.statuses {
		out[st]++
	}
	return out
}

// TopologicalOrder returns all concepts in a valid topological order.
func (g *Graph) TopologicalOrder() []Concept {
	result := make([]Concept, 0, len(g.topoOrder))
	for _, id := range g.topoOrder {
		result = append(result, *g.byID[id])
	}
	return result
}
