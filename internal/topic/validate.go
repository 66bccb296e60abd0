package topic

import (
	"fmt"
	"strings"
)

// validateConcepts performs all structural checks on a topic's concept
// set. Returns a combined error describing every problem found, or nil.
func validateConcepts(t Topic, concepts []Concept) error {
	var errs []string

	if t.ID == "" {
		errs = append(errs, "topic ID is empty")
	}
	if len(concepts) == 0 {
		errs = append(errs, fmt.Sprintf("topic %q has no concepts", t.ID))
	}

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, "concept with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("concept %q has no name", c.ID))
		}
	}

	// Dangling prerequisites
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Cycle check via Kahn's algorithm
	inDegree := make(map[string]int, len(concepts))
	adjList := make(map[string][]string)
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(concepts) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, c := range concepts {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(concepts) > 0 && !hasRoot {
		errs = append(errs, "no root concepts (at least one concept must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic %q validation failed:\n  %s", t.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
