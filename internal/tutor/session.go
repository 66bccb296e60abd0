// Package tutor is the session state machine. A Controller drives a
// strictly turn-based loop: ask the oracle for a question, relay the
// learner's answer for judgment, feed the verdict history to the gate,
// and move concepts through the graph on its decisions. The controller
// sequences and interprets; all reasoning lives behind the oracle.
package tutor

import (
	"sync"
	"time"

	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
)

// Session is the runtime state of one tutoring dialogue. It is built
// by Controller.Start, mutated turn by turn, and owned by exactly one
// controller. Sessions are not safe for concurrent turns; the only
// concurrent writer is the dialogue compaction callback, which touches
// the summary map under its own lock.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Topic is what the learner chose to work through. Immutable.
	Topic topic.Topic

	// Graph holds the topic's concepts and their statuses.
	Graph *topic.Graph

	// Transcript is the append-only dialogue record.
	Transcript *transcript.Transcript

	// Current is the ID of the concept under probe, empty once every
	// reachable concept is terminal.
	Current string

	// StartedAt is when the session began.
	StartedAt time.Time

	// EndedAt is when End was first called. Zero while live.
	EndedAt time.Time

	// depth tracks each concept's simplification depth. 0 is the
	// concept's natural difficulty; remediation deepens it.
	depth map[string]int

	// remCycles counts gate remediation demands per concept. The
	// demand that reaches gate.MaxRemediationCycles stalls the concept
	// instead of simplifying again.
	remCycles map[string]int

	// simplifyNext is set when remediation was just entered or
	// deepened; the next ask for the current concept consumes it.
	simplifyNext bool

	// lastProbed is the concept most recently judged, kept so the
	// closing turn can reflect on something concrete.
	lastProbed string

	// summaries holds compacted per-concept dialogue, written
	// asynchronously by the compactor callback.
	summaries   map[string]string
	compactedAt map[string]int
	summaryMu   sync.Mutex

	completed bool
	ended     bool
}

func newSession(id string, t topic.Topic, g *topic.Graph, tr *transcript.Transcript, startedAt time.Time) *Session {
	return &Session{
		ID:          id,
		Topic:       t,
		Graph:       g,
		Transcript:  tr,
		StartedAt:   startedAt,
		depth:       make(map[string]int),
		remCycles:   make(map[string]int),
		summaries:   make(map[string]string),
		compactedAt: make(map[string]int),
	}
}

// Completed reports whether every reachable concept is terminal. A
// completed session accepts Conclude and End but no further turns.
func (s *Session) Completed() bool {
	return s.completed
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	return s.ended
}

// Depth returns a concept's current simplification depth.
func (s *Session) Depth(conceptID string) int {
	return s.depth[conceptID]
}

// RemediationCycles returns how many times the gate has demanded
// remediation for a concept.
func (s *Session) RemediationCycles(conceptID string) int {
	return s.remCycles[conceptID]
}

// transition moves a concept to a new status and returns the change
// record.
func (s *Session) transition(c topic.Concept, to topic.Status, trigger string) *topic.Transition {
	from := s.Graph.Status(c.ID)
	s.Graph.SetStatus(c.ID, to)
	return &topic.Transition{
		ConceptID:   c.ID,
		ConceptName: c.Name,
		From:        from,
		To:          to,
		Trigger:     trigger,
	}
}

func (s *Session) summaryFor(conceptID string) string {
	s.summaryMu.Lock()
	defer s.summaryMu.Unlock()
	return s.summaries[conceptID]
}

func (s *Session) setSummary(conceptID, summary string) {
	s.summaryMu.Lock()
	defer s.summaryMu.Unlock()
	s.summaries[conceptID] = summary
}
