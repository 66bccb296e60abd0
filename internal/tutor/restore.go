package tutor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/socralabs/socra/internal/gate"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
)

// Restore rebuilds a session from an exported archive by replaying its
// records through the same gate and transition rules live turns use.
// The rebuilt session carries identical concept statuses, probe
// pointer, and remediation state, and can resume turns if the archive
// was not ended. Records must probe concepts in the order the graph
// would have selected them; anything else is a malformed archive.
func (c *Controller) Restore(t topic.Topic, concepts []topic.Concept, a *transcript.Archive) (*Session, error) {
	g, err := topic.NewGraph(t, concepts)
	if err != nil {
		return nil, &InvalidTopicError{TopicID: t.ID, Err: err}
	}

	tr, err := transcript.FromRecords(a.Records)
	if err != nil {
		return nil, fmt.Errorf("restore transcript: %w", err)
	}

	id := a.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	s := newSession(id, t, g, tr, a.StartedAt)

	first, ok, err := g.NextEligible()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidTopicError{TopicID: t.ID, Err: errors.New("no concept is eligible to start")}
	}
	s.transition(first, topic.StatusProbing, "prerequisites-met")
	s.Current = first.ID

	perConcept := make(map[string][]transcript.Exchange)
	for _, ex := range tr.Entries() {
		if s.completed {
			return nil, fmt.Errorf("restore: exchange %d continues past session completion", ex.Seq)
		}
		if ex.ConceptID != s.Current {
			return nil, fmt.Errorf("restore: exchange %d probes %q while %q was current", ex.Seq, ex.ConceptID, s.Current)
		}

		// The recorded ask consumed any pending simplify flag.
		s.simplifyNext = false

		if !ex.IsSealed() {
			// Trailing open exchange, still awaiting its answer.
			continue
		}
		s.lastProbed = ex.ConceptID

		concept, err := s.Graph.Get(ex.ConceptID)
		if err != nil {
			return nil, err
		}

		perConcept[ex.ConceptID] = append(perConcept[ex.ConceptID], ex)
		decision := gate.Decide(perConcept[ex.ConceptID])
		c.applyDecision(s, concept, *ex.Verdict, decision)

		if s.Graph.Status(ex.ConceptID).Terminal() {
			if _, _, err := c.advanceCurrent(s); err != nil {
				return nil, err
			}
		}
	}

	if a.EndedAt != nil {
		s.ended = true
		s.EndedAt = *a.EndedAt
	}
	return s, nil
}

// ExportArchive packages the session's transcript for persistence or
// transfer. Restore of the result reproduces the session state.
func ExportArchive(s *Session) *transcript.Archive {
	a := &transcript.Archive{
		SessionID: s.ID,
		TopicID:   s.Topic.ID,
		StartedAt: s.StartedAt,
		Records:   s.Transcript.Export(),
	}
	if s.ended {
		ended := s.EndedAt
		a.EndedAt = &ended
	}
	return a
}
