package transcript

import (
	"errors"
	"time"

	"github.com/socralabs/socra/internal/oracle"
)

var (
	// ErrOpenExchange is returned when appending while a question is
	// still awaiting its answer.
	ErrOpenExchange = errors.New("transcript: an exchange is already open")

	// ErrNoOpenExchange is returned when sealing with no question
	// pending.
	ErrNoOpenExchange = errors.New("transcript: no open exchange to seal")
)

// Exchange is one question and, once sealed, the learner's answer with
// its verdict. An exchange is open from the moment its question is
// asked until the answer is judged.
type Exchange struct {
	// Seq is the 1-based position in the transcript.
	Seq int

	// ConceptID is the concept the question probes.
	ConceptID string

	// Question is the tutor's utterance.
	Question oracle.Question

	// Answer is the learner's response. Empty while open.
	Answer string

	// Verdict is the oracle's judgment. Nil while open; an exchange is
	// sealed exactly when Verdict is set.
	Verdict *oracle.Verdict

	// Depth is the simplification depth the question was asked at.
	Depth int

	// Simplified marks the first question after entering remediation.
	Simplified bool

	// Transfer marks a question posed as a transfer probe.
	Transfer bool

	AskedAt    time.Time
	AnsweredAt time.Time
}

// IsSealed reports whether the exchange has its verdict.
func (e *Exchange) IsSealed() bool {
	return e.Verdict != nil
}

// Transcript is the append-only dialogue record for one session.
// At most one exchange is open at any time, and it is always the last
// entry.
type Transcript struct {
	entries []Exchange
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Len returns the number of exchanges, open included.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Append adds a new open exchange. The sequence number is assigned
// here. Fails if an exchange is already open.
func (t *Transcript) Append(ex Exchange) (*Exchange, error) {
	if t.Open() != nil {
		return nil, ErrOpenExchange
	}
	ex.Seq = len(t.entries) + 1
	ex.Verdict = nil
	ex.Answer = ""
	t.entries = append(t.entries, ex)
	return &t.entries[len(t.entries)-1], nil
}

// Seal closes the open exchange with the learner's answer and its
// verdict. Fails if nothing is open.
func (t *Transcript) Seal(answer string, v oracle.Verdict, at time.Time) (*Exchange, error) {
	open := t.Open()
	if open == nil {
		return nil, ErrNoOpenExchange
	}
	open.Answer = answer
	open.Verdict = &v
	open.AnsweredAt = at
	return open, nil
}

// Open returns the open exchange, or nil when every exchange is
// sealed.
func (t *Transcript) Open() *Exchange {
	if len(t.entries) == 0 {
		return nil
	}
	last := &t.entries[len(t.entries)-1]
	if last.IsSealed() {
		return nil
	}
	return last
}

// Entries returns a copy of all exchanges in order.
func (t *Transcript) Entries() []Exchange {
	out := make([]Exchange, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sealed returns a copy of the sealed exchanges in order.
func (t *Transcript) Sealed() []Exchange {
	var out []Exchange
	for i := range t.entries {
		if t.entries[i].IsSealed() {
			out = append(out, t.entries[i])
		}
	}
	return out
}

// SealedForConcept returns the sealed exchanges probing one concept,
// in order.
func (t *Transcript) SealedForConcept(conceptID string) []Exchange {
	var out []Exchange
	for i := range t.entries {
		if t.entries[i].ConceptID == conceptID && t.entries[i].IsSealed() {
			out = append(out, t.entries[i])
		}
	}
	return out
}

// Turns converts a concept's sealed dialogue into the oracle's history
// form, oldest first.
func (t *Transcript) Turns(conceptID string) []oracle.Turn {
	var out []oracle.Turn
	for i := range t.entries {
		e := &t.entries[i]
		if e.ConceptID != conceptID || !e.IsSealed() {
			continue
		}
		out = append(out, oracle.Turn{
			Question: e.Question.Text,
			Answer:   e.Answer,
			Grade:    e.Verdict.Grade,
		})
	}
	return out
}
