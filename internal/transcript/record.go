package transcript

import (
	"fmt"
	"time"

	"github.com/socralabs/socra/internal/oracle"
)

// Role tags who produced a record.
type Role string

const (
	RoleTutor   Role = "tutor"
	RoleLearner Role = "learner"
)

// Record is one flattened transcript line in the export encoding.
// A sealed exchange exports as a tutor record followed by a learner
// record; an open exchange exports its tutor record only.
type Record struct {
	ConceptID  string          `json:"concept_id"`
	Role       Role            `json:"role"`
	Text       string          `json:"text"`
	Example    string          `json:"example,omitempty"`
	Verdict    *oracle.Verdict `json:"verdict,omitempty"`
	Depth      int             `json:"depth"`
	Simplified bool            `json:"simplified,omitempty"`
	Transfer   bool            `json:"transfer,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Archive is a full exported session transcript.
type Archive struct {
	SessionID string     `json:"session_id"`
	TopicID   string     `json:"topic_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Records   []Record   `json:"records"`
}

// Export flattens the transcript into records.
func (t *Transcript) Export() []Record {
	var out []Record
	for i := range t.entries {
		e := &t.entries[i]
		out = append(out, Record{
			ConceptID:  e.ConceptID,
			Role:       RoleTutor,
			Text:       e.Question.Text,
			Example:    e.Question.Example,
			Depth:      e.Depth,
			Simplified: e.Simplified,
			Transfer:   e.Transfer,
			Timestamp:  e.AskedAt,
		})
		if e.IsSealed() {
			v := *e.Verdict
			out = append(out, Record{
				ConceptID: e.ConceptID,
				Role:      RoleLearner,
				Text:      e.Answer,
				Verdict:   &v,
				Depth:     e.Depth,
				Timestamp: e.AnsweredAt,
			})
		}
	}
	return out
}

// FromRecords rebuilds a transcript from exported records by replaying
// them through Append and Seal, so a rebuilt transcript obeys the same
// structural rules as a live one.
func FromRecords(records []Record) (*Transcript, error) {
	t := New()
	for i, r := range records {
		switch r.Role {
		case RoleTutor:
			_, err := t.Append(Exchange{
				ConceptID: r.ConceptID,
				Question: oracle.Question{
					Kind:    oracle.KindQuestion,
					Text:    r.Text,
					Example: r.Example,
				},
				Depth:      r.Depth,
				Simplified: r.Simplified,
				Transfer:   r.Transfer,
				AskedAt:    r.Timestamp,
			})
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		case RoleLearner:
			open := t.Open()
			if open == nil {
				return nil, fmt.Errorf("record %d: learner record with no pending question", i)
			}
			if open.ConceptID != r.ConceptID {
				return nil, fmt.Errorf("record %d: answer concept %q does not match pending question concept %q", i, r.ConceptID, open.ConceptID)
			}
			if r.Verdict == nil {
				return nil, fmt.Errorf("record %d: learner record missing verdict", i)
			}
			if _, err := t.Seal(r.Text, *r.Verdict, r.Timestamp); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("record %d: unknown role %q", i, r.Role)
		}
	}
	return t, nil
}
