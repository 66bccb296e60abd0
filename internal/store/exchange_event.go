package store

import (
	"context"
	"fmt"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/ent/exchangeevent"
	"github.com/socralabs/socra/ent/sessionevent"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/transcript"
)

func (r *eventRepo) AppendExchangeEvent(ctx context.Context, data ExchangeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ExchangeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetRole(data.Role).
		SetText(data.Text).
		SetExample(data.Example).
		SetGrade(data.Grade).
		SetAppliesTransfer(data.AppliesTransfer).
		SetProbe(data.Probe).
		SetDepth(data.Depth).
		SetSimplified(data.Simplified).
		SetTransfer(data.Transfer).
		SetDecision(data.Decision)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save exchange event: %w", err)
	}
	return nil
}

// SessionArchive rebuilds the exported transcript for a session from
// its exchange events, in sequence order.
func (r *eventRepo) SessionArchive(ctx context.Context, sessionID string) (*transcript.Archive, error) {
	start, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.SessionID(sessionID),
			sessionevent.Action(actionStart),
		).
		Order(ent.Asc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %q not recorded", sessionID)
		}
		return nil, fmt.Errorf("query session start: %w", err)
	}

	a := &transcript.Archive{
		SessionID: sessionID,
		TopicID:   start.TopicID,
		StartedAt: start.Timestamp,
	}

	end, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.SessionID(sessionID),
			sessionevent.Action(actionEnd),
		).
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query session end: %w", err)
	}
	if err == nil {
		endedAt := end.Timestamp
		a.EndedAt = &endedAt
	}

	rows, err := r.client.ExchangeEvent.Query().
		Where(exchangeevent.SessionID(sessionID)).
		Order(ent.Asc(exchangeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exchange events: %w", err)
	}

	for _, e := range rows {
		rec := transcript.Record{
			ConceptID: e.ConceptID,
			Role:      transcript.Role(e.Role),
			Text:      e.Text,
			Depth:     e.Depth,
			Timestamp: e.Timestamp,
		}
		switch rec.Role {
		case transcript.RoleTutor:
			rec.Example = e.Example
			rec.Simplified = e.Simplified
			rec.Transfer = e.Transfer
		case transcript.RoleLearner:
			rec.Verdict = &oracle.Verdict{
				Grade:           oracle.Grade(e.Grade),
				AppliesTransfer: e.AppliesTransfer,
				Probe:           e.Probe,
			}
		}
		a.Records = append(a.Records, rec)
	}

	return a, nil
}

func (r *eventRepo) ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error) {
	rows, err := r.client.ExchangeEvent.Query().
		Where(
			exchangeevent.ConceptID(conceptID),
			exchangeevent.Role(string(transcript.RoleLearner)),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query concept accuracy: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range rows {
		if e.Grade == string(oracle.GradeCorrect) {
			correct++
		}
	}
	return float64(correct) / float64(len(rows)), len(rows), nil
}
