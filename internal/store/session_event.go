package store

import (
	"context"
	"fmt"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/ent/sessionevent"
)

// Session lifecycle actions.
const (
	actionStart = "start"
	actionEnd   = "end"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetAction(data.Action).
		SetTotalExchanges(data.TotalExchanges).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(data.Mastered) > 0 {
		builder = builder.SetMastered(data.Mastered)
	}
	if len(data.Stalled) > 0 {
		builder = builder.SetStalled(data.Stalled)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionInfo, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Asc(sessionevent.FieldSequence))
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	// Fold start/end pairs into one record per session.
	byID := make(map[string]*SessionInfo)
	var order []string
	for _, e := range rows {
		info, ok := byID[e.SessionID]
		if !ok {
			info = &SessionInfo{
				SessionID: e.SessionID,
				TopicID:   e.TopicID,
				StartedAt: e.Timestamp,
			}
			byID[e.SessionID] = info
			order = append(order, e.SessionID)
		}
		if e.Action == actionEnd {
			endedAt := e.Timestamp
			info.EndedAt = &endedAt
			info.TotalExchanges = e.TotalExchanges
			info.CorrectAnswers = e.CorrectAnswers
			info.DurationSecs = e.DurationSecs
			info.Mastered = e.Mastered
			info.Stalled = e.Stalled
		}
	}

	out := make([]SessionInfo, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, *byID[order[i]])
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}
