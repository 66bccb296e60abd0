package store

import (
	"context"
	"fmt"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/ent/conceptevent"
)

func (r *eventRepo) AppendConceptEvent(ctx context.Context, data ConceptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ConceptEvent.Create().
		SetSequence(seqNum).
		SetConceptID(data.ConceptID).
		SetFromStatus(data.FromStatus).
		SetToStatus(data.ToStatus).
		SetTrigger(data.Trigger).
		SetDepth(data.Depth)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save concept event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestConceptStatuses(ctx context.Context) (map[string]string, error) {
	rows, err := r.client.ConceptEvent.Query().
		Order(ent.Asc(conceptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept events: %w", err)
	}

	// Later events overwrite earlier ones.
	out := make(map[string]string)
	for _, e := range rows {
		out[e.ConceptID] = e.ToStatus
	}
	return out, nil
}
