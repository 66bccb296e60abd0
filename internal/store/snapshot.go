package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/ent/snapshot"
)

// snapshotRepo stores learner-state snapshots through the ent client.
// Rows are ordered by the event sequence they were cut at, not by wall
// clock: sequence stays monotonic even when two saves land within the
// same timestamp granularity.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := encodeSnapshotData(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	data, err := decodeSnapshotData(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

// Prune drops every row outside the keep newest. One snapshot lands
// per session end, so the keep list stays small enough for a NOT IN.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	keepIDs, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Limit(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list snapshots to keep: %w", err)
	}
	if len(keepIDs) < keep {
		return nil
	}
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDNotIn(keepIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeSnapshotData round-trips the typed payload through JSON into
// the map shape the ent JSON column stores.
func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeSnapshotData is the inverse of encodeSnapshotData.
func decodeSnapshotData(m map[string]any) (SnapshotData, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return SnapshotData{}, err
	}
	var data SnapshotData
	err = json.Unmarshal(raw, &data)
	return data, err
}
