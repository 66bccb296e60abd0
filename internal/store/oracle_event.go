package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/ent/oraclerequestevent"
	"github.com/socralabs/socra/internal/oracle"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter. It also serves as the oracle middleware's request log.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, entry oracle.RequestLogEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OracleRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetRequestBody(entry.RequestBody).
		SetResponseBody(entry.ResponseBody).
		SetErrorMessage(entry.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save oracle request event: %w", err)
	}

	return nil
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]*ent.OracleRequestEvent, error) {
	q := r.client.OracleRequestEvent.Query().
		Order(ent.Desc(oraclerequestevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(oraclerequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(oraclerequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(oraclerequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(oraclerequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query oracle events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetOracleEvent(ctx context.Context, id int) (*ent.OracleRequestEvent, error) {
	e, err := r.client.OracleRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oracle event: %w", err)
	}
	return e, nil
}

func (r *eventRepo) OracleUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}
	err := r.client.OracleRequestEvent.Query().
		GroupBy(oraclerequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(oraclerequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(oraclerequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(oraclerequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	out := make([]PurposeUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) OracleUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}
	err := r.client.OracleRequestEvent.Query().
		GroupBy(oraclerequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(oraclerequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(oraclerequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	out := make([]ModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, ModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
