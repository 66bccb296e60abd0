package store

import (
	"context"
	"fmt"
	"time"

	"github.com/socralabs/socra/internal/gate"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
	"github.com/socralabs/socra/internal/tutor"
)

const (
	// snapshotKeep bounds how many snapshots Prune retains.
	snapshotKeep = 10

	snapshotVersion = 1
)

// Recorder persists session events and folds session outcomes into the
// learner snapshot. It satisfies tutor.Recorder.
type Recorder struct {
	events EventRepo
	snaps  SnapshotRepo
}

// NewRecorder builds a Recorder over the store's repositories.
func NewRecorder(events EventRepo, snaps SnapshotRepo) *Recorder {
	return &Recorder{events: events, snaps: snaps}
}

func (r *Recorder) AppendSessionStart(ctx context.Context, s *tutor.Session) error {
	return r.events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: s.ID,
		TopicID:   s.Topic.ID,
		Action:    actionStart,
	})
}

func (r *Recorder) AppendAsk(ctx context.Context, s *tutor.Session, ex transcript.Exchange) error {
	return r.events.AppendExchangeEvent(ctx, ExchangeEventData{
		SessionID:  s.ID,
		ConceptID:  ex.ConceptID,
		Role:       string(transcript.RoleTutor),
		Text:       ex.Question.Text,
		Example:    ex.Question.Example,
		Depth:      ex.Depth,
		Simplified: ex.Simplified,
		Transfer:   ex.Transfer,
		Timestamp:  ex.AskedAt,
	})
}

func (r *Recorder) AppendJudge(ctx context.Context, s *tutor.Session, ex transcript.Exchange, decision gate.Decision) error {
	data := ExchangeEventData{
		SessionID: s.ID,
		ConceptID: ex.ConceptID,
		Role:      string(transcript.RoleLearner),
		Text:      ex.Answer,
		Depth:     ex.Depth,
		Decision:  decision.String(),
		Timestamp: ex.AnsweredAt,
	}
	if ex.Verdict != nil {
		data.Grade = string(ex.Verdict.Grade)
		data.AppliesTransfer = ex.Verdict.AppliesTransfer
		data.Probe = ex.Verdict.Probe
	}
	return r.events.AppendExchangeEvent(ctx, data)
}

func (r *Recorder) AppendTransition(ctx context.Context, s *tutor.Session, tr topic.Transition) error {
	return r.events.AppendConceptEvent(ctx, ConceptEventData{
		ConceptID:  tr.ConceptID,
		FromStatus: tr.From.String(),
		ToStatus:   tr.To.String(),
		Trigger:    tr.Trigger,
		Depth:      s.Depth(tr.ConceptID),
		SessionID:  s.ID,
	})
}

func (r *Recorder) AppendSessionEnd(ctx context.Context, s *tutor.Session, summary *tutor.SessionSummary) error {
	err := r.events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      s.ID,
		TopicID:        s.Topic.ID,
		Action:         actionEnd,
		TotalExchanges: summary.TotalExchanges,
		CorrectAnswers: summary.CorrectAnswers,
		DurationSecs:   int(summary.Duration / time.Second),
		Mastered:       summary.Mastered,
		Stalled:        summary.Stalled,
	})
	if err != nil {
		return err
	}
	if err := r.saveSnapshot(ctx, s); err != nil {
		return fmt.Errorf("snapshot session: %w", err)
	}
	return nil
}

// saveSnapshot merges the session's terminal outcomes into the latest
// snapshot and saves a new one. A concept once mastered stays
// mastered; a stall never downgrades earlier mastery.
func (r *Recorder) saveSnapshot(ctx context.Context, s *tutor.Session) error {
	prev, err := r.snaps.Latest(ctx)
	if err != nil {
		return err
	}

	data := SnapshotData{
		Version: snapshotVersion,
		Topics:  make(map[string]map[string]string),
	}
	if prev != nil {
		for topicID, statuses := range prev.Data.Topics {
			m := make(map[string]string, len(statuses))
			for id, st := range statuses {
				m[id] = st
			}
			data.Topics[topicID] = m
		}
	}

	statuses := data.Topics[s.Topic.ID]
	if statuses == nil {
		statuses = make(map[string]string)
		data.Topics[s.Topic.ID] = statuses
	}
	for id, st := range s.Graph.Statuses() {
		switch st {
		case topic.StatusMastered:
			statuses[id] = st.String()
		case topic.StatusStalled:
			if statuses[id] != topic.StatusMastered.String() {
				statuses[id] = st.String()
			}
		}
	}

	seq, err := r.events.CurrentSequence(ctx)
	if err != nil {
		return err
	}

	err = r.snaps.Save(ctx, &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return err
	}
	return r.snaps.Prune(ctx, snapshotKeep)
}

var _ tutor.Recorder = (*Recorder)(nil)
