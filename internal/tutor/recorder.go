package tutor

import (
	"context"

	"github.com/socralabs/socra/internal/gate"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
)

// Recorder receives session events as they happen, for persistence.
// The controller treats recording as best effort: a recorder error
// never fails a turn. A nil Recorder disables recording entirely.
type Recorder interface {
	AppendSessionStart(ctx context.Context, s *Session) error
	AppendAsk(ctx context.Context, s *Session, ex transcript.Exchange) error
	AppendJudge(ctx context.Context, s *Session, ex transcript.Exchange, decision gate.Decision) error
	AppendTransition(ctx context.Context, s *Session, tr topic.Transition) error
	AppendSessionEnd(ctx context.Context, s *Session, summary *SessionSummary) error
}
