package store

import (
	"context"
	"time"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/transcript"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event. The totals and
// outcome lists are meaningful on "end" only.
type SessionEventData struct {
	SessionID      string
	TopicID        string
	Action         string
	TotalExchanges int
	CorrectAnswers int
	DurationSecs   int
	Mastered       []string
	Stalled        []string
}

// ExchangeEventData captures one transcript line.
type ExchangeEventData struct {
	SessionID       string
	ConceptID       string
	Role            string
	Text            string
	Example         string
	Grade           string
	AppliesTransfer bool
	Probe           string
	Depth           int
	Simplified      bool
	Transfer        bool
	Decision        string
	Timestamp       time.Time
}

// ConceptEventData captures a concept status transition.
type ConceptEventData struct {
	ConceptID  string
	FromStatus string
	ToStatus   string
	Trigger    string
	Depth      int
	SessionID  string
}

// SessionInfo summarizes one recorded session, folded from its start
// and end events.
type SessionInfo struct {
	SessionID      string
	TopicID        string
	StartedAt      time.Time
	EndedAt        *time.Time
	TotalExchanges int
	CorrectAnswers int
	DurationSecs   int
	Mastered       []string
	Stalled        []string
}

// PurposeUsage aggregates oracle calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates oracle calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
// Appends assign each event its global sequence number; queries read
// back in sequence order unless noted.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendExchangeEvent records one transcript line.
	AppendExchangeEvent(ctx context.Context, data ExchangeEventData) error

	// AppendConceptEvent records a concept status transition.
	AppendConceptEvent(ctx context.Context, data ConceptEventData) error

	// AppendOracleRequest records an oracle API call.
	AppendOracleRequest(ctx context.Context, entry oracle.RequestLogEntry) error

	// CurrentSequence returns the last sequence number handed out.
	CurrentSequence(ctx context.Context) (int64, error)

	// QuerySessions lists recorded sessions, most recent first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionInfo, error)

	// SessionArchive rebuilds a session's exported transcript from its
	// exchange events.
	SessionArchive(ctx context.Context, sessionID string) (*transcript.Archive, error)

	// ConceptAccuracy returns the fraction of judged answers graded
	// correct for a concept, across all sessions, and the sample size.
	ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error)

	// LatestConceptStatuses folds concept events into the most recent
	// status per concept.
	LatestConceptStatuses(ctx context.Context) (map[string]string, error)

	// QueryOracleEvents lists oracle call events, most recent first.
	QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]*ent.OracleRequestEvent, error)

	// GetOracleEvent fetches one oracle call event by row ID, nil when
	// absent.
	GetOracleEvent(ctx context.Context, id int) (*ent.OracleRequestEvent, error)

	// OracleUsageByPurpose aggregates token usage per purpose.
	OracleUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// OracleUsageByModel aggregates token usage per model.
	OracleUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// SnapshotData captures concept statuses across topics, keyed topic ID
// then concept ID.
type SnapshotData struct {
	Version int                          `json:"version"`
	Topics  map[string]map[string]string `json:"topics"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
