package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/socralabs/socra/internal/gate"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
)

// TurnKind tags what a turn did.
type TurnKind int

const (
	// TurnAsked opened a new exchange with a question.
	TurnAsked TurnKind = iota

	// TurnJudged sealed the open exchange with a verdict.
	TurnJudged

	// TurnConcluded produced the closing reflection.
	TurnConcluded
)

// String returns the turn kind name for event logging.
func (k TurnKind) String() string {
	switch k {
	case TurnAsked:
		return "asked"
	case TurnJudged:
		return "judged"
	case TurnConcluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// TurnOutcome reports what one turn did. Exchange is a snapshot of the
// exchange the turn touched; Decision and Transition are set on judged
// turns, Confirmation on the concluding turn.
type TurnOutcome struct {
	Kind      TurnKind
	ConceptID string
	Exchange  transcript.Exchange

	// Decision is the gate's ruling for a judged turn.
	Decision gate.Decision

	// Transition is the probed concept's status change, nil when the
	// status held.
	Transition *topic.Transition

	// NextConceptID is set when the probe moved to a new concept.
	NextConceptID string

	// Confirmation is the oracle's closing remark on a concluding
	// turn. It is shown once and never transcribed.
	Confirmation string

	// SessionComplete reports that every reachable concept is now
	// terminal.
	SessionComplete bool
}

// Controller drives tutoring sessions against an oracle. A controller
// holds no per-session state; any number of independent sessions may
// share one.
type Controller struct {
	oracle    oracle.Oracle
	recorder  Recorder
	compactor *oracle.Compactor
}

// NewController wires a controller. recorder and compactor may be nil
// to disable persistence and dialogue compaction.
func NewController(o oracle.Oracle, rec Recorder, compactor *oracle.Compactor) *Controller {
	return &Controller{oracle: o, recorder: rec, compactor: compactor}
}

// Start validates the topic's concept set, builds a fresh session, and
// moves the first eligible concept under probe. Validation failures
// come back as *InvalidTopicError.
func (c *Controller) Start(ctx context.Context, t topic.Topic, concepts []topic.Concept) (*Session, error) {
	g, err := topic.NewGraph(t, concepts)
	if err != nil {
		return nil, &InvalidTopicError{TopicID: t.ID, Err: err}
	}

	s := newSession(uuid.NewString(), t, g, transcript.New(), time.Now())

	first, ok, err := g.NextEligible()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidTopicError{TopicID: t.ID, Err: errors.New("no concept is eligible to start")}
	}
	tr := s.transition(first, topic.StatusProbing, "prerequisites-met")
	s.Current = first.ID

	if c.recorder != nil {
		_ = c.recorder.AppendSessionStart(ctx, s)
		_ = c.recorder.AppendTransition(ctx, s, *tr)
	}
	return s, nil
}

// NextTurn advances the dialogue by exactly one exchange step. Empty
// learnerInput asks the oracle for the next question and opens an
// exchange; anything else answers the open question, seals it with
// the oracle's verdict, and applies the gate's decision. An oracle
// failure leaves the session unchanged, so the same turn can be
// retried.
func (c *Controller) NextTurn(ctx context.Context, s *Session, learnerInput string) (*TurnOutcome, error) {
	if s.ended {
		return nil, ErrSessionEnded
	}
	if learnerInput == "" {
		return c.askTurn(ctx, s)
	}
	return c.judgeTurn(ctx, s, learnerInput)
}

func (c *Controller) askTurn(ctx context.Context, s *Session) (*TurnOutcome, error) {
	if s.completed {
		return nil, ErrSessionComplete
	}
	if s.Transcript.Open() != nil {
		return nil, ErrAwaitingAnswer
	}

	concept, err := s.Graph.Get(s.Current)
	if err != nil {
		return nil, fmt.Errorf("current concept: %w", err)
	}

	sealed := s.Transcript.SealedForConcept(concept.ID)
	input := oracle.AskInput{
		Topic:    s.Topic,
		Concept:  concept,
		Depth:    s.depth[concept.ID],
		Simplify: s.simplifyNext,
		Transfer: s.Graph.Status(concept.ID) == topic.StatusProbing &&
			gate.ConsecutiveCorrect(sealed) >= gate.AdvanceStreak-1,
		History: s.Transcript.Turns(concept.ID),
		Summary: s.summaryFor(concept.ID),
	}

	q, err := c.oracle.Ask(ctx, input)
	if err != nil {
		return nil, oracleErr("ask", err)
	}
	if q.Kind != oracle.KindQuestion {
		return nil, &ProtocolViolationError{ConceptID: concept.ID, Text: q.Text}
	}

	ex, err := s.Transcript.Append(transcript.Exchange{
		ConceptID:  concept.ID,
		Question:   *q,
		Depth:      input.Depth,
		Simplified: input.Simplify,
		Transfer:   input.Transfer,
		AskedAt:    time.Now(),
	})
	if err != nil {
		return nil, err
	}
	s.simplifyNext = false

	if c.recorder != nil {
		_ = c.recorder.AppendAsk(ctx, s, *ex)
	}
	return &TurnOutcome{Kind: TurnAsked, ConceptID: concept.ID, Exchange: *ex}, nil
}

func (c *Controller) judgeTurn(ctx context.Context, s *Session, answer string) (*TurnOutcome, error) {
	open := s.Transcript.Open()
	if open == nil {
		return nil, ErrNoQuestionPending
	}

	concept, err := s.Graph.Get(open.ConceptID)
	if err != nil {
		return nil, fmt.Errorf("open exchange concept: %w", err)
	}

	input := oracle.JudgeInput{
		Topic:    s.Topic,
		Concept:  concept,
		Question: open.Question,
		Answer:   answer,
		Transfer: open.Transfer,
		History:  s.Transcript.Turns(concept.ID),
		Summary:  s.summaryFor(concept.ID),
	}

	v, err := c.oracle.Judge(ctx, input)
	if err != nil {
		return nil, oracleErr("judge", err)
	}

	ex, err := s.Transcript.Seal(answer, *v, time.Now())
	if err != nil {
		return nil, err
	}
	s.lastProbed = concept.ID

	decision := gate.Decide(s.Transcript.SealedForConcept(concept.ID))
	transition := c.applyDecision(s, concept, *v, decision)

	outcome := &TurnOutcome{
		Kind:       TurnJudged,
		ConceptID:  concept.ID,
		Exchange:   *ex,
		Decision:   decision,
		Transition: transition,
	}

	if c.recorder != nil {
		_ = c.recorder.AppendJudge(ctx, s, *ex, decision)
		if transition != nil {
			_ = c.recorder.AppendTransition(ctx, s, *transition)
		}
	}

	if s.Graph.Status(concept.ID).Terminal() {
		nextID, nextTr, err := c.advanceCurrent(s)
		if err != nil {
			return nil, err
		}
		outcome.NextConceptID = nextID
		outcome.SessionComplete = s.completed
		if nextTr != nil && c.recorder != nil {
			_ = c.recorder.AppendTransition(ctx, s, *nextTr)
		}
	}

	c.maybeCompact(s, concept.ID)
	return outcome, nil
}

// applyDecision moves the probed concept per the gate's decision and
// returns the transition, nil when the status held.
func (c *Controller) applyDecision(s *Session, concept topic.Concept, v oracle.Verdict, decision gate.Decision) *topic.Transition {
	status := s.Graph.Status(concept.ID)
	switch decision {
	case gate.DecisionAdvance:
		return s.transition(concept, topic.StatusMastered, "transfer-shown")

	case gate.DecisionRemediate:
		s.remCycles[concept.ID]++
		if s.remCycles[concept.ID] >= gate.MaxRemediationCycles {
			return s.transition(concept, topic.StatusStalled, "remediation-exhausted")
		}
		s.depth[concept.ID]++
		s.simplifyNext = true
		if status != topic.StatusRemediating {
			return s.transition(concept, topic.StatusRemediating, "repeated-miss")
		}
		return nil

	case gate.DecisionContinue:
		if status == topic.StatusRemediating && v.Grade == oracle.GradeCorrect {
			s.depth[concept.ID] = 0
			return s.transition(concept, topic.StatusProbing, "self-corrected")
		}
		return nil
	}
	return nil
}

// advanceCurrent picks the next concept after the current one went
// terminal. When nothing remains eligible the session completes;
// unvisited concepts behind a stalled prerequisite stay unvisited.
func (c *Controller) advanceCurrent(s *Session) (string, *topic.Transition, error) {
	next, ok, err := s.Graph.NextEligible()
	if err != nil {
		return "", nil, err
	}
	if !ok {
		s.Current = ""
		s.completed = true
		return "", nil, nil
	}
	tr := s.transition(next, topic.StatusProbing, "prerequisites-met")
	s.Current = next.ID
	return next.ID, tr, nil
}

// Conclude requests the closing reflection once every reachable
// concept is terminal. This is the one turn where the oracle may
// answer with a statement; the remark is returned, not transcribed.
func (c *Controller) Conclude(ctx context.Context, s *Session) (*TurnOutcome, error) {
	if s.ended {
		return nil, ErrSessionEnded
	}
	if !s.completed {
		return nil, ErrSessionActive
	}

	var concept topic.Concept
	if s.lastProbed != "" {
		concept, _ = s.Graph.Get(s.lastProbed)
	}

	input := oracle.AskInput{
		Topic:    s.Topic,
		Concept:  concept,
		Conclude: true,
		History:  s.Transcript.Turns(concept.ID),
		Summary:  s.summaryFor(concept.ID),
	}
	q, err := c.oracle.Ask(ctx, input)
	if err != nil {
		return nil, oracleErr("conclude", err)
	}

	return &TurnOutcome{
		Kind:            TurnConcluded,
		ConceptID:       concept.ID,
		Confirmation:    q.Text,
		SessionComplete: true,
	}, nil
}

// End finalizes the session and returns its summary. Callable at any
// point, idempotent, never fails. Turn methods on an ended session
// return ErrSessionEnded.
func (c *Controller) End(s *Session) *SessionSummary {
	if !s.ended {
		s.ended = true
		s.EndedAt = time.Now()
		if c.recorder != nil {
			_ = c.recorder.AppendSessionEnd(context.Background(), s, BuildSummary(s))
		}
	}
	return BuildSummary(s)
}

// maybeCompact kicks off async dialogue compaction when a concept's
// dialogue reaches the trigger length. The summary lands via callback
// and prompts pick it up on a later turn.
func (c *Controller) maybeCompact(s *Session, conceptID string) {
	if c.compactor == nil {
		return
	}
	turns := s.Transcript.Turns(conceptID)
	trigger := c.compactor.TriggerTurns()
	if trigger <= 0 || len(turns) < trigger {
		return
	}

	s.summaryMu.Lock()
	due := len(turns) >= s.compactedAt[conceptID]+trigger
	if due {
		s.compactedAt[conceptID] = len(turns)
	}
	s.summaryMu.Unlock()
	if !due {
		return
	}

	c.compactor.CompactDialogue(context.Background(), conceptID, turns, func(id, summary string) {
		s.setSummary(id, summary)
	})
}

// oracleErr classifies an oracle failure. Deadline expiry becomes the
// retryable timeout type; everything else passes through wrapped.
func oracleErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &OracleTimeoutError{Op: op, Err: err}
	}
	return fmt.Errorf("oracle %s: %w", op, err)
}
