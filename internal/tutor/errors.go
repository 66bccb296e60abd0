package tutor

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionEnded is returned by turn methods after End.
	ErrSessionEnded = errors.New("session has ended")

	// ErrSessionComplete is returned when a turn is requested but
	// every concept is already mastered or stalled.
	ErrSessionComplete = errors.New("every concept is mastered or stalled")

	// ErrSessionActive is returned by Conclude while concepts remain
	// to probe.
	ErrSessionActive = errors.New("concepts remain to probe")

	// ErrAwaitingAnswer is returned when a question is requested while
	// the previous one has not been answered.
	ErrAwaitingAnswer = errors.New("a question is awaiting its answer")

	// ErrNoQuestionPending is returned when an answer arrives with no
	// question open.
	ErrNoQuestionPending = errors.New("no question is awaiting an answer")
)

// InvalidTopicError is fatal to Start: the topic's concept set failed
// validation (empty, duplicate IDs, dangling or cyclic prerequisites).
type InvalidTopicError struct {
	TopicID string
	Err     error
}

func (e *InvalidTopicError) Error() string {
	return fmt.Sprintf("invalid topic %q: %v", e.TopicID, e.Err)
}

func (e *InvalidTopicError) Unwrap() error {
	return e.Err
}

// ProtocolViolationError is fatal: the oracle broke the tutoring
// contract by producing a statement while a concept was still under
// probe. The session is left exactly as it was before the turn.
type ProtocolViolationError struct {
	ConceptID string
	Text      string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("oracle answered with a statement while probing %q: %q", e.ConceptID, e.Text)
}

// OracleTimeoutError wraps a deadline expiry on an oracle call. The
// turn made no change to the session, so the same call can simply be
// retried.
type OracleTimeoutError struct {
	Op  string
	Err error
}

func (e *OracleTimeoutError) Error() string {
	return fmt.Sprintf("oracle %s timed out: %v", e.Op, e.Err)
}

func (e *OracleTimeoutError) Unwrap() error {
	return e.Err
}
