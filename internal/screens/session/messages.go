package session

import (
	"time"

	"github.com/socralabs/socra/internal/tutor"
)

// sessionStartedMsg carries the result of starting the session.
type sessionStartedMsg struct {
	Session *tutor.Session
	Err     error
}

// turnDoneMsg carries the result of an ask or judge turn.
type turnDoneMsg struct {
	Outcome *tutor.TurnOutcome
	Err     error
}

// concludeDoneMsg carries the oracle's closing remark.
type concludeDoneMsg struct {
	Outcome *tutor.TurnOutcome
	Err     error
}

// feedbackDoneMsg signals the learner dismissed the verdict feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg signals the session should finalize and show the summary.
type sessionEndMsg struct{}

// timerTickMsg updates the elapsed-time display.
type timerTickMsg time.Time

// spinnerTickMsg advances the waiting spinner.
type spinnerTickMsg time.Time
