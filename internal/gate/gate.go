// Package gate holds the validation rules that decide how a session
// proceeds after each judged answer. Decisions are pure functions of
// the sealed dialogue; the gate never talks to the oracle and never
// mutates the concept graph.
package gate

import (
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/transcript"
)

// Decision is the gate's verdict on the dialogue so far for one
// concept.
type Decision int

const (
	// DecisionContinue keeps probing the current concept.
	DecisionContinue Decision = iota

	// DecisionRemediate drops to a strictly simpler sub-question.
	DecisionRemediate

	// DecisionAdvance marks the concept mastered.
	DecisionAdvance
)

// String returns the decision name for display and event logging.
func (d Decision) String() string {
	switch d {
	case DecisionContinue:
		return "continue"
	case DecisionRemediate:
		return "remediate"
	case DecisionAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

const (
	// AdvanceStreak is how many consecutive correct answers mastery
	// requires. The final answer must additionally demonstrate
	// transfer.
	AdvanceStreak = 2

	// RemediateThreshold is how many consecutive incorrect answers at
	// one simplification depth trigger remediation.
	RemediateThreshold = 2

	// MaxRemediationCycles caps remediation demands for one concept.
	// The demand that reaches the cap stalls the concept instead of
	// simplifying further.
	MaxRemediationCycles = 3
)

// Decide evaluates one concept's sealed exchanges, oldest first, and
// returns what the session should do next. Callers pass the dialogue
// for a single concept; the newest exchange is the one just judged.
//
// Advance requires AdvanceStreak consecutive correct answers with the
// newest demonstrating transfer. Remediate requires
// RemediateThreshold consecutive incorrect answers at the same depth.
// A partial grade is neither correct nor incorrect: it breaks both
// streaks and the dialogue continues.
func Decide(exchanges []transcript.Exchange) Decision {
	n := len(exchanges)
	if n == 0 {
		return DecisionContinue
	}
	last := exchanges[n-1]
	if last.Verdict == nil {
		return DecisionContinue
	}

	switch last.Verdict.Grade {
	case oracle.GradeCorrect:
		if last.Verdict.AppliesTransfer && ConsecutiveCorrect(exchanges) >= AdvanceStreak {
			return DecisionAdvance
		}
	case oracle.GradeIncorrect:
		if consecutiveIncorrectAtDepth(exchanges, last.Depth) >= RemediateThreshold {
			return DecisionRemediate
		}
	}
	return DecisionContinue
}

// ConsecutiveCorrect counts the run of correct verdicts ending at the
// newest exchange.
func ConsecutiveCorrect(exchanges []transcript.Exchange) int {
	count := 0
	for i := len(exchanges) - 1; i >= 0; i-- {
		v := exchanges[i].Verdict
		if v == nil || v.Grade != oracle.GradeCorrect {
			break
		}
		count++
	}
	return count
}

// consecutiveIncorrectAtDepth counts the run of incorrect verdicts at
// the given depth ending at the newest exchange.
func consecutiveIncorrectAtDepth(exchanges []transcript.Exchange, depth int) int {
	count := 0
	for i := len(exchanges) - 1; i >= 0; i-- {
		e := exchanges[i]
		if e.Verdict == nil || e.Verdict.Grade != oracle.GradeIncorrect || e.Depth != depth {
			break
		}
		count++
	}
	return count
}
