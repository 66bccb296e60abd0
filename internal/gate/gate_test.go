package gate

import (
	"testing"
	"time"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/transcript"
)

func sealed(grade oracle.Grade, transfer bool, depth int) transcript.Exchange {
	now := time.Now()
	return transcript.Exchange{
		ConceptID:  "c",
		Question:   "q",
		Answer:     "a",
		Verdict:    &oracle.Verdict{Grade: grade, AppliesTransfer: transfer},
		Depth:      depth,
		AskedAt:    now,
		AnsweredAt: now,
	}
}

func TestDecideAdvance(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, false, 0),
		sealed(oracle.GradeCorrect, true, 0),
	}
	if got := Decide(exchanges); got != DecisionAdvance {
		t.Errorf("Decide() = %v, want advance", got)
	}
}

func TestDecideNoAdvanceWithoutTransfer(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, false, 0),
		sealed(oracle.GradeCorrect, false, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue when the final answer shows no transfer", got)
	}
}

func TestDecideNoAdvanceOnSingleCorrect(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, true, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue after one correct answer", got)
	}
}

func TestDecideTransferEarlierDoesNotCount(t *testing.T) {
	// Transfer shown two answers ago does not satisfy mastery now.
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, true, 0),
		sealed(oracle.GradeCorrect, false, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue when transfer was not on the final answer", got)
	}
}

func TestDecidePartialBreaksCorrectStreak(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, false, 0),
		sealed(oracle.GradePartial, false, 0),
		sealed(oracle.GradeCorrect, true, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue after a partial broke the streak", got)
	}
}

func TestDecideRemediate(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeIncorrect, false, 0),
		sealed(oracle.GradeIncorrect, false, 0),
	}
	if got := Decide(exchanges); got != DecisionRemediate {
		t.Errorf("Decide() = %v, want remediate after two misses at one depth", got)
	}
}

func TestDecideNoRemediateAcrossDepths(t *testing.T) {
	// A miss at the natural depth followed by a miss on the simpler
	// question is one miss per tier, not two at one tier.
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeIncorrect, false, 0),
		sealed(oracle.GradeIncorrect, false, 1),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue across depth change", got)
	}
}

func TestDecideRemediateAtDeeperTier(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeIncorrect, false, 0),
		sealed(oracle.GradeIncorrect, false, 1),
		sealed(oracle.GradeIncorrect, false, 1),
	}
	if got := Decide(exchanges); got != DecisionRemediate {
		t.Errorf("Decide() = %v, want remediate after two misses at depth 1", got)
	}
}

func TestDecidePartialBreaksIncorrectStreak(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeIncorrect, false, 0),
		sealed(oracle.GradePartial, false, 0),
		sealed(oracle.GradeIncorrect, false, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue after a partial broke the miss streak", got)
	}
}

func TestDecideMixedGrades(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeCorrect, false, 0),
		sealed(oracle.GradeIncorrect, false, 0),
	}
	if got := Decide(exchanges); got != DecisionContinue {
		t.Errorf("Decide() = %v, want continue on a single miss", got)
	}
}

func TestDecideEmpty(t *testing.T) {
	if got := Decide(nil); got != DecisionContinue {
		t.Errorf("Decide(nil) = %v, want continue", got)
	}
}

func TestConsecutiveCorrect(t *testing.T) {
	exchanges := []transcript.Exchange{
		sealed(oracle.GradeIncorrect, false, 0),
		sealed(oracle.GradeCorrect, false, 0),
		sealed(oracle.GradeCorrect, false, 0),
	}
	if got := ConsecutiveCorrect(exchanges); got != 2 {
		t.Errorf("ConsecutiveCorrect() = %d, want 2", got)
	}
	if got := ConsecutiveCorrect(nil); got != 0 {
		t.Errorf("ConsecutiveCorrect(nil) = %d, want 0", got)
	}
}

func TestDecisionString(t *testing.T) {
	cases := map[Decision]string{
		DecisionContinue:  "continue",
		DecisionRemediate: "remediate",
		DecisionAdvance:   "advance",
		Decision(99):      "unknown",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("Decision(%d).String() = %q, want %q", int(d), got, want)
		}
	}
}
