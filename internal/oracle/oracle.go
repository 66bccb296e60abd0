package oracle

import (
	"context"

	"github.com/socralabs/socra/internal/topic"
)

// Oracle is the tutoring capability the session controller drives.
// Ask produces the next Socratic question for a concept; Judge grades
// the learner's answer to the question most recently asked. Neither
// call mutates session state; the controller owns all of that.
type Oracle interface {
	Ask(ctx context.Context, input AskInput) (*Question, error)
	Judge(ctx context.Context, input JudgeInput) (*Verdict, error)
}

// Kind tags an oracle utterance. The tutoring contract requires
// questions everywhere except the closing turn of a completed session,
// where a statement is allowed.
type Kind string

const (
	KindQuestion  Kind = "question"
	KindStatement Kind = "statement"
)

// Question is one tutor utterance.
type Question struct {
	// Kind tags whether this utterance actually asks something.
	Kind Kind

	// Text is the utterance shown to the learner.
	Text string

	// Example is the concrete instance the question works through,
	// e.g. "factorial(3)". Empty when the question is abstract.
	Example string
}

// Grade classifies a learner answer.
type Grade string

const (
	GradeCorrect   Grade = "correct"
	GradePartial   Grade = "partial"
	GradeIncorrect Grade = "incorrect"
)

// Verdict is the oracle's judgment of one learner answer. The JSON
// tags are the transcript export encoding.
type Verdict struct {
	// Grade is the three-way classification.
	Grade Grade `json:"grade"`

	// AppliesTransfer reports whether the answer demonstrated the
	// concept on an example not previously discussed.
	AppliesTransfer bool `json:"applies_transfer"`

	// Probe is a short follow-up nudge for the learner, phrased as a
	// question. Shown as feedback; never contains the answer.
	Probe string `json:"probe,omitempty"`
}

// Turn is one completed question/answer pair, as the oracle sees the
// dialogue history. Grade is empty for the pair still awaiting
// judgment.
type Turn struct {
	Question string
	Answer   string
	Grade    Grade
}

// AskInput carries everything the oracle needs to pose the next
// question.
type AskInput struct {
	// Topic and Concept identify what is being probed.
	Topic   topic.Topic
	Concept topic.Concept

	// Depth is the simplification depth: 0 asks at the concept's
	// natural difficulty, each increment asks strictly simpler.
	Depth int

	// Simplify requests a strictly simpler sub-question than the last
	// one. Set on the first ask after entering remediation.
	Simplify bool

	// Transfer requests a question that applies the concept to a fresh
	// example, used to confirm mastery after a correct answer.
	Transfer bool

	// Conclude marks the closing turn of a completed session. Only
	// here may the oracle answer with a statement.
	Conclude bool

	// History is the recent dialogue for this concept, oldest first.
	History []Turn

	// Summary is a compacted description of older dialogue, when the
	// history outgrew the turn budget. Empty otherwise.
	Summary string
}

// JudgeInput carries the pending question and the learner's answer.
type JudgeInput struct {
	Topic   topic.Topic
	Concept topic.Concept

	// Question is the utterance the learner responded to.
	Question Question

	// Answer is the learner's response, verbatim.
	Answer string

	// Transfer reports whether the question was posed as a transfer
	// probe.
	Transfer bool

	// History is the recent dialogue for this concept, oldest first,
	// excluding the pending pair.
	History []Turn

	// Summary is a compacted description of older dialogue.
	Summary string
}
