package tutor

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/socralabs/socra/internal/gate"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
)

func newTestTutor() (*Controller, *oracle.ScriptedOracle) {
	o := oracle.NewScriptedOracle()
	return NewController(o, nil, nil), o
}

func singleTopic() (topic.Topic, []topic.Concept) {
	return topic.Topic{ID: "t", Name: "Test Topic"},
		[]topic.Concept{{ID: "c1", Name: "Concept One"}}
}

// recursionTopic declares the dependent concepts before their shared
// prerequisite, so selection order cannot hide behind declaration
// order.
func recursionTopic() (topic.Topic, []topic.Concept) {
	t := topic.Topic{ID: "recursion", Name: "Recursion"}
	concepts := []topic.Concept{
		{ID: "self_reference", Name: "Self-reference", Prerequisites: []string{"base_case"}},
		{ID: "stack_growth", Name: "Stack growth", Prerequisites: []string{"base_case"}},
		{ID: "base_case", Name: "Base case"},
	}
	return t, concepts
}

func startSession(t *testing.T, c *Controller, tp topic.Topic, concepts []topic.Concept) *Session {
	t.Helper()
	s, err := c.Start(context.Background(), tp, concepts)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return s
}

func ask(t *testing.T, c *Controller, s *Session, o *oracle.ScriptedOracle, text string) *TurnOutcome {
	t.Helper()
	o.PushQuestion(text)
	out, err := c.NextTurn(context.Background(), s, "")
	if err != nil {
		t.Fatalf("ask turn: %v", err)
	}
	return out
}

func answer(t *testing.T, c *Controller, s *Session, o *oracle.ScriptedOracle, text string, grade oracle.Grade, transfer bool) *TurnOutcome {
	t.Helper()
	o.PushVerdict(grade, transfer)
	out, err := c.NextTurn(context.Background(), s, text)
	if err != nil {
		t.Fatalf("judge turn: %v", err)
	}
	return out
}

// masterCurrent runs the shortest mastery path for the current
// concept: a correct answer, then a correct transfer answer.
func masterCurrent(t *testing.T, c *Controller, s *Session, o *oracle.ScriptedOracle) *TurnOutcome {
	t.Helper()
	ask(t, c, s, o, "warmup?")
	answer(t, c, s, o, "right", oracle.GradeCorrect, false)
	ask(t, c, s, o, "transfer?")
	return answer(t, c, s, o, "also right", oracle.GradeCorrect, true)
}

func TestStartSelectsBaseCaseFirst(t *testing.T) {
	c, _ := newTestTutor()
	tp, concepts := recursionTopic()

	s := startSession(t, c, tp, concepts)

	if s.Current != "base_case" {
		t.Fatalf("Start selected %q, want base_case", s.Current)
	}
	if got := s.Graph.Status("base_case"); got != topic.StatusProbing {
		t.Errorf("base_case status = %v, want probing", got)
	}
	for _, id := range []string{"self_reference", "stack_growth"} {
		if got := s.Graph.Status(id); got != topic.StatusUnvisited {
			t.Errorf("%s status = %v, want unvisited", id, got)
		}
	}
}

func TestStartRejectsBadConceptSets(t *testing.T) {
	c, _ := newTestTutor()
	tp := topic.Topic{ID: "bad", Name: "Bad"}

	cases := map[string][]topic.Concept{
		"empty": nil,
		"duplicate ids": {
			{ID: "a", Name: "A"},
			{ID: "a", Name: "A again"},
		},
		"dangling prerequisite": {
			{ID: "a", Name: "A", Prerequisites: []string{"ghost"}},
		},
		"cycle": {
			{ID: "a", Name: "A", Prerequisites: []string{"b"}},
			{ID: "b", Name: "B", Prerequisites: []string{"a"}},
		},
	}
	for name, concepts := range cases {
		_, err := c.Start(context.Background(), tp, concepts)
		if err == nil {
			t.Errorf("%s: Start() succeeded, want error", name)
			continue
		}
		var ite *InvalidTopicError
		if !errors.As(err, &ite) {
			t.Errorf("%s: error %v is not *InvalidTopicError", name, err)
		} else if ite.TopicID != "bad" {
			t.Errorf("%s: error topic = %q, want bad", name, ite.TopicID)
		}
	}
}

func TestMasteryPath(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	out := ask(t, c, s, o, "what does the function do with 0?")
	if out.Kind != TurnAsked {
		t.Fatalf("outcome kind = %v, want asked", out.Kind)
	}
	if in, _ := o.LastAsk(); in.Transfer {
		t.Error("first ask requested transfer before any correct answer")
	}

	out = answer(t, c, s, o, "it stops", oracle.GradeCorrect, false)
	if out.Decision != gate.DecisionContinue {
		t.Fatalf("decision after one correct = %v, want continue", out.Decision)
	}
	if got := s.Graph.Status("c1"); got != topic.StatusProbing {
		t.Fatalf("status after one correct = %v, want probing", got)
	}

	ask(t, c, s, o, "and for a list instead of a number?")
	if in, _ := o.LastAsk(); !in.Transfer {
		t.Error("ask after a correct answer did not request transfer")
	}

	out = answer(t, c, s, o, "same idea, empty list stops it", oracle.GradeCorrect, true)
	if out.Decision != gate.DecisionAdvance {
		t.Fatalf("decision = %v, want advance", out.Decision)
	}
	if out.Transition == nil || out.Transition.To != topic.StatusMastered {
		t.Fatalf("transition = %+v, want to mastered", out.Transition)
	}
	if !out.SessionComplete {
		t.Error("mastering the only concept did not complete the session")
	}

	sum := c.End(s)
	if !reflect.DeepEqual(sum.Mastered, []string{"c1"}) {
		t.Errorf("summary mastered = %v, want [c1]", sum.Mastered)
	}
	if len(sum.Unmastered) != 0 {
		t.Errorf("summary unmastered = %v, want empty", sum.Unmastered)
	}
}

func TestSingleCorrectNeverMasters(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q?")
	answer(t, c, s, o, "a", oracle.GradeCorrect, true)

	if got := s.Graph.Status("c1"); got == topic.StatusMastered {
		t.Fatal("concept mastered after a single correct answer")
	}
	sum := c.End(s)
	if len(sum.Mastered) != 0 {
		t.Errorf("summary mastered = %v, want empty", sum.Mastered)
	}
}

func TestTwoMissesTriggerRemediation(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q1?")
	out := answer(t, c, s, o, "wrong", oracle.GradeIncorrect, false)
	if out.Decision != gate.DecisionContinue {
		t.Fatalf("decision after first miss = %v, want continue", out.Decision)
	}

	ask(t, c, s, o, "q2?")
	out = answer(t, c, s, o, "wrong again", oracle.GradeIncorrect, false)
	if out.Decision != gate.DecisionRemediate {
		t.Fatalf("decision after second miss = %v, want remediate", out.Decision)
	}
	if out.Transition == nil || out.Transition.To != topic.StatusRemediating {
		t.Fatalf("transition = %+v, want to remediating", out.Transition)
	}
	if got := s.Depth("c1"); got != 1 {
		t.Errorf("depth = %d, want 1", got)
	}

	out = ask(t, c, s, o, "smaller: what happens with just one element?")
	in, _ := o.LastAsk()
	if !in.Simplify {
		t.Error("ask after remediation did not request simplification")
	}
	if in.Depth != 1 {
		t.Errorf("ask depth = %d, want 1", in.Depth)
	}
	if !out.Exchange.Simplified {
		t.Error("exchange did not record the simplification")
	}

	// The simplify request is consumed by that one ask.
	answer(t, c, s, o, "hmm", oracle.GradePartial, false)
	ask(t, c, s, o, "again?")
	if in, _ := o.LastAsk(); in.Simplify {
		t.Error("simplify flag leaked into a later ask")
	}
}

func TestSelfCorrectionReturnsToProbing(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q1?")
	answer(t, c, s, o, "no", oracle.GradeIncorrect, false)
	ask(t, c, s, o, "q2?")
	answer(t, c, s, o, "no", oracle.GradeIncorrect, false)

	ask(t, c, s, o, "simpler?")
	out := answer(t, c, s, o, "got it now", oracle.GradeCorrect, false)

	if out.Transition == nil || out.Transition.To != topic.StatusProbing {
		t.Fatalf("transition = %+v, want back to probing", out.Transition)
	}
	if out.Transition.Trigger != "self-corrected" {
		t.Errorf("trigger = %q, want self-corrected", out.Transition.Trigger)
	}
	if got := s.Depth("c1"); got != 0 {
		t.Errorf("depth after self-correction = %d, want 0", got)
	}
}

func TestRemediationExhaustionStalls(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	// Two misses per tier; the third remediation demand stalls.
	var out *TurnOutcome
	for i := 0; i < 6; i++ {
		ask(t, c, s, o, "q?")
		out = answer(t, c, s, o, "no", oracle.GradeIncorrect, false)
	}

	if out.Transition == nil || out.Transition.To != topic.StatusStalled {
		t.Fatalf("transition = %+v, want to stalled", out.Transition)
	}
	if out.Transition.Trigger != "remediation-exhausted" {
		t.Errorf("trigger = %q, want remediation-exhausted", out.Transition.Trigger)
	}
	if !out.SessionComplete {
		t.Error("stalling the only concept did not complete the session")
	}

	sum := c.End(s)
	if !reflect.DeepEqual(sum.Stalled, []string{"c1"}) {
		t.Errorf("summary stalled = %v, want [c1]", sum.Stalled)
	}
	if !reflect.DeepEqual(sum.Unmastered, []string{"c1"}) {
		t.Errorf("summary unmastered = %v, want [c1]", sum.Unmastered)
	}
}

func TestStallBlocksDependentsWithoutError(t *testing.T) {
	c, o := newTestTutor()
	tp := topic.Topic{ID: "t", Name: "T"}
	concepts := []topic.Concept{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
	}
	s := startSession(t, c, tp, concepts)

	var out *TurnOutcome
	for i := 0; i < 6; i++ {
		ask(t, c, s, o, "q?")
		out = answer(t, c, s, o, "no", oracle.GradeIncorrect, false)
	}

	if !out.SessionComplete {
		t.Fatal("session did not complete when the only path stalled")
	}
	if s.Current != "" {
		t.Errorf("current = %q, want empty", s.Current)
	}
	if got := s.Graph.Status("b"); got != topic.StatusUnvisited {
		t.Errorf("blocked dependent status = %v, want unvisited", got)
	}

	sum := c.End(s)
	if !reflect.DeepEqual(sum.Unmastered, []string{"a", "b"}) {
		t.Errorf("summary unmastered = %v, want [a b]", sum.Unmastered)
	}
	if !reflect.DeepEqual(sum.Stalled, []string{"a"}) {
		t.Errorf("summary stalled = %v, want [a]", sum.Stalled)
	}
}

func TestPrerequisiteOrderAcrossConcepts(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := recursionTopic()
	s := startSession(t, c, tp, concepts)

	out := masterCurrent(t, c, s, o)
	if out.Transition == nil || out.Transition.ConceptID != "base_case" {
		t.Fatalf("first mastered = %+v, want base_case", out.Transition)
	}
	// Both dependents unlock together; declaration order breaks the tie.
	if out.NextConceptID != "self_reference" {
		t.Fatalf("next concept = %q, want self_reference", out.NextConceptID)
	}

	out = masterCurrent(t, c, s, o)
	if out.NextConceptID != "stack_growth" {
		t.Fatalf("next concept = %q, want stack_growth", out.NextConceptID)
	}

	out = masterCurrent(t, c, s, o)
	if !out.SessionComplete {
		t.Fatal("session incomplete after mastering every concept")
	}

	sum := c.End(s)
	want := []string{"base_case", "self_reference", "stack_growth"}
	if !reflect.DeepEqual(sum.Mastered, want) {
		t.Errorf("summary mastered = %v, want %v", sum.Mastered, want)
	}
}

func TestOracleTimeoutLeavesSessionUntouched(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	o.PushAsk(oracle.ScriptedAsk{Err: context.DeadlineExceeded})
	_, err := c.NextTurn(context.Background(), s, "")
	var ote *OracleTimeoutError
	if !errors.As(err, &ote) {
		t.Fatalf("error %v is not *OracleTimeoutError", err)
	}
	if s.Transcript.Len() != 0 {
		t.Fatal("failed ask left an exchange behind")
	}

	// The same turn succeeds on retry.
	ask(t, c, s, o, "q?")

	o.PushJudge(oracle.ScriptedVerdict{Err: context.DeadlineExceeded})
	_, err = c.NextTurn(context.Background(), s, "my answer")
	if !errors.As(err, &ote) {
		t.Fatalf("error %v is not *OracleTimeoutError", err)
	}
	open := s.Transcript.Open()
	if open == nil {
		t.Fatal("failed judge sealed the exchange")
	}
	if open.Answer != "" || open.Verdict != nil {
		t.Fatal("failed judge half-wrote the open exchange")
	}
	if got := s.Graph.Status("c1"); got != topic.StatusProbing {
		t.Errorf("status after failed judge = %v, want probing", got)
	}

	out := answer(t, c, s, o, "my answer", oracle.GradeCorrect, false)
	if out.Exchange.Verdict == nil {
		t.Fatal("retried judge did not seal the exchange")
	}
}

func TestStatementOutsideConcludeIsViolation(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	o.PushAsk(oracle.ScriptedAsk{Question: oracle.Question{
		Kind: oracle.KindStatement,
		Text: "the base case is what stops the recursion",
	}})
	_, err := c.NextTurn(context.Background(), s, "")
	var pve *ProtocolViolationError
	if !errors.As(err, &pve) {
		t.Fatalf("error %v is not *ProtocolViolationError", err)
	}
	if pve.ConceptID != "c1" {
		t.Errorf("violation concept = %q, want c1", pve.ConceptID)
	}
	if s.Transcript.Len() != 0 {
		t.Error("the statement was transcribed")
	}
}

func TestEndIsIdempotent(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q?")
	answer(t, c, s, o, "a", oracle.GradeCorrect, false)

	first := c.End(s)
	endedAt := s.EndedAt
	time.Sleep(time.Millisecond)
	second := c.End(s)

	if !s.Ended() {
		t.Fatal("session not marked ended")
	}
	if !s.EndedAt.Equal(endedAt) {
		t.Error("second End moved the end time")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ across End calls:\n%+v\n%+v", first, second)
	}

	if _, err := c.NextTurn(context.Background(), s, ""); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("NextTurn after End = %v, want ErrSessionEnded", err)
	}
}

func TestTurnOrdering(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	if _, err := c.NextTurn(context.Background(), s, "premature"); !errors.Is(err, ErrNoQuestionPending) {
		t.Errorf("answer before question = %v, want ErrNoQuestionPending", err)
	}

	ask(t, c, s, o, "q?")
	if _, err := c.NextTurn(context.Background(), s, ""); !errors.Is(err, ErrAwaitingAnswer) {
		t.Errorf("second ask = %v, want ErrAwaitingAnswer", err)
	}
}

func TestNextTurnAfterCompletion(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)
	masterCurrent(t, c, s, o)

	if _, err := c.NextTurn(context.Background(), s, ""); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("ask after completion = %v, want ErrSessionComplete", err)
	}
}

func TestNoTransferRequestAfterMiss(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q1?")
	answer(t, c, s, o, "right", oracle.GradeCorrect, false)
	ask(t, c, s, o, "q2?")
	answer(t, c, s, o, "wrong", oracle.GradeIncorrect, false)

	ask(t, c, s, o, "q3?")
	if in, _ := o.LastAsk(); in.Transfer {
		t.Error("transfer requested right after a miss")
	}
}

func TestConclude(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	if _, err := c.Conclude(context.Background(), s); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("Conclude mid-session = %v, want ErrSessionActive", err)
	}

	masterCurrent(t, c, s, o)

	o.PushAsk(oracle.ScriptedAsk{Question: oracle.Question{
		Kind: oracle.KindStatement,
		Text: "you worked from a concrete stop condition to the general rule",
	}})
	out, err := c.Conclude(context.Background(), s)
	if err != nil {
		t.Fatalf("Conclude() error: %v", err)
	}
	if out.Kind != TurnConcluded {
		t.Errorf("outcome kind = %v, want concluded", out.Kind)
	}
	if out.Confirmation == "" {
		t.Error("conclude returned no remark")
	}
	if in, _ := o.LastAsk(); !in.Conclude {
		t.Error("conclude ask did not set the Conclude flag")
	}

	c.End(s)
	if _, err := c.Conclude(context.Background(), s); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Conclude after End = %v, want ErrSessionEnded", err)
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := recursionTopic()
	s := startSession(t, c, tp, concepts)

	// Master the root, drive the next concept into remediation, and
	// leave a simplified question hanging.
	masterCurrent(t, c, s, o)
	ask(t, c, s, o, "q1?")
	answer(t, c, s, o, "no", oracle.GradeIncorrect, false)
	ask(t, c, s, o, "q2?")
	answer(t, c, s, o, "no", oracle.GradeIncorrect, false)
	ask(t, c, s, o, "simpler?")

	restored, err := c.Restore(tp, concepts, ExportArchive(s))
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	if !reflect.DeepEqual(restored.Graph.Statuses(), s.Graph.Statuses()) {
		t.Errorf("statuses differ:\n got %v\nwant %v", restored.Graph.Statuses(), s.Graph.Statuses())
	}
	if restored.Current != s.Current {
		t.Errorf("current = %q, want %q", restored.Current, s.Current)
	}
	if restored.ID != s.ID {
		t.Errorf("session id = %q, want %q", restored.ID, s.ID)
	}
	if restored.Depth("self_reference") != s.Depth("self_reference") {
		t.Errorf("depth = %d, want %d", restored.Depth("self_reference"), s.Depth("self_reference"))
	}
	if restored.Transcript.Len() != s.Transcript.Len() {
		t.Errorf("transcript length = %d, want %d", restored.Transcript.Len(), s.Transcript.Len())
	}
	open := restored.Transcript.Open()
	if open == nil || open.Question.Text != "simpler?" {
		t.Fatalf("open exchange not restored: %+v", open)
	}

	// The restored session resumes live turns.
	out := answer(t, c, restored, o, "got it", oracle.GradeCorrect, false)
	if out.Transition == nil || out.Transition.To != topic.StatusProbing {
		t.Fatalf("resumed turn transition = %+v, want back to probing", out.Transition)
	}
}

func TestRestoreEndedArchive(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)
	masterCurrent(t, c, s, o)
	c.End(s)

	restored, err := c.Restore(tp, concepts, ExportArchive(s))
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if !restored.Ended() {
		t.Fatal("restored session not marked ended")
	}
	if _, err := c.NextTurn(context.Background(), restored, ""); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("NextTurn on restored ended session = %v, want ErrSessionEnded", err)
	}
}

func TestRestoreRejectsOutOfOrderRecords(t *testing.T) {
	c, o := newTestTutor()
	tp, concepts := recursionTopic()
	s := startSession(t, c, tp, concepts)
	masterCurrent(t, c, s, o)

	a := ExportArchive(s)
	for i := range a.Records {
		a.Records[i].ConceptID = "stack_growth"
	}
	if _, err := c.Restore(tp, concepts, a); err == nil {
		t.Fatal("Restore accepted records probing an ineligible concept")
	}
}

type captureRecorder struct {
	starts, asks, judges, ends int
	triggers                   []string
}

func (r *captureRecorder) AppendSessionStart(context.Context, *Session) error {
	r.starts++
	return nil
}

func (r *captureRecorder) AppendAsk(context.Context, *Session, transcript.Exchange) error {
	r.asks++
	return nil
}

func (r *captureRecorder) AppendJudge(context.Context, *Session, transcript.Exchange, gate.Decision) error {
	r.judges++
	return nil
}

func (r *captureRecorder) AppendTransition(_ context.Context, _ *Session, tr topic.Transition) error {
	r.triggers = append(r.triggers, tr.Trigger)
	return nil
}

func (r *captureRecorder) AppendSessionEnd(context.Context, *Session, *SessionSummary) error {
	r.ends++
	return nil
}

func TestRecorderReceivesEvents(t *testing.T) {
	rec := &captureRecorder{}
	o := oracle.NewScriptedOracle()
	c := NewController(o, rec, nil)
	tp, concepts := singleTopic()

	s := startSession(t, c, tp, concepts)
	masterCurrent(t, c, s, o)
	c.End(s)
	c.End(s)

	if rec.starts != 1 {
		t.Errorf("session-start events = %d, want 1", rec.starts)
	}
	if rec.asks != 2 || rec.judges != 2 {
		t.Errorf("ask/judge events = %d/%d, want 2/2", rec.asks, rec.judges)
	}
	if rec.ends != 1 {
		t.Errorf("session-end events = %d, want 1 (End is idempotent)", rec.ends)
	}
	want := []string{"prerequisites-met", "transfer-shown"}
	if !reflect.DeepEqual(rec.triggers, want) {
		t.Errorf("transition triggers = %v, want %v", rec.triggers, want)
	}
}

func TestDialogueCompaction(t *testing.T) {
	mock := oracle.NewMockProvider(oracle.MockResponse{
		Content: []byte(`{"summary":"the learner keeps conflating the stop condition with returning zero"}`),
	})
	compactor := oracle.NewCompactor(mock, oracle.CompactorConfig{
		MaxTokens:    300,
		TriggerTurns: 2,
	})

	o := oracle.NewScriptedOracle()
	c := NewController(o, nil, compactor)
	tp, concepts := singleTopic()
	s := startSession(t, c, tp, concepts)

	ask(t, c, s, o, "q1?")
	answer(t, c, s, o, "a1", oracle.GradePartial, false)
	ask(t, c, s, o, "q2?")
	answer(t, c, s, o, "a2", oracle.GradePartial, false)

	deadline := time.Now().Add(2 * time.Second)
	for s.summaryFor("c1") == "" {
		if time.Now().After(deadline) {
			t.Fatal("compaction summary never arrived")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ask(t, c, s, o, "q3?")
	if in, _ := o.LastAsk(); in.Summary == "" {
		t.Error("compacted summary not passed to the oracle")
	}
}
