package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screens/summary"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(concepts ...topic.Concept) (*SessionScreen, *oracle.ScriptedOracle) {
	if len(concepts) == 0 {
		concepts = []topic.Concept{
			{ID: "base_case", Name: "Base case"},
			{ID: "self_reference", Name: "Self-reference", Prerequisites: []string{"base_case"}},
		}
	}
	orc := oracle.NewScriptedOracle()
	ctrl := tutor.NewController(orc, nil, nil)
	tp := topic.Topic{ID: "recursion", Name: "Recursion"}
	return New(ctrl, tp, concepts), orc
}

// startActive drives the screen through session start and the first
// ask, leaving it waiting for an answer.
func startActive(t *testing.T, s *SessionScreen, orc *oracle.ScriptedOracle, question string) {
	t.Helper()

	orc.PushQuestion(question)

	msg := s.startSession()()
	started, ok := msg.(sessionStartedMsg)
	if !ok {
		t.Fatalf("startSession returned %T, want sessionStartedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("session start failed: %v", started.Err)
	}

	_, cmd := s.Update(started)
	if cmd == nil {
		t.Fatal("expected ask command after session start")
	}
	s.Update(cmd())

	if s.phase != phaseAsking {
		t.Fatalf("phase = %d after first ask, want phaseAsking", s.phase)
	}
	if s.question == nil {
		t.Fatal("expected a question on screen")
	}
}

// submit types an answer, presses enter, and runs the judge turn with
// the given verdict queued.
func submit(t *testing.T, s *SessionScreen, orc *oracle.ScriptedOracle, answer string, grade oracle.Grade, transfer bool) {
	t.Helper()

	orc.PushVerdict(grade, transfer)
	s.input.Model.SetValue(answer)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseJudging {
		t.Fatalf("phase = %d after enter, want phaseJudging", s.phase)
	}
	s.Update(cmd())

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %d after judge, want phaseFeedback", s.phase)
	}
}

// acknowledgeFeedback presses a key on the verdict overlay and runs the
// follow-up command it schedules.
func acknowledgeFeedback(t *testing.T, s *SessionScreen) {
	t.Helper()

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected command after acknowledging feedback")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected follow-up turn command")
	}
	s.Update(cmd())
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen()
	if s.Title() != "Recursion" {
		t.Errorf("Title = %q, want %q", s.Title(), "Recursion")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s, _ := testSessionScreen()
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view while the first question loads")
	}
}

func TestSessionScreen_FirstAskShowsQuestion(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops a recursive call from running forever?")

	view := s.View(80, 24)
	if !strings.Contains(view, "What stops a recursive call") {
		t.Errorf("question view missing question text:\n%s", view)
	}
	if !strings.Contains(view, "Base case") {
		t.Errorf("question view missing concept name:\n%s", view)
	}
}

func TestSessionScreen_TypingReachesInput(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	s.Update(keyPress('h'))
	s.Update(keyPress('i'))

	if got := s.input.Value(); got != "hi" {
		t.Errorf("input value = %q, want %q", got, "hi")
	}
}

func TestSessionScreen_EmptyAnswerIgnored(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for an empty answer")
	}
	if s.phase != phaseAsking {
		t.Errorf("phase = %d, want phaseAsking", s.phase)
	}
}

func TestSessionScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	submit(t, s, orc, "a case the function answers directly", oracle.GradeCorrect, false)

	view := s.View(80, 24)
	if !strings.Contains(view, "Correct") {
		t.Errorf("feedback view missing verdict heading:\n%s", view)
	}
	if !strings.Contains(view, "Press any key") {
		t.Errorf("feedback view missing continue hint:\n%s", view)
	}
}

func TestSessionScreen_FeedbackAcknowledgeAsksNext(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")
	submit(t, s, orc, "a direct answer", oracle.GradeCorrect, false)

	orc.PushQuestion("Where does factorial(3) bottom out?")
	acknowledgeFeedback(t, s)

	if s.phase != phaseAsking {
		t.Fatalf("phase = %d after acknowledge, want phaseAsking", s.phase)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "factorial(3)") {
		t.Errorf("expected the next question on screen:\n%s", view)
	}
}

func TestSessionScreen_MasteryFeedbackShowsNextConcept(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")
	submit(t, s, orc, "a direct answer", oracle.GradeCorrect, false)

	orc.PushQuestion("Where does a nested directory walk bottom out?")
	acknowledgeFeedback(t, s)
	submit(t, s, orc, "at a directory with no children", oracle.GradeCorrect, true)

	view := s.View(80, 24)
	if !strings.Contains(view, "Concept mastered!") {
		t.Errorf("feedback view missing mastery notice:\n%s", view)
	}
	if !strings.Contains(view, "Next up: Self-reference") {
		t.Errorf("feedback view missing next concept:\n%s", view)
	}
}

func TestSessionScreen_CompletionFlowReachesSummary(t *testing.T) {
	s, orc := testSessionScreen(topic.Concept{ID: "base_case", Name: "Base case"})
	startActive(t, s, orc, "What stops the recursion?")
	submit(t, s, orc, "a direct answer", oracle.GradeCorrect, false)

	orc.PushQuestion("Where does a dictionary lookup bottom out?")
	acknowledgeFeedback(t, s)
	submit(t, s, orc, "at the entry itself", oracle.GradeCorrect, true)

	view := s.View(80, 24)
	if !strings.Contains(view, "Every concept is settled.") {
		t.Errorf("feedback view missing completion notice:\n%s", view)
	}

	// Acknowledging the final verdict requests the farewell.
	orc.PushAsk(oracle.ScriptedAsk{Question: oracle.Question{
		Kind: oracle.KindStatement,
		Text: "Well reasoned today.",
	}})
	_, cmd := s.Update(keyPress(' '))
	_, cmd = s.Update(cmd())
	if s.phase != phaseConcluding {
		t.Fatalf("phase = %d, want phaseConcluding", s.phase)
	}
	s.Update(cmd())

	if s.phase != phaseFarewell {
		t.Fatalf("phase = %d, want phaseFarewell", s.phase)
	}
	if !strings.Contains(s.View(80, 24), "Well reasoned today.") {
		t.Error("farewell view missing the closing remark")
	}

	// Any key ends the session and pushes the summary.
	_, cmd = s.Update(keyPress(' '))
	msg := cmd()
	if _, ok := msg.(sessionEndMsg); !ok {
		t.Fatalf("farewell keypress produced %T, want sessionEndMsg", msg)
	}
	_, cmd = s.Update(msg)
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("session end produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed screen is %T, want *summary.SummaryScreen", push.Screen)
	}
	if !s.sess.Ended() {
		t.Error("expected the session to be ended")
	}
}

func TestSessionScreen_FarewellFailureStillEndsSession(t *testing.T) {
	s, orc := testSessionScreen(topic.Concept{ID: "base_case", Name: "Base case"})
	startActive(t, s, orc, "What stops the recursion?")
	submit(t, s, orc, "a direct answer", oracle.GradeCorrect, false)

	orc.PushQuestion("Where does a dictionary lookup bottom out?")
	acknowledgeFeedback(t, s)
	submit(t, s, orc, "at the entry itself", oracle.GradeCorrect, true)

	// No farewell queued: Conclude fails, the session ends anyway.
	_, cmd := s.Update(keyPress(' '))
	_, cmd = s.Update(cmd())
	msg := cmd()
	if _, ok := msg.(concludeDoneMsg); !ok {
		t.Fatalf("conclude produced %T, want concludeDoneMsg", msg)
	}
	_, cmd = s.Update(msg)
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected a failed farewell to end the session")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	s.Update(specialKey(tea.KeyEscape))
	if !s.showQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(s.View(80, 24), "End session early?") {
		t.Error("quit confirm view missing prompt")
	}

	s.Update(keyPress('n'))
	if s.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if s.phase != phaseAsking {
		t.Errorf("phase = %d after dismiss, want phaseAsking", s.phase)
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	msg := cmd()
	if _, ok := msg.(sessionEndMsg); !ok {
		t.Fatalf("quit confirm produced %T, want sessionEndMsg", msg)
	}

	_, cmd = s.Update(msg)
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected an early quit to push the summary")
	}
	if !s.sess.Ended() {
		t.Error("expected the session to be ended")
	}
}

func TestSessionScreen_TimeoutIsRetryable(t *testing.T) {
	s, orc := testSessionScreen()

	orc.PushAsk(oracle.ScriptedAsk{Err: context.DeadlineExceeded})
	msg := s.startSession()()
	_, cmd := s.Update(msg)
	s.Update(cmd())

	if s.errMsg == "" {
		t.Fatal("expected an error message after a timed-out ask")
	}
	if !s.errRetryable {
		t.Fatal("expected a timeout to be retryable")
	}
	if s.sess.Transcript.Len() != 0 {
		t.Errorf("transcript length = %d after failed ask, want 0", s.sess.Transcript.Len())
	}

	// Retry repeats the ask.
	orc.PushQuestion("What stops the recursion?")
	_, cmd = s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	s.Update(cmd())

	if s.errMsg != "" {
		t.Errorf("errMsg = %q after retry, want empty", s.errMsg)
	}
	if s.phase != phaseAsking {
		t.Errorf("phase = %d after retry, want phaseAsking", s.phase)
	}
}

func TestSessionScreen_TimeoutRetryRepeatsJudge(t *testing.T) {
	s, orc := testSessionScreen()
	startActive(t, s, orc, "What stops the recursion?")

	orc.PushJudge(oracle.ScriptedVerdict{Err: context.DeadlineExceeded})
	s.input.Model.SetValue("a direct answer")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	if !s.errRetryable {
		t.Fatal("expected a judge timeout to be retryable")
	}
	if s.pendingAnswer != "a direct answer" {
		t.Fatalf("pendingAnswer = %q, want the submitted answer", s.pendingAnswer)
	}

	orc.PushVerdict(oracle.GradeCorrect, false)
	_, cmd = s.Update(keyPress('r'))
	s.Update(cmd())

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %d after retried judge, want phaseFeedback", s.phase)
	}
	if len(orc.JudgeCalls) != 2 {
		t.Fatalf("judge calls = %d, want 2", len(orc.JudgeCalls))
	}
	if orc.JudgeCalls[0].Answer != orc.JudgeCalls[1].Answer {
		t.Error("expected the retry to repeat the same answer")
	}
}

func TestSessionScreen_FatalErrorEndsOnKeypress(t *testing.T) {
	s, _ := testSessionScreen()

	// Empty queue: the ask fails with a non-timeout error.
	msg := s.startSession()()
	_, cmd := s.Update(msg)
	s.Update(cmd())

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if s.errRetryable {
		t.Fatal("expected a provider failure to be fatal")
	}

	_, cmd = s.Update(keyPress(' '))
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected any key to end the session after a fatal error")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, orc := testSessionScreen()

	if hints := s.KeyHints(); hints != nil {
		t.Errorf("loading hints = %v, want none", hints)
	}

	startActive(t, s, orc, "What stops the recursion?")
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "Enter" {
		t.Errorf("asking hints = %v, want Enter/Esc", hints)
	}

	s.Update(specialKey(tea.KeyEscape))
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("quit confirm hints = %v, want Y/N", hints)
	}
	s.Update(keyPress('n'))

	submit(t, s, orc, "a direct answer", oracle.GradeCorrect, false)
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("feedback hints = %v, want a single continue hint", hints)
	}

	s.errMsg = "oracle failed"
	s.errRetryable = true
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "R" {
		t.Errorf("retryable error hints = %v, want R/Esc", hints)
	}
}
