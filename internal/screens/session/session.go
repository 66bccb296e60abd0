package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/screens/summary"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/socralabs/socra/internal/ui/components"
	"github.com/socralabs/socra/internal/ui/layout"
)

// phase is the screen's position in the turn loop. Asking, feedback,
// and farewell wait on the learner; the rest wait on the oracle.
type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseJudging
	phaseFeedback
	phaseConcluding
	phaseFarewell
)

// SessionScreen drives one tutoring dialogue turn by turn.
type SessionScreen struct {
	ctrl     *tutor.Controller
	topic    topic.Topic
	concepts []topic.Concept

	sess     *tutor.Session
	resume   bool
	phase    phase
	question *transcript.Exchange
	outcome  *tutor.TurnOutcome
	farewell string

	// pendingAnswer holds a submitted answer until its judge turn
	// lands, so a timed-out turn can be retried.
	pendingAnswer string

	input       components.TextInput
	elapsed     time.Duration
	spinnerStep int

	showQuitConfirm bool
	errMsg          string
	errRetryable    bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the given topic.
func New(ctrl *tutor.Controller, t topic.Topic, concepts []topic.Concept) *SessionScreen {
	return &SessionScreen{
		ctrl:     ctrl,
		topic:    t,
		concepts: concepts,
		phase:    phaseLoading,
		input:    components.NewTextInput("Think it through, then answer...", 500),
	}
}

// Resume continues a restored session instead of starting a new one.
// The caller guarantees the session is neither ended nor complete.
func Resume(ctrl *tutor.Controller, sess *tutor.Session) *SessionScreen {
	s := New(ctrl, sess.Topic, sess.Graph.Concepts())
	s.sess = sess
	s.resume = true
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startSession(),
		s.input.Init(),
		tickCmd(),
		spinnerCmd(),
	)
}

func (s *SessionScreen) Title() string {
	return s.topic.Name
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		if s.errRetryable {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "End session"},
			}
		}
		return []layout.KeyHint{
			{Key: "any key", Description: "End session"},
		}
	}
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback, phaseFarewell:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg, s.errRetryable)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	switch s.phase {
	case phaseLoading:
		return renderWait(width, height, "Preparing your first question", s.spinnerStep)
	case phaseJudging:
		return renderWait(width, height, "Weighing your answer", s.spinnerStep)
	case phaseConcluding:
		return renderWait(width, height, "Gathering closing thoughts", s.spinnerStep)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	case phaseFarewell:
		return renderFarewell(width, height, s.farewell)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case turnDoneMsg:
		return s.handleTurnDone(msg)

	case concludeDoneMsg:
		return s.handleConcludeDone(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case spinnerTickMsg:
		return s.handleSpinnerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a question is on screen.
	if s.phase == phaseAsking && !s.showQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startSession builds the session and moves the first concept under
// probe. The first question follows as its own turn. A resumed session
// skips Start and picks up where its transcript left off.
func (s *SessionScreen) startSession() tea.Cmd {
	if s.resume && s.sess != nil {
		sess := s.sess
		return func() tea.Msg {
			return sessionStartedMsg{Session: sess}
		}
	}
	return func() tea.Msg {
		sess, err := s.ctrl.Start(context.Background(), s.topic, s.concepts)
		if err != nil {
			return sessionStartedMsg{Err: err}
		}
		return sessionStartedMsg{Session: sess}
	}
}

// nextQuestion asks the oracle for the next question asynchronously.
func (s *SessionScreen) nextQuestion() tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		outcome, err := s.ctrl.NextTurn(context.Background(), sess, "")
		return turnDoneMsg{Outcome: outcome, Err: err}
	}
}

// judgeAnswer relays the learner's answer for judgment asynchronously.
func (s *SessionScreen) judgeAnswer(answer string) tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		outcome, err := s.ctrl.NextTurn(context.Background(), sess, answer)
		return turnDoneMsg{Outcome: outcome, Err: err}
	}
}

// concludeSession requests the closing reflection asynchronously.
func (s *SessionScreen) concludeSession() tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		outcome, err := s.ctrl.Conclude(context.Background(), sess)
		return concludeDoneMsg{Outcome: outcome, Err: err}
	}
}

func (s *SessionScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.fail(msg.Err)
		return s, nil
	}
	s.sess = msg.Session

	// A restored session may still owe an answer to its last question.
	if open := s.sess.Transcript.Open(); open != nil {
		ex := *open
		s.question = &ex
		s.phase = phaseAsking
		s.input.Reset()
		return s, s.input.Init()
	}

	return s, s.nextQuestion()
}

func (s *SessionScreen) handleTurnDone(msg turnDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.fail(msg.Err)
		return s, nil
	}

	switch msg.Outcome.Kind {
	case tutor.TurnAsked:
		ex := msg.Outcome.Exchange
		s.question = &ex
		s.phase = phaseAsking
		s.input.Reset()
		return s, s.input.Init()

	case tutor.TurnJudged:
		s.outcome = msg.Outcome
		s.pendingAnswer = ""
		s.phase = phaseFeedback
		return s, nil
	}

	return s, nil
}

func (s *SessionScreen) handleConcludeDone(msg concludeDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The farewell is a nicety; finish the session without it.
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.farewell = msg.Outcome.Confirmation
	s.phase = phaseFarewell
	return s, nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Ended() {
		return s, nil
	}
	s.elapsed = time.Since(s.sess.StartedAt)
	return s, tickCmd()
}

func (s *SessionScreen) handleSpinnerTick() (screen.Screen, tea.Cmd) {
	if s.sess != nil && s.sess.Ended() {
		return s, nil
	}
	switch s.phase {
	case phaseLoading, phaseJudging, phaseConcluding:
		s.spinnerStep++
	}
	return s, spinnerCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.outcome != nil && s.outcome.SessionComplete {
		s.phase = phaseConcluding
		return s, s.concludeSession()
	}
	s.phase = phaseLoading
	return s, s.nextQuestion()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := s.ctrl.End(s.sess)
	sess := s.sess
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, sess)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state.
	if s.errMsg != "" {
		if s.errRetryable {
			switch key {
			case "r", "R":
				return s, s.retryTurn()
			case "esc":
				return s, func() tea.Msg { return sessionEndMsg{} }
			}
			return s, nil
		}
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	// Quit confirmation dialog.
	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	switch s.phase {
	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseFarewell:
		return s, func() tea.Msg { return sessionEndMsg{} }

	case phaseAsking:
		switch key {
		case "esc":
			s.showQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer hands the typed answer to the oracle for judgment.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	s.pendingAnswer = answer
	s.input.Reset()
	s.phase = phaseJudging
	return s, s.judgeAnswer(answer)
}

// retryTurn re-issues the turn that timed out. A failed turn leaves the
// session untouched, so the retry repeats it exactly.
func (s *SessionScreen) retryTurn() tea.Cmd {
	s.errMsg = ""
	s.errRetryable = false

	if s.sess == nil {
		s.phase = phaseLoading
		return s.startSession()
	}
	if s.pendingAnswer != "" {
		s.phase = phaseJudging
		return s.judgeAnswer(s.pendingAnswer)
	}
	if s.sess.Completed() {
		s.phase = phaseConcluding
		return s.concludeSession()
	}
	s.phase = phaseLoading
	return s.nextQuestion()
}

// fail records an oracle failure. Timeouts are retryable; anything
// else ends the session on the next keypress.
func (s *SessionScreen) fail(err error) {
	var timeout *tutor.OracleTimeoutError
	if errors.As(err, &timeout) {
		s.errMsg = "The oracle took too long to respond."
		s.errRetryable = true
		return
	}
	s.errMsg = err.Error()
	s.errRetryable = false
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// spinnerCmd returns a spinner frame tick command.
func spinnerCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
