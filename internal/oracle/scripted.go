package oracle

import (
	"context"
	"sync"
)

// ScriptedAsk is a canned ask response for the ScriptedOracle.
type ScriptedAsk struct {
	Question Question
	Err      error
}

// ScriptedVerdict is a canned judge response for the ScriptedOracle.
type ScriptedVerdict struct {
	Verdict Verdict
	Err     error
}

// ScriptedOracle is a deterministic Oracle for testing the session
// controller. Canned responses drain in FIFO order and every call is
// recorded.
type ScriptedOracle struct {
	mu         sync.Mutex
	asks       []ScriptedAsk
	verdicts   []ScriptedVerdict
	AskCalls   []AskInput
	JudgeCalls []JudgeInput
}

// NewScriptedOracle creates an empty ScriptedOracle.
func NewScriptedOracle() *ScriptedOracle {
	return &ScriptedOracle{}
}

// PushAsk queues a canned ask response.
func (s *ScriptedOracle) PushAsk(a ScriptedAsk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asks = append(s.asks, a)
}

// PushQuestion queues a plain question utterance.
func (s *ScriptedOracle) PushQuestion(text string) {
	s.PushAsk(ScriptedAsk{Question: Question{Kind: KindQuestion, Text: text}})
}

// PushJudge queues a canned judge response.
func (s *ScriptedOracle) PushJudge(v ScriptedVerdict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verdicts = append(s.verdicts, v)
}

// PushVerdict queues a plain verdict.
func (s *ScriptedOracle) PushVerdict(grade Grade, transfer bool) {
	s.PushJudge(ScriptedVerdict{Verdict: Verdict{Grade: grade, AppliesTransfer: transfer}})
}

// Ask returns the next canned question or *UnavailableError when the
// queue is empty.
func (s *ScriptedOracle) Ask(_ context.Context, input AskInput) (*Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.AskCalls = append(s.AskCalls, input)

	if len(s.asks) == 0 {
		return nil, &UnavailableError{}
	}
	next := s.asks[0]
	s.asks = s.asks[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	q := next.Question
	return &q, nil
}

// Judge returns the next canned verdict or *UnavailableError when the
// queue is empty.
func (s *ScriptedOracle) Judge(_ context.Context, input JudgeInput) (*Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.JudgeCalls = append(s.JudgeCalls, input)

	if len(s.verdicts) == 0 {
		return nil, &UnavailableError{}
	}
	next := s.verdicts[0]
	s.verdicts = s.verdicts[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	v := next.Verdict
	return &v, nil
}

// LastAsk returns the most recent AskInput, or false when Ask was
// never called.
func (s *ScriptedOracle) LastAsk() (AskInput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.AskCalls) == 0 {
		return AskInput{}, false
	}
	return s.AskCalls[len(s.AskCalls)-1], true
}
