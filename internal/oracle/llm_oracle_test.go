package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/socralabs/socra/internal/topic"
)

func askInput() AskInput {
	return AskInput{
		Topic: topic.Topic{ID: "recursion", Name: "Recursion"},
		Concept: topic.Concept{
			ID:          "base_case",
			Name:        "Base case",
			Description: "The input answered directly without another call",
			Keywords:    []string{"termination"},
		},
	}
}

func TestLLMOracle_Ask(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"kind":"question","text":"What does factorial(1) return, without calling anything?","example":"factorial(1)"}`),
	})
	o := NewLLMOracle(mock, DefaultTutorConfig())

	q, err := o.Ask(context.Background(), askInput())
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if q.Kind != KindQuestion {
		t.Errorf("Kind = %q, want question", q.Kind)
	}
	if q.Example != "factorial(1)" {
		t.Errorf("Example = %q, want factorial(1)", q.Example)
	}

	reqs := mock.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Purpose != PurposeAsk {
		t.Errorf("Purpose = %q, want ask", reqs[0].Purpose)
	}
	if reqs[0].Schema == nil || reqs[0].Schema.Name != "socratic-question" {
		t.Error("ask request missing the question schema")
	}
	if !strings.Contains(reqs[0].Messages[0].Content, "Base case") {
		t.Error("ask prompt missing concept name")
	}
}

func TestLLMOracle_AskSimplifyAndTransferPrompts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"kind":"question","text":"q1","example":""}`)},
		MockResponse{Content: json.RawMessage(`{"kind":"question","text":"q2","example":""}`)},
	)
	o := NewLLMOracle(mock, DefaultTutorConfig())

	in := askInput()
	in.Simplify = true
	if _, err := o.Ask(context.Background(), in); err != nil {
		t.Fatalf("Ask simplify: %v", err)
	}
	if !strings.Contains(mock.Requests()[0].Messages[0].Content, "strictly simpler") {
		t.Error("simplify ask should request a strictly simpler sub-question")
	}

	in = askInput()
	in.Transfer = true
	if _, err := o.Ask(context.Background(), in); err != nil {
		t.Fatalf("Ask transfer: %v", err)
	}
	if !strings.Contains(mock.Requests()[1].Messages[0].Content, "transfer question") {
		t.Error("transfer ask should request a fresh-example question")
	}
}

func TestLLMOracle_AskEmptyTextRejected(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"kind":"question","text":"","example":""}`),
	})
	o := NewLLMOracle(mock, DefaultTutorConfig())

	_, err := o.Ask(context.Background(), askInput())
	if err == nil {
		t.Fatal("expected error for empty question text")
	}
	var invErr *InvalidResponseError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvalidResponseError, got %T", err)
	}
}

func TestLLMOracle_Judge(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"grade":"correct","applies_transfer":true,"probe":"What would happen with a list of one element?"}`),
	})
	o := NewLLMOracle(mock, DefaultTutorConfig())

	v, err := o.Judge(context.Background(), JudgeInput{
		Topic:    topic.Topic{ID: "recursion", Name: "Recursion"},
		Concept:  topic.Concept{ID: "base_case", Name: "Base case"},
		Question: Question{Kind: KindQuestion, Text: "What stops the calls?"},
		Answer:   "The input small enough to answer directly",
		Transfer: true,
	})
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if v.Grade != GradeCorrect {
		t.Errorf("Grade = %q, want correct", v.Grade)
	}
	if !v.AppliesTransfer {
		t.Error("AppliesTransfer = false, want true")
	}

	req := mock.Requests()[0]
	if req.Purpose != PurposeJudge {
		t.Errorf("Purpose = %q, want judge", req.Purpose)
	}
	if req.Schema == nil || req.Schema.Name != "socratic-verdict" {
		t.Error("judge request missing the verdict schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Transfer probe: true") {
		t.Error("judge prompt missing transfer flag")
	}
	if !strings.Contains(req.Messages[0].Content, "small enough to answer directly") {
		t.Error("judge prompt missing learner answer")
	}
}

func TestLLMOracle_ProviderErrorPassthrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &RateLimitError{Err: errors.New("429")},
	})
	o := NewLLMOracle(mock, DefaultTutorConfig())

	_, err := o.Ask(context.Background(), askInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected wrapped RateLimitError, got %v", err)
	}
}

func TestBuildHistory_CapsTurnsAndLeadsWithSummary(t *testing.T) {
	turns := []Turn{
		{Question: "q1", Answer: "a1", Grade: GradeIncorrect},
		{Question: "q2", Answer: "a2", Grade: GradeCorrect},
		{Question: "q3", Answer: "a3", Grade: GradeCorrect},
	}

	out := buildHistory(turns, "learner confuses base case with loop exit", 2)
	if !strings.Contains(out, "earlier, summarized") {
		t.Error("history should lead with the compacted summary")
	}
	if strings.Contains(out, "q1") {
		t.Error("history should drop turns beyond the cap")
	}
	if !strings.Contains(out, "q2") || !strings.Contains(out, "q3") {
		t.Error("history should keep the most recent turns")
	}

	if got := buildHistory(nil, "", 5); got != "None yet" {
		t.Errorf("empty history = %q, want None yet", got)
	}
}

func TestRetry_InvalidReplyRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &InvalidResponseError{Err: errors.New("bad json")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})

	resp, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("Content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &TruncatedError{}})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})

	_, err := p.Complete(context.Background(), Request{})
	var trunc *TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", mock.CallCount())
	}
}
