package oracle

import (
	"context"
	"encoding/json"
	"fmt"
)

// TutorConfig tunes the LLM-backed oracle.
type TutorConfig struct {
	// AskMaxTokens bounds question generation responses.
	AskMaxTokens int

	// JudgeMaxTokens bounds verdict responses.
	JudgeMaxTokens int

	// Temperature for both calls. Asking benefits from a little
	// variety; judging stays at the configured value too so behavior
	// is tunable in one place.
	Temperature float64

	// MaxHistoryTurns caps how many recent turns are inlined in the
	// prompt. Older turns arrive via the compacted summary.
	MaxHistoryTurns int
}

// DefaultTutorConfig returns the standard oracle tuning.
func DefaultTutorConfig() TutorConfig {
	return TutorConfig{
		AskMaxTokens:    600,
		JudgeMaxTokens:  400,
		Temperature:     0.4,
		MaxHistoryTurns: 8,
	}
}

// LLMOracle implements Oracle on top of a Provider.
type LLMOracle struct {
	provider Provider
	config   TutorConfig
}

// NewLLMOracle creates an oracle backed by the given provider.
func NewLLMOracle(provider Provider, cfg TutorConfig) *LLMOracle {
	return &LLMOracle{provider: provider, config: cfg}
}

// questionOutput is the raw ask response before mapping.
type questionOutput struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Example string `json:"example"`
}

// Ask produces the next Socratic question for a concept.
func (o *LLMOracle) Ask(ctx context.Context, input AskInput) (*Question, error) {
	req := Request{
		Purpose: PurposeAsk,
		System:  askSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildAskMessage(input, o.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   o.config.AskMaxTokens,
		Temperature: o.config.Temperature,
	}

	resp, err := o.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("oracle ask: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse ask response: %w", err)
	}
	if raw.Text == "" {
		return nil, &InvalidResponseError{
			Content: resp.Content,
			Err:     fmt.Errorf("empty question text"),
		}
	}

	return &Question{
		Kind:    Kind(raw.Kind),
		Text:    raw.Text,
		Example: raw.Example,
	}, nil
}

// verdictOutput is the raw judge response before mapping.
type verdictOutput struct {
	Grade           string `json:"grade"`
	AppliesTransfer bool   `json:"applies_transfer"`
	Probe           string `json:"probe"`
}

// Judge grades the learner's answer to the pending question.
func (o *LLMOracle) Judge(ctx context.Context, input JudgeInput) (*Verdict, error) {
	req := Request{
		Purpose: PurposeJudge,
		System:  judgeSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildJudgeMessage(input, o.config)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   o.config.JudgeMaxTokens,
		Temperature: o.config.Temperature,
	}

	resp, err := o.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("oracle judge: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse judge response: %w", err)
	}

	return &Verdict{
		Grade:           Grade(raw.Grade),
		AppliesTransfer: raw.AppliesTransfer,
		Probe:           raw.Probe,
	}, nil
}
