package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CompactorConfig tunes dialogue compaction.
type CompactorConfig struct {
	MaxTokens   int
	Temperature float64

	// TriggerTurns is how many turns a concept's dialogue may reach
	// before the controller should request compaction.
	TriggerTurns int
}

// DefaultCompactorConfig returns the standard compaction tuning.
func DefaultCompactorConfig() CompactorConfig {
	return CompactorConfig{
		MaxTokens:    300,
		Temperature:  0.0,
		TriggerTurns: 10,
	}
}

// Compactor condenses long per-concept dialogue into a short summary
// so prompts stay bounded across many turns.
type Compactor struct {
	provider Provider
	cfg      CompactorConfig
}

// NewCompactor creates a dialogue compactor.
func NewCompactor(provider Provider, cfg CompactorConfig) *Compactor {
	return &Compactor{provider: provider, cfg: cfg}
}

// TriggerTurns exposes the configured compaction threshold.
func (c *Compactor) TriggerTurns() int {
	return c.cfg.TriggerTurns
}

// CompactDialogue compresses a concept's dialogue into a summary.
// Runs asynchronously; the callback receives the summary when ready.
// Failures are dropped — the full history simply stays in use.
func (c *Compactor) CompactDialogue(
	ctx context.Context,
	conceptID string,
	turns []Turn,
	cb func(conceptID string, summary string),
) {
	go func() {
		summary, err := c.compact(ctx, turns)
		if err != nil || cb == nil {
			return
		}
		cb(conceptID, summary)
	}()
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

const compactSystemPrompt = `You summarize an ongoing Socratic tutoring dialogue so a tutor can pick it up without the full transcript.

Rules:
- Two or three sentences, plain text.
- Cover what was asked, which ideas the learner has shown they grasp, and where they keep stumbling.
- Mention concrete examples already used so they are not repeated.
- Do not include advice, grades, or anything addressed to the learner.`

func (c *Compactor) compact(ctx context.Context, turns []Turn) (string, error) {
	var b strings.Builder
	b.WriteString("Dialogue to summarize:\n")
	for _, t := range turns {
		fmt.Fprintf(&b, "Tutor: %s\n", t.Question)
		if t.Answer != "" {
			fmt.Fprintf(&b, "Learner: %s", t.Answer)
			if t.Grade != "" {
				fmt.Fprintf(&b, " [%s]", t.Grade)
			}
			b.WriteString("\n")
		}
	}

	req := Request{
		Purpose: PurposeCompact,
		System:  compactSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: b.String()},
		},
		Schema:      DialogueSummarySchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("dialogue compaction: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse compaction response: %w", err)
	}

	return out.Summary, nil
}
