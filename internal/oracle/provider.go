package oracle

import (
	"context"
	"encoding/json"
)

// Provider is the low-level abstraction over an LLM backend. The
// tutoring oracle sits on top of it; nothing above this package knows
// which vendor is answering.
type Provider interface {
	// Complete sends one prompt to the model. When the request carries
	// a Schema, the reply Content is JSON already validated against it;
	// otherwise Content is raw text.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured to use.
	ModelID() string
}

// Purpose labels what a request is for. It flows into the event log so
// usage can be broken down per call site.
type Purpose string

const (
	PurposeAsk     Purpose = "ask"
	PurposeJudge   Purpose = "judge"
	PurposeCompact Purpose = "compact"
)

// Request is one completion call.
type Request struct {
	// Purpose tags the call for the event log.
	Purpose Purpose

	// System sets the model's role and constraints.
	System string

	// Messages is the dialogue sent to the model, oldest first.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validate the reply before returning it.
	Schema *Schema

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means the provider default.
	Temperature float64
}

// Message is a single turn in the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who a Message is from.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is the model's reply.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage counts tokens consumed by this call.
	Usage Usage

	// Model is the concrete model that served the call, which may be
	// more specific than the configured one.
	Model string
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
