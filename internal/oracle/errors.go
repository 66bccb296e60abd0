package oracle

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError means the backend refused the call with a 429.
// RetryAfter is zero when the backend gave no hint.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// InvalidResponseError means the model replied with content that is
// not usable: not JSON, missing required fields, or failing the
// requested schema. Content holds the offending reply when available.
type InvalidResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("unusable oracle reply: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// UnavailableError means the backend could not be reached or answered
// with a server error.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "oracle backend unavailable"
	}
	return fmt.Sprintf("oracle backend unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError means the reply was cut off at the MaxTokens limit,
// so its JSON cannot be trusted.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "oracle reply truncated at the token limit"
}
