package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// RequestLogEntry captures one oracle request for the event log.
type RequestLogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// RequestLog receives request log entries. The store's event repo
// implements it.
type RequestLog interface {
	AppendOracleRequest(ctx context.Context, entry RequestLogEntry) error
}

// loggingProvider records every call as an event before passing the
// result through.
type loggingProvider struct {
	inner Provider
	log   RequestLog
}

// WithLogging wraps a Provider with request event logging.
func WithLogging(p Provider, log RequestLog) Provider {
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, req)

	entry := RequestLogEntry{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     string(req.Purpose),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.ResponseBody = string(resp.Content)
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// A failed write never fails the call; the event log is advisory.
	if logErr := l.log.AppendOracleRequest(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: oracle event not recorded: %v\n", logErr)
	}

	return resp, err
}

// renderRequest flattens a request into the readable form stored in
// the event log.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
