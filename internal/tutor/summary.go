package tutor

import (
	"sort"
	"time"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
)

// SessionSummary is the end-of-session report shown on the summary
// screen and written with the session-end event.
type SessionSummary struct {
	SessionID string
	TopicID   string
	TopicName string
	Duration  time.Duration

	// Mastered and Unmastered partition the topic's concept IDs, each
	// sorted. Stalled is the subset of Unmastered set aside after
	// remediation ran out.
	Mastered   []string
	Unmastered []string
	Stalled    []string

	TotalExchanges int
	TotalAnswers   int
	CorrectAnswers int
}

// BuildSummary computes a summary from the session's current state.
func BuildSummary(s *Session) *SessionSummary {
	sum := &SessionSummary{
		SessionID: s.ID,
		TopicID:   s.Topic.ID,
		TopicName: s.Topic.Name,
	}

	end := s.EndedAt
	if end.IsZero() {
		end = time.Now()
	}
	sum.Duration = end.Sub(s.StartedAt)

	for id, st := range s.Graph.Statuses() {
		switch st {
		case topic.StatusMastered:
			sum.Mastered = append(sum.Mastered, id)
		case topic.StatusStalled:
			sum.Stalled = append(sum.Stalled, id)
			sum.Unmastered = append(sum.Unmastered, id)
		default:
			sum.Unmastered = append(sum.Unmastered, id)
		}
	}
	sort.Strings(sum.Mastered)
	sort.Strings(sum.Unmastered)
	sort.Strings(sum.Stalled)

	entries := s.Transcript.Entries()
	sum.TotalExchanges = len(entries)
	for i := range entries {
		if !entries[i].IsSealed() {
			continue
		}
		sum.TotalAnswers++
		if entries[i].Verdict.Grade == oracle.GradeCorrect {
			sum.CorrectAnswers++
		}
	}
	return sum
}

// Accuracy returns the share of judged answers graded correct.
func (s *SessionSummary) Accuracy() float64 {
	if s.TotalAnswers == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalAnswers)
}
