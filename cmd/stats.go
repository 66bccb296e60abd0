package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		statuses, err := s.EventRepo().LatestConceptStatuses(ctx)
		if err != nil {
			return fmt.Errorf("query concept statuses: %w", err)
		}

		printMastery(statuses)

		sessions, err := s.EventRepo().QuerySessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		printSessions(sessions)

		return printTroubleSpots(ctx, s.EventRepo(), statuses)
	},
}

// printMastery rolls concept statuses up per catalog topic.
func printMastery(statuses map[string]string) {
	fmt.Println("Concept Mastery")
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-18s  %10s  %12s  %8s\n",
		"Topic", "Mastered", "In Progress", "Stalled")
	fmt.Println(strings.Repeat("─", 60))

	var totalMastered, totalConcepts, totalActive, totalStalled int
	for _, t := range topic.Catalog() {
		_, concepts, err := topic.Lookup(t.ID)
		if err != nil {
			continue
		}

		var mastered, active, stalled int
		for _, c := range concepts {
			st, ok := topic.ParseStatus(statuses[c.ID])
			if !ok {
				continue
			}
			switch st {
			case topic.StatusMastered:
				mastered++
			case topic.StatusProbing, topic.StatusRemediating:
				active++
			case topic.StatusStalled:
				stalled++
			}
		}

		fmt.Printf("%-18s  %10s  %12d  %8d\n",
			t.Name, fmt.Sprintf("%d/%d", mastered, len(concepts)), active, stalled)

		totalMastered += mastered
		totalConcepts += len(concepts)
		totalActive += active
		totalStalled += stalled
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-18s  %10s  %12d  %8d\n",
		"TOTAL", fmt.Sprintf("%d/%d", totalMastered, totalConcepts), totalActive, totalStalled)
}

// printSessions summarizes recorded sessions.
func printSessions(sessions []store.SessionInfo) {
	fmt.Println()
	fmt.Println("Sessions")
	fmt.Println(strings.Repeat("─", 60))

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	var finished, exchanges, correct, seconds int
	for _, info := range sessions {
		exchanges += info.TotalExchanges
		correct += info.CorrectAnswers
		if info.EndedAt != nil {
			finished++
			seconds += info.DurationSecs
		}
	}

	fmt.Printf("Sessions:      %d (%d finished)\n", len(sessions), finished)
	fmt.Printf("Exchanges:     %d\n", exchanges)
	if exchanges > 0 {
		fmt.Printf("Accuracy:      %d%%\n", correct*100/exchanges)
	}
	fmt.Printf("Time spent:    %s\n", formatDuration(seconds))
	fmt.Printf("Last session:  %s\n", sessions[0].StartedAt.Local().Format("2006-01-02 15:04"))
}

// printTroubleSpots lists concepts stuck in remediation or stalled,
// with their answer accuracy across all sessions.
func printTroubleSpots(ctx context.Context, repo store.EventRepo, statuses map[string]string) error {
	type spot struct {
		conceptID string
		name      string
		topicID   string
		status    topic.Status
	}

	var spots []spot
	for _, t := range topic.Catalog() {
		_, concepts, err := topic.Lookup(t.ID)
		if err != nil {
			continue
		}
		for _, c := range concepts {
			st, ok := topic.ParseStatus(statuses[c.ID])
			if !ok {
				continue
			}
			if st == topic.StatusStalled || st == topic.StatusRemediating {
				spots = append(spots, spot{conceptID: c.ID, name: c.Name, topicID: t.ID, status: st})
			}
		}
	}

	if len(spots) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Trouble Spots")
	fmt.Println(strings.Repeat("─", 60))

	for _, sp := range spots {
		line := fmt.Sprintf("%s %-22s (%s)", sp.status.Icon(), sp.name, sp.topicID)
		accuracy, answered, err := repo.ConceptAccuracy(ctx, sp.conceptID)
		if err == nil && answered > 0 {
			line += fmt.Sprintf("  %.0f%% correct over %d answers", accuracy*100, answered)
		}
		fmt.Println(line)
	}
	return nil
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
