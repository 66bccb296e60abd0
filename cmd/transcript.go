package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/spf13/cobra"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Inspect, export, and import session transcripts",
}

var transcriptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.EventRepo().QuerySessions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-10s  %-16s  %-16s  %6s  %6s  %4s  %8s  %s\n",
			"ID", "Topic", "Started", "Time", "Turns", "Acc", "Mastered", "State")
		fmt.Println(strings.Repeat("─", 90))

		for _, info := range sessions {
			id := info.SessionID
			if len(id) > 8 {
				id = id[:8]
			}

			dur := "—"
			state := "open"
			if info.EndedAt != nil {
				dur = fmt.Sprintf("%d:%02d", info.DurationSecs/60, info.DurationSecs%60)
				state = "ended"
			}

			acc := "—"
			if info.TotalExchanges > 0 {
				acc = fmt.Sprintf("%d%%", info.CorrectAnswers*100/info.TotalExchanges)
			}

			fmt.Printf("%-10s  %-16s  %-16s  %6s  %6d  %4s  %8d  %s\n",
				id,
				info.TopicID,
				info.StartedAt.Local().Format("2006-01-02 15:04"),
				dur,
				info.TotalExchanges,
				acc,
				len(info.Mastered),
				state,
			)
		}

		fmt.Printf("\n%d sessions\n", len(sessions))
		return nil
	},
}

var transcriptShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a session's dialogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		info, err := resolveSession(ctx, s.EventRepo(), args[0])
		if err != nil {
			return err
		}

		archive, err := s.EventRepo().SessionArchive(ctx, info.SessionID)
		if err != nil {
			return fmt.Errorf("load transcript: %w", err)
		}

		printArchive(archive)
		return nil
	},
}

var transcriptExportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session transcript as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		info, err := resolveSession(ctx, s.EventRepo(), args[0])
		if err != nil {
			return err
		}

		archive, err := s.EventRepo().SessionArchive(ctx, info.SessionID)
		if err != nil {
			return fmt.Errorf("load transcript: %w", err)
		}

		data, err := json.MarshalIndent(archive, "", "  ")
		if err != nil {
			return fmt.Errorf("encode archive: %w", err)
		}
		data = append(data, '\n')

		if out == "" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Exported session %s (%d records) to %s\n",
			info.SessionID[:8], len(archive.Records), out)
		return nil
	},
}

var transcriptImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a session from an exported transcript",
	Long: `Rebuild a session from an exported JSON transcript by replaying its
records through the tutoring rules, then report the restored concept
statuses. With --resume, an unfinished session continues in the TUI.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		var archive transcript.Archive
		if err := json.Unmarshal(data, &archive); err != nil {
			return fmt.Errorf("decode archive: %w", err)
		}

		t, concepts, err := topic.Lookup(archive.TopicID)
		if err != nil {
			return fmt.Errorf("archive references unknown topic %q: %w", archive.TopicID, err)
		}

		// Restore replays records through the gate and state machine;
		// it needs no oracle.
		ctrl := tutor.NewController(nil, nil, nil)
		sess, err := ctrl.Restore(t, concepts, &archive)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		if resume {
			if sess.Ended() {
				return fmt.Errorf("session %s already ended; nothing to resume", shortID(sess.ID))
			}
			if sess.Completed() {
				return fmt.Errorf("session %s already settled every concept; nothing to resume", shortID(sess.ID))
			}
			return runApp(cmd, "", sess)
		}

		printRestored(sess, args[0])
		return nil
	},
}

// resolveSession matches a full session ID or a unique prefix.
func resolveSession(ctx context.Context, repo store.EventRepo, arg string) (store.SessionInfo, error) {
	sessions, err := repo.QuerySessions(ctx, store.QueryOpts{})
	if err != nil {
		return store.SessionInfo{}, fmt.Errorf("query sessions: %w", err)
	}

	var matches []store.SessionInfo
	for _, info := range sessions {
		if info.SessionID == arg {
			return info, nil
		}
		if strings.HasPrefix(info.SessionID, arg) {
			matches = append(matches, info)
		}
	}

	switch len(matches) {
	case 0:
		return store.SessionInfo{}, fmt.Errorf("no session found for %q", arg)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, m := range matches {
			ids = append(ids, shortID(m.SessionID))
		}
		return store.SessionInfo{}, fmt.Errorf("multiple sessions match %q: %s", arg, strings.Join(ids, ", "))
	}
}

// printArchive writes a transcript as plain dialogue text.
func printArchive(a *transcript.Archive) {
	fmt.Printf("Session:  %s\n", shortID(a.SessionID))
	fmt.Printf("Topic:    %s\n", a.TopicID)
	fmt.Printf("Started:  %s\n", a.StartedAt.Local().Format("2006-01-02 15:04"))
	if a.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", a.EndedAt.Local().Format("2006-01-02 15:04"))
	} else {
		fmt.Println("Ended:    — (still open)")
	}

	lastConcept := ""
	for _, r := range a.Records {
		if r.ConceptID != lastConcept {
			fmt.Printf("\n── %s ──\n", r.ConceptID)
			lastConcept = r.ConceptID
		}

		switch r.Role {
		case transcript.RoleTutor:
			suffix := ""
			if r.Simplified {
				suffix = "  (simpler)"
			}
			if r.Transfer {
				suffix = "  (transfer)"
			}
			fmt.Printf("\nQ: %s%s\n", r.Text, suffix)
			if r.Example != "" {
				fmt.Printf("   e.g. %s\n", r.Example)
			}
		case transcript.RoleLearner:
			fmt.Printf("A: %s  %s\n", r.Text, gradeMark(r.Verdict))
			if r.Verdict != nil && r.Verdict.Probe != "" {
				fmt.Printf("   ↳ %s\n", r.Verdict.Probe)
			}
		}
	}
	fmt.Println()
}

// printRestored reports the state rebuilt from an imported archive.
func printRestored(sess *tutor.Session, path string) {
	fmt.Printf("Restored session %s — %s\n", shortID(sess.ID), sess.Topic.Name)
	fmt.Printf("Started:    %s\n", sess.StartedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Exchanges:  %d (%d answered)\n",
		sess.Transcript.Len(), len(sess.Transcript.Sealed()))

	fmt.Println("Concepts:")
	for _, c := range sess.Graph.Concepts() {
		status := sess.Graph.Status(c.ID)
		marker := ""
		if !sess.Ended() && c.ID == sess.Current {
			marker = "  ← current"
		}
		fmt.Printf("  %s %-24s %s%s\n", status.Icon(), c.Name, status.String(), marker)
	}

	switch {
	case sess.Ended():
		fmt.Println("\nSession ended; nothing left to resume.")
	case sess.Completed():
		fmt.Println("\nEvery concept is settled; only the closing turn remains.")
	default:
		fmt.Printf("\nSession still open — continue it with: socra transcript import --resume %s\n", path)
	}
}

func gradeMark(v *oracle.Verdict) string {
	if v == nil {
		return ""
	}
	switch v.Grade {
	case oracle.GradeCorrect:
		return "✓"
	case oracle.GradePartial:
		return "◐"
	default:
		return "✗"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	transcriptListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	transcriptExportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
	transcriptImportCmd.Flags().Bool("resume", false, "Continue the restored session in the TUI")

	transcriptCmd.AddCommand(transcriptListCmd)
	transcriptCmd.AddCommand(transcriptShowCmd)
	transcriptCmd.AddCommand(transcriptExportCmd)
	transcriptCmd.AddCommand(transcriptImportCmd)
}
