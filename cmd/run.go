package cmd

import (
	"fmt"
	"os"

	"github.com/socralabs/socra/internal/app"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-empty topicID opens straight into a session for that topic; a
// non-nil resume continues a restored session instead. Both need a
// configured oracle.
func runApp(cmd *cobra.Command, topicID string, resume *tutor.Session) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	snapRepo := st.SnapshotRepo()
	opts := app.Options{
		EventRepo:     eventRepo,
		SnapshotRepo:  snapRepo,
		Recorder:      store.NewRecorder(eventRepo, snapRepo),
		StartTopic:    topicID,
		ResumeSession: resume,
	}

	provider, err := oracle.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		if topicID != "" || resume != nil {
			return fmt.Errorf("a session needs a configured oracle: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Oracle provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring sessions will be unavailable.")
	} else {
		opts.Oracle = oracle.NewLLMOracle(provider, oracle.DefaultTutorConfig())
		opts.Compactor = oracle.NewCompactor(provider, oracle.DefaultCompactorConfig())
	}

	return app.Run(opts)
}
