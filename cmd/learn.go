package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/socralabs/socra/internal/topic"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		topicID, _ := cmd.Flags().GetString("topic")
		if topicID != "" {
			if _, _, err := topic.Lookup(topicID); err != nil {
				var ids []string
				for _, t := range topic.Catalog() {
					ids = append(ids, t.ID)
				}
				return fmt.Errorf("unknown topic %q — available: %s", topicID, strings.Join(ids, ", "))
			}
		}
		return runApp(cmd, topicID, nil)
	},
}

func init() {
	learnCmd.Flags().String("topic", "", "Jump straight into a session for this topic ID")

	// Context for provider initialization.
	learnCmd.SetContext(context.Background())
}
