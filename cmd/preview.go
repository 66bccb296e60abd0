package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview oracle questions for a concept (no database)",
	Long: `Ask and answer oracle questions for a specific concept.

This is a stateless developer tool — no database, no mastery tracking, no events.
Useful for evaluating question quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic ID (required)")
	previewCmd.Flags().String("concept", "", "Concept ID or name (default: the topic's first concept)")
	previewCmd.Flags().Int("count", 3, "Number of questions to ask")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	conceptVal, _ := cmd.Flags().GetString("concept")
	count, _ := cmd.Flags().GetInt("count")

	t, concepts, err := topic.Lookup(topicVal)
	if err != nil {
		return err
	}

	concept := concepts[0]
	if conceptVal != "" {
		concept, err = resolveConcept(concepts, conceptVal)
		if err != nil {
			return err
		}
	}

	// Create the oracle without a request log — events skipped.
	ctx := context.Background()
	provider, err := oracle.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("oracle provider: %w", err)
	}

	orc := oracle.NewLLMOracle(provider, oracle.DefaultTutorConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Concept: %s — %s (%s)\n", concept.ID, concept.Name, t.Name)
	fmt.Printf("Asking %d questions...\n\n", count)

	var correct int
	var history []oracle.Turn

	for i := 1; i <= count; i++ {
		q, err := orc.Ask(ctx, oracle.AskInput{
			Topic:   t,
			Concept: concept,
			History: history,
		})
		if err != nil {
			fmt.Printf("Question %d: ask failed: %v\n\n", i, err)
			continue
		}

		// Display question.
		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Text)
		if q.Example != "" {
			fmt.Printf("  e.g. %s\n", q.Example)
		}

		// Read answer.
		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		v, err := orc.Judge(ctx, oracle.JudgeInput{
			Topic:    t,
			Concept:  concept,
			Question: *q,
			Answer:   answer,
			History:  history,
		})
		if err != nil {
			fmt.Printf("judge failed: %v\n\n", err)
			continue
		}

		switch v.Grade {
		case oracle.GradeCorrect:
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		case oracle.GradePartial:
			fmt.Println("\033[33m◐ Partly there.\033[0m")
		default:
			fmt.Println("\033[31m✗ Not quite.\033[0m")
		}
		if v.Probe != "" {
			fmt.Printf("↳ %s\n", v.Probe)
		}
		fmt.Println()

		history = append(history, oracle.Turn{
			Question: q.Text,
			Answer:   answer,
			Grade:    v.Grade,
		})
	}

	// Summary.
	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// resolveConcept finds a concept by ID first, then by name fallback.
func resolveConcept(concepts []topic.Concept, val string) (topic.Concept, error) {
	for _, c := range concepts {
		if c.ID == val {
			return c, nil
		}
	}

	var matches []topic.Concept
	for _, c := range concepts {
		if strings.EqualFold(c.Name, val) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		var ids []string
		for _, c := range concepts {
			ids = append(ids, c.ID)
		}
		return topic.Concept{}, fmt.Errorf("no concept found for %q — available: %s", val, strings.Join(ids, ", "))
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, c := range matches {
			ids = append(ids, c.ID)
		}
		return topic.Concept{}, fmt.Errorf("multiple concepts match %q: %s — use a specific ID", val, strings.Join(ids, ", "))
	}
}
