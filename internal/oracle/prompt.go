package oracle

import (
	"fmt"
	"strings"
)

const askSystemPrompt = `You are a Socratic tutor. You teach by asking, never by telling.

Rules:
- Respond with exactly one utterance, one or two sentences, plain text.
- Never state the answer to anything you ask, and never explain the concept outright. If the learner is stuck, ask a smaller question instead.
- Ground early questions in a concrete, simple example the learner can reason through (put it in the "example" field). Move toward abstraction only after the learner handles the concrete case.
- When asked to simplify, pose a strictly simpler sub-question than the previous one: smaller numbers, fewer steps, a more familiar setting.
- When asked for a transfer question, apply the concept to a fresh example that has not appeared in the dialogue. Do not reuse or lightly reword an earlier example.
- Do not repeat a question already asked in this dialogue.
- Set kind to "question" and phrase the text as a question. Only when told the session is complete may you set kind to "statement" and offer a short closing reflection on what the learner worked through.`

const judgeSystemPrompt = `You are grading one learner answer in a Socratic tutoring dialogue.

Rules:
- Judge only the pending answer against the pending question; the history is context, not the subject.
- grade "correct" means the answer shows the concept is understood, even if informally worded. "partial" means on the right track but incomplete, imprecise, or hedged. "incorrect" means wrong, circular, or missing the point.
- applies_transfer is true only when the question introduced a fresh example and the answer handled it correctly. A correct answer on a familiar example is not transfer.
- The probe must be a single short question nudging the learner onward. It must never contain or imply the answer.
- Be strict about correctness but generous about wording; learners are not writing textbooks.`

// buildAskMessage constructs the user message for an ask request.
func buildAskMessage(input AskInput, cfg TutorConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Concept: %s\n", input.Concept.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Concept.Description)
	if len(input.Concept.Keywords) > 0 {
		fmt.Fprintf(&b, "Touchstones: %s\n", strings.Join(input.Concept.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Simplification depth: %d\n", input.Depth)

	switch {
	case input.Conclude:
		b.WriteString("\nThe session is complete: every concept is resolved. Offer a short closing statement reflecting on the dialogue below.\n")
	case input.Simplify:
		b.WriteString("\nThe learner has missed twice in a row. Ask a strictly simpler sub-question than the last one.\n")
	case input.Transfer:
		b.WriteString("\nThe learner just answered correctly. Ask a transfer question: apply the concept to a fresh example not seen below.\n")
	default:
		b.WriteString("\nAsk the next probing question for this concept.\n")
	}

	b.WriteString("\nDialogue so far for this concept:\n")
	b.WriteString(buildHistory(input.History, input.Summary, cfg.MaxHistoryTurns))

	return b.String()
}

// buildJudgeMessage constructs the user message for a judge request.
func buildJudgeMessage(input JudgeInput, cfg TutorConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Concept: %s\n", input.Concept.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Concept.Description)
	fmt.Fprintf(&b, "Transfer probe: %t\n", input.Transfer)

	b.WriteString("\nEarlier dialogue for this concept:\n")
	b.WriteString(buildHistory(input.History, input.Summary, cfg.MaxHistoryTurns))

	b.WriteString("\nPending question:\n")
	b.WriteString(input.Question.Text)
	if input.Question.Example != "" {
		fmt.Fprintf(&b, "\n(worked example: %s)", input.Question.Example)
	}

	b.WriteString("\n\nLearner's answer:\n")
	b.WriteString(input.Answer)

	return b.String()
}

// buildHistory formats recent turns for the prompt, respecting the max
// limit. A compacted summary of older turns, when present, leads.
func buildHistory(turns []Turn, summary string, max int) string {
	var b strings.Builder

	if summary != "" {
		fmt.Fprintf(&b, "(earlier, summarized: %s)\n", summary)
	}

	if len(turns) == 0 {
		if summary == "" {
			return "None yet"
		}
		return strings.TrimRight(b.String(), "\n")
	}

	if max > 0 && len(turns) > max {
		turns = turns[len(turns)-max:]
	}

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

	return strings.TrimRight(b.String(), "\n")
}
