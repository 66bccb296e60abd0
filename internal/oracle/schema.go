package oracle

// QuestionSchema defines the JSON schema for ask responses.
var QuestionSchema = &Schema{
	Name:        "socratic-question",
	Description: "The tutor's next utterance: a probing question, or a closing statement on the final turn",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind": map[string]any{
				"type":        "string",
				"enum":        []any{"question", "statement"},
				"description": "Whether the utterance asks something. Must be \"question\" except on the closing turn of a completed session.",
			},
			"text": map[string]any{
				"type":        "string",
				"description": "The utterance shown to the learner. Plain text, one or two sentences, never revealing an answer.",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "The concrete instance the question works through, e.g. \"factorial(3)\" or \"a table with 8 buckets\". Empty string when the question is abstract.",
			},
		},
		"required":             []any{"kind", "text", "example"},
		"additionalProperties": false,
	},
}

// VerdictSchema defines the JSON schema for judge responses.
var VerdictSchema = &Schema{
	Name:        "socratic-verdict",
	Description: "A judgment of the learner's answer to the pending question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partial", "incorrect"},
				"description": "correct: the answer shows the concept is understood. partial: on the right track but incomplete or imprecise. incorrect: wrong or missing the point.",
			},
			"applies_transfer": map[string]any{
				"type":        "boolean",
				"description": "True only when the answer correctly applies the concept to an example not previously discussed in this dialogue.",
			},
			"probe": map[string]any{
				"type":        "string",
				"description": "A short follow-up nudge for the learner, phrased as a question. Never states the answer.",
			},
		},
		"required":             []any{"grade", "applies_transfer", "probe"},
		"additionalProperties": false,
	},
}

// DialogueSummarySchema defines the JSON schema for history compaction
// responses.
var DialogueSummarySchema = &Schema{
	Name:        "dialogue-summary",
	Description: "A compact summary of earlier tutoring dialogue",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences capturing what was asked, what the learner got right, and where they struggled.",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
