package oracle

import (
	"regexp"
	"strings"
)

// ModelCost is a model's price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost computes the USD cost of one call.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1e6 +
		float64(outputTokens)*c.OutputPerMTok/1e6
}

// dateSuffix matches the -YYYYMMDD tail vendors append to model
// snapshots, e.g. claude-sonnet-4-5-20250929.
var dateSuffix = regexp.MustCompile(`-\d{8}$`)

// LookupCost prices a model ID, or returns nil when it is unknown.
// Snapshot date suffixes and OpenRouter vendor prefixes are
// normalized away before giving up.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if base := dateSuffix.ReplaceAllString(modelID, ""); base != modelID {
		if c, ok := modelCosts[base]; ok {
			return &c
		}
	}
	// OpenRouter IDs look like "google/gemini-2.5-flash".
	if _, bare, found := strings.Cut(modelID, "/"); found {
		return LookupCost(bare)
	}
	return nil
}

// modelCosts prices the models the providers actually reach for.
// Checked against vendor price pages 2026-08.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},
	"claude-3-5-haiku":  {0.8, 4},
	"claude-3-5-sonnet": {3, 15},
	"claude-3-7-sonnet": {3, 15},
	"claude-sonnet-4-0": {3, 15},
	"claude-sonnet-4":   {3, 15},
	"claude-opus-4-1":   {15, 75},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},
	"o3":           {2, 8},
	"o4-mini":      {1.1, 4.4},

	// Google
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-exp":  {0.1, 0.4},
	"gemini-flash-latest":   {0.3, 2.5},
}
