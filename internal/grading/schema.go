package grading

import "github.com/venturelab/venturesim/internal/llm"

// GradeSchema defines the JSON schema for answer grading responses.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "A rubric-based score for a short written answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Fraction of the rubric's points earned (0.0-1.0)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence of feedback addressed to the participant",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}
