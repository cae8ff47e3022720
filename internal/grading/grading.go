// Package grading scores free-text answers against their rubric criteria
// using an LLM, with a deterministic fallback when no provider is available
// or the provider fails.
package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/llm"
)

// Config holds grader generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Result is one graded answer.
type Result struct {
	Points      float64
	Feedback    string
	NeedsReview bool
}

// Service grades free-text answers. A nil provider is valid and routes
// every answer to the fallback score.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a grading service on top of an LLM provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// gradeOutput is the raw LLM response.
type gradeOutput struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Grade scores one answer against the question's rubric criteria. Provider
// failures are not surfaced as errors: the rubric's fallback score is
// returned with NeedsReview set, so an outage never blocks an assessment.
func (s *Service) Grade(ctx context.Context, q catalog.Question, answer string) (Result, error) {
	if q.Text == nil {
		return Result{}, fmt.Errorf("grading: question %q has no text rubric", q.ID)
	}
	if s.provider == nil {
		return Fallback(q), nil
	}

	ctx = llm.WithPurpose(ctx, "answer-grading")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeMessage(q, answer)},
		},
		Schema:      GradeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Fallback(q), nil
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Fallback(q), nil
	}

	// The schema bounds the score to [0,1]; scale to the rubric's points.
	points := raw.Score * q.Text.MaxPoints
	if points < 0 {
		points = 0
	}
	if points > q.Text.MaxPoints {
		points = q.Text.MaxPoints
	}
	return Result{Points: points, Feedback: raw.Feedback}, nil
}

// Fallback returns the rubric's deterministic fallback score, flagged for
// human review.
func Fallback(q catalog.Question) Result {
	var pts float64
	if q.Text != nil {
		pts = q.Text.Fallback
	}
	return Result{
		Points:      pts,
		Feedback:    "Automatic grading was unavailable; this answer received a provisional score.",
		NeedsReview: true,
	}
}

const gradeSystemPrompt = `You grade short written answers in an entrepreneurship assessment.
Score strictly against the rubric criteria you are given, not against style or length.
Return a score between 0.0 and 1.0 and one sentence of feedback addressed to the participant.`

func buildGradeMessage(q catalog.Question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", q.Prompt)
	fmt.Fprintf(&b, "Rubric: %s\n\n", q.Text.Criteria)
	fmt.Fprintf(&b, "Answer:\n%s\n", strings.TrimSpace(answer))
	return b.String()
}
