package grading

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/llm"
)

func reflectionQuestion(t *testing.T) catalog.Question {
	t.Helper()
	q, err := catalog.GetQuestion("mindset-failure-story")
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestGrade(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.8, "feedback": "Concrete failure and a specific change."}`),
	})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(context.Background(), reflectionQuestion(t), "I shipped too early and now I validate first.")
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != 8 {
		t.Errorf("points = %v, want 8", res.Points)
	}
	if res.NeedsReview {
		t.Error("graded answer flagged for review")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}

	// The request carries the rubric and the schema.
	req := mock.Calls[0]
	if req.Schema != GradeSchema {
		t.Error("grade schema not sent")
	}
	if req.Messages[0].Content == "" {
		t.Error("empty user message")
	}
}

func TestGradeProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call fails
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(context.Background(), reflectionQuestion(t), "answer")
	if err != nil {
		t.Fatalf("provider failure surfaced as error: %v", err)
	}
	if res.Points != 5 {
		t.Errorf("points = %v, want rubric fallback 5", res.Points)
	}
	if !res.NeedsReview {
		t.Error("fallback not flagged for review")
	}
}

func TestGradeMalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(context.Background(), reflectionQuestion(t), "answer")
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != 5 || !res.NeedsReview {
		t.Errorf("result = %+v, want fallback", res)
	}
}

func TestGradeClampsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1.5, "feedback": "over-enthusiastic"}`),
	})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(context.Background(), reflectionQuestion(t), "answer")
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != 10 {
		t.Errorf("points = %v, want clamp to 10", res.Points)
	}
}

func TestGradeNilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	res, err := svc.Grade(context.Background(), reflectionQuestion(t), "answer")
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != 5 || !res.NeedsReview {
		t.Errorf("result = %+v, want fallback", res)
	}
}

func TestGradeRequiresTextRubric(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	q, err := catalog.GetQuestion("mindset-motivation")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Grade(context.Background(), q, "answer"); err == nil {
		t.Error("choice question graded")
	}
}
