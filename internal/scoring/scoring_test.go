package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
)

func mustQuestion(t *testing.T, id string) catalog.Question {
	t.Helper()
	q, err := catalog.GetQuestion(id)
	if err != nil {
		t.Fatalf("GetQuestion(%q): %v", id, err)
	}
	return q
}

func TestScoreChoice(t *testing.T) {
	q := mustQuestion(t, "ideation-first-step")

	got, err := Score(q, catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "talk-to-customers"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 10 {
		t.Errorf("points = %v, want 10", got)
	}

	if _, err := Score(q, catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "nonexistent"}); err == nil {
		t.Error("unknown option accepted")
	}
}

func TestScoreTypeMismatch(t *testing.T) {
	q := mustQuestion(t, "ideation-first-step")
	if _, err := Score(q, catalog.ResponseData{Type: catalog.TypeSlider, Value: 50}); err == nil {
		t.Error("mismatched response type accepted")
	}
}

func TestScoreBudget(t *testing.T) {
	q := mustQuestion(t, "foundation-budget")

	// Every category inside its ideal band earns full points.
	ideal := map[string]float64{
		"product": 40, "marketing": 20, "operations": 15, "legal": 10, "reserve": 15,
	}
	got, err := Score(q, catalog.ResponseData{Type: catalog.TypeBudget, Allocations: ideal})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != q.Budget.MaxPoints {
		t.Errorf("ideal allocation = %v points, want %v", got, q.Budget.MaxPoints)
	}

	// Pushing one category outside its band loses part of that category's
	// weight but nothing else.
	skewed := map[string]float64{
		"product": 60, "marketing": 15, "operations": 10, "legal": 5, "reserve": 10,
	}
	skewedPts, err := Score(q, catalog.ResponseData{Type: catalog.TypeBudget, Allocations: skewed})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if skewedPts >= got {
		t.Errorf("out-of-band allocation scored %v, not below ideal %v", skewedPts, got)
	}
	if skewedPts <= 0 {
		t.Errorf("moderately skewed allocation scored %v, want partial credit", skewedPts)
	}
}

func TestScoreBudgetRejectsBadInput(t *testing.T) {
	q := mustQuestion(t, "foundation-budget")
	tests := []struct {
		name  string
		alloc map[string]float64
	}{
		{"does not sum to 100", map[string]float64{"product": 40, "marketing": 40}},
		{"unknown category", map[string]float64{"product": 40, "marketing": 20, "operations": 15, "legal": 10, "yachts": 15}},
		{"negative allocation", map[string]float64{"product": 110, "marketing": -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Score(q, catalog.ResponseData{Type: catalog.TypeBudget, Allocations: tt.alloc}); err == nil {
				t.Error("bad allocation accepted")
			}
		})
	}
}

func TestScoreCalculation(t *testing.T) {
	q := mustQuestion(t, "foundation-runway")

	exact, err := Score(q, catalog.ResponseData{Type: catalog.TypeCalculation, Value: 12.5})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if exact != 10 {
		t.Errorf("exact answer = %v points, want 10", exact)
	}

	within, _ := Score(q, catalog.ResponseData{Type: catalog.TypeCalculation, Value: 12.45})
	if within != 10 {
		t.Errorf("within-tolerance answer = %v points, want 10", within)
	}

	wrong, _ := Score(q, catalog.ResponseData{Type: catalog.TypeCalculation, Value: 20})
	if wrong != 0 {
		t.Errorf("wrong answer = %v points, want 0", wrong)
	}

	if _, err := Score(q, catalog.ResponseData{Type: catalog.TypeCalculation, Value: math.NaN()}); err == nil {
		t.Error("NaN answer accepted")
	}
}

func TestScoreSlider(t *testing.T) {
	q := mustQuestion(t, "mindset-risk-appetite") // band 30-65

	full, err := Score(q, catalog.ResponseData{Type: catalog.TypeSlider, Value: 45})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if full != 10 {
		t.Errorf("in-band value = %v points, want 10", full)
	}

	// 10 points outside the band on a 25-point decay: 60% credit.
	partial, _ := Score(q, catalog.ResponseData{Type: catalog.TypeSlider, Value: 75})
	if math.Abs(partial-6) > 1e-9 {
		t.Errorf("value 75 = %v points, want 6", partial)
	}

	zero, _ := Score(q, catalog.ResponseData{Type: catalog.TypeSlider, Value: 95})
	if zero != 0 {
		t.Errorf("far out-of-band value = %v points, want 0", zero)
	}

	if _, err := Score(q, catalog.ResponseData{Type: catalog.TypeSlider, Value: 120}); err == nil {
		t.Error("out-of-range value accepted")
	}
}

func TestScoreTextNeedsGrading(t *testing.T) {
	q := mustQuestion(t, "mindset-failure-story")
	_, err := Score(q, catalog.ResponseData{Type: catalog.TypeReflection, Text: "I failed."})
	if !errors.Is(err, ErrNeedsGrading) {
		t.Errorf("err = %v, want ErrNeedsGrading", err)
	}
}

func TestDeterministic(t *testing.T) {
	if !Deterministic(catalog.TypeBudget) {
		t.Error("budget should be deterministic")
	}
	if Deterministic(catalog.TypeAIGenerated) {
		t.Error("ai-generated should not be deterministic")
	}
}
