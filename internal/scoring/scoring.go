// Package scoring turns answers into points and aggregates points into
// competency scores. All deterministic rubric types are scored here;
// free-text types are scored by the grading service and only aggregated here.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/expr"
)

// ErrNeedsGrading is returned by Score for free-text question types, whose
// points come from the grading service rather than a deterministic rubric.
var ErrNeedsGrading = errors.New("scoring: question type requires grading")

// Allocations outside a rubric band lose score linearly with distance and
// reach zero this many percentage points outside the band.
const bandDecayRange = 25.0

// Tolerance when checking that budget allocations sum to 100 percent.
const allocationSumTolerance = 0.01

// Deterministic reports whether the question type is scored locally.
func Deterministic(t catalog.QuestionType) bool {
	switch t {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome,
		catalog.TypeBudget, catalog.TypeCalculation, catalog.TypeSlider:
		return true
	}
	return false
}

// Score awards points for a deterministically scored answer. The response
// data's type must match the question's type.
func Score(q catalog.Question, data catalog.ResponseData) (float64, error) {
	if data.Type != q.Type {
		return 0, fmt.Errorf("scoring: response type %q does not match question %q type %q", data.Type, q.ID, q.Type)
	}
	switch q.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		return scoreChoice(q, data.SelectedOption)
	case catalog.TypeBudget:
		return scoreBudget(q, data.Allocations)
	case catalog.TypeCalculation:
		return scoreCalculation(q, data.Value)
	case catalog.TypeSlider:
		return scoreSlider(q, data.Value)
	case catalog.TypeText, catalog.TypeReflection, catalog.TypeAIGenerated:
		return 0, ErrNeedsGrading
	}
	return 0, fmt.Errorf("scoring: unknown question type %q", q.Type)
}

func scoreChoice(q catalog.Question, optionID string) (float64, error) {
	o := q.OptionByID(optionID)
	if o == nil {
		return 0, fmt.Errorf("scoring: question %q has no option %q", q.ID, optionID)
	}
	return o.Points, nil
}

// scoreBudget scores a percentage allocation against the rubric bands.
// Each category earns its full weight inside the ideal band and decays
// linearly to zero outside it; the weighted fractions are normalized to the
// rubric's point scale.
func scoreBudget(q catalog.Question, allocations map[string]float64) (float64, error) {
	r := q.Budget
	if r == nil {
		return 0, fmt.Errorf("scoring: question %q has no budget rubric", q.ID)
	}

	known := make(map[string]bool, len(r.Categories))
	for _, c := range r.Categories {
		known[c.Name] = true
	}
	var sum float64
	for name, pct := range allocations {
		if !known[name] {
			return 0, fmt.Errorf("scoring: question %q has no budget category %q", q.ID, name)
		}
		if pct < 0 || pct > 100 {
			return 0, fmt.Errorf("scoring: allocation for %q is %v, must be within [0,100]", name, pct)
		}
		sum += pct
	}
	if math.Abs(sum-100) > allocationSumTolerance {
		return 0, fmt.Errorf("scoring: allocations sum to %v, must sum to 100", sum)
	}

	var earned, totalWeight float64
	for _, c := range r.Categories {
		totalWeight += c.Weight
		earned += c.Weight * bandFraction(allocations[c.Name], c.Min, c.Max)
	}
	if totalWeight == 0 {
		return 0, nil
	}
	return earned / totalWeight * r.MaxPoints, nil
}

func scoreCalculation(q catalog.Question, value float64) (float64, error) {
	r := q.Calculation
	if r == nil {
		return 0, fmt.Errorf("scoring: question %q has no calculation rubric", q.ID)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("scoring: answer must be a finite number")
	}
	expected, err := expr.Eval(r.Expression, r.Variables)
	if err != nil {
		return 0, fmt.Errorf("scoring: question %q rubric: %w", q.ID, err)
	}
	if math.Abs(value-expected) <= r.Tolerance {
		return r.MaxPoints, nil
	}
	return r.MinPoints, nil
}

func scoreSlider(q catalog.Question, value float64) (float64, error) {
	r := q.Slider
	if r == nil {
		return 0, fmt.Errorf("scoring: question %q has no slider rubric", q.ID)
	}
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("scoring: slider value %v outside [0,100]", value)
	}
	return bandFraction(value, r.Min, r.Max) * r.MaxPoints, nil
}

// bandFraction returns 1 inside [min,max], decaying linearly to 0 at
// bandDecayRange percentage points outside the band.
func bandFraction(v, min, max float64) float64 {
	var distance float64
	switch {
	case v < min:
		distance = min - v
	case v > max:
		distance = v - max
	default:
		return 1
	}
	if distance >= bandDecayRange {
		return 0
	}
	return 1 - distance/bandDecayRange
}
