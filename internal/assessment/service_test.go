package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/grading"
	"github.com/venturelab/venturesim/internal/mistake"
)

// scriptedGrader returns fixed points for every free-text answer.
type scriptedGrader struct {
	points float64
	err    error
}

func (g *scriptedGrader) Grade(_ context.Context, _ catalog.Question, _ string) (grading.Result, error) {
	if g.err != nil {
		return grading.Result{}, g.err
	}
	return grading.Result{Points: g.points}, nil
}

func choice(option string) catalog.ResponseData {
	return catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: option}
}

func scenario(option string) catalog.ResponseData {
	return catalog.ResponseData{Type: catalog.TypeScenario, SelectedOption: option}
}

func outcome(option string) catalog.ResponseData {
	return catalog.ResponseData{Type: catalog.TypeOutcome, SelectedOption: option}
}

func TestNew(t *testing.T) {
	a := New()
	if a.Status != StatusInProgress {
		t.Errorf("status = %q", a.Status)
	}
	if a.Stage != catalog.StageMindset {
		t.Errorf("stage = %d, want mindset", a.Stage)
	}
	if a.CurrentQuestionID != "mindset-motivation" {
		t.Errorf("current = %q", a.CurrentQuestionID)
	}
	if a.State.Financial.Capital != 50_000 {
		t.Errorf("capital = %v", a.State.Financial.Capital)
	}
}

func TestSubmitAdvancesAndScores(t *testing.T) {
	svc := &Service{}
	a := New()

	res, err := svc.Submit(context.Background(), a, choice("solve-problem"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Response.PointsAwarded != 10 {
		t.Errorf("points = %v, want 10", res.Response.PointsAwarded)
	}
	if res.Applied.TeamSatisfaction != 5 {
		t.Errorf("applied = %+v", res.Applied)
	}
	if a.CurrentQuestionID != "mindset-risk-appetite" {
		t.Errorf("current = %q", a.CurrentQuestionID)
	}
	if len(a.State.DecisionLog) != 1 {
		t.Errorf("decision log = %d entries", len(a.State.DecisionLog))
	}
}

func TestSubmitRejectsBadAnswers(t *testing.T) {
	svc := &Service{}
	a := New()

	var verr *ErrValidation
	if _, err := svc.Submit(context.Background(), a, choice("not-an-option")); !errors.As(err, &verr) {
		t.Errorf("unknown option: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Submit(context.Background(), a, catalog.ResponseData{Type: catalog.TypeSlider, Value: 50}); !errors.As(err, &verr) {
		t.Errorf("type mismatch: err = %v, want ErrValidation", err)
	}
	if len(a.Responses) != 0 {
		t.Error("rejected answer was recorded")
	}
}

func TestSubmitGraderFallback(t *testing.T) {
	svc := &Service{Grader: &scriptedGrader{err: errors.New("provider down")}}
	a := New()
	a.CurrentQuestionID = "mindset-failure-story"

	res, err := svc.Submit(context.Background(), a, catalog.ResponseData{
		Type: catalog.TypeReflection,
		Text: "I shipped a product nobody wanted and learned to validate first.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Response.PointsAwarded != 5 {
		t.Errorf("fallback points = %v, want 5", res.Response.PointsAwarded)
	}
	if !res.Response.NeedsReview {
		t.Error("fallback answer not flagged for review")
	}
}

func TestSubmitGraderUsed(t *testing.T) {
	svc := &Service{Grader: &scriptedGrader{points: 9}}
	a := New()
	a.CurrentQuestionID = "mindset-failure-story"

	res, err := svc.Submit(context.Background(), a, catalog.ResponseData{
		Type: catalog.TypeReflection,
		Text: "Detailed and specific.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Response.PointsAwarded != 9 || res.Response.NeedsReview {
		t.Errorf("graded response = %+v", res.Response)
	}
}

func TestSubmitDetectsMistake(t *testing.T) {
	svc := &Service{}
	a := New()
	a.Stage = catalog.StageIdeation
	a.CurrentQuestionID = "ideation-first-step"

	res, err := svc.Submit(context.Background(), a, choice("build-first"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.NewMistakes) != 1 || res.NewMistakes[0] != "no-market-research" {
		t.Errorf("mistakes = %v", res.NewMistakes)
	}
	if len(a.Mistakes) != 1 {
		t.Fatalf("history = %v", a.Mistakes)
	}
	if a.State.MistakesTriggered[0] != "no-market-research" {
		t.Errorf("state triggered = %v", a.State.MistakesTriggered)
	}
	// Immediate impact applied: awareness drops 10 but the answer's own
	// consequence raised product completion.
	if a.State.Market.Awareness != 0 {
		t.Errorf("awareness = %v, want 0", a.State.Market.Awareness)
	}
}

func TestStageTransitionAppliesCompounding(t *testing.T) {
	svc := &Service{}
	a := New()
	a.Stage = catalog.StageFoundation
	a.CurrentQuestionID = "foundation-checkpoint"
	a.Mistakes = []mistake.Record{{Code: "no-market-research", Stage: catalog.StageIdeation}}

	capitalBefore := a.State.Financial.Capital
	res, err := svc.Submit(context.Background(), a, outcome("steady"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.StageAdvanced || res.EnteredStage != catalog.StageLaunch {
		t.Fatalf("result = %+v", res)
	}
	// Entering launch fires the scheduled capital -2000 penalty.
	if res.CompoundingCost != 2_000 {
		t.Errorf("compounding cost = %v, want 2000", res.CompoundingCost)
	}
	if a.State.Financial.Capital != capitalBefore-2_000 {
		t.Errorf("capital = %v", a.State.Financial.Capital)
	}
	if !a.Mistakes[0].Compounded(catalog.StageLaunch) {
		t.Error("record not marked")
	}
	if a.CurrentQuestionID != "launch-pricing" {
		t.Errorf("current = %q", a.CurrentQuestionID)
	}
}

func TestFullRun(t *testing.T) {
	svc := &Service{Grader: &scriptedGrader{points: 8}}
	a := New()

	// Deterministic playthrough; free text is graded at 8 points.
	answers := map[string]catalog.ResponseData{
		"mindset-motivation":       choice("solve-problem"),
		"mindset-risk-appetite":    {Type: catalog.TypeSlider, Value: 45},
		"mindset-failure-story":    {Type: catalog.TypeReflection, Text: "Failed, owned it, changed."},
		"mindset-cofounder":        scenario("vest-on-commitment"),
		"ideation-first-step":      choice("talk-to-customers"),
		"ideation-target-customer": {Type: catalog.TypeText, Text: "Small accounting firms using spreadsheets."},
		"ideation-interviews":      choice("twenty-cold"),
		"ideation-market-size":     {Type: catalog.TypeCalculation, Value: 480_000},
		"ideation-pivot-signal":    scenario("probe-pricing"),
		"foundation-budget": {Type: catalog.TypeBudget, Allocations: map[string]float64{
			"product": 40, "marketing": 20, "operations": 15, "legal": 10, "reserve": 15,
		}},
		"foundation-hiring":   choice("one-generalist"),
		"foundation-runway":   {Type: catalog.TypeCalculation, Value: 12.5},
		"foundation-legal":    choice("do-it-now"),
		"foundation-checkpoint": outcome("cut-costs"),
		"launch-pricing":      choice("paid-from-day-one"),
		"launch-pitch":        {Type: catalog.TypeAIGenerated, Text: "We help firms close books faster."},
		"launch-channel":      choice("founder-sales"),
		"launch-customer-time": {Type: catalog.TypeSlider, Value: 40},
		"launch-churn":        scenario("exit-interviews"),
		"growth-team-scaling": choice("hire-to-pain"),
		"growth-budget": {Type: catalog.TypeBudget, Allocations: map[string]float64{
			"acquisition": 35, "retention": 20, "product": 30, "hiring": 15,
		}},
		"growth-cac-payback":       {Type: catalog.TypeCalculation, Value: 10},
		"growth-investor-pressure": scenario("negotiate-target"),
		"scale-term-sheet":         choice("run-process"),
		"scale-dilution":           {Type: catalog.TypeCalculation, Value: 20},
		"scale-systemization":      choice("build-systems"),
		"scale-biggest-risk":       {Type: catalog.TypeText, Text: "Churn concentration in one segment; diversify outbound."},
		"scale-endgame":            outcome("profitable-growth"),
	}

	for i := 0; i < 50 && a.Status == StatusInProgress; i++ {
		data, ok := answers[a.CurrentQuestionID]
		if !ok {
			t.Fatalf("no scripted answer for %q", a.CurrentQuestionID)
		}
		if _, err := svc.Submit(context.Background(), a, data); err != nil {
			t.Fatalf("submit %q: %v", a.CurrentQuestionID, err)
		}
	}

	if a.Status != StatusComplete {
		t.Fatalf("status = %q after playthrough", a.Status)
	}
	if a.CurrentQuestionID != "" {
		t.Errorf("current = %q, want empty", a.CurrentQuestionID)
	}
	// Strong budgeting means the growth-delegation reflection is skipped.
	for _, r := range a.Responses {
		if r.QuestionID == "growth-delegation" {
			t.Error("competency branch not taken")
		}
	}
	if len(a.Mistakes) != 0 {
		t.Errorf("clean run triggered %v", a.Mistakes)
	}

	sum := BuildSummary(a)
	if !sum.Completed || sum.Answered != len(a.Responses) {
		t.Errorf("summary = %+v", sum)
	}
	if sum.OverallScore < 80 {
		t.Errorf("overall = %d, want a strong run", sum.OverallScore)
	}
	if len(sum.Competencies) != len(catalog.AllCompetencies()) {
		t.Errorf("competencies = %d", len(sum.Competencies))
	}
	if len(sum.Mistakes.Avoided) != len(catalog.Mistakes()) {
		t.Errorf("avoided = %d, want all", len(sum.Mistakes.Avoided))
	}
}

func TestSubmitAfterCompletion(t *testing.T) {
	svc := &Service{}
	a := New()
	a.Status = StatusComplete
	a.CurrentQuestionID = ""

	var serr *ErrStateConsistency
	if _, err := svc.Submit(context.Background(), a, choice("solve-problem")); !errors.As(err, &serr) {
		t.Errorf("err = %v, want ErrStateConsistency", err)
	}
}
