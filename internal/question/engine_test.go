package question

import (
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/simstate"
)

func mustQuestion(t *testing.T, id string) catalog.Question {
	t.Helper()
	q, err := catalog.GetQuestion(id)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func choiceResponse(questionID, option string) catalog.Response {
	return catalog.Response{
		QuestionID: questionID,
		Data:       catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: option},
	}
}

func TestFirstSkipsBranchOnly(t *testing.T) {
	q, ok := First(catalog.StageLaunch)
	if !ok || q.ID != "launch-pricing" {
		t.Errorf("First(launch) = %q, %v", q.ID, ok)
	}
}

func TestNextDefaultOrder(t *testing.T) {
	env := Env{State: simstate.NewInitialState()}
	q, ok, err := Next(mustQuestion(t, "mindset-motivation"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "mindset-risk-appetite" {
		t.Errorf("next = %q, %v", q.ID, ok)
	}
}

func TestNextStageComplete(t *testing.T) {
	env := Env{State: simstate.NewInitialState()}
	_, ok, err := Next(mustQuestion(t, "mindset-cofounder"), env)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("last question of the stage has a successor")
	}
}

func TestNextSkipsBranchOnlyInDefaultOrder(t *testing.T) {
	// launch-monetize follows launch-churn in authored order but is only
	// reachable through the underpricing branch.
	env := Env{State: simstate.NewInitialState()}
	_, ok, err := Next(mustQuestion(t, "launch-churn"), env)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("branch-only question reached on the default path")
	}
}

func TestNextPreviousAnswerBranch(t *testing.T) {
	// A build-first answer routes past the interview question.
	env := Env{
		State:     simstate.NewInitialState(),
		Responses: []catalog.Response{choiceResponse("ideation-first-step", "build-first")},
	}
	q, ok, err := Next(mustQuestion(t, "ideation-target-customer"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "ideation-market-size" {
		t.Errorf("next = %q, want ideation-market-size", q.ID)
	}

	// Any other answer keeps the default order.
	env.Responses = []catalog.Response{choiceResponse("ideation-first-step", "talk-to-customers")}
	q, ok, err = Next(mustQuestion(t, "ideation-target-customer"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "ideation-interviews" {
		t.Errorf("next = %q, want ideation-interviews", q.ID)
	}
}

func TestNextPreviousAnswerUnanswered(t *testing.T) {
	// The referenced question was never asked: the branch does not match.
	env := Env{State: simstate.NewInitialState()}
	q, ok, err := Next(mustQuestion(t, "ideation-target-customer"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "ideation-interviews" {
		t.Errorf("next = %q, want ideation-interviews", q.ID)
	}
}

func TestNextMistakeBranch(t *testing.T) {
	s := simstate.NewInitialState()
	s, _ = simstate.TriggerMistake(s, "underpricing")
	env := Env{State: s}

	q, ok, err := Next(mustQuestion(t, "launch-customer-time"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "launch-monetize" {
		t.Errorf("next = %q, want launch-monetize", q.ID)
	}
}

func TestNextStateThresholdBranch(t *testing.T) {
	s := simstate.NewInitialState()
	s = simstate.ApplyConsequence(s, simstate.Delta{Capital: -60_000}) // now negative
	env := Env{State: s}

	q, ok, err := Next(mustQuestion(t, "scale-biggest-risk"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "scale-insolvency" {
		t.Errorf("next = %q, want scale-insolvency", q.ID)
	}

	// Solvent ventures proceed to the endgame instead.
	env.State = simstate.NewInitialState()
	q, _, err = Next(mustQuestion(t, "scale-biggest-risk"), env)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != "scale-endgame" {
		t.Errorf("next = %q, want scale-endgame", q.ID)
	}
}

func TestNextCompetencyLevelBranch(t *testing.T) {
	// A strong budgeting score routes past the remedial reflection.
	strong := catalog.Response{
		QuestionID:           "foundation-budget",
		PointsAwarded:        9,
		CompetenciesAssessed: []catalog.CompetencyCode{catalog.CompBudgeting},
	}
	env := Env{State: simstate.NewInitialState(), Responses: []catalog.Response{strong}}

	q, ok, err := Next(mustQuestion(t, "growth-cac-payback"), env)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || q.ID != "growth-investor-pressure" {
		t.Errorf("next = %q, want growth-investor-pressure", q.ID)
	}

	// A weak score takes the default path through the reflection.
	weak := strong
	weak.PointsAwarded = 2
	env.Responses = []catalog.Response{weak}
	q, _, err = Next(mustQuestion(t, "growth-cac-payback"), env)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != "growth-delegation" {
		t.Errorf("next = %q, want growth-delegation", q.ID)
	}
}

func TestProgress(t *testing.T) {
	responses := []catalog.Response{
		{QuestionID: "launch-pricing", Stage: catalog.StageLaunch},
		{QuestionID: "launch-pitch", Stage: catalog.StageLaunch},
	}

	answered, total := Progress(catalog.StageLaunch, "launch-channel", responses)
	if answered != 2 {
		t.Errorf("answered = %d, want 2", answered)
	}
	// Remaining default path: channel, customer-time, churn (monetize is
	// branch-only), so 2 answered + 3 ahead.
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}

	// Completed stage: total settles at the answered count.
	answered, total = Progress(catalog.StageLaunch, "", responses)
	if answered != 2 || total != 2 {
		t.Errorf("completed stage = %d/%d, want 2/2", answered, total)
	}
}
