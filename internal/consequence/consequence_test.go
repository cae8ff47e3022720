package consequence

import (
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/simstate"
)

func TestApplyAnswerOptionDelta(t *testing.T) {
	q, err := catalog.GetQuestion("foundation-hiring")
	if err != nil {
		t.Fatal(err)
	}
	s := simstate.NewInitialState()

	next, applied := ApplyAnswer(s, q, catalog.Response{
		QuestionID: q.ID,
		Data:       catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "one-generalist"},
	})

	if applied.IsZero() {
		t.Fatal("no delta applied")
	}
	if next.Team.Size != s.Team.Size+1 {
		t.Errorf("team size = %d, want %d", next.Team.Size, s.Team.Size+1)
	}
	if next.Financial.BurnRate != s.Financial.BurnRate+1_000 {
		t.Errorf("burn = %v, want %v", next.Financial.BurnRate, s.Financial.BurnRate+1_000)
	}
	if s.Team.Size != 2 {
		t.Error("input state mutated")
	}
}

func TestApplyAnswerScaledDelta(t *testing.T) {
	q, err := catalog.GetQuestion("foundation-budget") // ScaledConsequence: +5 efficiency
	if err != nil {
		t.Fatal(err)
	}
	s := simstate.NewInitialState()

	full, _ := ApplyAnswer(s, q, catalog.Response{
		QuestionID:    q.ID,
		Data:          catalog.ResponseData{Type: catalog.TypeBudget},
		PointsAwarded: 10,
	})
	if full.Operations.Efficiency != s.Operations.Efficiency+5 {
		t.Errorf("full-score efficiency = %v, want +5", full.Operations.Efficiency)
	}

	half, _ := ApplyAnswer(s, q, catalog.Response{
		QuestionID:    q.ID,
		Data:          catalog.ResponseData{Type: catalog.TypeBudget},
		PointsAwarded: 5,
	})
	if half.Operations.Efficiency != s.Operations.Efficiency+2.5 {
		t.Errorf("half-score efficiency = %v, want +2.5", half.Operations.Efficiency)
	}
}

func TestApplyAnswerNoEffect(t *testing.T) {
	q, err := catalog.GetQuestion("foundation-runway") // no consequence at all
	if err != nil {
		t.Fatal(err)
	}
	s := simstate.NewInitialState()
	next, applied := ApplyAnswer(s, q, catalog.Response{
		QuestionID:    q.ID,
		Data:          catalog.ResponseData{Type: catalog.TypeCalculation, Value: 12.5},
		PointsAwarded: 10,
	})
	if !applied.IsZero() {
		t.Errorf("applied = %+v, want zero", applied)
	}
	if next.Financial.Capital != s.Financial.Capital {
		t.Error("state changed with no consequence")
	}
}

func TestApplyImmediate(t *testing.T) {
	s := simstate.NewInitialState()

	next, cost := ApplyImmediate(s, "underpricing") // immediate: capital -1000
	if cost != 1_000 {
		t.Errorf("cost = %v, want 1000", cost)
	}
	if next.Financial.Capital != s.Financial.Capital-1_000 {
		t.Errorf("capital = %v", next.Financial.Capital)
	}
	if len(next.MistakesTriggered) != 1 || next.MistakesTriggered[0] != "underpricing" {
		t.Errorf("triggered = %v", next.MistakesTriggered)
	}

	// Second trigger of the same code is a no-op.
	again, cost2 := ApplyImmediate(next, "underpricing")
	if cost2 != 0 {
		t.Errorf("repeat cost = %v, want 0", cost2)
	}
	if again.Financial.Capital != next.Financial.Capital {
		t.Error("repeat trigger changed state")
	}
}

func TestApplyCompounding(t *testing.T) {
	// no-market-research schedules launch (customers -10, capital -2000, x1)
	// and growth (capital -2000, retention -5, x1.5).
	s := simstate.NewInitialState()
	history := []mistake.Record{{Code: "no-market-research", Stage: catalog.StageIdeation}}

	atLaunch, cost, updated := ApplyCompounding(s, catalog.StageLaunch, history)
	if cost != 2_000 {
		t.Errorf("launch cost = %v, want 2000", cost)
	}
	if atLaunch.Financial.Capital != s.Financial.Capital-2_000 {
		t.Errorf("capital = %v", atLaunch.Financial.Capital)
	}
	if atLaunch.CompoundedLosses != 2_000 {
		t.Errorf("compounded losses = %v, want 2000", atLaunch.CompoundedLosses)
	}
	if !updated[0].Compounded(catalog.StageLaunch) {
		t.Error("launch entry not marked fired")
	}
	if updated[0].CompoundedCost != 2_000 {
		t.Errorf("record cost = %v, want 2000", updated[0].CompoundedCost)
	}

	// The growth entry multiplies by 1.5: capital -3000.
	atGrowth, growthCost, updated2 := ApplyCompounding(atLaunch, catalog.StageGrowth, updated)
	if growthCost != 3_000 {
		t.Errorf("growth cost = %v, want 3000", growthCost)
	}
	if updated2[0].CompoundedCost != 5_000 {
		t.Errorf("record cost = %v, want 5000", updated2[0].CompoundedCost)
	}
	if atGrowth.CompoundedLosses != 5_000 {
		t.Errorf("compounded losses = %v, want 5000", atGrowth.CompoundedLosses)
	}
}

func TestApplyCompoundingIdempotent(t *testing.T) {
	s := simstate.NewInitialState()
	history := []mistake.Record{{Code: "no-market-research", Stage: catalog.StageIdeation}}

	once, _, updated := ApplyCompounding(s, catalog.StageLaunch, history)
	twice, cost, _ := ApplyCompounding(once, catalog.StageLaunch, updated)

	if cost != 0 {
		t.Errorf("repeat cost = %v, want 0", cost)
	}
	if twice.Financial.Capital != once.Financial.Capital {
		t.Error("repeat transition changed capital")
	}

	// The input history is not mutated either.
	if history[0].CompoundedCost != 0 || len(history[0].CompoundedStages) != 0 {
		t.Errorf("input history mutated: %+v", history[0])
	}
}

func TestApplyCompoundingNothingDue(t *testing.T) {
	s := simstate.NewInitialState()
	history := []mistake.Record{{Code: "no-market-research", Stage: catalog.StageIdeation}}

	// Foundation has no scheduled entry for this mistake.
	next, cost, updated := ApplyCompounding(s, catalog.StageFoundation, history)
	if cost != 0 {
		t.Errorf("cost = %v, want 0", cost)
	}
	if next.Financial.Capital != s.Financial.Capital {
		t.Error("state changed with nothing due")
	}
	if len(updated[0].CompoundedStages) != 0 {
		t.Errorf("stages marked: %v", updated[0].CompoundedStages)
	}
}

func TestApplyCompoundingUnknownCode(t *testing.T) {
	s := simstate.NewInitialState()
	history := []mistake.Record{{Code: "retired-mistake"}}
	next, cost, _ := ApplyCompounding(s, catalog.StageLaunch, history)
	if cost != 0 || next.Financial.Capital != s.Financial.Capital {
		t.Error("unknown code had an effect")
	}
}
