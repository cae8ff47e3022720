package mistake

import (
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
)

func TestDetectOptionSelected(t *testing.T) {
	resp := catalog.Response{
		QuestionID: "ideation-first-step",
		Data:       catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "build-first"},
	}
	codes := Detect(resp, nil)
	if len(codes) != 1 || codes[0] != "no-market-research" {
		t.Errorf("Detect = %v, want [no-market-research]", codes)
	}

	safe := catalog.Response{
		QuestionID: "ideation-first-step",
		Data:       catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "talk-to-customers"},
	}
	if codes := Detect(safe, nil); len(codes) != 0 {
		t.Errorf("good answer triggered %v", codes)
	}
}

func TestDetectAtMostOnce(t *testing.T) {
	resp := catalog.Response{
		QuestionID: "ideation-first-step",
		Data:       catalog.ResponseData{Type: catalog.TypeChoice, SelectedOption: "build-first"},
	}
	history := []Record{{Code: "no-market-research", QuestionID: "ideation-first-step"}}
	if codes := Detect(resp, history); len(codes) != 0 {
		t.Errorf("already-triggered mistake fired again: %v", codes)
	}
}

func TestDetectPointsBelow(t *testing.T) {
	weak := catalog.Response{
		QuestionID:    "launch-pitch",
		Data:          catalog.ResponseData{Type: catalog.TypeAIGenerated, Text: "synergy"},
		PointsAwarded: 3,
	}
	codes := Detect(weak, nil)
	if len(codes) != 1 || codes[0] != "weak-pitch" {
		t.Errorf("Detect = %v, want [weak-pitch]", codes)
	}

	// Threshold is strict: exactly 4 points does not trigger.
	border := weak
	border.PointsAwarded = 4
	if codes := Detect(border, nil); len(codes) != 0 {
		t.Errorf("threshold score triggered %v", codes)
	}
}

func TestDetectAllocationOutside(t *testing.T) {
	heavy := catalog.Response{
		QuestionID: "foundation-budget",
		Data: catalog.ResponseData{
			Type: catalog.TypeBudget,
			Allocations: map[string]float64{
				"product": 70, "marketing": 10, "operations": 10, "legal": 5, "reserve": 5,
			},
		},
	}
	codes := Detect(heavy, nil)
	if len(codes) != 1 || codes[0] != "product-heavy-budget" {
		t.Errorf("Detect = %v, want [product-heavy-budget]", codes)
	}

	balanced := heavy
	balanced.Data.Allocations = map[string]float64{
		"product": 40, "marketing": 25, "operations": 10, "legal": 10, "reserve": 15,
	}
	if codes := Detect(balanced, nil); len(codes) != 0 {
		t.Errorf("balanced budget triggered %v", codes)
	}
}

func TestImmediateImpact(t *testing.T) {
	d := ImmediateImpact("underpricing")
	if d.Capital != -1_000 {
		t.Errorf("capital delta = %v, want -1000", d.Capital)
	}
	if !ImmediateImpact("no-such-code").IsZero() {
		t.Error("unknown code has nonzero impact")
	}
}

func TestAnalyze(t *testing.T) {
	history := []Record{
		{Code: "no-market-research", Stage: catalog.StageIdeation, ImmediateCost: 0, CompoundedCost: 5_000},
		{Code: "underpricing", Stage: catalog.StageLaunch, ImmediateCost: 1_000, CompoundedCost: 6_000},
		{Code: "skipped-legal", Stage: catalog.StageFoundation, ImmediateCost: 0, CompoundedCost: 0},
	}

	a := Analyze(history)

	if a.TotalCost != 12_000 {
		t.Errorf("total cost = %v, want 12000", a.TotalCost)
	}
	if a.Worst != "underpricing" {
		t.Errorf("worst = %q, want underpricing", a.Worst)
	}
	// market, financial, and operations each appear once; the tie goes to
	// the category hit first.
	if a.Pattern != catalog.EffectMarket {
		t.Errorf("pattern = %q, want market (first category at top count)", a.Pattern)
	}

	want := len(catalog.Mistakes()) - len(history)
	if len(a.Avoided) != want {
		t.Errorf("avoided = %d, want %d", len(a.Avoided), want)
	}
	for _, code := range a.Avoided {
		if code == "underpricing" {
			t.Error("triggered mistake listed as avoided")
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)
	if a.Worst != "" || a.Pattern != "" || a.TotalCost != 0 {
		t.Errorf("empty analysis = %+v", a)
	}
	if len(a.Avoided) != len(catalog.Mistakes()) {
		t.Errorf("avoided = %d, want all %d", len(a.Avoided), len(catalog.Mistakes()))
	}
}

func TestRecordCompounded(t *testing.T) {
	r := Record{CompoundedStages: []catalog.Stage{catalog.StageLaunch}}
	if !r.Compounded(catalog.StageLaunch) {
		t.Error("fired stage not reported")
	}
	if r.Compounded(catalog.StageGrowth) {
		t.Error("unfired stage reported as fired")
	}
}
