package catalog

import (
	"testing"

	"github.com/venturelab/venturesim/internal/simstate"
)

func TestSeedDataValid(t *testing.T) {
	// init would have panicked on invalid data; re-run explicitly so a
	// failure reports through the test instead of a package load crash.
	if _, err := buildRegistry(seedQuestions(), seedMistakes()); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestEveryStageHasQuestions(t *testing.T) {
	for _, s := range AllStages() {
		if len(QuestionsForStage(s)) == 0 {
			t.Errorf("stage %d (%s) has no questions", s, s.Label())
		}
	}
}

func TestGetQuestion(t *testing.T) {
	q, err := GetQuestion("foundation-budget")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if q.Type != TypeBudget {
		t.Errorf("type = %q, want %q", q.Type, TypeBudget)
	}
	if q.Stage != StageFoundation {
		t.Errorf("stage = %d, want %d", q.Stage, StageFoundation)
	}

	if _, err := GetQuestion("no-such-question"); err == nil {
		t.Error("unknown ID returned no error")
	}
}

func TestQuestionsForStageReturnsCopy(t *testing.T) {
	first := QuestionsForStage(StageMindset)
	first[0].ID = "clobbered"
	second := QuestionsForStage(StageMindset)
	if second[0].ID == "clobbered" {
		t.Error("mutating the returned slice reached the registry")
	}
}

func TestMistakeByCode(t *testing.T) {
	m := MistakeByCode("no-market-research")
	if m == nil {
		t.Fatal("known code returned nil")
	}
	if m.Trigger.QuestionID != "ideation-first-step" {
		t.Errorf("trigger question = %q", m.Trigger.QuestionID)
	}
	if MistakeByCode("no-such-mistake") != nil {
		t.Error("unknown code returned a definition")
	}
}

func TestValidateRejectsBrokenData(t *testing.T) {
	base := func() []Question {
		return []Question{
			{
				ID: "q1", Type: TypeChoice, Stage: StageMindset, Prompt: "p",
				Options:      []Option{{ID: "a", Points: 10}, {ID: "b", Points: 0}},
				Competencies: []CompetencyCode{CompResilience},
			},
		}
	}
	tests := []struct {
		name     string
		mutate   func(qs []Question) []Question
		mistakes []MistakeDefinition
	}{
		{
			name: "duplicate question ID",
			mutate: func(qs []Question) []Question {
				return append(qs, qs[0])
			},
		},
		{
			name: "branch target missing",
			mutate: func(qs []Question) []Question {
				qs[0].Branches = []BranchRule{{
					When:   BranchCondition{Kind: BranchPreviousAnswer, QuestionID: "q1", OptionID: "a"},
					Target: "ghost",
				}}
				return qs
			},
		},
		{
			name: "unknown competency",
			mutate: func(qs []Question) []Question {
				qs[0].Competencies = []CompetencyCode{"juggling"}
				return qs
			},
		},
		{
			name: "consequence for missing option",
			mutate: func(qs []Question) []Question {
				qs[0].Consequence = map[string]simstate.Delta{"zzz": {Capital: -1}}
				return qs
			},
		},
		{
			name:   "mistake trigger references missing question",
			mutate: func(qs []Question) []Question { return qs },
			mistakes: []MistakeDefinition{{
				Code:    "m1",
				Trigger: Trigger{Kind: TriggerOptionSelected, QuestionID: "ghost", OptionID: "a"},
			}},
		},
		{
			name:   "compounding stage not after trigger",
			mutate: func(qs []Question) []Question { return qs },
			mistakes: []MistakeDefinition{{
				Code:    "m1",
				Trigger: Trigger{Kind: TriggerOptionSelected, QuestionID: "q1", OptionID: "a"},
				Compounding: []CompoundingEntry{
					{Stage: StageMindset, Effect: simstate.Delta{Capital: -1}, Multiplier: 1},
				},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(tt.mutate(base()), tt.mistakes); err == nil {
				t.Error("validate accepted broken data")
			}
		})
	}
}

func TestMaxPoints(t *testing.T) {
	choice := Question{Type: TypeChoice, Options: []Option{{ID: "a", Points: 3}, {ID: "b", Points: 10}}}
	if got := choice.MaxPoints(); got != 10 {
		t.Errorf("choice MaxPoints = %v, want 10", got)
	}
	calc := Question{Type: TypeCalculation, Calculation: &CalculationRubric{MaxPoints: 8}}
	if got := calc.MaxPoints(); got != 8 {
		t.Errorf("calculation MaxPoints = %v, want 8", got)
	}
}

func TestLevelForPercentage(t *testing.T) {
	tests := []struct {
		pct  int
		want Level
	}{
		{0, LevelEmerging},
		{44, LevelEmerging},
		{45, LevelDeveloping},
		{74, LevelDeveloping},
		{75, LevelProficient},
		{100, LevelProficient},
	}
	for _, tt := range tests {
		if got := LevelForPercentage(tt.pct); got != tt.want {
			t.Errorf("LevelForPercentage(%d) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestNextStage(t *testing.T) {
	s := FirstStage
	var order []Stage
	for {
		order = append(order, s)
		next, ok := NextStage(s)
		if !ok {
			break
		}
		s = next
	}
	if len(order) != 6 || order[5] != StageScale {
		t.Errorf("progression = %v", order)
	}
	if _, ok := NextStage(StageScale); ok {
		t.Error("terminal stage has a successor")
	}
}
