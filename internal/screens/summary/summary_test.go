package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/simstate"
)

func testSummary() assessment.Summary {
	return assessment.Summary{
		AssessmentID: "test-run-1",
		Completed:    true,
		OverallScore: 72,
		Duration:     25 * time.Minute,
		Competencies: []scoring.CompetencyScore{
			{Code: catalog.CompMarketResearch, Earned: 8, Possible: 10, Percentage: 80, Level: catalog.LevelProficient},
			{Code: catalog.CompBudgeting, Earned: 5, Possible: 10, Percentage: 50, Level: catalog.LevelDeveloping},
		},
		Mistakes: mistake.Analysis{
			Triggered: []mistake.Record{
				{Code: "no-market-research", QuestionID: "q", Stage: catalog.StageIdeation, ImmediateCost: 5000},
			},
			Avoided:   []catalog.MistakeCode{"premature-hiring"},
			TotalCost: 5000,
			Worst:     "no-market-research",
			Pattern:   catalog.EffectFinancial,
		},
		FinalState: simstate.NewInitialState(),
		Answered:   14,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Score: 72/100") {
		t.Error("expected overall score in view")
	}
	if !strings.Contains(view, "Market Research") {
		t.Error("expected competency name in view")
	}
}

func TestSummaryScreen_ShowsCleanRunWithoutMistakes(t *testing.T) {
	sum := testSummary()
	sum.Mistakes = mistake.Analysis{}
	s := New(sum)
	view := s.View(80, 24)
	if !strings.Contains(view, "Clean run") {
		t.Error("expected clean-run line when nothing triggered")
	}
}

func TestSummaryScreen_SkipsUnassessedCompetencies(t *testing.T) {
	sum := testSummary()
	sum.Competencies = append(sum.Competencies, scoring.CompetencyScore{Code: catalog.CompSales})
	s := New(sum)
	view := s.View(80, 24)
	if strings.Contains(view, "Sales") {
		t.Error("competency with no assessed questions should not be listed")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
