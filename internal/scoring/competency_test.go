package scoring

import (
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
)

func response(questionID string, points float64, comps ...catalog.CompetencyCode) catalog.Response {
	return catalog.Response{
		QuestionID:           questionID,
		PointsAwarded:        points,
		CompetenciesAssessed: comps,
	}
}

func TestCompetencyScores(t *testing.T) {
	// Two questions assess customer discovery, both out of 10: 8 + 6 = 70%.
	responses := []catalog.Response{
		response("ideation-interviews", 8, catalog.CompCustomerDiscovery),
		response("launch-churn", 6, catalog.CompCustomerDiscovery, catalog.CompProductManagement),
	}

	scores := CompetencyScores(responses)

	cd := scores[catalog.CompCustomerDiscovery]
	if cd.Earned != 14 || cd.Possible != 20 {
		t.Errorf("customer discovery = %v/%v, want 14/20", cd.Earned, cd.Possible)
	}
	if cd.Percentage != 70 {
		t.Errorf("percentage = %d, want 70", cd.Percentage)
	}
	if cd.Level != catalog.LevelDeveloping {
		t.Errorf("level = %v, want developing", cd.Level)
	}

	// A question counts fully toward every competency it assesses.
	pm := scores[catalog.CompProductManagement]
	if pm.Earned != 6 || pm.Possible != 10 {
		t.Errorf("product management = %v/%v, want 6/10", pm.Earned, pm.Possible)
	}

	// Unassessed competencies are present with zero scores.
	if s := scores[catalog.CompFundraising]; s.Possible != 0 || s.Level != catalog.LevelEmerging {
		t.Errorf("unassessed competency = %+v, want zero emerging", s)
	}
	if len(scores) != len(catalog.AllCompetencies()) {
		t.Errorf("len = %d, want %d", len(scores), len(catalog.AllCompetencies()))
	}
}

func TestCompetencyScoresOrderIndependent(t *testing.T) {
	a := []catalog.Response{
		response("ideation-interviews", 8, catalog.CompCustomerDiscovery),
		response("launch-churn", 6, catalog.CompCustomerDiscovery),
	}
	b := []catalog.Response{a[1], a[0]}

	sa := CompetencyScores(a)[catalog.CompCustomerDiscovery]
	sb := CompetencyScores(b)[catalog.CompCustomerDiscovery]
	if sa != sb {
		t.Errorf("order changed the score: %+v vs %+v", sa, sb)
	}
}

func TestOverallScore(t *testing.T) {
	responses := []catalog.Response{
		response("ideation-interviews", 8, catalog.CompCustomerDiscovery),
		response("launch-churn", 6, catalog.CompCustomerDiscovery),
	}
	if got := OverallScore(responses); got != 70 {
		t.Errorf("overall = %d, want 70", got)
	}
	if got := OverallScore(nil); got != 0 {
		t.Errorf("overall with no responses = %d, want 0", got)
	}
}

func TestRankingsDeterministicOrder(t *testing.T) {
	responses := []catalog.Response{
		response("ideation-interviews", 10, catalog.CompCustomerDiscovery),
		response("launch-churn", 5, catalog.CompProductManagement),
	}
	ranked := Rankings(CompetencyScores(responses))
	if len(ranked) != len(catalog.AllCompetencies()) {
		t.Fatalf("len = %d", len(ranked))
	}
	if ranked[0].Code != catalog.CompCustomerDiscovery {
		t.Errorf("strongest = %q, want customer-discovery", ranked[0].Code)
	}
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if cur.Percentage > prev.Percentage {
			t.Fatalf("not sorted at %d", i)
		}
		if cur.Percentage == prev.Percentage && cur.Code < prev.Code {
			t.Fatalf("tie not broken by code at %d", i)
		}
	}
}

func TestAverageLevel(t *testing.T) {
	// One proficient (100%) and one emerging (30%) average to developing.
	responses := []catalog.Response{
		response("ideation-interviews", 10, catalog.CompCustomerDiscovery),
		response("launch-churn", 3, catalog.CompProductManagement),
	}
	if got := AverageLevel(CompetencyScores(responses)); got != catalog.LevelDeveloping {
		t.Errorf("average level = %v, want developing", got)
	}
	if got := AverageLevel(CompetencyScores(nil)); got != catalog.LevelEmerging {
		t.Errorf("average level with no responses = %v, want emerging", got)
	}
}

func TestLevelFor(t *testing.T) {
	responses := []catalog.Response{
		response("ideation-interviews", 10, catalog.CompCustomerDiscovery),
	}
	if got := LevelFor(catalog.CompCustomerDiscovery, responses); got != catalog.LevelProficient {
		t.Errorf("level = %v, want proficient", got)
	}
	if got := LevelFor(catalog.CompSales, responses); got != catalog.LevelEmerging {
		t.Errorf("untouched competency level = %v, want emerging", got)
	}
}
