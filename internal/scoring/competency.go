package scoring

import (
	"math"
	"sort"

	"github.com/venturelab/venturesim/internal/catalog"
)

// CompetencyScore is the aggregate for one competency across all responses
// that assess it.
type CompetencyScore struct {
	Code       catalog.CompetencyCode `json:"code"`
	Earned     float64                `json:"earned"`
	Possible   float64                `json:"possible"`
	Percentage int                    `json:"percentage"`
	Level      catalog.Level          `json:"level"`
}

// CompetencyScores recomputes every competency score from the full response
// list. A question assessing several competencies contributes its full
// earned and possible points to each of them. The result is independent of
// response order and includes a zero entry for unassessed competencies.
func CompetencyScores(responses []catalog.Response) map[catalog.CompetencyCode]CompetencyScore {
	scores := make(map[catalog.CompetencyCode]CompetencyScore, 16)
	for _, c := range catalog.AllCompetencies() {
		scores[c] = CompetencyScore{Code: c}
	}

	for _, r := range responses {
		q, err := catalog.GetQuestion(r.QuestionID)
		if err != nil {
			continue
		}
		possible := q.MaxPoints()
		for _, c := range r.CompetenciesAssessed {
			s := scores[c]
			s.Earned += r.PointsAwarded
			s.Possible += possible
			scores[c] = s
		}
	}

	for c, s := range scores {
		s.Percentage = percentage(s.Earned, s.Possible)
		s.Level = catalog.LevelForPercentage(s.Percentage)
		scores[c] = s
	}
	return scores
}

// OverallScore is the percentage of points earned across all responses.
func OverallScore(responses []catalog.Response) int {
	var earned, possible float64
	for _, r := range responses {
		q, err := catalog.GetQuestion(r.QuestionID)
		if err != nil {
			continue
		}
		earned += r.PointsAwarded
		possible += q.MaxPoints()
	}
	return percentage(earned, possible)
}

// Rankings returns all competency scores ordered strongest first.
// Ties break alphabetically by code so the order is deterministic.
func Rankings(scores map[catalog.CompetencyCode]CompetencyScore) []CompetencyScore {
	out := make([]CompetencyScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// AverageLevel is the rounded mean level bucket across assessed
// competencies. Unassessed competencies are skipped.
func AverageLevel(scores map[catalog.CompetencyCode]CompetencyScore) catalog.Level {
	var sum, n int
	for _, s := range scores {
		if s.Possible <= 0 {
			continue
		}
		sum += int(s.Level)
		n++
	}
	if n == 0 {
		return catalog.LevelEmerging
	}
	return catalog.Level(int(math.Round(float64(sum) / float64(n))))
}

// LevelFor returns the current level of one competency given the responses
// so far. Used by branch conditions that gate on demonstrated skill.
func LevelFor(code catalog.CompetencyCode, responses []catalog.Response) catalog.Level {
	var earned, possible float64
	for _, r := range responses {
		for _, c := range r.CompetenciesAssessed {
			if c != code {
				continue
			}
			q, err := catalog.GetQuestion(r.QuestionID)
			if err != nil {
				continue
			}
			earned += r.PointsAwarded
			possible += q.MaxPoints()
			break
		}
	}
	return catalog.LevelForPercentage(percentage(earned, possible))
}

// percentage rounds earned/possible to the nearest whole percent.
// Zero possible points score zero, not a division error.
func percentage(earned, possible float64) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(earned / possible * 100))
}
