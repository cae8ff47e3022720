package assessment

import (
	"time"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/simstate"
)

// Summary is the final report for a finished (or abandoned) run.
type Summary struct {
	AssessmentID string        `json:"assessmentId"`
	Completed    bool          `json:"completed"`
	OverallScore int           `json:"overallScore"`
	AverageLevel catalog.Level `json:"averageLevel"`
	Duration     time.Duration `json:"duration"`

	// Competencies are ranked strongest first.
	Competencies []scoring.CompetencyScore `json:"competencies"`

	Mistakes   mistake.Analysis `json:"mistakes"`
	FinalState simstate.State   `json:"finalState"`
	Answered   int              `json:"answered"`
}

// BuildSummary computes the full report from the assessment's history.
func BuildSummary(a *Assessment) Summary {
	scores := scoring.CompetencyScores(a.Responses)
	return Summary{
		AssessmentID: a.ID,
		Completed:    a.Status == StatusComplete,
		OverallScore: scoring.OverallScore(a.Responses),
		AverageLevel: scoring.AverageLevel(scores),
		Duration:     a.UpdatedAt.Sub(a.StartedAt),
		Competencies: scoring.Rankings(scores),
		Mistakes:     mistake.Analyze(a.Mistakes),
		FinalState:   a.State,
		Answered:     len(a.Responses),
	}
}
