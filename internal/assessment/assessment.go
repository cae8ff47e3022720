// Package assessment orchestrates a full simulation run: it owns the
// lifecycle from the first mindset question through the final stage,
// wiring the question, scoring, mistake, and consequence engines together
// and recording everything that happens.
package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/question"
	"github.com/venturelab/venturesim/internal/simstate"
)

// Status is the assessment lifecycle state.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// Assessment is the runtime state of one participant's run. It is mutated
// only through the Service; the embedded simulation State stays a value and
// is replaced wholesale on every change.
type Assessment struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	// Stage is the stage currently being played.
	Stage catalog.Stage `json:"stageNumber"`

	// CurrentQuestionID is what the participant is being asked, empty once
	// the assessment completes.
	CurrentQuestionID string `json:"currentQuestionId,omitempty"`

	State     simstate.State     `json:"state"`
	Responses []catalog.Response `json:"responses"`
	Mistakes  []mistake.Record   `json:"mistakes"`

	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New starts a fresh assessment at the first stage with the canonical
// initial state.
func New() *Assessment {
	first, _ := question.First(catalog.FirstStage)
	now := time.Now()
	return &Assessment{
		ID:                uuid.NewString(),
		Status:            StatusInProgress,
		Stage:             catalog.FirstStage,
		CurrentQuestionID: first.ID,
		State:             simstate.NewInitialState(),
		StartedAt:         now,
		UpdatedAt:         now,
	}
}

// CurrentQuestion resolves the question being asked. The second return is
// false once the assessment is complete.
func (a *Assessment) CurrentQuestion() (catalog.Question, bool) {
	if a.Status == StatusComplete || a.CurrentQuestionID == "" {
		return catalog.Question{}, false
	}
	q, err := catalog.GetQuestion(a.CurrentQuestionID)
	if err != nil {
		return catalog.Question{}, false
	}
	return q, true
}

// Progress reports answered and estimated total questions for the current
// stage.
func (a *Assessment) Progress() (answered, total int) {
	return question.Progress(a.Stage, a.CurrentQuestionID, a.Responses)
}

// env builds the branch evaluation environment from the current state.
func (a *Assessment) env() question.Env {
	return question.Env{State: a.State, Responses: a.Responses}
}
