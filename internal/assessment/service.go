package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/consequence"
	"github.com/venturelab/venturesim/internal/grading"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/question"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/simstate"
)

// Grader scores free-text answers against a question's rubric criteria.
type Grader interface {
	Grade(ctx context.Context, q catalog.Question, answer string) (grading.Result, error)
}

// Recorder persists assessment events and snapshots.
type Recorder interface {
	RecordResponse(ctx context.Context, assessmentID string, r catalog.Response) error
	RecordMistake(ctx context.Context, assessmentID string, rec mistake.Record) error
	RecordStage(ctx context.Context, assessmentID string, entered catalog.Stage, compoundingCost float64) error
	SaveSnapshot(ctx context.Context, a *Assessment) error
}

// Service runs assessments. Grader and Repo are both optional: without a
// grader, free-text answers get the rubric's fallback score and are flagged
// for review; without a repo, runs are in-memory only.
type Service struct {
	Grader Grader
	Repo   Recorder
}

// SubmitResult describes everything one answer caused.
type SubmitResult struct {
	Response catalog.Response

	// Applied is the state delta the answer itself caused, zero when the
	// answer had no consequence.
	Applied simstate.Delta

	// NewMistakes lists mistakes this answer triggered, in detection order.
	NewMistakes []catalog.MistakeCode

	// StageAdvanced is set when the answer finished a stage. CompoundingCost
	// is the capital lost to deferred penalties on entering the new stage.
	StageAdvanced   bool
	EnteredStage    catalog.Stage
	CompoundingCost float64

	// Completed is set when the final stage finished.
	Completed bool

	// Next is the question to ask now, nil when Completed.
	Next *catalog.Question
}

// Submit processes one answer end to end: validate, score, record the
// response, apply consequences, detect mistakes, and move to the next
// question or stage. On persistence failure the in-memory assessment has
// already advanced and the error wraps ErrExternalService.
func (s *Service) Submit(ctx context.Context, a *Assessment, data catalog.ResponseData) (*SubmitResult, error) {
	if a.Status == StatusComplete {
		return nil, &ErrStateConsistency{Reason: "assessment already complete"}
	}
	q, ok := a.CurrentQuestion()
	if !ok {
		return nil, &ErrStateConsistency{Reason: "no current question"}
	}
	if err := validateData(q, data); err != nil {
		return nil, err
	}

	points, needsReview, err := s.score(ctx, q, data)
	if err != nil {
		return nil, err
	}

	resp := catalog.Response{
		QuestionID:           q.ID,
		Stage:                q.Stage,
		Data:                 data,
		PointsAwarded:        points,
		CompetenciesAssessed: q.Competencies,
		NeedsReview:          needsReview,
	}
	a.Responses = append(a.Responses, resp)

	res := &SubmitResult{Response: resp}

	a.State, res.Applied = consequence.ApplyAnswer(a.State, q, resp)
	a.State = simstate.LogDecision(a.State, simstate.Decision{
		Stage:      int(q.Stage),
		QuestionID: q.ID,
		Summary:    summarize(q, data),
	})

	for _, code := range mistake.Detect(resp, a.Mistakes) {
		var cost float64
		a.State, cost = consequence.ApplyImmediate(a.State, code)
		rec := mistake.Record{
			Code:          code,
			QuestionID:    q.ID,
			Stage:         q.Stage,
			ImmediateCost: cost,
		}
		a.Mistakes = append(a.Mistakes, rec)
		res.NewMistakes = append(res.NewMistakes, code)
	}

	if err := s.advance(a, q, res); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()

	if err := s.persist(ctx, a, res); err != nil {
		return res, err
	}
	return res, nil
}

// advance moves the assessment to the next question, crossing stage
// boundaries and applying due compounding penalties as needed.
func (s *Service) advance(a *Assessment, answered catalog.Question, res *SubmitResult) error {
	next, ok, err := question.Next(answered, a.env())
	if err != nil {
		return &ErrStateConsistency{Reason: err.Error()}
	}
	if ok {
		a.CurrentQuestionID = next.ID
		res.Next = &next
		return nil
	}

	// Stage complete. Enter following stages until one offers a question;
	// compounding fires once per stage entered.
	for {
		stage, more := catalog.NextStage(a.Stage)
		if !more {
			a.Status = StatusComplete
			a.CurrentQuestionID = ""
			a.Stage = catalog.StageScale
			res.Completed = true
			return nil
		}

		var cost float64
		a.State, cost, a.Mistakes = consequence.ApplyCompounding(a.State, stage, a.Mistakes)
		a.Stage = stage
		res.StageAdvanced = true
		res.EnteredStage = stage
		res.CompoundingCost += cost

		if first, ok := question.First(stage); ok {
			a.CurrentQuestionID = first.ID
			res.Next = &first
			return nil
		}
	}
}

// score awards points for the answer, routing free-text types through the
// grader and falling back to the rubric's fallback score when grading is
// unavailable.
func (s *Service) score(ctx context.Context, q catalog.Question, data catalog.ResponseData) (points float64, needsReview bool, err error) {
	pts, err := scoring.Score(q, data)
	if err == nil {
		return pts, false, nil
	}
	if !errors.Is(err, scoring.ErrNeedsGrading) {
		return 0, false, &ErrValidation{QuestionID: q.ID, Err: err}
	}

	if s.Grader != nil {
		result, gerr := s.Grader.Grade(ctx, q, data.Text)
		if gerr == nil {
			return result.Points, result.NeedsReview, nil
		}
	}
	fb := grading.Fallback(q)
	return fb.Points, fb.NeedsReview, nil
}

func (s *Service) persist(ctx context.Context, a *Assessment, res *SubmitResult) error {
	if s.Repo == nil {
		return nil
	}
	if err := s.Repo.RecordResponse(ctx, a.ID, res.Response); err != nil {
		return &ErrExternalService{Service: "store", Err: err}
	}
	for _, code := range res.NewMistakes {
		for _, rec := range a.Mistakes {
			if rec.Code == code {
				if err := s.Repo.RecordMistake(ctx, a.ID, rec); err != nil {
					return &ErrExternalService{Service: "store", Err: err}
				}
				break
			}
		}
	}
	if res.StageAdvanced {
		if err := s.Repo.RecordStage(ctx, a.ID, res.EnteredStage, res.CompoundingCost); err != nil {
			return &ErrExternalService{Service: "store", Err: err}
		}
	}
	if err := s.Repo.SaveSnapshot(ctx, a); err != nil {
		return &ErrExternalService{Service: "store", Err: err}
	}
	return nil
}

// validateData checks the payload shape before any scoring happens.
func validateData(q catalog.Question, data catalog.ResponseData) error {
	if data.Type != q.Type {
		return &ErrValidation{QuestionID: q.ID, Err: fmt.Errorf("answer type %q does not match question type %q", data.Type, q.Type)}
	}
	switch q.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		if data.SelectedOption == "" {
			return &ErrValidation{QuestionID: q.ID, Err: fmt.Errorf("no option selected")}
		}
		if q.OptionByID(data.SelectedOption) == nil {
			return &ErrValidation{QuestionID: q.ID, Err: fmt.Errorf("unknown option %q", data.SelectedOption)}
		}
	case catalog.TypeBudget:
		if len(data.Allocations) == 0 {
			return &ErrValidation{QuestionID: q.ID, Err: fmt.Errorf("no allocations")}
		}
	case catalog.TypeText, catalog.TypeReflection, catalog.TypeAIGenerated:
		if strings.TrimSpace(data.Text) == "" {
			return &ErrValidation{QuestionID: q.ID, Err: fmt.Errorf("empty answer")}
		}
	}
	return nil
}

// summarize renders a short decision-log line for the answer.
func summarize(q catalog.Question, data catalog.ResponseData) string {
	switch q.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		if o := q.OptionByID(data.SelectedOption); o != nil {
			return o.Label
		}
		return data.SelectedOption
	case catalog.TypeBudget:
		return "allocated budget"
	case catalog.TypeCalculation, catalog.TypeSlider:
		return fmt.Sprintf("answered %g", data.Value)
	default:
		text := strings.TrimSpace(data.Text)
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		return text
	}
}
