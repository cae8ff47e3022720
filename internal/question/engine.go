// Package question selects what to ask next. Progression walks each stage's
// authored order, with branch rules able to jump ahead and branch-only
// questions reachable solely through those jumps.
package question

import (
	"fmt"
	"slices"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/simstate"
)

// Env is everything a branch condition may look at: the simulation state
// after the current answer's consequences, and all responses so far.
type Env struct {
	State     simstate.State
	Responses []catalog.Response
}

// First returns the opening question of a stage, skipping branch-only
// entries. The second return is false for a stage with no askable question,
// which validated reference data never produces.
func First(stage catalog.Stage) (catalog.Question, bool) {
	for _, q := range catalog.QuestionsForStage(stage) {
		if !q.BranchOnly {
			return q, true
		}
	}
	return catalog.Question{}, false
}

// Next decides what follows the just-answered question. Branch rules are
// checked in declaration order and the first match jumps to its target;
// otherwise an explicit follow-up wins, and failing that the next question
// in authored order. The second return is false when the stage is complete.
func Next(current catalog.Question, env Env) (catalog.Question, bool, error) {
	for _, rule := range current.Branches {
		ok, err := Matches(rule.When, env)
		if err != nil {
			return catalog.Question{}, false, err
		}
		if !ok {
			continue
		}
		target, err := catalog.GetQuestion(rule.Target)
		if err != nil {
			return catalog.Question{}, false, fmt.Errorf("question: branch from %q: %w", current.ID, err)
		}
		return target, true, nil
	}

	if current.FollowUp != "" {
		target, err := catalog.GetQuestion(current.FollowUp)
		if err != nil {
			return catalog.Question{}, false, fmt.Errorf("question: follow-up from %q: %w", current.ID, err)
		}
		return target, true, nil
	}

	stage := catalog.QuestionsForStage(current.Stage)
	idx := -1
	for i, q := range stage {
		if q.ID == current.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return catalog.Question{}, false, fmt.Errorf("question: %q not in stage %d", current.ID, current.Stage)
	}
	for _, q := range stage[idx+1:] {
		if !q.BranchOnly {
			return q, true, nil
		}
	}
	return catalog.Question{}, false, nil
}

// Matches evaluates one branch condition. A condition referencing a question
// that has not been answered does not match; that is routine, not an error.
func Matches(c catalog.BranchCondition, env Env) (bool, error) {
	switch c.Kind {
	case catalog.BranchPreviousAnswer:
		for _, r := range env.Responses {
			if r.QuestionID == c.QuestionID {
				return r.Data.SelectedOption == c.OptionID, nil
			}
		}
		return false, nil

	case catalog.BranchStateThreshold:
		v, err := fieldValue(env.State, c.Field)
		if err != nil {
			return false, err
		}
		return compare(v, c.Op, c.Value)

	case catalog.BranchMistakeTrigger:
		return slices.Contains(env.State.MistakesTriggered, c.MistakeCode), nil

	case catalog.BranchCompetencyLevel:
		return scoring.LevelFor(c.Competency, env.Responses) >= c.MinLevel, nil
	}
	return false, fmt.Errorf("question: unknown branch condition kind %q", c.Kind)
}

func fieldValue(s simstate.State, f catalog.StateField) (float64, error) {
	switch f {
	case catalog.FieldCapital:
		return s.Financial.Capital, nil
	case catalog.FieldMonthlyRevenue:
		return s.Financial.MonthlyRevenue, nil
	case catalog.FieldBurnRate:
		return s.Financial.BurnRate, nil
	case catalog.FieldRunwayMonths:
		return s.Financial.RunwayMonths, nil
	case catalog.FieldTeamSize:
		return float64(s.Team.Size), nil
	case catalog.FieldSatisfaction:
		return s.Team.Satisfaction, nil
	case catalog.FieldCustomers:
		return float64(s.Customers.Total), nil
	case catalog.FieldRetention:
		return s.Customers.Retention, nil
	case catalog.FieldCompletion:
		return s.Product.Completion, nil
	case catalog.FieldAwareness:
		return s.Market.Awareness, nil
	case catalog.FieldEfficiency:
		return s.Operations.Efficiency, nil
	}
	return 0, fmt.Errorf("question: unknown state field %q", f)
}

func compare(v float64, op catalog.CompareOp, threshold float64) (bool, error) {
	switch op {
	case catalog.OpLT:
		return v < threshold, nil
	case catalog.OpLTE:
		return v <= threshold, nil
	case catalog.OpGT:
		return v > threshold, nil
	case catalog.OpGTE:
		return v >= threshold, nil
	}
	return false, fmt.Errorf("question: unknown comparison operator %q", op)
}
