package catalog

import (
	"fmt"
	"strings"

	"github.com/venturelab/venturesim/internal/expr"
)

// validate performs all structural checks on the reference data.
// Returns a combined error describing every problem found, or nil.
func validate(questions []Question, mistakes []MistakeDefinition) error {
	var errs []string

	compSet := make(map[CompetencyCode]bool)
	for _, c := range AllCompetencies() {
		compSet[c] = true
	}

	idSet := make(map[string]bool, len(questions))
	stageOf := make(map[string]Stage, len(questions))
	stageSet := make(map[Stage]bool)
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID %q", q.ID))
		}
		idSet[q.ID] = true
		stageOf[q.ID] = q.Stage
		stageSet[q.Stage] = true
	}

	for _, s := range AllStages() {
		if !stageSet[s] {
			errs = append(errs, fmt.Sprintf("stage %d (%s) has no questions", s, s.Label()))
		}
	}

	targeted := make(map[string]bool)
	for _, q := range questions {
		for _, b := range q.Branches {
			targeted[b.Target] = true
		}
	}

	for _, q := range questions {
		prefix := fmt.Sprintf("question %q", q.ID)

		if q.BranchOnly && !targeted[q.ID] {
			errs = append(errs, fmt.Sprintf("%s: branch-only but no branch targets it", prefix))
		}
		if !q.Stage.Valid() {
			errs = append(errs, fmt.Sprintf("%s: invalid stage %d", prefix, q.Stage))
		}
		if len(q.Competencies) == 0 {
			errs = append(errs, fmt.Sprintf("%s: assesses no competencies", prefix))
		}
		for _, c := range q.Competencies {
			if !compSet[c] {
				errs = append(errs, fmt.Sprintf("%s: unknown competency %q", prefix, c))
			}
		}
		if q.MaxPoints() <= 0 {
			errs = append(errs, fmt.Sprintf("%s: max points must be > 0", prefix))
		}

		errs = append(errs, validateRubric(q, prefix)...)

		for id := range q.Consequence {
			if q.OptionByID(id) == nil {
				errs = append(errs, fmt.Sprintf("%s: consequence for nonexistent option %q", prefix, id))
			}
		}

		if q.FollowUp != "" {
			if !idSet[q.FollowUp] {
				errs = append(errs, fmt.Sprintf("%s: follow-up references nonexistent question %q", prefix, q.FollowUp))
			} else if stageOf[q.FollowUp] != q.Stage {
				errs = append(errs, fmt.Sprintf("%s: follow-up %q is in another stage", prefix, q.FollowUp))
			}
		}

		for i, b := range q.Branches {
			bp := fmt.Sprintf("%s branch %d", prefix, i)
			if !idSet[b.Target] {
				errs = append(errs, fmt.Sprintf("%s: target %q does not exist", bp, b.Target))
			} else if stageOf[b.Target] != q.Stage {
				errs = append(errs, fmt.Sprintf("%s: target %q is in another stage", bp, b.Target))
			}
			if b.Target == q.ID {
				errs = append(errs, fmt.Sprintf("%s: targets itself", bp))
			}
			errs = append(errs, validateCondition(b.When, bp, idSet, compSet)...)
		}
	}

	codeSet := make(map[MistakeCode]bool, len(mistakes))
	for _, m := range mistakes {
		prefix := fmt.Sprintf("mistake %q", m.Code)

		if codeSet[m.Code] {
			errs = append(errs, fmt.Sprintf("duplicate mistake code %q", m.Code))
		}
		codeSet[m.Code] = true

		if !idSet[m.Trigger.QuestionID] {
			errs = append(errs, fmt.Sprintf("%s: trigger references nonexistent question %q", prefix, m.Trigger.QuestionID))
			continue
		}
		tq := stageOf[m.Trigger.QuestionID]

		switch m.Trigger.Kind {
		case TriggerOptionSelected:
			q, _ := findQuestion(questions, m.Trigger.QuestionID)
			if q.OptionByID(m.Trigger.OptionID) == nil {
				errs = append(errs, fmt.Sprintf("%s: trigger option %q not on question %q", prefix, m.Trigger.OptionID, m.Trigger.QuestionID))
			}
		case TriggerPointsBelow:
			if m.Trigger.Points <= 0 {
				errs = append(errs, fmt.Sprintf("%s: points-below threshold must be > 0", prefix))
			}
		case TriggerAllocation:
			q, _ := findQuestion(questions, m.Trigger.QuestionID)
			if q.Budget == nil {
				errs = append(errs, fmt.Sprintf("%s: allocation trigger on non-budget question %q", prefix, m.Trigger.QuestionID))
			} else if !hasCategory(q.Budget, m.Trigger.Category) {
				errs = append(errs, fmt.Sprintf("%s: category %q not in question %q rubric", prefix, m.Trigger.Category, m.Trigger.QuestionID))
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown trigger kind %q", prefix, m.Trigger.Kind))
		}

		prev := Stage(-100)
		for i, ce := range m.Compounding {
			cp := fmt.Sprintf("%s compounding %d", prefix, i)
			if !ce.Stage.Valid() {
				errs = append(errs, fmt.Sprintf("%s: invalid stage %d", cp, ce.Stage))
			}
			if ce.Stage <= tq {
				errs = append(errs, fmt.Sprintf("%s: stage %d not after trigger stage %d", cp, ce.Stage, tq))
			}
			if ce.Stage <= prev {
				errs = append(errs, fmt.Sprintf("%s: entries not in ascending stage order", cp))
			}
			prev = ce.Stage
			if ce.Multiplier <= 0 {
				errs = append(errs, fmt.Sprintf("%s: multiplier must be > 0, got %v", cp, ce.Multiplier))
			}
			if ce.Effect.IsZero() {
				errs = append(errs, fmt.Sprintf("%s: empty effect", cp))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateRubric checks that exactly the rubric matching the question type
// is present and internally consistent.
func validateRubric(q Question, prefix string) []string {
	var errs []string
	switch q.Type {
	case TypeChoice, TypeScenario, TypeOutcome:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least two options", prefix))
		}
		optIDs := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if optIDs[o.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option ID %q", prefix, o.ID))
			}
			optIDs[o.ID] = true
			if o.Points < 0 {
				errs = append(errs, fmt.Sprintf("%s: option %q has negative points", prefix, o.ID))
			}
		}
	case TypeBudget:
		if q.Budget == nil {
			errs = append(errs, fmt.Sprintf("%s: budget question without rubric", prefix))
			break
		}
		for _, c := range q.Budget.Categories {
			if c.Min < 0 || c.Max > 100 || c.Min > c.Max {
				errs = append(errs, fmt.Sprintf("%s: category %q band [%v,%v] invalid", prefix, c.Name, c.Min, c.Max))
			}
			if c.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("%s: category %q weight must be > 0", prefix, c.Name))
			}
		}
	case TypeCalculation:
		if q.Calculation == nil {
			errs = append(errs, fmt.Sprintf("%s: calculation question without rubric", prefix))
			break
		}
		if _, err := expr.Eval(q.Calculation.Expression, q.Calculation.Variables); err != nil {
			errs = append(errs, fmt.Sprintf("%s: rubric expression: %v", prefix, err))
		}
		if q.Calculation.Tolerance < 0 {
			errs = append(errs, fmt.Sprintf("%s: negative tolerance", prefix))
		}
		if q.Calculation.MinPoints > q.Calculation.MaxPoints {
			errs = append(errs, fmt.Sprintf("%s: min points exceed max points", prefix))
		}
	case TypeSlider:
		if q.Slider == nil {
			errs = append(errs, fmt.Sprintf("%s: slider question without rubric", prefix))
		} else if q.Slider.Min < 0 || q.Slider.Max > 100 || q.Slider.Min > q.Slider.Max {
			errs = append(errs, fmt.Sprintf("%s: slider band [%v,%v] invalid", prefix, q.Slider.Min, q.Slider.Max))
		}
	case TypeText, TypeReflection, TypeAIGenerated:
		if q.Text == nil {
			errs = append(errs, fmt.Sprintf("%s: free-text question without rubric", prefix))
		} else if q.Text.Fallback < 0 || q.Text.Fallback > q.Text.MaxPoints {
			errs = append(errs, fmt.Sprintf("%s: fallback score outside [0,max]", prefix))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
	}
	return errs
}

// validateCondition checks one branch condition's references.
func validateCondition(c BranchCondition, prefix string, idSet map[string]bool, compSet map[CompetencyCode]bool) []string {
	var errs []string
	switch c.Kind {
	case BranchPreviousAnswer:
		if !idSet[c.QuestionID] {
			errs = append(errs, fmt.Sprintf("%s: condition references nonexistent question %q", prefix, c.QuestionID))
		}
		if c.OptionID == "" {
			errs = append(errs, fmt.Sprintf("%s: previous-answer condition without option", prefix))
		}
	case BranchStateThreshold:
		if !validField(c.Field) {
			errs = append(errs, fmt.Sprintf("%s: unknown state field %q", prefix, c.Field))
		}
		switch c.Op {
		case OpLT, OpLTE, OpGT, OpGTE:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown operator %q", prefix, c.Op))
		}
	case BranchMistakeTrigger:
		if c.MistakeCode == "" {
			errs = append(errs, fmt.Sprintf("%s: mistake-triggered condition without code", prefix))
		}
	case BranchCompetencyLevel:
		if !compSet[c.Competency] {
			errs = append(errs, fmt.Sprintf("%s: unknown competency %q", prefix, c.Competency))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown condition kind %q", prefix, c.Kind))
	}
	return errs
}

func validField(f StateField) bool {
	switch f {
	case FieldCapital, FieldMonthlyRevenue, FieldBurnRate, FieldRunwayMonths,
		FieldTeamSize, FieldSatisfaction, FieldCustomers, FieldRetention,
		FieldCompletion, FieldAwareness, FieldEfficiency:
		return true
	}
	return false
}

func findQuestion(questions []Question, id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func hasCategory(b *BudgetRubric, name string) bool {
	for _, c := range b.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
