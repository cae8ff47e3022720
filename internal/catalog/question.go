package catalog

import "github.com/venturelab/venturesim/internal/simstate"

// QuestionType discriminates the nine question shapes.
type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeChoice      QuestionType = "choice"
	TypeScenario    QuestionType = "scenario"
	TypeBudget      QuestionType = "budget"
	TypeCalculation QuestionType = "calculation"
	TypeSlider      QuestionType = "slider"
	TypeReflection  QuestionType = "reflection"
	TypeOutcome     QuestionType = "outcome"
	TypeAIGenerated QuestionType = "ai-generated"
)

// AllQuestionTypes returns every defined question type.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		TypeText, TypeChoice, TypeScenario, TypeBudget, TypeCalculation,
		TypeSlider, TypeReflection, TypeOutcome, TypeAIGenerated,
	}
}

// Option is one selectable answer for choice-style questions. Options are
// ordered as authored.
type Option struct {
	ID     string
	Label  string
	Points float64
}

// BudgetCategory is one line of a budget allocation rubric. Min and Max are
// the ideal band in percent; allocations inside the band earn full weight,
// outside it a penalty proportional to the distance.
type BudgetCategory struct {
	Name   string
	Min    float64
	Max    float64
	Weight float64
}

// BudgetRubric scores a budget allocation question.
type BudgetRubric struct {
	Categories []BudgetCategory
	MaxPoints  float64
}

// CalculationRubric scores a numeric calculation question. Expression is a
// whitelisted arithmetic formula over the named Variables; the expected
// answer is its evaluation. Answers within Tolerance of the expected value
// earn MaxPoints, everything else MinPoints.
type CalculationRubric struct {
	Expression string
	Variables  map[string]float64
	Tolerance  float64
	MaxPoints  float64
	MinPoints  float64
}

// SliderRubric scores a 0-100 slider question against an ideal band, with
// linear decay outside it (same shape as a single budget category).
type SliderRubric struct {
	Min       float64
	Max       float64
	MaxPoints float64
}

// TextRubric scores free-text questions. The rubric text is handed to the
// grading service; Fallback is the deterministic score substituted when
// grading is unavailable.
type TextRubric struct {
	Criteria  string
	MaxPoints float64
	Fallback  float64
}

// CompareOp is a comparison operator for state-threshold branch conditions.
type CompareOp string

const (
	OpLT  CompareOp = "lt"
	OpLTE CompareOp = "lte"
	OpGT  CompareOp = "gt"
	OpGTE CompareOp = "gte"
)

// StateField names a numeric simulation state field addressable from a
// branch condition.
type StateField string

const (
	FieldCapital        StateField = "capital"
	FieldMonthlyRevenue StateField = "monthlyRevenue"
	FieldBurnRate       StateField = "burnRate"
	FieldRunwayMonths   StateField = "runwayMonths"
	FieldTeamSize       StateField = "teamSize"
	FieldSatisfaction   StateField = "teamSatisfaction"
	FieldCustomers      StateField = "customers"
	FieldRetention      StateField = "retention"
	FieldCompletion     StateField = "productCompletion"
	FieldAwareness      StateField = "marketAwareness"
	FieldEfficiency     StateField = "operationsEfficiency"
)

// BranchKind discriminates the branch condition variants.
type BranchKind string

const (
	BranchPreviousAnswer  BranchKind = "previous-answer"
	BranchStateThreshold  BranchKind = "state-threshold"
	BranchMistakeTrigger  BranchKind = "mistake-triggered"
	BranchCompetencyLevel BranchKind = "competency-level"
)

// BranchCondition is a tagged union; Kind selects which field group applies.
// Conditions are pure predicates over (responses so far, current state) and
// are evaluated by the question engine.
type BranchCondition struct {
	Kind BranchKind

	// previous-answer: the named question's response selected OptionID.
	QuestionID string
	OptionID   string

	// state-threshold: Field Op Value against the current state.
	Field StateField
	Op    CompareOp
	Value float64

	// mistake-triggered: the mistake code is in the triggered set.
	MistakeCode string

	// competency-level: the competency has reached at least MinLevel.
	Competency CompetencyCode
	MinLevel   Level
}

// BranchRule jumps to Target when its condition matches. Rules are evaluated
// in declaration order and the first match wins.
type BranchRule struct {
	When   BranchCondition
	Target string
}

// Question is immutable reference data: one staged question with its scoring
// rubric, branch logic, and assessed competencies.
type Question struct {
	ID     string
	Type   QuestionType
	Stage  Stage
	Prompt string

	// Exactly one rubric group is set, matching Type.
	Options     []Option
	Budget      *BudgetRubric
	Calculation *CalculationRubric
	Slider      *SliderRubric
	Text        *TextRubric

	// Competencies assessed by this question.
	Competencies []CompetencyCode

	// Branches are consulted after this question is answered.
	Branches []BranchRule

	// FollowUp, when set, names the question asked immediately after this
	// one unless a branch rule overrides it.
	FollowUp string

	// BranchOnly questions are skipped by the default stage progression and
	// reached only as a branch target.
	BranchOnly bool

	// Consequence is the state delta applied for the selected option,
	// keyed by option ID. Non-choice questions use ScaledConsequence.
	Consequence map[string]simstate.Delta

	// ScaledConsequence, when set, is applied scaled by the score ratio
	// (awarded/max) for non-choice questions.
	ScaledConsequence *simstate.Delta
}

// MaxPoints returns the maximum achievable points for the question.
func (q Question) MaxPoints() float64 {
	switch q.Type {
	case TypeChoice, TypeScenario, TypeOutcome:
		var max float64
		for _, o := range q.Options {
			if o.Points > max {
				max = o.Points
			}
		}
		return max
	case TypeBudget:
		if q.Budget != nil {
			return q.Budget.MaxPoints
		}
	case TypeCalculation:
		if q.Calculation != nil {
			return q.Calculation.MaxPoints
		}
	case TypeSlider:
		if q.Slider != nil {
			return q.Slider.MaxPoints
		}
	case TypeText, TypeReflection, TypeAIGenerated:
		if q.Text != nil {
			return q.Text.MaxPoints
		}
	}
	return 0
}

// OptionByID returns the option with the given ID, or nil.
func (q Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}
