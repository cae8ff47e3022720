package catalog

import "github.com/venturelab/venturesim/internal/simstate"

// MistakeCode identifies a detectable poor decision.
type MistakeCode string

// EffectCategory groups mistakes by what part of the venture they damage.
// Used to derive the qualitative mistake pattern in the final analysis.
type EffectCategory string

const (
	EffectFinancial  EffectCategory = "financial"
	EffectTeam       EffectCategory = "team"
	EffectCustomers  EffectCategory = "customers"
	EffectProduct    EffectCategory = "product"
	EffectMarket     EffectCategory = "market"
	EffectOperations EffectCategory = "operations"
)

// TriggerKind discriminates mistake detection conditions.
type TriggerKind string

const (
	TriggerOptionSelected TriggerKind = "option-selected"
	TriggerPointsBelow    TriggerKind = "points-below"
	TriggerAllocation     TriggerKind = "allocation-outside"
)

// Trigger is the detection condition for a mistake, matched against a
// (questionID, response) pair.
type Trigger struct {
	Kind       TriggerKind
	QuestionID string

	// option-selected: the response picked this option.
	OptionID string

	// points-below: the response scored strictly below this many points.
	Points float64

	// allocation-outside: the named budget category was allocated above
	// Above or below Below percent.
	Category string
	Above    float64
	Below    float64
}

// CompoundingEntry schedules a deferred re-application of a mistake's
// effect when the assessment enters Stage. Entries are ordered by stage and
// each fires at most once.
type CompoundingEntry struct {
	Stage      Stage
	Effect     simstate.Delta
	Multiplier float64
}

// RecoveryPolicy describes whether and how a triggered mistake's later
// compounding can be softened.
type RecoveryPolicy struct {
	Possible bool
	Advice   string
}

// MistakeDefinition is static registry data for one detectable mistake.
type MistakeDefinition struct {
	Code        MistakeCode
	Title       string
	Description string
	Category    EffectCategory
	Trigger     Trigger
	Immediate   simstate.Delta
	Compounding []CompoundingEntry
	Recovery    RecoveryPolicy
}
