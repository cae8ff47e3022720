package simstate

import (
	"math"
	"slices"
)

// Financial holds the venture's money position. Capital is deliberately
// unclamped: a negative value signals insolvency and the caller decides
// what to do about it.
type Financial struct {
	Capital        float64 `json:"capital"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	BurnRate       float64 `json:"burnRate"`

	// RunwayMonths is derived from Capital and BurnRate and recomputed on
	// every merge. It is +Inf when BurnRate is zero or negative, so it is
	// excluded from serialization and rebuilt on load.
	RunwayMonths float64 `json:"-"`
}

// Team tracks headcount and morale. Satisfaction is a percentage.
type Team struct {
	Size         int     `json:"size"`
	Satisfaction float64 `json:"satisfaction"`
}

// Customers tracks the customer base. Retention is a percentage.
type Customers struct {
	Total     int     `json:"total"`
	Retention float64 `json:"retention"`
}

// Product tracks build progress as a percentage toward a sellable product.
type Product struct {
	Completion float64 `json:"completion"`
}

// Market tracks how visible the venture is. Awareness is a percentage.
type Market struct {
	Awareness float64 `json:"awareness"`
}

// Operations tracks internal process quality. Efficiency is a percentage.
type Operations struct {
	Efficiency float64 `json:"efficiency"`
}

// Decision is one entry in the append-only decision log.
type Decision struct {
	Stage      int    `json:"stage"`
	QuestionID string `json:"questionId"`
	Summary    string `json:"summary"`
}

// State is the canonical simulation state for one assessment. It is a plain
// value: mutation happens only through the merge primitives in this package,
// each of which returns a new State and leaves its input untouched.
type State struct {
	Financial  Financial  `json:"financial"`
	Team       Team       `json:"team"`
	Customers  Customers  `json:"customers"`
	Product    Product    `json:"product"`
	Market     Market     `json:"market"`
	Operations Operations `json:"operations"`

	// MistakesTriggered is the ordered set of mistake codes fired so far.
	MistakesTriggered []string `json:"mistakesTriggered"`

	// CompoundedLosses accumulates the monetary cost of compounding effects.
	CompoundedLosses float64 `json:"compoundedLosses"`

	// DecisionLog is append-only; entries are never reordered or removed.
	DecisionLog []Decision `json:"decisionsLog"`
}

// Starting constants. Every assessment begins from the same seed so runs
// are comparable across participants.
const (
	InitialCapital       = 50_000
	InitialBurnRate      = 4_000
	InitialTeamSize      = 2
	InitialSatisfaction  = 75
	InitialRetention     = 100
	InitialCompletion    = 10
	InitialEfficiency    = 50
)

// NewInitialState returns the canonical deterministic starting state.
func NewInitialState() State {
	s := State{
		Financial: Financial{
			Capital:  InitialCapital,
			BurnRate: InitialBurnRate,
		},
		Team:       Team{Size: InitialTeamSize, Satisfaction: InitialSatisfaction},
		Customers:  Customers{Retention: InitialRetention},
		Product:    Product{Completion: InitialCompletion},
		Operations: Operations{Efficiency: InitialEfficiency},
	}
	s.Financial.RunwayMonths = runway(s.Financial)
	return s
}

// TriggerMistake adds code to the triggered set if absent. The second return
// reports whether the code was newly added; a repeat trigger is a no-op.
func TriggerMistake(s State, code string) (State, bool) {
	if slices.Contains(s.MistakesTriggered, code) {
		return s, false
	}
	next := clone(s)
	next.MistakesTriggered = append(next.MistakesTriggered, code)
	return next, true
}

// LogDecision appends an entry to the decision log.
func LogDecision(s State, d Decision) State {
	next := clone(s)
	next.DecisionLog = append(next.DecisionLog, d)
	return next
}

// AddCompoundedLoss records compounding cost against the running total.
func AddCompoundedLoss(s State, cost float64) State {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return s
	}
	next := clone(s)
	next.CompoundedLosses += cost
	return next
}

// clone copies the state deeply enough that appends to the returned value
// can never alias a previously published snapshot.
func clone(s State) State {
	next := s
	next.MistakesTriggered = slices.Clone(s.MistakesTriggered)
	next.DecisionLog = slices.Clone(s.DecisionLog)
	return next
}

// runway derives months of runway from the financial position.
func runway(f Financial) float64 {
	if f.BurnRate > 0 {
		return f.Capital / f.BurnRate
	}
	return math.Inf(1)
}

// clampPercent bounds percentage-typed fields to [0,100].
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
