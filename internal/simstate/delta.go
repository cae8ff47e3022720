package simstate

import "math"

// Delta is a state perturbation. Every field is additive: the value is added
// to the current field, not assigned over it, so two applications of the same
// delta accumulate. The zero value of a field means "leave that field alone".
//
// Percentage-typed fields are clamped to [0,100] after the add. Capital is
// never clamped. NaN or infinite fields are dropped individually rather than
// failing the whole merge.
type Delta struct {
	Capital        float64 `json:"capital,omitempty"`
	MonthlyRevenue float64 `json:"monthlyRevenue,omitempty"`
	BurnRate       float64 `json:"burnRate,omitempty"`

	TeamSize         int     `json:"teamSize,omitempty"`
	TeamSatisfaction float64 `json:"teamSatisfaction,omitempty"`

	Customers int     `json:"customers,omitempty"`
	Retention float64 `json:"retention,omitempty"`

	ProductCompletion    float64 `json:"productCompletion,omitempty"`
	MarketAwareness      float64 `json:"marketAwareness,omitempty"`
	OperationsEfficiency float64 `json:"operationsEfficiency,omitempty"`
}

// IsZero reports whether the delta perturbs nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Scale returns the delta with every numeric field multiplied by factor.
// Used by compounding, where a scheduled effect re-fires at a multiplier.
func (d Delta) Scale(factor float64) Delta {
	return Delta{
		Capital:              d.Capital * factor,
		MonthlyRevenue:       d.MonthlyRevenue * factor,
		BurnRate:             d.BurnRate * factor,
		TeamSize:             int(math.Round(float64(d.TeamSize) * factor)),
		TeamSatisfaction:     d.TeamSatisfaction * factor,
		Customers:            int(math.Round(float64(d.Customers) * factor)),
		Retention:            d.Retention * factor,
		ProductCompletion:    d.ProductCompletion * factor,
		MarketAwareness:      d.MarketAwareness * factor,
		OperationsEfficiency: d.OperationsEfficiency * factor,
	}
}

// MonetaryCost returns the positive monetary component of the delta, i.e.
// how much capital it removes. Deltas that add capital cost nothing.
func (d Delta) MonetaryCost() float64 {
	if !finite(d.Capital) || d.Capital >= 0 {
		return 0
	}
	return -d.Capital
}

// ApplyConsequence merges a delta into the state and returns the new state.
// The input state is never modified. Runway is rederived after the merge.
func ApplyConsequence(s State, d Delta) State {
	next := clone(s)

	next.Financial.Capital = addFinite(next.Financial.Capital, d.Capital)
	next.Financial.MonthlyRevenue = addFinite(next.Financial.MonthlyRevenue, d.MonthlyRevenue)
	next.Financial.BurnRate = addFinite(next.Financial.BurnRate, d.BurnRate)
	if next.Financial.BurnRate < 0 {
		next.Financial.BurnRate = 0
	}

	next.Team.Size += d.TeamSize
	if next.Team.Size < 0 {
		next.Team.Size = 0
	}
	next.Team.Satisfaction = clampPercent(addFinite(next.Team.Satisfaction, d.TeamSatisfaction))

	next.Customers.Total += d.Customers
	if next.Customers.Total < 0 {
		next.Customers.Total = 0
	}
	next.Customers.Retention = clampPercent(addFinite(next.Customers.Retention, d.Retention))

	next.Product.Completion = clampPercent(addFinite(next.Product.Completion, d.ProductCompletion))
	next.Market.Awareness = clampPercent(addFinite(next.Market.Awareness, d.MarketAwareness))
	next.Operations.Efficiency = clampPercent(addFinite(next.Operations.Efficiency, d.OperationsEfficiency))

	next.Financial.RunwayMonths = runway(next.Financial)
	return next
}

// addFinite adds d to v, ignoring NaN and infinite deltas.
func addFinite(v, d float64) float64 {
	if !finite(d) {
		return v
	}
	return v + d
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
