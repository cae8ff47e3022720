// Package consequence applies decision and mistake effects to simulation
// state. All functions are pure: they take a state, return a new one, and
// never touch the input.
package consequence

import (
	"slices"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/simstate"
)

// ApplyAnswer applies the state effect of an answered question: the
// selected option's delta for choice-style questions, or the scaled delta
// weighted by score ratio for rubric-scored questions. The returned delta
// is what was actually applied, zero when the answer had no effect.
func ApplyAnswer(s simstate.State, q catalog.Question, resp catalog.Response) (simstate.State, simstate.Delta) {
	var d simstate.Delta
	switch {
	case resp.Data.SelectedOption != "":
		d = q.Consequence[resp.Data.SelectedOption]
	case q.ScaledConsequence != nil:
		if max := q.MaxPoints(); max > 0 {
			d = q.ScaledConsequence.Scale(resp.PointsAwarded / max)
		}
	}
	if d.IsZero() {
		return s, simstate.Delta{}
	}
	return simstate.ApplyConsequence(s, d), d
}

// ApplyImmediate applies a newly triggered mistake's immediate effect and
// marks the code in the state's triggered set. The second trigger of the
// same code is a no-op. Returns the new state and the capital cost of the
// immediate effect.
func ApplyImmediate(s simstate.State, code catalog.MistakeCode) (simstate.State, float64) {
	next, fresh := simstate.TriggerMistake(s, string(code))
	if !fresh {
		return s, 0
	}
	d := mistake.ImmediateImpact(code)
	if d.IsZero() {
		return next, 0
	}
	return simstate.ApplyConsequence(next, d), d.MonetaryCost()
}

// ApplyCompounding fires every compounding entry scheduled for the stage
// being entered. Entries already marked in a record's history are skipped,
// so replaying a stage transition cannot double-apply a penalty. Returns the
// new state, the total capital cost of this transition, and the updated
// records.
func ApplyCompounding(s simstate.State, entering catalog.Stage, history []mistake.Record) (simstate.State, float64, []mistake.Record) {
	next := s
	var total float64
	updated := make([]mistake.Record, len(history))
	copy(updated, history)

	for i, r := range updated {
		m := catalog.MistakeByCode(r.Code)
		if m == nil {
			continue
		}
		for _, entry := range m.Compounding {
			if entry.Stage != entering || r.Compounded(entry.Stage) {
				continue
			}
			effect := entry.Effect.Scale(entry.Multiplier)
			cost := effect.MonetaryCost()

			next = simstate.ApplyConsequence(next, effect)
			next = simstate.AddCompoundedLoss(next, cost)

			r.CompoundedCost += cost
			r.CompoundedStages = append(slices.Clone(r.CompoundedStages), entry.Stage)
			total += cost
		}
		updated[i] = r
	}
	return next, total, updated
}
