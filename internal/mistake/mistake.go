// Package mistake detects poor decisions and tracks their lifecycle. A
// mistake triggers at most once per assessment; its deferred compounding
// entries are applied by the consequence package as later stages begin.
package mistake

import (
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/simstate"
)

// Record is the per-assessment history of one triggered mistake.
type Record struct {
	Code       catalog.MistakeCode `json:"code"`
	QuestionID string              `json:"questionId"`
	Stage      catalog.Stage       `json:"stageNumber"`

	// ImmediateCost is the capital lost when the mistake triggered.
	ImmediateCost float64 `json:"immediateCost"`

	// CompoundedCost accumulates capital lost to compounding entries.
	CompoundedCost float64 `json:"compoundedCost"`

	// CompoundedStages marks which scheduled entries already fired, so a
	// stage transition replayed from a snapshot cannot double-apply them.
	CompoundedStages []catalog.Stage `json:"compoundedStages,omitempty"`
}

// TotalCost is the capital this mistake has cost so far.
func (r Record) TotalCost() float64 {
	return r.ImmediateCost + r.CompoundedCost
}

// Compounded reports whether the entry scheduled for stage already fired.
func (r Record) Compounded(s catalog.Stage) bool {
	for _, fired := range r.CompoundedStages {
		if fired == s {
			return true
		}
	}
	return false
}

// Detect scans the mistake registry in registration order and returns the
// codes newly triggered by the response. Codes already in the history are
// skipped; a mistake fires at most once.
func Detect(resp catalog.Response, history []Record) []catalog.MistakeCode {
	already := make(map[catalog.MistakeCode]bool, len(history))
	for _, r := range history {
		already[r.Code] = true
	}

	var out []catalog.MistakeCode
	for _, m := range catalog.Mistakes() {
		if already[m.Code] {
			continue
		}
		if matches(m.Trigger, resp) {
			out = append(out, m.Code)
		}
	}
	return out
}

func matches(t catalog.Trigger, resp catalog.Response) bool {
	if t.QuestionID != resp.QuestionID {
		return false
	}
	switch t.Kind {
	case catalog.TriggerOptionSelected:
		return resp.Data.SelectedOption == t.OptionID
	case catalog.TriggerPointsBelow:
		return resp.PointsAwarded < t.Points
	case catalog.TriggerAllocation:
		pct, ok := resp.Data.Allocations[t.Category]
		if !ok {
			return false
		}
		if t.Above > 0 && pct > t.Above {
			return true
		}
		if t.Below > 0 && pct < t.Below {
			return true
		}
		return false
	}
	return false
}

// ImmediateImpact returns the state delta applied the moment the mistake
// triggers. Unknown codes have zero impact rather than being an error.
func ImmediateImpact(code catalog.MistakeCode) simstate.Delta {
	m := catalog.MistakeByCode(code)
	if m == nil {
		return simstate.Delta{}
	}
	return m.Immediate
}
