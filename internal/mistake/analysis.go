package mistake

import "github.com/venturelab/venturesim/internal/catalog"

// Analysis is the end-of-assessment mistake summary.
type Analysis struct {
	Triggered []Record              `json:"triggered"`
	Avoided   []catalog.MistakeCode `json:"avoided"`

	// TotalCost is the capital lost across all triggered mistakes,
	// immediate and compounded.
	TotalCost float64 `json:"totalCost"`

	// Worst is the code of the costliest triggered mistake, empty when
	// nothing triggered.
	Worst catalog.MistakeCode `json:"worst,omitempty"`

	// Pattern is the effect category the triggered mistakes cluster in,
	// empty when nothing triggered. Ties go to the category hit first.
	Pattern catalog.EffectCategory `json:"pattern,omitempty"`
}

// Analyze summarizes the mistake history against the full registry.
func Analyze(history []Record) Analysis {
	a := Analysis{Triggered: history}

	triggered := make(map[catalog.MistakeCode]bool, len(history))
	for _, r := range history {
		triggered[r.Code] = true
	}
	for _, m := range catalog.Mistakes() {
		if !triggered[m.Code] {
			a.Avoided = append(a.Avoided, m.Code)
		}
	}

	var worstCost float64
	counts := make(map[catalog.EffectCategory]int)
	var order []catalog.EffectCategory
	for _, r := range history {
		cost := r.TotalCost()
		a.TotalCost += cost
		if a.Worst == "" || cost > worstCost {
			a.Worst = r.Code
			worstCost = cost
		}
		if m := catalog.MistakeByCode(r.Code); m != nil {
			if counts[m.Category] == 0 {
				order = append(order, m.Category)
			}
			counts[m.Category]++
		}
	}

	best := 0
	for _, c := range order {
		if counts[c] > best {
			best = counts[c]
			a.Pattern = c
		}
	}
	return a
}

// TotalCost sums the capital cost of all records in the history.
func TotalCost(history []Record) float64 {
	var sum float64
	for _, r := range history {
		sum += r.TotalCost()
	}
	return sum
}
