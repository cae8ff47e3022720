package catalog

import "github.com/venturelab/venturesim/internal/simstate"

// seedMistakes returns the mistake registry. Registration order is the
// detection scan order. Each mistake fires at most once per assessment;
// compounding entries re-fire the penalty when the named stage is entered.
func seedMistakes() []MistakeDefinition {
	return []MistakeDefinition{
		{
			Code:        "no-market-research",
			Title:       "Built before validating",
			Description: "Started building the product without checking whether anyone wants it.",
			Category:    EffectMarket,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "ideation-first-step",
				OptionID:   "build-first",
			},
			Immediate: simstate.Delta{MarketAwareness: -10},
			Compounding: []CompoundingEntry{
				{Stage: StageLaunch, Effect: simstate.Delta{Customers: -10, Capital: -2_000}, Multiplier: 1},
				{Stage: StageGrowth, Effect: simstate.Delta{Capital: -2_000, Retention: -5}, Multiplier: 1.5},
			},
			Recovery: RecoveryPolicy{
				Possible: true,
				Advice:   "Run customer interviews before launch; validated demand stops the bleed.",
			},
		},
		{
			Code:        "skipped-validation",
			Title:       "No customer interviews",
			Description: "Committed to the idea without talking to a single prospective customer.",
			Category:    EffectCustomers,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "ideation-interviews",
				OptionID:   "none",
			},
			Immediate: simstate.Delta{Retention: -5},
			Compounding: []CompoundingEntry{
				{Stage: StageLaunch, Effect: simstate.Delta{Customers: -5, Capital: -1_500}, Multiplier: 1},
			},
			Recovery: RecoveryPolicy{
				Possible: true,
				Advice:   "It is never too late to interview churned and prospective customers.",
			},
		},
		{
			Code:        "product-heavy-budget",
			Title:       "Over-invested in product",
			Description: "Poured the budget into building with nothing left to reach customers.",
			Category:    EffectFinancial,
			Trigger: Trigger{
				Kind:       TriggerAllocation,
				QuestionID: "foundation-budget",
				Category:   "product",
				Above:      60,
			},
			Immediate: simstate.Delta{Capital: -2_000},
			Compounding: []CompoundingEntry{
				{Stage: StageLaunch, Effect: simstate.Delta{MarketAwareness: -10, Capital: -1_000}, Multiplier: 1},
			},
		},
		{
			Code:        "premature-hiring",
			Title:       "Hired ahead of need",
			Description: "Took on senior payroll before revenue could support it.",
			Category:    EffectTeam,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "foundation-hiring",
				OptionID:   "hire-seniors",
			},
			Immediate: simstate.Delta{TeamSatisfaction: -5},
			Compounding: []CompoundingEntry{
				{Stage: StageLaunch, Effect: simstate.Delta{Capital: -5_000}, Multiplier: 1},
				{Stage: StageGrowth, Effect: simstate.Delta{Capital: -2_500, TeamSatisfaction: -5}, Multiplier: 2},
			},
			Recovery: RecoveryPolicy{
				Possible: true,
				Advice:   "Restructure early; a smaller team with runway beats a large one without.",
			},
		},
		{
			Code:        "skipped-legal",
			Title:       "No founder agreement",
			Description: "Skipped incorporation and founder agreements to save $1,500.",
			Category:    EffectOperations,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "foundation-legal",
				OptionID:   "skip-legal",
			},
			Immediate: simstate.Delta{OperationsEfficiency: -5},
			Compounding: []CompoundingEntry{
				// The handshake deal comes due during diligence.
				{Stage: StageScale, Effect: simstate.Delta{Capital: -8_000, TeamSatisfaction: -10}, Multiplier: 3},
			},
		},
		{
			Code:        "underpricing",
			Title:       "Launched free",
			Description: "Gave the product away with no path to revenue.",
			Category:    EffectFinancial,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "launch-pricing",
				OptionID:   "free-forever",
			},
			Immediate: simstate.Delta{Capital: -1_000},
			Compounding: []CompoundingEntry{
				{Stage: StageGrowth, Effect: simstate.Delta{Capital: -4_000}, Multiplier: 1.5},
			},
			Recovery: RecoveryPolicy{
				Possible: true,
				Advice:   "Introduce a paid tier early; every month free trains customers it's worth nothing.",
			},
		},
		{
			Code:        "weak-pitch",
			Title:       "Pitch missed the customer",
			Description: "Launch messaging that names neither the customer nor the problem.",
			Category:    EffectMarket,
			Trigger: Trigger{
				Kind:       TriggerPointsBelow,
				QuestionID: "launch-pitch",
				Points:     4,
			},
			Immediate: simstate.Delta{MarketAwareness: -5},
			Compounding: []CompoundingEntry{
				{Stage: StageGrowth, Effect: simstate.Delta{Customers: -5, Capital: -1_000}, Multiplier: 1},
			},
		},
		{
			Code:        "culture-debt",
			Title:       "Blitz hiring",
			Description: "Doubled headcount faster than the culture could absorb.",
			Category:    EffectTeam,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "growth-team-scaling",
				OptionID:   "blitz-hire",
			},
			Immediate: simstate.Delta{TeamSatisfaction: -10},
			Compounding: []CompoundingEntry{
				{Stage: StageScale, Effect: simstate.Delta{Capital: -8_000, TeamSatisfaction: -10, OperationsEfficiency: -10}, Multiplier: 1},
			},
		},
		{
			Code:        "rushed-term-sheet",
			Title:       "Signed the first term sheet",
			Description: "Took the first offer without comparison or counsel.",
			Category:    EffectFinancial,
			Trigger: Trigger{
				Kind:       TriggerOptionSelected,
				QuestionID: "scale-term-sheet",
				OptionID:   "take-first-offer",
			},
			// The raise happens either way; the penalty is worse terms.
			Immediate: simstate.Delta{TeamSatisfaction: -5},
		},
	}
}
