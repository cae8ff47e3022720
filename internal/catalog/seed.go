package catalog

import "github.com/venturelab/venturesim/internal/simstate"

// seedQuestions returns the authored question set: six stages, every
// question type represented. Order within a stage is the default
// progression order; branch rules may skip ahead.
func seedQuestions() []Question {
	return []Question{
		// --- Stage -2: Founder Mindset ---
		{
			ID:     "mindset-motivation",
			Type:   TypeChoice,
			Stage:  StageMindset,
			Prompt: "Why are you starting this company?",
			Options: []Option{
				{ID: "get-rich-quick", Label: "I want to get rich quickly", Points: 2},
				{ID: "solve-problem", Label: "I keep running into a problem nobody has solved", Points: 10},
				{ID: "be-own-boss", Label: "I want to be my own boss", Points: 5},
				{ID: "follow-trend", Label: "Everyone in my field is starting one", Points: 1},
			},
			Competencies: []CompetencyCode{CompOpportunityRecognition, CompResilience},
			Consequence: map[string]simstate.Delta{
				"solve-problem": {TeamSatisfaction: 5},
				"follow-trend":  {TeamSatisfaction: -5},
			},
		},
		{
			ID:     "mindset-risk-appetite",
			Type:   TypeSlider,
			Stage:  StageMindset,
			Prompt: "How much of your savings are you willing to commit? (0-100%)",
			Slider: &SliderRubric{Min: 30, Max: 65, MaxPoints: 10},
			Competencies: []CompetencyCode{
				CompRiskManagement, CompFinancialPlanning,
			},
		},
		{
			ID:     "mindset-failure-story",
			Type:   TypeReflection,
			Stage:  StageMindset,
			Prompt: "Describe a time you failed at something that mattered, and what you changed afterwards.",
			Text: &TextRubric{
				Criteria:  "Looks for: a concrete failure, ownership of the cause, a specific behavioral change. Penalize blame-shifting and vagueness.",
				MaxPoints: 10,
				Fallback:  5,
			},
			Competencies: []CompetencyCode{CompResilience, CompLeadership},
		},
		{
			ID:     "mindset-cofounder",
			Type:   TypeScenario,
			Stage:  StageMindset,
			Prompt: "Your prospective cofounder wants 50/50 equity but can only work weekends. You:",
			Options: []Option{
				{ID: "agree-anyway", Label: "Agree — fairness matters more than hours", Points: 2},
				{ID: "vest-on-commitment", Label: "Propose vesting tied to going full-time", Points: 10},
				{ID: "go-solo", Label: "Walk away and build alone", Points: 5},
			},
			Competencies: []CompetencyCode{CompTeamBuilding, CompStrategicThinking},
			Consequence: map[string]simstate.Delta{
				"agree-anyway":       {OperationsEfficiency: -5},
				"vest-on-commitment": {OperationsEfficiency: 5},
			},
		},

		// --- Stage -1: Ideation ---
		{
			ID:     "ideation-first-step",
			Type:   TypeChoice,
			Stage:  StageIdeation,
			Prompt: "You have an idea. What do you do first?",
			Options: []Option{
				{ID: "build-first", Label: "Start building the product immediately", Points: 2},
				{ID: "talk-to-customers", Label: "Interview people who have the problem", Points: 10},
				{ID: "write-plan", Label: "Write a 40-page business plan", Points: 4},
				{ID: "raise-money", Label: "Pitch investors for seed funding", Points: 3},
			},
			Competencies: []CompetencyCode{CompCustomerDiscovery, CompMarketResearch},
			Consequence: map[string]simstate.Delta{
				"build-first":       {ProductCompletion: 10, Capital: -3000},
				"talk-to-customers": {MarketAwareness: 5},
				"raise-money":       {Capital: -1000},
			},
		},
		{
			ID:     "ideation-target-customer",
			Type:   TypeText,
			Stage:  StageIdeation,
			Prompt: "Describe your target customer in two sentences: who they are and what they do today instead of using you.",
			Text: &TextRubric{
				Criteria:  "Looks for: a narrow, specific segment and a named current alternative. Penalize 'everyone' answers.",
				MaxPoints: 10,
				Fallback:  5,
			},
			Competencies: []CompetencyCode{CompCustomerDiscovery, CompMarketResearch},
			Branches: []BranchRule{
				// Founders who already built first skip the interview-count
				// question, which they have nothing to report for, and go straight
				// to sizing the market.
				{
					When: BranchCondition{
						Kind:       BranchPreviousAnswer,
						QuestionID: "ideation-first-step",
						OptionID:   "build-first",
					},
					Target: "ideation-market-size",
				},
			},
		},
		{
			ID:     "ideation-interviews",
			Type:   TypeChoice,
			Stage:  StageIdeation,
			Prompt: "How many customer interviews will you run before committing to the idea?",
			Options: []Option{
				{ID: "none", Label: "None — I already know the problem", Points: 0},
				{ID: "five", Label: "Five, with friends and family", Points: 4},
				{ID: "twenty-cold", Label: "Twenty, recruited cold from the target segment", Points: 10},
			},
			Competencies: []CompetencyCode{CompCustomerDiscovery},
			Consequence: map[string]simstate.Delta{
				"twenty-cold": {MarketAwareness: 5, Capital: -500},
			},
		},
		{
			ID:     "ideation-market-size",
			Type:   TypeCalculation,
			Stage:  StageIdeation,
			Prompt: "200,000 businesses fit your segment. You expect 2% adoption at $120/year. What is your obtainable annual market in dollars?",
			Calculation: &CalculationRubric{
				Expression: "population * adoption * price",
				Variables:  map[string]float64{"population": 200_000, "adoption": 0.02, "price": 120},
				Tolerance:  1_000,
				MaxPoints:  10,
				MinPoints:  2,
			},
			Competencies:      []CompetencyCode{CompMarketResearch, CompFinancialPlanning},
			ScaledConsequence: &simstate.Delta{MarketAwareness: 3},
		},
		{
			ID:     "ideation-pivot-signal",
			Type:   TypeScenario,
			Stage:  StageIdeation,
			Prompt: "Half your interviewees say the problem is real but wouldn't pay. You:",
			Options: []Option{
				{ID: "ignore-signal", Label: "Push on — they'll pay once they see it", Points: 2},
				{ID: "probe-pricing", Label: "Dig into what they would pay for", Points: 10},
				{ID: "abandon", Label: "Drop the idea entirely", Points: 4},
			},
			Competencies: []CompetencyCode{CompPricing, CompResilience, CompStrategicThinking},
			Consequence: map[string]simstate.Delta{
				"probe-pricing": {MarketAwareness: 5},
				"ignore-signal": {TeamSatisfaction: -5},
			},
		},

		// --- Stage 0: Foundation ---
		{
			ID:     "foundation-budget",
			Type:   TypeBudget,
			Stage:  StageFoundation,
			Prompt: "Allocate your first-year budget across categories (percent).",
			Budget: &BudgetRubric{
				Categories: []BudgetCategory{
					{Name: "product", Min: 30, Max: 50, Weight: 3},
					{Name: "marketing", Min: 15, Max: 30, Weight: 2},
					{Name: "operations", Min: 10, Max: 20, Weight: 1},
					{Name: "legal", Min: 5, Max: 15, Weight: 1},
					{Name: "reserve", Min: 10, Max: 25, Weight: 2},
				},
				MaxPoints: 10,
			},
			Competencies:      []CompetencyCode{CompBudgeting, CompFinancialPlanning},
			ScaledConsequence: &simstate.Delta{OperationsEfficiency: 5},
		},
		{
			ID:     "foundation-hiring",
			Type:   TypeChoice,
			Stage:  StageFoundation,
			Prompt: "Your prototype is promising. How do you staff up?",
			Options: []Option{
				{ID: "hire-seniors", Label: "Hire three senior engineers now", Points: 2},
				{ID: "one-generalist", Label: "Hire one generalist and stay lean", Points: 10},
				{ID: "contractors", Label: "Use contractors until revenue", Points: 7},
			},
			Competencies: []CompetencyCode{CompTeamBuilding, CompFinancialPlanning},
			Consequence: map[string]simstate.Delta{
				"hire-seniors":   {TeamSize: 3, BurnRate: 3_000},
				"one-generalist": {TeamSize: 1, BurnRate: 1_000},
				"contractors":    {Capital: -2_000, ProductCompletion: 5},
			},
		},
		{
			ID:     "foundation-runway",
			Type:   TypeCalculation,
			Stage:  StageFoundation,
			Prompt: "With $50,000 in the bank and a $4,000 monthly burn, how many months of runway do you have?",
			Calculation: &CalculationRubric{
				Expression: "capital / burn",
				Variables:  map[string]float64{"capital": 50_000, "burn": 4_000},
				Tolerance:  0.1,
				MaxPoints:  10,
				MinPoints:  0,
			},
			Competencies: []CompetencyCode{CompFinancialPlanning},
		},
		{
			ID:     "foundation-legal",
			Type:   TypeChoice,
			Stage:  StageFoundation,
			Prompt: "Incorporation and a founder agreement would cost $1,500. You:",
			Options: []Option{
				{ID: "do-it-now", Label: "Pay for it now", Points: 10},
				{ID: "diy-later", Label: "Use a free template, revisit later", Points: 5},
				{ID: "skip-legal", Label: "Skip it — handshakes are fine for now", Points: 0},
			},
			Competencies: []CompetencyCode{CompRiskManagement, CompOperations},
			Consequence: map[string]simstate.Delta{
				"do-it-now":  {Capital: -1_500, OperationsEfficiency: 5},
				"diy-later":  {OperationsEfficiency: 2},
				"skip-legal": {OperationsEfficiency: -3},
			},
		},
		{
			ID:     "foundation-checkpoint",
			Type:   TypeOutcome,
			Stage:  StageFoundation,
			Prompt: "End of the foundation phase. Review your runway and pick your posture for launch.",
			Options: []Option{
				{ID: "steady", Label: "Hold course into launch", Points: 5},
				{ID: "cut-costs", Label: "Cut discretionary spend before launching", Points: 8},
				{ID: "spend-up", Label: "Spend aggressively to launch louder", Points: 3},
			},
			Competencies: []CompetencyCode{CompStrategicThinking, CompFinancialPlanning},
			Consequence: map[string]simstate.Delta{
				"cut-costs": {BurnRate: -500},
				"spend-up":  {BurnRate: 1_000, MarketAwareness: 5},
			},
		},

		// --- Stage 1: Launch ---
		{
			ID:     "launch-pricing",
			Type:   TypeChoice,
			Stage:  StageLaunch,
			Prompt: "How do you price at launch?",
			Options: []Option{
				{ID: "free-forever", Label: "Free — monetize later once we're big", Points: 1},
				{ID: "paid-from-day-one", Label: "Paid from day one at a defensible price", Points: 10},
				{ID: "freemium", Label: "Free tier with a paid upgrade", Points: 7},
			},
			Competencies: []CompetencyCode{CompPricing, CompSales},
			Consequence: map[string]simstate.Delta{
				"free-forever":      {Customers: 40, MarketAwareness: 10},
				"paid-from-day-one": {Customers: 8, MonthlyRevenue: 1_200},
				"freemium":          {Customers: 25, MonthlyRevenue: 500, MarketAwareness: 5},
			},
		},
		{
			ID:     "launch-pitch",
			Type:   TypeAIGenerated,
			Stage:  StageLaunch,
			Prompt: "Write the three-sentence pitch you'd post on launch day.",
			Text: &TextRubric{
				Criteria:  "Looks for: the customer named, the problem named, a concrete differentiator. Penalize buzzwords with no claim.",
				MaxPoints: 10,
				Fallback:  5,
			},
			Competencies: []CompetencyCode{CompMarketing, CompSales},
		},
		{
			ID:     "launch-channel",
			Type:   TypeChoice,
			Stage:  StageLaunch,
			Prompt: "Pick your first acquisition channel.",
			Options: []Option{
				{ID: "paid-ads", Label: "Paid ads at $40 per signup", Points: 4},
				{ID: "founder-sales", Label: "Founder-led direct outreach", Points: 10},
				{ID: "wait-viral", Label: "Build it and wait for word of mouth", Points: 1},
			},
			Competencies: []CompetencyCode{CompMarketing, CompSales},
			Consequence: map[string]simstate.Delta{
				"paid-ads":      {Capital: -4_000, Customers: 15, MarketAwareness: 10},
				"founder-sales": {Customers: 10, MarketAwareness: 5},
			},
		},
		{
			ID:     "launch-customer-time",
			Type:   TypeSlider,
			Stage:  StageLaunch,
			Prompt: "What percentage of your week goes to talking with customers?",
			Slider: &SliderRubric{Min: 30, Max: 60, MaxPoints: 10},
			Competencies: []CompetencyCode{
				CompCustomerDiscovery, CompSales,
			},
			ScaledConsequence: &simstate.Delta{Retention: 3},
			Branches: []BranchRule{
				// A giveaway launch means the churn conversation is about
				// monetization, not retention.
				{
					When: BranchCondition{
						Kind:        BranchMistakeTrigger,
						MistakeCode: "underpricing",
					},
					Target: "launch-monetize",
				},
			},
		},
		{
			ID:     "launch-churn",
			Type:   TypeScenario,
			Stage:  StageLaunch,
			Prompt: "A fifth of your paying customers cancelled this month. You:",
			Options: []Option{
				{ID: "discount-everyone", Label: "Offer everyone a 50% discount", Points: 2},
				{ID: "exit-interviews", Label: "Call every churned customer this week", Points: 10},
				{ID: "ship-features", Label: "Ship more features, faster", Points: 4},
			},
			Competencies: []CompetencyCode{CompCustomerDiscovery, CompProductManagement, CompResilience},
			Consequence: map[string]simstate.Delta{
				"discount-everyone": {MonthlyRevenue: -400, Retention: 5},
				"exit-interviews":   {Retention: 8},
				"ship-features":     {ProductCompletion: 5, BurnRate: 500},
			},
		},
		{
			ID:         "launch-monetize",
			Type:       TypeScenario,
			Stage:      StageLaunch,
			BranchOnly: true,
			Prompt: "Forty free users, zero revenue, and the burn continues. How do you start charging?",
			Options: []Option{
				{ID: "paywall-everything", Label: "Paywall everything overnight", Points: 3},
				{ID: "grandfather-tier", Label: "Introduce a paid tier, grandfather existing users for 90 days", Points: 10},
				{ID: "stay-free", Label: "Stay free and raise venture money on growth", Points: 2},
			},
			Competencies: []CompetencyCode{CompPricing, CompStrategicThinking},
			Consequence: map[string]simstate.Delta{
				"paywall-everything": {Customers: -25, MonthlyRevenue: 600, TeamSatisfaction: -5},
				"grandfather-tier":   {MonthlyRevenue: 400, Retention: 3},
				"stay-free":          {MarketAwareness: 5},
			},
		},

		// --- Stage 2: Growth ---
		{
			ID:     "growth-team-scaling",
			Type:   TypeChoice,
			Stage:  StageGrowth,
			Prompt: "Revenue is growing 15% month over month. How do you scale the team?",
			Options: []Option{
				{ID: "blitz-hire", Label: "Double headcount this quarter", Points: 2},
				{ID: "hire-to-pain", Label: "Hire only where the pain is measurable", Points: 10},
				{ID: "freeze", Label: "Freeze hiring to protect runway", Points: 5},
			},
			Competencies: []CompetencyCode{CompTeamBuilding, CompLeadership},
			Consequence: map[string]simstate.Delta{
				"blitz-hire":   {TeamSize: 4, BurnRate: 4_000},
				"hire-to-pain": {TeamSize: 2, BurnRate: 2_000, OperationsEfficiency: 5},
			},
		},
		{
			ID:     "growth-budget",
			Type:   TypeBudget,
			Stage:  StageGrowth,
			Prompt: "Allocate this quarter's growth budget (percent).",
			Budget: &BudgetRubric{
				Categories: []BudgetCategory{
					{Name: "acquisition", Min: 25, Max: 45, Weight: 3},
					{Name: "retention", Min: 15, Max: 30, Weight: 2},
					{Name: "product", Min: 20, Max: 35, Weight: 2},
					{Name: "hiring", Min: 10, Max: 25, Weight: 1},
				},
				MaxPoints: 10,
			},
			Competencies:      []CompetencyCode{CompBudgeting, CompMarketing},
			ScaledConsequence: &simstate.Delta{MarketAwareness: 5, Customers: 10},
		},
		{
			ID:     "growth-cac-payback",
			Type:   TypeCalculation,
			Stage:  StageGrowth,
			Prompt: "You spend $900 to win a customer paying $150/month at 60% gross margin. How many months until the customer pays back their acquisition cost?",
			Calculation: &CalculationRubric{
				Expression: "cac / (arpu * margin)",
				Variables:  map[string]float64{"cac": 900, "arpu": 150, "margin": 0.6},
				Tolerance:  0.5,
				MaxPoints:  10,
				MinPoints:  2,
			},
			Competencies: []CompetencyCode{CompFinancialPlanning, CompMarketing},
			Branches: []BranchRule{
				// Founders already demonstrating budgeting skill skip the
				// remedial delegation reflection.
				{
					When: BranchCondition{
						Kind:       BranchCompetencyLevel,
						Competency: CompBudgeting,
						MinLevel:   LevelDeveloping,
					},
					Target: "growth-investor-pressure",
				},
			},
		},
		{
			ID:     "growth-delegation",
			Type:   TypeReflection,
			Stage:  StageGrowth,
			Prompt: "What is one thing only you do today that someone else should own by next quarter, and how will you hand it off?",
			Text: &TextRubric{
				Criteria:  "Looks for: a specific responsibility, a named owner or hiring plan, a handoff mechanism. Penalize 'I'll delegate more' generalities.",
				MaxPoints: 10,
				Fallback:  5,
			},
			Competencies: []CompetencyCode{CompLeadership, CompOperations},
		},
		{
			ID:     "growth-investor-pressure",
			Type:   TypeScenario,
			Stage:  StageGrowth,
			Prompt: "An investor offers $1M now if you triple your growth target. Your team is already stretched. You:",
			Options: []Option{
				{ID: "take-and-push", Label: "Take it and push the team harder", Points: 3},
				{ID: "negotiate-target", Label: "Negotiate a target you can staff for", Points: 10},
				{ID: "decline", Label: "Decline and grow on revenue", Points: 6},
			},
			Competencies: []CompetencyCode{CompFundraising, CompLeadership, CompStrategicThinking},
			Consequence: map[string]simstate.Delta{
				"take-and-push":    {Capital: 1_000_000, TeamSatisfaction: -15, BurnRate: 8_000},
				"negotiate-target": {Capital: 750_000, BurnRate: 5_000},
			},
		},

		// --- Stage 3: Scale ---
		{
			ID:     "scale-term-sheet",
			Type:   TypeChoice,
			Stage:  StageScale,
			Prompt: "Two term sheets arrive. How do you proceed?",
			Options: []Option{
				{ID: "take-first-offer", Label: "Sign the first one before it expires", Points: 1},
				{ID: "run-process", Label: "Run a two-week process and compare terms", Points: 10},
				{ID: "lawyer-review", Label: "Have counsel review both, then decide", Points: 8},
			},
			Competencies: []CompetencyCode{CompFundraising, CompRiskManagement},
			Consequence: map[string]simstate.Delta{
				"take-first-offer": {Capital: 1_500_000},
				"run-process":      {Capital: 2_000_000},
				"lawyer-review":    {Capital: 1_800_000},
			},
		},
		{
			ID:     "scale-dilution",
			Type:   TypeCalculation,
			Stage:  StageScale,
			Prompt: "You raise $2M on an $8M pre-money valuation. What percentage of the company did you sell?",
			Calculation: &CalculationRubric{
				Expression: "raise / (premoney + raise) * 100",
				Variables:  map[string]float64{"raise": 2_000_000, "premoney": 8_000_000},
				Tolerance:  0.5,
				MaxPoints:  10,
				MinPoints:  0,
			},
			Competencies: []CompetencyCode{CompFundraising, CompFinancialPlanning},
		},
		{
			ID:     "scale-systemization",
			Type:   TypeChoice,
			Stage:  StageScale,
			Prompt: "Support tickets are doubling every quarter. You:",
			Options: []Option{
				{ID: "hire-more-support", Label: "Keep hiring support staff linearly", Points: 4},
				{ID: "build-systems", Label: "Invest in self-serve docs and tooling", Points: 10},
				{ID: "ignore-tickets", Label: "Deprioritize — growth comes first", Points: 0},
			},
			Competencies: []CompetencyCode{CompOperations, CompProductManagement},
			Consequence: map[string]simstate.Delta{
				"hire-more-support": {TeamSize: 2, BurnRate: 2_000},
				"build-systems":     {Capital: -10_000, OperationsEfficiency: 15, Retention: 5},
				"ignore-tickets":    {Retention: -10, TeamSatisfaction: -10},
			},
		},
		{
			ID:     "scale-biggest-risk",
			Type:   TypeText,
			Stage:  StageScale,
			Prompt: "Name the single biggest risk to the business over the next year and your mitigation.",
			Text: &TextRubric{
				Criteria:  "Looks for: a specific, plausible risk tied to the venture's situation and a concrete mitigation. Penalize generic 'competition' answers with no plan.",
				MaxPoints: 10,
				Fallback:  5,
			},
			Competencies: []CompetencyCode{CompRiskManagement, CompStrategicThinking},
			Branches: []BranchRule{
				{
					When: BranchCondition{
						Kind:  BranchStateThreshold,
						Field: FieldCapital,
						Op:    OpLT,
						Value: 0,
					},
					Target: "scale-insolvency",
				},
			},
		},
		{
			ID:     "scale-endgame",
			Type:   TypeOutcome,
			Stage:  StageScale,
			Prompt: "The board asks for your three-year direction. You commit to:",
			Options: []Option{
				{ID: "profitable-growth", Label: "Grow at the rate revenue supports", Points: 10},
				{ID: "swing-big", Label: "Raise again and chase the whole market", Points: 6},
				{ID: "sell-now", Label: "Start a sale process at today's valuation", Points: 4},
			},
			Competencies: []CompetencyCode{CompStrategicThinking, CompOpportunityRecognition},
		},
		{
			ID:         "scale-insolvency",
			Type:       TypeOutcome,
			Stage:      StageScale,
			BranchOnly: true,
			Prompt: "The company is out of cash. Choose how the story ends.",
			Options: []Option{
				{ID: "wind-down", Label: "Wind down responsibly, pay what's owed", Points: 8},
				{ID: "bridge-loan", Label: "Take a personal bridge loan to keep going", Points: 3},
				{ID: "acquihire", Label: "Negotiate an acquihire for the team", Points: 6},
			},
			Competencies: []CompetencyCode{CompResilience, CompRiskManagement, CompLeadership},
		},
	}
}
