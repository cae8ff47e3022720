package catalog

// CompetencyCode identifies one of the sixteen measured entrepreneurial
// skills. Codes are stable identifiers used in responses and reports.
type CompetencyCode string

const (
	CompOpportunityRecognition CompetencyCode = "opportunity-recognition"
	CompMarketResearch         CompetencyCode = "market-research"
	CompCustomerDiscovery      CompetencyCode = "customer-discovery"
	CompFinancialPlanning      CompetencyCode = "financial-planning"
	CompBudgeting              CompetencyCode = "budgeting"
	CompPricing                CompetencyCode = "pricing"
	CompFundraising            CompetencyCode = "fundraising"
	CompTeamBuilding           CompetencyCode = "team-building"
	CompLeadership             CompetencyCode = "leadership"
	CompMarketing              CompetencyCode = "marketing"
	CompSales                  CompetencyCode = "sales"
	CompProductManagement      CompetencyCode = "product-management"
	CompOperations             CompetencyCode = "operations"
	CompRiskManagement         CompetencyCode = "risk-management"
	CompResilience             CompetencyCode = "resilience"
	CompStrategicThinking      CompetencyCode = "strategic-thinking"
)

// AllCompetencies returns every competency code in display order.
func AllCompetencies() []CompetencyCode {
	return []CompetencyCode{
		CompOpportunityRecognition,
		CompMarketResearch,
		CompCustomerDiscovery,
		CompFinancialPlanning,
		CompBudgeting,
		CompPricing,
		CompFundraising,
		CompTeamBuilding,
		CompLeadership,
		CompMarketing,
		CompSales,
		CompProductManagement,
		CompOperations,
		CompRiskManagement,
		CompResilience,
		CompStrategicThinking,
	}
}

// DisplayName returns a human-readable competency name.
func (c CompetencyCode) DisplayName() string {
	switch c {
	case CompOpportunityRecognition:
		return "Opportunity Recognition"
	case CompMarketResearch:
		return "Market Research"
	case CompCustomerDiscovery:
		return "Customer Discovery"
	case CompFinancialPlanning:
		return "Financial Planning"
	case CompBudgeting:
		return "Budgeting"
	case CompPricing:
		return "Pricing"
	case CompFundraising:
		return "Fundraising"
	case CompTeamBuilding:
		return "Team Building"
	case CompLeadership:
		return "Leadership"
	case CompMarketing:
		return "Marketing"
	case CompSales:
		return "Sales"
	case CompProductManagement:
		return "Product Management"
	case CompOperations:
		return "Operations"
	case CompRiskManagement:
		return "Risk Management"
	case CompResilience:
		return "Resilience"
	case CompStrategicThinking:
		return "Strategic Thinking"
	default:
		return string(c)
	}
}

// Level is the three-bucket competency achievement level.
type Level int

const (
	LevelEmerging   Level = iota // L0
	LevelDeveloping              // L1
	LevelProficient              // L2
)

// Level thresholds on the rounded percentage score. Calibrated against the
// rubric data; keep these in one place so recalibration is a one-line change.
const (
	LevelDevelopingMin = 45
	LevelProficientMin = 75
)

// LevelForPercentage buckets a rounded percentage score into a level.
func LevelForPercentage(pct int) Level {
	switch {
	case pct >= LevelProficientMin:
		return LevelProficient
	case pct >= LevelDevelopingMin:
		return LevelDeveloping
	default:
		return LevelEmerging
	}
}

// Label returns the short display form (L0/L1/L2).
func (l Level) Label() string {
	switch l {
	case LevelProficient:
		return "L2"
	case LevelDeveloping:
		return "L1"
	default:
		return "L0"
	}
}

// Name returns the long display form.
func (l Level) Name() string {
	switch l {
	case LevelProficient:
		return "Proficient"
	case LevelDeveloping:
		return "Developing"
	default:
		return "Emerging"
	}
}
