package catalog

// Stage is one of six fixed phases of the simulated venture lifecycle.
// Stages are linearly ordered and never skipped.
type Stage int

const (
	StageMindset    Stage = -2 // founder self-assessment before anything exists
	StageIdeation   Stage = -1 // shaping the idea and the market hypothesis
	StageFoundation Stage = 0  // incorporation, first budget, first build
	StageLaunch     Stage = 1  // first customers and revenue
	StageGrowth     Stage = 2  // scaling the team and the funnel
	StageScale      Stage = 3  // operations, fundraising, endgame
)

// AllStages returns the stages in progression order.
func AllStages() []Stage {
	return []Stage{StageMindset, StageIdeation, StageFoundation, StageLaunch, StageGrowth, StageScale}
}

// FirstStage is where every assessment begins.
const FirstStage = StageMindset

// NextStage returns the stage after s. The second return is false when s is
// the terminal stage (or not a stage at all).
func NextStage(s Stage) (Stage, bool) {
	if s < StageMindset || s >= StageScale {
		return 0, false
	}
	return s + 1, true
}

// Valid reports whether s is one of the six defined stages.
func (s Stage) Valid() bool {
	return s >= StageMindset && s <= StageScale
}

// Label returns a human-readable stage name.
func (s Stage) Label() string {
	switch s {
	case StageMindset:
		return "Founder Mindset"
	case StageIdeation:
		return "Ideation"
	case StageFoundation:
		return "Foundation"
	case StageLaunch:
		return "Launch"
	case StageGrowth:
		return "Growth"
	case StageScale:
		return "Scale"
	default:
		return "Unknown"
	}
}
