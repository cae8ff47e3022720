package question

import "github.com/venturelab/venturesim/internal/catalog"

// Progress reports how far through a stage the participant is. currentID is
// the question being asked, or empty once the stage is complete. The total
// counts answered questions plus the remaining default path from the current
// question; a branch taken later shortens or lengthens it, so the total is
// an estimate that only settles when the stage ends.
func Progress(stage catalog.Stage, currentID string, responses []catalog.Response) (answered, total int) {
	for _, r := range responses {
		if r.Stage == stage {
			answered++
		}
	}
	if currentID == "" {
		return answered, answered
	}

	qs := catalog.QuestionsForStage(stage)
	idx := -1
	for i, q := range qs {
		if q.ID == currentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return answered, answered
	}

	remaining := 1
	for _, q := range qs[idx+1:] {
		if !q.BranchOnly {
			remaining++
		}
	}
	return answered, answered + remaining
}
