package assessment

import (
	"github.com/venturelab/venturesim/internal/assessment"
)

// submitDoneMsg is sent when answer processing finishes. Res can be non-nil
// alongside Err: the run advanced in memory but persistence failed.
type submitDoneMsg struct {
	Res *assessment.SubmitResult
	Err error
}

// feedbackDoneMsg is sent when the feedback display is dismissed.
type feedbackDoneMsg struct{}

// endMsg is sent to leave the assessment early.
type endMsg struct{}
