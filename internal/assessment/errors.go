package assessment

import "fmt"

// ErrValidation indicates the submitted answer was malformed for the
// current question: wrong payload type, unknown option, bad allocation.
type ErrValidation struct {
	QuestionID string
	Err        error
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid answer for %s: %v", e.QuestionID, e.Err)
}

func (e *ErrValidation) Unwrap() error { return e.Err }

// ErrNotFound indicates a referenced entity does not exist.
type ErrNotFound struct {
	Kind string // "assessment", "question"
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ErrStateConsistency indicates the operation does not fit the assessment's
// current lifecycle state, such as answering after completion.
type ErrStateConsistency struct {
	Reason string
}

func (e *ErrStateConsistency) Error() string {
	return "state consistency: " + e.Reason
}

// ErrExternalService indicates a dependency (grading, persistence) failed.
// The in-memory assessment is still valid when this is returned.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error { return e.Err }
