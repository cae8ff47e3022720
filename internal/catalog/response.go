package catalog

// ResponseData is the participant's answer payload, discriminated by Type,
// which must match the question's type.
type ResponseData struct {
	Type QuestionType `json:"type"`

	// Text carries free-form answers (text/reflection/ai-generated).
	Text string `json:"text,omitempty"`

	// SelectedOption carries the chosen option ID (choice/scenario/outcome).
	SelectedOption string `json:"selectedOption,omitempty"`

	// Allocations carries percentage allocations by category name (budget).
	Allocations map[string]float64 `json:"allocations,omitempty"`

	// Value carries a numeric answer (calculation/slider).
	Value float64 `json:"value,omitempty"`
}

// Response records one answered question. Responses are created once and
// never mutated; resubmission is out of scope.
type Response struct {
	QuestionID           string           `json:"questionId"`
	Stage                Stage            `json:"stageNumber"`
	Data                 ResponseData     `json:"responseData"`
	PointsAwarded        float64          `json:"pointsAwarded"`
	CompetenciesAssessed []CompetencyCode `json:"competenciesAssessed"`

	// NeedsReview is set when the awarded points came from a grading
	// fallback and a human should look at the free-text answer.
	NeedsReview bool `json:"needsReview,omitempty"`
}
