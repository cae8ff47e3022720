package catalog

import "fmt"

// registry holds the validated reference data with precomputed indexes.
// Loaded once at process start; never mutated afterwards.
type registryData struct {
	questions    []Question
	questionByID map[string]*Question
	byStage      map[Stage][]Question

	mistakes      []MistakeDefinition
	mistakeByCode map[MistakeCode]*MistakeDefinition
}

var reg *registryData

func init() {
	r, err := buildRegistry(seedQuestions(), seedMistakes())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid reference data: %v", err))
	}
	reg = r
}

// buildRegistry indexes the seed data after validating it.
func buildRegistry(questions []Question, mistakes []MistakeDefinition) (*registryData, error) {
	r := &registryData{
		questions:     questions,
		questionByID:  make(map[string]*Question, len(questions)),
		byStage:       make(map[Stage][]Question),
		mistakes:      mistakes,
		mistakeByCode: make(map[MistakeCode]*MistakeDefinition, len(mistakes)),
	}

	for i := range r.questions {
		q := &r.questions[i]
		r.questionByID[q.ID] = q
		r.byStage[q.Stage] = append(r.byStage[q.Stage], *q)
	}
	for i := range r.mistakes {
		m := &r.mistakes[i]
		r.mistakeByCode[m.Code] = m
	}

	if err := validate(questions, mistakes); err != nil {
		return nil, err
	}
	return r, nil
}

// GetQuestion returns the question with the given ID.
func GetQuestion(id string) (Question, error) {
	q, ok := reg.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("unknown question %q", id)
	}
	return *q, nil
}

// QuestionsForStage returns the stage's questions in authored order.
// The returned slice is a copy; callers may not mutate reference data.
func QuestionsForStage(s Stage) []Question {
	qs := reg.byStage[s]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// AllQuestions returns every question in authored order.
func AllQuestions() []Question {
	out := make([]Question, len(reg.questions))
	copy(out, reg.questions)
	return out
}

// Mistakes returns the mistake registry in registration order.
func Mistakes() []MistakeDefinition {
	out := make([]MistakeDefinition, len(reg.mistakes))
	copy(out, reg.mistakes)
	return out
}

// MistakeByCode returns the definition for code, or nil if unknown.
// An unknown code is not an error: the caller treats it as zero impact.
func MistakeByCode(code MistakeCode) *MistakeDefinition {
	return reg.mistakeByCode[code]
}
