package assessment

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/screen"
	summaryscreen "github.com/venturelab/venturesim/internal/screens/summary"
	"github.com/venturelab/venturesim/internal/ui/components"
	"github.com/venturelab/venturesim/internal/ui/layout"
)

const sliderStep = 5.0

// budgetRow is one editable allocation line of a budget question.
type budgetRow struct {
	category string
	input    components.TextInput
}

// AssessmentScreen implements screen.Screen for an active run.
type AssessmentScreen struct {
	svc *assessment.Service
	run *assessment.Assessment

	question catalog.Question

	// Input widgets; which one is live depends on question.Type.
	options   components.OptionList
	textInput components.TextInput
	sliderVal float64
	budget    []budgetRow
	budgetRow int

	submitting         bool
	feedback           *assessment.SubmitResult
	persistWarning     bool
	showingQuitConfirm bool
	validationMsg      string
	errMsg             string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.HeaderInfoProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen around an existing run. Pass a freshly
// created assessment to start over, or a restored one to resume.
func New(svc *assessment.Service, run *assessment.Assessment) *AssessmentScreen {
	s := &AssessmentScreen{svc: svc, run: run}
	if q, ok := run.CurrentQuestion(); ok {
		s.setupQuestion(q)
	}
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	if s.question.Type == catalog.TypeText ||
		s.question.Type == catalog.TypeReflection ||
		s.question.Type == catalog.TypeAIGenerated ||
		s.question.Type == catalog.TypeCalculation {
		return s.textInput.Init()
	}
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// HeaderInfo exposes the live venture status for the header bar.
func (s *AssessmentScreen) HeaderInfo() *layout.HeaderInfo {
	return &layout.HeaderInfo{
		StageName: s.run.Stage.Label(),
		Capital:   s.run.State.Financial.Capital,
	}
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Save & exit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	switch s.question.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		return []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Exit"},
		}
	case catalog.TypeSlider:
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust"},
			{Key: "↑↓", Description: "Fine"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Exit"},
		}
	case catalog.TypeBudget:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Category"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case endMsg:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (cursor blink) go to the active text input.
	if s.feedback == nil && !s.submitting && !s.showingQuitConfirm {
		switch s.question.Type {
		case catalog.TypeText, catalog.TypeReflection, catalog.TypeAIGenerated, catalog.TypeCalculation:
			var cmd tea.Cmd
			s.textInput, cmd = s.textInput.Update(msg)
			return s, cmd
		case catalog.TypeBudget:
			if s.budgetRow >= 0 && s.budgetRow < len(s.budget) {
				var cmd tea.Cmd
				s.budget[s.budgetRow].input, cmd = s.budget[s.budgetRow].input.Update(msg)
				return s, cmd
			}
		}
	}

	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.submitting {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return endMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.feedback != nil {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	s.validationMsg = ""

	switch s.question.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd

	case catalog.TypeSlider:
		switch key {
		case "left", "h":
			s.sliderVal = clampSlider(s.sliderVal - sliderStep)
		case "right", "l":
			s.sliderVal = clampSlider(s.sliderVal + sliderStep)
		case "down", "j":
			s.sliderVal = clampSlider(s.sliderVal - 1)
		case "up", "k":
			s.sliderVal = clampSlider(s.sliderVal + 1)
		}
		return s, nil

	case catalog.TypeBudget:
		switch key {
		case "up", "shift+tab":
			if s.budgetRow > 0 {
				s.budgetRow--
			}
			return s, nil
		case "down", "tab":
			if s.budgetRow < len(s.budget)-1 {
				s.budgetRow++
			}
			return s, nil
		}
		if s.budgetRow >= 0 && s.budgetRow < len(s.budget) {
			var cmd tea.Cmd
			s.budget[s.budgetRow].input, cmd = s.budget[s.budgetRow].input.Update(msg)
			return s, cmd
		}
		return s, nil

	default:
		var cmd tea.Cmd
		s.textInput, cmd = s.textInput.Update(msg)
		return s, cmd
	}
}

// submit collects the answer for the current question type and hands it to
// the service asynchronously.
func (s *AssessmentScreen) submit() (screen.Screen, tea.Cmd) {
	data, err := s.collectAnswer()
	if err != nil {
		s.validationMsg = err.Error()
		return s, nil
	}

	s.submitting = true
	svc, run := s.svc, s.run
	return s, func() tea.Msg {
		res, err := svc.Submit(context.Background(), run, data)
		return submitDoneMsg{Res: res, Err: err}
	}
}

// collectAnswer builds the response payload from the active input widget.
func (s *AssessmentScreen) collectAnswer() (catalog.ResponseData, error) {
	data := catalog.ResponseData{Type: s.question.Type}

	switch s.question.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		data.SelectedOption = s.options.Value()
		if data.SelectedOption == "" {
			return data, fmt.Errorf("pick an option first")
		}

	case catalog.TypeSlider:
		data.Value = s.sliderVal

	case catalog.TypeCalculation:
		v, err := s.textInput.FloatValue()
		if err != nil {
			return data, fmt.Errorf("enter a number")
		}
		data.Value = v

	case catalog.TypeBudget:
		alloc := make(map[string]float64, len(s.budget))
		var total float64
		for _, row := range s.budget {
			v, err := row.input.FloatValue()
			if err != nil {
				return data, fmt.Errorf("enter a percentage for %s", row.category)
			}
			if v < 0 {
				return data, fmt.Errorf("%s cannot be negative", row.category)
			}
			alloc[row.category] = v
			total += v
		}
		if total > 100.5 {
			return data, fmt.Errorf("allocations add up to %.0f%%, the budget only has 100%%", total)
		}
		data.Allocations = alloc

	default:
		data.Text = s.textInput.Value()
		if data.Text == "" {
			return data, fmt.Errorf("write an answer first")
		}
	}

	return data, nil
}

func (s *AssessmentScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Res == nil {
		if msg.Err != nil {
			s.validationMsg = msg.Err.Error()
		}
		return s, nil
	}

	// The run advanced even when persistence failed; flag it and move on.
	s.persistWarning = msg.Err != nil
	s.feedback = msg.Res
	return s, nil
}

func (s *AssessmentScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	res := s.feedback
	s.feedback = nil
	s.persistWarning = false

	if res == nil {
		return s, nil
	}

	if res.Completed {
		sum := assessment.BuildSummary(s.run)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summaryscreen.New(sum)}
		}
	}

	if res.Next != nil {
		s.setupQuestion(*res.Next)
		return s, s.Init()
	}

	// No next question and not complete should be unreachable.
	s.errMsg = "assessment stalled with no next question"
	return s, nil
}

// setupQuestion resets the input widgets for a new question.
func (s *AssessmentScreen) setupQuestion(q catalog.Question) {
	s.question = q
	s.validationMsg = ""

	switch q.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		items := make([]components.OptionItem, 0, len(q.Options))
		for _, o := range q.Options {
			items = append(items, components.OptionItem{ID: o.ID, Label: o.Label})
		}
		s.options = components.NewOptionList(items)

	case catalog.TypeSlider:
		s.sliderVal = 50

	case catalog.TypeCalculation:
		s.textInput = components.NewTextInput("Enter a number...", true, 16)

	case catalog.TypeBudget:
		s.budget = s.budget[:0]
		if q.Budget != nil {
			for _, cat := range q.Budget.Categories {
				s.budget = append(s.budget, budgetRow{
					category: cat.Name,
					input:    components.NewTextInput("0", true, 6),
				})
			}
		}
		s.budgetRow = 0

	default:
		s.textInput = components.NewTextInput("Type your answer...", false, 200)
	}
}

func clampSlider(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
