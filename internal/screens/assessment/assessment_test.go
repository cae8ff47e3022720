package assessment

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/router"
)

func newTestScreen() *AssessmentScreen {
	svc := &assessment.Service{}
	return New(svc, assessment.New())
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answerCurrent submits the current question and dismisses the feedback,
// leaving the screen on the next question.
func answerCurrent(t *testing.T, s *AssessmentScreen) {
	t.Helper()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command for question %s", s.question.ID)
	}
	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	if !ok {
		t.Fatalf("expected submitDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("submit failed for %s: %v", s.question.ID, done.Err)
	}
	s.Update(done)

	if s.feedback == nil {
		t.Fatalf("expected feedback after submitting %s", s.question.ID)
	}
	_, cmd = s.Update(keyRune(' '))
	if cmd == nil {
		t.Fatalf("expected feedback dismissal command for %s", s.question.ID)
	}
	s.Update(cmd())
}

func TestStartsAtFirstQuestion(t *testing.T) {
	s := newTestScreen()
	if s.question.ID != "mindset-motivation" {
		t.Errorf("expected first question mindset-motivation, got %s", s.question.ID)
	}
	if s.question.Type != catalog.TypeChoice {
		t.Errorf("expected a choice question, got %s", s.question.Type)
	}
}

func TestChoiceSubmitAdvances(t *testing.T) {
	s := newTestScreen()

	// Select the second option, then submit and dismiss feedback.
	s.Update(keyRune('2'))
	answerCurrent(t, s)

	if s.question.ID != "mindset-risk-appetite" {
		t.Errorf("expected next question mindset-risk-appetite, got %s", s.question.ID)
	}
	if len(s.run.Responses) != 1 {
		t.Fatalf("expected 1 recorded response, got %d", len(s.run.Responses))
	}
	if got := s.run.Responses[0].Data.SelectedOption; got != "solve-problem" {
		t.Errorf("expected solve-problem selected, got %s", got)
	}
}

func TestSliderAdjustAndSubmit(t *testing.T) {
	s := newTestScreen()

	s.Update(keyRune('2'))
	answerCurrent(t, s)

	if s.question.Type != catalog.TypeSlider {
		t.Fatalf("expected a slider question, got %s", s.question.Type)
	}
	if s.sliderVal != 50 {
		t.Errorf("slider should start at 50, got %g", s.sliderVal)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.sliderVal != 56 {
		t.Errorf("expected slider at 56 after right+up, got %g", s.sliderVal)
	}

	answerCurrent(t, s)
	if got := s.run.Responses[1].Data.Value; got != 56 {
		t.Errorf("expected recorded slider value 56, got %g", got)
	}
}

func TestTextRequiresNonEmptyAnswer(t *testing.T) {
	s := newTestScreen()

	// Advance to the reflection question.
	s.Update(keyRune('2'))
	answerCurrent(t, s)
	answerCurrent(t, s)

	if s.question.Type != catalog.TypeReflection {
		t.Fatalf("expected a reflection question, got %s", s.question.Type)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no submit command for an empty answer")
	}
	if s.validationMsg == "" {
		t.Error("expected a validation message for an empty answer")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s := newTestScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirm after esc")
	}

	// N backs out.
	s.Update(keyRune('n'))
	if s.showingQuitConfirm {
		t.Error("expected quit confirm dismissed by n")
	}

	// Y leaves the screen.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyRune('y'))
	if cmd == nil {
		t.Fatal("expected a command from confirming exit")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a pop command after endMsg")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg when exiting")
	}
}

func TestHeaderInfoTracksRun(t *testing.T) {
	s := newTestScreen()

	info := s.HeaderInfo()
	if info == nil {
		t.Fatal("expected header info")
	}
	if info.StageName != "Founder Mindset" {
		t.Errorf("expected stage Founder Mindset, got %s", info.StageName)
	}
	if info.Capital != 50_000 {
		t.Errorf("expected starting capital 50000, got %g", info.Capital)
	}
}

func TestResumeKeepsPosition(t *testing.T) {
	run := assessment.New()
	svc := &assessment.Service{}
	first := New(svc, run)
	first.Update(keyRune('2'))
	answerCurrent(t, first)

	resumed := New(svc, run)
	if resumed.question.ID != "mindset-risk-appetite" {
		t.Errorf("expected resumed screen at mindset-risk-appetite, got %s", resumed.question.ID)
	}
}
