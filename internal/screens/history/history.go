package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/screen"
	summaryscreen "github.com/venturelab/venturesim/internal/screens/summary"
	"github.com/venturelab/venturesim/internal/ui/layout"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

// entry is one past run in the list.
type entry struct {
	run     *assessment.Assessment
	summary assessment.Summary
}

type historyLoadedMsg struct {
	Entries []entry
	Err     error
}

// HistoryScreen lists past runs, most recent first.
type HistoryScreen struct {
	recorder *assessment.StoreRecorder
	entries  []entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(recorder *assessment.StoreRecorder) *HistoryScreen {
	return &HistoryScreen{recorder: recorder}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		ids, err := s.recorder.List(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		entries := make([]entry, 0, len(ids))
		for _, id := range ids {
			run, err := s.recorder.Load(ctx, id)
			if err != nil || run == nil {
				continue
			}
			entries = append(entries, entry{run: run, summary: assessment.BuildSummary(run)})
		}

		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Results"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= 0 && s.selected < len(s.entries) {
				sum := s.entries[s.selected].summary
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: summaryscreen.New(sum)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		dateStr := e.run.UpdatedAt.Format("Jan 02, 2006")

		statusStr := "complete"
		if e.run.Status == assessment.StatusInProgress {
			statusStr = fmt.Sprintf("in progress, %s", e.run.Stage.Label())
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  score %d/100  %d answered  %s  %s",
			prefix, dateStr, e.summary.OverallScore, e.summary.Answered,
			layout.FormatMoney(e.run.State.Financial.Capital), statusStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if e.run.Status == assessment.StatusInProgress {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
