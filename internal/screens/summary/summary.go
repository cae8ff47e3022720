package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/screen"
	"github.com/venturelab/venturesim/internal/ui/layout"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

// SummaryScreen displays the final report for a run.
type SummaryScreen struct {
	summary assessment.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary assessment.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	// Title.
	title := "Assessment complete!"
	if !sum.Completed {
		title = "Assessment in progress"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	// Overall score and duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Score: %d/100 (%s)        Answered: %d        Time: %d:%02d",
		sum.OverallScore, sum.AverageLevel.Name(), sum.Answered, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	// Final venture position.
	fin := sum.FinalState.Financial
	ventureLine := fmt.Sprintf("Capital: %s   Revenue: %s/mo   Runway: %.1f months",
		layout.FormatMoney(fin.Capital), layout.FormatMoney(fin.MonthlyRevenue), fin.RunwayMonths)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(ventureLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Competency rankings, strongest first.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Competencies")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	shown := 0
	for _, cs := range sum.Competencies {
		if cs.Possible == 0 {
			continue
		}
		line := fmt.Sprintf("  %-24s %3d%%  %s  %s",
			cs.Code.DisplayName(), cs.Percentage, cs.Level.Label(), levelBar(cs.Percentage))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch cs.Level {
		case catalog.LevelProficient:
			style = style.Foreground(theme.Success)
		case catalog.LevelEmerging:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		shown++
	}
	if shown == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No competencies assessed yet")))
		b.WriteString("\n")
	}

	// Mistake analysis.
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mistakes")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	if len(sum.Mistakes.Triggered) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).
				Render("  No mistakes triggered. Clean run!")))
		b.WriteString("\n")
	} else {
		for _, rec := range sum.Mistakes.Triggered {
			title := string(rec.Code)
			if def := catalog.MistakeByCode(rec.Code); def != nil {
				title = def.Title
			}
			line := fmt.Sprintf("  %-34s -%s", title, layout.FormatMoney(rec.TotalCost()))
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if rec.Code == sum.Mistakes.Worst {
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}

		costLine := fmt.Sprintf("  Total cost of mistakes: %s", layout.FormatMoney(sum.Mistakes.TotalCost))
		if sum.Mistakes.Pattern != "" {
			costLine += fmt.Sprintf("   Pattern: %s", sum.Mistakes.Pattern)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(costLine)))
		b.WriteString("\n")
	}

	avoided := len(sum.Mistakes.Avoided)
	if avoided > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d traps avoided", avoided))))
		b.WriteString("\n")
	}

	return b.String()
}

// levelBar renders a ten-cell bar for a percentage score.
func levelBar(pct int) string {
	filled := pct / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
