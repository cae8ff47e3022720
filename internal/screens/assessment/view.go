package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/simstate"
	"github.com/venturelab/venturesim/internal/ui/layout"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.submitting {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your answer...")
	}
	if s.feedback != nil {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the question prompt and its input widget.
func (s *AssessmentScreen) renderQuestion(width int) string {
	var b strings.Builder

	answered, total := s.run.Progress()

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Stage: %s", s.run.Stage.Label()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", answered+1, total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(s.question.Prompt)))
	b.WriteString("\n\n")

	switch s.question.Type {
	case catalog.TypeChoice, catalog.TypeScenario, catalog.TypeOutcome:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nSelect with numbers or arrows, Enter to commit"))

	case catalog.TypeSlider:
		b.WriteString(s.renderSlider(width))

	case catalog.TypeBudget:
		b.WriteString(s.renderBudget(width))

	case catalog.TypeCalculation:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.textInput.View()))

	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("> " + s.textInput.View()))
	}

	if s.validationMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.validationMsg))
	}

	return b.String()
}

// renderSlider renders the 0-100 slider with its current value.
func (s *AssessmentScreen) renderSlider(width int) string {
	barWidth := min(width-20, 50)
	filled := int(float64(barWidth) * s.sliderVal / 100)
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	line := fmt.Sprintf("%s  %3.0f", bar, s.sliderVal)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// renderBudget renders the allocation table with the focused row highlighted.
func (s *AssessmentScreen) renderBudget(width int) string {
	var b strings.Builder

	var total float64
	for _, row := range s.budget {
		if v, err := row.input.FloatValue(); err == nil {
			total += v
		}
	}

	for i, row := range s.budget {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.budgetRow {
			cursor = "▸ "
			nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s  %s%%", cursor, nameStyle.Render(fmt.Sprintf("%-22s", row.category)), row.input.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	totalStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if total > 100 {
		totalStyle = lipgloss.NewStyle().Foreground(theme.Error)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		totalStyle.Render(fmt.Sprintf("Allocated: %.0f%% of 100%%", total))))

	return b.String()
}

// renderFeedback renders the result overlay after an answer lands.
func (s *AssessmentScreen) renderFeedback(width int) string {
	res := s.feedback

	var b strings.Builder
	b.WriteString("\n\n")

	maxPts := s.question.MaxPoints()
	headline := fmt.Sprintf("%.0f / %.0f points", res.Response.PointsAwarded, maxPts)
	headStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Success)
	if maxPts > 0 && res.Response.PointsAwarded < maxPts/2 {
		headStyle = headStyle.Foreground(theme.Error)
	}
	b.WriteString(headStyle.Render(headline))
	b.WriteString("\n")

	if res.Response.NeedsReview {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("provisional score, answer flagged for review"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// State impact of the answer itself.
	if !res.Applied.IsZero() {
		for _, line := range deltaLines(res.Applied) {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Newly triggered mistakes.
	for _, code := range res.NewMistakes {
		def := catalog.MistakeByCode(code)
		title := string(code)
		if def != nil {
			title = def.Title
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Mistake: %s", title)))
		b.WriteString("\n")
		if def != nil && def.Description != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(def.Description))
			b.WriteString("\n")
		}
	}
	if len(res.NewMistakes) > 0 {
		b.WriteString("\n")
	}

	// Stage transition.
	if res.StageAdvanced {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Entering stage: %s", res.EnteredStage.Label())))
		b.WriteString("\n")
		if res.CompoundingCost > 0 {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(fmt.Sprintf("Earlier mistakes compound: -%s", layout.FormatMoney(res.CompoundingCost))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if res.Completed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Assessment complete!"))
		b.WriteString("\n\n")
	}

	if s.persistWarning {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("Progress could not be saved to disk"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// deltaLines renders the non-zero fields of an applied delta, money first.
func deltaLines(d simstate.Delta) []string {
	var lines []string

	addMoney := func(label string, v float64) {
		if v == 0 {
			return
		}
		sign := "+"
		if v < 0 {
			sign = "-"
			v = -v
		}
		lines = append(lines, fmt.Sprintf("%s %s%s", label, sign, layout.FormatMoney(v)))
	}
	addPct := func(label string, v float64) {
		if v == 0 {
			return
		}
		lines = append(lines, fmt.Sprintf("%s %+.0f%%", label, v))
	}

	addMoney("Capital", d.Capital)
	addMoney("Monthly revenue", d.MonthlyRevenue)
	addMoney("Burn rate", d.BurnRate)
	if d.TeamSize != 0 {
		lines = append(lines, fmt.Sprintf("Team size %+d", d.TeamSize))
	}
	addPct("Team satisfaction", d.TeamSatisfaction)
	if d.Customers != 0 {
		lines = append(lines, fmt.Sprintf("Customers %+d", d.Customers))
	}
	addPct("Retention", d.Retention)
	addPct("Product completion", d.ProductCompletion)
	addPct("Market awareness", d.MarketAwareness)
	addPct("Operations efficiency", d.OperationsEfficiency)

	return lines
}

// renderQuitConfirm renders the exit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Exit the assessment?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved after every answer. You can resume later."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, exit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
