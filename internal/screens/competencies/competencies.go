package competencies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/screen"
	"github.com/venturelab/venturesim/internal/ui/layout"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

// CompetenciesScreen displays all sixteen competencies with the scores from
// the most recent run.
type CompetenciesScreen struct {
	codes        []catalog.CompetencyCode
	scores       map[catalog.CompetencyCode]scoring.CompetencyScore
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CompetenciesScreen)(nil)
var _ screen.KeyHintProvider = (*CompetenciesScreen)(nil)

// New creates a CompetenciesScreen. scores may be nil when no run exists yet.
func New(scores map[catalog.CompetencyCode]scoring.CompetencyScore) *CompetenciesScreen {
	return &CompetenciesScreen{
		codes:  catalog.AllCompetencies(),
		scores: scores,
	}
}

func (s *CompetenciesScreen) Init() tea.Cmd {
	return nil
}

func (s *CompetenciesScreen) Title() string {
	return "Competency Map"
}

func (s *CompetenciesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CompetenciesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.codes)-1 {
				s.cursor++
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CompetenciesScreen) View(width, height int) string {
	s.adjustScroll(height - 2)

	var lines []string
	lines = append(lines, "")

	visible := 0
	for i, code := range s.codes {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height-2 {
			break
		}
		lines = append(lines, s.renderRow(code, i == s.cursor, width))
		visible++
	}

	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor inside the viewport.
func (s *CompetenciesScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// renderRow renders one competency with its score bar and level.
func (s *CompetenciesScreen) renderRow(code catalog.CompetencyCode, selected bool, width int) string {
	cs, assessed := s.scores[code]

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	name := fmt.Sprintf("%-24s", code.DisplayName())

	var right string
	if assessed && cs.Possible > 0 {
		right = fmt.Sprintf("%s %3d%%  %s", bar(cs.Percentage), cs.Percentage, cs.Level.Label())
	} else {
		right = fmt.Sprintf("%s   --  not assessed", bar(0))
	}

	var nameStyle, rightStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		rightStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case assessed && cs.Level == catalog.LevelProficient:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		rightStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case assessed && cs.Possible > 0:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		rightStyle = lipgloss.NewStyle().Foreground(theme.Text)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		rightStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	return fmt.Sprintf("    %s%s  %s", cursor, nameStyle.Render(name), rightStyle.Render(right))
}

// bar renders a twelve-cell score bar.
func bar(pct int) string {
	filled := pct * 12 / 100
	if filled > 12 {
		filled = 12
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 12-filled)
}
