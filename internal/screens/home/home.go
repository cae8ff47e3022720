package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/scoring"
	"github.com/venturelab/venturesim/internal/screen"
	assessmentscreen "github.com/venturelab/venturesim/internal/screens/assessment"
	"github.com/venturelab/venturesim/internal/screens/competencies"
	"github.com/venturelab/venturesim/internal/screens/history"
	"github.com/venturelab/venturesim/internal/screens/placeholder"
	"github.com/venturelab/venturesim/internal/ui/components"
	"github.com/venturelab/venturesim/internal/ui/layout"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	latest     *assessment.Assessment
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. recorder may be nil, in which case runs are
// in-memory only and resume/history are unavailable.
func New(svc *assessment.Service, recorder *assessment.StoreRecorder) *HomeScreen {
	// Load the most recent run for the stats card and the resume entry.
	var latest *assessment.Assessment
	if recorder != nil {
		latest, _ = recorder.LoadLatest(context.Background())
	}

	resumable := latest != nil && latest.Status == assessment.StatusInProgress

	menuLabels := []string{"NEW ASSESSMENT", "RESUME", "COMPETENCY MAP", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentscreen.New(svc, assessment.New()),
				}
			}
		}},
		{Label: menuLabels[1], Disabled: !resumable, Action: func() tea.Cmd {
			if !resumable {
				return nil
			}
			run := latest
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentscreen.New(svc, run),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			scores := competencyScores(latest)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: competencies.New(scores)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if recorder == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(recorder)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		latest:     latest,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw))

	if !compact {
		sections = append(sections, h.renderStatsCard(cw))
	}

	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")

	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderTitle renders the product wordmark.
func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("V E N T U R E S I M")
}

// renderStatsCard renders the latest-run status card.
func (h *HomeScreen) renderStatsCard(cw int) string {
	var lines []string

	if h.latest == nil {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No assessments yet"),
			lipgloss.NewStyle().Foreground(theme.Text).
				Render("Start one to see how you run a venture"),
		)
	} else {
		stageLine := h.latest.Stage.Label()
		if h.latest.Status == assessment.StatusComplete {
			stageLine = "Completed"
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(stageLine),
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render(layout.FormatMoney(h.latest.State.Financial.Capital))+
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render("  ·  ")+
				lipgloss.NewStyle().Foreground(theme.Text).
					Render(fmt.Sprintf("%d answered", len(h.latest.Responses))),
		)
	}

	return components.PanelCard(strings.Join(lines, "\n"), cw)
}

// renderMenu renders the button stack.
func (h *HomeScreen) renderMenu(cw int) string {
	bw := cw - 8
	if bw < 16 {
		bw = 16
	}

	var buttons []string
	for i, item := range h.menu.Items {
		buttons = append(buttons, components.PanelButton(item.Label, i == h.menu.Selected, bw))
	}
	return lipgloss.JoinVertical(lipgloss.Center, buttons...)
}

// competencyScores derives the competency map input from the latest run,
// nil when no run exists.
func competencyScores(latest *assessment.Assessment) map[catalog.CompetencyCode]scoring.CompetencyScore {
	if latest == nil {
		return nil
	}
	return scoring.CompetencyScores(latest.Responses)
}
