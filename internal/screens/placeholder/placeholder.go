package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/router"
	"github.com/venturelab/venturesim/internal/screen"
	"github.com/venturelab/venturesim/internal/ui/theme"
)

// PlaceholderScreen is a generic "coming soon" screen.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "enter":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Coming Soon ╌╌\n\nThis feature is being built.\nCheck back later!")

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
