package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/ui/theme"
)

// OptionItem is one selectable answer in an OptionList.
type OptionItem struct {
	ID    string
	Label string
}

// OptionList is a vertical selector for answer options.
type OptionList struct {
	Options  []OptionItem
	Selected int
}

// NewOptionList creates a new option list with the first option selected.
func NewOptionList(options []OptionItem) OptionList {
	return OptionList{Options: options}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump directly to an option.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(o.Options) {
				o.Selected = idx
			}
		}
	}

	return o, nil
}

// Value returns the ID of the currently selected option, empty when the
// list has no options.
func (o OptionList) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected].ID
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt.Label)

		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
