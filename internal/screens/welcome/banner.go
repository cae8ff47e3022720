package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/venturelab/venturesim/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗███████╗███╗   ██╗████████╗██╗   ██╗██████╗ ███████╗
 ██║   ██║██╔════╝████╗  ██║╚══██╔══╝██║   ██║██╔══██╗██╔════╝
 ██║   ██║█████╗  ██╔██╗ ██║   ██║   ██║   ██║██████╔╝█████╗
 ╚██╗ ██╔╝██╔══╝  ██║╚██╗██║   ██║   ██║   ██║██╔══██╗██╔══╝
  ╚████╔╝ ███████╗██║ ╚████║   ██║   ╚██████╔╝██║  ██║███████╗
   ╚═══╝  ╚══════╝╚═╝  ╚═══╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝
                   ███████╗██╗███╗   ███╗
                   ██╔════╝██║████╗ ████║
                   ███████╗██║██╔████╔██║
                   ╚════██║██║██║╚██╔╝██║
                   ███████║██║██║ ╚═╝ ██║
                   ╚══════╝╚═╝╚═╝     ╚═╝`

const bannerCompact = "V E N T U R E S I M"

// RenderBanner returns the VENTURESIM banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 66 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
