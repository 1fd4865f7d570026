package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

const bannerArt = `
 ███████╗ ██████╗ ██╗          ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔════╝██╔═══██╗██║         ██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ███████╗██║   ██║██║         ██║   ██║██║   ██║█████╗  ███████╗   ██║
 ╚════██║██║▄▄ ██║██║         ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ███████║╚██████╔╝███████╗    ╚██████╔╝╚██████╔╝███████╗███████║   ██║
 ╚══════╝ ╚══▀▀═╝ ╚══════╝     ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "S Q L   Q U E S T"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
