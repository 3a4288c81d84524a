package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗  █████╗ ██╗   ██╗██████╗ ██╗     ███████╗███╗   ██╗███████╗
 ██╔════╝██╔══██╗██╔══██╗██║   ██║██╔══██╗██║     ██╔════╝████╗  ██║██╔════╝
 █████╗  ██████╔╝███████║██║   ██║██║  ██║██║     █████╗  ██╔██╗ ██║███████╗
 ██╔══╝  ██╔══██╗██╔══██║██║   ██║██║  ██║██║     ██╔══╝  ██║╚██╗██║╚════██║
 ██║     ██║  ██║██║  ██║╚██████╔╝██████╔╝███████╗███████╗██║ ╚████║███████║
 ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝`

const bannerCompact = "F R A U D L E N S"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 78

// RenderBanner returns the FRAUDLENS banner styled in the primary color,
// or a compact fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
