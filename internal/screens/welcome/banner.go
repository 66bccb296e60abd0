package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/ui/theme"
)

const bannerArt = `
 ███████╗ ██████╗  ██████╗██████╗  █████╗
 ██╔════╝██╔═══██╗██╔════╝██╔══██╗██╔══██╗
 ███████╗██║   ██║██║     ██████╔╝███████║
 ╚════██║██║   ██║██║     ██╔══██╗██╔══██║
 ███████║╚██████╔╝╚██████╗██║  ██║██║  ██║
 ╚══════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "S O C R A"

var bannerStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

// RenderBanner returns the SOCRA banner styled in the primary color,
// dropping to a compact wordmark below 46 columns.
func RenderBanner(width int) string {
	if width < 46 {
		return bannerStyle.Render(bannerCompact)
	}
	return bannerStyle.Render(bannerArt)
}
