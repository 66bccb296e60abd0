package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/ui/theme"
)

// Screens are designed for a classic 80x24 terminal and up.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// chromeBar frames the header and footer rows.
var chromeBar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

var (
	brandStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
	tallyStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// IsTooSmall reports whether the terminal is below the supported size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	prompt := fmt.Sprintf("Terminal too small\n\nsocra needs at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(prompt)
}

// RenderHeader draws the top bar: brand on the left, the screen title
// centered, and the cross-session mastered tally on the right (hidden
// while zero).
func RenderHeader(title string, mastered int, width int) string {
	brand := brandStyle.Render("  Socra")
	screenTitle := titleStyle.Render(title)
	tally := ""
	if mastered > 0 {
		tally = tallyStyle.Render(fmt.Sprintf("◈ %d mastered", mastered))
	}

	inner := max(width-4, 0) // border and padding columns
	brandW := lipgloss.Width(brand)
	titleW := lipgloss.Width(screenTitle)
	tallyW := lipgloss.Width(tally)

	leftGap := max((inner-titleW)/2-brandW, 1)
	rightGap := max(inner-brandW-leftGap-titleW-tallyW, 1)

	row := brand + strings.Repeat(" ", leftGap) + screenTitle + strings.Repeat(" ", rightGap) + tally
	return chromeBar.Width(width).Render(row)
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return chromeBar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, stretching content to
// fill the leftover rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	filled := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return header + "\n" + filled + "\n" + footer
}
