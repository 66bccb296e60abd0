package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/ui/theme"
)

// ProgressBar is a fixed-width horizontal bar with an optional label
// and percentage readout.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar. Percent is a fraction in
// [0, 1]; values outside the range are clamped at render time.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar at its configured width. Label and readout eat
// into the width; the bar itself never drops below four cells.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	frac := min(max(p.Percent, 0), 1)
	readout := ""
	if p.ShowPercent {
		readout = fmt.Sprintf("  %d%%", int(frac*100))
	}

	cells := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(readout), 4)
	filled := int(float64(cells) * frac)

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)))
	if readout != "" {
		b.WriteString(theme.Hint.Render(readout))
	}
	return b.String()
}
