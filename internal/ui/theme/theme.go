package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette — calm and studious, readable late at night. Hex values are
// tailwind shades so the docs site can match the terminal.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo-500
	Secondary = lipgloss.Color("#0EA5E9") // sky-500
	Accent    = lipgloss.Color("#F59E0B") // amber-500
	Success   = lipgloss.Color("#22C55E") // green-500
	Error     = lipgloss.Color("#F43F5E") // rose-500
	Text      = lipgloss.Color("#F8FAFC") // slate-50
	TextDim   = lipgloss.Color("#94A3B8") // slate-400
	BgDark    = lipgloss.Color("#0F172A") // slate-900
	BgCard    = lipgloss.Color("#1E293B") // slate-800
	Border    = lipgloss.Color("#334155") // slate-700
)

// Base text styles. Everything else derives from Body.
var (
	Body     = lipgloss.NewStyle().Foreground(Text)
	Title    = Body.Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = Body.Foreground(TextDim).Align(lipgloss.Center)
	Hint     = Body.Foreground(TextDim).Italic(true)
)

// Chrome shared by every screen.
var (
	Header = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)
	Footer = Header
)

// Card frames boxed content blocks.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// Selection and verdict states.
var (
	Selected   = Body.Foreground(Primary).Bold(true)
	Unselected = Body
	Correct    = Body.Foreground(Success).Bold(true)
	Partial    = Body.Foreground(Accent).Bold(true)
	Incorrect  = Body.Foreground(Error).Bold(true)
)

// Progress bar cells.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
