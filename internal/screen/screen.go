// Package screen defines the contract between the app shell and the
// screens it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/ui/layout"
)

// Screen is one full-terminal view. The shell owns the header and
// footer; a screen renders only the content area between them.
type Screen interface {
	Init() tea.Cmd

	// Update consumes a message and returns the screen to show next,
	// usually the receiver itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its footer key bindings. The
// shell shows a default set for screens that do not implement it.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
