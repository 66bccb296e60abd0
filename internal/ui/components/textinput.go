package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for free-form learner answers.
// View, Value and the rest of the model surface are promoted.
type TextInput struct {
	textinput.Model
}

// NewTextInput creates a focused input. charLimit of zero or less
// means unlimited.
func NewTextInput(placeholder string, charLimit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = max(charLimit, 0)
	m.Focus()
	return TextInput{Model: m}
}

func (t TextInput) Init() tea.Cmd {
	return t.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Reset clears the input for the next answer.
func (t *TextInput) Reset() {
	t.SetValue("")
}
