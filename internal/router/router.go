// Package router keeps the navigation stack of screens.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/socralabs/socra/internal/screen"
)

// Navigation messages. Screens emit these as commands; the shell's
// router consumes them.
type (
	// PushScreenMsg stacks a new screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg returns to the screen below.
	PopScreenMsg struct{}

	// PopToRootMsg unwinds everything above the root screen.
	PopToRootMsg struct{}

	// ReplaceScreenMsg swaps the active screen without growing the
	// stack.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router owns the screen stack. The bottom screen is fixed at
// construction; navigation only touches the layers above it.
type Router struct {
	stack []screen.Screen
}

// New creates a router showing root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the screen currently on top.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Push stacks s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the active screen. The root never pops.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// PopToRoot unwinds the stack to the bottom screen.
func (r *Router) PopToRoot() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:1]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init. On an
// empty stack it degenerates to Push.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update routes navigation messages to the stack and everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
