package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/screens/home"
	"github.com/socralabs/socra/internal/screens/session"
	"github.com/socralabs/socra/internal/screens/welcome"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/socralabs/socra/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI. A nil Oracle
// disables session screens but leaves browsing available.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Recorder     tutor.Recorder
	Oracle       oracle.Oracle
	Compactor    *oracle.Compactor

	// StartTopic opens straight into a session for the topic,
	// skipping the welcome screen. Requires an Oracle.
	StartTopic string

	// ResumeSession continues a restored session. Requires an Oracle.
	ResumeSession *tutor.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts        Options
	ctrl        *tutor.Controller
	router      *router.Router
	startScreen screen.Screen
	width       int
	height      int
	mastered    int
	prevDepth   int
}

// newAppModel creates an AppModel opening on the welcome screen.
func newAppModel(opts Options) AppModel {
	var ctrl *tutor.Controller
	if opts.Oracle != nil {
		ctrl = tutor.NewController(opts.Oracle, opts.Recorder, opts.Compactor)
	}

	homeFactory := func() screen.Screen {
		return home.New(ctrl, opts.EventRepo, opts.SnapshotRepo)
	}

	var initial screen.Screen = welcome.New(homeFactory)
	var startScreen screen.Screen
	if ctrl != nil {
		switch {
		case opts.ResumeSession != nil:
			startScreen = session.Resume(ctrl, opts.ResumeSession)
		case opts.StartTopic != "":
			if t, concepts, err := topic.Lookup(opts.StartTopic); err == nil {
				startScreen = session.New(ctrl, t, concepts)
			}
		}
	}
	if startScreen != nil {
		// Jumping into a session skips the splash; ending the
		// session pops back to home.
		initial = homeFactory()
	}

	return AppModel{
		opts:        opts,
		ctrl:        ctrl,
		router:      router.New(initial),
		startScreen: startScreen,
		mastered:    loadMastered(opts.SnapshotRepo),
		prevDepth:   1,
	}
}

// loadMastered counts mastered concepts across all topics in the
// latest snapshot, best effort.
func loadMastered(snaps store.SnapshotRepo) int {
	if snaps == nil {
		return 0
	}
	snap, err := snaps.Latest(context.Background())
	if err != nil || snap == nil {
		return 0
	}
	count := 0
	for _, concepts := range snap.Data.Topics {
		for _, raw := range concepts {
			if st, ok := topic.ParseStatus(raw); ok && st == topic.StatusMastered {
				count++
			}
		}
	}
	return count
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.startScreen != nil {
		start := m.startScreen
		return tea.Batch(cmd, func() tea.Msg {
			return router.PushScreenMsg{Screen: start}
		})
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)

	// Returning to the home level means a session may have finished;
	// refresh the header's mastered count.
	depth := m.router.Depth()
	if depth == 1 && m.prevDepth > 1 {
		m.mastered = loadMastered(m.opts.SnapshotRepo)
	}
	m.prevDepth = depth

	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.mastered, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints takes the active screen's own hints when it provides
// them, with quit appended.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
