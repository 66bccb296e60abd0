package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/socralabs/socra/internal/router"
	"github.com/socralabs/socra/internal/screen"
	"github.com/socralabs/socra/internal/screens/conceptmap"
	"github.com/socralabs/socra/internal/screens/notice"
	"github.com/socralabs/socra/internal/screens/topics"
	"github.com/socralabs/socra/internal/screens/transcripts"
	"github.com/socralabs/socra/internal/screens/welcome"
	"github.com/socralabs/socra/internal/store"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/tutor"
	"github.com/socralabs/socra/internal/ui/components"
	"github.com/socralabs/socra/internal/ui/theme"
)

const oracleMissingNotice = "The tutor needs a configured oracle.\n\n" +
	"Set SOCRA_LLM_PROVIDER to anthropic, openai, gemini, or\n" +
	"openrouter, along with the provider's API key, and restart."

const transcriptsMissingNotice = "Transcripts live in the session database,\n" +
	"which could not be opened.\n\n" +
	"Check SOCRA_DB and restart."

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu

	masteredCount   int
	inProgressCount int
	sessionCount    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. A nil ctrl means no oracle is configured;
// starting a session then explains what to set instead.
func New(ctrl *tutor.Controller, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{}
	h.loadStats(eventRepo, snapRepo)

	items := []components.MenuItem{
		{Label: "START SESSION", Action: func() tea.Cmd {
			if ctrl == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: notice.New("Start Session", oracleMissingNotice),
					}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(ctrl)}
			}
		}},
		{Label: "CONCEPT MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: conceptmap.New(snapRepo, eventRepo)}
			}
		}},
		{Label: "TRANSCRIPTS", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: notice.New("Transcripts", transcriptsMissingNotice)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: transcripts.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// loadStats folds the latest snapshot and session log into the home
// counters, best effort.
func (h *HomeScreen) loadStats(eventRepo store.EventRepo, snapRepo store.SnapshotRepo) {
	ctx := context.Background()

	if snapRepo != nil {
		if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
			for _, concepts := range snap.Data.Topics {
				for _, raw := range concepts {
					st, ok := topic.ParseStatus(raw)
					if !ok {
						continue
					}
					switch st {
					case topic.StatusMastered:
						h.masteredCount++
					case topic.StatusProbing, topic.StatusRemediating:
						h.inProgressCount++
					}
				}
			}
		}
	}

	if eventRepo != nil {
		if sessions, err := eventRepo.QuerySessions(ctx, store.QueryOpts{}); err == nil {
			h.sessionCount = len(sessions)
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Equal-width menu lines keep the cursor column steady under
	// centered joining.
	menu := lipgloss.NewStyle().Width(24).Render(h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center,
		welcome.RenderBanner(width),
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("learning by questioning"),
		"",
		h.renderStats(),
		"",
		menu,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	mastered := lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("● %d mastered", h.masteredCount))
	inProgress := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("◐ %d in progress", h.inProgressCount))
	sessions := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d dialogues", h.sessionCount))

	return fmt.Sprintf("%s   %s   %s", mastered, inProgress, sessions)
}
