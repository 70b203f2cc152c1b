// Package tui is the terminal host for the split workspace: a simulated
// document with links whose modifier-clicks travel through the messaging
// bridge into the split orchestrator, exactly like a pane script would send
// them.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/splitframe/internal/config"
	"github.com/bnema/splitframe/internal/hover"
	"github.com/bnema/splitframe/internal/layout"
	"github.com/bnema/splitframe/internal/messaging"
)

// Link is one clickable entry of the simulated document.
type Link struct {
	Href string
	Text string
}

// DefaultLinks is the simulated document used when no links are configured.
var DefaultLinks = []Link{
	{Href: "https://go.dev/doc/effective_go", Text: "Effective Go"},
	{Href: "https://go.dev/ref/spec", Text: "The Go Programming Language Specification"},
	{Href: "https://go.dev/blog/slices-intro", Text: "Arrays, slices (and strings)"},
	{Href: "https://pkg.go.dev/net/url", Text: "package url"},
}

// Model is the Bubble Tea model for the workspace host.
type Model struct {
	orchestrator *layout.Orchestrator
	bridge       *messaging.Handler
	hovers       *hover.Registry

	links  []Link
	cursor int

	keys   KeyMap
	help   help.Model
	width  int
	height int
	status string

	log zerolog.Logger
}

// refreshMsg redraws the view on a timer so hover overlay expiry becomes
// visible without user input.
type refreshMsg time.Time

const refreshInterval = 500 * time.Millisecond

// NewModel wires the host together from the configuration.
func NewModel(cfg *config.Config, log zerolog.Logger) Model {
	tree := layout.NewLayout()
	orch := layout.NewOrchestrator(tree, cfg.Workspace.DocumentURL, log)

	bridge := messaging.NewHandler(orch, log)
	bridge.SetClickDebounce(time.Duration(cfg.Workspace.ClickDebounceMS) * time.Millisecond)

	hovers := hover.NewRegistry(time.Duration(cfg.Workspace.HoverTimeoutMS)*time.Millisecond, nil)
	bridge.SetHoverFunc(func(paneID layout.NodeID) { hovers.Poke(string(paneID)) })

	return Model{
		orchestrator: orch,
		bridge:       bridge,
		hovers:       hovers,
		links:        DefaultLinks,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		width:        80,
		height:       24,
		status:       "no splits yet: pick a link, then s or a",
		log:          log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return refreshTick()
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Orchestrator exposes the underlying orchestrator, used by tests.
func (m Model) Orchestrator() *layout.Orchestrator { return m.orchestrator }
