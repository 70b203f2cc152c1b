package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/splitframe/internal/layout"
	"github.com/bnema/splitframe/internal/messaging"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		return m, refreshTick()

	case tea.MouseMsg:
		// Pointer movement anywhere counts as hover activity on the active
		// pane; the overlay timer handles show and delayed hide.
		if active := m.orchestrator.ActivePane(); active != "" {
			m.dispatch(messaging.NewHover(active))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextLink):
		if len(m.links) > 0 {
			m.cursor = (m.cursor + 1) % len(m.links)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevLink):
		if len(m.links) > 0 {
			m.cursor = (m.cursor - 1 + len(m.links)) % len(m.links)
		}
		return m, nil

	case key.Matches(msg, m.keys.Click):
		m.clickCurrentLink(layout.Modifiers{})
		m.status = "plain click: navigation, no split"
		return m, nil

	case key.Matches(msg, m.keys.SplitVertical):
		m.clickCurrentLink(layout.Modifiers{Shift: true})
		m.status = m.splitStatus("vertical")
		return m, nil

	case key.Matches(msg, m.keys.SplitHoriz):
		m.clickCurrentLink(layout.Modifiers{Alt: true})
		m.status = m.splitStatus("horizontal")
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if active := m.orchestrator.ActivePane(); active != "" {
			m.dispatch(messaging.NewClose(active))
			m.status = fmt.Sprintf("closed pane %s", active)
		}
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		if active := m.orchestrator.ActivePane(); active != "" {
			if err := m.orchestrator.Grow(active); err == nil {
				m.status = "container grew by 0.5"
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		if active := m.orchestrator.ActivePane(); active != "" {
			if err := m.orchestrator.Shrink(active); err == nil {
				m.status = "container shrank by 0.5"
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		if id := m.orchestrator.FocusNext(); id != "" {
			m.status = fmt.Sprintf("focused pane %s", id)
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		if id := m.orchestrator.FocusPrev(); id != "" {
			m.status = fmt.Sprintf("focused pane %s", id)
		}
		return m, nil
	}
	return m, nil
}

// clickCurrentLink sends the selected link through the bridge the same way
// a pane script forwards a captured click.
func (m *Model) clickCurrentLink(mods layout.Modifiers) {
	if len(m.links) == 0 {
		return
	}
	link := m.links[m.cursor]
	m.dispatch(messaging.NewClick(m.orchestrator.ActivePane(), link.Href, link.Text, mods))
}

func (m *Model) dispatch(msg messaging.Message) {
	payload, err := msg.Encode()
	if err != nil {
		m.log.Error().Err(err).Msg("tui: encode bridge message")
		return
	}
	if err := m.bridge.Handle(payload); err != nil {
		m.status = fmt.Sprintf("error: %v", err)
	}
}

func (m *Model) splitStatus(direction string) string {
	containers, panes := m.orchestrator.Layout().NodeCount()
	return fmt.Sprintf("split %s: %d containers, %d panes", direction, containers, panes)
}
