package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitframe/internal/config"
	"github.com/bnema/splitframe/internal/logging"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	// Tests press keys faster than a human clicks.
	cfg.Workspace.ClickDebounceMS = 0
	return NewModel(cfg, logging.Nop())
}

func press(m Model, runes ...rune) Model {
	for _, r := range runes {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestPlainClickDoesNotSplit(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Orchestrator().Layout().Empty())
	assert.Contains(t, m.status, "no split")
}

func TestShiftClickSplitsVertically(t *testing.T) {
	m := press(newTestModel(t), 's')

	containers, panes := m.Orchestrator().Layout().NodeCount()
	assert.Equal(t, 3, containers)
	assert.Equal(t, 2, panes)
	assert.Contains(t, m.status, "split vertical")
	require.NoError(t, m.Orchestrator().Layout().Validate())
}

func TestAltClickSplitsHorizontally(t *testing.T) {
	m := press(newTestModel(t), 'a')

	_, panes := m.Orchestrator().Layout().NodeCount()
	assert.Equal(t, 2, panes)
	assert.Contains(t, m.status, "split horizontal")
}

func TestCloseActivePane(t *testing.T) {
	m := press(newTestModel(t), 's')
	active := m.Orchestrator().ActivePane()
	require.NotEmpty(t, active)

	m = press(m, 'x')
	_, panes := m.Orchestrator().Layout().NodeCount()
	assert.Equal(t, 1, panes)
	assert.NotEqual(t, active, m.Orchestrator().ActivePane())
}

func TestLinkCursorWraps(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 0, m.cursor)

	m = press(m, 'k')
	assert.Equal(t, len(m.links)-1, m.cursor, "moving up from the top wraps to the last link")

	m = press(m, 'j')
	assert.Equal(t, 0, m.cursor)
}

func TestFocusCyclesThroughPanes(t *testing.T) {
	m := press(newTestModel(t), 's', 'a')
	leaves := m.Orchestrator().Layout().Leaves()
	require.Len(t, leaves, 3)

	before := m.Orchestrator().ActivePane()
	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	after := m.Orchestrator().ActivePane()
	assert.NotEqual(t, before, after)
	assert.Contains(t, m.status, "focused pane")
}

func TestGrowShrinkKeys(t *testing.T) {
	m := press(newTestModel(t), 's', '+')
	assert.Contains(t, m.status, "grew")

	m = press(m, '-')
	assert.Contains(t, m.status, "shrank")
}

func TestMouseMotionPokesHover(t *testing.T) {
	m := press(newTestModel(t), 's')
	active := m.Orchestrator().ActivePane()
	require.NotEmpty(t, active)
	require.False(t, m.hovers.Visible(string(active)))

	next, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionMotion})
	m = next.(Model)
	assert.True(t, m.hovers.Visible(string(active)), "pointer motion shows the overlay on the active pane")
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRenders(t *testing.T) {
	m := press(newTestModel(t), 's')
	out := m.View()
	assert.Contains(t, out, m.links[0].Text)
	assert.Contains(t, out, m.status)
}

func pressKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}
