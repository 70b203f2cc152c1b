package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitframe/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	linkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Underline(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("splitframe"))
	b.WriteString(dimStyle.Render("  " + m.status))
	b.WriteString("\n\n")

	b.WriteString(m.renderDocument())
	b.WriteString("\n")

	workspaceHeight := m.height - strings.Count(b.String(), "\n") - 3
	renderer := render.NewTerminal(m.width, workspaceHeight)
	tree, err := renderer.Render(m.orchestrator.Snapshot())
	if err != nil {
		tree = dimStyle.Render(fmt.Sprintf("render error: %v", err))
	}
	b.WriteString(tree)
	b.WriteString("\n")

	if active := m.orchestrator.ActivePane(); active != "" && m.hovers.Visible(string(active)) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("overlay visible on %s", active)))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderDocument() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("document links:"))
	b.WriteString("\n")
	for i, link := range m.links {
		style := linkStyle
		marker := "  "
		if i == m.cursor {
			style = selStyle
			marker = "> "
		}
		b.WriteString(marker + style.Render(link.Text) + dimStyle.Render("  "+link.Href))
		b.WriteString("\n")
	}
	return b.String()
}
