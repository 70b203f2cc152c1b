package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitframe/internal/layout"
)

// Terminal renders the tree as bordered lipgloss boxes for the TUI host.
// Space along a container's axis is split proportionally to child flex
// weights, the terminal stand-in for flex-grow.
type Terminal struct {
	Width  int
	Height int

	paneStyle   lipgloss.Style
	activeStyle lipgloss.Style
}

// NewTerminal returns a renderer targeting the given cell budget.
func NewTerminal(width, height int) *Terminal {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return &Terminal{
		Width:       width,
		Height:      height,
		paneStyle:   base,
		activeStyle: base.BorderForeground(lipgloss.Color("212")),
	}
}

// Render draws the snapshot into the renderer's cell budget.
func (r *Terminal) Render(snapshot layout.Snapshot) (string, error) {
	if snapshot.ID == "" {
		return lipgloss.NewStyle().
			Width(max(r.Width, 1)).
			Height(max(r.Height, 1)).
			Align(lipgloss.Center, lipgloss.Center).
			Render("no panes yet"), nil
	}
	return r.renderNode(snapshot, max(r.Width, 4), max(r.Height, 3)), nil
}

func (r *Terminal) renderNode(s layout.Snapshot, width, height int) string {
	if s.Leaf {
		return r.renderPane(s, width, height)
	}

	n := len(s.Children)
	if n == 0 {
		return ""
	}

	sizes := shares(s.Children, axisSize(s.Direction, width, height))
	parts := make([]string, 0, n)
	for i, child := range s.Children {
		if s.Direction == layout.DirectionHorizontal {
			parts = append(parts, r.renderNode(child, sizes[i], height))
		} else {
			parts = append(parts, r.renderNode(child, width, sizes[i]))
		}
	}
	if s.Direction == layout.DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Terminal) renderPane(s layout.Snapshot, width, height int) string {
	style := r.paneStyle
	if s.Active {
		style = r.activeStyle
	}
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	label := truncate(string(s.ID), innerW) + "\n" + truncate(s.URL, innerW)
	return style.Width(innerW).Height(innerH).Render(label)
}

func axisSize(dir layout.Direction, width, height int) int {
	if dir == layout.DirectionHorizontal {
		return width
	}
	return height
}

// shares splits total cells across children proportionally to their flex
// weights. Weights at or below zero (the unclamped shrink case) collapse to
// a minimal share rather than a negative width.
func shares(children []layout.Snapshot, total int) []int {
	n := len(children)
	weights := make([]float64, n)
	var sum float64
	for i, child := range children {
		w := childFlex(child)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		sum += w
	}
	if sum <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(n)
	}

	sizes := make([]int, n)
	used := 0
	for i := range children {
		if i == n-1 {
			sizes[i] = max(total-used, 1)
			break
		}
		sizes[i] = max(int(float64(total)*weights[i]/sum), 1)
		used += sizes[i]
	}
	return sizes
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
