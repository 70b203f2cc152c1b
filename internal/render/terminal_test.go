package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitframe/internal/layout"
)

func TestTerminalRenderEmpty(t *testing.T) {
	out, err := NewTerminal(40, 10).Render(layout.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, out, "no panes yet")
}

func TestTerminalRenderTree(t *testing.T) {
	snap := splitOnce(t, layout.DirectionVertical)
	out, err := NewTerminal(60, 20).Render(snap)
	require.NoError(t, err)

	var leaves []layout.Snapshot
	var walk func(layout.Snapshot)
	walk = func(s layout.Snapshot) {
		if s.Leaf {
			leaves = append(leaves, s)
			return
		}
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(snap)
	require.Len(t, leaves, 2)

	for _, leaf := range leaves {
		assert.Contains(t, out, string(leaf.ID), "pane ID appears in the drawing")
	}
	assert.Contains(t, out, "╭", "panes are boxed")
}

func TestTerminalTruncatesLongURLs(t *testing.T) {
	snap := layout.Snapshot{
		ID:   "pane001",
		Leaf: true,
		URL:  "https://example.com/" + strings.Repeat("very-long-path/", 20),
	}
	out, err := NewTerminal(24, 5).Render(snap)
	require.NoError(t, err)
	assert.Contains(t, out, "…")
}

func TestShares(t *testing.T) {
	leaf := func(id string) layout.Snapshot {
		return layout.Snapshot{ID: layout.NodeID(id), Leaf: true}
	}
	weighted := func(id string, flex float64) layout.Snapshot {
		return layout.Snapshot{ID: layout.NodeID(id), Flex: flex, Children: []layout.Snapshot{leaf(id + "c")}}
	}

	t.Run("equal weights split evenly", func(t *testing.T) {
		sizes := shares([]layout.Snapshot{leaf("a"), leaf("b")}, 20)
		assert.Equal(t, []int{10, 10}, sizes)
	})

	t.Run("a grown container gets proportionally more", func(t *testing.T) {
		sizes := shares([]layout.Snapshot{weighted("a", 1.5), weighted("b", 1.0)}, 25)
		assert.Equal(t, []int{15, 10}, sizes)
	})

	t.Run("the remainder lands on the last child", func(t *testing.T) {
		sizes := shares([]layout.Snapshot{leaf("a"), leaf("b"), leaf("c")}, 10)
		total := 0
		for _, s := range sizes {
			total += s
		}
		assert.Equal(t, 10, total)
	})

	t.Run("negative weights never yield negative sizes", func(t *testing.T) {
		sizes := shares([]layout.Snapshot{weighted("a", -0.5), weighted("b", 1.0)}, 10)
		for _, s := range sizes {
			assert.GreaterOrEqual(t, s, 1)
		}
	})

	t.Run("all-zero weights fall back to an even split", func(t *testing.T) {
		sizes := shares([]layout.Snapshot{weighted("a", 0), weighted("b", 0)}, 8)
		assert.Equal(t, []int{4, 4}, sizes)
	})
}
