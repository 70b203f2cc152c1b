package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/splitframe/internal/layout"
	"github.com/bnema/splitframe/internal/logging"
)

// splitOnce builds a real two-pane workspace and returns its snapshot.
func splitOnce(t *testing.T, dir layout.Direction) layout.Snapshot {
	t.Helper()
	o := layout.NewOrchestrator(layout.NewLayout(), "https://host.example/doc", logging.Nop())
	_, err := o.OpenInSplit(layout.Anchor{URL: "https://docs.example.com/page", Text: "page"}, dir)
	require.NoError(t, err)
	return o.Layout().Snapshot(o.ActivePane())
}

func parseFragment(t *testing.T, markup string) []*html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	require.NoError(t, err)
	return nodes
}

func collect(nodes []*html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func TestHTMLRenderEmpty(t *testing.T) {
	out, err := NewHTML().Render(layout.Snapshot{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHTMLRenderTree(t *testing.T) {
	snap := splitOnce(t, layout.DirectionVertical)
	out, err := NewHTML().Render(snap)
	require.NoError(t, err)

	nodes := parseFragment(t, out)

	t.Run("one iframe per pane", func(t *testing.T) {
		frames := collect(nodes, func(n *html.Node) bool { return n.DataAtom == atom.Iframe })
		require.Len(t, frames, 2)
		for _, f := range frames {
			assert.Contains(t, attrVal(f, "src"), "force_reload=")
		}
	})

	t.Run("flex direction follows container direction", func(t *testing.T) {
		containers := collect(nodes, func(n *html.Node) bool { return hasClass(n, ClassContainer) })
		require.Len(t, containers, 3)
		assert.Contains(t, attrVal(containers[0], "style"), "flex-direction:column", "vertical root stacks children")
		for _, c := range containers[1:] {
			assert.Contains(t, attrVal(c, "style"), "flex-direction:row")
		}
	})

	t.Run("exactly one pane is marked active", func(t *testing.T) {
		active := collect(nodes, func(n *html.Node) bool { return hasClass(n, ClassActive) })
		require.Len(t, active, 1)
		assert.True(t, hasClass(active[0], ClassPane))
	})

	t.Run("each pane carries a full overlay", func(t *testing.T) {
		buttons := collect(nodes, func(n *html.Node) bool { return n.DataAtom == atom.Button })
		require.Len(t, buttons, 6)
		actions := map[string]int{}
		for _, b := range buttons {
			actions[attrVal(b, "data-action")]++
			assert.NotEmpty(t, attrVal(b, "data-pane"))
		}
		assert.Equal(t, map[string]int{ActionClose: 2, ActionGrow: 2, ActionShrink: 2}, actions)
	})
}

func TestHTMLOverlayPlacement(t *testing.T) {
	snap := splitOnce(t, layout.DirectionHorizontal)

	endOut, err := NewHTML().Render(snap)
	require.NoError(t, err)
	assert.Contains(t, endOut, ClassOverlayEnd)
	assert.NotContains(t, endOut, ClassOverlayStart)

	r := NewHTML()
	r.Overlay = layout.PlacementStart
	startOut, err := r.Render(snap)
	require.NoError(t, err)
	assert.Contains(t, startOut, ClassOverlayStart)
}

func TestHTMLEscapesURLs(t *testing.T) {
	snap := layout.Snapshot{
		ID:   "pane001",
		Leaf: true,
		URL:  `https://example.com/?q="a"&b=<c>`,
	}
	out, err := NewHTML().Render(snap)
	require.NoError(t, err)
	assert.NotContains(t, out, `src="https://example.com/?q="a"`, "quotes in the URL must not break the attribute")

	frames := collect(parseFragment(t, out), func(n *html.Node) bool { return n.DataAtom == atom.Iframe })
	require.Len(t, frames, 1)
	assert.Equal(t, snap.URL, attrVal(frames[0], "src"), "escaping round-trips")
}
