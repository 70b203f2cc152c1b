package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/splitframe/internal/layout"
)

// CSS classes on the emitted markup. Hosts style them; the renderer only
// guarantees the structure.
const (
	ClassContainer    = "sf-container"
	ClassPane         = "sf-pane"
	ClassOverlay      = "sf-overlay"
	ClassOverlayStart = "sf-overlay-start"
	ClassOverlayEnd   = "sf-overlay-end"
	ClassActive       = "sf-active"
)

// Overlay button actions, matched by the pane script. Clicks on these stop
// propagation in the host so they never reach the split handling.
const (
	ActionClose  = "close"
	ActionGrow   = "grow"
	ActionShrink = "shrink"
)

// HTML renders the tree as nested flexbox containers with one iframe per
// pane, the same structure the document body carries in the browser host.
type HTML struct {
	// Overlay picks the pane edge the control overlay docks at.
	Overlay layout.Placement
}

// NewHTML returns an HTML renderer with the overlay docked at the end edge.
func NewHTML() *HTML {
	return &HTML{Overlay: layout.PlacementEnd}
}

// Render serializes the snapshot. An empty tree renders to an empty string.
func (r *HTML) Render(snapshot layout.Snapshot) (string, error) {
	if snapshot.ID == "" {
		return "", nil
	}
	var b strings.Builder
	if err := html.Render(&b, r.buildNode(snapshot)); err != nil {
		return "", fmt.Errorf("render: html: %w", err)
	}
	return b.String(), nil
}

func (r *HTML) buildNode(s layout.Snapshot) *html.Node {
	if s.Leaf {
		return r.buildPane(s)
	}
	return r.buildContainer(s)
}

func (r *HTML) buildContainer(s layout.Snapshot) *html.Node {
	flow := "column"
	if s.Direction == layout.DirectionHorizontal {
		flow = "row"
	}
	div := elem(atom.Div,
		attr("id", string(s.ID)),
		attr("class", ClassContainer),
		attr("style", fmt.Sprintf("display:flex;flex-direction:%s;flex-grow:%g", flow, s.Flex)),
	)
	for _, child := range s.Children {
		div.AppendChild(r.buildNode(child))
	}
	return div
}

func (r *HTML) buildPane(s layout.Snapshot) *html.Node {
	class := ClassPane
	if s.Active {
		class += " " + ClassActive
	}
	div := elem(atom.Div,
		attr("id", string(s.ID)),
		attr("class", class),
		attr("style", "position:relative;flex-grow:1"),
	)
	frame := elem(atom.Iframe,
		attr("src", s.URL),
		attr("style", "width:100%;height:100%;border:0"),
	)
	div.AppendChild(frame)
	div.AppendChild(r.buildOverlay(s.ID))
	return div
}

func (r *HTML) buildOverlay(paneID layout.NodeID) *html.Node {
	edge := ClassOverlayEnd
	if r.Overlay == layout.PlacementStart {
		edge = ClassOverlayStart
	}
	overlay := elem(atom.Div, attr("class", ClassOverlay+" "+edge))
	for _, action := range []struct {
		name  string
		label string
	}{
		{ActionClose, "×"},
		{ActionGrow, "+"},
		{ActionShrink, "−"},
	} {
		btn := elem(atom.Button,
			attr("data-action", action.name),
			attr("data-pane", string(paneID)),
		)
		btn.AppendChild(&html.Node{Type: html.TextNode, Data: action.label})
		overlay.AppendChild(btn)
	}
	return overlay
}

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
