package layout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/splitframe/internal/urlutil"
)

// Anchor describes the link a split originates from: its target URL, the
// text of the link (used to anchor a text fragment on the relocated source
// document), and the pane the click happened in. PaneID is empty when the
// click came from the top-level document itself.
type Anchor struct {
	URL    string
	Text   string
	PaneID NodeID
}

// SplitResult reports what OpenInSplit created.
type SplitResult struct {
	// NewPane shows the anchor's target URL.
	NewPane NodeID
	// Wrapper is the inverse-direction container holding NewPane.
	Wrapper NodeID
	// AttachedTo is the container Wrapper was appended under.
	AttachedTo NodeID
	// SourcePane is set on the first split only, when the top-level document
	// is relocated into a pane of its own.
	SourcePane NodeID
}

// ErrSplitInProgress reports a reentrant split. Splits run to completion
// inside one event dispatch; the guard keeps that single-writer invariant
// explicit in hosts that could interleave handlers.
var ErrSplitInProgress = errors.New("layout: split already in progress")

// Event kinds emitted to the observer after a tree mutation.
const (
	EventSplit = "split"
	EventClose = "close"
	EventFocus = "focus"
)

// Event notifies an observing host about a completed tree mutation.
type Event struct {
	Kind string
	Pane NodeID
}

// Orchestrator owns one layout tree and applies splits, closes and focus
// changes to it. It is the only writer; hosts feed it events through the
// messaging bridge.
type Orchestrator struct {
	layout    *Layout
	docURL    string
	active    NodeID
	splitting bool
	observer  func(Event)
	log       zerolog.Logger
}

// NewOrchestrator wraps a layout rooted at the document currently shown at
// docURL. The layout is usually empty; the first split replaces the document
// body with the initial container pair.
func NewOrchestrator(l *Layout, docURL string, log zerolog.Logger) *Orchestrator {
	if l == nil {
		l = NewLayout()
	}
	return &Orchestrator{
		layout: l,
		docURL: docURL,
		log:    log,
	}
}

// Layout exposes the underlying tree, mainly for snapshots and tests.
func (o *Orchestrator) Layout() *Layout { return o.layout }

// SetObserver registers a callback invoked after every tree mutation.
func (o *Orchestrator) SetObserver(fn func(Event)) { o.observer = fn }

func (o *Orchestrator) emit(evt Event) {
	if o.observer != nil {
		o.observer(evt)
	}
}

// ActivePane returns the pane that last received focus, empty when the tree
// is empty.
func (o *Orchestrator) ActivePane() NodeID { return o.active }

// Snapshot builds a render snapshot with the active pane marked.
func (o *Orchestrator) Snapshot() Snapshot { return o.layout.Snapshot(o.active) }

// HandleClick is the entry point the host bridge forwards link clicks to.
// Without a direction-selecting modifier the click is a plain navigation and
// nothing happens here.
func (o *Orchestrator) HandleClick(anchor Anchor, mods Modifiers) (*SplitResult, error) {
	dir, ok := DirectionFromModifiers(mods)
	if !ok {
		return nil, nil
	}
	return o.OpenInSplit(anchor, dir)
}

// OpenInSplit inserts a new pane for the anchor's URL next to the pane the
// click originated from, along the requested direction.
//
// The first split ever replaces the document body with a root container of
// the requested direction holding one inverse-direction container with the
// relocated source document. The double nesting is deliberate: the outer
// axis places the two panes, the inner axis lets a later perpendicular
// split of either pane land without disturbing the first one, so splits
// compose arbitrarily deep with no rebalancing.
//
// Later splits wrap the new pane in an inverse-direction container and pick
// its attachment point with one tie-break: when the parent of the source's
// enclosing container already runs in the requested direction, the wrapper
// joins that parent as a sibling, extending the existing row or column
// instead of nesting another level.
func (o *Orchestrator) OpenInSplit(anchor Anchor, dir Direction) (*SplitResult, error) {
	if o.splitting {
		return nil, ErrSplitInProgress
	}
	o.splitting = true
	defer func() { o.splitting = false }()

	inv, err := Inverse(dir)
	if err != nil {
		return nil, err
	}

	res := &SplitResult{}

	if o.layout.Empty() {
		srcURL, fragErr := urlutil.WithTextFragment(o.docURL, anchor.Text)
		if fragErr != nil {
			return nil, fmt.Errorf("layout: source url: %w", fragErr)
		}
		root := o.layout.CreateContainer(dir)
		if err := o.layout.SetRoot(root.ID); err != nil {
			return nil, err
		}
		inner := o.layout.CreateContainer(inv)
		if err := o.layout.Attach(root.ID, inner.ID); err != nil {
			return nil, err
		}
		src, err := o.layout.AddPane(inner.ID, srcURL)
		if err != nil {
			return nil, err
		}
		res.SourcePane = src.ID
		// The new pane now splits off the relocated source document.
		anchor.PaneID = src.ID
		o.log.Debug().
			Str("root", string(root.ID)).
			Str("source", string(src.ID)).
			Stringer("direction", dir).
			Msg("first split: document body replaced by container tree")
	}

	enclosing := o.layout.FindEnclosingContainer(anchor.PaneID)
	if enclosing == "" {
		// Source pane already closed, or the click came from the top-level
		// document. A split must never silently fail to produce a pane, so
		// it is re-rooted at the top container instead.
		enclosing = o.layout.Root()
		o.log.Debug().
			Str("pane", string(anchor.PaneID)).
			Msg("source pane not found, splitting from root")
	}

	attachTo := enclosing
	if c, ok := o.layout.Container(enclosing); ok && c.parent != "" {
		if parent, ok := o.layout.Container(c.parent); ok && parent.Direction == dir {
			attachTo = parent.ID
		}
	}

	wrapper := o.layout.CreateContainer(inv)
	if err := o.layout.Attach(attachTo, wrapper.ID); err != nil {
		return nil, err
	}
	pane, err := o.layout.AddPane(wrapper.ID, anchor.URL)
	if err != nil {
		o.layout.RemoveNode(wrapper.ID)
		return nil, err
	}

	res.NewPane = pane.ID
	res.Wrapper = wrapper.ID
	res.AttachedTo = attachTo
	o.active = pane.ID

	o.log.Info().
		Str("pane", string(pane.ID)).
		Str("container", string(attachTo)).
		Stringer("direction", dir).
		Str("url", pane.URL).
		Msg("pane opened in split")
	o.emit(Event{Kind: EventSplit, Pane: pane.ID})
	return res, nil
}

// CloseFrame removes a pane, cascading one level into a now-empty enclosing
// container, and moves focus to the first remaining pane when the active one
// went away.
func (o *Orchestrator) CloseFrame(id NodeID) error {
	if err := o.layout.CloseFrame(id); err != nil {
		return err
	}
	if o.active == id {
		o.active = ""
		if leaves := o.layout.Leaves(); len(leaves) > 0 {
			o.active = leaves[0]
		}
	}
	o.log.Info().Str("pane", string(id)).Msg("pane closed")
	o.emit(Event{Kind: EventClose, Pane: id})
	return nil
}

// Focus marks the pane with the given ID active.
func (o *Orchestrator) Focus(id NodeID) error {
	if _, ok := o.layout.Pane(id); !ok {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	o.active = id
	o.emit(Event{Kind: EventFocus, Pane: id})
	return nil
}

// FocusNext moves focus to the next pane in tree order, wrapping around.
func (o *Orchestrator) FocusNext() NodeID { return o.cycleFocus(1) }

// FocusPrev moves focus to the previous pane in tree order, wrapping around.
func (o *Orchestrator) FocusPrev() NodeID { return o.cycleFocus(-1) }

func (o *Orchestrator) cycleFocus(step int) NodeID {
	leaves := o.layout.Leaves()
	if len(leaves) == 0 {
		o.active = ""
		return ""
	}
	idx := 0
	for i, id := range leaves {
		if id == o.active {
			idx = (i + step + len(leaves)) % len(leaves)
			break
		}
	}
	o.active = leaves[idx]
	o.emit(Event{Kind: EventFocus, Pane: o.active})
	return o.active
}

// Grow raises the flex weight of the pane's container by one increment.
func (o *Orchestrator) Grow(id NodeID) error { return o.layout.Grow(id) }

// Shrink lowers the flex weight of the pane's container by one increment.
func (o *Orchestrator) Shrink(id NodeID) error { return o.layout.Shrink(id) }
