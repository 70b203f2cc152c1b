package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/splitframe/internal/urlutil"
)

// Layout owns the split tree. Every node lives in an arena addressed by
// NodeID; parent links are IDs, never live pointers, so a stale identifier
// from an already-closed pane resolves to nothing instead of dangling.
// The top-level host is the sole mutator; Layout itself does no locking.
type Layout struct {
	root       NodeID
	containers map[NodeID]*Container
	panes      map[NodeID]*Pane

	// now stamps the cache-busting query parameter on pane URLs.
	// Tests pin it to a fixed instant.
	now func() time.Time
}

var (
	// ErrPaneNotFound reports a pane ID that is not (or no longer) in the tree.
	ErrPaneNotFound = errors.New("layout: pane not found")
	// ErrContainerNotFound reports a container ID that is not in the tree.
	ErrContainerNotFound = errors.New("layout: container not found")
)

// NewLayout returns an empty layout with no root container.
func NewLayout() *Layout {
	return &Layout{
		containers: make(map[NodeID]*Container),
		panes:      make(map[NodeID]*Pane),
		now:        time.Now,
	}
}

// SetClock overrides the timestamp source used for cache-busting URLs.
func (l *Layout) SetClock(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// Root returns the root container ID, empty before the first split.
func (l *Layout) Root() NodeID { return l.root }

// SetRoot installs id as the tree root. The first split uses this to replace
// whatever the document body previously held.
func (l *Layout) SetRoot(id NodeID) error {
	if _, ok := l.containers[id]; !ok {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	l.root = id
	return nil
}

// Container looks up a container by ID.
func (l *Layout) Container(id NodeID) (*Container, bool) {
	c, ok := l.containers[id]
	return c, ok
}

// Pane looks up a pane by ID.
func (l *Layout) Pane(id NodeID) (*Pane, bool) {
	p, ok := l.panes[id]
	return p, ok
}

// CreateContainer allocates a new, unattached container with the given
// direction. An explicit ID may be passed for deterministic trees; the
// default is a fresh random token.
func (l *Layout) CreateContainer(dir Direction, id ...NodeID) *Container {
	cid := NewNodeID()
	if len(id) > 0 && id[0] != "" {
		cid = id[0]
	}
	c := &Container{
		ID:        cid,
		Direction: dir,
		Flex:      DefaultFlex,
	}
	l.containers[cid] = c
	return c
}

// Attach appends child (a container or pane already in the arena) to the
// given container's ordered child list.
func (l *Layout) Attach(parentID, childID NodeID) error {
	parent, ok := l.containers[parentID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, parentID)
	}
	switch {
	case l.containers[childID] != nil:
		l.containers[childID].parent = parentID
	case l.panes[childID] != nil:
		l.panes[childID].parent = parentID
	default:
		return fmt.Errorf("layout: attach of unknown node %s", childID)
	}
	parent.Children = append(parent.Children, childID)
	return nil
}

// AddPane creates a pane for rawURL and appends it to the given container.
// The pane's URL carries a cache-busting force_reload parameter so the
// embedded content reloads instead of reusing a cached render.
func (l *Layout) AddPane(containerID NodeID, rawURL string) (*Pane, error) {
	if _, ok := l.containers[containerID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, containerID)
	}
	busted, err := urlutil.WithCacheBuster(rawURL, l.now())
	if err != nil {
		return nil, fmt.Errorf("layout: pane url: %w", err)
	}
	p := &Pane{
		ID:  NewNodeID(),
		URL: busted,
	}
	l.panes[p.ID] = p
	if err := l.Attach(containerID, p.ID); err != nil {
		delete(l.panes, p.ID)
		return nil, err
	}
	return p, nil
}

// FindEnclosingContainer walks the ownership link upward from a pane to its
// container. The zero NodeID means the pane does not exist, typically
// because the event raced a close; callers must tolerate that.
func (l *Layout) FindEnclosingContainer(paneID NodeID) NodeID {
	p, ok := l.panes[paneID]
	if !ok {
		return ""
	}
	return p.parent
}

// RemoveNode deletes a pane, or a container together with its whole subtree,
// and detaches it from its parent's child list.
func (l *Layout) RemoveNode(id NodeID) {
	if p, ok := l.panes[id]; ok {
		l.detachFromParent(p.parent, id)
		delete(l.panes, id)
		return
	}
	c, ok := l.containers[id]
	if !ok {
		return
	}
	l.detachFromParent(c.parent, id)
	l.removeSubtree(id)
	if l.root == id {
		l.root = ""
	}
}

func (l *Layout) removeSubtree(id NodeID) {
	c, ok := l.containers[id]
	if !ok {
		delete(l.panes, id)
		return
	}
	for _, child := range c.Children {
		l.removeSubtree(child)
	}
	delete(l.containers, id)
}

func (l *Layout) detachFromParent(parentID, childID NodeID) {
	parent, ok := l.containers[parentID]
	if !ok {
		return
	}
	for i, id := range parent.Children {
		if id == childID {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

// CloseFrame removes the pane with the given ID. When the enclosing
// container holds only this pane the container goes with it, so empty
// containers do not accumulate. The cascade is one level deep only: a
// grandparent left empty stays behind. Known gap, kept as-is.
func (l *Layout) CloseFrame(id NodeID) error {
	p, ok := l.panes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	parent, ok := l.containers[p.parent]
	if ok && len(parent.Children) == 1 && parent.ID != l.root {
		l.RemoveNode(parent.ID)
		return nil
	}
	l.RemoveNode(id)
	return nil
}

// Grow raises the flex weight of the pane's enclosing container by one
// increment; siblings are untouched.
func (l *Layout) Grow(paneID NodeID) error {
	return l.adjustFlex(paneID, FlexIncrement)
}

// Shrink lowers the flex weight of the pane's enclosing container by one
// increment. There is no floor: the weight can reach zero or go negative.
func (l *Layout) Shrink(paneID NodeID) error {
	return l.adjustFlex(paneID, -FlexIncrement)
}

func (l *Layout) adjustFlex(paneID NodeID, delta float64) error {
	parentID := l.FindEnclosingContainer(paneID)
	if parentID == "" {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, paneID)
	}
	parent, ok := l.containers[parentID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, parentID)
	}
	parent.Flex += delta
	return nil
}

// Leaves returns all pane IDs in tree order (depth-first, child order).
func (l *Layout) Leaves() []NodeID {
	var leaves []NodeID
	var walk func(NodeID)
	walk = func(id NodeID) {
		if _, ok := l.panes[id]; ok {
			leaves = append(leaves, id)
			return
		}
		c, ok := l.containers[id]
		if !ok {
			return
		}
		for _, child := range c.Children {
			walk(child)
		}
	}
	if l.root != "" {
		walk(l.root)
	}
	return leaves
}

// Empty reports whether the tree has no root container yet.
func (l *Layout) Empty() bool { return l.root == "" }

// Validate checks structural consistency of the arena: the root exists,
// parent and child links agree, and no node is referenced twice. It does not
// enforce direction alternation, because the stale-pane fallback can legally
// produce a same-direction nesting under the root.
func (l *Layout) Validate() error {
	if l.root == "" {
		if len(l.containers) == 0 && len(l.panes) == 0 {
			return nil
		}
		return errors.New("layout: nodes exist but no root is set")
	}
	if _, ok := l.containers[l.root]; !ok {
		return fmt.Errorf("layout: root %s is not a container", l.root)
	}
	seen := make(map[NodeID]bool, len(l.containers)+len(l.panes))
	var walk func(NodeID, NodeID) error
	walk = func(id, parent NodeID) error {
		if seen[id] {
			return fmt.Errorf("layout: node %s reachable twice", id)
		}
		seen[id] = true
		if p, ok := l.panes[id]; ok {
			if p.parent != parent {
				return fmt.Errorf("layout: pane %s parent link %s, expected %s", id, p.parent, parent)
			}
			return nil
		}
		c, ok := l.containers[id]
		if !ok {
			return fmt.Errorf("layout: child %s of %s is not in the arena", id, parent)
		}
		if c.parent != parent {
			return fmt.Errorf("layout: container %s parent link %s, expected %s", id, c.parent, parent)
		}
		for _, child := range c.Children {
			if err := walk(child, id); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(l.root, ""); err != nil {
		return err
	}
	for id := range l.containers {
		if !seen[id] {
			return fmt.Errorf("layout: container %s is orphaned", id)
		}
	}
	for id := range l.panes {
		if !seen[id] {
			return fmt.Errorf("layout: pane %s is orphaned", id)
		}
	}
	return nil
}

// Snapshot builds an immutable copy of the tree for renderers. activePane
// marks the matching leaf; pass the zero NodeID for none.
func (l *Layout) Snapshot(activePane NodeID) Snapshot {
	if l.root == "" {
		return Snapshot{}
	}
	return l.snapshotNode(l.root, activePane)
}

func (l *Layout) snapshotNode(id, activePane NodeID) Snapshot {
	if p, ok := l.panes[id]; ok {
		return Snapshot{
			ID:     p.ID,
			Leaf:   true,
			URL:    p.URL,
			Active: p.ID == activePane,
		}
	}
	c := l.containers[id]
	if c == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		ID:        c.ID,
		Direction: c.Direction,
		Flex:      c.Flex,
		Children:  make([]Snapshot, 0, len(c.Children)),
	}
	for _, child := range c.Children {
		snap.Children = append(snap.Children, l.snapshotNode(child, activePane))
	}
	return snap
}

// String renders an indented dump of the tree for logs and debugging.
func (l *Layout) String() string {
	if l.root == "" {
		return "(empty layout)"
	}
	var b strings.Builder
	var walk func(NodeID, int)
	walk = func(id NodeID, depth int) {
		indent := strings.Repeat("  ", depth)
		if p, ok := l.panes[id]; ok {
			fmt.Fprintf(&b, "%spane %s url=%s\n", indent, p.ID, p.URL)
			return
		}
		c, ok := l.containers[id]
		if !ok {
			fmt.Fprintf(&b, "%s?? %s\n", indent, id)
			return
		}
		fmt.Fprintf(&b, "%scontainer %s dir=%s flex=%.1f\n", indent, c.ID, c.Direction, c.Flex)
		for _, child := range c.Children {
			walk(child, depth+1)
		}
	}
	walk(l.root, 0)
	return b.String()
}

// NodeCount returns the number of containers and panes in the arena.
// Diagnostics only.
func (l *Layout) NodeCount() (containers, panes int) {
	return len(l.containers), len(l.panes)
}

// ContainerIDs returns all container IDs in stable order. Diagnostics only.
func (l *Layout) ContainerIDs() []NodeID {
	ids := make([]NodeID, 0, len(l.containers))
	for id := range l.containers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
