package layout

import (
	"math/rand/v2"
	"strings"
)

// NodeID is a host-visible token identifying a container or pane. Tokens are
// 7 characters of base-36; uniqueness within one tree is assumed, collision
// probability is accepted as negligible and not defended against.
type NodeID string

const (
	idLength   = 7
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewNodeID returns a fresh random identifier.
func NewNodeID() NodeID {
	var b strings.Builder
	b.Grow(idLength)
	for i := 0; i < idLength; i++ {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return NodeID(b.String())
}

// DefaultFlex is the flex-grow weight a container starts with. Siblings with
// equal weight share space evenly; Grow and Shrink move the weight in
// FlexIncrement steps.
const (
	DefaultFlex   = 1.0
	FlexIncrement = 0.5
)

// Container is an internal tree node: one flex row or column. Children is an
// ordered list of container or pane IDs; parent is an ID back-reference, not
// an owning link, so a removed node never leaves a dangling pointer behind.
type Container struct {
	ID        NodeID
	Direction Direction
	Children  []NodeID
	// Flex is deliberately unclamped: repeated Shrink can drive it to zero
	// or below. Known gap, kept until there is a product decision on a floor.
	Flex   float64
	parent NodeID
}

// Parent returns the ID of the owning container, empty for the root.
func (c *Container) Parent() NodeID { return c.parent }

// Pane is a leaf node displaying one embedded document.
type Pane struct {
	ID     NodeID
	URL    string
	parent NodeID
}

// Parent returns the ID of the owning container.
func (p *Pane) Parent() NodeID { return p.parent }

// Snapshot is an immutable view of one subtree, handed to renderers so they
// can never mutate the arena.
type Snapshot struct {
	ID        NodeID
	Leaf      bool
	Direction Direction // containers only
	Flex      float64   // containers only
	URL       string    // panes only
	Active    bool      // panes only
	Children  []Snapshot
}
