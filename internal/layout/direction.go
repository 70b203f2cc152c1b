// Package layout implements the recursive split-container tree behind
// splitframe's pane workspaces: containers alternate their flex direction
// with their children, panes are leaves, and the orchestrator decides where
// a new pane lands when a link is opened in a split.
package layout

import (
	"errors"
	"fmt"
)

// Direction is the axis along which a container lays out its children.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// ErrInvalidDirection reports a direction value outside the two-element enum.
// Hitting it is a programming error, not a recoverable condition.
var ErrInvalidDirection = errors.New("layout: invalid direction")

func (d Direction) String() string {
	switch d {
	case DirectionVertical:
		return "vertical"
	case DirectionHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the two defined directions.
func (d Direction) Valid() bool {
	return d == DirectionVertical || d == DirectionHorizontal
}

// Inverse maps vertical to horizontal and back.
func Inverse(d Direction) (Direction, error) {
	switch d {
	case DirectionVertical:
		return DirectionHorizontal, nil
	case DirectionHorizontal:
		return DirectionVertical, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
}

// MustInverse is Inverse for call sites that already validated the direction.
func MustInverse(d Direction) Direction {
	inv, err := Inverse(d)
	if err != nil {
		panic(err)
	}
	return inv
}

// Modifiers mirrors the modifier keys held during a click in a pane.
type Modifiers struct {
	Shift bool `json:"shift"`
	Alt   bool `json:"alt"`
}

// DirectionFromModifiers maps modifier state to a split direction.
// Shift wins when both are somehow set; ok is false when neither is held,
// which means the click is a plain navigation and no split happens.
func DirectionFromModifiers(m Modifiers) (Direction, bool) {
	switch {
	case m.Shift:
		return DirectionVertical, true
	case m.Alt:
		return DirectionHorizontal, true
	default:
		return 0, false
	}
}

// Placement selects which edge of a pane a fixed overlay occupies.
// Only renderers consult it; the tree itself never does.
type Placement int

const (
	PlacementStart Placement = iota
	PlacementEnd
)

func (p Placement) String() string {
	switch p {
	case PlacementStart:
		return "start"
	case PlacementEnd:
		return "end"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}
