// Package render turns layout snapshots into host-specific output: nested
// flexbox HTML for the browser host, lipgloss boxes for the terminal host.
package render

import (
	"github.com/bnema/splitframe/internal/layout"
)

// Renderer materializes one layout snapshot.
type Renderer interface {
	Render(snapshot layout.Snapshot) (string, error)
}

// childFlex returns the flex weight a child contributes to its parent's
// space distribution. Panes always weigh the default; containers carry
// their adjusted weight, which Grow/Shrink leave unclamped.
func childFlex(s layout.Snapshot) float64 {
	if s.Leaf {
		return layout.DefaultFlex
	}
	return s.Flex
}
