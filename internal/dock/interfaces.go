package dock

import (
	"encoding/json"

	"github.com/bnema/dockyard/internal/geometry"
)

// DropArea is the layout-tree engine the window docks into. This core never
// inspects the tree itself; it only asks which container borders a panel's
// node touches and round-trips the tree's own serialized document.
type DropArea interface {
	// AdjacentBorders reports which of the four container borders the
	// panel's layout node is adjacent to, derived fresh from the current
	// tree shape. ok is false when the panel has no resolvable node.
	AdjacentBorders(p *Panel) (borders geometry.BorderSet, ok bool)

	// Serialize returns the drop area's layout document. Opaque to this
	// package.
	Serialize() json.RawMessage

	// Deserialize restores the drop area from a previously serialized
	// document.
	Deserialize(doc json.RawMessage) error
}
