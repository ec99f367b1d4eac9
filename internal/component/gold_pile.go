// internal/component/gold_pile.go
package component

import (
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
)

// GoldPile — золото, выпавшее из монстра
type GoldPile struct {
	ID       types.EntityID
	Position utils.Vec // top-left corner
	Value    uint32
	Size     float64
}

// Contains reports whether p lies on the pile's footprint.
func (g *GoldPile) Contains(p utils.Vec) bool {
	return p.X >= g.Position.X && p.X < g.Position.X+g.Size &&
		p.Y >= g.Position.Y && p.Y < g.Position.Y+g.Size
}
