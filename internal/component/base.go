// internal/component/base.go
package component

import (
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

// Base is the cell the monsters walk towards.
type Base struct {
	Cell grid.Cell
}

// Bounds returns the top-left corner and side of the drawn base square,
// which is larger than a cell and centered on it.
func (b Base) Bounds() (utils.Vec, float64) {
	c := utils.CellCenter(b.Cell)
	half := config.BaseSize / 2
	return utils.Vec{X: c.X - half, Y: c.Y - half}, config.BaseSize
}
