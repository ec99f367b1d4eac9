// internal/utils/coords.go
package utils

import (
	"tower-of-derp/internal/config"
	"tower-of-derp/pkg/grid"
)

// Scale maps the fixed game canvas onto the actual viewport. X and Y are the
// viewport/canvas ratios on each axis.
type Scale struct {
	X, Y float64
}

// NewScale computes the scale for a viewport of the given size against the
// default canvas size.
func NewScale(viewportWidth, viewportHeight int) Scale {
	return Scale{
		X: float64(viewportWidth) / float64(config.ScreenWidth),
		Y: float64(viewportHeight) / float64(config.ScreenHeight),
	}
}

// ToGamePoint converts a viewport point into simulation space.
func (s Scale) ToGamePoint(x, y float64) Vec {
	return Vec{X: x / s.X, Y: y / s.Y}
}

// ToViewportPoint converts a simulation-space point into viewport pixels.
func (s Scale) ToViewportPoint(x, y float64) Vec {
	return Vec{X: x * s.X, Y: y * s.Y}
}

// CellCenter returns the simulation-space center of a grid cell.
func CellCenter(c grid.Cell) Vec {
	x, y := c.Center(config.BlockSize)
	return Vec{X: x, Y: y}
}

// CellOrigin returns the simulation-space top-left corner of a grid cell.
func CellOrigin(c grid.Cell) Vec {
	x, y := c.Origin(config.BlockSize)
	return Vec{X: x, Y: y}
}

// CellAt returns the grid cell containing a simulation-space point.
func CellAt(p Vec) grid.Cell {
	return grid.At(p.X, p.Y, config.BlockSize)
}

// InPlayArea reports whether a simulation-space point lies on the board
// rather than on the UI strip at the bottom of the canvas.
func InPlayArea(p Vec) bool {
	return p.X > 0 && p.X < config.ScreenWidth &&
		p.Y > 0 && p.Y < config.ScreenHeight-config.UIHeight
}
