// internal/defs/path.go
package defs

import "tower-of-derp/pkg/grid"

// DefaultBase is the cell the base occupies on the stock map.
var DefaultBase = grid.Cell{X: 0, Y: 8}

// DefaultPath returns the stock route from the spawn cell to the base. The
// repeated (2,3) is part of the route; monsters pass through it without moving.
func DefaultPath() []grid.Cell {
	return []grid.Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 2, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 2, Y: 5},
		{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5},
		{X: 8, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 5}, {X: 11, Y: 5}, {X: 12, Y: 5},
		{X: 13, Y: 5}, {X: 14, Y: 5}, {X: 15, Y: 5}, {X: 16, Y: 5}, {X: 17, Y: 5},
		{X: 18, Y: 5}, {X: 19, Y: 5}, {X: 20, Y: 5},
		{X: 20, Y: 6}, {X: 20, Y: 7}, {X: 20, Y: 8}, {X: 20, Y: 9},
		{X: 19, Y: 9}, {X: 18, Y: 9}, {X: 17, Y: 9}, {X: 16, Y: 9}, {X: 15, Y: 9},
		{X: 14, Y: 9}, {X: 13, Y: 9}, {X: 12, Y: 9}, {X: 11, Y: 9}, {X: 10, Y: 9},
		{X: 9, Y: 9}, {X: 8, Y: 9}, {X: 7, Y: 9}, {X: 6, Y: 9}, {X: 5, Y: 9},
		{X: 4, Y: 9}, {X: 3, Y: 9}, {X: 2, Y: 9},
	}
}
