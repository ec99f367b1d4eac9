// pkg/grid/cell.go
package grid

import (
	"fmt"
	"math"

	"tower-of-derp/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Cell is a square grid cell addressed by column (X) and row (Y).
type Cell struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Directions lists the four orthogonal neighbours, starting East and turning clockwise.
var Directions = []Cell{
	{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance is the Manhattan distance between two cells.
func (c Cell) Distance(to Cell) int {
	return utils.Abs(c.X-to.X) + utils.Abs(c.Y-to.Y)
}

// Neighbors returns the four orthogonal neighbours of the cell.
func (c Cell) Neighbors() []Cell {
	out := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, c.Add(d))
	}
	return out
}

// Adjacent reports whether other is one of the four neighbours of c.
func (c Cell) Adjacent(other Cell) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// Origin returns the top-left corner of the cell in world units.
func (c Cell) Origin(blockSize float64) (x, y float64) {
	return float64(c.X) * blockSize, float64(c.Y) * blockSize
}

// Center returns the center of the cell in world units.
func (c Cell) Center(blockSize float64) (x, y float64) {
	x, y = c.Origin(blockSize)
	return x + blockSize/2, y + blockSize/2
}

// At returns the cell containing the world point (x, y).
func At(x, y, blockSize float64) Cell {
	return Cell{
		X: int(math.Floor(x / blockSize)),
		Y: int(math.Floor(y / blockSize)),
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// UnmarshalYAML accepts both the mapping form {x: 1, y: 2} and the short
// sequence form [1, 2].
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: cell needs exactly 2 coordinates, got %d", node.Line, len(pair))
		}
		c.X, c.Y = pair[0], pair[1]
		return nil
	}
	type plain Cell
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Cell(p)
	return nil
}
