// pkg/grid/trace.go
package grid

import (
	"errors"
	"fmt"

	"tower-of-derp/pkg/utils"
)

// ErrDiagonalSegment is returned when two consecutive corners do not share a row or column.
var ErrDiagonalSegment = errors.New("grid: path segment is not axis-aligned")

// LineTo returns the cells from start to end inclusive. Only straight
// horizontal or vertical lines are supported.
func (start Cell) LineTo(end Cell) ([]Cell, error) {
	if start.X != end.X && start.Y != end.Y {
		return nil, fmt.Errorf("%v -> %v: %w", start, end, ErrDiagonalSegment)
	}
	step := Cell{X: utils.Sign(end.X - start.X), Y: utils.Sign(end.Y - start.Y)}
	n := start.Distance(end)
	results := make([]Cell, 0, n+1)
	current := start
	for i := 0; i <= n; i++ {
		results = append(results, current)
		current = current.Add(step)
	}
	return results, nil
}

// Trace expands a list of corner cells into the full ordered path. Shared
// corners between segments appear once.
func Trace(corners []Cell) ([]Cell, error) {
	if len(corners) == 0 {
		return nil, nil
	}
	path := []Cell{corners[0]}
	for i := 1; i < len(corners); i++ {
		segment, err := corners[i-1].LineTo(corners[i])
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		path = append(path, segment[1:]...)
	}
	return path, nil
}
