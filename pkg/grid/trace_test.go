package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTo(t *testing.T) {
	line, err := Cell{X: 2, Y: 5}.LineTo(Cell{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{2, 5}, {3, 5}, {4, 5}, {5, 5}}, line)

	line, err = Cell{X: 0, Y: 2}.LineTo(Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 2}, {0, 1}, {0, 0}}, line)

	_, err = Cell{X: 0, Y: 0}.LineTo(Cell{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrDiagonalSegment)
}

func TestTrace(t *testing.T) {
	path, err := Trace([]Cell{{0, 0}, {0, 2}, {2, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 3}}, path)

	path, err = Trace(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = Trace([]Cell{{0, 0}, {3, 3}})
	assert.ErrorIs(t, err, ErrDiagonalSegment)
}
