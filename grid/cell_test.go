package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellLinkClear(t *testing.T) {
	cl := NewCellLink(4)
	cl.Clear(100)

	assert.Equal(t, 1, cl.Len())
	assert.Equal(t, int64(100), cl.Cell(cl.Head()).EndPos)
	assert.Equal(t, int64(100), cl.EndPos())
	assert.Equal(t, int64(0), cl.StartPos(cl.Head()))
}

func TestCellLinkCut(t *testing.T) {
	cl := NewCellLink(4)
	cl.Clear(100)

	src, dest, err := cl.Cut(cl.Head(), 30)
	require.NoError(t, err)
	assert.Equal(t, 0, src)
	assert.Equal(t, 1, dest)

	head := cl.Cell(cl.Head())
	assert.Equal(t, int64(30), head.EndPos)

	next := cl.Next(cl.Head())
	require.NotEqual(t, noCell, next)
	assert.Equal(t, int64(100), cl.Cell(next).EndPos)
	assert.Equal(t, int64(30), cl.StartPos(next))
	assert.Equal(t, noCell, cl.Next(next))
}

func TestCellLinkCutOutOfRange(t *testing.T) {
	cl := NewCellLink(4)
	cl.Clear(100)

	_, _, err := cl.Cut(cl.Head(), 0)
	assert.Error(t, err)

	_, _, err = cl.Cut(cl.Head(), 100)
	assert.Error(t, err)

	_, _, err = cl.Cut(cl.Head(), 150)
	assert.Error(t, err)
}

func TestCellLinkCutExhaustsCapacity(t *testing.T) {
	cl := NewCellLink(2)
	cl.Clear(100)

	_, _, err := cl.Cut(cl.Head(), 50)
	require.NoError(t, err)

	_, _, err = cl.Cut(cl.Head(), 25)
	assert.Error(t, err)
}

func TestCellLinkMultipleCuts(t *testing.T) {
	cl := NewCellLink(5)
	cl.Clear(100)

	// Cuts always land inside the head cell's shrinking remainder, so
	// cut positions must be chosen in increasing order.
	_, _, err := cl.Cut(cl.Head(), 20)
	require.NoError(t, err)
	second := cl.Next(cl.Head())
	_, _, err = cl.Cut(second, 50)
	require.NoError(t, err)

	var ends []int64
	for idx := cl.Head(); idx != noCell; idx = cl.Next(idx) {
		ends = append(ends, cl.Cell(idx).EndPos)
	}
	assert.Equal(t, []int64{20, 50, 100}, ends)
	assert.Equal(t, 3, cl.Len())
}
