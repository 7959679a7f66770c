package grid

import "github.com/pkg/errors"

// noCell is the sentinel index used in place of a nil *Cell pointer.
const noCell = -1

// Cell is one entry in a CellLink: a half-open range on one axis,
// [startPos, EndPos), where startPos is implicit (the previous cell's
// EndPos, or 0 for the head). Cells live in a preallocated pool and are
// addressed by jumpIndex, never by pointer.
type Cell struct {
	EndPos    int64
	jumpIndex int
	prev      int
	next      int
}

// JumpIndex is the stable integer handle for this cell, valid as a row
// or column index into a JumpMatrix until the owning CellLink is
// cleared.
func (c Cell) JumpIndex() int { return c.jumpIndex }

// CellLink is a doubly linked chain of Cells covering a single axis,
// backed by a pool of preallocated Cells indexed by jumpIndex. Only
// Cut ever adds a cell to the chain; Clear resets the chain to a
// single cell spanning the whole axis.
type CellLink struct {
	cells     []Cell
	endPos    int64
	jumpIndex int
	head      int
}

// NewCellLink allocates a CellLink with room for capacity cells. A
// packing of N rectangles needs capacity >= N+1 on each axis: each
// rectangle can induce at most one cut, plus the initial head cell.
func NewCellLink(capacity int) *CellLink {
	if capacity < 1 {
		capacity = 1
	}
	cl := &CellLink{cells: make([]Cell, capacity)}
	cl.Clear(1)
	return cl
}

// Clear restores the CellLink to the "starting state": a single head
// cell spanning [0, axisLen), jumpIndex 0.
func (cl *CellLink) Clear(axisLen int64) {
	cl.endPos = axisLen
	cl.jumpIndex = 0
	cl.head = 0
	cl.cells[0] = Cell{
		EndPos:    axisLen,
		jumpIndex: 0,
		prev:      noCell,
		next:      noCell,
	}
	cl.jumpIndex = 1
}

// Head returns the jumpIndex of the axis's first cell.
func (cl *CellLink) Head() int { return cl.head }

// Len reports the number of cells currently in the chain.
func (cl *CellLink) Len() int { return cl.jumpIndex }

// EndPos is the full length of the axis this CellLink partitions.
func (cl *CellLink) EndPos() int64 { return cl.endPos }

// Cell returns the cell at jumpIndex idx.
func (cl *CellLink) Cell(idx int) *Cell { return &cl.cells[idx] }

// Next returns the jumpIndex of the cell following idx, or noCell if
// idx is the last cell on the axis.
func (cl *CellLink) Next(idx int) int {
	if idx == noCell {
		return noCell
	}
	return cl.cells[idx].next
}

// StartPos returns the starting position of the cell at idx: 0 for the
// head (or for noCell), otherwise the predecessor's EndPos.
func (cl *CellLink) StartPos(idx int) int64 {
	if idx == noCell {
		return 0
	}
	prev := cl.cells[idx].prev
	if prev == noCell {
		return 0
	}
	return cl.cells[prev].EndPos
}

// Cut splits the cell at victim into two: victim keeps the range
// [start, endPos) and a newly allocated cell takes
// [endPos, victim.EndPos). endPos must fall strictly between victim's
// start and its current EndPos. Cut returns victim's jumpIndex as
// srcIndex and the new cell's jumpIndex as destIndex — callers use
// these to replicate jump-matrix occupancy onto the new cell.
func (cl *CellLink) Cut(victim int, endPos int64) (srcIndex, destIndex int, err error) {
	v := &cl.cells[victim]
	start := cl.StartPos(victim)
	if endPos <= start || endPos >= v.EndPos {
		return 0, 0, errors.Errorf(
			"grid: cut at %d out of range for cell %d spanning [%d, %d)",
			endPos, victim, start, v.EndPos)
	}
	if cl.jumpIndex >= len(cl.cells) {
		return 0, 0, errors.Errorf("grid: cell pool exhausted (capacity %d)", len(cl.cells))
	}

	newIdx := cl.jumpIndex
	cl.jumpIndex++

	newCell := Cell{
		EndPos:    v.EndPos,
		jumpIndex: newIdx,
		prev:      victim,
		next:      v.next,
	}
	if newCell.next != noCell {
		cl.cells[newCell.next].prev = newIdx
	}
	v.next = newIdx
	v.EndPos = endPos
	cl.cells[newIdx] = newCell

	return v.jumpIndex, newIdx, nil
}
