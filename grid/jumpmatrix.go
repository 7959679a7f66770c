package grid

// jumpKind distinguishes the three states a JumpMatrix entry can hold.
// Using a closed sum type instead of a tagged *Cell pointer keeps the
// sentinel (colFull) and the "no information yet" case (empty) from
// ever being confused with a real cell handle, per spec.md's design
// note against pointer-tagging tricks.
type jumpKind uint8

const (
	jumpEmpty jumpKind = iota
	jumpColFull
	jumpTarget
)

// JumpEntry is one element of a JumpMatrix: either Empty (the region is
// free, subject to range checks), ColFull (everything from this row
// down in this column is occupied), or a jump target row-cell index to
// resume a search at.
type JumpEntry struct {
	kind jumpKind
	row  int
}

// EmptyEntry is the zero value of JumpEntry: the region is free.
var EmptyEntry = JumpEntry{kind: jumpEmpty}

// ColFullEntry marks an entire column, from a given row down, as
// occupied.
var ColFullEntry = JumpEntry{kind: jumpColFull}

// JumpTo builds a jump-target entry pointing at row-cell jumpIndex row.
func JumpTo(row int) JumpEntry { return JumpEntry{kind: jumpTarget, row: row} }

// IsEmpty reports whether e represents free space.
func (e JumpEntry) IsEmpty() bool { return e.kind == jumpEmpty }

// IsColFull reports whether e is the COL_FULL sentinel.
func (e JumpEntry) IsColFull() bool { return e.kind == jumpColFull }

// Target returns the row-cell jumpIndex to resume searching at, and
// whether e actually carries one (i.e. e is neither Empty nor
// ColFull).
func (e JumpEntry) Target() (row int, ok bool) {
	if e.kind != jumpTarget {
		return 0, false
	}
	return e.row, true
}

// JumpMatrix is a square occupancy/accelerator table indexed by
// (row jumpIndex, column jumpIndex). It never needs trimming on Clear:
// clearing the owning Grid just resets both CellLinks' jumpIndex
// counters, after which searches only ever consult entries below those
// counters, so stale higher entries are never read.
type JumpMatrix struct {
	n    int
	data []JumpEntry
}

// NewJumpMatrix allocates an n x n matrix, entirely Empty.
func NewJumpMatrix(n int) *JumpMatrix {
	if n < 1 {
		n = 1
	}
	return &JumpMatrix{n: n, data: make([]JumpEntry, n*n)}
}

func (m *JumpMatrix) index(r, c int) int { return r*m.n + c }

// Get returns the entry at (row, col).
func (m *JumpMatrix) Get(row, col int) JumpEntry {
	return m.data[m.index(row, col)]
}

// Set writes v at (row, col).
func (m *JumpMatrix) Set(row, col int, v JumpEntry) {
	m.data[m.index(row, col)] = v
}

// Reset clears the single entry consulted right after a Grid Clear:
// the top-left corner, (0, 0).
func (m *JumpMatrix) Reset() {
	m.Set(0, 0, EmptyEntry)
}

// CopyRow copies row src onto row dest for columns [0, limit).
// Used after a row-axis Cut duplicates a cell, so the new row inherits
// the occupancy pattern of the row it was carved from.
func (m *JumpMatrix) CopyRow(src, dest, limit int) {
	srcBase := m.index(src, 0)
	destBase := m.index(dest, 0)
	copy(m.data[destBase:destBase+limit], m.data[srcBase:srcBase+limit])
}

// CopyCol copies column src onto column dest for rows [0, limit).
func (m *JumpMatrix) CopyCol(src, dest, limit int) {
	for r := 0; r < limit; r++ {
		m.data[m.index(r, dest)] = m.data[m.index(r, src)]
	}
}
