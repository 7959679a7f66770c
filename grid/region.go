package grid

// Region describes a hit returned by Grid.FindRegion: a block of cells,
// row range x column range, where a rectangle fits. RowEndPos and
// ColEndPos may fall strictly inside RowCell/ColCell's span, in which
// case Split will need to cut that cell.
type Region struct {
	RowCellStart int
	RowCell      int
	RowEndPos    int64

	ColCellStart int
	ColCell      int
	ColEndPos    int64

	found bool
}

// Ok reports whether this Region represents an actual hit. A zero
// Region (as returned on search failure) reports false, matching
// spec.md's "a NULL col_cell encodes no hit".
func (r Region) Ok() bool { return r.found }
