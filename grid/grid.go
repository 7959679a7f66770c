package grid

import "github.com/pkg/errors"

// Grid composes a row CellLink (the Y / height axis), a column
// CellLink (the X / width axis), and a JumpMatrix, and owns all of the
// partition state for one packing attempt. Rectangles are not owned by
// the Grid; occupancy is recorded indirectly through jump-matrix
// entries.
type Grid struct {
	Width  int64
	Height int64

	rows   *CellLink
	cols   *CellLink
	matrix *JumpMatrix
}

// New allocates a Grid with room for capacity cells on each axis
// (capacity must be >= N+1 for a packing of N rectangles: one cut per
// rectangle per axis, plus the initial head cell) and an initial box
// of width x height.
func New(capacity int, width, height int64) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		rows:   NewCellLink(capacity),
		cols:   NewCellLink(capacity),
		matrix: NewJumpMatrix(capacity),
	}
	g.Clear()
	return g
}

// RowStartPos returns the starting Y position of the row cell at idx.
func (g *Grid) RowStartPos(idx int) int64 { return g.rows.StartPos(idx) }

// ColStartPos returns the starting X position of the column cell at idx.
func (g *Grid) ColStartPos(idx int) int64 { return g.cols.StartPos(idx) }

// Clear resets both CellLinks to their single-cell starting state
// (spanning the Grid's current Width/Height) and resets the jump
// matrix's top-left corner to Empty. Stale matrix entries at higher
// indices are never read, since FindRegion only ever consults indices
// below the CellLinks' current cell counts.
func (g *Grid) Clear() {
	g.rows.Clear(g.Height)
	g.cols.Clear(g.Width)
	g.matrix.Reset()
}

// FindRegion locates a free contiguous block of cells for a rectangle
// of size (width, height), aligned to the top-left of the block. It
// returns the Region (Region.Ok() is false on failure) and a delta:
// the smallest amount by which some near-miss would have needed the
// grid to grow taller to succeed, clamped to the grid's current
// Height and never less than 1.
//
// FindRegion mutates the jump matrix even on failure: the path
// compression step (§4.3) rewrites the first jump target seen along a
// search chain once a deeper target is found, so callers must not
// treat FindRegion as a read-only query.
func (g *Grid) FindRegion(width, height int64) (Region, int64) {
	delta := g.Height

	for colCellStart := g.cols.Head(); colCellStart != noCell; colCellStart = g.cols.Next(colCellStart) {
		recColEndPos := g.cols.StartPos(colCellStart) + width
		if recColEndPos > g.Width {
			break
		}

		rowCellStart := g.rows.Head()
		rowCell := rowCellStart
		recRowEndPos := g.rows.StartPos(rowCellStart) + height
		jumpFirst := noCell

		for {
			entry := g.matrix.Get(rowCell, colCellStart)

			if entry.IsColFull() {
				break
			}

			if target, ok := entry.Target(); ok {
				if jumpFirst == noCell {
					jumpFirst = rowCell
				} else {
					g.matrix.Set(jumpFirst, colCellStart, JumpTo(target))
				}
				rowCellStart = target
				rowCell = target
				recRowEndPos = g.rows.StartPos(target) + height
				continue
			}

			// Empty.
			jumpFirst = noCell
			if g.rows.Cell(rowCell).EndPos < recRowEndPos {
				next := g.rows.Next(rowCell)
				if next == noCell {
					if d := recRowEndPos - g.Height; d < delta {
						delta = d
					}
					break
				}
				rowCell = next
				continue
			}

			// Sufficient height accumulated at rowCellStart..rowCell:
			// walk forward across columns looking for enough width.
			colCell := colCellStart
			for {
				walkEntry := g.matrix.Get(rowCellStart, colCell)
				if !walkEntry.IsEmpty() {
					break
				}
				if recColEndPos <= g.cols.Cell(colCell).EndPos {
					return Region{
						RowCellStart: rowCellStart,
						RowCell:      rowCell,
						RowEndPos:    recRowEndPos,
						ColCellStart: colCellStart,
						ColCell:      colCell,
						ColEndPos:    recColEndPos,
						found:        true,
					}, delta
				}
				next := g.cols.Next(colCell)
				if next == noCell {
					break
				}
				colCell = next
			}
			// Column walk rejected this starting column: per spec.md
			// §4.3, don't keep searching further rows for it — move
			// straight to the next starting column.
			break
		}
	}

	if delta < 1 {
		delta = 1
	}
	return Region{}, delta
}

// Split commits a placement: cuts the row and column CellLinks at the
// region's far edges (if they don't already land on cell boundaries),
// duplicates the affected jump-matrix row/column, and marks every cell
// spanned by the rectangle as occupied by installing jump targets along
// the region's top row and leftmost column (the "L-shape" described in
// spec.md §4.4).
func (g *Grid) Split(region Region) error {
	if !region.Ok() {
		return errors.New("grid: cannot split a failed region")
	}
	if region.RowEndPos > g.rows.Cell(region.RowCell).EndPos {
		return errors.Errorf("grid: region row end %d exceeds cell end %d",
			region.RowEndPos, g.rows.Cell(region.RowCell).EndPos)
	}
	if region.ColEndPos > g.cols.Cell(region.ColCell).EndPos {
		return errors.Errorf("grid: region col end %d exceeds cell end %d",
			region.ColEndPos, g.cols.Cell(region.ColCell).EndPos)
	}

	if region.RowEndPos < g.rows.Cell(region.RowCell).EndPos {
		src, dest, err := g.rows.Cut(region.RowCell, region.RowEndPos)
		if err != nil {
			return errors.Wrap(err, "grid: split row cut")
		}
		g.matrix.CopyRow(src, dest, g.cols.Len())
	}
	if region.ColEndPos < g.cols.Cell(region.ColCell).EndPos {
		src, dest, err := g.cols.Cut(region.ColCell, region.ColEndPos)
		if err != nil {
			return errors.Wrap(err, "grid: split col cut")
		}
		g.matrix.CopyCol(src, dest, g.rows.Len())
	}

	var jumpTarget JumpEntry
	if next := g.rows.Next(region.RowCell); next == noCell {
		jumpTarget = ColFullEntry
	} else {
		jumpTarget = JumpTo(next)
	}

	for rowCell := region.RowCellStart; ; rowCell = g.rows.Next(rowCell) {
		prev := g.matrix.Get(rowCell, region.ColCellStart)
		if err := invariant(prev.IsEmpty(), "split: row anchor (%d,%d) was not empty", rowCell, region.ColCellStart); err != nil {
			return err
		}
		g.matrix.Set(rowCell, region.ColCellStart, jumpTarget)
		if rowCell == region.RowCell {
			break
		}
	}

	if region.ColCellStart != region.ColCell {
		for colCell := g.cols.Next(region.ColCellStart); ; colCell = g.cols.Next(colCell) {
			prev := g.matrix.Get(region.RowCellStart, colCell)
			if err := invariant(prev.IsEmpty(), "split: col anchor (%d,%d) was not empty", region.RowCellStart, colCell); err != nil {
				return err
			}
			g.matrix.Set(region.RowCellStart, colCell, jumpTarget)
			if colCell == region.ColCell {
				break
			}
		}
	}

	return nil
}
