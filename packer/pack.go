package packer

import (
	"github.com/halvardsson/rectpack/grid"
)

// Pack positions a batch of rectangles (each given only as a fixed
// width and height) to minimize the area of their axis-aligned
// enclosing bounding box under a greedy strategy. Positions are
// returned in the same order as sizes. An empty input returns an
// empty output.
//
// Pack validates its input before doing any allocation (spec.md §7):
// a non-positive or too-large dimension is KindInvalidDimension, and a
// sum of dimensions or areas that would overflow an int64 is
// KindOverflow.
func Pack(sizes []Size) ([]Position, Enclosing, error) {
	if len(sizes) == 0 {
		return nil, Enclosing{}, nil
	}

	rects, err := newRectangles(sizes)
	if err != nil {
		return nil, Enclosing{}, err
	}

	restr, err := computeRestrictions(rects)
	if err != nil {
		return nil, Enclosing{}, err
	}

	ordered := make([]*rectangle, len(rects))
	copy(ordered, rects)
	sortForPlacement(ordered)

	g, err := allocateGrid(len(ordered)+1, restr.MaxWidth, restr.MaxHeight)
	if err != nil {
		return nil, Enclosing{}, err
	}

	result := searchBBox(g, ordered, restr)
	if !result.ok {
		packFallback(ordered)
	} else if err := replay(g, ordered, result); err != nil {
		return nil, Enclosing{}, err
	}

	positions := make([]Position, len(sizes))
	var enclosing Enclosing
	for _, r := range ordered {
		positions[r.inputIndex] = Position{X: r.x, Y: r.y}
		if x := r.x + r.width; x > enclosing.Width {
			enclosing.Width = x
		}
		if y := r.y + r.height; y > enclosing.Height {
			enclosing.Height = y
		}
	}

	return positions, enclosing, nil
}

// allocateGrid wraps grid.New, turning an allocation panic (e.g. the
// runtime refusing a pathologically large make()) into a structured
// KindAllocationFailure error instead of crashing the caller, per
// spec.md §7.
func allocateGrid(capacity int, width, height int64) (g *grid.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			g = nil
			err = newError(KindAllocationFailure, "failed to allocate grid: %v", r)
		}
	}()
	return grid.New(capacity, width, height), nil
}

// replay re-runs the exact placement sequence that searchBBox found
// successful at (result.width, result.height), recording each
// rectangle's final (x, y). This is spec.md §4.6 step 7: searchBBox
// itself leaves the grid in its last, possibly failed, attempt state,
// so a clean final pass is needed to read out positions.
func replay(g *grid.Grid, rects []*rectangle, result searchResult) error {
	g.Width = result.width
	g.Height = result.height
	g.Clear()

	for _, r := range rects {
		region, _ := g.FindRegion(r.width, r.height)
		if !region.Ok() {
			return newError(KindAlgorithmFailure,
				"replay failed to place rectangle %d in winning box %dx%d", r.id, result.width, result.height)
		}
		if err := g.Split(region); err != nil {
			return wrapError(KindAlgorithmFailure, err, "replay split failed for rectangle %d", r.id)
		}
		r.x = g.ColStartPos(region.ColCellStart)
		r.y = g.RowStartPos(region.RowCellStart)
	}
	return nil
}

// packFallback assigns the trivial, always-valid single-row layout:
// rectangles placed side by side at y=0 in the order searchBBox would
// have placed them, per spec.md §4.6 step 6. It never fails.
func packFallback(rects []*rectangle) {
	var x int64
	for _, r := range rects {
		r.x = x
		r.y = 0
		x += r.width
	}
}
