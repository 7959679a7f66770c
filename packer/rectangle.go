package packer

import "sort"

// MaxDimension is the largest width or height Pack accepts. It mirrors
// the "≤ INT_MAX/2" constraint from spec.md §6 -- INT_MAX as the
// original C implementation's 32-bit int -- leaving enough headroom
// that sums of input dimensions and areas fit comfortably in an int64
// for any input batch Pack can be reasonably asked to handle.
const MaxDimension int64 = (1<<31 - 1) / 2

// Size is one input rectangle: its fixed width and height. Both must
// be positive integers no larger than MaxDimension.
type Size struct {
	Width  int64
	Height int64
}

// Position is the top-left corner Pack assigns to a rectangle.
type Position struct {
	X int64
	Y int64
}

// rectangle is the packer's internal working record for one input
// item: its size, its assigned position (x = y = -1 means "unplaced",
// per spec.md §3), a stable id used only for diagnostics and
// tie-breaking, its area, and the index it had in the caller's input
// so Pack can restore input order on return.
type rectangle struct {
	width, height int64
	x, y          int64
	id            int
	area          int64
	inputIndex    int
}

const unplaced = -1

func validateSize(s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return newError(KindInvalidDimension, "width and height must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Width > MaxDimension || s.Height > MaxDimension {
		return newError(KindInvalidDimension, "width and height must be <= %d, got %dx%d", MaxDimension, s.Width, s.Height)
	}
	return nil
}

// addOverflow adds a and b, reporting whether the int64 result
// overflowed (both operands are non-negative in every call site in
// this package, so overflow only ever means "result wrapped negative
// or shrank").
func addOverflow(a, b int64) (int64, bool) {
	sum := a + b
	if sum < a || sum < b {
		return 0, true
	}
	return sum, false
}

func mulOverflow(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	if p/a != b {
		return 0, true
	}
	return p, false
}

// newRectangles validates sizes and materialises the internal
// rectangle records, per spec.md §4.6 steps 1-2.
func newRectangles(sizes []Size) ([]*rectangle, error) {
	rects := make([]*rectangle, len(sizes))
	var sumArea int64
	for i, s := range sizes {
		if err := validateSize(s); err != nil {
			return nil, err
		}
		area, overflow := mulOverflow(s.Width, s.Height)
		if overflow {
			return nil, newError(KindOverflow, "area of rectangle %d overflows", i+1)
		}
		sumArea, overflow = addOverflow(sumArea, area)
		if overflow {
			return nil, newError(KindOverflow, "sum of rectangle areas overflows")
		}
		rects[i] = &rectangle{
			width:      s.Width,
			height:     s.Height,
			x:          unplaced,
			y:          unplaced,
			id:         i + 1,
			area:       area,
			inputIndex: i,
		}
	}
	return rects, nil
}

// sortForPlacement orders rectangles in decreasing order by height,
// breaking ties by width descending, then by id ascending -- spec.md
// §4.6 step 3. This order, not the caller's input order, is what the
// placement loop walks; Pack restores input order on the way out.
func sortForPlacement(rects []*rectangle) {
	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.height != b.height {
			return a.height > b.height
		}
		if a.width != b.width {
			return a.width > b.width
		}
		return a.id < b.id
	})
}
