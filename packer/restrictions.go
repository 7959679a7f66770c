package packer

// BBoxRestrictions bounds the candidate bounding boxes searchBBox is
// allowed to try. It is immutable over a single Pack call.
type BBoxRestrictions struct {
	MinWidth  int64
	MaxWidth  int64
	MinHeight int64
	MaxHeight int64
	MaxArea   int64
}

// Enclosing is the achieved bounding box returned to the caller.
type Enclosing struct {
	Width  int64
	Height int64
}

// computeRestrictions implements spec.md §4.6 step 4: max_w/max_h are
// the degenerate single-row/single-column layout's dimensions (so a
// valid layout is always reachable), min_w/min_h are the largest
// single rectangle along each axis (no box can be smaller than its
// largest occupant), and max_area is their product.
func computeRestrictions(rects []*rectangle) (BBoxRestrictions, error) {
	var sumWidth, sumHeight, maxWidth, maxHeight int64
	var overflow bool
	for _, r := range rects {
		sumWidth, overflow = addOverflow(sumWidth, r.width)
		if overflow {
			return BBoxRestrictions{}, newError(KindOverflow, "sum of rectangle widths overflows")
		}
		sumHeight, overflow = addOverflow(sumHeight, r.height)
		if overflow {
			return BBoxRestrictions{}, newError(KindOverflow, "sum of rectangle heights overflows")
		}
		if r.width > maxWidth {
			maxWidth = r.width
		}
		if r.height > maxHeight {
			maxHeight = r.height
		}
	}

	if len(rects) == 0 {
		return BBoxRestrictions{}, nil
	}

	maxArea, overflow := mulOverflow(sumWidth, sumHeight)
	if overflow {
		return BBoxRestrictions{}, newError(KindOverflow, "max candidate area overflows")
	}

	return BBoxRestrictions{
		MinWidth:  maxWidth,
		MaxWidth:  sumWidth,
		MinHeight: maxHeight,
		MaxHeight: sumHeight,
		MaxArea:   maxArea,
	}, nil
}
