package packer

import (
	"github.com/grailbio/base/log"

	"github.com/halvardsson/rectpack/grid"
)

// searchResult is what searchBBox found: the best (width, height) box
// it managed to pack all rectangles into, and whether it found one at
// all.
type searchResult struct {
	width  int64
	height int64
	ok     bool
}

// searchBBox drives the delta-driven bounding-box search of spec.md
// §4.5: it repeatedly clears g, tries to place every rectangle in
// rects (in their current, pre-sorted order) inside the candidate box
// (g.Width, g.Height), and after every attempt raises the height by
// the delta FindRegion reports (at least 1, often more) and recomputes
// the width from the best area found so far.
func searchBBox(g *grid.Grid, rects []*rectangle, restr BBoxRestrictions) searchResult {
	var totalArea int64
	for _, r := range rects {
		totalArea += r.area
	}

	g.Height = restr.MinHeight
	g.Width = restr.MaxWidth
	if g.Height > 0 {
		if byArea := restr.MaxArea / g.Height; byArea < g.Width {
			g.Width = byArea
		}
	}

	startWidth := g.Width
	startArea := restr.MaxArea - 1
	bestArea := startArea
	bestWidth := g.Width
	bestHeight := g.Height

	for g.Height <= restr.MaxHeight && g.Width >= restr.MinWidth {
		g.Clear()
		delta := restr.MaxHeight
		achievedWidth := int64(0)
		placedAll := true

		for _, r := range rects {
			region, d := g.FindRegion(r.width, r.height)
			if d < delta {
				delta = d
			}
			if !region.Ok() {
				placedAll = false
				break
			}
			if region.ColEndPos > achievedWidth {
				achievedWidth = region.ColEndPos
			}
			if err := g.Split(region); err != nil {
				log.Debug.Printf("rectpack: split failed at box %dx%d: %v", g.Width, g.Height, err)
				placedAll = false
				break
			}
		}

		log.Debug.Printf("rectpack: attempt box %dx%d placedAll=%v achievedWidth=%d delta=%d",
			g.Width, g.Height, placedAll, achievedWidth, delta)

		if placedAll {
			bestHeight = g.Height
			bestWidth = achievedWidth
			bestArea = bestHeight * bestWidth
			if bestArea <= totalArea {
				break
			}
		}

		if delta < 1 {
			delta = 1
		}
		g.Height += delta

		newWidth := restr.MaxWidth
		if g.Height > 0 {
			if byArea := bestArea / g.Height; byArea < newWidth {
				newWidth = byArea
			}
		}
		if newWidth*g.Height == bestArea {
			newWidth--
		}
		g.Width = newWidth
	}

	if bestArea == startArea {
		g.Width = startWidth
		g.Height = restr.MinHeight
		return searchResult{}
	}

	g.Width = bestWidth
	g.Height = bestHeight
	return searchResult{width: bestWidth, height: bestHeight, ok: true}
}
