package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridClearResetsToSingleCell(t *testing.T) {
	g := New(8, 140, 50)
	assert.Equal(t, int64(140), g.Width)
	assert.Equal(t, int64(50), g.Height)

	region, _ := g.FindRegion(140, 50)
	require.True(t, region.Ok())
	require.NoError(t, g.Split(region))

	g.Clear()
	region2, _ := g.FindRegion(140, 50)
	assert.True(t, region2.Ok(), "grid should be entirely free again after Clear")
}

func TestGridFindRegionOnEmptyGrid(t *testing.T) {
	g := New(4, 100, 50)
	region, delta := g.FindRegion(40, 20)
	require.True(t, region.Ok())
	assert.Equal(t, int64(0), g.ColStartPos(region.ColCellStart))
	assert.Equal(t, int64(0), g.RowStartPos(region.RowCellStart))
	assert.Equal(t, int64(40), region.ColEndPos)
	assert.Equal(t, int64(20), region.RowEndPos)
	assert.GreaterOrEqual(t, delta, int64(1))
}

func TestGridFindRegionFailsWhenTooWide(t *testing.T) {
	g := New(4, 50, 50)
	region, delta := g.FindRegion(100, 10)
	assert.False(t, region.Ok())
	assert.GreaterOrEqual(t, delta, int64(1))
	assert.LessOrEqual(t, delta, g.Height)
}

func TestGridFindRegionFailsWhenTooTall(t *testing.T) {
	g := New(4, 50, 30)
	region, delta := g.FindRegion(10, 100)
	assert.False(t, region.Ok())
	// No placement fits height 100 in a grid of height 30: the near-miss
	// slack should be clamped down to the grid's current height.
	assert.Equal(t, int64(30), delta)
}

// TestGridPlaceTwoRectanglesSideBySide mirrors spec scenario 1's
// geometry directly at the Grid level (both rectangles full grid
// height, so no row splitting is needed -- just two adjacent column
// cells).
func TestGridPlaceTwoRectanglesSideBySide(t *testing.T) {
	g := New(4, 140, 50)

	region1, _ := g.FindRegion(100, 50)
	require.True(t, region1.Ok())
	assert.Equal(t, int64(0), g.ColStartPos(region1.ColCellStart))
	assert.Equal(t, int64(0), g.RowStartPos(region1.RowCellStart))
	require.NoError(t, g.Split(region1))

	region2, _ := g.FindRegion(40, 50)
	require.True(t, region2.Ok())
	assert.Equal(t, int64(100), g.ColStartPos(region2.ColCellStart))
	assert.Equal(t, int64(0), g.RowStartPos(region2.RowCellStart))
	require.NoError(t, g.Split(region2))

	region3, _ := g.FindRegion(1, 1)
	assert.False(t, region3.Ok(), "grid should be fully occupied")
}

// TestGridPlaceFourQuartersNoOverlap mirrors spec scenario 2: four
// 50x50 rectangles packed into a 100x100 grid, one per quadrant.
func TestGridPlaceFourQuartersNoOverlap(t *testing.T) {
	g := New(5, 100, 100)

	type placed struct{ x, y, w, h int64 }
	var all []placed

	for i := 0; i < 4; i++ {
		region, _ := g.FindRegion(50, 50)
		require.Truef(t, region.Ok(), "placement %d failed", i)
		x := g.ColStartPos(region.ColCellStart)
		y := g.RowStartPos(region.RowCellStart)
		require.NoError(t, g.Split(region))
		all = append(all, placed{x, y, 50, 50})
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			overlap := a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
			assert.Falsef(t, overlap, "rectangles %d and %d overlap: %+v %+v", i, j, a, b)
		}
	}

	region, _ := g.FindRegion(1, 1)
	assert.False(t, region.Ok(), "100x100 grid should be exactly full after four 50x50 placements")
}

func TestGridSplitRejectsFailedRegion(t *testing.T) {
	g := New(4, 10, 10)
	err := g.Split(Region{})
	assert.Error(t, err)
}

func TestGridSplitInsufficientCapacityErrors(t *testing.T) {
	// Capacity 1 leaves no room for the cut that a partial-width
	// placement requires.
	g := New(1, 100, 100)
	region, _ := g.FindRegion(40, 100)
	require.True(t, region.Ok())
	err := g.Split(region)
	assert.Error(t, err)
}
