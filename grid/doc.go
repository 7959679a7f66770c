// Package grid implements the occupancy structure behind the rectangle
// packer: two orthogonal CellLinks (one per axis) partitioning an
// enclosing box into cells, and a JumpMatrix that lets a region search
// skip over already-occupied cells instead of scanning them one at a
// time.
//
// A Grid is created once per packing attempt and reused across
// candidate bounding boxes via Clear. FindRegion locates free space for
// a rectangle; Split commits a placement by cutting the row/column
// CellLinks at the region's far edges and marking the jump matrix.
package grid
