// Package packer packs a batch of axis-aligned, fixed-orientation
// rectangles into a small enclosing bounding box.
//
// Pack is the only entry point most callers need: it validates input,
// sorts rectangles by a greedy placement order, drives a bounding-box
// search built on top of the grid package, and returns positions in
// the caller's original input order.
package packer
