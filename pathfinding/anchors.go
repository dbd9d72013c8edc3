package pathfinding

import (
	"asciidiagrams/diagram"
	"asciidiagrams/geometry"
	"asciidiagrams/layout"
)

// blockRect is a block's outline rectangle in canvas cells.
type blockRect struct {
	x, y, w, h int
}

func rectOf(cs *layout.CanvasSpace, b diagram.Block) blockRect {
	return blockRect{
		x: cs.ColumnX(b.Column),
		y: cs.RowY(b.Row),
		w: cs.ColumnWidth(b.Column),
		h: cs.RowHeight(b.Row),
	}
}

func (r blockRect) topMid() geometry.Point    { return geometry.Point{X: r.x + r.w/2, Y: r.y} }
func (r blockRect) bottomMid() geometry.Point { return geometry.Point{X: r.x + r.w/2, Y: r.y + r.h - 1} }
func (r blockRect) leftMid() geometry.Point   { return geometry.Point{X: r.x, Y: r.y + r.h/2} }
func (r blockRect) rightMid() geometry.Point  { return geometry.Point{X: r.x + r.w - 1, Y: r.y + r.h/2} }

// anchors picks the two border cells a connection should attach to.
//
// The choice is intentionally direction-dependent: anchors(src, dst) and
// anchors(dst, src) disagree in general, and the router exploits that by
// searching both orientations and keeping the cheaper one.
func anchors(cs *layout.CanvasSpace, src, dst diagram.Block) (geometry.Point, geometry.Point) {
	r0, c0 := src.Row, src.Column
	r1, c1 := dst.Row, dst.Column
	s := rectOf(cs, src)
	d := rectOf(cs, dst)

	switch {
	case r0 == r1:
		if rowBlocked(cs, r0, c0, c1) {
			// Detour over (or under) the blocks in between.
			if c0 < c1 {
				return s.topMid(), d.topMid()
			}
			return s.bottomMid(), d.bottomMid()
		}
		if c0 < c1 {
			return s.rightMid(), d.leftMid()
		}
		return s.leftMid(), d.rightMid()

	case c0 == c1:
		if columnBlocked(cs, c0, r0, r1) {
			if r0 < r1 {
				return s.rightMid(), d.rightMid()
			}
			return s.leftMid(), d.leftMid()
		}
		if r0 < r1 {
			return s.bottomMid(), d.topMid()
		}
		return s.topMid(), d.bottomMid()

	default:
		// Diagonal: leave the source vertically, enter the destination
		// horizontally.
		var p0, p1 geometry.Point
		if r1 > r0 {
			p0 = s.bottomMid()
		} else {
			p0 = s.topMid()
		}
		if c1 > c0 {
			p1 = d.leftMid()
		} else {
			p1 = d.rightMid()
		}
		return p0, p1
	}
}

// rowBlocked reports whether any grid cell strictly between two columns
// of a row holds a block.
func rowBlocked(cs *layout.CanvasSpace, row, c0, c1 diagram.LogicalCoord) bool {
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	for c := c0 + 1; c < c1; c++ {
		if cs.HasBlockAt(diagram.LogicalPoint{Row: row, Column: c}) {
			return true
		}
	}
	return false
}

// columnBlocked reports whether any grid cell strictly between two rows
// of a column holds a block.
func columnBlocked(cs *layout.CanvasSpace, column, r0, r1 diagram.LogicalCoord) bool {
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for r := r0 + 1; r < r1; r++ {
		if cs.HasBlockAt(diagram.LogicalPoint{Row: r, Column: column}) {
			return true
		}
	}
	return false
}
