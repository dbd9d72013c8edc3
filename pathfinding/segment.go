package pathfinding

import (
	"asciidiagrams/geometry"
)

// Orientation tags the two segment variants.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Segment is one axis-aligned piece of a polyline. It is a plain
// two-variant value: At is the fixed coordinate (y for horizontal
// segments, x for vertical ones) and Lo..Hi spans the varying
// coordinate with Lo <= Hi.
type Segment struct {
	Orientation Orientation
	At          int
	Lo, Hi      int
}

// NewHorizontal builds a horizontal segment on row y, ordering the
// endpoints.
func NewHorizontal(y, x0, x1 int) Segment {
	x0, x1 = geometry.MinMax(x0, x1)
	return Segment{Orientation: Horizontal, At: y, Lo: x0, Hi: x1}
}

// NewVertical builds a vertical segment on column x, ordering the
// endpoints.
func NewVertical(x, y0, y1 int) Segment {
	y0, y1 = geometry.MinMax(y0, y1)
	return Segment{Orientation: Vertical, At: x, Lo: y0, Hi: y1}
}

// Polyline is an ordered sequence of segments where adjacent segments
// share an endpoint. It always contains at least one segment.
type Polyline []Segment

// polylineFromPoints coalesces a chain of 4-adjacent points into the
// minimal run of axis-aligned segments.
func polylineFromPoints(points []geometry.Point) Polyline {
	var poly Polyline
	segStart := points[0]
	for i := 1; i < len(points); i++ {
		horizontal := points[i].Y == points[i-1].Y
		if i < len(points)-1 {
			// Still on the same axis: keep extending.
			if horizontal && points[i+1].Y == points[i].Y {
				continue
			}
			if !horizontal && points[i+1].X == points[i].X {
				continue
			}
		}
		if horizontal {
			poly = append(poly, NewHorizontal(segStart.Y, segStart.X, points[i].X))
		} else {
			poly = append(poly, NewVertical(segStart.X, segStart.Y, points[i].Y))
		}
		segStart = points[i]
	}
	return poly
}
