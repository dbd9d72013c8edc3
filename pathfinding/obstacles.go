package pathfinding

import (
	"asciidiagrams/canvas"
	"asciidiagrams/diagram"
	"asciidiagrams/geometry"
	"asciidiagrams/layout"
)

// Obstacle classes on the routing map.
const (
	// Wall marks a hard obstacle: block borders and text. Never
	// traversed except as the search source or destination cell.
	Wall byte = '#'

	// SoftWall marks the margin cushion around blocks. Crossable near
	// the search endpoints (a path has to cross its own block's cushion
	// to leave), penalized everywhere the permissive pass allows it.
	SoftWall byte = '@'
)

// buildObstacleMap clones the block-only canvas and annotates it for
// routing: every drawn byte becomes a Wall, then SoftWall cushions are
// written one cell out from every block side whose separating margin
// leaves room to route around them.
func buildObstacleMap(base *canvas.Canvas, cs *layout.CanvasSpace, blocks []diagram.Block) *canvas.Canvas {
	m := base.Clone()
	w, h := m.Size()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := geometry.Point{X: x, Y: y}
			if m.At(p) != ' ' {
				m.Set(p, Wall)
			}
		}
	}

	cfg := cs.RenderCfg()
	for _, b := range blocks {
		x := cs.ColumnX(b.Column)
		y := cs.RowY(b.Row)
		bw := cs.ColumnWidth(b.Column)
		bh := cs.RowHeight(b.Row)

		if cfg.HMargin > 2 {
			for yy := y; yy < y+bh; yy++ {
				m.Set(geometry.Point{X: x - 1, Y: yy}, SoftWall)
				m.Set(geometry.Point{X: x + bw, Y: yy}, SoftWall)
			}
		}
		if cfg.VMargin > 2 {
			for xx := x; xx < x+bw; xx++ {
				m.Set(geometry.Point{X: xx, Y: y - 1}, SoftWall)
				m.Set(geometry.Point{X: xx, Y: y + bh}, SoftWall)
			}
		}
	}

	return m
}

// drawPolyline stamps a routed polyline onto the obstacle map so that
// later searches see it and pay to cross it.
func drawPolyline(m *canvas.Canvas, poly Polyline) {
	for _, s := range poly {
		if s.Orientation == Horizontal {
			m.DrawHorizontalLine(s.At, s.Lo, s.Hi)
		} else {
			m.DrawVerticalLine(s.At, s.Lo, s.Hi)
		}
	}
}
