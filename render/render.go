// Package render orchestrates a full diagram render: it measures the
// canvas space, draws the block boxes with centered text, routes the
// requested edges and stamps the resulting polylines.
package render

import (
	"asciidiagrams/canvas"
	"asciidiagrams/diagram"
	"asciidiagrams/layout"
	"asciidiagrams/pathfinding"
)

// Render draws the blocks and edges into a byte matrix of exactly
// canvas_height rows by canvas_width columns. An empty block list yields
// an empty matrix.
//
// Edge indices refer to the blocks slice and must be valid; the loader
// enforces that at the boundary.
func Render(blocks []diagram.Block, edges []diagram.Edge, cfg diagram.Options) [][]byte {
	if len(blocks) == 0 {
		return nil
	}

	cs := layout.NewCanvasSpace(blocks, cfg)
	c := canvas.New(cs.CanvasWidth(), cs.CanvasHeight())

	for _, b := range blocks {
		x := cs.ColumnX(b.Column)
		y := cs.RowY(b.Row)
		w := cs.ColumnWidth(b.Column)
		h := cs.RowHeight(b.Row)

		c.DrawRectOutline(x, y, w, h)

		// center text horizontally and vertically
		xoff := (w - b.TextWidth) / 2
		yoff := (h - b.TextHeight) / 2

		for ty, line := range b.Text {
			c.DrawText(x+xoff, y+yoff+ty, line)
		}
	}

	for _, poly := range pathfinding.Route(c, cs, blocks, edges) {
		for _, s := range poly {
			if s.Orientation == pathfinding.Horizontal {
				c.DrawHorizontalLine(s.At, s.Lo, s.Hi)
			} else {
				c.DrawVerticalLine(s.At, s.Lo, s.Hi)
			}
		}
	}

	return c.Rows()
}
