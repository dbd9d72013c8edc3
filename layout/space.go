// Package layout projects logical (row, column) grid coordinates onto
// canvas pixel rectangles.
package layout

import (
	"asciidiagrams/diagram"
)

// CanvasSpace is the definition of the canvas dimensions (column widths
// and row heights) required to render a set of blocks.
//
// Each block logically occupies a single grid point; CanvasSpace expands
// every grid column to the width of its widest block and every grid row
// to the height of its tallest, then accumulates origins with the
// configured margins. Margins are inserted before the first and after
// the last column/row as well: the routing engine needs that leading and
// trailing room to exit from blocks sitting on the grid boundary.
//
// CanvasSpace is immutable after construction and assumes at least one
// block; the renderer short-circuits the empty case before building it.
type CanvasSpace struct {
	minColumn diagram.LogicalCoord
	minRow    diagram.LogicalCoord

	columnsX     []int
	columnsWidth []int

	rowsY      []int
	rowsHeight []int

	blocksMap [][]bool

	canvasWidth  int
	canvasHeight int

	cfg diagram.Options
}

// NewCanvasSpace measures the block set under the given options.
func NewCanvasSpace(blocks []diagram.Block, cfg diagram.Options) *CanvasSpace {
	minColumn, minRow := blocks[0].Column, blocks[0].Row
	maxColumn, maxRow := blocks[0].Column, blocks[0].Row
	for _, b := range blocks[1:] {
		minColumn = min(minColumn, b.Column)
		minRow = min(minRow, b.Row)
		maxColumn = max(maxColumn, b.Column)
		maxRow = max(maxRow, b.Row)
	}

	// +1 to go from inclusive coordinates to exclusive
	width := 1 + int(maxColumn-minColumn)
	height := 1 + int(maxRow-minRow)

	cs := &CanvasSpace{
		minColumn: minColumn,
		minRow:    minRow,

		columnsX:     make([]int, width),
		columnsWidth: make([]int, width),

		rowsY:      make([]int, height),
		rowsHeight: make([]int, height),

		blocksMap: make([][]bool, height),

		cfg: cfg,
	}
	for r := range cs.blocksMap {
		cs.blocksMap[r] = make([]bool, width)
	}

	for _, b := range blocks {
		c := int(b.Column - minColumn)
		r := int(b.Row - minRow)

		// +2 to account for block borders
		w := 2 + b.TextWidth + cfg.Padding*2
		h := 2 + b.TextHeight + cfg.Padding*2

		cs.columnsWidth[c] = max(cs.columnsWidth[c], w)
		cs.rowsHeight[r] = max(cs.rowsHeight[r], h)

		cs.blocksMap[r][c] = true
	}

	cs.columnsX[0] = cfg.HMargin
	cs.rowsY[0] = cfg.VMargin

	for x := 1; x < width; x++ {
		cs.columnsX[x] = cs.columnsX[x-1] + cs.columnsWidth[x-1] + cfg.HMargin
	}
	for y := 1; y < height; y++ {
		cs.rowsY[y] = cs.rowsY[y-1] + cs.rowsHeight[y-1] + cfg.VMargin
	}

	cs.canvasWidth = cs.columnsX[width-1] + cs.columnsWidth[width-1] + cfg.HMargin
	cs.canvasHeight = cs.rowsY[height-1] + cs.rowsHeight[height-1] + cfg.VMargin

	return cs
}

// CanvasWidth returns the full canvas width in cells.
func (cs *CanvasSpace) CanvasWidth() int { return cs.canvasWidth }

// CanvasHeight returns the full canvas height in cells.
func (cs *CanvasSpace) CanvasHeight() int { return cs.canvasHeight }

// ColumnX returns the canvas x origin of a logical column.
func (cs *CanvasSpace) ColumnX(column diagram.LogicalCoord) int {
	return cs.columnsX[int(column-cs.minColumn)]
}

// ColumnWidth returns the canvas width of a logical column.
func (cs *CanvasSpace) ColumnWidth(column diagram.LogicalCoord) int {
	return cs.columnsWidth[int(column-cs.minColumn)]
}

// RowY returns the canvas y origin of a logical row.
func (cs *CanvasSpace) RowY(row diagram.LogicalCoord) int {
	return cs.rowsY[int(row-cs.minRow)]
}

// RowHeight returns the canvas height of a logical row.
func (cs *CanvasSpace) RowHeight(row diagram.LogicalCoord) int {
	return cs.rowsHeight[int(row-cs.minRow)]
}

// HasBlockAt reports whether a block occupies the logical grid cell.
// Cells outside the grid bounds are empty.
func (cs *CanvasSpace) HasBlockAt(at diagram.LogicalPoint) bool {
	r := int(at.Row - cs.minRow)
	c := int(at.Column - cs.minColumn)
	if r < 0 || r >= len(cs.blocksMap) || c < 0 || c >= len(cs.blocksMap[r]) {
		return false
	}
	return cs.blocksMap[r][c]
}

// RenderCfg returns the options the space was measured with.
func (cs *CanvasSpace) RenderCfg() diagram.Options {
	return cs.cfg
}
