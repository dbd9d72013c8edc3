package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asciidiagrams/diagram"
	"asciidiagrams/layout"
)

func block(row, column diagram.LogicalCoord, text string) diagram.Block {
	return diagram.NewBlock(diagram.LogicalPoint{Row: row, Column: column}, []byte(text))
}

func space(blocks ...diagram.Block) *layout.CanvasSpace {
	cfg := diagram.DefaultOptions()
	return layout.NewCanvasSpace(blocks, cfg)
}

func TestAnchorsSameRowFacingSides(t *testing.T) {
	a := block(0, 0, "aa")
	b := block(0, 2, "bb")
	cs := space(a, b)

	p0, p1 := anchors(cs, a, b)
	assert.Equal(t, rectOf(cs, a).rightMid(), p0)
	assert.Equal(t, rectOf(cs, b).leftMid(), p1)

	// Reversed direction flips the sides.
	q0, q1 := anchors(cs, b, a)
	assert.Equal(t, rectOf(cs, b).leftMid(), q0)
	assert.Equal(t, rectOf(cs, a).rightMid(), q1)
}

func TestAnchorsSameRowBlocked(t *testing.T) {
	a := block(0, 0, "aa")
	mid := block(0, 1, "mm")
	b := block(0, 2, "bb")
	cs := space(a, mid, b)

	// Left to right goes over the top.
	p0, p1 := anchors(cs, a, b)
	assert.Equal(t, rectOf(cs, a).topMid(), p0)
	assert.Equal(t, rectOf(cs, b).topMid(), p1)

	// Right to left goes under the bottom.
	q0, q1 := anchors(cs, b, a)
	assert.Equal(t, rectOf(cs, b).bottomMid(), q0)
	assert.Equal(t, rectOf(cs, a).bottomMid(), q1)
}

func TestAnchorsSameColumnFacingSides(t *testing.T) {
	a := block(0, 0, "aa")
	b := block(2, 0, "bb")
	cs := space(a, b)

	p0, p1 := anchors(cs, a, b)
	assert.Equal(t, rectOf(cs, a).bottomMid(), p0)
	assert.Equal(t, rectOf(cs, b).topMid(), p1)
}

func TestAnchorsSameColumnBlocked(t *testing.T) {
	a := block(0, 0, "aa")
	mid := block(1, 0, "mm")
	b := block(2, 0, "bb")
	cs := space(a, mid, b)

	// Top to bottom exits to the right.
	p0, p1 := anchors(cs, a, b)
	assert.Equal(t, rectOf(cs, a).rightMid(), p0)
	assert.Equal(t, rectOf(cs, b).rightMid(), p1)

	// Bottom to top exits to the left.
	q0, q1 := anchors(cs, b, a)
	assert.Equal(t, rectOf(cs, b).leftMid(), q0)
	assert.Equal(t, rectOf(cs, a).leftMid(), q1)
}

func TestAnchorsDiagonal(t *testing.T) {
	a := block(0, 0, "aa")
	b := block(1, 1, "bb")
	c := block(-1, -1, "cc")
	cs := space(a, b, c)

	// Down-right: source leaves from the bottom, destination is entered
	// from its left side.
	p0, p1 := anchors(cs, a, b)
	assert.Equal(t, rectOf(cs, a).bottomMid(), p0)
	assert.Equal(t, rectOf(cs, b).leftMid(), p1)

	// Up-left: source leaves from the top, destination is entered from
	// its right side.
	p0, p1 = anchors(cs, a, c)
	assert.Equal(t, rectOf(cs, a).topMid(), p0)
	assert.Equal(t, rectOf(cs, c).rightMid(), p1)

	// The choice is direction-dependent on purpose: swapping the edge
	// endpoints does not mirror the anchors.
	q0, q1 := anchors(cs, b, a)
	assert.Equal(t, rectOf(cs, b).topMid(), q0)
	assert.Equal(t, rectOf(cs, a).rightMid(), q1)
	assert.NotEqual(t, p0, q1)
}
