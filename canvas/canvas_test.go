package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"asciidiagrams/geometry"
)

func TestNewFillsWithSpaces(t *testing.T) {
	c := New(4, 3)

	w, h := c.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := c.At(geometry.Point{X: x, Y: y}); got != ' ' {
				t.Errorf("cell (%d,%d) = %q, want space", x, y, got)
			}
		}
	}
}

func TestDrawRectOutline(t *testing.T) {
	c := New(7, 5)
	c.DrawRectOutline(1, 1, 5, 3)

	want := strings.Join([]string{
		"       ",
		" +---+ ",
		" |   | ",
		" +---+ ",
		"       ",
	}, "\n") + "\n"
	assert.Equal(t, want, c.String())
}

func TestDrawText(t *testing.T) {
	c := New(6, 2)
	c.DrawText(1, 0, []byte("ab"))
	c.DrawText(0, 1, []byte("cdef"))

	assert.Equal(t, " ab   \ncdef  \n", c.String())
}

func TestDrawHorizontalLine(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 int
		want   string
	}{
		{"Ordered", 1, 4, " +--+ \n"},
		{"Reversed", 4, 1, " +--+ \n"},
		{"Adjacent", 2, 3, "  ++  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(6, 1)
			c.DrawHorizontalLine(0, tt.x0, tt.x1)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestDrawVerticalLine(t *testing.T) {
	c := New(1, 5)
	c.DrawVerticalLine(0, 3, 0)

	assert.Equal(t, "+\n|\n|\n+\n \n", c.String())
}

// Line endpoints must overwrite whatever is underneath so that a line
// meeting a block border renders as a junction.
func TestLineEndpointsOverride(t *testing.T) {
	c := New(7, 3)
	c.DrawRectOutline(0, 0, 3, 3)
	c.DrawRectOutline(4, 0, 3, 3)
	c.DrawHorizontalLine(1, 2, 4)

	assert.Equal(t, byte('+'), c.At(geometry.Point{X: 2, Y: 1}))
	assert.Equal(t, byte('+'), c.At(geometry.Point{X: 4, Y: 1}))
	assert.Equal(t, byte('-'), c.At(geometry.Point{X: 3, Y: 1}))
}

func TestClone(t *testing.T) {
	c := New(3, 2)
	c.Set(geometry.Point{X: 1, Y: 1}, '#')

	d := c.Clone()
	assert.Equal(t, c.String(), d.String())

	d.Set(geometry.Point{X: 0, Y: 0}, '@')
	assert.Equal(t, byte(' '), c.At(geometry.Point{X: 0, Y: 0}))
	assert.Equal(t, byte('@'), d.At(geometry.Point{X: 0, Y: 0}))
}
