package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asciidiagrams/geometry"
)

func TestSegmentConstructorsNormalize(t *testing.T) {
	h := NewHorizontal(3, 9, 2)
	assert.Equal(t, Segment{Orientation: Horizontal, At: 3, Lo: 2, Hi: 9}, h)

	v := NewVertical(4, 1, 8)
	assert.Equal(t, Segment{Orientation: Vertical, At: 4, Lo: 1, Hi: 8}, v)
}

func TestPolylineFromPoints(t *testing.T) {
	p := func(x, y int) geometry.Point { return geometry.Point{X: x, Y: y} }

	tests := []struct {
		name   string
		points []geometry.Point
		want   Polyline
	}{
		{
			"StraightHorizontal",
			[]geometry.Point{p(1, 2), p(2, 2), p(3, 2), p(4, 2)},
			Polyline{NewHorizontal(2, 1, 4)},
		},
		{
			"StraightVertical",
			[]geometry.Point{p(5, 1), p(5, 2), p(5, 3)},
			Polyline{NewVertical(5, 1, 3)},
		},
		{
			"SingleStep",
			[]geometry.Point{p(0, 0), p(1, 0)},
			Polyline{NewHorizontal(0, 0, 1)},
		},
		{
			"LShape",
			[]geometry.Point{p(0, 0), p(1, 0), p(2, 0), p(2, 1), p(2, 2)},
			Polyline{NewHorizontal(0, 0, 2), NewVertical(2, 0, 2)},
		},
		{
			"Staircase",
			[]geometry.Point{p(0, 0), p(0, 1), p(1, 1), p(1, 2)},
			Polyline{NewVertical(0, 0, 1), NewHorizontal(1, 0, 1), NewVertical(1, 1, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, polylineFromPoints(tt.points))
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b Score
		less bool
	}{
		{"IntersectionsDominate", Score{0, 9, 9}, Score{1, 0, 0}, true},
		{"TurnsDominateLength", Score{1, 2, 9}, Score{1, 3, 0}, true},
		{"LengthBreaksTies", Score{1, 2, 3}, Score{1, 2, 4}, true},
		{"EqualIsNotLess", Score{1, 2, 3}, Score{1, 2, 3}, false},
		{"Greater", Score{2, 0, 0}, Score{1, 9, 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.less, tt.a.Less(tt.b))
		})
	}
}

func TestScoreAdd(t *testing.T) {
	sum := Score{1, 2, 3}.Add(Score{10, 20, 30})
	assert.Equal(t, Score{11, 22, 33}, sum)
}
