package pathfinding

import (
	"container/heap"

	"asciidiagrams/canvas"
	"asciidiagrams/geometry"
)

// Score ranks candidate paths. Comparison is lexicographic:
// intersections strictly dominate turns, turns strictly dominate length.
type Score struct {
	Intersections int
	Turns         int
	Length        int
}

// Less reports whether s ranks strictly better than o.
func (s Score) Less(o Score) bool {
	if s.Intersections != o.Intersections {
		return s.Intersections < o.Intersections
	}
	if s.Turns != o.Turns {
		return s.Turns < o.Turns
	}
	return s.Length < o.Length
}

// Add sums two scores componentwise.
func (s Score) Add(o Score) Score {
	return Score{
		Intersections: s.Intersections + o.Intersections,
		Turns:         s.Turns + o.Turns,
		Length:        s.Length + o.Length,
	}
}

// direction of the move that entered a search node.
type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

var neighborSteps = [4]struct {
	dx, dy int
	dir    direction
}{
	{0, -1, dirUp},
	{0, 1, dirDown},
	{-1, 0, dirLeft},
	{1, 0, dirRight},
}

// searchNode is one frontier entry. Entries are immutable once pushed;
// stale duplicates are skipped on pop via the seen set.
type searchNode struct {
	at     geometry.Point
	score  Score
	dir    direction
	parent *searchNode
}

// frontier is a priority queue over search nodes keyed by (Score, y, x).
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score.Less(f[j].score)
	}
	if f[i].at.Y != f[j].at.Y {
		return f[i].at.Y < f[j].at.Y
	}
	return f[i].at.X < f[j].at.X
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*searchNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// findPath runs a best-first search for an orthogonal path from src to
// dst over the obstacle map. Both endpoints sit on block borders; the
// admissibility rules below are what let the path touch a block at
// exactly those two cells.
//
// In the strict pass (allowIntersections false) the only non-space cells
// a path may use are the endpoints themselves, plus non-Wall cells
// within one step of either endpoint, so a route cannot lean on soft
// walls or earlier lines in the open field. The permissive pass admits
// every non-Wall cell and pays for each crossing instead.
func findPath(m *canvas.Canvas, src, dst geometry.Point, allowIntersections bool) (Polyline, Score, bool) {
	w, h := m.Size()

	admissible := func(p geometry.Point) bool {
		if p == src || p == dst {
			return true
		}
		cell := m.At(p)
		if cell == ' ' {
			return true
		}
		if cell != Wall &&
			(geometry.ChebyshevDistance(p, src) <= 1 || geometry.ChebyshevDistance(p, dst) <= 1) {
			return true
		}
		return allowIntersections && cell != Wall
	}

	open := &frontier{&searchNode{at: src}}
	heap.Init(open)
	seen := make(map[geometry.Point]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if cur.at == dst {
			return polylineFromPoints(chainPoints(cur)), cur.score, true
		}
		if seen[cur.at] {
			continue
		}
		seen[cur.at] = true

		for _, step := range neighborSteps {
			next := geometry.Point{X: cur.at.X + step.dx, Y: cur.at.Y + step.dy}
			if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
				continue
			}
			if seen[next] || !admissible(next) {
				continue
			}

			sc := cur.score
			sc.Length++
			// Crossing anything drawn costs an intersection, except in
			// the exit zone around the endpoints: leaving a block always
			// crosses its own cushion, and that must stay free or no
			// route could ever score zero.
			if cell := m.At(next); cell != ' ' &&
				geometry.ChebyshevDistance(next, src) > 1 &&
				geometry.ChebyshevDistance(next, dst) > 1 {
				sc.Intersections++
			}
			if cur.dir != dirNone && cur.dir != step.dir {
				sc.Turns++
			}

			heap.Push(open, &searchNode{at: next, score: sc, dir: step.dir, parent: cur})
		}
	}

	return nil, Score{}, false
}

// chainPoints walks the parent chain back to the source and returns the
// path in source-to-destination order.
func chainPoints(node *searchNode) []geometry.Point {
	n := 0
	for cur := node; cur != nil; cur = cur.parent {
		n++
	}
	points := make([]geometry.Point, n)
	for cur := node; cur != nil; cur = cur.parent {
		n--
		points[n] = cur.at
	}
	return points
}
