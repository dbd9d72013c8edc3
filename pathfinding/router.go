// Package pathfinding implements the edge-routing engine: anchor
// selection on block perimeters, a scored best-first search over an
// obstacle-annotated canvas, and a seeded randomized reorder loop that
// retries edge orderings to shake routes out of local optima.
package pathfinding

import (
	"fmt"
	"sort"

	"asciidiagrams/canvas"
	"asciidiagrams/diagram"
	"asciidiagrams/geometry"
	"asciidiagrams/layout"
)

// routedEdge pairs an edge with its position in the caller's edge list,
// so results can be reassembled in input order.
type routedEdge struct {
	index    int
	src, dst diagram.Block
	distance int
}

// Route produces one polyline per edge, in the same order as the input
// edge list. Polylines are in canvas coordinates; their endpoints sit on
// the two blocks' outer borders.
//
// base must be the canvas holding only the drawn blocks. Route never
// mutates it; every search runs on a private annotated clone.
func Route(base *canvas.Canvas, cs *layout.CanvasSpace, blocks []diagram.Block, edges []diagram.Edge) []Polyline {
	if len(edges) == 0 {
		return nil
	}

	cfg := cs.RenderCfg()
	polylines := make([]Polyline, len(edges))

	// Adjacent blocks are trivially optimal: a single segment between
	// the facing borders. Route them up front and never retry them.
	var long []routedEdge
	var short []routedEdge
	for i, e := range edges {
		re := routedEdge{index: i, src: blocks[e.From], dst: blocks[e.To]}
		re.distance = geometry.Abs(int(re.dst.Row-re.src.Row)) + geometry.Abs(int(re.dst.Column-re.src.Column))
		if re.distance == 1 {
			short = append(short, re)
		} else {
			long = append(long, re)
		}
	}

	seed := buildObstacleMap(base, cs, blocks)
	for _, re := range short {
		poly := Polyline{adjacentSegment(cs, re.src, re.dst)}
		drawPolyline(seed, poly)
		polylines[re.index] = poly
	}

	if len(long) == 0 {
		return polylines
	}

	sort.SliceStable(long, func(i, j int) bool {
		return long[i].distance < long[j].distance
	})

	best, bestSum := routePass(seed, cs, long)

	if cfg.MaxTweaks > 0 && bestSum.Intersections > 0 {
		var rng *xoshiro256
		if cfg.HasSeed {
			rng = newXoshiro256(cfg.Seed)
		} else {
			rng = newXoshiro256(entropySeed())
		}

		order := make([]routedEdge, len(long))
		copy(order, long)
		for t := 0; t < cfg.MaxTweaks; t++ {
			rng.shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
			attempt, sum := routePass(seed, cs, order)
			if sum.Less(bestSum) {
				best, bestSum = attempt, sum
			}
			if bestSum.Intersections == 0 {
				break
			}
		}
	}

	for _, re := range long {
		polylines[re.index] = best[re.index]
	}
	return polylines
}

// routePass routes every edge in the given order on a fresh clone of the
// seed obstacle map, drawing each chosen polyline before the next edge
// routes. It returns the polylines keyed by original edge index together
// with the summed score.
func routePass(seed *canvas.Canvas, cs *layout.CanvasSpace, order []routedEdge) (map[int]Polyline, Score) {
	m := seed.Clone()
	polys := make(map[int]Polyline, len(order))
	var sum Score

	for _, re := range order {
		poly, score := routeEdge(m, cs, re.src, re.dst)
		drawPolyline(m, poly)
		polys[re.index] = poly
		sum = sum.Add(score)
	}
	return polys, sum
}

// routeEdge finds the best path between two blocks. It tries both anchor
// orientations in a strict pass first, then again allowing crossings.
// Failing both passes means no path exists on an open canvas, which is
// only possible if the caller broke the placement contract.
func routeEdge(m *canvas.Canvas, cs *layout.CanvasSpace, src, dst diagram.Block) (Polyline, Score) {
	p0, p1 := anchors(cs, src, dst)
	q0, q1 := anchors(cs, dst, src)
	tryReverse := q1 != p0 || q0 != p1

	for _, allow := range [2]bool{false, true} {
		poly, score, ok := findPath(m, p0, p1, allow)
		if tryReverse {
			if rpoly, rscore, rok := findPath(m, q0, q1, allow); rok && (!ok || rscore.Less(score)) {
				poly, score, ok = rpoly, rscore, true
			}
		}
		if ok {
			return poly, score
		}
	}

	panic(fmt.Sprintf(
		"pathfinding: no route between blocks at (%d,%d) and (%d,%d); placement contract violated",
		src.Row, src.Column, dst.Row, dst.Column,
	))
}

// adjacentSegment connects two blocks on neighboring grid cells with the
// single segment between their facing borders, at the shared centerline.
func adjacentSegment(cs *layout.CanvasSpace, src, dst diagram.Block) Segment {
	if src.Row == dst.Row {
		c0, c1 := src.Column, dst.Column
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		y := cs.RowY(src.Row) + cs.RowHeight(src.Row)/2
		return NewHorizontal(y, cs.ColumnX(c0)+cs.ColumnWidth(c0)-1, cs.ColumnX(c1))
	}

	r0, r1 := src.Row, dst.Row
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	x := cs.ColumnX(src.Column) + cs.ColumnWidth(src.Column)/2
	return NewVertical(x, cs.RowY(r0)+cs.RowHeight(r0)-1, cs.RowY(r1))
}
