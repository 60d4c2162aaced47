// Package delaunay implements incremental Bowyer–Watson Delaunay
// triangulation over a 2D point set.
package delaunay

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangulate computes a Delaunay triangulation of points and returns a
// flat sequence of point indices, three per output triangle. It returns
// nil when there are fewer than 3 points.
func Triangulate(points []rl.Vector2) []int32 {
	n := int32(len(points))
	if n < 3 {
		return nil
	}

	indices := make([]int32, n)
	for i := range indices {
		indices[i] = int32(i)
	}
	sort.Slice(indices, func(a, b int) bool {
		return points[indices[a]].X < points[indices[b]].X
	})

	super := buildSuperTriangle(points)
	work := make([]rl.Vector2, n, n+3)
	copy(work, points)
	work = append(work, super[0], super[1], super[2])

	open := []triangleCircle{computeCircumcircle(work, n, n+1, n+2)}
	var closed []triangleCircle
	var edges []directedEdge

	for _, c := range indices {
		p := work[c]
		edges = edges[:0]

		for i := 0; i < len(open); {
			t := open[i]
			dx := p.X - t.cx
			if dx > 0 && dx*dx > t.radiusSq {
				// p's x already exceeds t's circumcircle on the right;
				// no later point (all have larger or equal x) can ever
				// invalidate t again.
				closed = append(closed, t)
				open[i] = open[len(open)-1]
				open = open[:len(open)-1]
				continue
			}

			dy := p.Y - t.cy
			if dx*dx+dy*dy-t.radiusSq > Epsilon {
				i++
				continue
			}

			// p lies inside t's circumcircle: t is invalidated, its
			// three directed edges become cavity-boundary candidates.
			edges = append(edges,
				directedEdge{t.i, t.j},
				directedEdge{t.j, t.k},
				directedEdge{t.k, t.i},
			)
			open[i] = open[len(open)-1]
			open = open[:len(open)-1]
		}

		edges = removeDuplicateEdges(edges)

		for _, e := range edges {
			open = append(open, computeCircumcircle(work, e.A, e.B, c))
		}
	}

	closed = append(closed, open...)

	result := make([]int32, 0, len(closed)*3)
	for _, t := range closed {
		if t.i < n && t.j < n && t.k < n {
			result = append(result, t.i, t.j, t.k)
		}
	}
	return result
}
