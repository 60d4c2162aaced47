package delaunay

import rl "github.com/gen2brain/raylib-go/raylib"

// Epsilon is the numerical tolerance used both to detect near-equal
// y-coordinates in computeCircumcircle and to decide circumcircle
// membership in Triangulate. A single shared constant, per spec.
const Epsilon = 1e-5

// triangleCircle is a candidate Delaunay triangle during incremental
// construction: three point indices plus their circumcircle, cached so
// later points can be tested against it without recomputing.
type triangleCircle struct {
	i, j, k          int32
	cx, cy, radiusSq float32
}

// computeCircumcircle finds the circle through points[i], points[j], and
// points[k] by intersecting two perpendicular bisectors. Which bisector
// pair is used is chosen by whichever pair of points has the larger
// |Δy|, which avoids dividing by (near) zero when two points share a
// y-coordinate.
func computeCircumcircle(points []rl.Vector2, i, j, k int32) triangleCircle {
	p1, p2, p3 := points[i], points[j], points[k]
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	y1y2 := abs32(y1 - y2)
	y2y3 := abs32(y2 - y3)

	var cx, cy float32
	switch {
	case y1y2 < Epsilon:
		m2 := -(x3 - x2) / (y3 - y2)
		mx2 := (x2 + x3) / 2
		my2 := (y2 + y3) / 2
		cx = (x2 + x1) / 2
		cy = m2*(cx-mx2) + my2
	case y2y3 < Epsilon:
		m1 := -(x2 - x1) / (y2 - y1)
		mx1 := (x1 + x2) / 2
		my1 := (y1 + y2) / 2
		cx = (x3 + x2) / 2
		cy = m1*(cx-mx1) + my1
	default:
		m1 := -(x2 - x1) / (y2 - y1)
		m2 := -(x3 - x2) / (y3 - y2)
		mx1 := (x1 + x2) / 2
		mx2 := (x2 + x3) / 2
		my1 := (y1 + y2) / 2
		my2 := (y2 + y3) / 2
		cx = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		if y1y2 > y2y3 {
			cy = m1*(cx-mx1) + my1
		} else {
			cy = m2*(cx-mx2) + my2
		}
	}

	dx := x2 - cx
	dy := y2 - cy
	return triangleCircle{i: i, j: j, k: k, cx: cx, cy: cy, radiusSq: dx*dx + dy*dy}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
