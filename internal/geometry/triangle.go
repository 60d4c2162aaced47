package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// Triangle is an immutable 2D triangle with its AABB and centroid
// precomputed at construction, the way internal mesh colliders in the
// teacher engine precompute bounds once and never touch them again.
type Triangle struct {
	A, B, C rl.Vector2
	aabb    AABB
	center  rl.Vector2
}

// NewTriangle builds a Triangle from three vertices, computing its AABB
// and centroid once.
func NewTriangle(a, b, c rl.Vector2) Triangle {
	return Triangle{
		A:      a,
		B:      b,
		C:      c,
		aabb:   NewAABBFromPoints(a, b, c),
		center: Centroid(a, b, c),
	}
}

// AABB returns the triangle's precomputed bounding box.
func (t Triangle) AABB() AABB {
	return t.aabb
}

// Center returns the triangle's precomputed centroid.
func (t Triangle) Center() rl.Vector2 {
	return t.center
}

// IsPointInside reports whether p lies inside t, using the same-side test
// against each edge. Points exactly on an edge have an
// implementation-defined result — this mirrors the "sign" predicate of
// the original source rather than a robust exact-arithmetic test.
func (t Triangle) IsPointInside(p rl.Vector2) bool {
	asX := p.X - t.A.X
	asY := p.Y - t.A.Y

	sAB := (t.B.X-t.A.X)*asY-(t.B.Y-t.A.Y)*asX > 0

	if ((t.C.X-t.A.X)*asY-(t.C.Y-t.A.Y)*asX > 0) == sAB {
		return false
	}
	if ((t.C.X-t.B.X)*(p.Y-t.B.Y)-(t.C.Y-t.B.Y)*(p.X-t.B.X) > 0) != sAB {
		return false
	}
	return true
}
