package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned bounding box with Min.X <= Max.X and
// Min.Y <= Max.Y.
type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewAABBFromPoints returns the tight AABB enclosing every point in pts.
// pts must be non-empty.
func NewAABBFromPoints(pts ...rl.Vector2) AABB {
	box := AABB{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min = vector2Min(box.Min, p)
		box.Max = vector2Max(box.Max, p)
	}
	return box
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: vector2Min(a.Min, b.Min),
		Max: vector2Max(a.Max, b.Max),
	}
}

// Contains reports whether p lies strictly inside a, on all four sides.
// A point exactly on the boundary is treated as outside — this matches
// the BVH query contract in package bvh, which relies on strict
// containment to short-circuit node descent.
func (a AABB) Contains(p rl.Vector2) bool {
	return a.Min.X < p.X && a.Min.Y < p.Y && a.Max.X > p.X && a.Max.Y > p.Y
}

func vector2Min(a, b rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: min32(a.X, b.X), Y: min32(a.Y, b.Y)}
}

func vector2Max(a, b rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: max32(a.X, b.X), Y: max32(a.Y, b.Y)}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
