// Package geometry provides the 2D primitives shared by the triangulator
// and the BVH index: points, axis-aligned boxes, and triangles with
// precomputed bounds and centroid.
package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// Point is a 2D coordinate. It is an alias for raylib's Vector2 so that
// every arithmetic operation in this package and its callers can reuse
// raylib's vector helpers instead of hand-rolled float pairs.
type Point = rl.Vector2

// SquaredDistance returns the squared Euclidean distance between a and b.
// Squared distance is used everywhere in this module in place of
// distance, since only relative ordering matters and a square root would
// just be wasted work.
func SquaredDistance(a, b Point) float32 {
	d := rl.Vector2Subtract(a, b)
	return rl.Vector2DotProduct(d, d)
}

// Centroid returns the arithmetic mean of three points.
func Centroid(a, b, c Point) Point {
	sum := rl.Vector2Add(rl.Vector2Add(a, b), c)
	return rl.Vector2Scale(sum, 1.0/3.0)
}
