package delaunay

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"trimesh2d/internal/geometry"
)

// superTriangleScale is the fixed design constant by which the input's
// larger bounding box extent (max of width and height) is multiplied to
// build a super-triangle that
// encloses every well-behaved input point.
const superTriangleScale = 20

// buildSuperTriangle returns three synthetic vertices that form a
// triangle enclosing the bounding box of points.
func buildSuperTriangle(points []rl.Vector2) [3]rl.Vector2 {
	box := geometry.NewAABBFromPoints(points...)

	dx := box.Max.X - box.Min.X
	dy := box.Max.Y - box.Min.Y
	dMax := max32(dx, dy)

	xMid := box.Min.X + dx*0.5
	yMid := box.Min.Y + dy*0.5

	return [3]rl.Vector2{
		{X: xMid - superTriangleScale*dMax, Y: yMid - dMax},
		{X: xMid, Y: yMid + superTriangleScale*dMax},
		{X: xMid + superTriangleScale*dMax, Y: yMid - dMax},
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
