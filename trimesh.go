// Package trimesh2d builds a Delaunay triangulation of a 2D point set and
// indexes it with a BVH for point-location queries. It ties together
// package delaunay and package bvh behind a small flat-array interface so
// callers never need to import either directly.
package trimesh2d

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"trimesh2d/internal/bvh"
	"trimesh2d/internal/delaunay"
	"trimesh2d/internal/geometry"
)

// ErrInvalidInput is returned when a caller-supplied coordinate or index
// buffer is malformed: odd-length coordinates, an index count not a
// multiple of three, or an index outside the point range.
var ErrInvalidInput = errors.New("trimesh: invalid input")

// BuildTriangulation computes a Delaunay triangulation over coords, a flat
// [x0, y0, x1, y1, ...] buffer, and returns a flat index-triple buffer,
// three indices per output triangle.
func BuildTriangulation(coords []float32) ([]int32, error) {
	points, err := decodePoints(coords)
	if err != nil {
		return nil, fmt.Errorf("trimesh: build triangulation: %w", err)
	}
	return delaunay.Triangulate(points), nil
}

// BVH indexes a fixed set of triangles for point-location queries.
type BVH struct {
	root *bvh.Node
}

// NewBVH triangulates coords and builds a BVH over the result in one step.
func NewBVH(coords []float32) (*BVH, error) {
	points, err := decodePoints(coords)
	if err != nil {
		return nil, fmt.Errorf("trimesh: new BVH: %w", err)
	}

	indices := delaunay.Triangulate(points)
	return &BVH{root: bvh.Build(trianglesFromIndices(points, indices))}, nil
}

// NewBVHFromTriangles builds a BVH directly from a host-supplied
// triangulation, skipping Delaunay construction. indices must have a
// length that is a multiple of three, and every index must be in range
// for coords; otherwise it returns ErrInvalidInput.
func NewBVHFromTriangles(coords []float32, indices []int32) (*BVH, error) {
	points, err := decodePoints(coords)
	if err != nil {
		return nil, fmt.Errorf("trimesh: new BVH from triangles: %w", err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("trimesh: new BVH from triangles: index count %d not a multiple of 3: %w", len(indices), ErrInvalidInput)
	}
	for _, idx := range indices {
		if idx < 0 || int(idx) >= len(points) {
			return nil, fmt.Errorf("trimesh: new BVH from triangles: index %d out of range [0, %d): %w", idx, len(points), ErrInvalidInput)
		}
	}

	return &BVH{root: bvh.Build(trianglesFromIndices(points, indices))}, nil
}

// Sample returns the triangle containing (x, y) as [ax, ay, bx, by, cx,
// cy], or nil if no triangle contains the point.
func (b *BVH) Sample(x, y float32) []float32 {
	if b == nil || b.root == nil {
		return nil
	}
	tri, ok := b.root.Sample(rl.Vector2{X: x, Y: y})
	if !ok {
		return nil
	}
	return []float32{tri.A.X, tri.A.Y, tri.B.X, tri.B.Y, tri.C.X, tri.C.Y}
}

// Stats reports the shape of the underlying tree, for diagnostics.
func (b *BVH) Stats() bvh.Stats {
	if b == nil {
		return bvh.Stats{}
	}
	return bvh.CollectStats(b.root)
}

func decodePoints(coords []float32) ([]rl.Vector2, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("coordinate count %d is odd: %w", len(coords), ErrInvalidInput)
	}
	points := make([]rl.Vector2, len(coords)/2)
	for i := range points {
		points[i] = rl.Vector2{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points, nil
}

func trianglesFromIndices(points []rl.Vector2, indices []int32) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(indices)/3)
	for t := 0; t*3 < len(indices); t++ {
		i, j, k := indices[t*3], indices[t*3+1], indices[t*3+2]
		triangles = append(triangles, geometry.NewTriangle(points[i], points[j], points[k]))
	}
	return triangles
}
