// Package bvh builds and queries a 2D bounding volume hierarchy over a
// fixed set of triangles, answering "which triangle contains this point?"
// in expected logarithmic time.
package bvh

import (
	"trimesh2d/internal/geometry"
)

// Node is a BVH node: either a leaf carrying exactly one triangle, or an
// internal node carrying two children. The two are mutually exclusive —
// Triangle is the zero value and unused on internal nodes, Left/Right are
// nil on leaves.
type Node struct {
	Bounds geometry.AABB

	Triangle geometry.Triangle
	isLeaf   bool

	Left  *Node
	Right *Node
}

// Build constructs a balanced-by-mean binary tree over triangles. It
// returns nil for an empty input.
func Build(triangles []geometry.Triangle) *Node {
	if len(triangles) == 0 {
		return nil
	}
	return build(append([]geometry.Triangle(nil), triangles...))
}

// build recursively partitions triangles, taking ownership of the slice
// (it freely reorders it in place).
func build(triangles []geometry.Triangle) *Node {
	if len(triangles) == 1 {
		return &Node{Bounds: triangles[0].AABB(), Triangle: triangles[0], isLeaf: true}
	}

	xMin, xMax := triangles[0].Center().X, triangles[0].Center().X
	yMin, yMax := triangles[0].Center().Y, triangles[0].Center().Y
	var xSum, ySum float32
	for _, tri := range triangles {
		c := tri.Center()
		xSum += c.X
		ySum += c.Y
		xMin, xMax = minmax(xMin, xMax, c.X)
		yMin, yMax = minmax(yMin, yMax, c.Y)
	}
	count := float32(len(triangles))
	xMean := xSum / count
	yMean := ySum / count

	// Split on whichever axis the centers spread wider across; a tie
	// (strict >) favors y.
	axisX := (xMax - xMin) > (yMax - yMin)

	var left, right []geometry.Triangle
	for _, tri := range triangles {
		c := tri.Center()
		var v, mean float32
		if axisX {
			v, mean = c.X, xMean
		} else {
			v, mean = c.Y, yMean
		}
		if v < mean {
			left = append(left, tri)
		} else {
			right = append(right, tri)
		}
	}

	// Empty-side repair: when every center lands on the same side (e.g.
	// all centers coincide on the split axis), move one triangle across
	// so recursion terminates instead of rebuilding the same partition
	// forever.
	if len(left) == 0 {
		n := len(right) - 1
		left, right = append(left, right[n]), right[:n]
	}
	if len(right) == 0 {
		n := len(left) - 1
		right, left = append(right, left[n]), left[:n]
	}

	leftNode := build(left)
	rightNode := build(right)

	return &Node{
		Bounds: leftNode.Bounds.Union(rightNode.Bounds),
		Left:   leftNode,
		Right:  rightNode,
	}
}

func minmax(curMin, curMax, v float32) (float32, float32) {
	if v < curMin {
		curMin = v
	}
	if v > curMax {
		curMax = v
	}
	return curMin, curMax
}
