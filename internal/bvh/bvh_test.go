package bvh

import (
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"trimesh2d/internal/geometry"
)

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
}

func TestBuildSingleTriangleIsLeaf(t *testing.T) {
	tri := geometry.NewTriangle(
		rl.Vector2{X: 0, Y: 0}, rl.Vector2{X: 1, Y: 0}, rl.Vector2{X: 0, Y: 1},
	)
	root := Build([]geometry.Triangle{tri})

	if root == nil || !root.isLeaf {
		t.Fatalf("Build with one triangle did not produce a leaf root")
	}
	stats := CollectStats(root)
	if stats.Nodes != 1 || stats.Leaves != 1 {
		t.Errorf("stats = %+v, want 1 node, 1 leaf", stats)
	}
}

// TestSampleHit is spec scenario S4: a point inside one triangle of a
// two-triangle square is found.
func TestSampleHit(t *testing.T) {
	tris := squareTriangles()
	root := Build(tris)

	got, ok := root.Sample(rl.Vector2{X: 0.25, Y: 0.25})
	if !ok {
		t.Fatalf("Sample did not find a containing triangle")
	}
	if !got.IsPointInside(rl.Vector2{X: 0.25, Y: 0.25}) {
		t.Errorf("Sample returned a triangle that does not contain the query point")
	}
}

// TestSampleMiss is spec scenario S5: a point outside every triangle
// reports no hit.
func TestSampleMiss(t *testing.T) {
	tris := squareTriangles()
	root := Build(tris)

	if _, ok := root.Sample(rl.Vector2{X: 5, Y: 5}); ok {
		t.Errorf("Sample found a triangle for a point far outside the mesh")
	}
}

func TestSampleNilTree(t *testing.T) {
	var root *Node
	if _, ok := root.Sample(rl.Vector2{X: 0, Y: 0}); ok {
		t.Errorf("Sample on a nil tree reported a hit")
	}
}

func TestStatsLeafCountMatchesTriangleCount(t *testing.T) {
	tris := randomTriangles(37, 7)
	root := Build(tris)
	stats := CollectStats(root)

	if stats.Leaves != len(tris) {
		t.Errorf("Leaves = %d, want %d", stats.Leaves, len(tris))
	}
	if internal := stats.Nodes - stats.Leaves; internal != len(tris)-1 {
		t.Errorf("internal node count = %d, want %d", internal, len(tris)-1)
	}
}

func TestBuildBoundsCoverAllTriangles(t *testing.T) {
	tris := randomTriangles(25, 11)
	root := Build(tris)

	for _, tri := range tris {
		for _, v := range []rl.Vector2{tri.A, tri.B, tri.C} {
			// Bounds must at least reach every vertex; Contains is strict
			// so check via the non-strict min/max comparison directly.
			if v.X < root.Bounds.Min.X || v.X > root.Bounds.Max.X ||
				v.Y < root.Bounds.Min.Y || v.Y > root.Bounds.Max.Y {
				t.Fatalf("root bounds %+v do not cover vertex %+v", root.Bounds, v)
			}
		}
	}
}

func TestSampleFindsEveryTriangleAtItsOwnCentroid(t *testing.T) {
	tris := randomTriangles(40, 13)
	root := Build(tris)

	for i, tri := range tris {
		// Non-degenerate random triangles contain their own centroid.
		got, ok := root.Sample(tri.Center())
		if !ok {
			t.Errorf("triangle %d: Sample at its own centroid found nothing", i)
			continue
		}
		if got.Center() != tri.Center() {
			t.Errorf("triangle %d: Sample at its own centroid returned a different triangle", i)
		}
	}
}

func squareTriangles() []geometry.Triangle {
	a := rl.Vector2{X: 0, Y: 0}
	b := rl.Vector2{X: 1, Y: 0}
	c := rl.Vector2{X: 1, Y: 1}
	d := rl.Vector2{X: 0, Y: 1}
	return []geometry.Triangle{
		geometry.NewTriangle(a, b, c),
		geometry.NewTriangle(a, c, d),
	}
}

func randomTriangles(n int, seed int64) []geometry.Triangle {
	r := rand.New(rand.NewSource(seed))
	tris := make([]geometry.Triangle, n)
	for i := range tris {
		// Disjoint cells on a grid guarantee non-degenerate, well-separated
		// triangles so centroid-containment and bounds checks are exact.
		cx := float32(i) * 10
		jitter := func() float32 { return float32(r.Float64()) * 2 }
		tris[i] = geometry.NewTriangle(
			rl.Vector2{X: cx, Y: 0},
			rl.Vector2{X: cx + 3 + jitter(), Y: 0},
			rl.Vector2{X: cx + 1, Y: 3 + jitter()},
		)
	}
	return tris
}
