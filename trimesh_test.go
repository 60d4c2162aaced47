package trimesh2d

import (
	"errors"
	"testing"
)

func TestBuildTriangulationOddCoords(t *testing.T) {
	_, err := BuildTriangulation([]float32{0, 0, 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestBuildTriangulationSquare(t *testing.T) {
	coords := []float32{0, 0, 1, 0, 1, 1, 0, 1}
	indices, err := BuildTriangulation(coords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(indices) / 3; got != 2 {
		t.Fatalf("got %d triangles, want 2", got)
	}
}

func TestNewBVHHitAndMiss(t *testing.T) {
	coords := []float32{0, 0, 1, 0, 1, 1, 0, 1}
	b, err := NewBVH(coords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hit := b.Sample(0.5, 0.5); hit == nil {
		t.Errorf("Sample(0.5, 0.5) = nil, want a containing triangle")
	}
	if hit := b.Sample(5, 5); hit != nil {
		t.Errorf("Sample(5, 5) = %v, want nil", hit)
	}
}

func TestNewBVHFromTrianglesRejectsBadIndexCount(t *testing.T) {
	coords := []float32{0, 0, 1, 0, 0, 1}
	_, err := NewBVHFromTriangles(coords, []int32{0, 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNewBVHFromTrianglesRejectsOutOfRangeIndex(t *testing.T) {
	coords := []float32{0, 0, 1, 0, 0, 1}
	_, err := NewBVHFromTriangles(coords, []int32{0, 1, 5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNewBVHFromTrianglesBuildsDirectly(t *testing.T) {
	coords := []float32{0, 0, 1, 0, 1, 1, 0, 1}
	indices := []int32{0, 1, 2, 0, 2, 3}

	b, err := NewBVHFromTriangles(coords, indices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit := b.Sample(0.5, 0.5); hit == nil {
		t.Errorf("Sample(0.5, 0.5) = nil, want a containing triangle")
	}
	if stats := b.Stats(); stats.Leaves != 2 {
		t.Errorf("Leaves = %d, want 2", stats.Leaves)
	}
}

func TestSampleOnNilBVH(t *testing.T) {
	var b *BVH
	if got := b.Sample(0, 0); got != nil {
		t.Errorf("Sample on nil *BVH = %v, want nil", got)
	}
}
