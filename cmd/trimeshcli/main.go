// Command trimeshcli is a small standalone smoke-test harness for package
// trimesh2d: load a JSON point set, triangulate it, build a BVH, and
// optionally sample a query point. It exercises the library from the
// command line without being part of its own API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"trimesh2d"
)

// PointSet is the on-disk JSON format: a flat list of [x, y] pairs.
type PointSet struct {
	Points [][2]float32 `json:"points"`
}

func main() {
	path := flag.String("points", "", "path to a JSON point-set file")
	x := flag.Float64("x", 0, "x coordinate to sample")
	y := flag.Float64("y", 0, "y coordinate to sample")
	sample := flag.Bool("sample", false, "sample (-x, -y) against the built BVH")
	flag.Parse()

	if *path == "" {
		log.Fatal("trimeshcli: -points is required")
	}

	points, err := loadPointSet(*path)
	if err != nil {
		log.Fatalf("trimeshcli: %v", err)
	}

	coords := flattenPoints(points)

	indices, err := trimesh2d.BuildTriangulation(coords)
	if err != nil {
		log.Fatalf("trimeshcli: build triangulation: %v", err)
	}
	log.Printf("trimeshcli: triangulated %d points into %d triangles", len(points.Points), len(indices)/3)

	index, err := trimesh2d.NewBVHFromTriangles(coords, indices)
	if err != nil {
		log.Fatalf("trimeshcli: build BVH: %v", err)
	}
	stats := index.Stats()
	log.Printf("trimeshcli: BVH built with %d nodes, %d leaves, max depth %d", stats.Nodes, stats.Leaves, stats.MaxDepth)

	if !*sample {
		return
	}

	hit := index.Sample(float32(*x), float32(*y))
	if hit == nil {
		fmt.Printf("(%.4f, %.4f): no containing triangle\n", *x, *y)
		return
	}
	fmt.Printf("(%.4f, %.4f): triangle [(%.4f,%.4f) (%.4f,%.4f) (%.4f,%.4f)]\n",
		*x, *y, hit[0], hit[1], hit[2], hit[3], hit[4], hit[5])
}

func loadPointSet(path string) (PointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PointSet{}, fmt.Errorf("read point set: %w", err)
	}
	var ps PointSet
	if err := json.Unmarshal(data, &ps); err != nil {
		return PointSet{}, fmt.Errorf("parse point set: %w", err)
	}
	return ps, nil
}

func flattenPoints(points PointSet) []float32 {
	coords := make([]float32, 0, len(points.Points)*2)
	for _, p := range points.Points {
		coords = append(coords, p[0], p[1])
	}
	return coords
}
