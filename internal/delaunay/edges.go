package delaunay

// directedEdge is one directed edge of a cavity boundary, referencing two
// point indices.
type directedEdge struct {
	A, B int32
}

func edgesEqual(e1, e2 directedEdge) bool {
	return (e1.A == e2.A && e1.B == e2.B) || (e1.A == e2.B && e1.B == e2.A)
}

// removeDuplicateEdges cancels every edge that appears twice in edges,
// matched in either direction. The cavity boundary left behind is the set
// of edges shared by exactly one invalidated triangle.
//
// The original source scans from the end of a flat index buffer, splicing
// out matched pairs in place; here each edge is its own slice element, so
// the same back-to-front scan is expressed as a mark-then-filter pass —
// same O(E²) local-cavity cost, same resulting edge set, without the
// index bookkeeping that in-place splicing needs.
func removeDuplicateEdges(edges []directedEdge) []directedEdge {
	removed := make([]bool, len(edges))
	for j := len(edges) - 1; j >= 0; j-- {
		if removed[j] {
			continue
		}
		for i := j - 1; i >= 0; i-- {
			if removed[i] {
				continue
			}
			if edgesEqual(edges[j], edges[i]) {
				removed[j] = true
				removed[i] = true
				break
			}
		}
	}

	result := edges[:0]
	for idx, e := range edges {
		if !removed[idx] {
			result = append(result, e)
		}
	}
	return result
}
