// Package hull2d computes the convex hull of a 2D point set (each point
// carrying an origin index) via the monotone-chain algorithm, grounded on
// the original gaden ConvexHullTools::calculateConvexHull2d.
package hull2d

import (
	"sort"

	"github.com/marupio/gogaden/geom"
)

// Dim codes returned by Hull2D.
const (
	DimEmpty   = -1
	DimPoint   = 0
	DimSegment = 1
	DimPolygon = 2
)

// Hull2D computes the CCW convex hull of pts, returning origin indices.
// Inputs are sorted lexicographically by (x, y) before the monotone-chain
// sweep; collinear triplets are popped so the result is strictly CCW with
// no three consecutive collinear vertices.
func Hull2D(pts []geom.Vector2) (dim int, vertexIDs []int) {
	n := len(pts)
	if n == 0 {
		return DimEmpty, nil
	}
	if n == 1 {
		return DimPoint, []int{pts[0].Idx}
	}
	if n == 2 {
		return DimSegment, []int{pts[0].Idx, pts[1].Idx}
	}

	sorted := make([]geom.Vector2, n)
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X() != sorted[j].X() {
			return sorted[i].X() < sorted[j].X()
		}
		return sorted[i].Y() < sorted[j].Y()
	})

	h := make([]geom.Vector2, 0, 2*n)

	// Lower chain.
	for i := 0; i < n; i++ {
		for len(h) >= 2 {
			a, b, c := h[len(h)-2], h[len(h)-1], sorted[i]
			if b.Sub(a).Cross(c.Sub(a)) <= 0 {
				h = h[:len(h)-1]
			} else {
				break
			}
		}
		h = append(h, sorted[i])
	}

	// Upper chain.
	lowerSize := len(h)
	for i := n - 2; i >= 0; i-- {
		for len(h) > lowerSize {
			a, b, c := h[len(h)-2], h[len(h)-1], sorted[i]
			if b.Sub(a).Cross(c.Sub(a)) <= 0 {
				h = h[:len(h)-1]
			} else {
				break
			}
		}
		h = append(h, sorted[i])
	}

	// Last point repeats the first; drop it.
	if len(h) > 0 {
		h = h[:len(h)-1]
	}

	ids := make([]int, len(h))
	for i, p := range h {
		ids[i] = p.Idx
	}
	return DimPolygon, ids
}
