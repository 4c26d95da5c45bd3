// Package hull3d computes the 3D convex hull of a point set using an
// incremental Quickhull with horizon-edge stitching, grounded on the
// original gaden ConvexHullTools::calculateConvexHull3d and adapted from
// akmonengine/feather's epa.PolytopeBuilder (which expands a polytope toward
// the origin; this instead expands a hull away from interior points using
// the same boundary-edge-counting technique).
package hull3d

import (
	"sort"

	"github.com/marupio/gogaden/geom"
)

// Dim codes returned by Hull3D.
const (
	DimEmpty     = -1 // fewer than 4 usable points; caller holds the set verbatim
	DimPoint     = 0  // one unique point survives
	DimLine      = 1  // collinear: two extreme endpoints
	DimCoplanar  = 2  // coplanar: a safe superset of candidate hull vertices
	DimPolyhedra = 3  // full 3D hull
)

// Hull3D computes the convex hull of pts under tolerance tol. It returns a
// dimension code, the sorted ascending vertex indices, and (for dim 3) the
// triangulated, outward-oriented, alive faces.
func Hull3D(pts []geom.Vector3, tol float64) (dim int, vertexIDs []int, faces []Face) {
	n := len(pts)
	if n == 0 {
		return DimEmpty, nil, nil
	}
	if n <= 3 {
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		return DimEmpty, ids, nil
	}

	// p0: minimum x.
	p0 := 0
	for i := 1; i < n; i++ {
		if pts[i].X() < pts[p0].X() {
			p0 = i
		}
	}

	// p1: farthest from p0.
	p1, best := p0, -1.0
	for i := 0; i < n; i++ {
		d2 := pts[i].Sub(pts[p0]).MagSqr()
		if d2 > best {
			best, p1 = d2, i
		}
	}
	if p1 == p0 {
		return DimPoint, []int{p0}, nil
	}

	// p2: maximises triangle area with (p0,p1).
	u := pts[p1].Sub(pts[p0])
	p2, best := p0, -1.0
	for i := 0; i < n; i++ {
		if i == p0 || i == p1 {
			continue
		}
		w := pts[i].Sub(pts[p0])
		cx := u.Cross(w)
		a2 := cx.Dot(cx)
		if a2 > best {
			best, p2 = a2, i
		}
	}
	if p2 == p0 || best <= tol*tol {
		return lineFallback(pts, p0, u)
	}

	seed := NewFace(p0, p1, p2, pts, tol)

	// p3: farthest by |signed distance| from the seed plane.
	p3, best := p0, -1.0
	for i := 0; i < n; i++ {
		if i == p0 || i == p1 || i == p2 {
			continue
		}
		sd := abs(seed.SignedDistance(pts[i]))
		if sd > best {
			best, p3 = sd, i
		}
	}
	if p3 == p0 || best <= tol {
		return coplanarSuperset(pts, p0, p1, p2, u, seed, tol)
	}

	if seed.VisibleFrom(pts[p3], 0.0) {
		p1, p2 = p2, p1
	}

	faces = []Face{
		NewFace(p0, p1, p2, pts, tol),
		NewFace(p0, p2, p3, pts, tol),
		NewFace(p2, p1, p3, pts, tol),
		NewFace(p1, p0, p3, pts, tol),
	}

	tet := map[int]bool{p0: true, p1: true, p2: true, p3: true}
	for i := 0; i < n; i++ {
		if tet[i] {
			continue
		}
		assignToOutsideSet(faces, i, pts, tol)
	}

	quickhullMainLoop(&faces, pts, tol)

	alive := make([]Face, 0, len(faces))
	for _, f := range faces {
		if f.Alive {
			alive = append(alive, f)
		}
	}
	return DimPolyhedra, collectVertexIDs(alive), alive
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// lineFallback handles the near-collinear case: return the two extreme
// endpoints along u, or a single point if they coincide.
func lineFallback(pts []geom.Vector3, p0 int, u geom.Vector3) (int, []int, []Face) {
	n := len(pts)
	lo, hi := 0, 0
	loP := pts[0].Sub(pts[p0]).Dot(u)
	hiP := loP
	for i := 1; i < n; i++ {
		pr := pts[i].Sub(pts[p0]).Dot(u)
		if pr < loP {
			loP, lo = pr, i
		}
		if pr > hiP {
			hiP, hi = pr, i
		}
	}
	if lo == hi {
		return DimPoint, []int{lo}, nil
	}
	out := []int{lo, hi}
	sort.Ints(out)
	return DimLine, out, nil
}

// coplanarSuperset builds a safe superset of hull-vertex candidates from
// extrema in the plane normal, two tangent directions, and an edge.
func coplanarSuperset(pts []geom.Vector3, p0, p1, p2 int, u geom.Vector3, seed Face, tol float64) (int, []int, []Face) {
	out := []int{p0, p1, p2}

	nrm := seed.Normal
	n01 := u.Cross(nrm)
	n02 := pts[p2].Sub(pts[p0]).Cross(nrm)
	edgeDir := pts[p2].Sub(pts[p1])

	dirs := [4]geom.Vector3{nrm, n01, n02, edgeDir}
	for _, d := range dirs {
		if d.MagSqr() <= tol*tol {
			continue
		}
		lo, hi := 0, 0
		loP := pts[0].Dot(d)
		hiP := loP
		for i := 1; i < len(pts); i++ {
			pr := pts[i].Dot(d)
			if pr < loP {
				loP, lo = pr, i
			}
			if pr > hiP {
				hiP, hi = pr, i
			}
		}
		out = append(out, lo, hi)
	}

	sort.Ints(out)
	out = dedupSorted(out)
	return DimCoplanar, out, nil
}

func dedupSorted(s []int) []int {
	if len(s) == 0 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w]
}

// assignToOutsideSet assigns point i to the single alive face with the
// largest positive signed distance exceeding tol, if any.
func assignToOutsideSet(faces []Face, i int, pts []geom.Vector3, tol float64) {
	bestDist := tol
	bestFace := -1
	for f := range faces {
		if !faces[f].Alive {
			continue
		}
		sd := faces[f].SignedDistance(pts[i])
		if sd > bestDist {
			bestDist = sd
			bestFace = f
		}
	}
	if bestFace >= 0 {
		faces[bestFace].Outside = append(faces[bestFace].Outside, i)
	}
}

// quickhullMainLoop runs the incremental expansion with horizon stitching
// until no alive face retains an outside point.
func quickhullMainLoop(faces *[]Face, pts []geom.Vector3, tol float64) {
	for {
		fs := *faces
		fIdx, fMax := -1, -1.0
		for f := range fs {
			if !fs[f].Alive || len(fs[f].Outside) == 0 {
				continue
			}
			localMax := -1.0
			for _, idx := range fs[f].Outside {
				sd := fs[f].SignedDistance(pts[idx])
				if sd > localMax {
					localMax = sd
				}
			}
			if localMax > fMax {
				fMax, fIdx = localMax, f
			}
		}
		if fIdx < 0 {
			return
		}

		eye := fs[fIdx].Outside[0]
		farBest := -1.0
		for _, idx := range fs[fIdx].Outside {
			sd := fs[fIdx].SignedDistance(pts[idx])
			if sd > farBest {
				farBest, eye = sd, idx
			}
		}

		visible := make([]int, 0, 16)
		for i := range fs {
			if fs[i].Alive && fs[i].VisibleFrom(pts[eye], tol) {
				fs[i].Alive = false
				visible = append(visible, i)
			}
		}

		horizon := computeHorizon(fs, visible)

		newFaces := make([]int, 0, len(horizon))
		for _, e := range horizon {
			nf := NewFace(e.u, e.v, eye, pts, tol)
			if !nf.Alive {
				continue
			}
			fs = append(fs, nf)
			newFaces = append(newFaces, len(fs)-1)
		}

		pool := make([]int, 0)
		for _, vi := range visible {
			for _, idx := range fs[vi].Outside {
				if idx != eye {
					pool = append(pool, idx)
				}
			}
			fs[vi].Outside = nil
		}
		sort.Ints(pool)
		pool = dedupSorted(pool)

		for _, idx := range pool {
			bestD, bf := tol, -1
			for _, nf := range newFaces {
				if !fs[nf].Alive {
					continue
				}
				sd := fs[nf].SignedDistance(pts[idx])
				if sd > bestD {
					bestD, bf = sd, nf
				}
			}
			if bf >= 0 {
				fs[bf].Outside = append(fs[bf].Outside, idx)
			}
		}

		*faces = fs
	}
}

// computeHorizon returns the boundary edges of the set of visible faces:
// directed edges with forward count 1 and reverse count 0.
func computeHorizon(faces []Face, visible []int) []edge {
	count := make(map[edge]int, len(visible)*3)
	for _, vi := range visible {
		for _, e := range faces[vi].edges() {
			count[e]++
		}
	}
	horizon := make([]edge, 0, len(count))
	for e, c := range count {
		if c != 1 {
			continue
		}
		if count[edge{e.v, e.u}] == 0 {
			horizon = append(horizon, e)
		}
	}
	return horizon
}

// collectVertexIDs gathers the unique, sorted vertex indices across alive
// faces.
func collectVertexIDs(faces []Face) []int {
	seen := make(map[int]bool)
	for _, f := range faces {
		if !f.Alive {
			continue
		}
		seen[f.A] = true
		seen[f.B] = true
		seen[f.C] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
