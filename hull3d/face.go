package hull3d

import "github.com/marupio/gogaden/geom"

// Face is a triangle referenced by three point indices into an ambient
// point set, plus the outward unit normal/plane-offset pair and the soft
// lifecycle metadata Quickhull needs: alive and the outside set.
//
// Faces are born alive and only ever transition to dead; their index is
// stable across the algorithm, so adjacency is reconstructed from the
// horizon edge map each iteration rather than tracked with back-references.
type Face struct {
	A, B, C int

	Normal geom.Vector3
	Offset float64

	Alive   bool
	Outside []int
}

// NewFace builds a face from three point indices into pts. If the resulting
// normal's magnitude is at or below tol, the face is born dead (degenerate).
func NewFace(a, b, c int, pts []geom.Vector3, tol float64) Face {
	pa, pb, pc := pts[a], pts[b], pts[c]
	n := pb.Sub(pa).Cross(pc.Sub(pa))
	f := Face{A: a, B: b, C: c, Alive: true}

	mag := n.Mag()
	switch {
	case mag > tol:
		n.Normalise()
		f.Normal = n
		f.Offset = -n.Dot(pa)
	default:
		f.Alive = false
	}
	return f
}

// SignedDistance returns n·p + d: positive means p lies in front of
// (outside) the face's plane.
func (f Face) SignedDistance(p geom.Vector3) float64 {
	return f.Normal.Dot(p) + f.Offset
}

// VisibleFrom reports whether p is strictly in front of f by more than tol.
func (f Face) VisibleFrom(p geom.Vector3, tol float64) bool {
	return f.SignedDistance(p) > tol
}

// edge is a directed edge (u -> v) between point indices, used as a map key
// when building the horizon: equality is ordered-pair equality.
type edge struct{ u, v int }

func (f Face) edges() [3]edge {
	return [3]edge{{f.A, f.B}, {f.B, f.C}, {f.C, f.A}}
}
