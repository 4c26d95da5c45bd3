// Package project builds the (u, v, w) viewing frame for a given
// heading/pitch pair and projects a 3D point set onto the (u, v) plane,
// grounded on the frame construction in the original gaden
// Work::calculateRotatedBoundBox.
package project

import (
	"math"
	"sort"

	"github.com/marupio/gogaden/geom"
)

// Frame builds the orthonormal (u, v, w) frame for heading theta and
// pitch phi, with w as the view direction. It reports false if any axis
// failed to normalise (near-zero magnitude).
func Frame(theta, phi float64) (geom.Axes, bool) {
	cth, sth := math.Cos(theta), math.Sin(theta)
	cph, sph := math.Cos(phi), math.Sin(phi)

	w := geom.NewVector3(cth*cph, sth*cph, sph)
	if !w.Normalise() {
		return geom.Axes{}, false
	}

	t := geom.NewVector3(0, 0, 1)
	if abs(w.Z()) >= 0.9 {
		t = geom.NewVector3(1, 0, 0)
	}
	u := t.Sub(w.Scale(w.Dot(t)))
	if !u.Normalise() {
		return geom.Axes{}, false
	}

	v := w.Cross(u)
	if !v.Normalise() {
		return geom.Axes{}, false
	}

	return geom.Axes{U: u, V: v, W: w}, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Project projects every point in pts onto (u, v), tagging each with its
// origin index, then sorts by (x, y) and sweep-merges adjacent points whose
// squared distance is at most tol*tol, keeping the first of each class.
// A tol <= 0 disables merging.
func Project(pts []geom.Vector3, theta, phi, tol float64) ([]geom.Vector2, bool) {
	axes, ok := Frame(theta, phi)
	if !ok {
		return nil, false
	}
	return ProjectOnto(pts, axes, tol), true
}

// ProjectOnto projects pts onto an already-built (u, v) frame.
func ProjectOnto(pts []geom.Vector3, axes geom.Axes, tol float64) []geom.Vector2 {
	out := make([]geom.Vector2, len(pts))
	for i, p := range pts {
		out[i] = geom.NewVector2(p.Dot(axes.U), p.Dot(axes.V), i)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].X() != out[j].X() {
			return out[i].X() < out[j].X()
		}
		return out[i].Y() < out[j].Y()
	})

	if tol <= 0 || len(out) == 0 {
		return out
	}

	tolSqr := tol * tol
	survivors := out[:1]
	for i := 1; i < len(out); i++ {
		last := survivors[len(survivors)-1]
		if out[i].Sub(last).MagSqr() <= tolSqr {
			continue
		}
		survivors = append(survivors, out[i])
	}
	return survivors
}
