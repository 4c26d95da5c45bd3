// Package minrect finds the minimum-area enclosing rectangle of a CCW 2D
// polygon via rotating calipers, grounded on the original gaden
// MinRect/Work::solvePsiOnProjectedHull.
package minrect

import (
	"math"

	"github.com/marupio/gogaden/geom"
)

// Rect is the result of the rotating-calipers search.
type Rect struct {
	Area       float64
	Width      float64
	Height     float64
	Psi        float64 // atan2(ue.y, ue.x), the parent edge's direction angle
	ParentEdge int
	Valid      bool // false for m < 3
}

// edgeFrame returns the unit edge direction ue for polygon edge i (from
// H[i] to H[i+1]) and its CCW perpendicular ve. A zero-length edge
// substitutes the world (1,0)/(0,1) frame.
func edgeFrame(i int, h []geom.Vector2) (ue, ve geom.Vector2) {
	m := len(h)
	e := h[(i+1)%m].Sub(h[i])
	lenSqr := e.MagSqr()
	if lenSqr <= 0 {
		ue = geom.NewVector2(1, 0, -1)
		ve = geom.NewVector2(0, 1, -1)
		return
	}
	length := math.Sqrt(lenSqr)
	ue = geom.NewVector2(e.X()/length, e.Y()/length, -1)
	ve = ue.Rotate90CCW()
	return
}

// MinEnclosingRect runs rotating calipers over CCW polygon h. For m < 3 it
// returns Valid=false; m == 2 returns a degenerate segment rectangle.
func MinEnclosingRect(h []geom.Vector2) Rect {
	m := len(h)
	if m <= 0 {
		return Rect{}
	}
	if m == 1 {
		return Rect{}
	}
	if m == 2 {
		e := h[1].Sub(h[0])
		lenSqr := e.MagSqr()
		if lenSqr <= 0 {
			return Rect{}
		}
		return Rect{
			Width: math.Sqrt(lenSqr),
			Psi:   math.Atan2(e.Y(), e.X()),
		}
	}

	var rect Rect
	iUmin, iUmax, iVmin, iVmax := 0, 0, 0, 0

	// i = 0: full scan to establish initial support indices.
	ue0, ve0 := edgeFrame(0, h)
	minU, maxU := h[0].Dot(ue0), h[0].Dot(ue0)
	minV, maxV := h[0].Dot(ve0), h[0].Dot(ve0)
	for k := 1; k < m; k++ {
		su, sv := h[k].Dot(ue0), h[k].Dot(ve0)
		if su < minU {
			minU, iUmin = su, k
		}
		if su > maxU {
			maxU, iUmax = su, k
		}
		if sv < minV {
			minV, iVmin = sv, k
		}
		if sv > maxV {
			maxV, iVmax = sv, k
		}
	}
	rect.Width = maxU - minU
	rect.Height = maxV - minV
	rect.Area = rect.Width * rect.Height
	rect.Psi = math.Atan2(ue0.Y(), ue0.X())
	rect.ParentEdge = 0
	rect.Valid = true

	for i := 1; i < m; i++ {
		ue, ve := edgeFrame(i, h)

		for {
			nxt := (iUmax + 1) % m
			if h[nxt].Dot(ue) > h[iUmax].Dot(ue) {
				iUmax = nxt
			} else {
				break
			}
		}
		for {
			nxt := (iUmin + 1) % m
			if h[nxt].Dot(ue) < h[iUmin].Dot(ue) {
				iUmin = nxt
			} else {
				break
			}
		}
		for {
			nxt := (iVmax + 1) % m
			if h[nxt].Dot(ve) > h[iVmax].Dot(ve) {
				iVmax = nxt
			} else {
				break
			}
		}
		for {
			nxt := (iVmin + 1) % m
			if h[nxt].Dot(ve) < h[iVmin].Dot(ve) {
				iVmin = nxt
			} else {
				break
			}
		}

		minU, maxU := h[iUmin].Dot(ue), h[iUmax].Dot(ue)
		minV, maxV := h[iVmin].Dot(ve), h[iVmax].Dot(ve)
		width := maxU - minU
		height := maxV - minV
		area := width * height

		if area < rect.Area {
			rect.Area = area
			rect.Width = width
			rect.Height = height
			rect.ParentEdge = i
			rect.Psi = math.Atan2(ue.Y(), ue.X())
		}
	}

	return rect
}
