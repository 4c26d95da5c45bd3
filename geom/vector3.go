// Package geom provides the point, frame, and bounding-box primitives shared
// by the convex-hull and oriented-bounding-box pipeline: Vector3, Vector2,
// Axes, and BoundBox.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smallEpsilon is the magnitude below which a vector is considered
// non-normalisable.
const smallEpsilon = 1e-15

// Vector3 is an ordered triple of finite doubles, backed by mgl64.Vec3 for
// its arithmetic.
type Vector3 struct {
	v mgl64.Vec3
}

// NewVector3 builds a Vector3 from components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{v: mgl64.Vec3{x, y, z}}
}

func (a Vector3) X() float64 { return a.v[0] }
func (a Vector3) Y() float64 { return a.v[1] }
func (a Vector3) Z() float64 { return a.v[2] }

// Add returns a+b.
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.v.Add(b.v)} }

// Sub returns a-b.
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.v.Sub(b.v)} }

// Scale returns a*s.
func (a Vector3) Scale(s float64) Vector3 { return Vector3{a.v.Mul(s)} }

// Div returns a/s.
func (a Vector3) Div(s float64) Vector3 { return Vector3{a.v.Mul(1.0 / s)} }

// Dot returns a·b.
func (a Vector3) Dot(b Vector3) float64 { return a.v.Dot(b.v) }

// Cross returns a×b.
func (a Vector3) Cross(b Vector3) Vector3 { return Vector3{a.v.Cross(b.v)} }

// MagSqr returns |a|^2.
func (a Vector3) MagSqr() float64 { return a.v.Dot(a.v) }

// Mag returns |a|.
func (a Vector3) Mag() float64 { return math.Sqrt(a.MagSqr()) }

// Normalise scales a to unit length in place and reports whether the
// magnitude was large enough to normalise (>= smallEpsilon).
func (a *Vector3) Normalise() bool {
	m := a.Mag()
	if m < smallEpsilon {
		return false
	}
	a.v = a.v.Mul(1.0 / m)
	return true
}

// Normalised returns a unit copy of a and whether normalisation succeeded;
// a itself is left unchanged.
func (a Vector3) Normalised() (Vector3, bool) {
	out := a
	ok := out.Normalise()
	return out, ok
}
