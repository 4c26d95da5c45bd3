package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a 2D point carrying an optional origin index into some ambient
// 3D point set. Arithmetic propagates the left operand's index, matching the
// IndexedVector2 convention this type is grounded on.
type Vector2 struct {
	v   mgl64.Vec2
	Idx int
}

// NewVector2 builds an indexed Vector2. idx of -1 means "no origin".
func NewVector2(x, y float64, idx int) Vector2 {
	return Vector2{v: mgl64.Vec2{x, y}, Idx: idx}
}

func (a Vector2) X() float64 { return a.v[0] }
func (a Vector2) Y() float64 { return a.v[1] }

// Add returns a+b, keeping a's index.
func (a Vector2) Add(b Vector2) Vector2 { return Vector2{v: a.v.Add(b.v), Idx: a.Idx} }

// Sub returns a-b, keeping a's index.
func (a Vector2) Sub(b Vector2) Vector2 { return Vector2{v: a.v.Sub(b.v), Idx: a.Idx} }

// Scale returns a*s, keeping a's index.
func (a Vector2) Scale(s float64) Vector2 { return Vector2{v: a.v.Mul(s), Idx: a.Idx} }

// Dot returns a·b.
func (a Vector2) Dot(b Vector2) float64 { return a.v.Dot(b.v) }

// Cross returns the scalar 2D cross product a.x*b.y - a.y*b.x.
func (a Vector2) Cross(b Vector2) float64 {
	return a.v[0]*b.v[1] - a.v[1]*b.v[0]
}

// MagSqr returns |a|^2.
func (a Vector2) MagSqr() float64 { return a.v.Dot(a.v) }

// Mag returns |a|.
func (a Vector2) Mag() float64 { return math.Sqrt(a.MagSqr()) }

// Normalise scales a to unit length in place, reporting success.
func (a *Vector2) Normalise() bool {
	m := a.Mag()
	if m < smallEpsilon {
		return false
	}
	a.v = a.v.Mul(1.0 / m)
	return true
}

// Rotate90CCW returns a rotated 90 degrees counter-clockwise: (x,y) -> (-y,x).
func (a Vector2) Rotate90CCW() Vector2 {
	return Vector2{v: mgl64.Vec2{-a.v[1], a.v[0]}, Idx: a.Idx}
}
