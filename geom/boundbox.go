package geom

import "math"

// BoundBox is an axis-aligned box given by (Min, Max). An empty BoundBox has
// Min = (+Inf,+Inf,+Inf) and Max = (-Inf,-Inf,-Inf); it contains nothing.
type BoundBox struct {
	Min, Max Vector3
}

// NewEmptyBoundBox returns the canonical empty box.
func NewEmptyBoundBox() BoundBox {
	return BoundBox{
		Min: NewVector3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Valid reports whether Min <= Max componentwise.
func (b BoundBox) Valid() bool {
	return b.Min.X() <= b.Max.X() && b.Min.Y() <= b.Max.Y() && b.Min.Z() <= b.Max.Z()
}

// Empty reports whether b is invalid, i.e. contains nothing.
func (b BoundBox) Empty() bool { return !b.Valid() }

// Contains reports whether p lies within b (inclusive).
func (b BoundBox) Contains(p Vector3) bool {
	if b.Empty() {
		return false
	}
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Append grows b to include p, returning whether b changed.
func (b *BoundBox) Append(p Vector3) bool {
	if b.Empty() {
		b.Min, b.Max = p, p
		return true
	}
	if b.Contains(p) {
		return false
	}
	b.Min = NewVector3(
		math.Min(b.Min.X(), p.X()),
		math.Min(b.Min.Y(), p.Y()),
		math.Min(b.Min.Z(), p.Z()),
	)
	b.Max = NewVector3(
		math.Max(b.Max.X(), p.X()),
		math.Max(b.Max.Y(), p.Y()),
		math.Max(b.Max.Z(), p.Z()),
	)
	return true
}

// AxisAlignedBoundBox computes the axis-aligned bounding box of pts.
func AxisAlignedBoundBox(pts []Vector3) BoundBox {
	bb := NewEmptyBoundBox()
	for _, p := range pts {
		bb.Append(p)
	}
	return bb
}
