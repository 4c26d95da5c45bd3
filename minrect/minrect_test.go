package minrect

import (
	"math"
	"testing"

	"github.com/marupio/gogaden/geom"
)

func TestMinEnclosingRectEmptyAndSinglePoint(t *testing.T) {
	if got := MinEnclosingRect(nil); got.Valid {
		t.Fatalf("MinEnclosingRect(nil) = %+v, want Valid=false", got)
	}
	single := []geom.Vector2{geom.NewVector2(1, 1, 0)}
	if got := MinEnclosingRect(single); got.Valid {
		t.Fatalf("MinEnclosingRect(single) = %+v, want Valid=false", got)
	}
}

func TestMinEnclosingRectSegment(t *testing.T) {
	h := []geom.Vector2{geom.NewVector2(0, 0, 0), geom.NewVector2(3, 4, 1)}
	got := MinEnclosingRect(h)
	if math.Abs(got.Width-5) > 1e-9 {
		t.Fatalf("Width = %v, want 5", got.Width)
	}
	wantPsi := math.Atan2(4, 3)
	if math.Abs(got.Psi-wantPsi) > 1e-9 {
		t.Fatalf("Psi = %v, want %v", got.Psi, wantPsi)
	}
}

func TestMinEnclosingRectAxisAlignedSquare(t *testing.T) {
	h := []geom.Vector2{
		geom.NewVector2(0, 0, 0),
		geom.NewVector2(2, 0, 1),
		geom.NewVector2(2, 2, 2),
		geom.NewVector2(0, 2, 3),
	}
	got := MinEnclosingRect(h)
	if !got.Valid {
		t.Fatal("rect not valid")
	}
	if math.Abs(got.Area-4) > 1e-9 {
		t.Fatalf("Area = %v, want 4", got.Area)
	}
	if math.Abs(got.Width-2) > 1e-9 || math.Abs(got.Height-2) > 1e-9 {
		t.Fatalf("Width/Height = %v/%v, want 2/2", got.Width, got.Height)
	}
}

func TestMinEnclosingRectFindsSmallerRotatedBox(t *testing.T) {
	// A diamond (rotated square) of "radius" 1: its axis-aligned bbox has
	// area 4, but the true minimum rectangle (aligned with its own edges)
	// has area 2.
	h := []geom.Vector2{
		geom.NewVector2(1, 0, 0),
		geom.NewVector2(0, 1, 1),
		geom.NewVector2(-1, 0, 2),
		geom.NewVector2(0, -1, 3),
	}
	got := MinEnclosingRect(h)
	if !got.Valid {
		t.Fatal("rect not valid")
	}
	if got.Area > 2+1e-9 {
		t.Fatalf("Area = %v, want at most 2 (the true minimum)", got.Area)
	}
}
