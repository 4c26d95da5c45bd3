package geom

import (
	"math"
	"testing"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func vec3ApproxEqual(a, b Vector3, tolerance float64) bool {
	return approxEqual(a.X(), b.X(), tolerance) &&
		approxEqual(a.Y(), b.Y(), tolerance) &&
		approxEqual(a.Z(), b.Z(), tolerance)
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -1, 2)

	if got := a.Add(b); !vec3ApproxEqual(got, NewVector3(5, 1, 5), 1e-12) {
		t.Fatalf("Add: got %+v", got)
	}
	if got := a.Sub(b); !vec3ApproxEqual(got, NewVector3(-3, 3, 1), 1e-12) {
		t.Fatalf("Sub: got %+v", got)
	}
	if got := a.Scale(2); !vec3ApproxEqual(got, NewVector3(2, 4, 6), 1e-12) {
		t.Fatalf("Scale: got %+v", got)
	}
	if got := a.Div(2); !vec3ApproxEqual(got, NewVector3(0.5, 1, 1.5), 1e-12) {
		t.Fatalf("Div: got %+v", got)
	}
	if got := a.Dot(b); !approxEqual(got, 4-2+6, 1e-12) {
		t.Fatalf("Dot: got %v", got)
	}
	if got := a.Cross(b); !vec3ApproxEqual(got, NewVector3(2*2-3*(-1), 3*4-1*2, 1*(-1)-2*4), 1e-12) {
		t.Fatalf("Cross: got %+v", got)
	}
}

func TestVector3MagSqrMag(t *testing.T) {
	v := NewVector3(3, 4, 0)
	if got := v.MagSqr(); got != 25 {
		t.Fatalf("MagSqr: got %v, want 25", got)
	}
	if got := v.Mag(); got != 5 {
		t.Fatalf("Mag: got %v, want 5", got)
	}
}

func TestVector3Normalise(t *testing.T) {
	tests := []struct {
		name   string
		input  Vector3
		wantOk bool
	}{
		{name: "unit_x_already", input: NewVector3(1, 0, 0), wantOk: true},
		{name: "arbitrary", input: NewVector3(3, 4, 0), wantOk: true},
		{name: "zero", input: NewVector3(0, 0, 0), wantOk: false},
		{name: "tiny", input: NewVector3(1e-20, 0, 0), wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.input
			ok := v.Normalise()
			if ok != tt.wantOk {
				t.Fatalf("Normalise() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && !approxEqual(v.Mag(), 1, 1e-9) {
				t.Fatalf("Normalise() left |v| = %v, want 1", v.Mag())
			}
		})
	}
}

func TestVector3NormalisedLeavesOriginalUnchanged(t *testing.T) {
	v := NewVector3(3, 4, 0)
	unit, ok := v.Normalised()
	if !ok {
		t.Fatal("Normalised() reported failure on a well-conditioned vector")
	}
	if !approxEqual(unit.Mag(), 1, 1e-9) {
		t.Fatalf("Normalised() result has |v| = %v, want 1", unit.Mag())
	}
	if !vec3ApproxEqual(v, NewVector3(3, 4, 0), 1e-12) {
		t.Fatalf("Normalised() mutated receiver: %+v", v)
	}
}
