package geom

import "testing"

func TestIdentityAxesAreOrthonormal(t *testing.T) {
	a := Identity()
	assertOrthonormal(t, a)
}

func TestNewAxesNormalisesAndReportsFailure(t *testing.T) {
	tests := []struct {
		name       string
		u, v, w    Vector3
		wantOk     bool
	}{
		{
			name:   "already_unit",
			u:      NewVector3(1, 0, 0),
			v:      NewVector3(0, 1, 0),
			w:      NewVector3(0, 0, 1),
			wantOk: true,
		},
		{
			name:   "scaled_inputs",
			u:      NewVector3(2, 0, 0),
			v:      NewVector3(0, 5, 0),
			w:      NewVector3(0, 0, 3),
			wantOk: true,
		},
		{
			name:   "degenerate_w",
			u:      NewVector3(1, 0, 0),
			v:      NewVector3(0, 1, 0),
			w:      NewVector3(0, 0, 0),
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axes, ok := NewAxes(tt.u, tt.v, tt.w)
			if ok != tt.wantOk {
				t.Fatalf("NewAxes() ok = %v, want %v", ok, tt.wantOk)
			}
			if tt.wantOk {
				assertOrthonormal(t, axes)
			}
		})
	}
}

func assertOrthonormal(t *testing.T, a Axes) {
	t.Helper()
	for _, v := range []Vector3{a.U, a.V, a.W} {
		if !approxEqual(v.Mag(), 1, 1e-9) {
			t.Fatalf("axis %+v is not unit length: |v|=%v", v, v.Mag())
		}
	}
	for _, pair := range [][2]Vector3{{a.U, a.V}, {a.U, a.W}, {a.V, a.W}} {
		if d := pair[0].Dot(pair[1]); !approxEqual(d, 0, 1e-9) {
			t.Fatalf("axes %+v and %+v are not orthogonal: dot=%v", pair[0], pair[1], d)
		}
	}
}
