package merge

import (
	"testing"

	"github.com/marupio/gogaden/geom"
)

func TestNewBucketsRejectsNonPositiveTolerance(t *testing.T) {
	for _, tol := range []float64{0, -1} {
		if _, err := NewBuckets(8, tol); err == nil {
			t.Fatalf("NewBuckets(tol=%v) did not error", tol)
		}
	}
}

func TestAppendDeduplicatesWithinTolerance(t *testing.T) {
	b, err := NewBuckets(8, 1e-3)
	if err != nil {
		t.Fatalf("NewBuckets: %v", err)
	}

	merged, idx0 := b.Append(geom.NewVector3(1, 2, 3))
	if merged {
		t.Fatal("first Append of a fresh point reported merged")
	}

	merged, idx1 := b.Append(geom.NewVector3(1, 2, 3))
	if !merged || idx1 != idx0 {
		t.Fatalf("exact duplicate: merged=%v idx1=%d idx0=%d", merged, idx1, idx0)
	}

	merged, idx2 := b.Append(geom.NewVector3(1+1e-9, 2, 3))
	if !merged || idx2 != idx0 {
		t.Fatalf("near duplicate within tolerance: merged=%v idx2=%d idx0=%d", merged, idx2, idx0)
	}

	merged, idx3 := b.Append(geom.NewVector3(5, 5, 5))
	if merged {
		t.Fatal("distinct point was merged")
	}
	if idx3 == idx0 {
		t.Fatal("distinct point got the same index as the first point")
	}

	if got := b.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
}

func TestAppendDoesNotMergeAcrossTolerance(t *testing.T) {
	b, err := NewBuckets(8, 0.01)
	if err != nil {
		t.Fatalf("NewBuckets: %v", err)
	}
	b.Append(geom.NewVector3(0, 0, 0))
	merged, _ := b.Append(geom.NewVector3(1, 0, 0))
	if merged {
		t.Fatal("point well outside tolerance was merged")
	}
	if got := b.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
}

func TestMergePointsBatchEntryPoint(t *testing.T) {
	in := []geom.Vector3{
		geom.NewVector3(0, 0, 0),
		geom.NewVector3(0, 0, 1e-9),
		geom.NewVector3(1, 1, 1),
		geom.NewVector3(0, 0, 0),
	}
	indexMap, merged, err := MergePoints(in, 1e-6, len(in))
	if err != nil {
		t.Fatalf("MergePoints: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	if indexMap[0] != indexMap[1] || indexMap[1] != indexMap[3] {
		t.Fatalf("indexMap = %v, want [0]==[1]==[3]", indexMap)
	}
	if indexMap[2] == indexMap[0] {
		t.Fatalf("distinct point mapped to same index: %v", indexMap)
	}
}

func TestMergePointsEmptyInput(t *testing.T) {
	indexMap, merged, err := MergePoints(nil, 1e-6, 0)
	if err != nil {
		t.Fatalf("MergePoints: %v", err)
	}
	if len(indexMap) != 0 || len(merged) != 0 {
		t.Fatalf("MergePoints(nil) = %v, %v, want empty", indexMap, merged)
	}
}

func TestIntoPointsConsumesBuckets(t *testing.T) {
	b, err := NewBuckets(2, 1e-6)
	if err != nil {
		t.Fatalf("NewBuckets: %v", err)
	}
	b.Append(geom.NewVector3(1, 2, 3))
	pts := b.IntoPoints()
	if len(pts) != 1 {
		t.Fatalf("IntoPoints() = %v, want 1 point", pts)
	}
	if b.Size() != 0 {
		t.Fatalf("Size() after IntoPoints = %d, want 0", b.Size())
	}
}
