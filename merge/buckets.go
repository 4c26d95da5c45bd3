// Package merge provides online duplicate-point detection under a Euclidean
// tolerance without an O(n^2) scan, grounded on the original gaden
// AutoMergingPointsArray and adapted from akmonengine/feather's bucketed
// SpatialGrid (a hash-bucketed broad-phase structure using the same
// map[int][]int shape).
package merge

import (
	"errors"
	"fmt"

	"github.com/marupio/gogaden/geom"
)

// ErrInvalidTolerance is returned by NewBuckets when tol <= 0.
var ErrInvalidTolerance = errors.New("merge: tolerance must be > 0")

// Buckets performs online duplicate-point merging. The bucket index of a
// point is floor(|p|^2 / tol); candidates within tol of an incoming point
// always fall within a narrow window of buckets around its own magnitude
// squared, since ||p-q|| <= tol implies | |p|^2 - |q|^2 | <= 2*tol*|q| +
// tol^2, bounded by the point's own scaled tolerance for bounded
// coordinates.
type Buckets struct {
	tol    float64
	tolSqr float64
	invTol float64

	points    []geom.Vector3
	magSqr    []float64
	scaledTol []float64

	bucketToIDs map[int][]int
}

// NewBuckets preallocates for estimatedSize points under tolerance tol.
// It returns ErrInvalidTolerance if tol <= 0.
func NewBuckets(estimatedSize int, tol float64) (*Buckets, error) {
	if tol <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tol)
	}
	return &Buckets{
		tol:         tol,
		tolSqr:      tol * tol,
		invTol:      1.0 / tol,
		points:      make([]geom.Vector3, 0, estimatedSize),
		magSqr:      make([]float64, 0, estimatedSize),
		scaledTol:   make([]float64, 0, estimatedSize),
		bucketToIDs: make(map[int][]int, estimatedSize),
	}, nil
}

func (b *Buckets) bucketIndex(magSqr float64) int {
	return int(magSqr * b.invTol)
}

// Append inserts p, collapsing it into an existing point within tol if one
// exists. It returns (merged, index): if merged, index is the id of the
// existing point p now maps to; otherwise index is p's newly assigned id.
func (b *Buckets) Append(p geom.Vector3) (merged bool, index int) {
	msd := p.MagSqr()
	scaled := 2 * b.tol * (abs(p.X()) + abs(p.Y()) + abs(p.Z()))

	from := b.bucketIndex(msd - scaled)
	to := b.bucketIndex(msd + scaled)
	for bucket := from; bucket <= to; bucket++ {
		for _, candidate := range b.bucketToIDs[bucket] {
			if abs(b.magSqr[candidate]-msd) > scaled {
				continue
			}
			if p.Sub(b.points[candidate]).MagSqr() <= b.tolSqr {
				return true, candidate
			}
		}
	}

	newIndex := len(b.points)
	b.points = append(b.points, p)
	b.magSqr = append(b.magSqr, msd)
	b.scaledTol = append(b.scaledTol, scaled)
	bucket := b.bucketIndex(msd)
	b.bucketToIDs[bucket] = append(b.bucketToIDs[bucket], newIndex)
	return false, newIndex
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Size returns the number of stored (deduplicated) points.
func (b *Buckets) Size() int { return len(b.points) }

// Points returns the underlying stored points, read-only.
func (b *Buckets) Points() []geom.Vector3 { return b.points }

// IntoPoints consumes b, returning the underlying point array. Internal
// scratch (magSqr, scaledTol, buckets) is discarded; b must not be used
// afterward.
func (b *Buckets) IntoPoints() []geom.Vector3 {
	pts := b.points
	b.points = nil
	b.magSqr = nil
	b.scaledTol = nil
	b.bucketToIDs = nil
	return pts
}

// MergePoints appends every point in ptsIn to a fresh Buckets under
// tolerance tol, returning the per-input mapping to merged indices and the
// deduplicated point array. It is the batch entry point named in the
// external interface: merge_points(pts_in, tol, estimated_size).
func MergePoints(ptsIn []geom.Vector3, tol float64, estimatedSize int) ([]int, []geom.Vector3, error) {
	b, err := NewBuckets(estimatedSize, tol)
	if err != nil {
		return nil, nil, err
	}
	indexMap := make([]int, len(ptsIn))
	for i, p := range ptsIn {
		_, idx := b.Append(p)
		indexMap[i] = idx
	}
	return indexMap, b.IntoPoints(), nil
}
