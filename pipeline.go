// Package gogaden glues the core pipeline stages together as a single
// programmatic entry point, mirroring akmonengine/feather's root-level
// World/Step glue over its own subpackages (gjk, epa, actor).
package gogaden

import (
	"fmt"

	"github.com/marupio/gogaden/geom"
	"github.com/marupio/gogaden/hull3d"
	"github.com/marupio/gogaden/internal/gogadenlog"
	"github.com/marupio/gogaden/merge"
	"github.com/marupio/gogaden/obb"
)

// Options configures a Run invocation.
type Options struct {
	// Tolerance is the merge/coplanarity tolerance applied throughout.
	Tolerance float64
	// Steps and Passes control the OBB grid search resolution; see
	// obb.MinRotatedOBB.
	Steps, Passes int
	// Concurrent selects obb.MinRotatedOBBConcurrent over the sequential
	// search.
	Concurrent bool
	Log        []gogadenlog.Option
}

// Report is the outcome of running the full pipeline over a raw point
// cloud: the deduplicated point count, the hull's dimensionality and vertex
// count, and the resulting oriented bounding box.
type Report struct {
	InputCount  int
	MergedCount int
	HullDim     int
	HullVerts   int
	OBB         obb.Result
	// MergedPoints is the deduplicated point set the hull and OBB search
	// ran over, kept for callers that want to render a report chart.
	MergedPoints []geom.Vector3
}

// Run executes the full pipeline: deduplicate raw points under
// opts.Tolerance, take their 3D convex hull, then search for the
// minimum-volume oriented bounding box over that hull's vertices. It is the
// programmatic equivalent of the cmd/gogaden CLI.
func Run(pts []geom.Vector3, opts Options) (Report, error) {
	if opts.Tolerance <= 0 {
		return Report{}, fmt.Errorf("gogaden: tolerance must be > 0, got %v", opts.Tolerance)
	}
	log := gogadenlog.New(opts.Log...)
	log.Info("gogaden: running pipeline over %d input points", len(pts))

	_, merged, err := merge.MergePoints(pts, opts.Tolerance, len(pts))
	if err != nil {
		return Report{}, fmt.Errorf("gogaden: merge: %w", err)
	}
	log.Debug("gogaden: merged down to %d points", len(merged))

	dim, vertexIDs, _ := hull3d.Hull3D(merged, opts.Tolerance)
	log.Debug("gogaden: hull dim=%d verts=%d", dim, len(vertexIDs))

	hullPts := make([]geom.Vector3, len(vertexIDs))
	for i, vid := range vertexIDs {
		hullPts[i] = merged[vid]
	}

	var result obb.Result
	if opts.Concurrent {
		result, err = obb.MinRotatedOBBConcurrent(hullPts, opts.Steps, opts.Passes, opts.Tolerance, opts.Log...)
	} else {
		result, err = obb.MinRotatedOBB(hullPts, opts.Steps, opts.Passes, opts.Tolerance, opts.Log...)
	}
	if err != nil {
		return Report{}, fmt.Errorf("gogaden: obb: %w", err)
	}

	log.Info("gogaden: pipeline complete")
	return Report{
		InputCount:   len(pts),
		MergedCount:  len(merged),
		HullDim:      dim,
		HullVerts:    len(vertexIDs),
		OBB:          result,
		MergedPoints: merged,
	}, nil
}
