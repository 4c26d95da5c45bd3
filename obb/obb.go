// Package obb computes the minimum-volume oriented bounding box of a point
// set via a nested grid search over heading/pitch combined with in-plane
// rotating calipers, grounded on the original gaden
// Work::calculateRotatedBoundBox / BoundBox::solveMinimumRotatedBoundBox.
package obb

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/marupio/gogaden/geom"
	"github.com/marupio/gogaden/hull2d"
	"github.com/marupio/gogaden/internal/gogadenlog"
	"github.com/marupio/gogaden/minrect"
	"github.com/marupio/gogaden/project"
	"github.com/marupio/gogaden/workpool"
)

// ErrInvalidGrid is returned when steps or passes is less than 1.
var ErrInvalidGrid = errors.New("obb: steps and passes must each be >= 1")

// Angles holds the three Euler angles defining the returned frame relative
// to the world axes: heading, pitch, and in-plane roll.
type Angles struct {
	Theta, Phi, Psi float64
}

// Result is the outcome of MinRotatedOBB: the box's min/max extents in the
// rotated frame, the frame itself, and the angles that produced it.
type Result struct {
	Box   geom.BoundBox
	Axes  geom.Axes
	Angle Angles
}

const piByTwo = math.Pi / 2

// MinRotatedOBB performs a nested steps x steps grid search over
// (theta, phi) in [0, pi/2]^2 for the given number of passes, narrowing the
// search window around the best angles found after each pass. Within each
// sample it projects the points (project.Project), takes the 2D convex hull
// (hull2d.Hull2D), and runs rotating calipers (minrect.MinEnclosingRect) to
// find the in-plane roll psi, then recomputes extents in the psi-rotated
// frame and keeps the minimum-volume candidate.
//
// If no sample ever yields a valid box, MinRotatedOBB returns the identity
// default: identity axes, an empty BoundBox, and zero angles.
func MinRotatedOBB(pts []geom.Vector3, steps, passes int, tol float64, opts ...gogadenlog.Option) (Result, error) {
	if steps < 1 || passes < 1 {
		return Result{}, fmt.Errorf("%w: steps=%d passes=%d", ErrInvalidGrid, steps, passes)
	}
	log := gogadenlog.New(opts...)
	log.Info("obb: starting search over %d points, steps=%d passes=%d", len(pts), steps, passes)

	best := Result{
		Axes: geom.Identity(),
		Box:  geom.NewEmptyBoundBox(),
	}
	bestVol := math.Inf(1)
	found := false

	thetaMin, thetaMax := 0.0, piByTwo
	phiMin, phiMax := 0.0, piByTwo

	for pass := 0; pass < passes; pass++ {
		log.Debug("obb: pass %d theta=[%v,%v] phi=[%v,%v]", pass, thetaMin, thetaMax, phiMin, phiMax)
		thetaDelta := (thetaMax - thetaMin) / float64(steps)
		phiDelta := (phiMax - phiMin) / float64(steps)

		for ti := 0; ti < steps; ti++ {
			theta := thetaMin + float64(ti)*thetaDelta
			log.Debug3("obb: pass %d theta-row %d/%d theta=%v", pass, ti, steps, theta)
			for pi := 0; pi < steps; pi++ {
				phi := phiMin + float64(pi)*phiDelta

				cand, vol, ok := sample(pts, theta, phi, tol)
				log.Debug2("obb: sample theta=%v phi=%v vol=%v ok=%v", theta, phi, vol, ok)
				if !ok {
					continue
				}
				if vol < bestVol {
					bestVol = vol
					best = cand
					found = true
				}
			}
		}

		if pass < passes-1 {
			thetaMin = math.Max(0, best.Angle.Theta-thetaDelta)
			thetaMax = math.Min(piByTwo, best.Angle.Theta+thetaDelta)
			phiMin = math.Max(0, best.Angle.Phi-phiDelta)
			phiMax = math.Min(piByTwo, best.Angle.Phi+phiDelta)
		}
	}

	if !found {
		log.Warn("obb: no valid sample found, returning identity default")
	} else {
		log.Info("obb: best volume=%v angles=%+v", bestVol, best.Angle)
	}
	return best, nil
}

// sample builds the (u,v,w) frame for (theta,phi), projects and hulls it,
// solves psi via rotating calipers, and recomputes extents in the resulting
// (u',v',w') frame across every input point. ok is false if any step is
// degenerate.
func sample(pts []geom.Vector3, theta, phi, tol float64) (Result, float64, bool) {
	axes, ok := project.Frame(theta, phi)
	if !ok {
		return Result{}, 0, false
	}

	pts2d := project.ProjectOnto(pts, axes, tol)
	dim, vertexIDs := hull2d.Hull2D(pts2d)
	if dim < 2 {
		return Result{}, 0, false
	}

	poly := make([]geom.Vector2, len(vertexIDs))
	for i, vid := range vertexIDs {
		p := pts[vid]
		poly[i] = geom.NewVector2(p.Dot(axes.U), p.Dot(axes.V), vid)
	}
	rect := minrect.MinEnclosingRect(poly)
	if !rect.Valid {
		return Result{}, 0, false
	}
	psi := rect.Psi

	cps, sps := math.Cos(psi), math.Sin(psi)
	uPrime := axes.U.Scale(cps).Add(axes.V.Scale(sps))
	vPrime := axes.U.Scale(-sps).Add(axes.V.Scale(cps))
	wPrime := axes.W

	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	minW, maxW := math.Inf(1), math.Inf(-1)

	for _, p := range pts {
		pu, pv, pw := p.Dot(uPrime), p.Dot(vPrime), p.Dot(wPrime)
		if pu < minU {
			minU = pu
		}
		if pu > maxU {
			maxU = pu
		}
		if pv < minV {
			minV = pv
		}
		if pv > maxV {
			maxV = pv
		}
		if pw < minW {
			minW = pw
		}
		if pw > maxW {
			maxW = pw
		}
	}

	volume := (maxU - minU) * (maxV - minV) * (maxW - minW)

	frame, _ := geom.NewAxes(uPrime, vPrime, wPrime)
	res := Result{
		Box:   geom.BoundBox{Min: geom.NewVector3(minU, minV, minW), Max: geom.NewVector3(maxU, maxV, maxW)},
		Axes:  frame,
		Angle: Angles{Theta: theta, Phi: phi, Psi: psi},
	}
	return res, volume, true
}

// MinRotatedOBBConcurrent is the additive, opt-in concurrent variant of
// MinRotatedOBB: each pass's steps x steps grid is partitioned across up to
// runtime.GOMAXPROCS(0) goroutines (never more than steps), each worker
// taking a contiguous chunk of theta rows. It
// produces the same result as MinRotatedOBB for the same inputs, since the
// grid itself is deterministic (workpool.Run partitions it into contiguous,
// order-preserving chunks) and only the running-best merge is shared,
// guarded by a mutex that tie-breaks on grid-scan order rather than
// goroutine arrival order.
func MinRotatedOBBConcurrent(pts []geom.Vector3, steps, passes int, tol float64, opts ...gogadenlog.Option) (Result, error) {
	if steps < 1 || passes < 1 {
		return Result{}, fmt.Errorf("%w: steps=%d passes=%d", ErrInvalidGrid, steps, passes)
	}
	log := gogadenlog.New(opts...)

	best := Result{
		Axes: geom.Identity(),
		Box:  geom.NewEmptyBoundBox(),
	}
	bestVol := math.Inf(1)
	bestOrder := -1
	found := false
	var mu sync.Mutex

	thetaMin, thetaMax := 0.0, piByTwo
	phiMin, phiMax := 0.0, piByTwo

	workers := runtime.GOMAXPROCS(0)
	if workers > steps {
		workers = steps
	}

	for pass := 0; pass < passes; pass++ {
		thetaDelta := (thetaMax - thetaMin) / float64(steps)
		phiDelta := (phiMax - phiMin) / float64(steps)

		workpool.Run(workers, steps, func(lo, hi int) {
			for ti := lo; ti < hi; ti++ {
				theta := thetaMin + float64(ti)*thetaDelta
				for pi := 0; pi < steps; pi++ {
					phi := phiMin + float64(pi)*phiDelta
					order := (pass*steps+ti)*steps + pi
					cand, vol, ok := sample(pts, theta, phi, tol)
					if !ok {
						continue
					}
					mu.Lock()
					// Tie-break on scan order (pass, then grid position) so the result does not
					// depend on goroutine scheduling: earlier-scanned
					// samples win ties, matching the sequential scan.
					if vol < bestVol || (vol == bestVol && order < bestOrder) {
						bestVol = vol
						bestOrder = order
						best = cand
						found = true
					}
					mu.Unlock()
				}
			}
		})

		if pass < passes-1 {
			thetaMin = math.Max(0, best.Angle.Theta-thetaDelta)
			thetaMax = math.Min(piByTwo, best.Angle.Theta+thetaDelta)
			phiMin = math.Max(0, best.Angle.Phi-phiDelta)
			phiMax = math.Min(piByTwo, best.Angle.Phi+phiDelta)
		}
	}

	if !found {
		log.Warn("obb: concurrent search found no valid sample, returning identity default")
	}
	return best, nil
}
