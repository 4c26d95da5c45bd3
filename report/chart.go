// Package report renders an HTML scatter chart of the merged point cloud
// projected onto the winning OBB plane, plus its minimum-area rectangle,
// grounded on the plotting idiom in plot_pacs_sweep.go (a go-echarts
// scatter chart with a highlighted subset of points).
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/marupio/gogaden/geom"
	"github.com/marupio/gogaden/obb"
	"github.com/marupio/gogaden/project"
)

// RenderScatter projects pts onto the winning OBB frame's (u, v) plane and
// writes a self-contained HTML scatter chart to w: the projected points as
// one series, and the four corners of the fitted rectangle (five points, the
// first corner repeated at the end) as a second scatter series. Both series
// are drawn as unconnected scatter symbols.
func RenderScatter(w io.Writer, pts []geom.Vector3, result obb.Result) error {
	axes := geom.Axes{U: result.Axes.U, V: result.Axes.V, W: result.Axes.W}
	pts2d := project.ProjectOnto(pts, axes, 0)

	pointItems := make([]opts.ScatterData, 0, len(pts2d))
	for _, p := range pts2d {
		pointItems = append(pointItems, opts.ScatterData{Value: []float64{p.X(), p.Y()}})
	}

	corners := rectCorners(result)
	rectItems := make([]opts.ScatterData, 0, len(corners))
	for _, c := range corners {
		rectItems = append(rectItems, opts.ScatterData{Value: []float64{c.X(), c.Y()}})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "gogaden oriented bounding box",
			Subtitle: fmt.Sprintf("theta=%.4f phi=%.4f psi=%.4f", result.Angle.Theta, result.Angle.Phi, result.Angle.Psi),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "u"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "v"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	sc.AddSeries("points", pointItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 4}))
	sc.AddSeries("rectangle", rectItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 8}))

	return sc.Render(w)
}

// rectCorners reconstructs the four corners of the fitted rectangle in the
// (u, v) plane from the box extents stored in result, returning five points:
// the four corners followed by the first corner again.
func rectCorners(result obb.Result) [5]geom.Vector2 {
	minU, maxU := result.Box.Min.X(), result.Box.Max.X()
	minV, maxV := result.Box.Min.Y(), result.Box.Max.Y()
	c := [5]geom.Vector2{
		geom.NewVector2(minU, minV, -1),
		geom.NewVector2(maxU, minV, -1),
		geom.NewVector2(maxU, maxV, -1),
		geom.NewVector2(minU, maxV, -1),
		geom.NewVector2(minU, minV, -1),
	}
	return c
}
