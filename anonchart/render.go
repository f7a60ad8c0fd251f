// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anonchart

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/digestprivacy/anonviz/anontab"
)

// Default chart dimensions.
const (
	DefaultWidth  = 20 * vg.Centimeter
	DefaultHeight = 12 * vg.Centimeter
)

const pointRad = 3

// ContentTypes maps each format Render supports to its MIME type.
var ContentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

// Plot lays out c as a gonum plot: one line with point markers per
// non-empty series, a legend keyed by digest, and a logarithmic y
// axis if the metric asks for one.
func Plot(c *Chart) (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = c.Metric.Title
	pl.Title.TextStyle.Font.Size = vg.Points(14)
	pl.X.Label.Text = anontab.FirstBits
	pl.Y.Label.Text = c.Metric.yLabel()
	pl.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{0xdd}
	grid.Horizontal.Color = color.Gray{0xdd}
	pl.Add(grid)

	var ys []float64
	for i, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		l, pts, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Digest, err)
		}
		clr := plotutil.Color(i)
		l.Color = clr
		l.Width = vg.Points(1.5)
		pts.Color = clr
		pts.Shape = plotutil.Shape(i)
		pts.Radius = pointRad
		pl.Add(l, pts)
		pl.Legend.Add(s.Digest, l, pts)

		for _, p := range s.Points {
			ys = append(ys, p.Y)
		}
	}

	if c.Metric.LogY && len(ys) > 0 {
		// Build guarantees every y is positive here, which
		// LogScale requires of the whole axis range.
		lo, hi := decadeRange(stats.Bounds(ys))
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Min, pl.Y.Max = lo, hi
		pl.Y.Tick.Marker = decadeLines(lo, hi)
	}
	return pl, nil
}

// Render draws c in the given format ("svg", "png" or "pdf").
func Render(c *Chart, width, height vg.Length, format string) ([]byte, error) {
	pl, err := Plot(c)
	if err != nil {
		return nil, err
	}
	var can vg.CanvasWriterTo
	switch format {
	case "svg":
		can = vgsvg.New(width, height)
	case "png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
			vgimg.UseDPI(150), vgimg.UseBackgroundColor(color.White))}
	case "pdf":
		can = vgpdf.New(width, height)
	default:
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}

	pl.Draw(draw.New(can))
	var buf bytes.Buffer
	if _, err := can.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
