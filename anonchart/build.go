// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anonchart builds and renders line charts of anonymity
// metrics, one line per digest across first_bits.
package anonchart

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"

	"github.com/digestprivacy/anonviz/anontab"
)

// A Series is the line of one digest.
type Series struct {
	Digest string

	// Points are ordered by ascending X (first_bits). Rows with
	// equal first_bits keep their input order.
	Points plotter.XYs
}

// A Chart is the data of one metric, ready to render.
type Chart struct {
	Metric Metric

	// Series has one entry per distinct digest of the input, in
	// order of first appearance, even if every row of a digest
	// was dropped.
	Series []Series

	// Dropped lists the rows left out under DropInvalid.
	Dropped []*InvalidValueError
}

// Len returns the number of points in c.
func (c *Chart) Len() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// Build groups the rows of ds by digest, sorts each group by
// first_bits, and selects m.Column as y.
//
// Rows with a non-finite x or y, or with y <= 0 when m.LogY is set,
// are handled according to policy. If no row is left to plot, Build
// returns the chart together with an error matching ErrNoData.
func Build(ds *anontab.Dataset, m Metric, policy Policy) (*Chart, error) {
	if ds.Floats(m.Column) == nil || m.Column == anontab.FirstBits {
		return nil, fmt.Errorf("chart %q: column %q is not a metric", m.Title, m.Column)
	}

	c := &Chart{Metric: m}
	if ds.Len() == 0 {
		return c, fmt.Errorf("chart %q: %w", m.Title, ErrNoData)
	}

	// Screen rows in input order so that Dropped reads like the file.
	xs := ds.Floats(anontab.FirstBits)
	ys := ds.Floats(m.Column)
	digests := ds.Table.MustColumn(anontab.Digest).([]string)
	for i := range xs {
		x, y := xs[i], ys[i]
		if plottable(x, y, m.LogY) {
			continue
		}
		bad := &InvalidValueError{
			FileName:  ds.FileName,
			Line:      ds.Lines[i],
			Column:    m.Column,
			Digest:    digests[i],
			FirstBits: x,
			Value:     y,
			LogScale:  m.LogY,
		}
		if !finite(x) {
			bad.Column, bad.Value = anontab.FirstBits, x
		}
		if policy == RejectInvalid {
			return nil, fmt.Errorf("chart %q: %w", m.Title, bad)
		}
		c.Dropped = append(c.Dropped, bad)
	}

	// Every digest gets a series, even one whose rows were all
	// dropped above.
	index := make(map[string]int)
	for i, d := range ds.Digests() {
		c.Series = append(c.Series, Series{Digest: d})
		index[d] = i
	}

	var g table.Grouping = ds.Table
	if len(c.Dropped) > 0 {
		g = table.Filter(g, func(x, y float64) bool { return plottable(x, y, m.LogY) }, anontab.FirstBits, m.Column)
	}
	g = table.SortBy(table.GroupBy(g, anontab.Digest), anontab.FirstBits)
	for _, gid := range g.Tables() {
		gt := g.Table(gid)
		s := &c.Series[index[gid.Label().(string)]]
		gxs := gt.MustColumn(anontab.FirstBits).([]float64)
		gys := gt.MustColumn(m.Column).([]float64)
		s.Points = make(plotter.XYs, len(gxs))
		for i := range gxs {
			s.Points[i] = plotter.XY{X: gxs[i], Y: gys[i]}
		}
	}

	if c.Len() == 0 {
		return c, fmt.Errorf("chart %q: %w (%d rows dropped)", m.Title, ErrNoData, len(c.Dropped))
	}
	return c, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func plottable(x, y float64, logY bool) bool {
	if !finite(x) || !finite(y) {
		return false
	}
	return !logY || y > 0
}
