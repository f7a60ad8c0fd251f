// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anontab

import (
	"io"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// SummaryRows names the row count column of Summary.
const SummaryRows = "rows"

// Summary returns one row per digest, in order of first appearance,
// with the number of rows, the first_bits range, and the geometric
// means of the two metrics. The geometric mean of a digest with a
// non-positive metric value is not meaningful.
func (d *Dataset) Summary() table.Grouping {
	if d.Len() == 0 {
		return new(table.Table)
	}
	agg := ggstat.Agg(Digest)(
		ggstat.AggCount(SummaryRows),
		ggstat.AggMin(FirstBits),
		ggstat.AggMax(FirstBits),
		ggstat.AggGeoMean(KAnonymity, Impact),
	)
	g := agg.F(d.Table)
	// Drop input columns Aggregate carried over because they
	// happened to be constant within every digest.
	for _, col := range []string{FirstBits, KAnonymity, Impact} {
		if slice.Contains(g.Columns(), col) {
			g = table.Remove(g, col)
		}
	}
	return g
}

// FprintSummary prints d.Summary to w as an aligned text table.
func (d *Dataset) FprintSummary(w io.Writer) error {
	return table.Fprint(w, d.Summary(), "%v", "%d", "%g", "%g", "%.4g", "%.4g")
}
