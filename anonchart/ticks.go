// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anonchart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// Lines is a fixed set of ticks computed from the data rather than
// from the axis range.
type Lines struct {
	ticks []plot.Tick
}

func (u Lines) Ticks(min, max float64) []plot.Tick {
	return u.ticks
}

// decadeRange widens [lo, hi] to whole powers of ten. lo must be
// positive. The result always spans at least one decade and stays
// within the positive finite floats, so a bound beyond the last
// representable power of ten is kept as is.
func decadeRange(lo, hi float64) (float64, float64) {
	a := math.Floor(math.Log10(lo))
	b := math.Ceil(math.Log10(hi))
	if b <= a {
		b = a + 1
	}
	bottom, top := math.Pow(10, a), math.Pow(10, b)
	if bottom <= 0 {
		bottom = lo
	}
	if math.IsInf(top, 1) {
		top = math.MaxFloat64
	}
	return bottom, top
}

// decadeLines returns labelled ticks at each power of ten in
// [lo, hi] and unlabelled minor ticks at 2..9 times each power.
// When the range spans a single decade, 2 and 5 are labelled too.
func decadeLines(lo, hi float64) Lines {
	a := int(math.Round(math.Log10(lo)))
	b := int(math.Round(math.Log10(hi)))
	var ticks []plot.Tick
	for e := a; e <= b; e++ {
		base := math.Pow(10, float64(e))
		ticks = append(ticks, plot.Tick{Value: base, Label: decadeLabel(base, e)})
		if e == b {
			break
		}
		for m := 2; m <= 9; m++ {
			v := float64(m) * base
			label := ""
			if b-a == 1 && (m == 2 || m == 5) {
				label = decadeLabel(v, e)
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
	}
	return Lines{ticks: ticks}
}

// decadeLabel formats v, which is a multiple of 10^e. Plain
// notation is used within [0.001, 10000], scientific outside it.
func decadeLabel(v float64, e int) string {
	if e >= -3 && e <= 4 {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%.0e", v)
}
