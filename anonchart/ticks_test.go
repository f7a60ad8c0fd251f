// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anonchart

import (
	"math"
	"testing"
)

func TestDecadeRange(t *testing.T) {
	for _, test := range []struct {
		lo, hi       float64
		wantLo, wantHi float64
	}{
		{15, 3906, 10, 10000},
		{1, 1, 1, 10},
		{0.25, 4.1, 0.1, 10},
		{100, 100, 100, 1000},
		{1, 1000, 1, 1000},
		{1, 1.5e308, 1, math.MaxFloat64},
		{5e-324, 1, 5e-324, 1},
	} {
		lo, hi := decadeRange(test.lo, test.hi)
		if !near(lo, test.wantLo) || !near(hi, test.wantHi) {
			t.Errorf("decadeRange(%g, %g) = %g, %g; want %g, %g", test.lo, test.hi, lo, hi, test.wantLo, test.wantHi)
		}
	}
}

func TestDecadeRangeFinite(t *testing.T) {
	for _, v := range []float64{5e-324, 1e-300, 1, 1e300, 1e308, math.MaxFloat64} {
		lo, hi := decadeRange(v, v)
		if !(lo > 0 && hi > lo) || math.IsInf(hi, 0) {
			t.Errorf("decadeRange(%g, %g) = %g, %g", v, v, lo, hi)
		}
		for _, tk := range decadeLines(lo, hi).Ticks(lo, hi) {
			if !(tk.Value > 0) || math.IsInf(tk.Value, 0) {
				t.Errorf("decadeLines(%g, %g) has tick %g", lo, hi, tk.Value)
			}
		}
	}
}

func TestDecadeLines(t *testing.T) {
	ticks := decadeLines(1, 1000).Ticks(1, 1000)
	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	want := []string{"1", "10", "100", "1000"}
	if len(labels) != len(want) {
		t.Fatalf("labels %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
	// 3 decades with 8 minor ticks each, plus 4 major ticks.
	if len(ticks) != 28 {
		t.Errorf("got %d ticks, want 28", len(ticks))
	}
}

func TestDecadeLinesSingleDecade(t *testing.T) {
	var labels []string
	for _, tk := range decadeLines(10, 100).Ticks(10, 100) {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	want := []string{"10", "20", "50", "100"}
	if len(labels) != len(want) {
		t.Fatalf("labels %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestDecadeLabel(t *testing.T) {
	for _, test := range []struct {
		v    float64
		e    int
		want string
	}{
		{0.001, -3, "0.001"},
		{10000, 4, "10000"},
		{1e5, 5, "1e+05"},
		{2e-4, -4, "2e-04"},
	} {
		if got := decadeLabel(test.v, test.e); got != test.want {
			t.Errorf("decadeLabel(%g) = %q, want %q", test.v, got, test.want)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-9*b
}
