// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anontab

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/digestprivacy/anonviz/internal/diff"
)

func TestSummary(t *testing.T) {
	d, err := ReadFile(filepath.Join("testdata", "small.csv"))
	if err != nil {
		t.Fatal(err)
	}
	g := d.Summary()
	want := []string{Digest, SummaryRows, "min " + FirstBits, "max " + FirstBits, "geomean " + KAnonymity, "geomean " + Impact}
	if diff := cmp.Diff(want, g.Columns()); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	tab := table.Flatten(g)
	if diff := cmp.Diff([]string{"sha256", "md5"}, tab.MustColumn(Digest)); diff != "" {
		t.Errorf("digests mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1}, tab.MustColumn(SummaryRows)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff([]float64{70.71067811865476, 400}, tab.MustColumn("geomean "+KAnonymity), approx); diff != "" {
		t.Errorf("geomean mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryEmpty(t *testing.T) {
	d, err := Read(strings.NewReader("first_bits,k_anonymity_achieved,anonymity_imapct,digest\n"), "empty.csv")
	if err != nil {
		t.Fatal(err)
	}
	if cols := d.Summary().Columns(); cols != nil {
		t.Errorf("want no columns, got %v", cols)
	}
}

func TestFprintSummary(t *testing.T) {
	d, err := ReadFile(filepath.Join("testdata", "small.csv"))
	if err != nil {
		t.Fatal(err)
	}
	out := new(strings.Builder)
	if err := d.FprintSummary(out); err != nil {
		t.Fatal(err)
	}
	diff.Golden(t, "summary.golden", out.String())
}
