// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/vg"

	"github.com/digestprivacy/anonviz/anonchart"
)

func TestParseEmpty(t *testing.T) {
	r, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), r); diff != "" {
		t.Errorf("empty config differs from default (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	const input = `
title: Truncation study
width_cm: 30
invalid_values: reject
charts:
  - name: impact
    column: anonymity_imapct
    y_label: impact score
    log_y: false
  - name: k
    column: k_anonymity_achieved
    title: k
`
	r, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	want := &Report{
		Title:  "Truncation study",
		Width:  30 * vg.Centimeter,
		Height: anonchart.DefaultHeight,
		Policy: anonchart.RejectInvalid,
		Metrics: []anonchart.Metric{
			{Name: "impact", Column: "anonymity_imapct", Title: "impact", YLabel: "impact score", LogY: false},
			{Name: "k", Column: "k_anonymity_achieved", Title: "k", LogY: true},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  error
	}{
		{"unknown column", "charts:\n  - name: x\n    column: digest\n", ErrUnknownColumn},
		{"duplicate", "charts:\n  - {name: a, column: anonymity_imapct}\n  - {name: a, column: k_anonymity_achieved}\n", ErrDuplicateName},
		{"no name", "charts:\n  - column: anonymity_imapct\n", ErrMissingName},
		{"negative size", "height_cm: -3\n", ErrInvalidSize},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("colour: blue\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := Parse([]byte("invalid_values: clip\n")); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file: got %v, want ErrConfigNotFound", err)
	}
	path := filepath.Join(dir, "anonviz.yaml")
	if err := os.WriteFile(path, []byte("title: From file\n"), 0666); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "From file" || len(r.Metrics) != 2 {
		t.Errorf("got title %q with %d charts", r.Title, len(r.Metrics))
	}
}
