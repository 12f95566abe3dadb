// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"testing"
	"time"

	"github.com/sudoku-bench/sudostat/genfmt"
)

func genSchema(labels ...string) *genfmt.Schema {
	return &genfmt.Schema{Kind: genfmt.Generate, Labels: labels}
}

func TestGenSummary(t *testing.T) {
	sum := NewGenSummary(genSchema("classic", "random_walk"))
	sum.Add(&genfmt.GenResult{
		Symmetry: "MIRROR",
		Generators: []genfmt.GeneratorRun{
			{Clues: 30, Micros: 2000},
			{Clues: 28, Micros: 5000},
		},
	})
	sum.Add(&genfmt.GenResult{
		Symmetry: "MIRROR",
		Generators: []genfmt.GeneratorRun{
			{Clues: 32, Micros: 4000},
			{Clues: 26, Micros: 7000},
		},
	})
	rep := sum.Report(time.Unix(0, 0))

	if rep.Count != 2 {
		t.Errorf("Count = %d, want 2", rep.Count)
	}
	if len(rep.Generators) != 2 {
		t.Fatalf("got %d generators, want 2", len(rep.Generators))
	}
	classic := rep.Generators[0]
	if classic.Name != "Classic" {
		t.Errorf("Name = %q, want %q", classic.Name, "Classic")
	}
	// Times are reported in milliseconds.
	if got := classic.Time.Mean(); got != 3 {
		t.Errorf("classic Time.Mean() = %v ms, want 3", got)
	}
	if got := classic.Clues.Mean(); got != 31 {
		t.Errorf("classic Clues.Mean() = %v, want 31", got)
	}

	if len(classic.ByGenerator) != 2 {
		t.Fatalf("got %d comparison cells, want 2", len(classic.ByGenerator))
	}
	// classic - random_walk: times differ by -3ms in both records,
	// clues by 2 and 6.
	vs := classic.ByGenerator[1]
	if vs.Name != "Random Walk" {
		t.Errorf("cell Name = %q, want %q", vs.Name, "Random Walk")
	}
	if got := vs.Time.Mean(); got != -3 {
		t.Errorf("difference Time.Mean() = %v, want -3", got)
	}
	if got := vs.Clues.Mean(); got != 4 {
		t.Errorf("difference Clues.Mean() = %v, want 4", got)
	}
}

// TestGenSummaryDiagonal checks the self-comparison cell: a generator
// compared against itself is identically zero.
func TestGenSummaryDiagonal(t *testing.T) {
	sum := NewGenSummary(genSchema("a", "b"))
	sum.Add(&genfmt.GenResult{
		Symmetry: "X",
		Generators: []genfmt.GeneratorRun{
			{Clues: 30, Micros: 1000},
			{Clues: 20, Micros: 9000},
		},
	})
	rep := sum.Report(time.Unix(0, 0))
	self := rep.Generators[0].ByGenerator[0]
	if self.Time.Mean() != 0 || self.Time.Variance() != 0 {
		t.Errorf("diagonal time cell = mean %v variance %v, want 0, 0",
			self.Time.Mean(), self.Time.Variance())
	}
	if self.Clues.Mean() != 0 || self.Clues.Variance() != 0 {
		t.Errorf("diagonal clues cell = mean %v variance %v, want 0, 0",
			self.Clues.Mean(), self.Clues.Variance())
	}
	if got := self.Time.Count(); got != 1 {
		t.Errorf("diagonal cell Count() = %d, want 1", got)
	}
}

func TestGenSummarySymmetries(t *testing.T) {
	sum := NewGenSummary(genSchema("a", "b"))
	sum.Add(&genfmt.GenResult{
		Symmetry: "ROTATE",
		Generators: []genfmt.GeneratorRun{
			{Clues: 30, Micros: 1000},
			{Clues: 20, Micros: 3000},
		},
	})
	sum.Add(&genfmt.GenResult{
		Symmetry: "CLASSIC",
		Generators: []genfmt.GeneratorRun{
			{Clues: 24, Micros: 2000},
			{Clues: 26, Micros: 4000},
		},
	})
	rep := sum.Report(time.Unix(0, 0))

	if len(rep.Symmetries) != 2 {
		t.Fatalf("got %d symmetries, want 2", len(rep.Symmetries))
	}
	// Symmetries sort by raw identifier and carry display names.
	if got, want := rep.Symmetries[0].Name, "Classic"; got != want {
		t.Errorf("Symmetries[0].Name = %q, want %q", got, want)
	}
	if got, want := rep.Symmetries[1].Name, "Rotate"; got != want {
		t.Errorf("Symmetries[1].Name = %q, want %q", got, want)
	}

	// A symmetry's overall statistic pools every generator's runs.
	classic := rep.Symmetries[0]
	if got := classic.Time.Count(); got != 2 {
		t.Errorf("symmetry Time.Count() = %d, want 2", got)
	}
	if got := classic.Time.Mean(); got != 3 {
		t.Errorf("symmetry Time.Mean() = %v ms, want 3", got)
	}
	if got := classic.ByGenerator[0].Clues.Mean(); got != 24 {
		t.Errorf("per-generator Clues.Mean() = %v, want 24", got)
	}
}

// TestGenSummarySymmetryZeroCells checks that a symmetry's cells walk
// the declared generators even if the schema declared more generators
// than a record carried.
func TestGenSummarySymmetryZeroCells(t *testing.T) {
	sum := NewGenSummary(genSchema("a", "b", "c"))
	// A truncated record: only the first two generators ran.
	sum.Add(&genfmt.GenResult{
		Symmetry: "X",
		Generators: []genfmt.GeneratorRun{
			{Clues: 30, Micros: 1000},
			{Clues: 20, Micros: 3000},
		},
	})
	rep := sum.Report(time.Unix(0, 0))
	cells := rep.Symmetries[0].ByGenerator
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want one per declared generator", len(cells))
	}
	last := cells[2]
	if last.Time.Count() != 0 || last.Clues.Count() != 0 {
		t.Errorf("unobserved generator cell = %+v, want zero statistics", last)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct{ id, want string }{
		{"a_one", "A One"},
		{"classic", "Classic"},
		{"RANDOM_WALK", "Random Walk"},
		{"", ""},
	}
	for _, test := range tests {
		if got := DisplayName(test.id); got != test.want {
			t.Errorf("DisplayName(%q) = %q, want %q", test.id, got, test.want)
		}
	}
}
