// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"math"
	"testing"
	"time"

	"github.com/sudoku-bench/sudostat/genfmt"
)

func improperSchema(maxSolutions int) *genfmt.Schema {
	return &genfmt.Schema{
		Kind:         genfmt.Improper,
		MaxSolutions: maxSolutions,
		Marker:       "Generating 100 improper puzzles (3, 20) from seed 0x1",
	}
}

// TestImproperSummaryEmpty checks the fixed report shape: even with no
// records, every group carries one cell per declared solution count.
func TestImproperSummaryEmpty(t *testing.T) {
	sum := NewImproperSummary(improperSchema(3))
	rep := sum.Report(time.Unix(0, 0))

	if rep.Count != 0 {
		t.Errorf("Count = %d, want 0", rep.Count)
	}
	if rep.Marker == "" {
		t.Error("Marker is empty, want the raw marker line")
	}
	if len(rep.Symmetries) != 0 {
		t.Errorf("got %d symmetries, want 0", len(rep.Symmetries))
	}
	if len(rep.All.BySolutions) != 3 {
		t.Fatalf("got %d solution cells, want 3", len(rep.All.BySolutions))
	}
	for i, cell := range rep.All.BySolutions {
		if cell.Solutions != i+1 {
			t.Errorf("cell %d Solutions = %d, want %d", i, cell.Solutions, i+1)
		}
		if cell.Holes.Count() != 0 {
			t.Errorf("cell %d Holes.Count() = %d, want 0", i, cell.Holes.Count())
		}
	}
}

func TestImproperSummary(t *testing.T) {
	sum := NewImproperSummary(improperSchema(3))
	sum.Add(&genfmt.ImproperResult{Symmetry: "MIRROR", Solutions: 2, Holes: 40})
	sum.Add(&genfmt.ImproperResult{Symmetry: "MIRROR", Solutions: 2, Holes: 50})
	sum.Add(&genfmt.ImproperResult{Symmetry: "CLASSIC", Solutions: 3, Holes: 12})
	rep := sum.Report(time.Unix(0, 0))

	if rep.Count != 3 {
		t.Errorf("Count = %d, want 3", rep.Count)
	}
	if got := rep.All.Holes.Mean(); got != 34 {
		t.Errorf("All.Holes.Mean() = %v, want 34", got)
	}
	if got := rep.All.Solns.Mean(); math.Abs(got-7.0/3) > 1e-12 {
		t.Errorf("All.Solns.Mean() = %v, want 7/3", got)
	}

	// The by-solutions cells pick out the matching records; solution
	// count 1 was never observed and reads as zero.
	cells := rep.All.BySolutions
	if got := cells[0].Holes.Count(); got != 0 {
		t.Errorf("1-solution Holes.Count() = %d, want 0", got)
	}
	if got := cells[1].Holes.Mean(); got != 45 {
		t.Errorf("2-solution Holes.Mean() = %v, want 45", got)
	}
	if got := cells[2].Holes.Mean(); got != 12 {
		t.Errorf("3-solution Holes.Mean() = %v, want 12", got)
	}

	// Symmetry groups sort by identifier and have the same fixed shape.
	if len(rep.Symmetries) != 2 {
		t.Fatalf("got %d symmetries, want 2", len(rep.Symmetries))
	}
	if rep.Symmetries[0].Name != "CLASSIC" || rep.Symmetries[1].Name != "MIRROR" {
		t.Errorf("symmetry order = %q, %q, want CLASSIC, MIRROR",
			rep.Symmetries[0].Name, rep.Symmetries[1].Name)
	}
	mirror := rep.Symmetries[1]
	if got := mirror.Holes.Mean(); got != 45 {
		t.Errorf("MIRROR Holes.Mean() = %v, want 45", got)
	}
	if len(mirror.BySolutions) != 3 {
		t.Errorf("MIRROR has %d solution cells, want 3", len(mirror.BySolutions))
	}
	if got := mirror.BySolutions[2].Holes.Count(); got != 0 {
		t.Errorf("MIRROR 3-solution Holes.Count() = %d, want 0", got)
	}
}
