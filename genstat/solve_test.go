// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/sudoku-bench/sudostat/genfmt"
)

func solveSchema(labels ...string) *genfmt.Schema {
	return &genfmt.Schema{Kind: genfmt.Solve, Labels: labels}
}

func TestSolveSummaryEmpty(t *testing.T) {
	sum := NewSolveSummary(solveSchema("simple"))
	rep := sum.Report(time.Unix(0, 0))
	if rep.Count != 0 {
		t.Errorf("Count = %d, want 0", rep.Count)
	}
	if len(rep.Strategies) != 1 {
		t.Fatalf("got %d strategies, want 1", len(rep.Strategies))
	}
	st := rep.Strategies[0]
	if st.Name != "simple" {
		t.Errorf("Name = %q, want %q", st.Name, "simple")
	}
	if st.Steps.Count() != 0 || len(st.BySolutions) != 0 {
		t.Errorf("empty summary has non-empty statistics: %+v", st)
	}
}

// TestSolveSummaryFanOut checks that one record updates every grouping
// it belongs to: the strategy's overall statistics, its solution-count
// breakdown, and the step-count bucket inside it.
func TestSolveSummaryFanOut(t *testing.T) {
	sum := NewSolveSummary(solveSchema("simple", "guided"))
	sum.Add(&genfmt.SolveResult{
		Solutions: 1,
		Strategies: []genfmt.StrategyRun{
			{Steps: 10, Micros: 100},
			{Steps: 40, Micros: 800},
		},
	})
	sum.Add(&genfmt.SolveResult{
		Solutions: 2,
		Strategies: []genfmt.StrategyRun{
			{Steps: 20, Micros: 300},
			{Steps: 40, Micros: 1200},
		},
	})
	rep := sum.Report(time.Unix(0, 0))

	if rep.Count != 2 {
		t.Errorf("Count = %d, want 2", rep.Count)
	}
	simple := rep.Strategies[0]
	if got := simple.Steps.Mean(); got != 15 {
		t.Errorf("simple Steps.Mean() = %v, want 15", got)
	}
	if got := simple.PerStep.Mean(); got != 12.5 {
		t.Errorf("simple PerStep.Mean() = %v, want 12.5 (mean of 10 and 15)", got)
	}
	if got := simple.Total.Mean(); got != 200 {
		t.Errorf("simple Total.Mean() = %v, want 200", got)
	}

	// Each solution count got exactly one of simple's two records.
	if len(simple.BySolutions) != 2 {
		t.Fatalf("got %d solution breakdowns, want 2", len(simple.BySolutions))
	}
	one := simple.BySolutions[0]
	if one.Solutions != 1 || one.Overall.Count() != 1 || one.Overall.Mean() != 100 {
		t.Errorf("1-solution breakdown = %+v, want one observation of 100", one)
	}
	if len(one.BySteps) != 1 || one.BySteps[0].Steps != 10 || one.BySteps[0].Time.Mean() != 100 {
		t.Errorf("1-solution step buckets = %+v, want [steps 10, time 100]", one.BySteps)
	}

	// Strategies accumulate independently.
	guided := rep.Strategies[1]
	if got := guided.Steps.Mean(); got != 40 {
		t.Errorf("guided Steps.Mean() = %v, want 40", got)
	}
	if got := guided.Total.Mean(); got != 1000 {
		t.Errorf("guided Total.Mean() = %v, want 1000", got)
	}
}

func TestSolveSummaryBySolutionsOrder(t *testing.T) {
	sum := NewSolveSummary(solveSchema("s"))
	for _, sol := range []int{10, 2, 1, 10} {
		sum.Add(&genfmt.SolveResult{
			Solutions:  sol,
			Strategies: []genfmt.StrategyRun{{Steps: 1, Micros: 1}},
		})
	}
	rep := sum.Report(time.Unix(0, 0))
	var got []int
	for _, b := range rep.Strategies[0].BySolutions {
		got = append(got, b.Solutions)
	}
	if want := []int{1, 2, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("solution counts = %v, want numeric order %v", got, want)
	}
}

func TestSolveSummaryZeroSteps(t *testing.T) {
	sum := NewSolveSummary(solveSchema("s"))
	sum.Add(&genfmt.SolveResult{
		Solutions:  1,
		Strategies: []genfmt.StrategyRun{{Steps: 0, Micros: 50}},
	})
	rep := sum.Report(time.Unix(0, 0))
	// A zero step count contributes its full time as the per-step
	// value instead of dividing by zero.
	if got := rep.Strategies[0].PerStep.Mean(); got != 50 || math.IsNaN(got) {
		t.Errorf("PerStep.Mean() = %v, want 50", got)
	}
}

func TestSolveReportIdempotent(t *testing.T) {
	sum := NewSolveSummary(solveSchema("s"))
	sum.Add(&genfmt.SolveResult{
		Solutions:  1,
		Strategies: []genfmt.StrategyRun{{Steps: 5, Micros: 100}},
	})
	when := time.Unix(100, 0)
	first := sum.Report(when)
	second := sum.Report(when)
	if !reflect.DeepEqual(first, second) {
		t.Error("assembling the report twice changed its contents")
	}
}
