// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"strconv"
	"time"

	"github.com/sudoku-bench/sudostat/genfmt"
	"github.com/sudoku-bench/sudostat/genmath"
	"github.com/sudoku-bench/sudostat/genproc"
)

// A SolveSummary accumulates Solve-format records into per-strategy
// statistics: overall, broken down by solution count, and further
// broken down by step count.
type SolveSummary struct {
	schema     *genfmt.Schema
	strategies []*solveStrategy
}

type solveStrategy struct {
	steps   genmath.RunningStat // steps per puzzle
	perStep genmath.RunningStat // micros per step
	total   genmath.RunningStat // micros per puzzle

	// bySolutions groups the same three statistics by solution
	// count; byStepCount nests one level further, grouping solve
	// time by solution count and then step count.
	bySolutions *genproc.Group
	byStepCount *genproc.Group
}

// NewSolveSummary returns a summary for records matching schema,
// which must be a Solve schema.
func NewSolveSummary(schema *genfmt.Schema) *SolveSummary {
	strategies := make([]*solveStrategy, schema.Groups())
	for i := range strategies {
		strategies[i] = &solveStrategy{
			bySolutions: genproc.New(),
			byStepCount: genproc.New(),
		}
	}
	return &SolveSummary{schema: schema, strategies: strategies}
}

// Add fans one record out into every grouping it updates. Each
// strategy's measurement lands in the strategy's overall statistics,
// its by-solutions breakdown, and its by-solutions-by-steps
// breakdown.
func (s *SolveSummary) Add(r *genfmt.SolveResult) {
	solKey := strconv.Itoa(r.Solutions)
	for i, run := range r.Strategies {
		st := s.strategies[i]
		steps := float64(run.Steps)

		st.steps.Observe(steps)
		st.perStep.Observe(run.MicrosPerStep())
		st.total.Observe(run.Micros)

		bySol := st.bySolutions.At(solKey)
		bySol.Observe("steps", steps)
		bySol.Observe("per_step", run.MicrosPerStep())
		bySol.Observe("overall", run.Micros)

		st.byStepCount.At(solKey, strconv.Itoa(run.Steps)).Observe("time", run.Micros)
	}
}

// A SolveReport is the assembled document for a Solve run.
type SolveReport struct {
	Metadata
	Strategies []SolveStrategy
}

// A SolveStrategy summarizes one solving strategy.
type SolveStrategy struct {
	Name string

	Steps   *genmath.RunningStat // steps per puzzle
	PerStep *genmath.RunningStat // micros per step
	Total   *genmath.RunningStat // micros per puzzle

	// BySolutions breaks the strategy down by solution count,
	// ascending.
	BySolutions []SolutionBreakdown
}

// A SolutionBreakdown summarizes one strategy's behavior on puzzles
// with a given number of solutions.
type SolutionBreakdown struct {
	Solutions int

	Steps   *genmath.RunningStat
	PerStep *genmath.RunningStat
	Overall *genmath.RunningStat

	// BySteps breaks solve time down by step count, ascending.
	BySteps []StepBucket
}

// A StepBucket is the solve-time statistic for one step count.
type StepBucket struct {
	Steps int
	Time  *genmath.RunningStat
}

// Report assembles the populated groupings into a document. It does
// not modify the summary; assembling twice yields identical
// documents.
func (s *SolveSummary) Report(when time.Time) *SolveReport {
	rep := &SolveReport{Metadata: Metadata{When: when}}
	if len(s.strategies) > 0 {
		rep.Count = s.strategies[0].total.Count()
	}
	for i, st := range s.strategies {
		out := SolveStrategy{
			Name:    s.schema.Labels[i],
			Steps:   &st.steps,
			PerStep: &st.perStep,
			Total:   &st.total,
		}
		for _, solKey := range st.bySolutions.Keys(genproc.Num) {
			node := st.bySolutions.Lookup(solKey)
			sol, _ := strconv.Atoi(solKey)
			b := SolutionBreakdown{
				Solutions: sol,
				Steps:     node.Peek("steps"),
				PerStep:   node.Peek("per_step"),
				Overall:   node.Peek("overall"),
			}
			stepsNode := st.byStepCount.Lookup(solKey)
			for _, stepKey := range stepsNode.Keys(genproc.Num) {
				n, _ := strconv.Atoi(stepKey)
				b.BySteps = append(b.BySteps, StepBucket{
					Steps: n,
					Time:  stepsNode.Lookup(stepKey).Peek("time"),
				})
			}
			out.BySolutions = append(out.BySolutions, b)
		}
		rep.Strategies = append(rep.Strategies, out)
	}
	return rep
}
