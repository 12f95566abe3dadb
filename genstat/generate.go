// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"time"

	"github.com/sudoku-bench/sudostat/genfmt"
	"github.com/sudoku-bench/sudostat/genmath"
	"github.com/sudoku-bench/sudostat/genproc"
)

// A GenSummary accumulates Generate-format records into per-generator
// and per-symmetry statistics. Generation times are reported in
// milliseconds.
//
// Because every record carries one measurement per generator, the
// summary also maintains the pairwise comparison matrix: for each
// ordered generator pair (n, m), the running statistics of
// value(n) - value(m). The diagonal (n, n) is included; its mean and
// variance are exactly zero, which makes the matrix uniform to
// render.
type GenSummary struct {
	schema     *genfmt.Schema
	generators []*genAggRow

	// symmetries groups overall statistics by symmetry name, with
	// one child per generator label.
	symmetries *genproc.Group
}

type genAgg struct {
	time  genmath.RunningStat // millis
	clues genmath.RunningStat
}

type genAggRow struct {
	overall genAgg
	diff    []genAgg // indexed by the other generator
}

// NewGenSummary returns a summary for records matching schema, which
// must be a Generate schema.
func NewGenSummary(schema *genfmt.Schema) *GenSummary {
	n := schema.Groups()
	generators := make([]*genAggRow, n)
	for i := range generators {
		generators[i] = &genAggRow{diff: make([]genAgg, n)}
	}
	return &GenSummary{
		schema:     schema,
		generators: generators,
		symmetries: genproc.New(),
	}
}

// Add fans one record out into every grouping it updates: the
// record's symmetry (overall and per generator), each generator's
// overall statistics, and each ordered generator pair's difference
// cell.
func (s *GenSummary) Add(r *genfmt.GenResult) {
	n := len(r.Generators)
	millis := make([]float64, n)
	clues := make([]float64, n)
	for i, run := range r.Generators {
		millis[i] = run.Micros / 1000
		clues[i] = float64(run.Clues)
	}

	sym := s.symmetries.At(r.Symmetry)
	for i := 0; i < n; i++ {
		sym.Observe("time", millis[i])
		sym.Observe("clues", clues[i])
		byGen := sym.At(s.schema.Labels[i])
		byGen.Observe("time", millis[i])
		byGen.Observe("clues", clues[i])

		row := s.generators[i]
		row.overall.time.Observe(millis[i])
		row.overall.clues.Observe(clues[i])
		for j := 0; j < n; j++ {
			row.diff[j].time.Observe(millis[i] - millis[j])
			row.diff[j].clues.Observe(clues[i] - clues[j])
		}
	}
}

// A GenReport is the assembled document for a Generate run.
type GenReport struct {
	Metadata

	// Generators appear in schema order; Symmetries sort by their
	// raw identifier. Both carry display names.
	Generators []GenGroup
	Symmetries []GenGroup
}

// A GenGroup summarizes one generator or one symmetry class.
type GenGroup struct {
	Name string

	Time  *genmath.RunningStat // millis
	Clues *genmath.RunningStat

	// ByGenerator holds one cell per generator, in schema order.
	// For a generator group the cells are pairwise differences
	// against the named generator; for a symmetry group they are
	// that generator's statistics within the symmetry.
	ByGenerator []GenCell
}

// A GenCell is one (time, clues) statistic pair within a group.
type GenCell struct {
	Name  string
	Time  *genmath.RunningStat
	Clues *genmath.RunningStat
}

// Report assembles the populated groupings into a document. It does
// not modify the summary.
func (s *GenSummary) Report(when time.Time) *GenReport {
	rep := &GenReport{Metadata: Metadata{When: when}}
	if len(s.generators) > 0 {
		rep.Count = s.generators[0].overall.time.Count()
	}

	for i, row := range s.generators {
		out := GenGroup{
			Name:  DisplayName(s.schema.Labels[i]),
			Time:  &row.overall.time,
			Clues: &row.overall.clues,
		}
		for j := range row.diff {
			out.ByGenerator = append(out.ByGenerator, GenCell{
				Name:  DisplayName(s.schema.Labels[j]),
				Time:  &row.diff[j].time,
				Clues: &row.diff[j].clues,
			})
		}
		rep.Generators = append(rep.Generators, out)
	}

	for _, id := range s.symmetries.Keys(genproc.Alpha) {
		node := s.symmetries.Lookup(id)
		out := GenGroup{
			Name:  DisplayName(id),
			Time:  node.Peek("time"),
			Clues: node.Peek("clues"),
		}
		// Walk the schema's generators, not the observed children,
		// so a symmetry that never saw some generator still shows a
		// zero cell for it.
		for _, label := range s.schema.Labels {
			byGen := node.Lookup(label)
			out.ByGenerator = append(out.ByGenerator, GenCell{
				Name:  DisplayName(label),
				Time:  byGen.Peek("time"),
				Clues: byGen.Peek("clues"),
			})
		}
		rep.Symmetries = append(rep.Symmetries, out)
	}
	return rep
}
