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

// An ImproperSummary accumulates Improper-format records: solution
// and hole counts, overall and per symmetry class, each broken down
// by solution count.
type ImproperSummary struct {
	schema     *genfmt.Schema
	all        *genproc.Group
	symmetries *genproc.Group
}

// NewImproperSummary returns a summary for records matching schema,
// which must be an Improper schema.
func NewImproperSummary(schema *genfmt.Schema) *ImproperSummary {
	return &ImproperSummary{
		schema:     schema,
		all:        genproc.New(),
		symmetries: genproc.New(),
	}
}

// Add fans one record out into the overall grouping and the record's
// symmetry grouping, each at the top level and under the record's
// solution count.
func (s *ImproperSummary) Add(r *genfmt.ImproperResult) {
	solKey := strconv.Itoa(r.Solutions)
	for _, g := range []*genproc.Group{s.all, s.symmetries.At(r.Symmetry)} {
		g.Observe("solns", float64(r.Solutions))
		g.Observe("holes", float64(r.Holes))
		bySol := g.At(solKey)
		bySol.Observe("solns", float64(r.Solutions))
		bySol.Observe("holes", float64(r.Holes))
	}
}

// An ImproperReport is the assembled document for an Improper run.
type ImproperReport struct {
	Metadata

	// Marker is the raw marker line from the input, which describes
	// the generation parameters.
	Marker string

	All        ImproperGroup
	Symmetries []ImproperGroup // sorted by symmetry identifier
}

// An ImproperGroup summarizes solution and hole counts for one slice
// of the input (everything, or one symmetry class).
type ImproperGroup struct {
	Name string

	Solns *genmath.RunningStat
	Holes *genmath.RunningStat

	// BySolutions always has exactly MaxSolutions cells, for
	// solution counts 1 through the schema's declared maximum.
	// Counts never observed carry zero statistics.
	BySolutions []ImproperCell
}

// An ImproperCell is the statistic pair for one solution count.
type ImproperCell struct {
	Solutions int
	Solns     *genmath.RunningStat
	Holes     *genmath.RunningStat
}

// Report assembles the populated groupings into a document. It does
// not modify the summary.
func (s *ImproperSummary) Report(when time.Time) *ImproperReport {
	rep := &ImproperReport{
		Metadata: Metadata{
			Count: s.all.Peek("solns").Count(),
			When:  when,
		},
		Marker: s.schema.Marker,
		All:    s.assembleGroup("All", s.all),
	}
	for _, id := range s.symmetries.Keys(genproc.Alpha) {
		rep.Symmetries = append(rep.Symmetries, s.assembleGroup(id, s.symmetries.Lookup(id)))
	}
	return rep
}

// assembleGroup walks every solution count the schema declares, not
// just the observed ones, so each group has the same fixed shape.
func (s *ImproperSummary) assembleGroup(name string, g *genproc.Group) ImproperGroup {
	out := ImproperGroup{
		Name:  name,
		Solns: g.Peek("solns"),
		Holes: g.Peek("holes"),
	}
	for sol := 1; sol <= s.schema.MaxSolutions; sol++ {
		bySol := g.Lookup(strconv.Itoa(sol))
		out.BySolutions = append(out.BySolutions, ImproperCell{
			Solutions: sol,
			Solns:     bySol.Peek("solns"),
			Holes:     bySol.Peek("holes"),
		})
	}
	return out
}
