// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genfmt

// A Record is a single body record read from a log file. It is a
// *SolveResult, a *GenResult, or an *ImproperResult, depending on the
// Reader's Kind.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file.
	Pos() (fileName string, line int)
}

var _ Record = (*SolveResult)(nil)
var _ Record = (*GenResult)(nil)
var _ Record = (*ImproperResult)(nil)

// A SolveResult is one record of the Solve format: one generated
// puzzle, solved once per strategy.
type SolveResult struct {
	// Start is the starting grid identifier.
	Start string

	// GenMicros is the time spent generating the puzzle, in
	// microseconds.
	GenMicros float64

	// Seed is the raw generator seed field.
	Seed string

	// Solutions is the number of distinct solutions of the puzzle.
	Solutions int

	// Strategies holds one measurement per solving strategy, in
	// schema label order.
	Strategies []StrategyRun

	fileName string
	line     int
}

// A StrategyRun is one strategy's measurement of one puzzle.
type StrategyRun struct {
	Steps  int     // discrete solving operations
	Micros float64 // elapsed solve time in microseconds
}

// MicrosPerStep returns the solve time divided by the step count. A
// zero-step solve counts as a single step.
func (r StrategyRun) MicrosPerStep() float64 {
	if r.Steps > 0 {
		return r.Micros / float64(r.Steps)
	}
	return r.Micros
}

func (r *SolveResult) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of the result that shares no state with r.
func (r *SolveResult) Clone() *SolveResult {
	r2 := *r
	r2.Strategies = append([]StrategyRun(nil), r.Strategies...)
	return &r2
}

// A GenResult is one record of the Generate format: one puzzle
// generated once per generator under a single symmetry.
type GenResult struct {
	// Symmetry is the symmetry class identifier.
	Symmetry string

	// Seed is the raw generator seed field.
	Seed string

	// Generators holds one measurement per generator, in schema
	// label order.
	Generators []GeneratorRun

	fileName string
	line     int
}

// A GeneratorRun is one generator's measurement of one puzzle.
type GeneratorRun struct {
	Clues  int     // clues in the generated puzzle
	Micros float64 // elapsed generation time in microseconds
}

func (r *GenResult) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of the result that shares no state with r.
func (r *GenResult) Clone() *GenResult {
	r2 := *r
	r2.Generators = append([]GeneratorRun(nil), r.Generators...)
	return &r2
}

// An ImproperResult is one record of the Improper format.
type ImproperResult struct {
	Symmetry  string
	Solutions int
	Holes     int

	fileName string
	line     int
}

func (r *ImproperResult) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of the result.
func (r *ImproperResult) Clone() *ImproperResult {
	r2 := *r
	return &r2
}
