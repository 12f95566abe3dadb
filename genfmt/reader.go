// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genfmt reads the tab-separated log formats written by the
// Sudoku benchmark harnesses.
//
// Every recognized file starts with a marker line beginning
// "Generating", followed by a tab-separated column header. The column
// names determine the dynamic schema: the number of repeated column
// groups in the body and their labels. The reader discovers the
// schema once and then yields one typed record per body line.
//
// Parsing is strict. A body line with the wrong number of fields or a
// malformed number stops the reader; there is no skip-and-continue,
// so a run never produces a summary from partially read input.
package genfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads one log file of a fixed Kind.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, Result after each successful Scan, and Err once at the end.
// The Reader retains ownership of the records it returns; a caller
// that needs to keep one across Scan calls must Clone it.
type Reader struct {
	s        *bufio.Scanner
	kind     Kind
	fileName string
	line     int

	schema *Schema
	err    error
	rec    Record

	solve    SolveResult
	gen      GenResult
	improper ImproperResult
}

// A SyntaxError reports a malformed body line. Any SyntaxError is
// fatal to the run that encountered it.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader that parses r as a log of the given
// kind. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, kind Kind) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{
		s:        bufio.NewScanner(r),
		kind:     kind,
		fileName: fileName,
	}
}

// Schema returns the schema discovered from the input's header,
// reading the header first if no record has been read yet.
func (r *Reader) Schema() (*Schema, error) {
	if r.schema == nil && r.err == nil {
		r.readHeader()
	}
	if r.schema == nil {
		return nil, r.err
	}
	return r.schema, nil
}

// Scan advances the reader to the next record and reports whether one
// was read. It returns false at end of input and on the first error;
// the caller should then use Err to distinguish the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.schema == nil {
		r.readHeader()
		if r.err != nil {
			return false
		}
	}
	line, ok := r.nextLine()
	if !ok {
		return false
	}

	var err *SyntaxError
	switch r.kind {
	case Solve:
		err = r.parseSolve(line)
		r.rec = &r.solve
	case Generate:
		err = r.parseGenerate(line)
		r.rec = &r.gen
	case Improper:
		err = r.parseImproper(line)
		r.rec = &r.improper
	}
	if err != nil {
		r.err = err
		return false
	}
	return true
}

// Result returns the record read by the last successful call to Scan.
// The record is only valid until the next call to Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the error that stopped Scan, if any. It returns a
// *SchemaError if no recognizable header was found, a *SyntaxError
// for a malformed body line, or an I/O error from the underlying
// reader.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) readHeader() {
	marker, ok := r.nextLine()
	if !ok {
		if r.err == nil {
			r.err = &SchemaError{r.fileName, r.line, "no header lines found"}
		}
		return
	}
	header, ok := r.nextLine()
	if !ok {
		if r.err == nil {
			r.err = &SchemaError{r.fileName, r.line, "missing column header"}
		}
		return
	}
	schema, err := parseSchema(r.kind, marker, header, r.fileName)
	if err != nil {
		r.err = err
		return
	}
	r.schema = schema
}

// nextLine returns the next input line. At end of input it returns
// ok=false, setting r.err if the scanner failed.
func (r *Reader) nextLine() (string, bool) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		return "", false
	}
	r.line++
	return r.s.Text(), true
}

func (r *Reader) syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// splitFields splits line on tabs and validates the field count
// against the schema.
func (r *Reader) splitFields(line string) ([]string, *SyntaxError) {
	f := strings.Split(line, "\t")
	if len(f) != r.schema.Columns() {
		return nil, r.syntaxErrorf("got %d fields, want %d: %q", len(f), r.schema.Columns(), line)
	}
	return f, nil
}

func (r *Reader) parseInt(field, what string) (int, *SyntaxError) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, r.syntaxErrorf("parsing %s: %q is not an integer", what, field)
	}
	return v, nil
}

func (r *Reader) parseFloat(field, what string) (float64, *SyntaxError) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, r.syntaxErrorf("parsing %s: %q is not a number", what, field)
	}
	return v, nil
}

func (r *Reader) parseSolve(line string) *SyntaxError {
	f, err := r.splitFields(line)
	if err != nil {
		return err
	}
	res := &r.solve
	res.fileName, res.line = r.fileName, r.line
	res.Start, res.Seed = f[0], f[2]
	if res.GenMicros, err = r.parseFloat(f[1], "generation micros"); err != nil {
		return err
	}
	if res.Solutions, err = r.parseInt(f[3], "solution count"); err != nil {
		return err
	}
	res.Strategies = res.Strategies[:0]
	base := r.schema.BaseColumns()
	for i := 0; i < r.schema.Groups(); i++ {
		var run StrategyRun
		if run.Steps, err = r.parseInt(f[base+2*i], "step count"); err != nil {
			return err
		}
		if run.Micros, err = r.parseFloat(f[base+2*i+1], "solve micros"); err != nil {
			return err
		}
		res.Strategies = append(res.Strategies, run)
	}
	return nil
}

func (r *Reader) parseGenerate(line string) *SyntaxError {
	f, err := r.splitFields(line)
	if err != nil {
		return err
	}
	res := &r.gen
	res.fileName, res.line = r.fileName, r.line
	res.Symmetry, res.Seed = f[0], f[1]
	res.Generators = res.Generators[:0]
	base := r.schema.BaseColumns()
	for i := 0; i < r.schema.Groups(); i++ {
		var run GeneratorRun
		if run.Clues, err = r.parseInt(f[base+2*i], "clue count"); err != nil {
			return err
		}
		if run.Micros, err = r.parseFloat(f[base+2*i+1], "generation micros"); err != nil {
			return err
		}
		res.Generators = append(res.Generators, run)
	}
	return nil
}

func (r *Reader) parseImproper(line string) *SyntaxError {
	f, err := r.splitFields(line)
	if err != nil {
		return err
	}
	res := &r.improper
	res.fileName, res.line = r.fileName, r.line
	res.Symmetry = f[0]
	if res.Solutions, err = r.parseInt(f[1], "solution count"); err != nil {
		return err
	}
	if res.Holes, err = r.parseInt(f[2], "hole count"); err != nil {
		return err
	}
	return nil
}
