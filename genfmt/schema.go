// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genfmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Kind identifies one of the recognized log formats.
type Kind int

const (
	// Solve is the solver benchmark format. Its repeated column
	// groups are (steps, micros) pairs, one per solving strategy,
	// identified by header columns ending in ":Num Steps". The four
	// leading fields are the start grid, the generation time in
	// microseconds, the generator seed, and the number of solutions.
	//
	// The recorded step count is used as-is; board construction is
	// not counted as a step in this format.
	Solve Kind = iota

	// Generate is the puzzle generator benchmark format. Its
	// repeated column groups are (clues, micros) pairs, one per
	// generator, identified by header columns ending in ":Num
	// Clues". The two leading fields are the symmetry name and the
	// generator seed.
	Generate

	// Improper is the improper-puzzle format. It has no repeated
	// groups: every body line is symmetry, number of solutions,
	// number of holes. The maximum number of solutions is declared
	// in the marker line.
	Improper
)

func (k Kind) String() string {
	switch k {
	case Solve:
		return "solve"
	case Generate:
		return "generate"
	case Improper:
		return "improper"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// groupSuffix returns the header column suffix that identifies one
// repeated column group, or "" if the kind has no repeated groups.
func (k Kind) groupSuffix() string {
	switch k {
	case Solve:
		return ":Num Steps"
	case Generate:
		return ":Num Clues"
	}
	return ""
}

// markerPrefix begins the first line of every recognized log file.
const markerPrefix = "Generating"

// improperMarkerRe extracts the maximum solution count from an
// improper marker line, e.g. "Generating 100 improper puzzles (3,
// 20) from seed 0x1234".
var improperMarkerRe = regexp.MustCompile(`\((\d+),`)

// A Schema describes the column layout of one log file. It is built
// once from the file's header lines, before any body line is parsed,
// and is read-only afterward.
type Schema struct {
	// Kind is the log format this schema was parsed for.
	Kind Kind

	// Labels are the ordered labels of the repeated column groups:
	// strategy names for Solve, generator names for Generate. It is
	// empty for Improper.
	Labels []string

	// MaxSolutions is the declared maximum number of solutions.
	// It is set only for Improper.
	MaxSolutions int

	// Marker is the raw marker line from the top of the file.
	Marker string
}

// Groups returns the number of repeated column groups in each body
// line.
func (s *Schema) Groups() int {
	return len(s.Labels)
}

// BaseColumns returns the number of leading fields before the
// repeated column groups.
func (s *Schema) BaseColumns() int {
	switch s.Kind {
	case Solve:
		return 4
	case Generate:
		return 2
	}
	return 3
}

// GroupColumns returns the width of one repeated column group.
func (s *Schema) GroupColumns() int {
	if s.Kind == Improper {
		return 0
	}
	return 2
}

// Columns returns the exact number of tab-separated fields every body
// line must have.
func (s *Schema) Columns() int {
	return s.BaseColumns() + s.Groups()*s.GroupColumns()
}

// A SchemaError reports that an input had no recognizable header for
// the requested format. It aborts a run before any record is
// processed.
type SchemaError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SchemaError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// parseSchema builds the Schema for format k from the marker line and
// the column header line. fileName is used in errors; it is purely
// diagnostic.
func parseSchema(k Kind, marker, header, fileName string) (*Schema, error) {
	if !strings.HasPrefix(marker, markerPrefix) {
		return nil, &SchemaError{fileName, 1, "no header lines found"}
	}
	s := &Schema{Kind: k, Marker: marker}

	if k == Improper {
		m := improperMarkerRe.FindStringSubmatch(marker)
		if m == nil {
			return nil, &SchemaError{fileName, 1, "marker line declares no maximum solution count"}
		}
		max, err := strconv.Atoi(m[1])
		if err != nil || max < 1 {
			return nil, &SchemaError{fileName, 1, fmt.Sprintf("bad maximum solution count %q", m[1])}
		}
		s.MaxSolutions = max
		return s, nil
	}

	// The group labels are the prefixes of the suffix-tagged header
	// columns. Leading columns carry no tag and are skipped, so a
	// header holding only the repeated groups still yields a schema.
	suffix := k.groupSuffix()
	for _, col := range strings.Split(header, "\t") {
		if strings.HasSuffix(col, suffix) {
			label, _, _ := strings.Cut(col, ":")
			s.Labels = append(s.Labels, label)
		}
	}
	if len(s.Labels) == 0 {
		return nil, &SchemaError{fileName, 2, fmt.Sprintf("no %q columns in header", suffix)}
	}
	return s, nil
}
