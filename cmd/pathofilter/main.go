// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pathofilter reads solve-format benchmark lines and keeps only the
// pathological ones: puzzles that were not just sporadically slow for
// one strategy but consistently slow across many.
//
// Usage:
//
//	pathofilter [file.log]
//
// With no argument it reads from stdin. A leading "Generating" marker
// line and its column header are skipped when present; otherwise the
// first line is treated as data, so already-filtered streams can be
// filtered again.
//
// A line is kept when slowCount * avgSlow > 500, where a strategy is
// slow on the puzzle if it took more than 32 steps and avgSlow is the
// mean step count of the slow strategies. Kept lines are written to
// stdout as "avgSlow, slowCount, start, genMicros, seed", sorted with
// the worst offenders first.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pathofilter [file.log]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// slowSteps is the step count above which a strategy is considered
// slow on a puzzle.
const slowSteps = 32

// keepScore is the slowCount*avgSlow threshold above which a line is
// pathological.
const keepScore = 500

// leadColumns is the number of leading fields in a solve-format body
// line; step counts follow at every other field.
const leadColumns = 4

type pathoLine struct {
	avgSlow   float64
	slowCount int
	lead      []string // the leading fields minus the solution count
}

func main() {
	log.SetPrefix("pathofilter: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
	}

	in := os.Stdin
	name := "<stdin>"
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in, name = f, flag.Arg(0)
	}

	kept, err := filter(in, name)
	if err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, l := range kept {
		fmt.Fprintf(w, "%g\t%d\t%s\n", l.avgSlow, l.slowCount, strings.Join(l.lead, "\t"))
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// filter scans solve-format lines from r and returns the pathological
// ones, worst first. The first malformed line is a fatal error.
func filter(r io.Reader, fileName string) ([]pathoLine, error) {
	s := bufio.NewScanner(r)
	lineNo := 0
	sawFirst := false
	var kept []pathoLine

	for s.Scan() {
		lineNo++
		line := s.Text()
		if !sawFirst {
			sawFirst = true
			if strings.HasPrefix(line, "Generating") {
				// Consume the column header along with the marker.
				if s.Scan() {
					lineNo++
				}
				continue
			}
		}

		fields := strings.Split(line, "\t")
		if len(fields) < leadColumns+2 || len(fields)%2 != 0 {
			return nil, fmt.Errorf("%s:%d: got %d fields, want %d or more step/micros pairs: %q",
				fileName, lineNo, len(fields), leadColumns+2, line)
		}

		slowCount, slowSum := 0, 0
		for i := leadColumns; i < len(fields); i += 2 {
			steps, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: parsing step count: %q is not an integer", fileName, lineNo, fields[i])
			}
			if steps > slowSteps {
				slowCount++
				slowSum += steps
			}
		}
		if slowCount == 0 {
			continue
		}
		avgSlow := float64(slowSum) / float64(slowCount)
		if float64(slowCount)*avgSlow > keepScore {
			kept = append(kept, pathoLine{avgSlow, slowCount, append([]string(nil), fields[:leadColumns-1]...)})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, lineNo, err)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].avgSlow != kept[j].avgSlow {
			return kept[i].avgSlow > kept[j].avgSlow
		}
		return kept[i].slowCount > kept[j].slowCount
	})
	return kept, nil
}
