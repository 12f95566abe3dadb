// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gensum summarizes puzzle generator benchmark logs.
//
// Usage:
//
//	gensum [-locale tag] [-store db] <file.log>
//
// The input is a generate-format log: a "Generating" marker line, a
// column header naming one ":Num Clues"/":Micros" column pair per
// generator, and one body line per generated puzzle. Gensum computes
// running statistics of generation time (in milliseconds) and clue
// counts per generator and per symmetry class, plus the pairwise
// comparison of every generator against every other, and writes them
// next to the input as <file>-summary.html.
//
// Any malformed body line aborts the run without writing output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sudoku-bench/sudostat/genfmt"
	"github.com/sudoku-bench/sudostat/genstat"
	"github.com/sudoku-bench/sudostat/genstore"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gensum [options] <file.log>\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagLocale = flag.String("locale", "en-US", "format numbers for BCP 47 `locale`")
	flagStore  = flag.String("store", "", "also archive the summary in the SQLite database at `path`")
)

func main() {
	log.SetPrefix("gensum: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}
	tag, err := genstat.ParseLocale(*flagLocale)
	if err != nil {
		log.Fatalf("bad -locale: %v", err)
	}

	inPath := flag.Arg(0)
	f, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}

	r := genfmt.NewReader(f, inPath, genfmt.Generate)
	schema, err := r.Schema()
	if err != nil {
		log.Fatal(err)
	}
	sum := genstat.NewGenSummary(schema)
	for r.Scan() {
		sum.Add(r.Result().(*genfmt.GenResult))
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}

	rep := sum.Report(fi.ModTime())

	outPath := genstat.SummaryPath(inPath)
	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	renderer := genstat.NewRenderer(genstat.NewFormatter(tag))
	if err := renderer.RenderGenerate(out, rep); err != nil {
		out.Close()
		log.Fatal("writing summary: ", err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	if *flagStore != "" {
		db, err := genstore.Open(*flagStore)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.SaveRun("generate", inPath, rep.When, rep.Count, genstore.GenCells(rep)); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Summary written to %s\n", outPath)
}
