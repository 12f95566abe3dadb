// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genstore archives assembled summaries in a local SQLite
// database, so statistics can be compared across benchmark runs
// without keeping the raw logs around.
//
// Each archived run is a set of cells. A cell is one leaf statistic
// of a report, addressed by its grouping path rendered as a
// slash-separated string (for example
// "strategy/Heuristic/solutions/2/steps").
package genstore

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sudoku-bench/sudostat/genmath"
	"github.com/sudoku-bench/sudostat/genstat"
)

// A DB is an open summary archive. It is safe for sequential use by
// one summarization run.
type DB struct {
	sql *sql.DB

	insertRun  *sql.Stmt
	insertCell *sql.Stmt
}

var createStmts = []string{
	`CREATE TABLE IF NOT EXISTS Runs (
		RunID INTEGER PRIMARY KEY AUTOINCREMENT,
		Kind TEXT NOT NULL,
		Source TEXT NOT NULL,
		Generated TIMESTAMP NOT NULL,
		RecordCount INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS Cells (
		RunID INTEGER NOT NULL,
		Path TEXT NOT NULL,
		Stat TEXT NOT NULL,
		Count INTEGER NOT NULL,
		Mean REAL NOT NULL,
		StdDev REAL NOT NULL,
		PRIMARY KEY (RunID, Path, Stat),
		FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON DELETE CASCADE
	);`,
}

// Open opens (creating if necessary) the archive at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	for _, q := range createStmts {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating archive tables: %w", err)
		}
	}
	if d.insertRun, err = db.Prepare(`INSERT INTO Runs (Kind, Source, Generated, RecordCount) VALUES (?, ?, ?, ?)`); err != nil {
		db.Close()
		return nil, err
	}
	if d.insertCell, err = db.Prepare(`INSERT INTO Cells (RunID, Path, Stat, Count, Mean, StdDev) VALUES (?, ?, ?, ?, ?, ?)`); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the archive.
func (d *DB) Close() error {
	return d.sql.Close()
}

// A Cell is one leaf statistic to archive.
type Cell struct {
	Path  string
	Stat  string
	Count int
	Mean  float64

	StdDev float64
}

func cell(path, stat string, s *genmath.RunningStat) Cell {
	return Cell{Path: path, Stat: stat, Count: s.Count(), Mean: s.Mean(), StdDev: s.StdDev()}
}

// SaveRun archives one summarization run. kind names the import
// format, source the input file. All cells are written in a single
// transaction; either the whole run is archived or none of it is.
func (d *DB) SaveRun(kind, source string, when time.Time, count int, cells []Cell) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Stmt(d.insertRun).Exec(kind, source, when, count)
	if err != nil {
		return fmt.Errorf("archiving run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	insert := tx.Stmt(d.insertCell)
	for _, c := range cells {
		if _, err := insert.Exec(runID, c.Path, c.Stat, c.Count, c.Mean, c.StdDev); err != nil {
			return fmt.Errorf("archiving cell %s/%s: %w", c.Path, c.Stat, err)
		}
	}
	return tx.Commit()
}

// SolveCells flattens a solve report into archive cells.
func SolveCells(rep *genstat.SolveReport) []Cell {
	var cells []Cell
	for _, st := range rep.Strategies {
		base := "strategy/" + st.Name
		cells = append(cells,
			cell(base, "steps", st.Steps),
			cell(base, "per_step", st.PerStep),
			cell(base, "total", st.Total),
		)
		for _, b := range st.BySolutions {
			p := base + "/solutions/" + strconv.Itoa(b.Solutions)
			cells = append(cells,
				cell(p, "steps", b.Steps),
				cell(p, "per_step", b.PerStep),
				cell(p, "overall", b.Overall),
			)
			for _, sb := range b.BySteps {
				cells = append(cells, cell(p+"/steps/"+strconv.Itoa(sb.Steps), "time", sb.Time))
			}
		}
	}
	return cells
}

// GenCells flattens a generator report into archive cells.
func GenCells(rep *genstat.GenReport) []Cell {
	var cells []Cell
	flatten := func(base string, groups []genstat.GenGroup, pairwise bool) {
		for _, g := range groups {
			p := base + "/" + g.Name
			cells = append(cells, cell(p, "time", g.Time), cell(p, "clues", g.Clues))
			for _, c := range g.ByGenerator {
				sub := p + "/generator/" + c.Name
				if pairwise {
					sub = p + "/vs/" + c.Name
				}
				cells = append(cells, cell(sub, "time", c.Time), cell(sub, "clues", c.Clues))
			}
		}
	}
	flatten("generator", rep.Generators, true)
	flatten("symmetry", rep.Symmetries, false)
	return cells
}

// ImproperCells flattens an improper report into archive cells.
func ImproperCells(rep *genstat.ImproperReport) []Cell {
	var cells []Cell
	group := func(base string, g genstat.ImproperGroup) {
		cells = append(cells, cell(base, "solns", g.Solns), cell(base, "holes", g.Holes))
		for _, c := range g.BySolutions {
			p := base + "/solutions/" + strconv.Itoa(c.Solutions)
			cells = append(cells, cell(p, "solns", c.Solns), cell(p, "holes", c.Holes))
		}
	}
	group("all", rep.All)
	for _, g := range rep.Symmetries {
		group("symmetry/"+g.Name, g)
	}
	return cells
}
