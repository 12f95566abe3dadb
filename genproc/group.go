// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genproc provides the dynamic grouping structure the
// summarizers accumulate running statistics into.
//
// A grouping is a tree: each node holds leaf statistics keyed by stat
// name and child groups keyed by a categorical dimension value
// (symmetry name, solution count, step count, ...). Nodes are created
// lazily, on first observation along a path, and a given path always
// resolves to the same node, so repeated observations accumulate into
// one statistic. Because grouping paths are sparse and unknown until
// the data is read, the get-or-create contract is explicit here
// rather than implicit in a map's defaulting behavior.
package genproc

import "github.com/sudoku-bench/sudostat/genmath"

// A Group is one node of a lazily created, multi-dimensional
// grouping. The zero value is an empty group; New returns one for
// convenience.
//
// A Group is built by a single sequential aggregation pass and is
// only read afterward; it is not safe for concurrent use.
type Group struct {
	stats    map[string]*genmath.RunningStat
	children map[string]*Group
}

// New returns an empty group.
func New() *Group {
	return &Group{}
}

// At returns the nested group at the given key path, creating any
// missing levels along the way. At with no keys returns g itself.
func (g *Group) At(keys ...string) *Group {
	for _, key := range keys {
		child := g.children[key]
		if child == nil {
			if g.children == nil {
				g.children = make(map[string]*Group)
			}
			child = New()
			g.children[key] = child
		}
		g = child
	}
	return g
}

// Lookup returns the nested group at the given key path, or nil if
// any level of the path was never created. Lookup on a nil group
// returns nil, so lookups chain safely.
func (g *Group) Lookup(keys ...string) *Group {
	for _, key := range keys {
		if g == nil {
			return nil
		}
		g = g.children[key]
	}
	return g
}

// Stat returns the leaf statistic with the given name, creating an
// empty one on first use.
func (g *Group) Stat(name string) *genmath.RunningStat {
	s := g.stats[name]
	if s == nil {
		if g.stats == nil {
			g.stats = make(map[string]*genmath.RunningStat)
		}
		s = new(genmath.RunningStat)
		g.stats[name] = s
	}
	return s
}

// Observe adds v to the leaf statistic with the given name, creating
// it on first use.
func (g *Group) Observe(name string, v float64) {
	g.Stat(name).Observe(v)
}

// Peek returns the leaf statistic with the given name without
// modifying the group. If the statistic was never observed, or g is
// nil, Peek returns a fresh empty statistic, so absent grouping
// combinations read as zero rather than as an omission.
func (g *Group) Peek(name string) *genmath.RunningStat {
	if g != nil {
		if s := g.stats[name]; s != nil {
			return s
		}
	}
	return new(genmath.RunningStat)
}

// Len returns the number of child groups.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.children)
}

// Keys returns the child keys sorted by order. Map iteration order is
// not meaningful, so every walk of a grouping goes through Keys.
func (g *Group) Keys(order Order) []string {
	if g == nil {
		return nil
	}
	keys := make([]string, 0, len(g.children))
	for key := range g.children {
		keys = append(keys, key)
	}
	sortKeys(keys, order)
	return keys
}
