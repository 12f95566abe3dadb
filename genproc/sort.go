// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genproc

import (
	"sort"
	"strconv"
	"strings"
)

// An Order is a comparison function over grouping keys. It returns a
// negative value if a sorts before b, a positive value if a sorts
// after b, and 0 if the keys are unordered relative to each other.
type Order func(a, b string) int

// Alpha orders keys lexicographically.
func Alpha(a, b string) int {
	return strings.Compare(a, b)
}

// Num orders keys numerically. Keys that do not parse as numbers sort
// after keys that do, lexicographically among themselves.
func Num(a, b string) int {
	aa, errA := strconv.ParseFloat(a, 64)
	bb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if aa < bb {
			return -1
		}
		if aa > bb {
			return 1
		}
		// Numerically equal but possibly distinct spellings;
		// fall back to a comparison that is only 0 for equal
		// strings so the order stays deterministic.
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

func sortKeys(keys []string, order Order) {
	sort.Slice(keys, func(i, j int) bool {
		return order(keys[i], keys[j]) < 0
	})
}
