// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genstat reduces parsed benchmark log records into report
// documents.
//
// Each log format has a summary builder that consumes records one at
// a time, fanning every record out into all the groupings it updates,
// and a Report method that assembles the populated groupings into an
// ordered, read-only document. The documents are what the HTML
// renderer consumes; they carry running statistics rather than raw
// samples, so a summary's size depends on the number of distinct
// groupings, not on the number of log records.
package genstat

import (
	"strings"
	"time"
)

// Metadata describes one summarization run. It appears at the top
// level of every report document.
type Metadata struct {
	// Count is the total number of records summarized.
	Count int

	// When is the generation timestamp supplied by the caller,
	// conventionally the input file's modification time.
	When time.Time
}

// DisplayName converts an identifier such as "mirror_image" into a
// human-readable label such as "Mirror Image": underscore-separated
// words, each capitalized.
func DisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
