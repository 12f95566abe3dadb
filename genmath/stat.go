// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genmath provides running statistics over series of
// benchmark measurements.
//
// Unlike batch statistics, a RunningStat never retains the values it
// has seen, so the memory used by a summarization run is bounded by
// the number of distinct groupings rather than the number of log
// records.
package genmath

import "math"

// A RunningStat accumulates the count, mean, and variance of a series
// of observations.
//
// It uses Welford's single-pass update, which remains numerically
// stable on large-magnitude, low-variance series where the naive
// sum-of-squares formula loses precision.
//
// The zero value is an empty statistic ready for use.
type RunningStat struct {
	n    int
	mean float64
	ssd  float64 // sum of squared deviations from the current mean
}

// Observe adds x to the statistic.
//
// Any finite value is accepted. Non-finite values are not guarded
// against and propagate through the arithmetic.
func (s *RunningStat) Observe(x float64) {
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	// The second factor uses the updated mean.
	s.ssd += delta * (x - s.mean)
}

// Count returns the number of observations.
func (s *RunningStat) Count() int {
	return s.n
}

// Mean returns the arithmetic mean of the observations, or 0 if there
// are none.
func (s *RunningStat) Mean() float64 {
	return s.mean
}

// Variance returns the sample variance (n-1 divisor) of the
// observations. With fewer than two observations it is defined as 0.
func (s *RunningStat) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.ssd / float64(s.n-1)
}

// StdDev returns the sample standard deviation of the observations.
func (s *RunningStat) StdDev() float64 {
	return math.Sqrt(s.Variance())
}
