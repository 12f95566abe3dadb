// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// A Formatter renders the numbers in a report for one locale. The
// locale is chosen once, at startup, and passed in explicitly;
// nothing in this package consults process-global locale state.
type Formatter struct {
	p *message.Printer
}

// DefaultLocale is the locale used when the caller expresses no
// preference.
var DefaultLocale = language.AmericanEnglish

// NewFormatter returns a formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// ParseLocale resolves a BCP 47 tag such as "en-US" or "de".
func ParseLocale(s string) (language.Tag, error) {
	return language.Parse(s)
}

// Count formats an integer count with the locale's digit grouping.
func (f *Formatter) Count(n int) string {
	return f.p.Sprint(number.Decimal(n))
}

// Stat formats a statistic to five significant digits with the
// locale's digit grouping and decimal separator.
func (f *Formatter) Stat(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.Precision(5)))
}
