// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalPattern is the pattern used when Format is called with an
// empty pattern. It renders week dates as 1997-W14-6.
const CanonicalPattern = "yyyy-W-d"

// Formatter can be supplied via WithFormatter to take over formatting
// for some or all patterns. It is called before the default renderer
// and returns false if the default renderer should be used instead.
type Formatter interface {
	FormatWeekDate(pattern string, wd WeekDate, culture language.Tag) (string, bool)
}

// FormatterFunc is a function that implements Formatter.
type FormatterFunc func(pattern string, wd WeekDate, culture language.Tag) (string, bool)

// FormatWeekDate implements Formatter.
func (fn FormatterFunc) FormatWeekDate(pattern string, wd WeekDate, culture language.Tag) (string, bool) {
	return fn(pattern, wd, culture)
}

// Format renders wd according to pattern. The following case sensitive
// tokens are supported, with the longest match being used:
//
//	yyyy  week-year, zero padded to 4 digits
//	yy    week-year modulo 100, zero padded to 2 digits
//	y     week-year, unpadded
//	W     a literal W followed by the week, zero padded to 2 digits
//	w     week, unpadded
//	d     day of week, 1-7
//
// Longer runs of y are split from the left into the longest tokens, so
// yyy renders as yy followed by y (055 for year 5) and yyyyy as yyyy
// followed by y (19971997). Use a backslash to emit a literal y.
//
// A backslash causes the following character to be emitted literally and
// all other characters are emitted as is. An empty pattern is equivalent
// to CanonicalPattern. If a Formatter is supplied via WithFormatter it is
// consulted first.
func (wd WeekDate) Format(pattern string, opts ...Option) string {
	if len(opts) > 0 {
		o := newOptions(opts)
		if o.formatter != nil {
			if out, ok := o.formatter.FormatWeekDate(pattern, wd, o.culture); ok {
				return out
			}
		}
	}
	if len(pattern) == 0 {
		pattern = CanonicalPattern
	}
	year, week, day := toWeekDate(wd.days)
	var out strings.Builder
	out.Grow(len(pattern) + 8)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			out.WriteByte(pattern[i])
		case 'y':
			n := runLength(pattern[i:], 'y')
			switch {
			case n >= 4:
				writePadded(&out, year, 4)
				i += 3
			case n >= 2:
				writePadded(&out, year%100, 2)
				i++
			default:
				out.WriteString(strconv.Itoa(year))
			}
		case 'W':
			out.WriteByte('W')
			writePadded(&out, week, 2)
		case 'w':
			out.WriteString(strconv.Itoa(week))
		case 'd':
			out.WriteString(strconv.Itoa(day))
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

func runLength(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

func writePadded(out *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		out.WriteByte('0')
	}
	out.WriteString(s)
}
