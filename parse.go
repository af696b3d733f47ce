// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"regexp"
	"strconv"
	"strings"
)

// The accepted forms. A separator after the year requires one before the
// day and runs of digits without separators have fixed widths, so that a
// missing digit can never be absorbed by a neighbouring field.
var weekDateForms = []*regexp.Regexp{
	// 1997-W14-6, 1997-14-6, 1997 W14 6, 1997-W1-6
	regexp.MustCompile(`^([0-9]{1,4})[- ][Ww]?([0-9]{1,2})[- ]([0-9])$`),
	// 1997W14-6, 1997W1 6
	regexp.MustCompile(`^([0-9]{1,4})[Ww]([0-9]{1,2})[- ]([0-9])$`),
	// 1997W146
	regexp.MustCompile(`^([0-9]{1,4})[Ww]([0-9]{2})([0-9])$`),
	// 1997146
	regexp.MustCompile(`^([0-9]{4})([0-9]{2})([0-9])$`),
}

func matchWeekDate(text string) []string {
	for _, re := range weekDateForms {
		if m := re.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

// Parse parses text in the forms YYYY-Www-D (1997-W14-6), YYYY-WW-D
// (1997-14-6) as well as variants with spaces as separators (1997 W14 6)
// or without separators (1997W146, 1997146). A separator after the year
// requires one before the day. Without separators the week must have two
// digits and, unless followed by a W, the year must have four. Leading and
// trailing white space is ignored.
// Any failure, whether due to malformed text or to an invalid week date,
// results in a *ParseError whose message is localized according to the
// culture specified via WithCulture.
func Parse(text string, opts ...Option) (WeekDate, error) {
	if wd, ok := parse(text); ok {
		return wd, nil
	}
	o := newOptions(opts)
	return MinValue, &ParseError{
		Text:    text,
		Message: localize(o.culture, msgInvalidWeekDate),
	}
}

// TryParse is like Parse but returns false rather than an error, in which
// case the returned WeekDate is MinValue.
func TryParse(text string, opts ...Option) (WeekDate, bool) {
	return parse(text)
}

// IsValid returns true if text can be parsed as a week date.
func IsValid(text string) bool {
	_, ok := parse(text)
	return ok
}

func parse(text string) (WeekDate, bool) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return MinValue, false
	}
	m := matchWeekDate(text)
	if m == nil {
		return MinValue, false
	}
	var c Components
	// The regexps guarantee that each group is a short run of digits.
	c.Year, _ = strconv.Atoi(m[1])
	c.Week, _ = strconv.Atoi(m[2])
	c.Day, _ = strconv.Atoi(m[3])
	n, err := c.Validate()
	if err != nil {
		return MinValue, false
	}
	return WeekDate{days: n}, true
}
