// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import "time"

const (
	minYear = 1
	maxYear = 9999
	maxWeek = 53
	maxDay  = 7

	minOrdinal = 0
	maxOrdinal = 3652058 // 9999-12-31
)

func p(year int) int {
	return (year + year/4 - year/100 + year/400) % 7
}

// WeeksInYear returns the number of ISO weeks, 52 or 53, in the given
// week-year.
func WeeksInYear(year int) int {
	if p(year) == 4 || p(year-1) == 3 {
		return 53
	}
	return 52
}

// week1Monday returns the ordinal of the Monday that starts week 1 of
// the given week-year, ie. the Monday on or before January 4th.
func week1Monday(year int) int {
	jan4 := ordinal(year, time.January, 4)
	return jan4 - (isoWeekday(jan4) - 1)
}

// toOrdinal converts a week date whose components are within their
// nominal ranges to an ordinal. It fails if the week does not exist in
// the week-year or if the resulting day is outside of the supported
// range.
func toOrdinal(year, week, day int) (int, error) {
	if week > WeeksInYear(year) {
		return 0, &UnrepresentableError{Year: year, Week: week, Day: day}
	}
	n := week1Monday(year) + (week-1)*7 + day - 1
	if n < minOrdinal || n > maxOrdinal {
		return 0, &UnrepresentableError{Year: year, Week: week, Day: day}
	}
	return n, nil
}

// toWeekDate converts an ordinal to its week date. The week-year is the
// Gregorian year that contains the Thursday of the same week.
func toWeekDate(n int) (year, week, day int) {
	day = isoWeekday(n)
	thursday := n - day + 4
	year, _, _ = fromOrdinal(thursday)
	week = (thursday-daysBeforeYear(year))/7 + 1
	return
}
