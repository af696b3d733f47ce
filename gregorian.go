// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import "time"

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the
// proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func cumulativeForYear(year int) []int {
	if IsLeap(year) {
		return dayOfYearLeap
	}
	return dayOfYear
}

// daysBeforeYear returns the number of days from 0001-01-01 to
// January 1st of year.
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// ordinal returns the number of days since 0001-01-01 for the given
// date, which is assumed to be valid.
func ordinal(year int, month time.Month, day int) int {
	return daysBeforeYear(year) + cumulativeForYear(year)[month-1] + day - 1
}

// fromOrdinal is the inverse of ordinal for n >= 0.
func fromOrdinal(n int) (year int, month time.Month, day int) {
	n400, n := n/daysPer400Years, n%daysPer400Years
	n100, n := n/daysPer100Years, n%daysPer100Years
	n4, n := n/daysPer4Years, n%daysPer4Years
	n1, n := n/365, n%365
	year = n400*400 + n100*100 + n4*4 + n1 + 1
	if n1 == 4 || n100 == 4 {
		// Last day of a leap year that closes a 4 or 400 year cycle.
		return year - 1, time.December, 31
	}
	cumulative := cumulativeForYear(year)
	m := 11
	for cumulative[m] > n {
		m--
	}
	return year, time.Month(m + 1), n - cumulative[m] + 1
}

// isoWeekday returns 1 for Monday through 7 for Sunday, 0001-01-01
// being a Monday.
func isoWeekday(n int) int {
	return n%7 + 1
}
