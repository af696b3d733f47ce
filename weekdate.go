// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package weekdate provides an immutable ISO 8601 week date type,
// WeekDate, representing a day as a week-year, a week of that year and
// a day of that week, for example 1997-W14-6 for Saturday, April 5th 1997.
//
// Week 1 of a week-year is the week that contains the year's first
// Thursday, so the week-year of days at the very start or end of a
// Gregorian year may differ from their Gregorian year. A WeekDate is
// stored as a day count from 0001-01-01 which guarantees that every
// value denotes a real day between 0001-01-01 (MinValue, the zero value)
// and 9999-12-31 (MaxValue) and that values order chronologically.
//
// WeekDate values may be created from their components:
//
//	wd, err := weekdate.New(1997, 14, 6)
//
// parsed from text in the forms 1997-W14-6, 1997-14-6 or 1997W146:
//
//	wd, err := weekdate.Parse("1997-W14-6")
//
// or converted from a time.Time or civil.Date. They are rendered using
// a simple pattern language, see WeekDate.Format, and support text,
// JSON, YAML, XML, binary (gob) and database/sql encodings.
package weekdate

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// WeekDate represents an ISO 8601 week date. The zero value is MinValue.
// WeekDate values are comparable using ==.
type WeekDate struct {
	days int // days since 0001-01-01
}

var (
	// MinValue is 0001-W01-1, ie. 0001-01-01.
	MinValue = WeekDate{}
	// MaxValue is 9999-W52-5, ie. 9999-12-31.
	MaxValue = WeekDate{days: maxOrdinal}
)

// New returns the WeekDate for the given week-year, week and day of week
// (1 for Monday through 7 for Sunday). A *RangeError is returned for the
// first of year, week or day that is outside of its nominal range and an
// *UnrepresentableError if the combination does not describe a day
// between 0001-01-01 and 9999-12-31.
func New(year, week, day int) (WeekDate, error) {
	n, err := Components{Year: year, Week: week, Day: day}.Validate()
	if err != nil {
		return MinValue, err
	}
	return WeekDate{days: n}, nil
}

// MustNew is like New but panics on error.
func MustNew(year, week, day int) WeekDate {
	wd, err := New(year, week, day)
	if err != nil {
		panic(err)
	}
	return wd
}

func fromGregorian(year int, month time.Month, day int) (WeekDate, error) {
	if year < minYear || year > maxYear ||
		month < time.January || month > time.December ||
		day < 1 || day > DaysInMonth(year, month) {
		return MinValue, &UnrepresentableError{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		}
	}
	return WeekDate{days: ordinal(year, month, day)}, nil
}

// FromTime returns the WeekDate for the calendar date of t in t's
// location. Times whose year is outside of [1,9999] result in an
// *UnrepresentableError.
func FromTime(t time.Time) (WeekDate, error) {
	return fromGregorian(t.Date())
}

// FromCivil returns the WeekDate for d, which must be a real day with a
// year in [1,9999]. Dates such as February 30th are rejected rather than
// normalized.
func FromCivil(d civil.Date) (WeekDate, error) {
	return fromGregorian(d.Year, d.Month, d.Day)
}

// Year returns the week-year, which may differ from the Gregorian year
// for days near the start or end of a year.
func (wd WeekDate) Year() int {
	y, _, _ := toWeekDate(wd.days)
	return y
}

// Week returns the week of the week-year, 1-52 or 1-53.
func (wd WeekDate) Week() int {
	_, w, _ := toWeekDate(wd.days)
	return w
}

// Day returns the day of the week, 1 for Monday through 7 for Sunday.
func (wd WeekDate) Day() int {
	return isoWeekday(wd.days)
}

// Weekday returns the day of the week as a time.Weekday.
func (wd WeekDate) Weekday() time.Weekday {
	return time.Weekday(isoWeekday(wd.days) % 7)
}

// DayOfYear returns the day of the week-year, 1-364 or 1-371.
func (wd WeekDate) DayOfYear() int {
	_, w, d := toWeekDate(wd.days)
	return (w-1)*7 + d
}

// Components returns the week-year, week and day.
func (wd WeekDate) Components() Components {
	y, w, d := toWeekDate(wd.days)
	return Components{Year: y, Week: w, Day: d}
}

// Ordinal returns the number of days since 0001-01-01.
func (wd WeekDate) Ordinal() int {
	return wd.days
}

// Date returns the Gregorian date, at midnight UTC.
func (wd WeekDate) Date() time.Time {
	y, m, d := fromOrdinal(wd.days)
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Civil returns the Gregorian date as a civil.Date.
func (wd WeekDate) Civil() civil.Date {
	y, m, d := fromOrdinal(wd.days)
	return civil.Date{Year: y, Month: m, Day: d}
}

// Compare returns -1, 0 or +1 depending on whether wd is before, the same
// day as, or after other.
func (wd WeekDate) Compare(other WeekDate) int {
	switch {
	case wd.days < other.days:
		return -1
	case wd.days > other.days:
		return 1
	}
	return 0
}

// Equal returns true if wd and other are the same day.
func (wd WeekDate) Equal(other WeekDate) bool {
	return wd.days == other.days
}

// Before returns true if wd is before other.
func (wd WeekDate) Before(other WeekDate) bool {
	return wd.days < other.days
}

// After returns true if wd is after other.
func (wd WeekDate) After(other WeekDate) bool {
	return wd.days > other.days
}

// Hash returns a hash of wd. Equal values have equal hashes and the
// hash of MinValue is 0.
func (wd WeekDate) Hash() uint64 {
	return uint64(wd.days) * 0x9e3779b97f4a7c15
}

// String returns the canonical form, eg. 1997-W14-6.
func (wd WeekDate) String() string {
	return wd.Format("")
}

// Set implements flag.Value.
func (wd *WeekDate) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}
