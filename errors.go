// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is matched by errors.Is for any *RangeError.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnrepresentable is matched by errors.Is for any *UnrepresentableError.
	ErrUnrepresentable = errors.New("unrepresentable week date")
	// ErrInvalidWeekDate is matched by errors.Is for any *ParseError.
	ErrInvalidWeekDate = errors.New("not a valid week date")
	// ErrInvalidDate is matched by errors.Is for Gregorian date text
	// that cannot be parsed, see ParseDate.
	ErrInvalidDate = errors.New("not a valid date")
	// ErrUnsupportedInputKind is matched by errors.Is for any
	// *UnsupportedInputKindError.
	ErrUnsupportedInputKind = errors.New("unsupported input kind")
)

// RangeError is returned by New when one of year, week or day is
// outside of its nominal range. Field is one of "year", "week" or "day".
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s should be in range [%d,%d]: %d", e.Field, e.Min, e.Max, e.Value)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// UnrepresentableError is returned when year, week and day are within
// their nominal ranges but do not describe a day between 0001-01-01 and
// 9999-12-31, for example week 53 of a 52 week year. It is also returned
// when converting a Gregorian date, recorded in Date, that is outside of
// that range.
type UnrepresentableError struct {
	Year, Week, Day int
	Date            string
}

func (e *UnrepresentableError) Error() string {
	if len(e.Date) > 0 {
		return fmt.Sprintf("date %s is outside of the range 0001-01-01 to 9999-12-31", e.Date)
	}
	return fmt.Sprintf("year %d, week %d and day %d describe an unrepresentable date", e.Year, e.Week, e.Day)
}

func (e *UnrepresentableError) Is(target error) bool {
	return target == ErrUnrepresentable
}

// ParseError is returned for any text that cannot be parsed as a week
// date, regardless of whether the text is malformed or describes an
// invalid week date. The message is localized for the culture used
// when parsing.
type ParseError struct {
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Text)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidWeekDate
}

// UnsupportedInputKindError is returned when decoding a structured
// document value whose kind (null, integer or floating point number)
// is never coerced into a week date.
type UnsupportedInputKindError struct {
	Format string // eg. "json" or "yaml"
	Kind   string // eg. "null", "integer" or "number"
}

func (e *UnsupportedInputKindError) Error() string {
	switch {
	case e.Kind == "null":
		return fmt.Sprintf("%s deserialization from null is not supported", e.Format)
	case len(e.Kind) > 0 && strings.ContainsRune("aeiou", rune(e.Kind[0])):
		return fmt.Sprintf("%s deserialization from an %s is not supported", e.Format, e.Kind)
	}
	return fmt.Sprintf("%s deserialization from a %s is not supported", e.Format, e.Kind)
}

func (e *UnsupportedInputKindError) Is(target error) bool {
	return target == ErrUnsupportedInputKind
}
