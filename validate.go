// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"strings"

	"github.com/go-playground/validator"
)

// Components represents the raw, unvalidated, year, week and day of a
// week date. The field order determines the order in which the fields
// are validated.
type Components struct {
	Year int `validate:"min=1,max=9999"`
	Week int `validate:"min=1,max=53"`
	Day  int `validate:"min=1,max=7"`
}

// A validator.Validate caches struct metadata and is safe for
// concurrent use.
var componentValidator = validator.New()

// Validate checks the year, week and day ranges, in that order, and then
// whether the components describe a supported day. It returns the
// ordinal of that day.
func (c Components) Validate() (int, error) {
	if err := componentValidator.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return 0, rangeErrorFor(c, verrs[0])
		}
		return 0, err
	}
	return toOrdinal(c.Year, c.Week, c.Day)
}

func rangeErrorFor(c Components, fe validator.FieldError) *RangeError {
	re := &RangeError{Field: strings.ToLower(fe.Field())}
	switch re.Field {
	case "year":
		re.Value, re.Min, re.Max = c.Year, minYear, maxYear
	case "week":
		re.Value, re.Min, re.Max = c.Week, 1, maxWeek
	case "day":
		re.Value, re.Min, re.Max = c.Day, 1, maxDay
	}
	return re
}
