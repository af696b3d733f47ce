// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command weekdate parses, formats and converts ISO 8601 week dates.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: weekdate
summary: parse, format and convert ISO 8601 week dates such as 1997-W14-6
commands:
  - name: parse
    summary: display the canonical form, Gregorian date and day of year of week dates
    arguments:
      - <week-date>
      - ...
  - name: format
    summary: format week dates using the pattern specified via --pattern
    arguments:
      - <week-date>
      - ...
  - name: from-date
    summary: display the week dates of Gregorian dates, eg. 1997-04-05
    arguments:
      - <date>
      - ...
  - name: valid
    summary: report which of the supplied arguments are not valid week dates
    arguments:
      - <week-date>
      - ...
  - name: weeks
    summary: display the number of ISO weeks in the specified week-years
    arguments:
      - <year>
      - ...
  - name: sort
    summary: display week dates in chronological order
    arguments:
      - <week-date>
      - ...
`

var (
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cli    = &commands{out: os.Stdout}
)

func init() {
	cmdSet.Set("parse").MustRunnerAndFlags(cli.parse,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("format").MustRunnerAndFlags(cli.format,
		subcmd.MustRegisteredFlagSet(&formatFlags{}))
	cmdSet.Set("from-date").MustRunnerAndFlags(cli.fromDate,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("valid").MustRunnerAndFlags(cli.valid,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("weeks").MustRunnerAndFlags(cli.weeks,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(cli.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
