// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/weekdate"
)

type commands struct {
	out io.Writer
}

func (c *commands) parse(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*CommonFlags)
	ctx, s, cleanup, err := cf.setup(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()
	logger := ctxlog.Logger(ctx)
	var errs errors.M
	for _, arg := range args {
		wd, err := weekdate.Parse(arg, s.opts...)
		if err != nil {
			errs.Append(err)
			continue
		}
		logger.Debug("parsed", "input", arg, "ordinal", wd.Ordinal())
		fmt.Fprintf(c.out, "%v\t%v\t%v\n", wd, wd.Date().Format(time.DateOnly), wd.DayOfYear())
	}
	return errs.Err()
}

func (c *commands) format(ctx context.Context, values interface{}, args []string) error {
	ff := values.(*formatFlags)
	ctx, s, cleanup, err := ff.setup(ctx, ff.Pattern)
	if err != nil {
		return err
	}
	defer cleanup()
	ctxlog.Logger(ctx).Info("formatting", "pattern", s.Pattern, "culture", s.Culture)
	var errs errors.M
	for _, arg := range args {
		wd, err := weekdate.Parse(arg, s.opts...)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintln(c.out, wd.Format(s.Pattern, s.opts...))
	}
	return errs.Err()
}

func (c *commands) fromDate(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*CommonFlags)
	_, _, cleanup, err := cf.setup(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()
	var errs errors.M
	for _, arg := range args {
		wd, err := weekdate.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(c.out, "%v\t%v\n", arg, wd)
	}
	return errs.Err()
}

func (c *commands) valid(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*CommonFlags)
	ctx, s, cleanup, err := cf.setup(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()
	var errs errors.M
	invalid := 0
	for _, arg := range args {
		if weekdate.IsValid(arg) {
			continue
		}
		invalid++
		_, err := weekdate.Parse(arg, s.opts...)
		errs.Append(err)
	}
	ctxlog.Logger(ctx).Info("validated", "total", len(args), "invalid", invalid)
	return errs.Err()
}

func (c *commands) weeks(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*CommonFlags)
	_, _, cleanup, err := cf.setup(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()
	var errs errors.M
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year %q: %w", arg, err))
			continue
		}
		if _, err := weekdate.New(year, 1, 1); err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(c.out, "%v\t%v\n", year, weekdate.WeeksInYear(year))
	}
	return errs.Err()
}

func (c *commands) sort(ctx context.Context, values interface{}, args []string) error {
	sf := values.(*sortFlags)
	ctx, s, cleanup, err := sf.setup(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()
	var errs errors.M
	h := heap.NewMin(heap.WithSliceCap[int, weekdate.WeekDate](len(args)))
	for _, arg := range args {
		wd, err := weekdate.Parse(arg, s.opts...)
		if err != nil {
			errs.Append(err)
			continue
		}
		h.Push(wd.Ordinal(), wd)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("sorting", "count", h.Len(), "reverse", sf.Reverse)
	sorted := make([]weekdate.WeekDate, 0, h.Len())
	for h.Len() > 0 {
		_, wd := h.Pop()
		sorted = append(sorted, wd)
	}
	if sf.Reverse {
		slices.Reverse(sorted)
	}
	for _, wd := range sorted {
		fmt.Fprintln(c.out, wd)
	}
	return nil
}
