// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import "golang.org/x/text/language"

// Option represents an option to Parse, TryParse and Format.
type Option func(*options)

type options struct {
	culture   language.Tag
	formatter Formatter
}

// WithCulture specifies the culture to use. The week date grammar and
// its numeric rendering are culture invariant; the culture selects the
// language of parse errors and is passed to any Formatter. The default
// is language.Und, which results in English messages.
func WithCulture(culture language.Tag) Option {
	return func(o *options) {
		o.culture = culture
	}
}

// WithFormatter specifies a Formatter to be consulted before the default
// pattern renderer.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
