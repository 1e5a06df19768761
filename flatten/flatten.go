/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package flatten compacts a rendered name to fit a character budget by
// reducing selected parts to their initials.
package flatten

import (
	"strings"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/format"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

const (
	// DefaultLimit is the character budget used by Flatten.
	DefaultLimit = 20
	// DefaultBy is the variant used by Flatten.
	DefaultBy = types.FlatMiddle
	// DefaultZipBy is the variant used by Zip.
	DefaultZipBy = types.FlatMidLast
)

// Options steer a flatten run.
type Options struct {
	// Limit is the character budget of the birth name.
	Limit int
	// By selects the parts reduced to initials.
	By types.Flat
	// Recursive escalates through stronger variants while over budget.
	Recursive bool
	// Period follows every initial.
	Period bool
	// More keeps additional given names.
	More bool
}

// Option mutates Options.
type Option func(*Options)

// WithLimit sets the character budget.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithBy sets the variant.
func WithBy(by types.Flat) Option {
	return func(o *Options) {
		o.By = by
	}
}

// WithRecursive enables escalation.
func WithRecursive() Option {
	return func(o *Options) {
		o.Recursive = true
	}
}

// WithoutPeriod drops the period after initials.
func WithoutPeriod() Option {
	return func(o *Options) {
		o.Period = false
	}
}

// WithMore keeps additional given names.
func WithMore() Option {
	return func(o *Options) {
		o.More = true
	}
}

// Flatten returns the full rendering of fn when its birth name fits the
// limit. Otherwise the parts selected by the variant are replaced with
// their initials, in cfg.Ordering, without prefix or suffix. A recursive
// run escalates first, middle, last, firstMid, midLast, all and returns the
// first result within the limit, or the all variant.
func Flatten(fn *model.FullName, cfg apis.Config, opts ...Option) string {
	o := Options{Limit: DefaultLimit, By: DefaultBy, Period: true}
	for _, opt := range opts {
		opt(&o)
	}
	return Run(fn, cfg, o)
}

// Zip is Flatten with a zero limit and the midLast variant by default, so
// it always reduces.
func Zip(fn *model.FullName, cfg apis.Config, opts ...Option) string {
	o := Options{Limit: 0, By: DefaultZipBy, Period: true}
	for _, opt := range opts {
		opt(&o)
	}
	return Run(fn, cfg, o)
}

// Run flattens fn with explicit options.
func Run(fn *model.FullName, cfg apis.Config, o Options) string {
	if text.Len(format.BirthName(fn, cfg.Ordering)) <= o.Limit {
		return format.Full(fn, cfg.Ordering, cfg.Ending)
	}
	by := o.By
	out := reduce(fn, cfg.Ordering, by, o)
	for o.Recursive && by != types.FlatAll && text.Len(out) > o.Limit {
		by = by.Next()
		out = reduce(fn, cfg.Ordering, by, o)
	}
	return out
}

func reduce(fn *model.FullName, order types.Ordering, by types.Flat, o Options) string {
	var first, middle, last bool
	switch by {
	case types.FlatFirst:
		first = true
	case types.FlatMiddle:
		middle = true
	case types.FlatLast:
		last = true
	case types.FlatFirstMid:
		first, middle = true, true
	case types.FlatMidLast:
		middle, last = true, true
	case types.FlatAll:
		first, middle, last = true, true, true
	}

	dot := ""
	if o.Period {
		dot = "."
	}
	abbrev := func(initials []string) string {
		out := make([]string, len(initials))
		for i, s := range initials {
			out[i] = s + dot
		}
		return strings.Join(out, " ")
	}

	f := fn.FirstName().Value()
	if o.More {
		f = fn.FirstName().String()
	}
	if first {
		f = abbrev(fn.FirstName().Initials(o.More))
	}

	names := fn.MiddleName()
	mids := make([]string, 0, len(names))
	for _, n := range names {
		if middle {
			// A middle atom may hold several space-separated names.
			words := strings.Fields(n.Value())
			initials := make([]string, len(words))
			for i, w := range words {
				initials[i] = text.Initial(w)
			}
			mids = append(mids, abbrev(initials))
		} else {
			mids = append(mids, n.Value())
		}
	}
	m := strings.Join(mids, " ")

	l := fn.LastName().String()
	if last {
		l = abbrev(fn.LastName().Initials())
	}

	parts := make([]string, 0, 3)
	if order == types.ByLast {
		parts = append(parts, l, f)
		if m != "" {
			parts = append(parts, m)
		}
	} else {
		parts = append(parts, f)
		if m != "" {
			parts = append(parts, m)
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}
