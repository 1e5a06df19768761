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

// Package format renders a model.FullName: birth name, full name, short and
// official forms, initials, and a small pattern language.
//
// Pattern directives:
//
//	b B   birth name            f F   first name (with additional names)
//	l L   last name             m M   middle names
//	p P   prefix                s S   suffix
//	o O   official form         $x    initial of f F l L m M
//	. , _ - and space are copied as is
//
// Upper-case directives upper-case their output. The patterns "short",
// "long" and "official" are shortcuts for the matching renderings.
package format

import (
	"strings"

	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

// BirthName renders the given, middle and family names in order, without
// prefix or suffix.
func BirthName(fn *model.FullName, order types.Ordering) string {
	parts := make([]string, 0, 3)
	if order == types.ByLast {
		parts = append(parts, fn.LastName().String(), fn.FirstName().String())
		if m := Middle(fn); m != "" {
			parts = append(parts, m)
		}
		return strings.Join(parts, " ")
	}
	parts = append(parts, fn.FirstName().String())
	if m := Middle(fn); m != "" {
		parts = append(parts, m)
	}
	parts = append(parts, fn.LastName().String())
	return strings.Join(parts, " ")
}

// Full renders the prefix, the birth name and the suffix. With ending set
// the suffix is preceded by a comma.
func Full(fn *model.FullName, order types.Ordering, ending bool) string {
	var b strings.Builder
	if p := fn.Prefix(); p != nil {
		b.WriteString(p.Value())
		b.WriteByte(' ')
	}
	b.WriteString(BirthName(fn, order))
	if s := fn.Suffix(); s != nil {
		if ending {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(s.Value())
	}
	return b.String()
}

// Short renders the first given name and the last name only.
func Short(fn *model.FullName, order types.Ordering) string {
	first, last := fn.FirstName().Value(), fn.LastName().String()
	if order == types.ByLast {
		return last + " " + first
	}
	return first + " " + last
}

// Official renders "[Prefix] LAST, First [Middle][,] [Suffix]". With ending
// set the suffix is preceded by a comma.
func Official(fn *model.FullName, ending bool) string {
	var b strings.Builder
	if p := fn.Prefix(); p != nil {
		b.WriteString(p.Value())
		b.WriteByte(' ')
	}
	b.WriteString(text.Upper(fn.LastName().String()))
	b.WriteString(", ")
	b.WriteString(fn.FirstName().String())
	if m := Middle(fn); m != "" {
		b.WriteByte(' ')
		b.WriteString(m)
	}
	if s := fn.Suffix(); s != nil {
		if ending {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(s.Value())
	}
	return b.String()
}

// Middle joins the middle names with spaces.
func Middle(fn *model.FullName) string {
	names := fn.MiddleName()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.Value()
	}
	return strings.Join(parts, " ")
}

// Initials returns the initials of the birth name in order. Middle names
// are included only when withMiddle is set.
func Initials(fn *model.FullName, order types.Ordering, withMiddle bool) []string {
	first := fn.FirstName().Initials(false)
	last := fn.LastName().Initials()
	var middle []string
	if withMiddle {
		for _, n := range fn.MiddleName() {
			middle = append(middle, n.Initials()...)
		}
	}
	out := make([]string, 0, len(first)+len(middle)+len(last))
	if order == types.ByLast {
		out = append(out, last...)
		out = append(out, first...)
		return append(out, middle...)
	}
	out = append(out, first...)
	out = append(out, middle...)
	return append(out, last...)
}
