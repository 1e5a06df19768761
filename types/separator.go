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

package types

import "fmt"

// Separator is a named token used to split or join raw name strings.
type Separator uint8

const (
	// Space is " ".
	Space Separator = iota
	// Comma is ",".
	Comma
	// Colon is ":".
	Colon
	// DoubleQuote is `"`.
	DoubleQuote
	// Empty is "".
	Empty
	// Hyphen is "-".
	Hyphen
	// Period is ".".
	Period
	// SemiColon is ";".
	SemiColon
	// SingleQuote is "'".
	SingleQuote
	// Underscore is "_".
	Underscore
)

var separators = [...]struct {
	name  string
	token string
}{
	Space:       {"space", " "},
	Comma:       {"comma", ","},
	Colon:       {"colon", ":"},
	DoubleQuote: {"doubleQuote", `"`},
	Empty:       {"empty", ""},
	Hyphen:      {"hyphen", "-"},
	Period:      {"period", "."},
	SemiColon:   {"semiColon", ";"},
	SingleQuote: {"singleQuote", "'"},
	Underscore:  {"underscore", "_"},
}

// Token returns the literal text of the separator.
func (s Separator) Token() string {
	if int(s) < len(separators) {
		return separators[s].token
	}
	return " "
}

// String returns the separator name, e.g. "comma".
func (s Separator) String() string {
	if int(s) < len(separators) {
		return separators[s].name
	}
	return fmt.Sprintf("Separator(%d)", uint8(s))
}

// ParseSeparator accepts a separator name such as "comma" or "space".
func ParseSeparator(s string) (Separator, error) {
	for i, v := range separators {
		if v.name == s {
			return Separator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: separator %q", ErrUnknownValue, s)
}

// Flat selects which parts the flatten engine reduces to initials.
type Flat uint8

const (
	// FlatFirst reduces the first name.
	FlatFirst Flat = iota
	// FlatMiddle reduces the middle names.
	FlatMiddle
	// FlatLast reduces the last name.
	FlatLast
	// FlatFirstMid reduces first and middle names.
	FlatFirstMid
	// FlatMidLast reduces middle and last names.
	FlatMidLast
	// FlatAll reduces first, middle and last names.
	FlatAll
)

var flats = [...]string{
	FlatFirst:    "first",
	FlatMiddle:   "middle",
	FlatLast:     "last",
	FlatFirstMid: "firstMid",
	FlatMidLast:  "midLast",
	FlatAll:      "all",
}

// String returns the variant name.
func (f Flat) String() string {
	if int(f) < len(flats) {
		return flats[f]
	}
	return fmt.Sprintf("Flat(%d)", uint8(f))
}

// Next returns the next, more aggressive variant. FlatAll is its own
// successor.
func (f Flat) Next() Flat {
	if f >= FlatAll {
		return FlatAll
	}
	return f + 1
}

// ParseFlat accepts a variant name such as "midLast".
func ParseFlat(s string) (Flat, error) {
	for i, v := range flats {
		if v == s {
			return Flat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: flat %q", ErrUnknownValue, s)
}
