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

// Package types holds the small enumerations shared across namefx: name
// slots, ordering, separators, title and surname policies, capitalization
// ranges and flattening variants.
//
// Every enum has a String form that doubles as its textual configuration
// value, and a Parse function accepting that form.
package types

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned by the Parse functions for unrecognized text.
var ErrUnknownValue = errors.New("namefx(types): unknown enum value")

// Namon identifies the slot a name piece plays.
type Namon uint8

const (
	// Prefix is a title such as "Mr" or "Dr".
	Prefix Namon = iota
	// FirstName is the given name.
	FirstName
	// MiddleName is an additional given name.
	MiddleName
	// LastName is the family name.
	LastName
	// Suffix is a trailing qualifier such as "Jr" or "Ph.D".
	Suffix
)

// Namons lists every slot in canonical order.
var Namons = []Namon{Prefix, FirstName, MiddleName, LastName, Suffix}

// String returns the slot key used by maps and failures.
func (n Namon) String() string {
	switch n {
	case Prefix:
		return "prefix"
	case FirstName:
		return "firstName"
	case MiddleName:
		return "middleName"
	case LastName:
		return "lastName"
	case Suffix:
		return "suffix"
	default:
		return fmt.Sprintf("Namon(%d)", uint8(n))
	}
}

// ParseNamon converts a slot key back into a Namon.
func ParseNamon(s string) (Namon, error) {
	for _, n := range Namons {
		if n.String() == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: namon %q", ErrUnknownValue, s)
}

// Ordering states whether positional input lists the given name or the
// family name first.
type Ordering uint8

const (
	// ByFirst lists the given name first.
	ByFirst Ordering = iota
	// ByLast lists the family name first.
	ByLast
)

// String returns "byFirst" or "byLast".
func (o Ordering) String() string {
	if o == ByLast {
		return "byLast"
	}
	return "byFirst"
}

// Flip returns the opposite ordering.
func (o Ordering) Flip() Ordering {
	if o == ByLast {
		return ByFirst
	}
	return ByLast
}

// ParseOrdering accepts "byFirst" or "byLast".
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "byFirst":
		return ByFirst, nil
	case "byLast":
		return ByLast, nil
	}
	return 0, fmt.Errorf("%w: ordering %q", ErrUnknownValue, s)
}

// Title is the policy for abbreviated prefixes.
type Title uint8

const (
	// TitleUK leaves prefixes undotted ("Mr").
	TitleUK Title = iota
	// TitleUS appends a period to prefixes ("Mr.").
	TitleUS
)

// String returns "uk" or "us".
func (t Title) String() string {
	if t == TitleUS {
		return "us"
	}
	return "uk"
}

// ParseTitle accepts "uk" or "us".
func ParseTitle(s string) (Title, error) {
	switch s {
	case "uk":
		return TitleUK, nil
	case "us":
		return TitleUS, nil
	}
	return 0, fmt.Errorf("%w: title %q", ErrUnknownValue, s)
}

// Surname is the rendering policy for compound last names.
type Surname uint8

const (
	// SurnameFather renders the father's surname only.
	SurnameFather Surname = iota
	// SurnameMother renders the mother's surname only.
	SurnameMother
	// SurnameHyphenated renders "father-mother".
	SurnameHyphenated
	// SurnameAll renders "father mother".
	SurnameAll
)

// String returns the policy name.
func (s Surname) String() string {
	switch s {
	case SurnameMother:
		return "mother"
	case SurnameHyphenated:
		return "hyphenated"
	case SurnameAll:
		return "all"
	default:
		return "father"
	}
}

// ParseSurname accepts "father", "mother", "hyphenated" or "all".
func ParseSurname(s string) (Surname, error) {
	for _, v := range []Surname{SurnameFather, SurnameMother, SurnameHyphenated, SurnameAll} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: surname %q", ErrUnknownValue, s)
}

// CapsRange selects how much of a name piece a case operation touches.
type CapsRange uint8

const (
	// CapsNone leaves the value unchanged.
	CapsNone CapsRange = iota
	// CapsInitial touches the first letter only.
	CapsInitial
	// CapsAll touches every letter.
	CapsAll
)

// String returns "none", "initial" or "all".
func (c CapsRange) String() string {
	switch c {
	case CapsInitial:
		return "initial"
	case CapsAll:
		return "all"
	default:
		return "none"
	}
}
