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

package model

import (
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

// LastName is a surname made of the father's surname and an optional
// mother's surname, rendered according to a Surname policy.
type LastName struct {
	Name
	mother string
	format types.Surname
}

// Ensure *LastName implements Atom.
var _ Atom = (*LastName)(nil)

// NewLastName builds a last name. mother may be empty.
func NewLastName(father, mother string, format types.Surname) (*LastName, error) {
	if err := checkLength(father, types.LastName); err != nil {
		return nil, err
	}
	if mother != "" {
		if err := checkLength(mother, types.LastName); err != nil {
			return nil, err
		}
	}
	return &LastName{
		Name:   Name{value: father, slot: types.LastName},
		mother: mother,
		format: format,
	}, nil
}

// Father returns the father's surname.
func (l *LastName) Father() string { return l.value }

// Mother returns the mother's surname, or "".
func (l *LastName) Mother() string { return l.mother }

// HasMother reports whether a mother's surname is present.
func (l *LastName) HasMother() bool { return l.mother != "" }

// Format returns the rendering policy.
func (l *LastName) Format() types.Surname { return l.format }

// WithFormat returns a copy rendered with format.
func (l *LastName) WithFormat(format types.Surname) *LastName {
	c := l.Clone()
	c.format = format
	return c
}

// String renders the surname with its own policy.
func (l *LastName) String() string { return l.Render(l.format) }

// Render renders the surname with format. Policies that need the mother's
// surname fall back to the father's when it is absent.
func (l *LastName) Render(format types.Surname) string {
	if !l.HasMother() {
		return l.value
	}
	switch format {
	case types.SurnameMother:
		return l.mother
	case types.SurnameHyphenated:
		return l.value + "-" + l.mother
	case types.SurnameAll:
		return l.value + " " + l.mother
	}
	return l.value
}

// Initials returns the initials of the surnames rendered by the policy.
func (l *LastName) Initials() []string { return l.InitialsAs(l.format) }

// InitialsAs returns the initials of the surnames rendered by format.
func (l *LastName) InitialsAs(format types.Surname) []string {
	if !l.HasMother() {
		return []string{text.Initial(l.value)}
	}
	switch format {
	case types.SurnameMother:
		return []string{text.Initial(l.mother)}
	case types.SurnameHyphenated, types.SurnameAll:
		return []string{text.Initial(l.value), text.Initial(l.mother)}
	}
	return []string{text.Initial(l.value)}
}

// AsNames splits the surname into one atom per surname.
func (l *LastName) AsNames() []*Name {
	out := []*Name{{value: l.value, slot: types.LastName, caps: l.caps}}
	if l.HasMother() {
		out = append(out, &Name{value: l.mother, slot: types.LastName, caps: l.caps})
	}
	return out
}

// Len counts the runes of the rendered surname.
func (l *LastName) Len() int { return text.Len(l.String()) }

// Capitalize applies Name.Capitalize to both surnames.
func (l *LastName) Capitalize(r types.CapsRange) *LastName {
	l.Name.Capitalize(r)
	l.mother = capitalize(l.mother, r)
	return l
}

// Decapitalize applies Name.Decapitalize to both surnames.
func (l *LastName) Decapitalize(r types.CapsRange) *LastName {
	l.Name.Decapitalize(r)
	l.mother = decapitalize(l.mother, r)
	return l
}

// Normalize applies Name.Normalize to both surnames.
func (l *LastName) Normalize() *LastName {
	l.Name.Normalize()
	if l.mother != "" {
		l.mother = text.Normalize(l.mother)
	}
	return l
}

// Clone returns an independent copy.
func (l *LastName) Clone() *LastName {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
