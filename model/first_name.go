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
	"slices"
	"strings"

	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

// FirstName is a given name with optional additional given names.
type FirstName struct {
	Name
	more []string
}

// Ensure *FirstName implements Atom.
var _ Atom = (*FirstName)(nil)

// NewFirstName builds a first name. Every atom, including the additional
// ones, must be at least MinLength runes long.
func NewFirstName(value string, more ...string) (*FirstName, error) {
	if err := checkLength(value, types.FirstName); err != nil {
		return nil, err
	}
	for _, m := range more {
		if err := checkLength(m, types.FirstName); err != nil {
			return nil, err
		}
	}
	return &FirstName{
		Name: Name{value: value, slot: types.FirstName},
		more: slices.Clone(more),
	}, nil
}

// More returns a copy of the additional given names.
func (f *FirstName) More() []string { return slices.Clone(f.more) }

// HasMore reports whether additional given names are present.
func (f *FirstName) HasMore() bool { return len(f.more) > 0 }

// String renders the first name followed by any additional given names.
func (f *FirstName) String() string {
	if !f.HasMore() {
		return f.value
	}
	return f.value + " " + strings.Join(f.more, " ")
}

// AsNames splits the first name into one atom per given name.
func (f *FirstName) AsNames() []*Name {
	out := []*Name{{value: f.value, slot: types.FirstName, caps: f.caps}}
	for _, m := range f.more {
		out = append(out, &Name{value: m, slot: types.FirstName, caps: f.caps})
	}
	return out
}

// Initials returns the first letter of the first name and, when withMore is
// set, of every additional given name.
func (f *FirstName) Initials(withMore bool) []string {
	out := []string{text.Initial(f.value)}
	if withMore {
		for _, m := range f.more {
			out = append(out, text.Initial(m))
		}
	}
	return out
}

// Len counts the runes of the rendered first name.
func (f *FirstName) Len() int { return text.Len(f.String()) }

// Capitalize applies Name.Capitalize to every given name.
func (f *FirstName) Capitalize(r types.CapsRange) *FirstName {
	f.Name.Capitalize(r)
	for i := range f.more {
		f.more[i] = capitalize(f.more[i], r)
	}
	return f
}

// Decapitalize applies Name.Decapitalize to every given name.
func (f *FirstName) Decapitalize(r types.CapsRange) *FirstName {
	f.Name.Decapitalize(r)
	for i := range f.more {
		f.more[i] = decapitalize(f.more[i], r)
	}
	return f
}

// Normalize applies Name.Normalize to every given name.
func (f *FirstName) Normalize() *FirstName {
	f.Name.Normalize()
	for i := range f.more {
		f.more[i] = text.Normalize(f.more[i])
	}
	return f
}

// Clone returns an independent copy.
func (f *FirstName) Clone() *FirstName {
	if f == nil {
		return nil
	}
	return &FirstName{Name: f.Name, more: slices.Clone(f.more)}
}
