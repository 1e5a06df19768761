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
	"iter"
	"strings"

	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/validator"
)

// Policy carries the configuration knobs a FullName applies in its setters.
type Policy struct {
	// Bypass skips character validation in setters.
	Bypass bool
	// Title controls whether prefixes get a trailing period.
	Title types.Title
	// Surname is the default rendering policy for last names.
	Surname types.Surname
}

// FullName is the aggregate of all name slots. First and last names are
// required once the value is built; prefix, middle names and suffix are
// optional.
//
// A FullName is not safe for concurrent mutation.
type FullName struct {
	prefix     *Name
	firstName  *FirstName
	middleName []*Name
	lastName   *LastName
	suffix     *Name
	policy     Policy
}

// NewFullName returns an empty FullName applying p in its setters.
func NewFullName(p Policy) *FullName {
	return &FullName{policy: p}
}

// Policy returns the setter policy.
func (f *FullName) Policy() Policy { return f.policy }

// Prefix returns the prefix, or nil.
func (f *FullName) Prefix() *Name { return f.prefix }

// FirstName returns the first name.
func (f *FullName) FirstName() *FirstName { return f.firstName }

// MiddleName returns the middle names; the slice is a copy.
func (f *FullName) MiddleName() []*Name {
	return append([]*Name(nil), f.middleName...)
}

// LastName returns the last name.
func (f *FullName) LastName() *LastName { return f.lastName }

// Suffix returns the suffix, or nil.
func (f *FullName) Suffix() *Name { return f.suffix }

// SetPrefix validates and stores n as the prefix; nil clears it. With the
// US title policy a trailing period is appended when missing.
func (f *FullName) SetPrefix(n *Name) error {
	if n == nil {
		f.prefix = nil
		return nil
	}
	if !f.policy.Bypass {
		if err := validator.Prefix(n.Value()); err != nil {
			return err
		}
	}
	p := n.retag(types.Prefix)
	if f.policy.Title == types.TitleUS && !strings.HasSuffix(p.value, ".") {
		p.value += "."
	}
	f.prefix = p
	return nil
}

// SetFirstName validates and stores n as the first name.
func (f *FullName) SetFirstName(n *FirstName) error {
	if n == nil {
		return errs.Input("", "%s is required", types.FirstName)
	}
	if !f.policy.Bypass {
		if err := validator.FirstName(n); err != nil {
			return err
		}
	}
	f.firstName = n
	return nil
}

// SetMiddleName validates and stores names as the middle names. Every atom
// must be tagged as a middle name; nil or empty clears them.
func (f *FullName) SetMiddleName(names []*Name) error {
	for _, n := range names {
		if n == nil {
			return errs.Input("", "%s contains a nil atom", types.MiddleName)
		}
		if n.Slot() != types.MiddleName {
			return errs.Validation(types.MiddleName.String(), n.Value(), "must be tagged as a middle name")
		}
	}
	if !f.policy.Bypass {
		if err := validator.MiddleNames(names); err != nil {
			return err
		}
	}
	f.middleName = append([]*Name(nil), names...)
	return nil
}

// SetLastName validates and stores n as the last name.
func (f *FullName) SetLastName(n *LastName) error {
	if n == nil {
		return errs.Input("", "%s is required", types.LastName)
	}
	if !f.policy.Bypass {
		if err := validator.LastName(n); err != nil {
			return err
		}
	}
	f.lastName = n
	return nil
}

// SetSuffix validates and stores n as the suffix; nil clears it.
func (f *FullName) SetSuffix(n *Name) error {
	if n == nil {
		f.suffix = nil
		return nil
	}
	if !f.policy.Bypass {
		if err := validator.Suffix(n.Value()); err != nil {
			return err
		}
	}
	f.suffix = n.retag(types.Suffix)
	return nil
}

// Has reports whether slot holds a value. An empty middle name list counts
// as absent.
func (f *FullName) Has(slot types.Namon) bool {
	switch slot {
	case types.Prefix:
		return f.prefix != nil
	case types.FirstName:
		return f.firstName != nil
	case types.MiddleName:
		return len(f.middleName) > 0
	case types.LastName:
		return f.lastName != nil
	case types.Suffix:
		return f.suffix != nil
	}
	return false
}

// Complete reports whether both required slots are set.
func (f *FullName) Complete() bool {
	return f.firstName != nil && f.lastName != nil
}

// All yields the present atoms in canonical order: prefix, first name,
// middle names, last name, suffix. With flat set, additional given names
// and the mother's surname are yielded as separate atoms.
func (f *FullName) All(flat bool) iter.Seq[Atom] {
	return func(yield func(Atom) bool) {
		if f.prefix != nil && !yield(f.prefix) {
			return
		}
		if f.firstName != nil {
			if flat {
				for _, n := range f.firstName.AsNames() {
					if !yield(n) {
						return
					}
				}
			} else if !yield(f.firstName) {
				return
			}
		}
		for _, n := range f.middleName {
			if !yield(n) {
				return
			}
		}
		if f.lastName != nil {
			if flat {
				for _, n := range f.lastName.AsNames() {
					if !yield(n) {
						return
					}
				}
			} else if !yield(f.lastName) {
				return
			}
		}
		if f.suffix != nil {
			yield(f.suffix)
		}
	}
}

// Clone returns a deep copy.
func (f *FullName) Clone() *FullName {
	if f == nil {
		return nil
	}
	c := &FullName{
		prefix:    f.prefix.Clone(),
		firstName: f.firstName.Clone(),
		lastName:  f.lastName.Clone(),
		suffix:    f.suffix.Clone(),
		policy:    f.policy,
	}
	for _, n := range f.middleName {
		c.middleName = append(c.middleName, n.Clone())
	}
	return c
}
