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

// Package model is the canonical in-memory representation of a person name:
// single atoms (Name), structured first and last names, and the FullName
// aggregate with validating setters.
package model

import (
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

// MinLength is the minimum number of runes in any name atom.
const MinLength = 2

// Atom is a single tagged piece of a name.
type Atom interface {
	// Slot reports the role the atom plays.
	Slot() types.Namon
	// Value returns the raw atom value.
	Value() string
	// String returns the rendered atom.
	String() string
}

// Name is one atom of a name: a prefix, a given name, a middle name, a
// surname or a suffix.
type Name struct {
	value string
	slot  types.Namon
	caps  types.CapsRange
}

// Ensure *Name implements Atom.
var _ Atom = (*Name)(nil)

// NewName builds an atom for slot. Values shorter than MinLength runes are
// rejected with an input failure.
func NewName(value string, slot types.Namon) (*Name, error) {
	if err := checkLength(value, slot); err != nil {
		return nil, err
	}
	return &Name{value: value, slot: slot}, nil
}

// NewPrefix builds a prefix atom.
func NewPrefix(value string) (*Name, error) { return NewName(value, types.Prefix) }

// NewMiddleName builds a middle name atom.
func NewMiddleName(value string) (*Name, error) { return NewName(value, types.MiddleName) }

// NewSuffix builds a suffix atom.
func NewSuffix(value string) (*Name, error) { return NewName(value, types.Suffix) }

// NewMiddleNames builds one middle name atom per value.
func NewMiddleNames(values ...string) ([]*Name, error) {
	out := make([]*Name, 0, len(values))
	for _, v := range values {
		n, err := NewMiddleName(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func checkLength(value string, slot types.Namon) error {
	if text.Len(value) < MinLength {
		return errs.Input(value, "%s must be %d+ characters", slot, MinLength)
	}
	return nil
}

// Value returns the atom value.
func (n *Name) Value() string { return n.value }

// Slot returns the atom slot.
func (n *Name) Slot() types.Namon { return n.slot }

// Caps returns the last capitalization range applied.
func (n *Name) Caps() types.CapsRange { return n.caps }

// String returns the atom value.
func (n *Name) String() string { return n.value }

// Len counts the runes of the value.
func (n *Name) Len() int { return text.Len(n.value) }

// Initials returns the first letter of the value.
func (n *Name) Initials() []string { return []string{text.Initial(n.value)} }

// Capitalize upper-cases the first letter (CapsInitial) or the whole value
// (CapsAll).
func (n *Name) Capitalize(r types.CapsRange) *Name {
	n.value = capitalize(n.value, r)
	n.caps = r
	return n
}

// Decapitalize lower-cases the first letter (CapsInitial) or the whole value
// (CapsAll).
func (n *Name) Decapitalize(r types.CapsRange) *Name {
	n.value = decapitalize(n.value, r)
	n.caps = types.CapsNone
	return n
}

// Normalize rewrites the value in NFC form with title casing.
func (n *Name) Normalize() *Name {
	n.value = text.Normalize(n.value)
	n.caps = types.CapsInitial
	return n
}

// Equal reports whether o has the same slot and rendering.
func (n *Name) Equal(o Atom) bool {
	if n == nil || o == nil {
		return false
	}
	return n.slot == o.Slot() && n.String() == o.String()
}

// Clone returns an independent copy.
func (n *Name) Clone() *Name {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// retag returns a copy of n moved to slot.
func (n *Name) retag(slot types.Namon) *Name {
	c := n.Clone()
	c.slot = slot
	return c
}

func capitalize(s string, r types.CapsRange) string {
	switch r {
	case types.CapsInitial:
		return text.UpperInitial(s)
	case types.CapsAll:
		return text.Upper(s)
	}
	return s
}

func decapitalize(s string, r types.CapsRange) string {
	switch r {
	case types.CapsInitial:
		return text.LowerInitial(s)
	case types.CapsAll:
		return text.Lower(s)
	}
	return s
}
