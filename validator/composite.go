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

package validator

import (
	"fmt"
	"reflect"

	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/types"
)

// Tagged is a name atom that carries its slot.
type Tagged interface {
	Slot() types.Namon
	Value() string
}

// FirstNameShape is a structured first name with additional given names.
type FirstNameShape interface {
	Value() string
	More() []string
}

// LastNameShape is a structured last name with an optional mother surname.
type LastNameShape interface {
	Father() string
	Mother() string
}

// FirstName validates a plain string or a FirstNameShape. Every additional
// given name of a structured value is validated individually.
func FirstName(v any) error {
	switch fn := v.(type) {
	case string:
		return Namon(fn, types.FirstName)
	case FirstNameShape:
		if err := Namon(fn.Value(), types.FirstName); err != nil {
			return err
		}
		for _, more := range fn.More() {
			if err := Namon(more, types.FirstName); err != nil {
				return err
			}
		}
		return nil
	}
	return errs.Input(fmt.Sprint(v), "unsupported first name value of type %T", v)
}

// LastName validates a plain string or a LastNameShape. The mother surname
// is validated only when present.
func LastName(v any) error {
	switch ln := v.(type) {
	case string:
		return Namon(ln, types.LastName)
	case LastNameShape:
		if err := Namon(ln.Father(), types.LastName); err != nil {
			return err
		}
		if m := ln.Mother(); m != "" {
			return Namon(m, types.LastName)
		}
		return nil
	}
	return errs.Input(fmt.Sprint(v), "unsupported last name value of type %T", v)
}

// MiddleName validates a string, a list of strings or a list of tagged atoms
// of any element type implementing Tagged. Atoms must be tagged as middle
// names. Any other value is an input failure.
func MiddleName(v any) error {
	switch mn := v.(type) {
	case string:
		return Namon(mn, types.MiddleName)
	case []string:
		for _, s := range mn {
			if err := Namon(s, types.MiddleName); err != nil {
				return err
			}
		}
		return nil
	case []Tagged:
		return MiddleNames(mn)
	}
	if atoms, ok := taggedSlice(v); ok {
		return MiddleNames(atoms)
	}
	return errs.Input(fmt.Sprint(v), "unsupported middle name value of type %T", v)
}

// taggedSlice converts a slice whose element type implements Tagged, such
// as []*model.Name.
func taggedSlice(v any) ([]Tagged, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || !rv.Type().Elem().Implements(reflect.TypeFor[Tagged]()) {
		return nil, false
	}
	out := make([]Tagged, rv.Len())
	for i := range out {
		el := rv.Index(i)
		if el.Kind() == reflect.Pointer && el.IsNil() || el.Kind() == reflect.Interface && el.IsNil() {
			return nil, false
		}
		out[i] = el.Interface().(Tagged)
	}
	return out, true
}

// MiddleNames validates a list of tagged middle name atoms.
func MiddleNames[T Tagged](names []T) error {
	for _, n := range names {
		if n.Slot() != types.MiddleName {
			return errs.Validation(types.MiddleName.String(), n.Value(), "must be tagged as a middle name")
		}
		if err := Namon(n.Value(), types.MiddleName); err != nil {
			return err
		}
	}
	return nil
}

// Atom validates a tagged atom against the composite validator of its slot.
func Atom(a Tagged) error {
	switch a.Slot() {
	case types.FirstName:
		if fn, ok := a.(FirstNameShape); ok {
			return FirstName(fn)
		}
		return FirstName(a.Value())
	case types.LastName:
		if ln, ok := a.(LastNameShape); ok {
			return LastName(ln)
		}
		return LastName(a.Value())
	}
	return Namon(a.Value(), a.Slot())
}
