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
	"errors"
	"fmt"
	"sort"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/index"
	"dirpx.dev/namefx/types"
)

// shapeTag bounds the entry count and restricts keys to the slot names.
const shapeTag = "min=2,max=5,dive,keys,oneof=prefix firstName middleName lastName suffix,endkeys"

// shape checks map shapes before any content rule runs.
var shape = playground.New()

// Map validates a slot-keyed map. firstName and lastName are required,
// unknown keys are rejected and 2 to 5 entries are expected. Unless bypass
// is set, every entry is then checked by the validator of its slot; the
// middleName entry is a space-delimited list.
func Map(m map[string]string, bypass bool) error {
	if err := MapShape(m); err != nil {
		return err
	}
	if bypass {
		return nil
	}
	for _, key := range sortedKeys(m) {
		slot, _ := types.ParseNamon(key)
		value := m[key]
		var err error
		switch slot {
		case types.FirstName:
			err = FirstName(value)
		case types.LastName:
			err = LastName(value)
		case types.MiddleName:
			err = MiddleName(strings.Fields(value))
		default:
			err = Namon(value, slot)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MapShape runs the structural part of Map only.
func MapShape(m map[string]string) error {
	source := describe(m)
	if len(m) == 0 {
		return errs.Input(source, "no name pieces provided")
	}
	if err := shape.Var(m, shapeTag); err != nil {
		var fails playground.ValidationErrors
		if !errors.As(err, &fails) || len(fails) == 0 {
			return errs.Unknown(source, "could not check map shape", err)
		}
		switch f := fails[0]; f.Tag() {
		case "min", "max":
			return errs.Input(source, "expecting 2-5 entries, got %d", len(m))
		case "oneof":
			return errs.Input(source, "unknown key %q", fmt.Sprint(f.Value()))
		default:
			return errs.Input(source, "invalid map shape (%s)", f.Tag())
		}
	}
	for _, required := range []types.Namon{types.FirstName, types.LastName} {
		if _, ok := m[required.String()]; !ok {
			return errs.Input(source, "%q is required", required.String())
		}
	}
	return nil
}

// List validates an ordered raw list: 2 to 5 elements, then (unless bypass)
// each element against the slot it is assigned to by ordering.
func List(values []string, ordering types.Ordering, bypass bool) error {
	if err := ListShape(values); err != nil {
		return err
	}
	if bypass {
		return nil
	}
	idx := index.Resolve(ordering, len(values))
	if err := FirstName(values[idx.FirstName]); err != nil {
		return err
	}
	if err := LastName(values[idx.LastName]); err != nil {
		return err
	}
	if idx.MiddleName != index.Absent {
		if err := MiddleName(values[idx.MiddleName]); err != nil {
			return err
		}
	}
	if idx.Prefix != index.Absent {
		if err := Prefix(values[idx.Prefix]); err != nil {
			return err
		}
	}
	if idx.Suffix != index.Absent {
		if err := Suffix(values[idx.Suffix]); err != nil {
			return err
		}
	}
	return nil
}

// ListShape checks the element count band of an ordered raw list.
func ListShape(values []string) error {
	if n := len(values); n < index.MinCount || n > index.MaxCount {
		return errs.Input(strings.Join(values, " "), "expecting a list of %d-%d elements, got %d", index.MinCount, index.MaxCount, n)
	}
	for _, v := range values {
		if v == "" {
			return errs.Input(strings.Join(values, " "), "list contains an empty element")
		}
	}
	return nil
}

// Atoms validates a list of tagged atoms: 2 to 5 atoms with at least one
// first and one last name, then (unless bypass) each atom's content.
func Atoms[T Tagged](atoms []T, bypass bool) error {
	parts := make([]string, 0, len(atoms))
	var first, last bool
	for _, a := range atoms {
		parts = append(parts, a.Value())
		switch a.Slot() {
		case types.FirstName:
			first = true
		case types.LastName:
			last = true
		}
	}
	source := strings.Join(parts, " ")
	if n := len(atoms); n < index.MinCount || n > index.MaxCount {
		return errs.Input(source, "expecting %d-%d name atoms, got %d", index.MinCount, index.MaxCount, n)
	}
	if !first || !last {
		return errs.Input(source, "both first and last names are required")
	}
	if bypass {
		return nil
	}
	for _, a := range atoms {
		if err := Atom(a); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys returns map keys in canonical slot order, unknown keys last.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		if n, err := types.ParseNamon(k); err == nil {
			return int(n)
		}
		return len(types.Namons)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func describe(m map[string]string) string {
	keys := sortedKeys(m)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m[k])
	}
	return strings.Join(parts, " ")
}
