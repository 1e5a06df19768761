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

package parser

import (
	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/validator"
)

// NewAtomsStrategy creates an apis.Strategy for lists of tagged atoms.
func NewAtomsStrategy() apis.Strategy {
	return &atomsStrategy{}
}

// atomsStrategy assigns atoms by their slot tag.
type atomsStrategy struct{}

// Ensure atomsStrategy implements apis.Strategy.
var _ apis.Strategy = (*atomsStrategy)(nil)

// TryParse handles []model.Atom and []*model.Name values.
func (*atomsStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	switch atoms := raw.(type) {
	case []model.Atom:
		fn, err := FromAtoms(atoms, cfg)
		return fn, true, err
	case []*model.Name:
		list := make([]model.Atom, 0, len(atoms))
		for _, a := range atoms {
			if a == nil {
				return nil, true, errs.Input("", "atom list contains a nil atom")
			}
			list = append(list, a)
		}
		fn, err := FromAtoms(list, cfg)
		return fn, true, err
	}
	return nil, false, nil
}

// FromAtoms builds a FullName from 2 to 5 tagged atoms holding at least one
// first and one last name. Structured *model.FirstName and *model.LastName
// atoms keep their additional given names and mother's surname; plain last
// name atoms take cfg.Surname. A further first name atom becomes an
// additional given name and a further last name atom the mother's surname.
func FromAtoms(atoms []model.Atom, cfg apis.Config) (*model.FullName, error) {
	for _, a := range atoms {
		if a == nil {
			return nil, errs.Input("", "atom list contains a nil atom")
		}
	}
	if err := validator.Atoms(atoms, cfg.Bypass); err != nil {
		return nil, err
	}

	var (
		prefix, suffix *model.Name
		first          *model.FirstName
		last           *model.LastName
		middle         []*model.Name
		err            error
	)
	for _, a := range atoms {
		switch a.Slot() {
		case types.Prefix:
			if prefix != nil {
				return nil, errs.Input(a.Value(), "more than one %s", types.Prefix)
			}
			prefix, err = model.NewPrefix(a.Value())
		case types.Suffix:
			if suffix != nil {
				return nil, errs.Input(a.Value(), "more than one %s", types.Suffix)
			}
			suffix, err = model.NewSuffix(a.Value())
		case types.MiddleName:
			var n *model.Name
			if n, err = model.NewMiddleName(a.Value()); err == nil {
				middle = append(middle, n)
			}
		case types.FirstName:
			first, err = mergeFirst(first, a)
		case types.LastName:
			last, err = mergeLast(last, a, cfg.Surname)
		default:
			err = errs.Input(a.Value(), "unknown slot %s", a.Slot())
		}
		if err != nil {
			return nil, err
		}
	}

	fn := model.NewFullName(cfg.Policy())
	if err := fn.SetFirstName(first); err != nil {
		return nil, err
	}
	if err := fn.SetLastName(last); err != nil {
		return nil, err
	}
	if err := fn.SetMiddleName(middle); err != nil {
		return nil, err
	}
	if err := fn.SetPrefix(prefix); err != nil {
		return nil, err
	}
	if err := fn.SetSuffix(suffix); err != nil {
		return nil, err
	}
	return fn, nil
}

func mergeFirst(cur *model.FirstName, a model.Atom) (*model.FirstName, error) {
	var value string
	var more []string
	if fn, ok := a.(*model.FirstName); ok {
		value, more = fn.Value(), fn.More()
	} else {
		value = a.Value()
	}
	if cur == nil {
		return model.NewFirstName(value, more...)
	}
	return model.NewFirstName(cur.Value(), append(append(cur.More(), value), more...)...)
}

func mergeLast(cur *model.LastName, a model.Atom, format types.Surname) (*model.LastName, error) {
	if cur == nil {
		if ln, ok := a.(*model.LastName); ok {
			return ln.Clone(), nil
		}
		return model.NewLastName(a.Value(), "", format)
	}
	if cur.HasMother() {
		return nil, errs.Input(a.Value(), "more than two surnames")
	}
	return model.NewLastName(cur.Father(), a.Value(), cur.Format())
}

// NewFullNameStrategy creates an apis.Strategy for pre-built full names.
func NewFullNameStrategy() apis.Strategy {
	return &fullNameStrategy{}
}

// fullNameStrategy copies an existing *model.FullName.
type fullNameStrategy struct{}

// Ensure fullNameStrategy implements apis.Strategy.
var _ apis.Strategy = (*fullNameStrategy)(nil)

// TryParse handles *model.FullName values. The result is a deep copy.
func (*fullNameStrategy) TryParse(raw any, _ apis.Config) (*model.FullName, bool, error) {
	fn, ok := raw.(*model.FullName)
	if !ok {
		return nil, false, nil
	}
	if fn == nil {
		return nil, true, errs.Input("", "nil full name")
	}
	return fn.Clone(), true, nil
}
