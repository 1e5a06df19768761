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
	"strings"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/validator"
)

// NewMapStrategy creates an apis.Strategy for slot-keyed maps.
func NewMapStrategy() apis.Strategy {
	return &mapStrategy{}
}

// mapStrategy reads slots by key: prefix, firstName, middleName, lastName
// and suffix.
type mapStrategy struct{}

// Ensure mapStrategy implements apis.Strategy.
var _ apis.Strategy = (*mapStrategy)(nil)

// TryParse handles map[string]string and map[types.Namon]string values.
func (*mapStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	switch m := raw.(type) {
	case map[string]string:
		fn, err := FromMap(m, cfg)
		return fn, true, err
	case map[types.Namon]string:
		keyed := make(map[string]string, len(m))
		for k, v := range m {
			keyed[k.String()] = v
		}
		fn, err := FromMap(keyed, cfg)
		return fn, true, err
	}
	return nil, false, nil
}

// FromMap parses a slot-keyed map. firstName and lastName are required;
// optional entries with blank values count as absent. The middleName entry
// is space-delimited and yields one middle name per word. m is not modified.
func FromMap(m map[string]string, cfg apis.Config) (*model.FullName, error) {
	clean := make(map[string]string, len(m))
	for k, v := range m {
		v = strings.TrimSpace(v)
		if v == "" && k != types.FirstName.String() && k != types.LastName.String() {
			continue
		}
		clean[k] = v
	}
	if err := validator.Map(clean, cfg.Bypass); err != nil {
		return nil, err
	}
	fn, err := fromMap(clean, cfg)
	if err != nil {
		return nil, errs.Wrap(err, clean[types.FirstName.String()]+" "+clean[types.LastName.String()], "map parsing failed")
	}
	return fn, nil
}

func fromMap(m map[string]string, cfg apis.Config) (*model.FullName, error) {
	fn := model.NewFullName(cfg.Policy())

	first, err := model.NewFirstName(m[types.FirstName.String()])
	if err != nil {
		return nil, err
	}
	if err := fn.SetFirstName(first); err != nil {
		return nil, err
	}
	last, err := model.NewLastName(m[types.LastName.String()], "", cfg.Surname)
	if err != nil {
		return nil, err
	}
	if err := fn.SetLastName(last); err != nil {
		return nil, err
	}
	if v, ok := m[types.MiddleName.String()]; ok {
		middle, err := model.NewMiddleNames(strings.Fields(v)...)
		if err != nil {
			return nil, err
		}
		if err := fn.SetMiddleName(middle); err != nil {
			return nil, err
		}
	}
	if v, ok := m[types.Prefix.String()]; ok {
		prefix, err := model.NewPrefix(v)
		if err != nil {
			return nil, err
		}
		if err := fn.SetPrefix(prefix); err != nil {
			return nil, err
		}
	}
	if v, ok := m[types.Suffix.String()]; ok {
		suffix, err := model.NewSuffix(v)
		if err != nil {
			return nil, err
		}
		if err := fn.SetSuffix(suffix); err != nil {
			return nil, err
		}
	}
	return fn, nil
}
