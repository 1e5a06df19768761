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
	"dirpx.dev/namefx/index"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/validator"
)

// NewStringStrategy creates an apis.Strategy for separator-delimited strings.
func NewStringStrategy() apis.Strategy {
	return &stringStrategy{}
}

// stringStrategy splits on cfg.Separator and hands the pieces to the list
// strategy.
type stringStrategy struct{}

// Ensure stringStrategy implements apis.Strategy.
var _ apis.Strategy = (*stringStrategy)(nil)

// TryParse handles string values.
func (*stringStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, false, nil
	}
	fn, err := FromString(s, cfg)
	return fn, true, err
}

// FromString splits s on the configured separator and parses the pieces
// positionally.
func FromString(s string, cfg apis.Config) (*model.FullName, error) {
	return FromList(Split(s, cfg.Separator), cfg)
}

// Split cuts s on sep and trims every piece. Runs of spaces count as one
// separator; the empty separator never splits.
func Split(s string, sep types.Separator) []string {
	switch sep {
	case types.Space:
		return strings.Fields(s)
	case types.Empty:
		return []string{strings.TrimSpace(s)}
	}
	parts := strings.Split(s, sep.Token())
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// NewListStrategy creates an apis.Strategy for ordered string lists.
func NewListStrategy() apis.Strategy {
	return &listStrategy{}
}

// listStrategy distributes list elements over slots by position.
type listStrategy struct{}

// Ensure listStrategy implements apis.Strategy.
var _ apis.Strategy = (*listStrategy)(nil)

// TryParse handles []string values.
func (*listStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	values, ok := raw.([]string)
	if !ok {
		return nil, false, nil
	}
	fn, err := FromList(values, cfg)
	return fn, true, err
}

// FromList parses an ordered list of 2 to 5 elements. The slot of every
// element follows from cfg.Ordering and the element count:
// 2 gives first and last name, 3 adds a middle name, 4 a prefix and 5 a
// suffix. values is not modified.
func FromList(values []string, cfg apis.Config) (*model.FullName, error) {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	if err := validator.List(trimmed, cfg.Ordering, cfg.Bypass); err != nil {
		return nil, err
	}

	idx := index.Resolve(cfg.Ordering, len(trimmed))
	fn := model.NewFullName(cfg.Policy())

	first, err := model.NewFirstName(trimmed[idx.FirstName])
	if err != nil {
		return nil, err
	}
	if err := fn.SetFirstName(first); err != nil {
		return nil, err
	}
	last, err := model.NewLastName(trimmed[idx.LastName], "", cfg.Surname)
	if err != nil {
		return nil, err
	}
	if err := fn.SetLastName(last); err != nil {
		return nil, err
	}
	if idx.MiddleName != index.Absent {
		middle, err := model.NewMiddleNames(trimmed[idx.MiddleName])
		if err != nil {
			return nil, err
		}
		if err := fn.SetMiddleName(middle); err != nil {
			return nil, err
		}
	}
	if idx.Prefix != index.Absent {
		prefix, err := model.NewPrefix(trimmed[idx.Prefix])
		if err != nil {
			return nil, err
		}
		if err := fn.SetPrefix(prefix); err != nil {
			return nil, err
		}
	}
	if idx.Suffix != index.Absent {
		suffix, err := model.NewSuffix(trimmed[idx.Suffix])
		if err != nil {
			return nil, err
		}
		if err := fn.SetSuffix(suffix); err != nil {
			return nil, err
		}
	}
	return fn, nil
}
