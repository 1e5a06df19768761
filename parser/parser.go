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

// Package parser turns raw input into a model.FullName. Each supported raw
// shape is handled by one apis.Strategy; a chain tries them in order.
//
// Supported shapes are a separator-delimited string, an ordered []string, a
// slot-keyed map (map[string]string or map[types.Namon]string), a list of
// tagged atoms ([]model.Atom or []*model.Name), a pre-built
// *model.FullName, any apis.Atomizer and structs with namefx field tags.
// A custom apis.Parser set on the configuration takes
// precedence over all of them.
package parser

import (
	"fmt"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
)

// New constructs an apis.Parser that tries the given strategies in order.
// Nil strategies are ignored. The returned parser is safe for concurrent use
// provided strategies themselves are safe for concurrent TryParse calls.
func New(strategies ...apis.Strategy) apis.Parser {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// Default constructs the built-in chain: custom parser, atomizer, string,
// list, map, atoms, pre-built full name and tagged struct.
func Default() apis.Parser {
	return New(
		NewCustomStrategy(),
		NewAtomizerStrategy(),
		NewStringStrategy(),
		NewListStrategy(),
		NewMapStrategy(),
		NewAtomsStrategy(),
		NewFullNameStrategy(),
		NewStructStrategy(),
	)
}

// Parse runs the default chain over raw.
func Parse(raw any, cfg apis.Config) (*model.FullName, error) {
	return Default().Parse(raw, cfg)
}

// chain is an immutable, order-preserving parser over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Parse runs strategies in order until one handles the value. Values no
// strategy handles are rejected with an input failure.
func (c chain) Parse(raw any, cfg apis.Config) (*model.FullName, error) {
	for _, s := range c.strats {
		fn, ok, err := s.TryParse(raw, cfg)
		if !ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		if fn == nil || !fn.Complete() {
			return nil, errs.Input(source(raw), "parsing did not produce a first and a last name")
		}
		return fn, nil
	}
	return nil, errs.Input(source(raw), "unsupported raw input of type %T", raw)
}

func source(raw any) string {
	if s, ok := raw.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(raw)
}
