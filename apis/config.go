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

package apis

import (
	"reflect"

	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
)

// Config carries the knobs that steer parsing and rendering.
// It is passed by value and should be treated as immutable by implementations;
// combine configurations with config.Merge instead of sharing them.
type Config struct {
	// Name identifies the configuration in a Registry.
	Name string

	// Ordering states whether positional raw input lists the given name or
	// the family name first.
	Ordering types.Ordering

	// Separator is the token used to split raw strings.
	Separator types.Separator

	// Title controls whether prefixes get a trailing period.
	Title types.Title

	// Ending puts a comma before the suffix in full and official renderings.
	Ending bool

	// Bypass disables character validation; shape checks still apply.
	Bypass bool

	// Surname is the default rendering policy for compound last names.
	Surname types.Surname

	// Parser is an optional custom parser tried before the built-in
	// strategies.
	Parser Parser
}

// Policy extracts the knobs a model.FullName applies in its setters.
func (c Config) Policy() model.Policy {
	return model.Policy{Bypass: c.Bypass, Title: c.Title, Surname: c.Surname}
}

// Equal compares every knob. Custom parsers are compared by identity:
// comparable values with ==, function values (such as ParserFunc) by code
// pointer. Two closures built from the same function literal are therefore
// equal.
func (c Config) Equal(o Config) bool {
	if c.Name != o.Name || c.Ordering != o.Ordering || c.Separator != o.Separator ||
		c.Title != o.Title || c.Ending != o.Ending || c.Bypass != o.Bypass || c.Surname != o.Surname {
		return false
	}
	return sameParser(c.Parser, o.Parser)
}

func sameParser(a, b Parser) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	defer func() {
		// Uncomparable dynamic types panic on ==.
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
