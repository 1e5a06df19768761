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

package namefx

import (
	"strings"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/builder"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/flatten"
	"dirpx.dev/namefx/format"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/parser"
	"dirpx.dev/namefx/types"
	"dirpx.dev/namefx/utils/text"
)

// Name is a read-only view over a parsed model.FullName and the
// configuration it was parsed with.
type Name struct {
	fn  *model.FullName
	cfg apis.Config
}

// New parses raw with the default parser chain and a configuration built
// from opts.
func New(raw any, opts ...config.Option) (*Name, error) {
	return NewWithConfig(raw, config.NewConfig(opts...))
}

// NewWithConfig parses raw with the default parser chain and cfg.
func NewWithConfig(raw any, cfg apis.Config) (*Name, error) {
	return newName(parser.Default(), raw, cfg)
}

// FromParser parses raw with p.
func FromParser(p apis.Parser, raw any, opts ...config.Option) (*Name, error) {
	cfg := config.NewConfig(opts...)
	if p == nil {
		return newName(parser.Default(), raw, cfg)
	}
	return newName(p, raw, cfg)
}

// Parse reads free text by convention: first word, optional middle words,
// last word. See parser.Heuristic.
func Parse(text string, opts ...config.Option) (*Name, error) {
	cfg := config.NewConfig(opts...)
	fn, err := parser.Heuristic(text, cfg)
	if err != nil {
		return nil, err
	}
	return &Name{fn: fn, cfg: cfg}, nil
}

// TryParse is Parse returning nil instead of an error.
func TryParse(text string, opts ...config.Option) *Name {
	n, err := Parse(text, opts...)
	if err != nil {
		return nil
	}
	return n
}

func newName(p apis.Parser, raw any, cfg apis.Config) (*Name, error) {
	fn, err := p.Parse(raw, cfg)
	if err != nil {
		return nil, err
	}
	return &Name{fn: fn, cfg: cfg}, nil
}

// Config returns the configuration the name was parsed with.
func (n *Name) Config() apis.Config { return n.cfg }

// FullName returns a copy of the underlying model.
func (n *Name) FullName() *model.FullName { return n.fn.Clone() }

// Prefix returns the prefix, or "".
func (n *Name) Prefix() string {
	if p := n.fn.Prefix(); p != nil {
		return p.Value()
	}
	return ""
}

// First returns the first given name.
func (n *Name) First() string { return n.fn.FirstName().Value() }

// FirstName returns the first given name followed, when withMore is set,
// by the additional given names.
func (n *Name) FirstName(withMore bool) string {
	if withMore {
		return n.fn.FirstName().String()
	}
	return n.fn.FirstName().Value()
}

// Middle returns the middle names.
func (n *Name) Middle() []string {
	names := n.fn.MiddleName()
	out := make([]string, len(names))
	for i, m := range names {
		out[i] = m.Value()
	}
	return out
}

// Last returns the last name rendered by its surname policy.
func (n *Name) Last() string { return n.fn.LastName().String() }

// Suffix returns the suffix, or "".
func (n *Name) Suffix() string {
	if s := n.fn.Suffix(); s != nil {
		return s.Value()
	}
	return ""
}

// Has reports whether slot holds a value.
func (n *Name) Has(slot types.Namon) bool { return n.fn.Has(slot) }

// Get returns the atoms of slot: none when absent, several for middle
// names.
func (n *Name) Get(slot types.Namon) []model.Atom {
	var out []model.Atom
	for a := range n.fn.All(false) {
		if a.Slot() == slot {
			out = append(out, a)
		}
	}
	return out
}

func (n *Name) order(orders []types.Ordering) types.Ordering {
	if len(orders) > 0 {
		return orders[0]
	}
	return n.cfg.Ordering
}

// BirthName renders first, middle and last names. The ordering defaults to
// the configured one.
func (n *Name) BirthName(order ...types.Ordering) string {
	return format.BirthName(n.fn, n.order(order))
}

// Full renders the whole name, prefix and suffix included.
func (n *Name) Full(order ...types.Ordering) string {
	return format.Full(n.fn, n.order(order), n.cfg.Ending)
}

// Short renders the first given name and the last name.
func (n *Name) Short(order ...types.Ordering) string {
	return format.Short(n.fn, n.order(order))
}

// Long is BirthName.
func (n *Name) Long(order ...types.Ordering) string { return n.BirthName(order...) }

// Official renders "[Prefix] LAST, First [Middle][,] [Suffix]".
func (n *Name) Official() string { return format.Official(n.fn, n.cfg.Ending) }

// Initials returns the birth name initials in the configured order.
func (n *Name) Initials(withMiddle bool) []string {
	return format.Initials(n.fn, n.cfg.Ordering, withMiddle)
}

// Format renders the name following pattern; see the format package.
func (n *Name) Format(pattern string) (string, error) {
	return format.Format(pattern, n.fn, n.cfg)
}

// Flatten compacts the name to a character budget; see the flatten package.
func (n *Name) Flatten(opts ...flatten.Option) string { return flatten.Flatten(n.fn, n.cfg, opts...) }

// Zip always compacts the name, middle and last names by default.
func (n *Name) Zip(opts ...flatten.Option) string { return flatten.Zip(n.fn, n.cfg, opts...) }

// Shorten is Short in the configured order.
func (n *Name) Shorten() string { return n.Short() }

// Upper upper-cases the full name.
func (n *Name) Upper() string { return text.Upper(n.Full()) }

// Lower lower-cases the full name.
func (n *Name) Lower() string { return text.Lower(n.Full()) }

// Camel renders the birth name in camelCase.
func (n *Name) Camel() string { return text.Camel(n.Split()) }

// Pascal renders the birth name in PascalCase.
func (n *Name) Pascal() string { return text.Pascal(n.Split()) }

// Snake renders the birth name in snake_case.
func (n *Name) Snake() string { return n.Join("_") }

// Hyphen renders the birth name in kebab-case.
func (n *Name) Hyphen() string { return n.Join("-") }

// Dot renders the birth name in dot.case.
func (n *Name) Dot() string { return n.Join(".") }

// Split returns the words of the birth name.
func (n *Name) Split() []string { return text.Words(n.BirthName()) }

// Join lower-cases the birth name words and joins them with sep.
func (n *Name) Join(sep string) string { return text.Join(n.Split(), sep) }

// Len counts the runes of the birth name.
func (n *Name) Len() int { return text.Len(n.BirthName()) }

// Equal reports whether both names render the same full name.
func (n *Name) Equal(o *Name) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.Full(types.ByFirst) == o.Full(types.ByFirst)
}

// ToMap returns the five slots keyed by slot name; absent slots map to "".
func (n *Name) ToMap() map[string]string {
	return map[string]string{
		types.Prefix.String():     n.Prefix(),
		types.FirstName.String():  n.FirstName(true),
		types.MiddleName.String(): strings.Join(n.Middle(), " "),
		types.LastName.String():   n.Last(),
		types.Suffix.String():     n.Suffix(),
	}
}

// ToSlice returns the five slots in canonical order; absent slots are "".
func (n *Name) ToSlice() []string {
	return []string{n.Prefix(), n.FirstName(true), strings.Join(n.Middle(), " "), n.Last(), n.Suffix()}
}

// String returns the full name.
func (n *Name) String() string { return n.Full() }

// Derive starts a derivative builder at this name.
func (n *Name) Derive() *builder.Derivative { return builder.Derive(n.fn, n.cfg) }

// FromState wraps a derivative state.
func FromState(s builder.State) *Name {
	return &Name{fn: s.FullName.Clone(), cfg: s.Config}
}
