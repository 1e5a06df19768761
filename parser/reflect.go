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
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
	uref "dirpx.dev/namefx/utils/reflect"
)

// TagKey is the struct tag read by the struct strategy.
const TagKey = "namefx"

// NewStructStrategy creates an apis.Strategy for structs whose string
// fields are tagged with a slot name:
//
//	type Person struct {
//		Given  string   `namefx:"firstName"`
//		Middle []string `namefx:"middleName"`
//		Family string   `namefx:"lastName"`
//	}
//
// Pointers to such structs are followed. Structs without any tag are left
// to the next strategy.
func NewStructStrategy() apis.Strategy {
	return structStrategy{}
}

// structStrategy maps tagged fields to slots and hands them to the map
// strategy.
type structStrategy struct{}

// Ensure structStrategy implements apis.Strategy.
var _ apis.Strategy = (*structStrategy)(nil)

// field is one tagged struct field.
type field struct {
	index []int
	slot  types.Namon
	list  bool
}

// plan is the resolved field layout of a struct type; err is set for
// malformed tags.
type plan struct {
	fields []field
	err    error
}

// planCache memoizes plans by struct type.
var planCache sync.Map // key: reflect.Type, val: *plan

// TryParse handles tagged structs and pointers to them.
func (structStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	t, err := uref.Normalize(reflect.TypeOf(raw), 0)
	if err != nil {
		return nil, false, nil
	}
	p := planOf(t)
	if p.err == nil && len(p.fields) == 0 {
		return nil, false, nil
	}
	if p.err != nil {
		return nil, true, p.err
	}
	v, ok := uref.Indirect(reflect.ValueOf(raw), 0)
	if !ok {
		return nil, true, errs.Input("", "nil %s", t)
	}

	m := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		fv, err := v.FieldByIndexErr(f.index)
		if err != nil {
			// Nil embedded pointer: the field is absent.
			continue
		}
		var s string
		if f.list {
			parts := make([]string, fv.Len())
			for i := range parts {
				parts[i] = fv.Index(i).String()
			}
			s = strings.Join(parts, " ")
		} else {
			s = fv.String()
		}
		if prev, ok := m[f.slot.String()]; ok && prev != "" {
			s = prev + " " + s
		}
		m[f.slot.String()] = s
	}
	fn, err := FromMap(m, cfg)
	return fn, true, err
}

// planOf resolves the tagged fields of t with memoization.
func planOf(t reflect.Type) *plan {
	if v, ok := planCache.Load(t); ok {
		return v.(*plan)
	}
	p := &plan{}
	for _, sf := range reflect.VisibleFields(t) {
		tag, ok := sf.Tag.Lookup(TagKey)
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		slot, err := types.ParseNamon(tag)
		if err != nil {
			p = &plan{err: errs.Input(tag, "unknown slot in %s tag of %s.%s", TagKey, t, sf.Name)}
			break
		}
		f := field{index: sf.Index, slot: slot}
		switch {
		case sf.Type.Kind() == reflect.String:
		case sf.Type.Kind() == reflect.Slice && sf.Type.Elem().Kind() == reflect.String:
			f.list = true
		default:
			p = &plan{err: errs.Input(tag, "%s.%s must be a string or a string slice", t, sf.Name)}
		}
		if p.err != nil {
			break
		}
		p.fields = append(p.fields, f)
	}
	actual, _ := planCache.LoadOrStore(t, p)
	return actual.(*plan)
}
