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

package model_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
)

func TestNewName_MinLength(t *testing.T) {
	_, err := model.NewName("J", types.FirstName)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInput))

	n, err := model.NewName("Jo", types.MiddleName)
	require.NoError(t, err)
	assert.Equal(t, "Jo", n.Value())
	assert.Equal(t, types.MiddleName, n.Slot())
	assert.Equal(t, 2, n.Len())
}

func TestName_CaseOperations(t *testing.T) {
	n, err := model.NewName("john", types.FirstName)
	require.NoError(t, err)

	assert.Equal(t, "John", n.Capitalize(types.CapsInitial).Value())
	assert.Equal(t, "JOHN", n.Capitalize(types.CapsAll).Value())
	assert.Equal(t, types.CapsAll, n.Caps())
	assert.Equal(t, "jOHN", n.Decapitalize(types.CapsInitial).Value())
	assert.Equal(t, "John", n.Normalize().Value())
	assert.Equal(t, []string{"J"}, n.Initials())
}

func TestFirstName_More(t *testing.T) {
	f, err := model.NewFirstName("John", "Paul", "George")
	require.NoError(t, err)

	assert.True(t, f.HasMore())
	assert.Equal(t, "John Paul George", f.String())
	assert.Equal(t, "John", f.Value())
	assert.Equal(t, []string{"J"}, f.Initials(false))
	assert.Equal(t, []string{"J", "P", "G"}, f.Initials(true))
	assert.Len(t, f.AsNames(), 3)

	more := f.More()
	more[0] = "Ringo"
	assert.Equal(t, []string{"Paul", "George"}, f.More(), "More must return a copy")

	f.Capitalize(types.CapsAll)
	assert.Equal(t, "JOHN PAUL GEORGE", f.String())

	_, err = model.NewFirstName("John", "P")
	assert.True(t, errors.Is(err, errs.ErrInput))
}

func TestLastName_Render(t *testing.T) {
	l, err := model.NewLastName("Garcia", "Lopez", types.SurnameFather)
	require.NoError(t, err)

	assert.Equal(t, "Garcia", l.String())
	assert.Equal(t, "Lopez", l.Render(types.SurnameMother))
	assert.Equal(t, "Garcia-Lopez", l.Render(types.SurnameHyphenated))
	assert.Equal(t, "Garcia Lopez", l.Render(types.SurnameAll))
	assert.Equal(t, []string{"G", "L"}, l.InitialsAs(types.SurnameAll))
	assert.Equal(t, []string{"L"}, l.InitialsAs(types.SurnameMother))
	assert.Equal(t, "Garcia-Lopez", l.WithFormat(types.SurnameHyphenated).String())
	assert.Equal(t, "Garcia", l.String(), "WithFormat must not touch the receiver")

	solo, err := model.NewLastName("Smith", "", types.SurnameMother)
	require.NoError(t, err)
	assert.Equal(t, "Smith", solo.String())
	assert.False(t, solo.HasMother())
}

func fullName(t *testing.T, p model.Policy) *model.FullName {
	t.Helper()
	fn := model.NewFullName(p)
	first, err := model.NewFirstName("John")
	require.NoError(t, err)
	last, err := model.NewLastName("Smith", "", p.Surname)
	require.NoError(t, err)
	require.NoError(t, fn.SetFirstName(first))
	require.NoError(t, fn.SetLastName(last))
	return fn
}

func TestFullName_SetPrefix_TitlePolicy(t *testing.T) {
	uk := fullName(t, model.Policy{Title: types.TitleUK})
	p, _ := model.NewPrefix("Mr")
	require.NoError(t, uk.SetPrefix(p))
	assert.Equal(t, "Mr", uk.Prefix().Value())

	us := fullName(t, model.Policy{Title: types.TitleUS})
	require.NoError(t, us.SetPrefix(p))
	assert.Equal(t, "Mr.", us.Prefix().Value())

	dotted, _ := model.NewPrefix("Dr.")
	require.NoError(t, us.SetPrefix(dotted))
	assert.Equal(t, "Dr.", us.Prefix().Value(), "no double period")
}

func TestFullName_SettersValidate(t *testing.T) {
	fn := fullName(t, model.Policy{})

	bad, err := model.NewFirstName("J4ne")
	require.NoError(t, err)
	err = fn.SetFirstName(bad)
	require.Error(t, err)
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindValidation, e.Kind)
	assert.Equal(t, "firstName", e.Slot)
	assert.Equal(t, "J4ne", e.Source)
	assert.Equal(t, "John", fn.FirstName().Value(), "failed set must not commit")

	bypass := fullName(t, model.Policy{Bypass: true})
	require.NoError(t, bypass.SetFirstName(bad))
	assert.Equal(t, "J4ne", bypass.FirstName().Value())

	wrongTag, _ := model.NewName("Ben", types.FirstName)
	err = bypass.SetMiddleName([]*model.Name{wrongTag})
	assert.True(t, errors.Is(err, errs.ErrValidation), "tag check survives bypass")
}

func TestFullName_HasAndAll(t *testing.T) {
	fn := fullName(t, model.Policy{})
	assert.False(t, fn.Has(types.MiddleName))
	require.NoError(t, fn.SetMiddleName(nil))
	assert.False(t, fn.Has(types.MiddleName))

	first, _ := model.NewFirstName("John", "Paul")
	last, _ := model.NewLastName("Garcia", "Lopez", types.SurnameFather)
	mids, _ := model.NewMiddleNames("Ben")
	pre, _ := model.NewPrefix("Mr")
	suf, _ := model.NewSuffix("Jr")
	require.NoError(t, fn.SetFirstName(first))
	require.NoError(t, fn.SetLastName(last))
	require.NoError(t, fn.SetMiddleName(mids))
	require.NoError(t, fn.SetPrefix(pre))
	require.NoError(t, fn.SetSuffix(suf))

	values := func(flat bool) []string {
		var out []string
		for a := range fn.All(flat) {
			out = append(out, a.Value())
		}
		return out
	}
	assert.Equal(t, []string{"Mr", "John", "Ben", "Garcia", "Jr"}, values(false))
	assert.Equal(t, []string{"Mr", "John", "Paul", "Ben", "Garcia", "Lopez", "Jr"}, values(true))

	slots := slices.Collect(func(yield func(types.Namon) bool) {
		for a := range fn.All(false) {
			if !yield(a.Slot()) {
				return
			}
		}
	})
	assert.Equal(t, types.Namons, slots)
}

func TestFullName_Clone(t *testing.T) {
	fn := fullName(t, model.Policy{})
	c := fn.Clone()
	c.FirstName().Capitalize(types.CapsAll)
	assert.Equal(t, "John", fn.FirstName().Value())
	assert.Equal(t, "JOHN", c.FirstName().Value())
}
