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

package namefx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/namefx"
	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/builder"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/flatten"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
)

func johnSmith(t *testing.T) *namefx.Name {
	t.Helper()
	n, err := namefx.New("Mr John Ben Smith Ph.D")
	require.NoError(t, err)
	return n
}

func TestName_OfficialFromDelimitedString(t *testing.T) {
	n := johnSmith(t)
	assert.Equal(t, "Mr SMITH, John Ben Ph.D", n.Official())

	got, err := n.Format("official")
	require.NoError(t, err)
	assert.Equal(t, "Mr SMITH, John Ben Ph.D", got)
}

func TestName_ShortenKeepsFirstAndLast(t *testing.T) {
	assert.Equal(t, "John Smith", johnSmith(t).Shorten())
}

func TestName_ZipDefaultsToMiddleAndLast(t *testing.T) {
	n := johnSmith(t)
	assert.Equal(t, "John B. S.", n.Zip())
	assert.Equal(t, "John B. S.", n.Zip(flatten.WithBy(types.FlatMidLast)))
}

func TestNew_ListByLastOrdering(t *testing.T) {
	n, err := namefx.New([]string{"Smith", "John", "Ben"}, config.WithOrdering(types.ByLast))
	require.NoError(t, err)

	assert.Equal(t, "John", n.First())
	assert.Equal(t, []string{"Ben"}, n.Middle())
	assert.Equal(t, "Smith", n.Last())
	assert.Equal(t, "Smith John Ben", n.BirthName())
	assert.Equal(t, "John Ben Smith", n.BirthName(types.ByFirst))
}

func TestNew_MapReportsInvalidSlot(t *testing.T) {
	_, err := namefx.New(map[string]string{"firstName": "J4ne", "lastName": "Doe"})
	require.Error(t, err)

	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindValidation, e.Kind)
	assert.Equal(t, "firstName", e.Slot)

	n, err := namefx.New(map[string]string{"firstName": "Jane", "lastName": "Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", n.String())
}

func TestBuilder_BuildThenClosedDerivative(t *testing.T) {
	first, err := model.NewFirstName("John")
	require.NoError(t, err)
	last, err := model.NewLastName("Smith", "", types.SurnameFather)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	fn, err := builder.New().Append(first).Append(last).Build(cfg)
	require.NoError(t, err)

	n, err := namefx.NewWithConfig(fn, cfg)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", n.String())

	d := n.Derive()
	d.Close()
	_, err = d.Flip()
	assert.True(t, errors.Is(err, errs.ErrNotAllowed))
	_, err = d.Rollback()
	assert.True(t, errors.Is(err, errs.ErrNotAllowed))
	assert.Equal(t, "John Smith", namefx.FromState(d.Current()).String())
}

func TestName_Accessors(t *testing.T) {
	n := johnSmith(t)

	assert.Equal(t, "Mr", n.Prefix())
	assert.Equal(t, "Ph.D", n.Suffix())
	assert.True(t, n.Has(types.MiddleName))
	assert.Len(t, n.Get(types.MiddleName), 1)
	assert.Equal(t, "Mr", n.Get(types.Prefix)[0].Value())
	assert.Equal(t, "John Ben Smith", n.Long())
	assert.Equal(t, "Mr John Ben Smith Ph.D", n.Full())
	assert.Equal(t, []string{"J", "B", "S"}, n.Initials(true))
	assert.Equal(t, []string{"J", "S"}, n.Initials(false))
	assert.Equal(t, 14, n.Len())
}

func TestName_CaseHelpers(t *testing.T) {
	n := johnSmith(t)

	assert.Equal(t, "MR JOHN BEN SMITH PH.D", n.Upper())
	assert.Equal(t, "mr john ben smith ph.d", n.Lower())
	assert.Equal(t, "johnBenSmith", n.Camel())
	assert.Equal(t, "JohnBenSmith", n.Pascal())
	assert.Equal(t, "john_ben_smith", n.Snake())
	assert.Equal(t, "john-ben-smith", n.Hyphen())
	assert.Equal(t, "john.ben.smith", n.Dot())
	assert.Equal(t, []string{"John", "Ben", "Smith"}, n.Split())
}

func TestName_Serialization(t *testing.T) {
	n := johnSmith(t)

	assert.Equal(t, map[string]string{
		"prefix":     "Mr",
		"firstName":  "John",
		"middleName": "Ben",
		"lastName":   "Smith",
		"suffix":     "Ph.D",
	}, n.ToMap())
	assert.Equal(t, []string{"Mr", "John", "Ben", "Smith", "Ph.D"}, n.ToSlice())

	// A map rendering parses back to an equal name.
	again, err := namefx.New(n.ToMap())
	require.NoError(t, err)
	assert.True(t, n.Equal(again))
}

func TestName_Immutable(t *testing.T) {
	n := johnSmith(t)
	fn := n.FullName()
	require.NoError(t, fn.SetSuffix(nil))

	assert.Equal(t, "Ph.D", n.Suffix())
}

func TestParse_Heuristic(t *testing.T) {
	n, err := namefx.Parse("John Ben Carl Smith")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben Carl"}, n.Middle())

	_, err = namefx.Parse("Cher")
	assert.True(t, errors.Is(err, errs.ErrInput))
	assert.Nil(t, namefx.TryParse("Cher"))
	assert.NotNil(t, namefx.TryParse("Jane Doe"))
}

func TestFromParser(t *testing.T) {
	p := apis.ParserFunc(func(raw any, cfg apis.Config) (*model.FullName, error) {
		first, err := model.NewFirstName("Parsed")
		if err != nil {
			return nil, err
		}
		last, err := model.NewLastName("Custom", "", cfg.Surname)
		if err != nil {
			return nil, err
		}
		fn := model.NewFullName(cfg.Policy())
		if err := fn.SetFirstName(first); err != nil {
			return nil, err
		}
		return fn, fn.SetLastName(last)
	})

	n, err := namefx.FromParser(p, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "Parsed Custom", n.String())
}

func TestBypass(t *testing.T) {
	_, err := namefx.New("J4ne D0e")
	assert.True(t, errors.Is(err, errs.ErrValidation))

	n, err := namefx.New("J4ne D0e", config.WithBypass(true))
	require.NoError(t, err)
	assert.Equal(t, "J4ne D0e", n.String())

	// Structural rules hold under bypass.
	_, err = namefx.New("J4ne", config.WithBypass(true))
	assert.True(t, errors.Is(err, errs.ErrInput))
}
