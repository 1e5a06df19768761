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

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/namefx/builder"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/format"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
)

func first(t *testing.T, v string) *model.FirstName {
	t.Helper()
	n, err := model.NewFirstName(v)
	require.NoError(t, err)
	return n
}

func last(t *testing.T, v string) *model.LastName {
	t.Helper()
	n, err := model.NewLastName(v, "", types.SurnameFather)
	require.NoError(t, err)
	return n
}

func name(t *testing.T, v string, slot types.Namon) *model.Name {
	t.Helper()
	n, err := model.NewName(v, slot)
	require.NoError(t, err)
	return n
}

func TestNameBuilder_Build(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New().Append(first(t, "John")).Append(last(t, "Smith"))

	fn, err := b.Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", format.BirthName(fn, cfg.Ordering))
	assert.Equal(t, 2, b.Len(), "build leaves the queue untouched")
}

func TestNameBuilder_BuildRequiresFirstAndLast(t *testing.T) {
	for _, b := range []*builder.NameBuilder{
		builder.New(),
		builder.New(first(t, "John")),
		builder.New(last(t, "Smith"), name(t, "Ben", types.MiddleName)),
	} {
		_, err := b.Build(config.DefaultConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInput))
	}
}

func TestNameBuilder_QueueOperations(t *testing.T) {
	john, smith := first(t, "John"), last(t, "Smith")
	mr, ben, jr := name(t, "Mr", types.Prefix), name(t, "Ben", types.MiddleName), name(t, "Jr", types.Suffix)

	b := builder.New(john, nil, smith).Prepend(mr).Append(ben, jr)
	assert.Equal(t, []model.Atom{mr, john, smith, ben, jr}, b.Atoms())

	b.Remove(ben)
	assert.Equal(t, []model.Atom{mr, john, smith, jr}, b.Atoms())

	b.RemoveFirst().RemoveLast()
	assert.Equal(t, []model.Atom{john, smith}, b.Atoms())

	b.Append(ben).RemoveWhere(func(a model.Atom) bool { return a.Slot() == types.MiddleName })
	assert.Equal(t, 2, b.Len())

	b.Append(mr).RetainWhere(func(a model.Atom) bool { return a.Slot() != types.Prefix })
	assert.Equal(t, []model.Atom{john, smith}, b.Atoms())

	// Mutating the returned copy does not touch the queue.
	atoms := b.Atoms()
	atoms[0] = nil
	assert.Equal(t, john, b.Atoms()[0])

	builder.New().RemoveFirst().RemoveLast()
}

func TestNameBuilder_Hooks(t *testing.T) {
	var calls []string
	b := builder.New(first(t, "Jane"), last(t, "Doe")).WithHooks(builder.Hooks{
		PreBuild:  func(atoms []model.Atom) { calls = append(calls, "preBuild") },
		PostBuild: func(fn *model.FullName) { calls = append(calls, "postBuild:"+fn.FirstName().Value()) },
		PreClear:  func(atoms []model.Atom) { calls = append(calls, "preClear") },
		PostClear: func() { calls = append(calls, "postClear") },
	})

	_, err := b.Build(config.DefaultConfig())
	require.NoError(t, err)
	b.Clear()

	assert.Equal(t, []string{"preBuild", "postBuild:Jane", "preClear", "postClear"}, calls)
	assert.Zero(t, b.Len())
}

func TestDerivative_Transitions(t *testing.T) {
	cfg := config.DefaultConfig()
	fn, err := builder.New(
		name(t, "Mr", types.Prefix), first(t, "John"), name(t, "Ben", types.MiddleName),
		last(t, "Smith"), name(t, "Ph.D", types.Suffix),
	).Build(cfg)
	require.NoError(t, err)

	d := builder.Derive(fn, cfg)
	var seen []string
	unsubscribe := d.Subscribe(func(s builder.State) {
		seen = append(seen, format.Full(s.FullName, s.Config.Ordering, false))
	})

	s, err := d.Shorten()
	require.NoError(t, err)
	assert.Equal(t, "John Smith", format.Full(s.FullName, s.Config.Ordering, false))

	s, err = d.Flip()
	require.NoError(t, err)
	assert.Equal(t, types.ByLast, s.Config.Ordering)

	s, err = d.ChangeCase(builder.CaseUpper)
	require.NoError(t, err)
	assert.Equal(t, "SMITH JOHN", format.BirthName(s.FullName, s.Config.Ordering))

	unsubscribe()
	unsubscribe()

	s, err = d.Rollback()
	require.NoError(t, err)
	assert.Equal(t, "Smith John", format.BirthName(s.FullName, s.Config.Ordering))
	assert.Equal(t, 3, d.Depth())

	assert.Equal(t, []string{"John Smith", "Smith John", "SMITH JOHN"}, seen)
	// The source name is never touched.
	assert.Equal(t, "Mr John Ben Smith Ph.D", format.Full(fn, types.ByFirst, false))
}

func TestDerivative_RollbackAtInitialIsNoop(t *testing.T) {
	fn, err := builder.New(first(t, "Jane"), last(t, "Doe")).Build(config.DefaultConfig())
	require.NoError(t, err)

	d := builder.Derive(fn, config.DefaultConfig())
	initial := d.Current()

	s, err := d.Rollback()
	require.NoError(t, err)
	assert.Same(t, initial.FullName, s.FullName)
	assert.Equal(t, 1, d.Depth())
}

func TestDerivative_NoReplay(t *testing.T) {
	fn, err := builder.New(first(t, "Jane"), last(t, "Doe")).Build(config.DefaultConfig())
	require.NoError(t, err)

	d := builder.Derive(fn, config.DefaultConfig())
	_, err = d.Reorder(types.ByLast)
	require.NoError(t, err)

	var got []types.Ordering
	d.Subscribe(func(s builder.State) { got = append(got, s.Config.Ordering) })
	_, err = d.Reorder(types.ByFirst)
	require.NoError(t, err)

	assert.Equal(t, []types.Ordering{types.ByFirst}, got)
}

func TestDerivative_ChangeCaseTitle(t *testing.T) {
	fn, err := builder.New(first(t, "jOHN"), last(t, "smith")).Build(config.NewConfig(config.WithBypass(true)))
	require.NoError(t, err)

	d := builder.Derive(fn, config.DefaultConfig())
	s, err := d.ChangeCase(builder.CaseTitle)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", format.BirthName(s.FullName, types.ByFirst))

	s, err = d.ChangeCase(builder.CaseLower)
	require.NoError(t, err)
	assert.Equal(t, "john smith", format.BirthName(s.FullName, types.ByFirst))
}

func TestDerivative_Closed(t *testing.T) {
	cfg := config.DefaultConfig()
	fn, err := builder.New().Append(first(t, "John")).Append(last(t, "Smith")).Build(cfg)
	require.NoError(t, err)

	d := builder.Derive(fn, cfg)
	_, err = d.Shorten()
	require.NoError(t, err)
	calls := 0
	d.Subscribe(func(builder.State) { calls++ })

	d.Close()
	d.Close()
	assert.True(t, d.Closed())

	ops := map[string]func() (builder.State, error){
		"reorder":  func() (builder.State, error) { return d.Reorder(types.ByLast) },
		"flip":     d.Flip,
		"shorten":  d.Shorten,
		"case":     func() (builder.State, error) { return d.ChangeCase(builder.CaseUpper) },
		"rollback": d.Rollback,
	}
	for op, call := range ops {
		s, err := call()
		require.Error(t, err, op)
		assert.True(t, errors.Is(err, errs.ErrNotAllowed), op)
		assert.Equal(t, "John Smith", format.BirthName(s.FullName, s.Config.Ordering), op)
	}

	assert.Equal(t, "John Smith", format.BirthName(d.Current().FullName, cfg.Ordering))
	assert.Zero(t, calls)
	assert.Equal(t, 2, d.Depth())

	unsubscribe := d.Subscribe(func(builder.State) { calls++ })
	unsubscribe()
}

func TestParseCase(t *testing.T) {
	for _, c := range []builder.Case{builder.CaseUpper, builder.CaseLower, builder.CaseTitle} {
		got, err := builder.ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := builder.ParseCase("sideways")
	assert.True(t, errors.Is(err, types.ErrUnknownValue))
}
