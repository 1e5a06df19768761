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

// Package builder stages name construction. A NameBuilder accumulates
// tagged atoms and resolves them into a model.FullName; a Derivative walks
// a resolved name through transformations it can roll back.
//
// Builders are owned by one caller at a time and are not safe for
// concurrent use.
package builder

import (
	"log/slog"
	"slices"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/parser"
	"dirpx.dev/namefx/types"
)

// Hooks are called around Build and Clear. Nil hooks are skipped.
type Hooks struct {
	// PreBuild receives the atoms about to be resolved.
	PreBuild func(atoms []model.Atom)
	// PostBuild receives the resolved name.
	PostBuild func(fn *model.FullName)
	// PreClear receives the atoms about to be dropped.
	PreClear func(atoms []model.Atom)
	// PostClear runs once the queue is empty.
	PostClear func()
}

// NameBuilder is a mutable ordered queue of name atoms.
type NameBuilder struct {
	queue []model.Atom
	hooks Hooks
	log   *slog.Logger
}

// New returns a builder seeded with atoms. Nil atoms are skipped.
func New(atoms ...model.Atom) *NameBuilder {
	b := &NameBuilder{log: slog.Default()}
	return b.Append(atoms...)
}

// WithHooks replaces the build and clear hooks.
func (b *NameBuilder) WithHooks(h Hooks) *NameBuilder {
	b.hooks = h
	return b
}

// WithLogger replaces the logger; nil restores slog.Default.
func (b *NameBuilder) WithLogger(l *slog.Logger) *NameBuilder {
	if l == nil {
		l = slog.Default()
	}
	b.log = l
	return b
}

// Append adds atoms at the end of the queue.
func (b *NameBuilder) Append(atoms ...model.Atom) *NameBuilder {
	for _, a := range atoms {
		if a != nil {
			b.queue = append(b.queue, a)
		}
	}
	return b
}

// Prepend adds atoms at the front of the queue, keeping their order.
func (b *NameBuilder) Prepend(atoms ...model.Atom) *NameBuilder {
	head := make([]model.Atom, 0, len(atoms))
	for _, a := range atoms {
		if a != nil {
			head = append(head, a)
		}
	}
	b.queue = append(head, b.queue...)
	return b
}

// Remove drops the first occurrence of atom.
func (b *NameBuilder) Remove(atom model.Atom) *NameBuilder {
	if i := slices.Index(b.queue, atom); i >= 0 {
		b.queue = slices.Delete(b.queue, i, i+1)
	}
	return b
}

// RemoveFirst drops the head of the queue.
func (b *NameBuilder) RemoveFirst() *NameBuilder {
	if len(b.queue) > 0 {
		b.queue = slices.Delete(b.queue, 0, 1)
	}
	return b
}

// RemoveLast drops the tail of the queue.
func (b *NameBuilder) RemoveLast() *NameBuilder {
	if n := len(b.queue); n > 0 {
		b.queue = slices.Delete(b.queue, n-1, n)
	}
	return b
}

// RemoveWhere drops every atom matching pred.
func (b *NameBuilder) RemoveWhere(pred func(model.Atom) bool) *NameBuilder {
	b.queue = slices.DeleteFunc(b.queue, pred)
	return b
}

// RetainWhere keeps only the atoms matching pred.
func (b *NameBuilder) RetainWhere(pred func(model.Atom) bool) *NameBuilder {
	b.queue = slices.DeleteFunc(b.queue, func(a model.Atom) bool { return !pred(a) })
	return b
}

// Clear empties the queue.
func (b *NameBuilder) Clear() *NameBuilder {
	if b.hooks.PreClear != nil {
		b.hooks.PreClear(b.Atoms())
	}
	b.queue = nil
	if b.hooks.PostClear != nil {
		b.hooks.PostClear()
	}
	return b
}

// Len returns the number of queued atoms.
func (b *NameBuilder) Len() int { return len(b.queue) }

// Atoms returns a copy of the queue.
func (b *NameBuilder) Atoms() []model.Atom { return slices.Clone(b.queue) }

// Build resolves the queue with the atoms strategy. The queue must hold at
// least one first and one last name; otherwise Build fails with an input
// error. The queue is left untouched.
func (b *NameBuilder) Build(cfg apis.Config) (*model.FullName, error) {
	atoms := b.Atoms()
	if !hasSlot(atoms, types.FirstName) || !hasSlot(atoms, types.LastName) {
		b.log.Debug("build rejected", slog.Int("atoms", len(atoms)))
		return nil, errs.Input(describe(atoms), "at least one first name and one last name are required")
	}
	if b.hooks.PreBuild != nil {
		b.hooks.PreBuild(atoms)
	}
	fn, err := parser.FromAtoms(atoms, cfg)
	if err != nil {
		b.log.Debug("build failed", slog.String("config", cfg.Name), slog.Any("error", err))
		return nil, err
	}
	if b.hooks.PostBuild != nil {
		b.hooks.PostBuild(fn)
	}
	return fn, nil
}

func hasSlot(atoms []model.Atom, slot types.Namon) bool {
	return slices.ContainsFunc(atoms, func(a model.Atom) bool { return a.Slot() == slot })
}

func describe(atoms []model.Atom) string {
	s := ""
	for i, a := range atoms {
		if i > 0 {
			s += " "
		}
		s += a.String()
	}
	return s
}
