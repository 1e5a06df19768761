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

package builder

import (
	"fmt"
	"log/slog"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/types"
)

// State is one committed value of a Derivative.
type State struct {
	// FullName is the resolved name; treat it as read-only.
	FullName *model.FullName
	// Config is the configuration the name is rendered with.
	Config apis.Config
}

// Case selects a case transformation.
type Case uint8

const (
	// CaseUpper upper-cases every part.
	CaseUpper Case = iota
	// CaseLower lower-cases every part.
	CaseLower
	// CaseTitle normalizes every part to title case.
	CaseTitle
)

// String returns "upper", "lower" or "title".
func (c Case) String() string {
	switch c {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	case CaseTitle:
		return "title"
	}
	return fmt.Sprintf("Case(%d)", uint8(c))
}

// ParseCase accepts "upper", "lower" or "title".
func ParseCase(s string) (Case, error) {
	switch s {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "title":
		return CaseTitle, nil
	}
	return 0, fmt.Errorf("%w: case %q", types.ErrUnknownValue, s)
}

// Derivative holds a stack of committed states. Every operation commits a
// new state computed from the current one; Rollback pops it again. Once
// closed, only Current remains usable.
type Derivative struct {
	history []State
	closed  bool
	subs    []*subscriber
	log     *slog.Logger
}

type subscriber struct {
	fn func(State)
}

// Derive starts a derivative at a copy of fn rendered with cfg.
func Derive(fn *model.FullName, cfg apis.Config) *Derivative {
	return &Derivative{
		history: []State{{FullName: fn.Clone(), Config: cfg}},
		log:     slog.Default(),
	}
}

// WithLogger replaces the logger; nil restores slog.Default.
func (d *Derivative) WithLogger(l *slog.Logger) *Derivative {
	if l == nil {
		l = slog.Default()
	}
	d.log = l
	return d
}

// Current returns the last committed state. It stays readable after Close.
func (d *Derivative) Current() State { return d.history[len(d.history)-1] }

// Depth returns the number of committed states, the initial one included.
func (d *Derivative) Depth() int { return len(d.history) }

// Closed reports whether Close was called.
func (d *Derivative) Closed() bool { return d.closed }

// Subscribe registers fn for every state committed from now on, including
// rollbacks. Delivery is synchronous and in commit order. The returned
// function unsubscribes; it is safe to call more than once.
func (d *Derivative) Subscribe(fn func(State)) (unsubscribe func()) {
	if d.closed || fn == nil {
		return func() {}
	}
	s := &subscriber{fn: fn}
	d.subs = append(d.subs, s)
	return func() {
		for i, cur := range d.subs {
			if cur == s {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Reorder commits the current name rendered with ordering.
func (d *Derivative) Reorder(ordering types.Ordering) (State, error) {
	if err := d.open("reorder"); err != nil {
		return d.Current(), err
	}
	cur := d.Current()
	cfg := cur.Config
	cfg.Ordering = ordering
	return d.commit(State{FullName: cur.FullName.Clone(), Config: cfg}), nil
}

// Flip commits the current name rendered with the opposite ordering.
func (d *Derivative) Flip() (State, error) {
	if err := d.open("flip"); err != nil {
		return d.Current(), err
	}
	return d.Reorder(d.Current().Config.Ordering.Flip())
}

// Shorten commits a name holding only the first given name and the last
// name.
func (d *Derivative) Shorten() (State, error) {
	if err := d.open("shorten"); err != nil {
		return d.Current(), err
	}
	cur := d.Current()
	fn := model.NewFullName(cur.FullName.Policy())

	first, err := model.NewFirstName(cur.FullName.FirstName().Value())
	if err != nil {
		return cur, err
	}
	if err := fn.SetFirstName(first); err != nil {
		return cur, err
	}
	if err := fn.SetLastName(cur.FullName.LastName().Clone()); err != nil {
		return cur, err
	}
	return d.commit(State{FullName: fn, Config: cur.Config}), nil
}

// ChangeCase commits the current name with every part re-cased.
func (d *Derivative) ChangeCase(c Case) (State, error) {
	if err := d.open("change case"); err != nil {
		return d.Current(), err
	}
	cur := d.Current()
	fn := cur.FullName.Clone()
	for atom := range fn.All(false) {
		recase(atom, c)
	}
	return d.commit(State{FullName: fn, Config: cur.Config}), nil
}

// Rollback discards the current state and returns the previous one. At the
// initial state it is a no-op returning that state.
func (d *Derivative) Rollback() (State, error) {
	if err := d.open("rollback"); err != nil {
		return d.Current(), err
	}
	if len(d.history) == 1 {
		return d.Current(), nil
	}
	d.history = d.history[:len(d.history)-1]
	cur := d.Current()
	d.broadcast(cur)
	return cur, nil
}

// Close makes the derivative terminal and releases its subscribers.
// Closing twice is a no-op.
func (d *Derivative) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.subs = nil
	d.log.Debug("derivative closed", slog.Int("depth", len(d.history)))
}

func (d *Derivative) open(operation string) error {
	if d.closed {
		return errs.NotAllowed(operation, d.Current().FullName.FirstName().Value(), "derivative is closed")
	}
	return nil
}

func (d *Derivative) commit(s State) State {
	d.history = append(d.history, s)
	d.broadcast(s)
	return s
}

func (d *Derivative) broadcast(s State) {
	// Copy so handlers may unsubscribe during delivery.
	subs := append([]*subscriber(nil), d.subs...)
	for _, sub := range subs {
		sub.fn(s)
	}
}

func recase(atom model.Atom, c Case) {
	switch a := atom.(type) {
	case *model.Name:
		switch c {
		case CaseUpper:
			a.Capitalize(types.CapsAll)
		case CaseLower:
			a.Decapitalize(types.CapsAll)
		default:
			a.Normalize()
		}
	case *model.FirstName:
		switch c {
		case CaseUpper:
			a.Capitalize(types.CapsAll)
		case CaseLower:
			a.Decapitalize(types.CapsAll)
		default:
			a.Normalize()
		}
	case *model.LastName:
		switch c {
		case CaseUpper:
			a.Capitalize(types.CapsAll)
		case CaseLower:
			a.Decapitalize(types.CapsAll)
		default:
			a.Normalize()
		}
	}
}
