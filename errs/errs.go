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

// Package errs defines the failure taxonomy shared by every namefx package.
//
// Each failure is an *Error tagged with a Kind. Callers branch on the kind
// with errors.Is against the package sentinels, and reach the offending slot
// or source value with errors.As:
//
//	var e *errs.Error
//	if errors.As(err, &e) && e.Kind == errs.KindValidation {
//	    log.Printf("bad %s: %q", e.Slot, e.Source)
//	}
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindUnknown wraps an unexpected underlying failure.
	KindUnknown Kind = iota
	// KindInput reports malformed raw content: short atoms, wrong element
	// count, missing or unknown keys, empty builder accumulation.
	KindInput
	// KindValidation reports slot content rejected by a character rule.
	KindValidation
	// KindNotAllowed reports an operation refused in the current state, or a
	// directive outside the format allow-list.
	KindNotAllowed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindValidation:
		return "validation"
	case KindNotAllowed:
		return "not-allowed"
	default:
		return "unknown"
	}
}

var (
	// ErrInput matches every KindInput failure.
	ErrInput = errors.New("namefx: input error")
	// ErrValidation matches every KindValidation failure.
	ErrValidation = errors.New("namefx: validation error")
	// ErrNotAllowed matches every KindNotAllowed failure.
	ErrNotAllowed = errors.New("namefx: operation not allowed")
	// ErrUnknown matches every KindUnknown failure.
	ErrUnknown = errors.New("namefx: unknown error")
)

// Error is a kind-tagged failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Source is the raw value that caused the failure, rendered as text.
	Source string
	// Message describes the failure.
	Message string
	// Slot names the offending name slot (validation failures).
	Slot string
	// Operation names the refused operation (not-allowed failures).
	Operation string
	// Cause is the underlying failure, if any.
	Cause error
}

// Error formats the failure as
// `namefx(<kind>): [slot: |op: ]message[ (source: "<source>")][: cause]`.
func (e *Error) Error() string {
	if e == nil {
		return "namefx: <nil>"
	}
	var b strings.Builder
	b.WriteString("namefx(")
	b.WriteString(e.Kind.String())
	b.WriteString("): ")
	switch {
	case e.Slot != "":
		b.WriteString(e.Slot)
		b.WriteString(": ")
	case e.Operation != "":
		b.WriteString(e.Operation)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Source != "" {
		fmt.Fprintf(&b, " (source: %q)", e.Source)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindInput:
		return ErrInput
	case KindValidation:
		return ErrValidation
	case KindNotAllowed:
		return ErrNotAllowed
	default:
		return ErrUnknown
	}
}

// Input builds a KindInput failure.
func Input(source, format string, args ...any) *Error {
	return &Error{Kind: KindInput, Source: source, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a KindValidation failure for slot.
func Validation(slot, source, message string) *Error {
	return &Error{Kind: KindValidation, Slot: slot, Source: source, Message: message}
}

// NotAllowed builds a KindNotAllowed failure for operation.
func NotAllowed(operation, source, format string, args ...any) *Error {
	return &Error{Kind: KindNotAllowed, Operation: operation, Source: source, Message: fmt.Sprintf(format, args...)}
}

// Unknown wraps cause as a KindUnknown failure.
func Unknown(source, message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Source: source, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or KindUnknown when err carries no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Wrap returns err unchanged when it already is an *Error, and wraps it as an
// Unknown failure otherwise. A nil err yields nil.
func Wrap(err error, source, message string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Unknown(source, message, err)
}
