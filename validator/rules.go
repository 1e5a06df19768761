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

// Package validator implements the namefx validation engine: per-slot
// character rules, composite validators for structured name pieces, and the
// shape validators for maps, positional lists and tagged atom lists.
//
// Content rules are skipped when bypass is requested; shape rules (counts,
// required and unknown keys) always apply.
package validator

import (
	"regexp"

	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/types"
)

// letter matches one Latin, Latin-1 supplement, Cyrillic or Greek letter.
const letter = `[a-zA-Z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{0400}-\x{04FF}\x{0386}-\x{03CE}]`

var (
	// nameRule accepts first and last names: letter runs joined by a single
	// hyphen, apostrophe, period or space.
	nameRule = regexp.MustCompile(`^` + letter + `+(?:[-'. ]` + letter + `+)*$`)
	// namonRule accepts prefixes and suffixes; a trailing period is allowed.
	namonRule = regexp.MustCompile(`^` + letter + `+(?:[-'. ]` + letter + `+)*\.?$`)
	// middleRule accepts middle names; periods are rejected.
	middleRule = regexp.MustCompile(`^` + letter + `+(?:[-' ]` + letter + `+)*$`)
)

// Rule returns the character rule enforced for slot.
func Rule(slot types.Namon) *regexp.Regexp {
	switch slot {
	case types.Prefix, types.Suffix:
		return namonRule
	case types.MiddleName:
		return middleRule
	default:
		return nameRule
	}
}

// Namon validates a single atom against the rule of slot.
func Namon(value string, slot types.Namon) error {
	if !Rule(slot).MatchString(value) {
		return errs.Validation(slot.String(), value, "invalid characters")
	}
	return nil
}

// Prefix validates a prefix atom.
func Prefix(value string) error { return Namon(value, types.Prefix) }

// Suffix validates a suffix atom.
func Suffix(value string) error { return Namon(value, types.Suffix) }
