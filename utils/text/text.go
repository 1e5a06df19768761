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

// Package text holds the Unicode helpers behind name casing and
// normalization.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes s into NFC form and title-cases every word, so that
// "jOHN" and "john" both become "John".
func Normalize(s string) string {
	return cases.Title(language.Und).String(norm.NFC.String(s))
}

// Upper upper-cases s.
func Upper(s string) string { return cases.Upper(language.Und).String(s) }

// Lower lower-cases s.
func Lower(s string) string { return cases.Lower(language.Und).String(s) }

// UpperInitial upper-cases the first rune of s.
func UpperInitial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerInitial lower-cases the first rune of s.
func LowerInitial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Initial returns the first rune of s as a string, or "" for an empty s.
func Initial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Len counts runes.
func Len(s string) int { return utf8.RuneCountInString(s) }

// Words splits s on whitespace, hyphens and underscores. It backs the
// camel/pascal/snake style helpers.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
}

// Camel renders words in camelCase.
func Camel(words []string) string {
	p := Pascal(words)
	return LowerInitial(p)
}

// Pascal renders words in PascalCase.
func Pascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(UpperInitial(Lower(w)))
	}
	return b.String()
}

// Join lower-cases words and joins them with sep (snake_case, kebab-case,
// dot.case).
func Join(words []string, sep string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Lower(w)
	}
	return strings.Join(out, sep)
}
