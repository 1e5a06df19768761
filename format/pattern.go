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

package format

import (
	"strings"
	"unicode"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/utils/text"
)

// Shortcut patterns.
const (
	PatternShort    = "short"
	PatternLong     = "long"
	PatternOfficial = "official"
)

// escape introduces an initial directive.
const escape = '$'

// Format renders fn following pattern. Every call re-derives its output.
// Characters outside the directive set fail with a not-allowed error naming
// the character and the pattern. The result is trimmed.
func Format(pattern string, fn *model.FullName, cfg apis.Config) (string, error) {
	switch pattern {
	case PatternShort:
		return Short(fn, cfg.Ordering), nil
	case PatternLong:
		return BirthName(fn, cfg.Ordering), nil
	case PatternOfficial:
		return Official(fn, cfg.Ending), nil
	}

	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == escape {
			if i+1 >= len(runes) {
				return "", errs.NotAllowed("format", pattern, "dangling %q", string(c))
			}
			i++
			out, ok := initial(runes[i], fn)
			if !ok {
				return "", errs.NotAllowed("format", pattern, "%q is not allowed after %q", string(runes[i]), string(escape))
			}
			b.WriteString(out)
			continue
		}
		out, ok := directive(c, fn, cfg)
		if !ok {
			return "", errs.NotAllowed("format", pattern, "%q is not allowed", string(c))
		}
		b.WriteString(out)
	}
	return strings.TrimSpace(b.String()), nil
}

func directive(c rune, fn *model.FullName, cfg apis.Config) (string, bool) {
	var out string
	switch unicode.ToLower(c) {
	case '.', ',', ' ', '-', '_':
		return string(c), true
	case 'b':
		out = BirthName(fn, cfg.Ordering)
	case 'f':
		out = fn.FirstName().String()
	case 'l':
		out = fn.LastName().String()
	case 'm':
		out = Middle(fn)
	case 'o':
		out = Official(fn, cfg.Ending)
	case 'p':
		if p := fn.Prefix(); p != nil {
			out = p.Value()
		}
	case 's':
		if s := fn.Suffix(); s != nil {
			out = s.Value()
		}
	default:
		return "", false
	}
	if unicode.IsUpper(c) {
		out = text.Upper(out)
	}
	return out, true
}

func initial(c rune, fn *model.FullName) (string, bool) {
	var out string
	switch unicode.ToLower(c) {
	case 'f':
		out = text.Initial(fn.FirstName().Value())
	case 'l':
		out = text.Initial(fn.LastName().String())
	case 'm':
		out = text.Initial(Middle(fn))
	default:
		return "", false
	}
	if unicode.IsUpper(c) {
		out = text.Upper(out)
	}
	return out, true
}
