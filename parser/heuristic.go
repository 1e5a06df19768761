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
	"strings"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
)

// Heuristic parses free text by a fixed convention: the first word is the
// first name, the last word the last name and everything in between one
// middle name. Words are split on whitespace and always read first name
// first, whatever cfg.Ordering says. Fewer than two words is an input
// failure.
func Heuristic(text string, cfg apis.Config) (*model.FullName, error) {
	words := strings.Fields(text)
	if len(words) < 2 {
		return nil, errs.Input(text, "cannot infer a full name from %d word(s)", len(words))
	}

	fn := model.NewFullName(cfg.Policy())
	first, err := model.NewFirstName(words[0])
	if err != nil {
		return nil, err
	}
	if err := fn.SetFirstName(first); err != nil {
		return nil, err
	}
	last, err := model.NewLastName(words[len(words)-1], "", cfg.Surname)
	if err != nil {
		return nil, err
	}
	if err := fn.SetLastName(last); err != nil {
		return nil, err
	}
	if interior := words[1 : len(words)-1]; len(interior) > 0 {
		middle, err := model.NewMiddleNames(strings.Join(interior, " "))
		if err != nil {
			return nil, err
		}
		if err := fn.SetMiddleName(middle); err != nil {
			return nil, err
		}
	}
	return fn, nil
}
