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
	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
)

// NewCustomStrategy creates an apis.Strategy that delegates to the parser
// set on the configuration.
func NewCustomStrategy() apis.Strategy {
	return &customStrategy{}
}

// customStrategy handles every value once cfg.Parser is set, so callers
// with their own parser never fall through to the built-in strategies.
type customStrategy struct{}

// Ensure customStrategy implements apis.Strategy.
var _ apis.Strategy = (*customStrategy)(nil)

// TryParse calls cfg.Parser when present. Failures that are not kind-tagged
// are wrapped as unknown failures.
func (*customStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	if cfg.Parser == nil {
		return nil, false, nil
	}
	fn, err := cfg.Parser.Parse(raw, cfg)
	if err != nil {
		return nil, true, errs.Wrap(err, source(raw), "custom parser failed")
	}
	if fn == nil {
		return nil, true, errs.Unknown(source(raw), "custom parser returned no name", nil)
	}
	return fn, true, nil
}
