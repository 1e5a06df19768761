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
	"dirpx.dev/namefx/model"
)

// NewAtomizerStrategy creates an apis.Strategy for values implementing
// apis.Atomizer.
func NewAtomizerStrategy() apis.Strategy {
	return &atomizerStrategy{}
}

// atomizerStrategy is a zero-reflection fast path: if raw lists its own
// atoms, parse them with the atoms strategy and stop the chain.
type atomizerStrategy struct{}

// Ensure atomizerStrategy implements apis.Strategy.
var _ apis.Strategy = (*atomizerStrategy)(nil)

// TryParse checks if raw implements apis.Atomizer.
func (*atomizerStrategy) TryParse(raw any, cfg apis.Config) (*model.FullName, bool, error) {
	a, ok := raw.(apis.Atomizer)
	if !ok || a == nil {
		return nil, false, nil
	}
	fn, err := FromAtoms(a.Atoms(), cfg)
	return fn, true, err
}
