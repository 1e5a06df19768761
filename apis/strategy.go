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

package apis

import "dirpx.dev/namefx/model"

// Strategy is a pluggable parsing step. A parser chain tries strategies in
// order (e.g., Custom -> String -> List -> Map -> Atoms -> FullName).
type Strategy interface {
	// TryParse attempts to parse raw according to cfg. It returns
	// (nil, false, nil) when raw is not a shape it understands, so the chain
	// falls through; once handled, a failure is final.
	TryParse(raw any, cfg Config) (fn *model.FullName, handled bool, err error)
}
