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

// Atomizer is implemented by values that can list their own name atoms,
// such as builder.NameBuilder. Parsers prefer it over any reflection.
type Atomizer interface {
	// Atoms returns the tagged atoms in order. The slice must be a copy.
	Atoms() []model.Atom
}
