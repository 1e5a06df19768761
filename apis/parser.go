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

// Parser turns raw input into a FullName. Implementations must not mutate
// raw, and must return a FullName whose first and last names are set.
//
// Parser is also the capability a caller implements to plug a custom
// parsing scheme into Config.Parser.
type Parser interface {
	Parse(raw any, cfg Config) (*model.FullName, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(raw any, cfg Config) (*model.FullName, error)

// Parse calls f(raw, cfg).
func (f ParserFunc) Parse(raw any, cfg Config) (*model.FullName, error) { return f(raw, cfg) }
