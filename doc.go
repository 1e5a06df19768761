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

// Package namefx parses, validates and renders person names.
//
// Raw input comes in many shapes: a delimited string, an ordered list, a
// slot-keyed map, tagged atoms or an already built model.FullName. The
// parser chain turns it into a FullName, which a read-only Name wraps for
// rendering:
//
//	n, err := namefx.New("Mr John Ben Smith Ph.D")
//	n.Official()  // "Mr SMITH, John Ben Ph.D"
//	n.Shorten()   // "John Smith"
//	n.Zip()       // "John B. S."
//
// # Configuration
//
// Parsing and rendering are steered by an apis.Config value built with
// functional options from the config package:
//
//	n, err := namefx.New([]string{"Smith", "John", "Ben"},
//		config.WithOrdering(types.ByLast))
//
// Named configurations live in an apis.Registry. A Service holds one
// together with the parser chain, so a process can keep several profiles
// ("default", "registry", ...) side by side and pick one per call:
//
//	svc := namefx.NewService(nil)
//	_ = svc.Registry().Register(config.NewConfig(
//		config.WithName("us"), config.WithTitle(types.TitleUS)))
//	n, err := svc.New("Dr Jane Ann Doe", "us")
//
// # Concurrency model
//
// A Name is immutable and safe for concurrent reads. A Service publishes
// its registry and parser as one snapshot behind an atomic pointer: reads
// never lock, writes take a short mutex and swap in a new snapshot.
// Builders (see the builder package) are single-owner.
//
// # Errors
//
// Failures are *errs.Error values tagged with a kind. Match them with
// errors.Is against errs.ErrInput, errs.ErrValidation, errs.ErrNotAllowed
// or errs.ErrUnknown. TryParse is the non-failing entry point.
package namefx
