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

// Registry holds named configurations. It replaces ambient, process-wide
// configuration lookup: construct one at startup and pass it around.
type Registry interface {
	// Register stores cfg under cfg.Name. Implementations should be
	// idempotent; conflicting re-registrations return an error.
	Register(cfg Config) error
	// Lookup returns the configuration registered under name.
	Lookup(name string) (cfg Config, ok bool)
	// Create returns the configuration registered under name, registering
	// a default one first when absent.
	Create(name string) Config
	// Replace stores cfg under cfg.Name, overwriting any previous entry.
	Replace(cfg Config) error
	// Delete removes the configuration registered under name.
	Delete(name string) bool
	// Entries returns a snapshot for diagnostics/docs, sorted by name.
	Entries() []Config
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}
