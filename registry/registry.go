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

package registry

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/config"
)

var (
	// ErrEmptyName is returned when a configuration has an empty name.
	ErrEmptyName = errors.New("namefx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with different knobs.
	ErrConflictingRegistration = errors.New("namefx(registry): conflicting configuration registration")
)

// New constructs a Registry. Names created on demand by Create start from
// defaults. A nil logger falls back to slog.Default.
func New(defaults apis.Config, logger *slog.Logger) apis.Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &registry{defaults: defaults, log: logger}
}

// Default constructs a Registry seeded with config.DefaultConfig.
func Default() apis.Registry {
	r := New(config.DefaultConfig(), nil)
	// Cannot fail: the default name is non-empty and the registry is empty.
	_ = r.Register(config.DefaultConfig())
	return r
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// defaults is the template for configurations created on demand.
	defaults apis.Config
	// log receives registration events.
	log *slog.Logger
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps configuration names to configurations.
	m sync.Map // map[string]apis.Config
	// count tracks the number of registered entries.
	count int
}

// Register stores cfg under its name.
// It is idempotent for an identical configuration.
func (r *registry) Register(cfg apis.Config) error {
	if cfg.Name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(cfg.Name); ok {
		return conflict(old.(apis.Config), cfg)
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(cfg.Name); ok {
		return conflict(old.(apis.Config), cfg)
	}

	r.m.Store(cfg.Name, cfg)
	r.count++
	r.log.Debug("configuration registered", slog.String("name", cfg.Name))
	return nil
}

func conflict(old, cfg apis.Config) error {
	if old.Equal(cfg) {
		return nil // idempotent re-registration
	}
	return ErrConflictingRegistration
}

// Lookup returns the configuration registered under name.
func (r *registry) Lookup(name string) (apis.Config, bool) {
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Config), true
	}
	return apis.Config{}, false
}

// Create returns the configuration registered under name. When absent, a
// copy of the defaults renamed to name is registered and returned. An empty
// name yields the defaults without registering anything.
func (r *registry) Create(name string) apis.Config {
	if name == "" {
		return r.defaults
	}
	if cfg, ok := r.Lookup(name); ok {
		return cfg
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.m.Load(name); ok {
		return v.(apis.Config)
	}
	cfg := config.Clone(r.defaults, name)
	r.m.Store(name, cfg)
	r.count++
	r.log.Debug("configuration created", slog.String("name", name))
	return cfg
}

// Replace stores cfg under its name, overwriting any previous entry.
func (r *registry) Replace(cfg apis.Config) error {
	if cfg.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.Swap(cfg.Name, cfg); !loaded {
		r.count++
	}
	r.log.Debug("configuration replaced", slog.String("name", cfg.Name))
	return nil
}

// Delete removes the configuration registered under name.
func (r *registry) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.LoadAndDelete(name); loaded {
		r.count--
		return true
	}
	return false
}

// Entries returns a snapshot for diagnostics/docs, sorted by name.
func (r *registry) Entries() []apis.Config {
	entries := make([]apis.Config, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Config))
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
