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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig(), nil)

	cfgs := make([]apis.Config, 10)
	for i := range cfgs {
		cfgs[i] = config.NewConfig(config.WithName(fmt.Sprintf("P%d", i)))
	}

	// Register once (sequential) to establish baseline.
	for _, c := range cfgs {
		if err := reg.Register(c); err != nil {
			t.Fatalf("register %s: %v", c.Name, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				name := cfgs[i%len(cfgs)].Name
				if got, ok := reg.Lookup(name); !ok || got.Name != name {
					t.Errorf("lookup failed for %s: ok=%v got=%q", name, ok, got.Name)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register and on-demand creation)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(cfgs)
				_ = reg.Register(cfgs[j]) // must be safe & idempotent
				_ = reg.Create(cfgs[j].Name)
			}
		}(w)
	}

	wg.Wait()

	if reg.Count() != len(cfgs) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(cfgs))
	}
	for i, e := range reg.Entries() {
		if e.Name != cfgs[i].Name {
			t.Fatalf("entry mismatch at %d: got %q want %q", i, e.Name, cfgs[i].Name)
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig(), nil)

	_ = reg.Register(config.NewConfig(config.WithName("one")))
	_ = reg.Register(config.NewConfig(config.WithName("two")))

	snap := reg.Entries()
	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Name == "" || snap[1].Name == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig(), nil)
