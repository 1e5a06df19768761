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

package namefx_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/namefx"
	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/errs"
	"dirpx.dev/namefx/model"
	"dirpx.dev/namefx/parser"
	"dirpx.dev/namefx/registry"
	"dirpx.dev/namefx/types"
)

func TestService_Profiles(t *testing.T) {
	svc := namefx.NewService(nil)
	require.NoError(t, svc.Registry().Register(config.NewConfig(
		config.WithName("us"),
		config.WithTitle(types.TitleUS),
		config.WithEnding(true),
	)))

	n, err := svc.New("Dr Jane Ann Doe", "us")
	require.NoError(t, err)
	assert.Equal(t, "Dr. DOE, Jane Ann", n.Official())

	// Call-site overrides never leak into the registered profile.
	n, err = svc.New([]string{"Doe", "Jane"}, "us", config.WithOrdering(types.ByLast))
	require.NoError(t, err)
	assert.Equal(t, "Jane", n.First())
	cfg, _ := svc.Registry().Lookup("us")
	assert.Equal(t, types.ByFirst, cfg.Ordering)
}

func TestService_UnknownProfileIsCreated(t *testing.T) {
	svc := namefx.NewService(registry.New(config.NewConfig(config.WithSeparator(types.Comma)), nil))

	n, err := svc.New("Jane, Doe", "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", n.Config().Name)
	assert.Equal(t, 1, svc.Registry().Count())
}

func TestService_Load(t *testing.T) {
	svc := namefx.NewService(nil)
	cfgs, err := config.ParseProfiles([]byte("profiles:\n  default:\n    ordering: byLast\n"))
	require.NoError(t, err)
	require.NoError(t, svc.Load(cfgs...))

	n, err := svc.Parse("John Smith", "default")
	require.NoError(t, err)
	assert.Equal(t, "Smith John", n.BirthName())
}

func TestService_SetParser(t *testing.T) {
	svc := namefx.NewService(nil)
	svc.SetParser(parser.New(parser.NewListStrategy()))

	_, err := svc.New("Jane Doe", "default")
	require.Error(t, err)

	svc.SetParser(nil)
	_, err = svc.New("Jane Doe", "default")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetRegistry(nil), namefx.ErrNilRegistry)
	require.NoError(t, svc.SetRegistry(registry.New(config.DefaultConfig(), nil)))
	assert.Zero(t, svc.Registry().Count())
}

func TestService_CustomParserProfile(t *testing.T) {
	calls := 0
	custom := apis.ParserFunc(func(raw any, cfg apis.Config) (*model.FullName, error) {
		calls++
		return parser.FromList([]string{"Jane", "Doe"}, cfg)
	})
	svc := namefx.NewService(nil)
	require.NoError(t, svc.Registry().Register(config.NewConfig(config.WithName("custom"), config.WithParser(custom))))

	n, err := svc.New(42, "custom")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", n.String())
	assert.Equal(t, 1, calls)
}

// TestService_Concurrent exercises snapshot reads against writers.
func TestService_Concurrent(t *testing.T) {
	svc := namefx.NewService(nil)

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 2

	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if _, err := svc.New("Jane Doe", "default"); err != nil {
					t.Errorf("New: %v", err)
					return
				}
			}
		}()
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				svc.SetParser(parser.Default())
				_ = svc.Load(config.NewConfig(config.WithName(fmt.Sprintf("p%d", id))))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers+1, svc.Registry().Count())
}

func TestService_NewBatch(t *testing.T) {
	svc := namefx.NewService(nil)
	inputs := []string{"Jane Doe", "J4ne Doe", "Mr John Ben Smith Ph.D", "Doe"}

	res, err := svc.NewBatch(context.Background(), inputs, "default")
	require.NoError(t, err)
	require.Len(t, res, len(inputs))

	for i, r := range res {
		assert.Equal(t, inputs[i], r.Input)
	}
	require.NoError(t, res[0].Err)
	assert.Equal(t, "Jane Doe", res[0].Name.String())
	assert.True(t, errors.Is(res[1].Err, errs.ErrValidation))
	assert.Equal(t, "Smith", res[2].Name.Last())
	assert.True(t, errors.Is(res[3].Err, errs.ErrInput))
}

func TestService_ParseBatch(t *testing.T) {
	svc := namefx.NewService(nil)

	res, err := svc.ParseBatch(context.Background(), []string{"Ann Marie Louise Doe"}, "default")
	require.NoError(t, err)
	require.NoError(t, res[0].Err)
	assert.Equal(t, []string{"Marie Louise"}, res[0].Name.Middle())
}

func TestService_BatchCanceled(t *testing.T) {
	svc := namefx.NewService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.NewBatch(ctx, []string{"Jane Doe", "John Smith"}, "default")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  default: {}\n"), 0o600))

	svc := namefx.NewService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = svc.Watch(ctx, path) }()

	doc := []byte("profiles:\n  default:\n    separator: comma\n")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, doc, 0o600); err != nil {
			return false
		}
		cfg, _ := svc.Registry().Lookup("default")
		return cfg.Separator == types.Comma
	}, 5*time.Second, 50*time.Millisecond)

	n, err := svc.New("Jane, Doe", "default")
	require.NoError(t, err)
	assert.Equal(t, "Doe", n.Last())
}
