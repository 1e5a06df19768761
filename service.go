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

package namefx

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/parser"
	"dirpx.dev/namefx/registry"
)

// ErrNilRegistry is returned when a nil registry is installed.
var ErrNilRegistry = errors.New("namefx: nil registry")

// Service holds a configuration registry and a parser chain. It replaces
// process-wide configuration lookup: construct one at startup and pass it
// to whoever needs to parse names.
type Service struct {
	// st is the current snapshot; readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
	log     *slog.Logger
}

// state is an immutable snapshot of a Service.
type state struct {
	reg apis.Registry
	par apis.Parser
}

// NewService returns a Service over reg with the default parser chain. A
// nil reg gets a registry seeded with the default profile.
func NewService(reg apis.Registry) *Service {
	if reg == nil {
		reg = registry.Default()
	}
	s := &Service{log: slog.Default()}
	s.st.Store(&state{reg: reg, par: parser.Default()})
	return s
}

// WithLogger replaces the logger; nil restores slog.Default.
func (s *Service) WithLogger(l *slog.Logger) *Service {
	if l == nil {
		l = slog.Default()
	}
	s.log = l
	return s
}

// Registry returns the configuration registry.
func (s *Service) Registry() apis.Registry { return s.st.Load().reg }

// SetRegistry installs reg.
func (s *Service) SetRegistry(reg apis.Registry) error {
	if reg == nil {
		return ErrNilRegistry
	}
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	old := s.st.Load()
	s.st.Store(&state{reg: reg, par: old.par})
	s.log.Debug("registry replaced", slog.Int("profiles", reg.Count()))
	return nil
}

// Parser returns the parser chain.
func (s *Service) Parser() apis.Parser { return s.st.Load().par }

// SetParser installs p; nil restores the default chain.
func (s *Service) SetParser(p apis.Parser) {
	if p == nil {
		p = parser.Default()
	}
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	old := s.st.Load()
	s.st.Store(&state{reg: old.reg, par: p})
}

// Load replaces the registered profiles named in cfgs.
func (s *Service) Load(cfgs ...apis.Config) error {
	reg := s.Registry()
	for _, cfg := range cfgs {
		if err := reg.Replace(cfg); err != nil {
			return err
		}
		s.log.Debug("profile loaded", slog.String("profile", cfg.Name))
	}
	return nil
}

// Config returns the profile registered under name, created from the
// registry defaults when absent, with opts applied on top. The registered
// profile is never modified.
func (s *Service) Config(profile string, opts ...config.Option) apis.Config {
	return config.Merge(s.Registry().Create(profile), opts...)
}

// New parses raw with the service parser and the named profile.
func (s *Service) New(raw any, profile string, opts ...config.Option) (*Name, error) {
	snap := s.st.Load()
	cfg := config.Merge(snap.reg.Create(profile), opts...)
	n, err := newName(snap.par, raw, cfg)
	if err != nil {
		s.log.Debug("parse failed", slog.String("profile", cfg.Name), slog.Any("error", err))
		return nil, err
	}
	return n, nil
}

// Parse reads free text by convention with the named profile.
func (s *Service) Parse(text, profile string, opts ...config.Option) (*Name, error) {
	return Parse(text, config.From(s.Config(profile, opts...)))
}

// Watch keeps the registered profiles in sync with the YAML profile file at
// path until ctx is done. The file is not read up front; pair it with
// config.LoadFile and Load for the initial state.
func (s *Service) Watch(ctx context.Context, path string) error {
	return config.Watch(ctx, path, func(cfgs []apis.Config) error {
		return s.Load(cfgs...)
	}, s.log)
}

// Result is the outcome of one batch entry.
type Result struct {
	Input string
	Name  *Name
	Err   error
}

// NewBatch parses every input with New on a bounded pool of goroutines.
// Results keep the input order and carry per-entry failures; the returned
// error is set only when ctx ends before the batch completes.
func (s *Service) NewBatch(ctx context.Context, inputs []string, profile string, opts ...config.Option) ([]Result, error) {
	return s.batch(ctx, inputs, func(in string) (*Name, error) {
		return s.New(in, profile, opts...)
	})
}

// ParseBatch is NewBatch reading every input as free text.
func (s *Service) ParseBatch(ctx context.Context, inputs []string, profile string, opts ...config.Option) ([]Result, error) {
	return s.batch(ctx, inputs, func(in string) (*Name, error) {
		return s.Parse(in, profile, opts...)
	})
}

func (s *Service) batch(ctx context.Context, inputs []string, parse func(string) (*Name, error)) ([]Result, error) {
	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := parse(in)
			results[i] = Result{Input: in, Name: n, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.log.Debug("batch parsed", slog.Int("count", len(inputs)))
	return results, nil
}
