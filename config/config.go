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

package config

import (
	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/types"
)

const (
	// DefaultName is the name of the default configuration.
	DefaultName = "default"
	// DefaultOrdering lists the given name first.
	DefaultOrdering = types.ByFirst
	// DefaultSeparator splits raw strings on spaces.
	DefaultSeparator = types.Space
	// DefaultTitle leaves prefixes undotted.
	DefaultTitle = types.TitleUK
	// DefaultEnding omits the comma before the suffix.
	DefaultEnding = false
	// DefaultBypass keeps character validation enabled.
	DefaultBypass = false
	// DefaultSurname renders the father's surname only.
	DefaultSurname = types.SurnameFather
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the configuration stays addressable in a registry.
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Name:      DefaultName,
		Ordering:  DefaultOrdering,
		Separator: DefaultSeparator,
		Title:     DefaultTitle,
		Ending:    DefaultEnding,
		Bypass:    DefaultBypass,
		Surname:   DefaultSurname,
	}
}

// Merge returns a copy of base with the call-site overrides applied; the
// last override wins. base itself is never modified.
func Merge(base apis.Config, overrides ...Option) apis.Config {
	cfg := base
	for _, opt := range overrides {
		opt(&cfg)
	}
	if cfg.Name == "" {
		cfg.Name = base.Name
	}
	return cfg
}

// Clone returns a copy of cfg registered under name. The custom parser
// reference is shared.
func Clone(cfg apis.Config, name string) apis.Config {
	c := cfg
	if name != "" {
		c.Name = name
	}
	return c
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithName sets the Name option.
func WithName(name string) Option {
	return func(c *apis.Config) {
		c.Name = name
	}
}

// WithOrdering sets the Ordering option.
func WithOrdering(o types.Ordering) Option {
	return func(c *apis.Config) {
		c.Ordering = o
	}
}

// WithSeparator sets the Separator option.
func WithSeparator(s types.Separator) Option {
	return func(c *apis.Config) {
		c.Separator = s
	}
}

// WithTitle sets the Title option.
func WithTitle(t types.Title) Option {
	return func(c *apis.Config) {
		c.Title = t
	}
}

// WithEnding sets the Ending option.
func WithEnding(ending bool) Option {
	return func(c *apis.Config) {
		c.Ending = ending
	}
}

// WithBypass sets the Bypass option.
func WithBypass(bypass bool) Option {
	return func(c *apis.Config) {
		c.Bypass = bypass
	}
}

// WithSurname sets the Surname option.
func WithSurname(s types.Surname) Option {
	return func(c *apis.Config) {
		c.Surname = s
	}
}

// WithParser sets the custom Parser option. A nil parser clears it.
func WithParser(p apis.Parser) Option {
	return func(c *apis.Config) {
		c.Parser = p
	}
}

// From replaces every knob with those of cfg.
func From(cfg apis.Config) Option {
	return func(c *apis.Config) {
		*c = cfg
	}
}
