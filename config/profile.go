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
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"dirpx.dev/namefx/apis"
	"dirpx.dev/namefx/types"
)

// ErrInvalidProfile is returned when a profile document fails to decode or
// one of its knobs holds an unknown value.
var ErrInvalidProfile = errors.New("namefx(config): invalid profile")

var check *playground.Validate

func init() {
	check = playground.New()
}

// Overrides holds optional knob values as found in profile files and on the
// command line. Zero values leave the base configuration untouched.
type Overrides struct {
	Ordering  string `yaml:"ordering,omitempty" validate:"omitempty,oneof=byFirst byLast"`
	Separator string `yaml:"separator,omitempty" validate:"omitempty,oneof=space comma colon doubleQuote empty hyphen period semiColon singleQuote underscore"`
	Title     string `yaml:"title,omitempty" validate:"omitempty,oneof=uk us"`
	Ending    *bool  `yaml:"ending,omitempty"`
	Bypass    *bool  `yaml:"bypass,omitempty"`
	Surname   string `yaml:"surname,omitempty" validate:"omitempty,oneof=father mother hyphenated all"`
}

// Validate reports unknown knob values.
func (o Overrides) Validate() error {
	if err := check.Struct(o); err != nil {
		var verrs playground.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s %q is not one of [%s]", ErrInvalidProfile, fe.Field(), fe.Value(), fe.Param())
		}
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

// Options converts the overrides into functional options. Values must have
// passed Validate.
func (o Overrides) Options() ([]Option, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	var opts []Option
	if o.Ordering != "" {
		v, err := types.ParseOrdering(o.Ordering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOrdering(v))
	}
	if o.Separator != "" {
		v, err := types.ParseSeparator(o.Separator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeparator(v))
	}
	if o.Title != "" {
		v, err := types.ParseTitle(o.Title)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTitle(v))
	}
	if o.Ending != nil {
		opts = append(opts, WithEnding(*o.Ending))
	}
	if o.Bypass != nil {
		opts = append(opts, WithBypass(*o.Bypass))
	}
	if o.Surname != "" {
		v, err := types.ParseSurname(o.Surname)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSurname(v))
	}
	return opts, nil
}

// Apply returns base with the overrides merged in.
func (o Overrides) Apply(base apis.Config) (apis.Config, error) {
	opts, err := o.Options()
	if err != nil {
		return base, err
	}
	return Merge(base, opts...), nil
}

// Document is the top-level shape of a profile file.
type Document struct {
	Profiles map[string]Overrides `yaml:"profiles"`
}

// LoadProfiles decodes a profile document and returns one configuration per
// profile, sorted by name. Each profile starts from DefaultConfig.
func LoadProfiles(r io.Reader) ([]apis.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles is LoadProfiles over an in-memory document.
func ParseProfiles(data []byte) ([]apis.Config, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	names := make([]string, 0, len(doc.Profiles))
	for name := range doc.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]apis.Config, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty profile name", ErrInvalidProfile)
		}
		cfg, err := doc.Profiles[name].Apply(NewConfig(WithName(name)))
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

// LoadFile reads profiles from the YAML file at path.
func LoadFile(path string) ([]apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfgs, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfgs, nil
}

// Marshal encodes cfg as profile overrides carrying every knob.
func Marshal(cfg apis.Config) ([]byte, error) {
	ending, bypass := cfg.Ending, cfg.Bypass
	doc := Document{Profiles: map[string]Overrides{
		cfg.Name: {
			Ordering:  cfg.Ordering.String(),
			Separator: cfg.Separator.String(),
			Title:     cfg.Title.String(),
			Ending:    &ending,
			Bypass:    &bypass,
			Surname:   cfg.Surname.String(),
		},
	}}
	return yaml.Marshal(doc)
}
