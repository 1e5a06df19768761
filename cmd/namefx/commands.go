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

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/namefx"
	"dirpx.dev/namefx/config"
	"dirpx.dev/namefx/flatten"
	"dirpx.dev/namefx/types"
)

// defaultPattern is used by the format command when --pattern is omitted.
const defaultPattern = "official"

// options collects the persistent flags.
type options struct {
	configPath string
	profile    string
	overrides  config.Overrides
	ending     bool
	bypass     bool
	heuristic  bool
	output     string
	logLevel   string
}

// record is the YAML rendering of a parsed name.
type record struct {
	Prefix     string   `yaml:"prefix,omitempty"`
	FirstName  string   `yaml:"firstName,omitempty"`
	MiddleName []string `yaml:"middleName,omitempty"`
	LastName   string   `yaml:"lastName,omitempty"`
	Suffix     string   `yaml:"suffix,omitempty"`
	Full       string   `yaml:"full,omitempty"`
	Profile    string   `yaml:"profile,omitempty"`
	Input      string   `yaml:"input,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	var svc *namefx.Service

	root := &cobra.Command{
		Use:           "namefx",
		Short:         "Parse, validate and render person names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, opts.logLevel)
			if err != nil {
				return err
			}
			svc = namefx.NewService(nil).WithLogger(logger)
			if opts.configPath != "" {
				cfgs, err := config.LoadFile(opts.configPath)
				if err != nil {
					return err
				}
				if err := svc.Load(cfgs...); err != nil {
					return err
				}
				logger.Debug("profiles loaded", slog.String("path", opts.configPath), slog.Int("count", len(cfgs)))
			}
			flags := cmd.Flags()
			if flags.Changed("ending") {
				opts.overrides.Ending = &opts.ending
			}
			if flags.Changed("bypass") {
				opts.overrides.Bypass = &opts.bypass
			}
			return opts.overrides.Validate()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML profiles file")
	pf.StringVar(&opts.profile, "profile", config.DefaultName, "Profile to parse with")
	pf.StringVar(&opts.overrides.Ordering, "ordering", "", "Name order: byFirst or byLast")
	pf.StringVar(&opts.overrides.Separator, "separator", "", "Separator of the raw name (space, comma, colon, ...)")
	pf.StringVar(&opts.overrides.Title, "title", "", "Prefix title policy: uk or us")
	pf.StringVar(&opts.overrides.Surname, "surname", "", "Surname rendering: father, mother, hyphenated or all")
	pf.BoolVar(&opts.ending, "ending", false, "Put a comma before the suffix")
	pf.BoolVar(&opts.bypass, "bypass", false, "Skip character validation")
	pf.BoolVar(&opts.heuristic, "heuristic", false, "Read the name as free text (first, middle..., last)")
	pf.StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	load := func(args []string) (*namefx.Name, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("a name is required")
		}
		cfgOpts, err := opts.overrides.Options()
		if err != nil {
			return nil, err
		}
		raw := strings.Join(args, " ")
		if opts.heuristic {
			return svc.Parse(raw, opts.profile, cfgOpts...)
		}
		return svc.New(raw, opts.profile, cfgOpts...)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "parse [name...]",
			Short: "Parse a name and print its parts",
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := load(args)
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), opts.output, toRecord(n), n.Full())
			},
		},
		formatCmd(opts, load),
		flattenCmd(opts, load, false),
		flattenCmd(opts, load, true),
		initialsCmd(opts, load),
		batchCmd(opts, func() *namefx.Service { return svc }),
	)
	return root
}

func formatCmd(opts *options, load func([]string) (*namefx.Name, error)) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "format [name...]",
		Short: "Render a name following a pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(args)
			if err != nil {
				return err
			}
			out, err := n.Format(pattern)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, map[string]string{"result": out}, out)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", defaultPattern, "Pattern or shortcut (short, long, official)")
	return cmd
}

func flattenCmd(opts *options, load func([]string) (*namefx.Name, error), zip bool) *cobra.Command {
	var (
		limit     int
		by        string
		recursive bool
		noPeriod  bool
		more      bool
	)
	use, short, defBy := "flatten [name...]", "Compact a name to a character budget", flatten.DefaultBy
	if zip {
		use, short, defBy = "zip [name...]", "Reduce parts of a name to initials", flatten.DefaultZipBy
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(args)
			if err != nil {
				return err
			}
			variant, err := types.ParseFlat(by)
			if err != nil {
				return err
			}
			fopts := []flatten.Option{flatten.WithBy(variant)}
			if !zip {
				fopts = append(fopts, flatten.WithLimit(limit))
			}
			if recursive {
				fopts = append(fopts, flatten.WithRecursive())
			}
			if noPeriod {
				fopts = append(fopts, flatten.WithoutPeriod())
			}
			if more {
				fopts = append(fopts, flatten.WithMore())
			}
			var out string
			if zip {
				out = n.Zip(fopts...)
			} else {
				out = n.Flatten(fopts...)
			}
			return write(cmd.OutOrStdout(), opts.output, map[string]string{"result": out}, out)
		},
	}
	f := cmd.Flags()
	if !zip {
		f.IntVar(&limit, "limit", flatten.DefaultLimit, "Character budget of the birth name")
	}
	f.StringVar(&by, "by", defBy.String(), "Variant: first, middle, last, firstMid, midLast or all")
	f.BoolVar(&recursive, "recursive", false, "Escalate to stronger variants while over budget")
	f.BoolVar(&noPeriod, "no-period", false, "Drop the period after initials")
	f.BoolVar(&more, "more", false, "Keep additional given names")
	return cmd
}

func initialsCmd(opts *options, load func([]string) (*namefx.Name, error)) *cobra.Command {
	var middle bool
	cmd := &cobra.Command{
		Use:   "initials [name...]",
		Short: "Print the initials of a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(args)
			if err != nil {
				return err
			}
			initials := n.Initials(middle)
			return write(cmd.OutOrStdout(), opts.output, map[string][]string{"initials": initials}, strings.Join(initials, " "))
		},
	}
	cmd.Flags().BoolVar(&middle, "middle", true, "Include middle names")
	return cmd
}

func batchCmd(opts *options, service func() *namefx.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Parse one name per line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}
			lines, err := readLines(in)
			if err != nil {
				return err
			}
			cfgOpts, err := opts.overrides.Options()
			if err != nil {
				return err
			}

			svc := service()
			var results []namefx.Result
			if opts.heuristic {
				results, err = svc.ParseBatch(cmd.Context(), lines, opts.profile, cfgOpts...)
			} else {
				results, err = svc.NewBatch(cmd.Context(), lines, opts.profile, cfgOpts...)
			}
			if err != nil {
				return err
			}

			failed := 0
			recs := make([]record, len(results))
			texts := make([]string, len(results))
			for i, r := range results {
				if r.Err != nil {
					failed++
					recs[i] = record{Input: r.Input, Error: r.Err.Error()}
					texts[i] = "error: " + r.Err.Error()
					continue
				}
				recs[i] = toRecord(r.Name)
				recs[i].Input = r.Input
				texts[i] = r.Name.Full()
			}
			if err := write(cmd.OutOrStdout(), opts.output, recs, strings.Join(texts, "\n")); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d names failed", failed, len(results))
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return lines, nil
}

func toRecord(n *namefx.Name) record {
	return record{
		Prefix:     n.Prefix(),
		FirstName:  n.FirstName(true),
		MiddleName: n.Middle(),
		LastName:   n.Last(),
		Suffix:     n.Suffix(),
		Full:       n.Full(),
		Profile:    n.Config().Name,
	}
}

func write(w io.Writer, output string, structured any, text string) error {
	switch output {
	case "text":
		_, err := fmt.Fprintln(w, text)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(structured); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", output)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
