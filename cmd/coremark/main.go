// Copyright 2025 go-coremark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command coremark runs the CoreMark-style benchmark suite on every CPU and
// reports throughput and validated checksums.
//
// Usage:
//
//	coremark                                   # 2K performance run, all CPUs
//	coremark 0x3415 0x3415 0x66                # 2K validation run
//	coremark 0 0 0x66 0 7 0 6000               # 6k performance run
//	coremark --seed1 8 --seed2 8 --seed3 8 --size 1200
//	coremark --config coremark.toml --workers 4 --strict
//
// Positional arguments follow the classic order
// [seed1 [seed2 [seed3 [iterations [kernels [_ [size]]]]]]]; flags override
// them and both override the optional TOML config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ajroetker/go-coremark/coremark/harness"
)

var errValidation = errors.New("run did not validate")

type options struct {
	configPath  string
	logLevel    string
	strict      bool
	seed1       string
	seed2       string
	seed3       string
	iterations  string
	kernels     string
	size        string
	workers     int
	minDuration time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "coremark [seed1 [seed2 [seed3 [iterations [kernels [_ [size]]]]]]]",
		Short:         "Run the CoreMark benchmark suite",
		Args:          cobra.MaximumNArgs(7),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	bindFlags(cmd.Flags(), &o)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled (default info)")
	fs.BoolVar(&o.strict, "strict", false, "Exit non-zero when the run does not validate")
	fs.StringVar(&o.seed1, "seed1", "", "First seed (list, matrix and state data)")
	fs.StringVar(&o.seed2, "seed2", "", "Second seed (matrix data, state corruption)")
	fs.StringVar(&o.seed3, "seed3", "", "Third seed (list find loop count)")
	fs.StringVar(&o.iterations, "iterations", "", "Iterations per worker, 0 calibrates")
	fs.StringVar(&o.kernels, "kernels", "", "Kernel mask or names, e.g. 7 or list,matrix,state")
	fs.StringVar(&o.size, "size", "", "Memory per worker in bytes, shared by the kernels (accepts K and M)")
	fs.IntVar(&o.workers, "workers", 0, "Parallel workers, 0 uses GOMAXPROCS")
	fs.DurationVar(&o.minDuration, "min-duration", 0, "Shortest timed run that counts as valid (default 10s)")
}

// applyFlags copies every flag the user set onto s.
func applyFlags(fs *pflag.FlagSet, o *options, s *settings) error {
	int16Flag := func(name, raw string, dst *int16) error {
		if !fs.Changed(name) {
			return nil
		}
		v, err := ParseValue(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		*dst = int16(v)
		return nil
	}
	if err := int16Flag("seed1", o.seed1, &s.run.Seeds.Seed1); err != nil {
		return err
	}
	if err := int16Flag("seed2", o.seed2, &s.run.Seeds.Seed2); err != nil {
		return err
	}
	if err := int16Flag("seed3", o.seed3, &s.run.Seeds.Seed3); err != nil {
		return err
	}
	if fs.Changed("iterations") {
		v, err := ParseValue(o.iterations)
		if err != nil {
			return fmt.Errorf("--iterations: %w", err)
		}
		s.run.Iterations = uint32(v)
	}
	if fs.Changed("kernels") {
		k, err := parseKernels(o.kernels)
		if err != nil {
			return fmt.Errorf("--kernels: %w", err)
		}
		s.run.Kernels = k
	}
	if fs.Changed("size") {
		v, err := ParseValue(o.size)
		if err != nil {
			return fmt.Errorf("--size: %w", err)
		}
		s.run.Size = int(v)
	}
	if fs.Changed("workers") {
		s.run.Workers = o.workers
	}
	if fs.Changed("min-duration") {
		s.run.MinDuration = o.minDuration
	}
	return nil
}

// resolveSettings merges the config file, positional arguments and flags,
// in increasing order of precedence.
func resolveSettings(fs *pflag.FlagSet, o *options, args []string) (settings, error) {
	var s settings
	if o.configPath != "" {
		if err := loadConfigFile(o.configPath, &s); err != nil {
			return settings{}, err
		}
	}
	if err := applyPositional(args, &s.run); err != nil {
		return settings{}, err
	}
	if err := applyFlags(fs, o, &s); err != nil {
		return settings{}, err
	}
	return s, nil
}

func run(cmd *cobra.Command, o *options, args []string) error {
	s, err := resolveSettings(cmd.Flags(), o, args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), s.logLevel, o.logLevel)
	if err != nil {
		return err
	}

	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	defer undo()
	if err != nil {
		logger.Warn().Err(err).Msg("could not apply CPU quota")
	}

	report, err := harness.Run(cmd.Context(), s.run, logger)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report)

	if o.strict && !report.Validated() {
		return fmt.Errorf("%w: %d errors", errValidation, report.Errors())
	}
	return nil
}
