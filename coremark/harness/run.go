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

package harness

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/contrib/workerpool"
	"github.com/ajroetker/go-coremark/coremark/suite"
)

// calibrationTarget is the duration a single calibration pass must reach
// before the iteration count is scaled up for the timed run.
var calibrationTarget = time.Second

// Run executes cfg and returns its report.
//
// Checksum mismatches and short runs do not fail Run; they are recorded in
// the report. Errors are returned only when the run could not execute.
func Run(ctx context.Context, cfg Config, logger zerolog.Logger) (*Report, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	need := uint64(cfg.Workers) * uint64(cfg.RegionSize())
	total := memory.TotalMemory()
	if total > 0 && need > total {
		return nil, fmt.Errorf("%w: %d workers need %d bytes, machine has %d",
			ErrInsufficientMemory, cfg.Workers, need, total)
	}

	seedCRC := suite.SeedCRC(cfg.Seeds, cfg.BlockSize())
	profile, known := suite.LookupProfile(cfg.Seeds, cfg.BlockSize())
	if known {
		logger.Info().Str("profile", profile.Name).Msg("known run parameters")
	} else {
		logger.Warn().Str("seedcrc", fmt.Sprintf("0x%04x", seedCRC)).Msg("unknown run parameters, results cannot be validated")
	}

	workers, err := initWorkers(ctx, cfg)
	if err != nil {
		return nil, err
	}

	iterations := cfg.Iterations
	if iterations == 0 {
		iterations, err = calibrate(ctx, workers[0], logger)
		if err != nil {
			return nil, err
		}
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	logger.Info().
		Int("workers", cfg.Workers).
		Uint32("iterations", iterations).
		Stringer("kernels", cfg.Kernels).
		Int("size", cfg.BlockSize()).
		Msg("starting timed run")

	results := make([]suite.Checksums, cfg.Workers)
	errs := make([]error, cfg.Workers)
	var timer Timer
	timer.Start()
	pool.Each(cfg.Workers, func(i int) {
		results[i], errs[i] = workers[i].Iterate(iterations)
	})
	timer.Stop()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", i, err)
		}
	}
	logger.Info().Dur("elapsed", timer.Elapsed()).Msg("timed run finished")

	r := &Report{
		Config:      cfg,
		Iterations:  iterations,
		Elapsed:     timer.Elapsed(),
		SeedCRC:     seedCRC,
		Profile:     profile,
		Results:     results,
		Platform:    coremark.Platform(),
		TotalMemory: total,
	}
	r.validate()

	for _, m := range r.Mismatches {
		logger.Error().
			Int("worker", m.Worker).
			Stringer("kernel", m.Kernel).
			Str("got", fmt.Sprintf("0x%04x", m.Got)).
			Str("want", fmt.Sprintf("0x%04x", m.Want)).
			Msg("checksum mismatch")
	}
	if r.TooShort {
		logger.Warn().
			Dur("elapsed", r.Elapsed).
			Dur("min", cfg.MinDuration).
			Msg("run too short for a valid result")
	}
	return r, nil
}

// initWorkers builds and initialises one worker per slot concurrently. Each
// worker owns a private region holding its kernels' slices.
func initWorkers(ctx context.Context, cfg Config) ([]*suite.Worker, error) {
	workers := make([]*suite.Worker, cfg.Workers)
	blockSize, stride := cfg.BlockSize(), cfg.Stride()

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := suite.NewWorker(cfg.Seeds, cfg.Kernels, blockSize)
			if err != nil {
				return err
			}
			region := make([]byte, cfg.RegionSize())
			if err := w.InitAll(region, stride); err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			workers[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return workers, nil
}

// calibrate finds an iteration count that keeps w busy for roughly ten
// calibration targets: it multiplies by ten until one pass reaches the
// target, then scales by 1 + 10/seconds.
func calibrate(ctx context.Context, w *suite.Worker, logger zerolog.Logger) (uint32, error) {
	var (
		iterations uint32 = 1
		elapsed    time.Duration
		timer      Timer
	)
	for elapsed < calibrationTarget {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if iterations > math.MaxUint32/10 {
			break
		}
		iterations *= 10
		timer.Start()
		if _, err := w.Iterate(iterations); err != nil {
			return 0, err
		}
		timer.Stop()
		elapsed = timer.Elapsed()
		logger.Debug().Uint32("iterations", iterations).Dur("elapsed", elapsed).Msg("calibration pass")
	}

	divisor := uint32(elapsed / calibrationTarget)
	if divisor == 0 {
		divisor = 1
	}
	scaled := uint64(iterations) * uint64(1+10/divisor)
	if scaled > math.MaxUint32 {
		scaled = math.MaxUint32
	}
	logger.Debug().Uint64("iterations", scaled).Msg("calibrated")
	return uint32(scaled), nil
}
