// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/orderquery/pkg/defaults"
	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
	"github.com/NVIDIA/orderquery/pkg/header"
	"github.com/NVIDIA/orderquery/pkg/orders"
)

// Runner builds filter definitions concurrently.
type Runner struct {
	// Concurrency is the number of definitions built at once.
	// Zero means defaults.BatchConcurrency.
	Concurrency int

	// Timeout bounds the run. Zero means defaults.BatchTimeout.
	Timeout time.Duration

	// Rate caps definitions started per second. Zero means unlimited.
	Rate float64

	// FailFast stops at the first failing definition.
	FailFast bool

	// Version is recorded in the report metadata.
	Version string
}

// Result is the outcome of one definition.
type Result struct {
	Name     string           `json:"name" yaml:"name"`
	Update   bool             `json:"update,omitempty" yaml:"update,omitempty"`
	Params   orders.Params    `json:"params" yaml:"params"`
	Query    string           `json:"query,omitempty" yaml:"query,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
	Category qerrors.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Field    string           `json:"field,omitempty" yaml:"field,omitempty"`
	Skipped  bool             `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// OK reports whether the definition was built and passed every check.
func (r *Result) OK() bool {
	return r.Error == "" && !r.Skipped
}

// Report lists one Result per definition in input order.
type Report struct {
	header.Header `yaml:",inline"`

	Results []Result `json:"results" yaml:"results"`
	Failed  int      `json:"failed" yaml:"failed"`
}

// Run builds defs and returns the report. With FailFast the first failure is
// returned alongside the partial report; otherwise failures are only
// recorded. A run that exceeds its timeout returns a TIMEOUT error.
func (r *Runner) Run(ctx context.Context, defs []Definition) (*Report, error) {
	start := time.Now()
	defer func() {
		batchDuration.Observe(time.Since(start).Seconds())
	}()

	runID := uuid.NewString()
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaults.BatchTimeout
	}
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = defaults.BatchConcurrency
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report := &Report{
		Header:  *header.New(header.WithMetadata(header.MetadataRunID, runID)),
		Results: make([]Result, len(defs)),
	}
	report.Init(header.KindFilterReport, header.APIVersion, r.Version)

	slog.Debug("starting batch run",
		"run_id", runID,
		"filters", len(defs),
		"concurrency", concurrency,
		"timeout", timeout)

	var limiter *rate.Limiter
	if r.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.Rate), concurrency)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// each goroutine owns exactly one slot of report.Results
	for i := range defs {
		g.Go(func() error {
			def := &defs[i]
			err := gctx.Err()
			if err == nil && limiter != nil {
				err = limiter.Wait(gctx)
			}
			if err != nil {
				report.Results[i] = Result{Name: def.Name, Update: def.IsUpdate(), Skipped: true, Error: err.Error()}
				batchFilters.WithLabelValues(outcomeSkipped).Inc()
				return nil
			}

			res, err := build(def)
			report.Results[i] = res
			if err != nil {
				batchFilters.WithLabelValues(outcomeFailed).Inc()
				slog.Debug("filter rejected", "run_id", runID, "name", def.Name, "error", err)
				if r.FailFast {
					return fmt.Errorf("filter %q: %w", def.Name, err)
				}
				return nil
			}
			batchFilters.WithLabelValues(outcomeOK).Inc()
			return nil
		})
	}

	err := g.Wait()
	skipped := 0
	for i := range report.Results {
		if !report.Results[i].OK() {
			report.Failed++
		}
		if report.Results[i].Skipped {
			skipped++
		}
	}

	slog.Info("batch run complete",
		"run_id", runID,
		"filters", len(defs),
		"failed", report.Failed,
		"duration", time.Since(start))

	if err != nil {
		return report, err
	}
	if skipped == 0 {
		return report, nil
	}
	// the limiter gives up before the deadline when a wait could not finish in time
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
		return report, qerrors.WrapWithContext(qerrors.ErrCodeInternal, "batch run canceled", ctxErr,
			map[string]any{"run_id": runID, "skipped": skipped})
	}
	return report, qerrors.WrapWithContext(qerrors.ErrCodeTimeout, "batch run timed out", context.DeadlineExceeded,
		map[string]any{"timeout": timeout.String(), "run_id": runID, "skipped": skipped})
}

func build(def *Definition) (Result, error) {
	res := Result{Name: def.Name, Update: def.IsUpdate()}
	params, err := def.Build()
	if err != nil {
		res.Error = err.Error()
		res.Category = qerrors.CategoryOf(err)
		res.Field = qerrors.FieldOf(err)
		return res, err
	}
	res.Params = params
	res.Query = params.String()
	return res, nil
}
