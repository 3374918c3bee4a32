/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/orderquery/pkg/batch"
	"github.com/NVIDIA/orderquery/pkg/defaults"
)

const (
	flagFile        = "file"
	flagFailFast    = "fail-fast"
	flagConcurrency = "concurrency"
	flagTimeout     = "timeout"
	flagRate        = "rate"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Build every filter in a definitions file and report the results",
		Description: `Read a YAML document of named filter definitions, build them concurrently
and print a report with the parameters or the rejection of each filter.

Definitions that list newStatuses are also checked as bulk status updates.
The command fails when any definition is rejected.

Example definitions file:

  kind: FilterDefinitions
  filters:
    - name: recent-paid
      paymentStatus: [paid]
      createdFrom: "2024-01-01"
      limit: 50`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "path to the filter definitions file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  flagFailFast,
				Usage: "stop at the first rejected definition",
			},
			&cli.IntFlag{
				Name:  flagConcurrency,
				Value: defaults.BatchConcurrency,
				Usage: "number of definitions built at once",
			},
			&cli.FloatFlag{
				Name:  flagRate,
				Usage: "maximum definitions started per second (0: unlimited)",
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Value: defaults.BatchTimeout,
				Usage: "maximum duration of the run",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := batch.Load(cmd.String(flagFile))
			if err != nil {
				return err
			}

			runner := &batch.Runner{
				Concurrency: cmd.Int(flagConcurrency),
				Timeout:     cmd.Duration(flagTimeout),
				Rate:        cmd.Float(flagRate),
				FailFast:    cmd.Bool(flagFailFast),
				Version:     version,
			}
			report, runErr := runner.Run(ctx, file.Filters)

			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d filter definitions rejected", report.Failed, len(report.Results))
			}
			return nil
		},
	}
}
