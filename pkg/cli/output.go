/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/orderquery/pkg/serializer"
)

const (
	flagOutput = "output"
	flagFormat = "format"

	envOutput = "ORDERQ_OUTPUT"
	envFormat = "ORDERQ_FORMAT"
)

var validate = validator.New()

// Flags are constructed per command since urfave flags keep parse state.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
		Sources: cli.EnvVars(envOutput),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars(envFormat),
	}
}

// outputOptions are the flags shared by commands that print data.
type outputOptions struct {
	Format string `validate:"required,oneof=json yaml table query"`
	Output string `validate:"omitempty,filepath"`
}

func parseOutputOptions(cmd *cli.Command) (outputOptions, error) {
	opts := outputOptions{
		Format: strings.ToLower(strings.TrimSpace(cmd.String(flagFormat))),
		Output: strings.TrimSpace(cmd.String(flagOutput)),
	}
	if err := validate.Struct(opts); err != nil {
		return outputOptions{}, fmt.Errorf("invalid output options: %w", err)
	}
	return opts, nil
}

// writeOutput serializes data to the --output file, or to the command writer.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	opts, err := parseOutputOptions(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if opts.Output == "" {
		w = serializer.NewWriter(serializer.Format(opts.Format), cmd.Root().Writer)
	} else {
		w = serializer.NewFileWriterOrStdout(serializer.Format(opts.Format), opts.Output)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, data)
}
