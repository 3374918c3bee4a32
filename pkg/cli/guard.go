/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const flagNewStatus = "new-status"

func guardCmd() *cli.Command {
	return &cli.Command{
		Name:  "guard",
		Usage: "Check that a bulk status update is scoped and sets a status",
		Description: `Build the filter a bulk status update would apply to and check it before
the update is sent. The update is rejected when the filter contains only
limit/offset, which would change every order, or when every --new-status
value is blank.`,
		Flags: append(filterFlags(),
			&cli.StringSliceFlag{
				Name:  flagNewStatus,
				Usage: "new fulfillment or payment status to apply; repeatable",
			},
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := definitionFromCmd(cmd)
			if err != nil {
				return err
			}
			d.NewStatuses = append([]string{}, cmd.StringSlice(flagNewStatus)...)
			params, err := d.Build()
			if err != nil {
				return fmt.Errorf("bulk update rejected: %w", err)
			}
			return writeOutput(ctx, cmd, params)
		},
	}
}
