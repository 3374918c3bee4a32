/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/orderquery/pkg/status"
)

const flagAll = "all"

// statusList is the printable form of the accepted statuses.
type statusList struct {
	Fulfillment []string `json:"fulfillment" yaml:"fulfillment"`
	Payment     []string `json:"payment" yaml:"payment"`
}

// whitelistEntry is one named whitelist in --all output.
type whitelistEntry struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

func statusesCmd() *cli.Command {
	return &cli.Command{
		Name:  "statuses",
		Usage: "List accepted fulfillment and payment statuses",
		Flags: []cli.Flag{
			legacyFlag(),
			&cli.BoolFlag{
				Name:  flagAll,
				Usage: "list every whitelist, legacy and current",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool(flagAll) {
				if cmd.Bool(flagLegacy) {
					return fmt.Errorf("--%s and --%s are mutually exclusive", flagAll, flagLegacy)
				}
				return writeOutput(ctx, cmd, allWhitelists())
			}

			list := statusList{
				Fulfillment: status.Fulfillment.Members(),
				Payment:     status.Payment.Members(),
			}
			if cmd.Bool(flagLegacy) {
				list.Fulfillment = status.LegacyFulfillment.Members()
				list.Payment = status.LegacyPayment.Members()
			}
			return writeOutput(ctx, cmd, list)
		},
	}
}

func allWhitelists() []whitelistEntry {
	lists := status.All()
	out := make([]whitelistEntry, 0, len(lists))
	for _, wl := range lists {
		out = append(out, whitelistEntry{Name: wl.Name(), Members: wl.Members()})
	}
	return out
}
