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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/orderquery/pkg/batch"
	"github.com/NVIDIA/orderquery/pkg/status"
)

const (
	flagLegacy            = "legacy"
	flagFulfillmentStatus = "fulfillment-status"
	flagPaymentStatus     = "payment-status"
	flagCreatedFrom       = "created-from"
	flagCreatedTo         = "created-to"
	flagUpdatedFrom       = "updated-from"
	flagUpdatedTo         = "updated-to"
	flagTotalFrom         = "total-from"
	flagTotalTo           = "total-to"
	flagLimit             = "limit"
	flagOffset            = "offset"
	flagCustomer          = "customer"
	flagKeywords          = "keywords"
	flagPaymentMethod     = "payment-method"
	flagShippingMethod    = "shipping-method"
	flagCouponCode        = "coupon-code"
	flagOrderNumber       = "order-number"
	flagVendorOrderNumber = "vendor-order-number"
	flagParam             = "param"
)

func legacyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  flagLegacy,
		Usage: "validate statuses against the legacy order API",
	}
}

// filterFlags are shared by every command that builds an order filter.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		legacyFlag(),
		&cli.StringSliceFlag{
			Name: flagFulfillmentStatus,
			Usage: fmt.Sprintf("fulfillment statuses, comma or space separated; repeat to accumulate (supported values: %s)",
				strings.Join(status.Fulfillment.Members(), ", ")),
		},
		&cli.StringSliceFlag{
			Name: flagPaymentStatus,
			Usage: fmt.Sprintf("payment statuses, comma or space separated; repeat to accumulate (supported values: %s)",
				strings.Join(status.Payment.Members(), ", ")),
		},
		&cli.StringFlag{Name: flagCreatedFrom, Usage: "created on or after (YYYY-MM-DD[ HH:MM:SS] or epoch seconds)"},
		&cli.StringFlag{Name: flagCreatedTo, Usage: "created on or before (YYYY-MM-DD[ HH:MM:SS] or epoch seconds)"},
		&cli.StringFlag{Name: flagUpdatedFrom, Usage: "updated on or after (YYYY-MM-DD[ HH:MM:SS] or epoch seconds)"},
		&cli.StringFlag{Name: flagUpdatedTo, Usage: "updated on or before (YYYY-MM-DD[ HH:MM:SS] or epoch seconds)"},
		&cli.FloatFlag{Name: flagTotalFrom, Usage: "minimum order total"},
		&cli.FloatFlag{Name: flagTotalTo, Usage: "maximum order total"},
		&cli.IntFlag{Name: flagLimit, Usage: "maximum number of orders"},
		&cli.IntFlag{Name: flagOffset, Usage: "number of orders to skip"},
		&cli.StringFlag{Name: flagCustomer, Usage: "customer name or email"},
		&cli.StringFlag{Name: flagKeywords, Usage: "free text search"},
		&cli.StringFlag{Name: flagPaymentMethod, Usage: "payment method title"},
		&cli.StringFlag{Name: flagShippingMethod, Usage: "shipping method title"},
		&cli.Int64Flag{Name: flagCouponCode, Usage: "discount coupon code"},
		&cli.Int64Flag{Name: flagOrderNumber, Usage: "order number"},
		&cli.StringFlag{Name: flagVendorOrderNumber, Usage: "vendor order number"},
		&cli.StringSliceFlag{Name: flagParam, Usage: "additional parameter as key=value; repeatable"},
	}
}

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:                  "filter",
		EnableShellCompletion: true,
		Usage:                 "Build an order search filter and print its request parameters",
		Description: `Build an order search filter from flags. Each value is validated before it is
stored; the first invalid value aborts the command.

Status flags accumulate: --payment-status paid --payment-status refunded
yields paymentStatus=PAID,REFUNDED. All other flags set a single value.`,
		Flags: append(filterFlags(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := definitionFromCmd(cmd)
			if err != nil {
				return err
			}
			params, err := d.Builder().Build()
			if err != nil {
				return fmt.Errorf("invalid filter: %w", err)
			}
			slog.Debug("filter built", "params", params.Len())
			return writeOutput(ctx, cmd, params)
		},
	}
}

// definitionFromCmd collects the filter flags set on cmd. Unset flags stay
// nil so only explicit values reach the builder.
func definitionFromCmd(cmd *cli.Command) (*batch.Definition, error) {
	d := &batch.Definition{
		Name:              cmd.Name,
		Legacy:            cmd.Bool(flagLegacy),
		FulfillmentStatus: cmd.StringSlice(flagFulfillmentStatus),
		PaymentStatus:     cmd.StringSlice(flagPaymentStatus),
		CreatedFrom:       flagValue(cmd, flagCreatedFrom, cmd.String),
		CreatedTo:         flagValue(cmd, flagCreatedTo, cmd.String),
		UpdatedFrom:       flagValue(cmd, flagUpdatedFrom, cmd.String),
		UpdatedTo:         flagValue(cmd, flagUpdatedTo, cmd.String),
		TotalFrom:         flagValue(cmd, flagTotalFrom, cmd.Float),
		TotalTo:           flagValue(cmd, flagTotalTo, cmd.Float),
		Limit:             flagValue(cmd, flagLimit, cmd.Int),
		Offset:            flagValue(cmd, flagOffset, cmd.Int),
		CouponCode:        flagValue(cmd, flagCouponCode, cmd.Int64),
		OrderNumber:       flagValue(cmd, flagOrderNumber, cmd.Int64),
		Customer:          flagValue(cmd, flagCustomer, cmd.String),
		Keywords:          flagValue(cmd, flagKeywords, cmd.String),
		PaymentMethod:     flagValue(cmd, flagPaymentMethod, cmd.String),
		ShippingMethod:    flagValue(cmd, flagShippingMethod, cmd.String),
		VendorOrderNumber: flagValue(cmd, flagVendorOrderNumber, cmd.String),
	}

	for _, kv := range cmd.StringSlice(flagParam) {
		if d.Params == nil {
			d.Params = make(map[string]string)
		}
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --%s %q: expected key=value", flagParam, kv)
		}
		d.Params[strings.TrimSpace(key)] = value
	}

	return d, nil
}

func flagValue[T any](cmd *cli.Command, name string, get func(string) T) *T {
	if !cmd.IsSet(name) {
		return nil
	}
	v := get(name)
	return &v
}
