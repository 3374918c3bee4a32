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
	"maps"
	"slices"

	"github.com/NVIDIA/orderquery/pkg/orders"
)

// Definition describes one order filter. Nil fields are left unset; a
// non-nil blank text or date value is rejected by the builder.
type Definition struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Legacy bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`

	FulfillmentStatus []string `json:"fulfillmentStatus,omitempty" yaml:"fulfillmentStatus,omitempty"`
	PaymentStatus     []string `json:"paymentStatus,omitempty" yaml:"paymentStatus,omitempty"`

	CreatedFrom *string `json:"createdFrom,omitempty" yaml:"createdFrom,omitempty"`
	CreatedTo   *string `json:"createdTo,omitempty" yaml:"createdTo,omitempty"`
	UpdatedFrom *string `json:"updatedFrom,omitempty" yaml:"updatedFrom,omitempty"`
	UpdatedTo   *string `json:"updatedTo,omitempty" yaml:"updatedTo,omitempty"`

	TotalFrom   *float64 `json:"totalFrom,omitempty" yaml:"totalFrom,omitempty"`
	TotalTo     *float64 `json:"totalTo,omitempty" yaml:"totalTo,omitempty"`
	Limit       *int     `json:"limit,omitempty" yaml:"limit,omitempty"`
	Offset      *int     `json:"offset,omitempty" yaml:"offset,omitempty"`
	CouponCode  *int64   `json:"couponCode,omitempty" yaml:"couponCode,omitempty"`
	OrderNumber *int64   `json:"orderNumber,omitempty" yaml:"orderNumber,omitempty"`

	Customer          *string `json:"customer,omitempty" yaml:"customer,omitempty"`
	Keywords          *string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	PaymentMethod     *string `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	ShippingMethod    *string `json:"shippingMethod,omitempty" yaml:"shippingMethod,omitempty"`
	VendorOrderNumber *string `json:"vendorOrderNumber,omitempty" yaml:"vendorOrderNumber,omitempty"`

	// Params are applied after the named fields, in key order.
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`

	// NewStatuses marks the definition as a bulk status update.
	NewStatuses []string `json:"newStatuses,omitempty" yaml:"newStatuses,omitempty"`
}

// IsUpdate reports whether the definition describes a bulk status update.
func (d *Definition) IsUpdate() bool {
	return d.NewStatuses != nil
}

// Builder applies the definition to a new QueryBuilder. The returned
// builder carries the first validation failure, if any.
func (d *Definition) Builder() *orders.QueryBuilder {
	var opts []orders.Option
	if d.Legacy {
		opts = append(opts, orders.WithLegacyStatuses())
	}
	b := orders.NewQueryBuilder(opts...)

	for _, s := range d.FulfillmentStatus {
		b.WithFulfillmentStatus(s)
	}
	for _, s := range d.PaymentStatus {
		b.WithPaymentStatus(s)
	}

	setRange(d.CreatedFrom, d.CreatedTo, b.WithCreatedFrom, b.WithCreatedTo, b.WithCreated)
	setRange(d.UpdatedFrom, d.UpdatedTo, b.WithUpdatedFrom, b.WithUpdatedTo, b.WithUpdated)
	setRange(d.TotalFrom, d.TotalTo, b.WithTotalFrom, b.WithTotalTo, b.WithTotals)

	setIf(d.Limit, b.WithLimit)
	setIf(d.Offset, b.WithOffset)
	setIf(d.CouponCode, b.WithCouponCode)
	setIf(d.OrderNumber, b.WithOrderNumber)

	setIf(d.Customer, b.WithCustomer)
	setIf(d.Keywords, b.WithKeywords)
	setIf(d.PaymentMethod, b.WithPaymentMethod)
	setIf(d.ShippingMethod, b.WithShippingMethod)
	setIf(d.VendorOrderNumber, b.WithVendorOrderNumber)

	for _, k := range slices.Sorted(maps.Keys(d.Params)) {
		b.WithParam(k, d.Params[k])
	}

	return b
}

// Build validates the definition and returns its parameters. Updates are
// also checked with the bulk-update guard.
func (d *Definition) Build() (orders.Params, error) {
	b := d.Builder()
	params, err := b.Build()
	if err != nil {
		return params, err
	}
	if d.IsUpdate() {
		if err := b.ValidateNewLegacyStatuses(d.NewStatuses...); err != nil {
			return params, err
		}
	}
	return params, nil
}

func setIf[T any](v *T, set func(T) *orders.QueryBuilder) {
	if v != nil {
		set(*v)
	}
}

// setRange uses the paired setter when both bounds are present so that
// neither bound is stored if the other is invalid.
func setRange[T any](from, to *T, setFrom, setTo func(T) *orders.QueryBuilder, setBoth func(T, T) *orders.QueryBuilder) {
	switch {
	case from != nil && to != nil:
		setBoth(*from, *to)
	case from != nil:
		setFrom(*from)
	case to != nil:
		setTo(*to)
	}
}
