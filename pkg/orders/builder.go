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

package orders

import (
	"log/slog"
	"slices"
	"time"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
	"github.com/NVIDIA/orderquery/pkg/normalize"
	"github.com/NVIDIA/orderquery/pkg/status"
)

// QueryBuilder accumulates validated order filter parameters.
//
// Setters return the builder for chaining. Every call is evaluated on its
// own: a rejected value leaves the parameters unchanged and its error is
// recorded, while later valid calls are still applied. Err reports the first
// recorded error, Errors all of them, and ClearErr forgets them.
//
// A QueryBuilder is not safe for concurrent use.
type QueryBuilder struct {
	params            Params
	fulfillmentStatus *status.Whitelist
	paymentStatus     *status.Whitelist
	errs              []error
}

// Option configures a QueryBuilder.
type Option func(*QueryBuilder)

// WithLegacyStatuses validates statuses against the legacy order API whitelists.
func WithLegacyStatuses() Option {
	return func(b *QueryBuilder) {
		b.fulfillmentStatus = status.LegacyFulfillment
		b.paymentStatus = status.LegacyPayment
	}
}

// WithStatusWhitelists overrides the fulfillment and payment whitelists.
func WithStatusWhitelists(fulfillment, payment *status.Whitelist) Option {
	return func(b *QueryBuilder) {
		b.fulfillmentStatus = fulfillment
		b.paymentStatus = payment
	}
}

// NewQueryBuilder creates an empty QueryBuilder using the current status whitelists.
func NewQueryBuilder(opts ...Option) *QueryBuilder {
	b := &QueryBuilder{
		params:            NewParams(),
		fulfillmentStatus: status.Fulfillment,
		paymentStatus:     status.Payment,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Err returns the first validation error recorded since the last ClearErr.
func (b *QueryBuilder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return b.errs[0]
}

// Errors returns every validation error recorded since the last ClearErr, in
// call order.
func (b *QueryBuilder) Errors() []error {
	return slices.Clone(b.errs)
}

// ClearErr forgets recorded errors. Accepted parameters are kept.
func (b *QueryBuilder) ClearErr() *QueryBuilder {
	b.errs = nil
	return b
}

// Params returns a snapshot of the accumulated parameters.
func (b *QueryBuilder) Params() Params {
	return b.params.Clone()
}

// Build returns a snapshot of the parameters, or the first validation error.
func (b *QueryBuilder) Build() (Params, error) {
	if err := b.Err(); err != nil {
		return Params{}, err
	}
	return b.Params(), nil
}

// GetParam returns the stored value for key without validating anything.
func (b *QueryBuilder) GetParam(key string) (any, bool) {
	return b.params.Get(key)
}

// WithFulfillmentStatus adds fulfillment statuses to the filter. Repeated
// calls accumulate.
func (b *QueryBuilder) WithFulfillmentStatus(raw string) *QueryBuilder {
	return b.addStatuses(ParamFulfillmentStatus, raw, b.fulfillmentStatus)
}

// WithPaymentStatus adds payment statuses to the filter. Repeated calls accumulate.
func (b *QueryBuilder) WithPaymentStatus(raw string) *QueryBuilder {
	return b.addStatuses(ParamPaymentStatus, raw, b.paymentStatus)
}

func (b *QueryBuilder) addStatuses(key, raw string, wl *status.Whitelist) *QueryBuilder {
	set, err := status.ValidateField(key, raw, wl)
	if err != nil {
		return b.fail(err)
	}
	if prev, ok := b.params.Get(key); ok {
		set = status.Parse(FormatValue(prev)).Union(set)
	}
	return b.write(key, set.String())
}

// WithCreatedFrom sets the lower bound of the order creation date.
func (b *QueryBuilder) WithCreatedFrom(date string) *QueryBuilder {
	return b.setDate(ParamCreatedFrom, date)
}

// WithCreatedTo sets the upper bound of the order creation date.
func (b *QueryBuilder) WithCreatedTo(date string) *QueryBuilder {
	return b.setDate(ParamCreatedTo, date)
}

// WithCreatedFromTime sets the lower bound of the order creation date.
func (b *QueryBuilder) WithCreatedFromTime(t time.Time) *QueryBuilder {
	return b.setTime(ParamCreatedFrom, t)
}

// WithCreatedToTime sets the upper bound of the order creation date.
func (b *QueryBuilder) WithCreatedToTime(t time.Time) *QueryBuilder {
	return b.setTime(ParamCreatedTo, t)
}

// WithCreated sets both creation date bounds, or neither if one is invalid.
func (b *QueryBuilder) WithCreated(from, to string) *QueryBuilder {
	return b.setDateRange(ParamCreatedFrom, from, ParamCreatedTo, to)
}

// WithCreatedBetween sets both creation date bounds from native times.
func (b *QueryBuilder) WithCreatedBetween(from, to time.Time) *QueryBuilder {
	return b.setTimeRange(ParamCreatedFrom, from, ParamCreatedTo, to)
}

// WithUpdatedFrom sets the lower bound of the order update date.
func (b *QueryBuilder) WithUpdatedFrom(date string) *QueryBuilder {
	return b.setDate(ParamUpdatedFrom, date)
}

// WithUpdatedTo sets the upper bound of the order update date.
func (b *QueryBuilder) WithUpdatedTo(date string) *QueryBuilder {
	return b.setDate(ParamUpdatedTo, date)
}

// WithUpdatedFromTime sets the lower bound of the order update date.
func (b *QueryBuilder) WithUpdatedFromTime(t time.Time) *QueryBuilder {
	return b.setTime(ParamUpdatedFrom, t)
}

// WithUpdatedToTime sets the upper bound of the order update date.
func (b *QueryBuilder) WithUpdatedToTime(t time.Time) *QueryBuilder {
	return b.setTime(ParamUpdatedTo, t)
}

// WithUpdated sets both update date bounds, or neither if one is invalid.
func (b *QueryBuilder) WithUpdated(from, to string) *QueryBuilder {
	return b.setDateRange(ParamUpdatedFrom, from, ParamUpdatedTo, to)
}

// WithUpdatedBetween sets both update date bounds from native times.
func (b *QueryBuilder) WithUpdatedBetween(from, to time.Time) *QueryBuilder {
	return b.setTimeRange(ParamUpdatedFrom, from, ParamUpdatedTo, to)
}

func (b *QueryBuilder) setDate(key, raw string) *QueryBuilder {
	v, err := normalize.Date(key, raw)
	if err != nil {
		return b.fail(err)
	}
	return b.write(key, v)
}

func (b *QueryBuilder) setTime(key string, t time.Time) *QueryBuilder {
	return b.write(key, normalize.Time(t))
}

func (b *QueryBuilder) setDateRange(fromKey, from, toKey, to string) *QueryBuilder {
	fromV, err := normalize.Date(fromKey, from)
	if err != nil {
		return b.fail(err)
	}
	toV, err := normalize.Date(toKey, to)
	if err != nil {
		return b.fail(err)
	}
	return b.write(fromKey, fromV).write(toKey, toV)
}

func (b *QueryBuilder) setTimeRange(fromKey string, from time.Time, toKey string, to time.Time) *QueryBuilder {
	return b.write(fromKey, normalize.Time(from)).write(toKey, normalize.Time(to))
}

// WithTotalFrom sets the minimum order total.
func (b *QueryBuilder) WithTotalFrom(total float64) *QueryBuilder {
	return setNumber(b, ParamTotalFrom, total)
}

// WithTotalTo sets the maximum order total.
func (b *QueryBuilder) WithTotalTo(total float64) *QueryBuilder {
	return setNumber(b, ParamTotalTo, total)
}

// WithTotals sets both total bounds, or neither if one is invalid.
func (b *QueryBuilder) WithTotals(from, to float64) *QueryBuilder {
	fromV, err := normalize.NonNegative(ParamTotalFrom, from)
	if err != nil {
		return b.fail(err)
	}
	toV, err := normalize.NonNegative(ParamTotalTo, to)
	if err != nil {
		return b.fail(err)
	}
	return b.write(ParamTotalFrom, fromV).write(ParamTotalTo, toV)
}

// WithLimit sets the maximum number of orders returned. No upper bound is
// enforced here.
func (b *QueryBuilder) WithLimit(limit int) *QueryBuilder {
	return setNumber(b, ParamLimit, limit)
}

// WithOffset sets the number of orders to skip.
func (b *QueryBuilder) WithOffset(offset int) *QueryBuilder {
	return setNumber(b, ParamOffset, offset)
}

// WithCouponCode filters by discount coupon code.
func (b *QueryBuilder) WithCouponCode(code int64) *QueryBuilder {
	return setNumber(b, ParamCouponCode, code)
}

// WithOrderNumber filters by order number.
func (b *QueryBuilder) WithOrderNumber(number int64) *QueryBuilder {
	return setNumber(b, ParamOrderNumber, number)
}

func setNumber[T normalize.Number](b *QueryBuilder, key string, v T) *QueryBuilder {
	n, err := normalize.NonNegative(key, v)
	if err != nil {
		return b.fail(err)
	}
	return b.write(key, n)
}

// WithCustomer filters by customer name or email.
func (b *QueryBuilder) WithCustomer(customer string) *QueryBuilder {
	return b.setText(ParamCustomer, customer)
}

// WithKeywords sets free text search keywords.
func (b *QueryBuilder) WithKeywords(keywords string) *QueryBuilder {
	return b.setText(ParamKeywords, keywords)
}

// WithPaymentMethod filters by payment method title.
func (b *QueryBuilder) WithPaymentMethod(method string) *QueryBuilder {
	return b.setText(ParamPaymentMethod, method)
}

// WithShippingMethod filters by shipping method title.
func (b *QueryBuilder) WithShippingMethod(method string) *QueryBuilder {
	return b.setText(ParamShippingMethod, method)
}

// WithVendorOrderNumber filters by the vendor order number.
func (b *QueryBuilder) WithVendorOrderNumber(number string) *QueryBuilder {
	return b.setText(ParamVendorOrderNumber, number)
}

func (b *QueryBuilder) setText(key, v string) *QueryBuilder {
	text, err := normalize.Text(key, v)
	if err != nil {
		return b.fail(err)
	}
	return b.write(key, text)
}

// WithParam sets an arbitrary parameter not covered by a dedicated setter.
// Keys owned by a dedicated setter are rejected.
func (b *QueryBuilder) WithParam(key string, value any) *QueryBuilder {
	if err := normalize.Custom(key, value); err != nil {
		return b.fail(err)
	}
	if reservedParams[key] {
		return b.fail(qerrors.NewInvalidArgument(qerrors.CategoryReservedKey, key,
			"parameter has a dedicated setter"))
	}
	return b.write(key, value)
}

// ValidateNewLegacyStatuses checks that a bulk status update built from this
// filter is scoped and sets at least one status.
func (b *QueryBuilder) ValidateNewLegacyStatuses(candidates ...string) error {
	return ValidateNewLegacyStatuses(b.params, candidates...)
}

func (b *QueryBuilder) write(key string, value any) *QueryBuilder {
	b.params.set(key, value)
	paramsWritten.Inc()
	return b
}

func (b *QueryBuilder) fail(err error) *QueryBuilder {
	b.errs = append(b.errs, recordFailure("order filter value rejected", err))
	return b
}

func recordFailure(msg string, err error) error {
	category := qerrors.CategoryOf(err)
	validationFailures.WithLabelValues(string(category)).Inc()
	slog.Debug(msg,
		"field", qerrors.FieldOf(err),
		"category", string(category),
		"error", err)
	return err
}
