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

package status

import "slices"

// Whitelist is an immutable, ordered set of accepted status tokens.
type Whitelist struct {
	name    string
	members []string
	index   map[string]struct{}
}

// NewWhitelist creates a Whitelist from the given members. Duplicate members
// are collapsed; member text is stored as given.
func NewWhitelist(name string, members ...string) *Whitelist {
	w := &Whitelist{
		name:    name,
		members: make([]string, 0, len(members)),
		index:   make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		if _, ok := w.index[m]; ok {
			continue
		}
		w.index[m] = struct{}{}
		w.members = append(w.members, m)
	}
	return w
}

// Name returns the whitelist category name.
func (w *Whitelist) Name() string {
	if w == nil {
		return ""
	}
	return w.name
}

// Contains reports whether token is a member.
func (w *Whitelist) Contains(token string) bool {
	if w == nil {
		return false
	}
	_, ok := w.index[token]
	return ok
}

// Members returns a copy of the members in declaration order.
func (w *Whitelist) Members() []string {
	if w == nil {
		return nil
	}
	return slices.Clone(w.members)
}

// Len returns the number of members.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.members)
}

// IsEmpty returns true for a nil whitelist or one without members.
func (w *Whitelist) IsEmpty() bool {
	return w.Len() == 0
}

// Status tokens.
const (
	AwaitingProcessing = "AWAITING_PROCESSING"
	New                = "NEW"
	Processing         = "PROCESSING"
	Shipped            = "SHIPPED"
	Delivered          = "DELIVERED"
	WillNotDeliver     = "WILL_NOT_DELIVER"
	Returned           = "RETURNED"

	Paid            = "PAID"
	Accepted        = "ACCEPTED"
	Declined        = "DECLINED"
	Cancelled       = "CANCELLED"
	AwaitingPayment = "AWAITING_PAYMENT"
	Queued          = "QUEUED"
	Refunded        = "REFUNDED"
	Incomplete      = "INCOMPLETE"

	// ChargeableRefunded is a single legacy payment member. It contains a
	// comma, so no tokenized input can ever match it.
	ChargeableRefunded = "CHARGEABLE, REFUNDED"
)

var (
	// LegacyFulfillment lists fulfillment statuses accepted by the legacy order API.
	LegacyFulfillment = NewWhitelist("legacy-fulfillment",
		AwaitingProcessing, New, Processing, Shipped, Delivered, WillNotDeliver, Returned)

	// Fulfillment lists fulfillment statuses accepted by the current order API.
	Fulfillment = NewWhitelist("fulfillment",
		AwaitingProcessing, Processing, Shipped, Delivered, WillNotDeliver, Returned)

	// LegacyPayment lists payment statuses accepted by the legacy order API.
	LegacyPayment = NewWhitelist("legacy-payment",
		Paid, Accepted, Declined, Cancelled, AwaitingPayment, Queued, ChargeableRefunded, Incomplete)

	// Payment lists payment statuses accepted by the current order API.
	Payment = NewWhitelist("payment",
		Paid, Cancelled, AwaitingPayment, Refunded, Incomplete)
)

// All returns the four built-in whitelists.
func All() []*Whitelist {
	return []*Whitelist{LegacyFulfillment, Fulfillment, LegacyPayment, Payment}
}
