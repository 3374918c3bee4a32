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

// Parameter keys understood by the order search endpoint.
const (
	ParamFulfillmentStatus = "fulfillmentStatus"
	ParamPaymentStatus     = "paymentStatus"
	ParamCreatedFrom       = "createdFrom"
	ParamCreatedTo         = "createdTo"
	ParamUpdatedFrom       = "updatedFrom"
	ParamUpdatedTo         = "updatedTo"
	ParamTotalFrom         = "totalFrom"
	ParamTotalTo           = "totalTo"
	ParamLimit             = "limit"
	ParamOffset            = "offset"
	ParamCustomer          = "customer"
	ParamKeywords          = "keywords"
	ParamPaymentMethod     = "paymentMethod"
	ParamShippingMethod    = "shippingMethod"
	ParamCouponCode        = "couponCode"
	ParamOrderNumber       = "orderNumber"
	ParamVendorOrderNumber = "vendorOrderNumber"
)

// pagingParams do not narrow the set of matched orders.
var pagingParams = map[string]bool{
	ParamLimit:  true,
	ParamOffset: true,
}

// reservedParams have dedicated setters and cannot be written by WithParam.
var reservedParams = map[string]bool{
	ParamFulfillmentStatus: true,
	ParamPaymentStatus:     true,
	ParamCreatedFrom:       true,
	ParamCreatedTo:         true,
	ParamUpdatedFrom:       true,
	ParamUpdatedTo:         true,
	ParamTotalFrom:         true,
	ParamTotalTo:           true,
	ParamLimit:             true,
	ParamOffset:            true,
	ParamCustomer:          true,
	ParamKeywords:          true,
	ParamPaymentMethod:     true,
	ParamShippingMethod:    true,
	ParamCouponCode:        true,
	ParamOrderNumber:       true,
	ParamVendorOrderNumber: true,
}
