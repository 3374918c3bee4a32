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

// Package batch builds many order filters at once.
//
// A definitions file is a YAML document listing named filters:
//
//	kind: FilterDefinitions
//	apiVersion: orderquery.nvidia.com/v1
//	filters:
//	  - name: recent-paid
//	    paymentStatus: [paid]
//	    createdFrom: "2024-01-01"
//	    limit: 50
//	  - name: ship-processing
//	    fulfillmentStatus: [processing]
//	    newStatuses: [SHIPPED]
//
// Each Definition is applied to an orders.QueryBuilder in a fixed field
// order. A definition that lists newStatuses describes a bulk status update
// and is also checked with the bulk-update guard.
//
// Runner builds definitions concurrently and returns a Report with one
// Result per definition, in file order:
//
//	file, err := batch.Load(path)
//	if err != nil {
//		return err
//	}
//	report, err := (&batch.Runner{FailFast: true}).Run(ctx, file.Filters)
//
// Without FailFast every definition is built and failures are recorded in
// the report. With FailFast the first failure cancels the remaining work and
// is returned.
package batch
