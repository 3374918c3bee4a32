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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation failures by error category.
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderquery_validation_failures_total",
			Help: "Total number of rejected order filter values by category",
		},
		[]string{"category"},
	)

	paramsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderquery_params_written_total",
			Help: "Total number of accepted order filter parameter writes",
		},
	)
)
