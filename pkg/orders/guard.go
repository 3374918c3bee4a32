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
	"strings"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

// ValidateNewLegacyStatuses guards a bulk status update. The filter in p must
// contain at least one key besides limit and offset, otherwise the update
// would apply to every order. At least one candidate status must be non-blank.
func ValidateNewLegacyStatuses(p Params, candidates ...string) error {
	if !isScoped(p) {
		return reject(qerrors.NewInvalidArgument(qerrors.CategoryUnscopedUpdate, "filter",
			"bulk status update requires at least one filter besides limit and offset").
			With("keys", p.Keys()))
	}

	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return nil
		}
	}
	return reject(qerrors.NewInvalidArgument(qerrors.CategoryMissingStatus, "status",
		"at least one new status is required"))
}

func isScoped(p Params) bool {
	for _, k := range p.keys {
		if !pagingParams[k] {
			return true
		}
	}
	return false
}

func reject(err *qerrors.StructuredError) error {
	return recordFailure("bulk status update rejected", err)
}
