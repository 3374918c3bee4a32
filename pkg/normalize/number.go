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

package normalize

import (
	"math"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

// Number is the set of numeric types accepted for range endpoints and identifiers.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NonNegative returns v unchanged when it is zero or positive.
func NonNegative[T Number](field string, v T) (T, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return v, qerrors.NewInvalidArgument(qerrors.CategoryInvalidNumber, field, "value is not a finite number")
	}
	if v < 0 {
		return v, qerrors.NewInvalidArgument(qerrors.CategoryNegativeNumber, field, "value must not be negative").
			With("value", v)
	}
	return v, nil
}
