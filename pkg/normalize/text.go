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
	"reflect"
	"strings"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

// Text rejects blank values and returns v unchanged otherwise.
func Text(field, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", qerrors.NewInvalidArgument(qerrors.CategoryMissingValue, field, "value is required")
	}
	return v, nil
}

// Custom validates an arbitrary parameter: the key must not be blank and the
// value must not be nil, including a nil pointer, map, slice, func or chan.
func Custom(key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return qerrors.NewInvalidArgument(qerrors.CategoryMissingKey, "param", "parameter key is required")
	}
	if isNil(value) {
		return qerrors.NewInvalidArgument(qerrors.CategoryMissingValue, key, "parameter value is required")
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	//nolint:exhaustive // only nilable kinds matter
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
