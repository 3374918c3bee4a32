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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

func TestNonNegative_Int(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "zero", value: 0},
		{name: "positive", value: 12},
		{name: "large", value: math.MaxInt32},
		{name: "negative", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NonNegative("limit", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, qerrors.CategoryNegativeNumber, qerrors.CategoryOf(err))
				assert.Equal(t, "limit", qerrors.FieldOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestNonNegative_Float(t *testing.T) {
	got, err := NonNegative("totalFrom", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 0)

	_, err = NonNegative("totalFrom", -0.01)
	assert.Equal(t, qerrors.CategoryNegativeNumber, qerrors.CategoryOf(err))

	_, err = NonNegative("totalTo", math.NaN())
	assert.Equal(t, qerrors.CategoryInvalidNumber, qerrors.CategoryOf(err))

	_, err = NonNegative("totalTo", math.Inf(1))
	assert.Equal(t, qerrors.CategoryInvalidNumber, qerrors.CategoryOf(err))
}

func TestNonNegative_Int64(t *testing.T) {
	got, err := NonNegative[int64]("couponCode", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = NonNegative[int64]("couponCode", -1)
	require.Error(t, err)
}
