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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
	"github.com/NVIDIA/orderquery/pkg/header"
	"github.com/NVIDIA/orderquery/pkg/orders"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDefinitionBuild(t *testing.T) {
	tests := []struct {
		name      string
		def       Definition
		wantKeys  []string
		wantQuery string
		wantErr   qerrors.Category
	}{
		{
			name: "field order is fixed",
			def: Definition{
				Name:          "all",
				Params:        map[string]string{"zeta": "1", "alpha": "2"},
				Customer:      ptr("jane"),
				Limit:         ptr(10),
				CreatedFrom:   ptr("2024-03-01"),
				PaymentStatus: []string{"paid", "refunded"},
			},
			wantKeys:  []string{"paymentStatus", "createdFrom", "limit", "customer", "alpha", "zeta"},
			wantQuery: "alpha=2&createdFrom=2024-03-01+00%3A00%3A00&customer=jane&limit=10&paymentStatus=PAID%2CREFUNDED&zeta=1",
		},
		{
			name:      "statuses accumulate",
			def:       Definition{Name: "s", FulfillmentStatus: []string{"shipped", "processing shipped"}},
			wantKeys:  []string{"fulfillmentStatus"},
			wantQuery: "fulfillmentStatus=SHIPPED%2CPROCESSING",
		},
		{
			name:     "legacy whitelists",
			def:      Definition{Name: "l", Legacy: true, FulfillmentStatus: []string{"new"}},
			wantKeys: []string{"fulfillmentStatus"},
		},
		{
			name:    "legacy rejects current only status",
			def:     Definition{Name: "l", Legacy: true, PaymentStatus: []string{"refunded"}},
			wantErr: qerrors.CategoryInvalidStatus,
		},
		{
			name:    "blank text is rejected",
			def:     Definition{Name: "t", Keywords: ptr("  ")},
			wantErr: qerrors.CategoryMissingValue,
		},
		{
			name:    "invalid total pair",
			def:     Definition{Name: "n", TotalFrom: ptr(1.0), TotalTo: ptr(-1.0)},
			wantErr: qerrors.CategoryNegativeNumber,
		},
		{
			name:     "scoped update",
			def:      Definition{Name: "u", OrderNumber: ptr(int64(7)), NewStatuses: []string{"SHIPPED"}},
			wantKeys: []string{"orderNumber"},
		},
		{
			name:    "unscoped update",
			def:     Definition{Name: "u", Limit: ptr(5), NewStatuses: []string{"SHIPPED"}},
			wantErr: qerrors.CategoryUnscopedUpdate,
		},
		{
			name:    "update without status",
			def:     Definition{Name: "u", Customer: ptr("jane"), NewStatuses: []string{}},
			wantErr: qerrors.CategoryMissingStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := tt.def.Build()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, qerrors.CategoryOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, params.Keys())
			if tt.wantQuery != "" {
				assert.Equal(t, tt.wantQuery, params.String())
			}
		})
	}
}

func TestDefinitionBuilderSkipsOnlyRejectedFields(t *testing.T) {
	def := Definition{
		Name:          "partial",
		PaymentStatus: []string{"paid"},
		CreatedFrom:   ptr("2024-01-01"),
		CreatedTo:     ptr("tomorrow"),
		Limit:         ptr(10),
	}

	b := def.Builder()
	require.Error(t, b.Err())
	assert.Equal(t, qerrors.CategoryInvalidDate, qerrors.CategoryOf(b.Err()))
	assert.Equal(t, []string{"paymentStatus", "limit"}, b.Params().Keys())
}

const validDoc = `
kind: FilterDefinitions
apiVersion: orderquery.nvidia.com/v1
filters:
  - name: recent-paid
    paymentStatus: [paid]
    createdFrom: "2024-01-01"
    limit: 50
  - name: ship-processing
    fulfillmentStatus: [processing]
    newStatuses: [SHIPPED]
  - name: broken
    totalFrom: -3
`

func TestParse(t *testing.T) {
	file, err := Parse(strings.NewReader(validDoc))
	require.NoError(t, err)

	assert.Equal(t, header.KindFilterDefinitions, file.Kind)
	require.Len(t, file.Filters, 3)
	assert.Equal(t, "recent-paid", file.Filters[0].Name)
	require.NotNil(t, file.Filters[0].Limit)
	assert.Equal(t, 50, *file.Filters[0].Limit)
	assert.True(t, file.Filters[1].IsUpdate())
	assert.False(t, file.Filters[0].IsUpdate())
	require.NotNil(t, file.Filters[2].TotalFrom)
	assert.InDelta(t, -3.0, *file.Filters[2].TotalFrom, 0)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty"},
		{"no filters", "filters: []\n", "invalid definitions"},
		{"missing name", "filters:\n  - limit: 1\n", "invalid definitions"},
		{"duplicate names", "filters:\n  - name: a\n  - name: a\n", "invalid definitions"},
		{"unknown key", "filters:\n  - name: a\n    colour: red\n", "failed to decode"},
		{"wrong kind", "kind: FilterReport\nfilters:\n  - name: a\n", "unexpected document kind"},
		{"malformed", "filters: [\n", "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	file, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, file.Filters, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var se *qerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, qerrors.ErrCodeNotFound, se.Code)
}

func TestRunnerCollectsAllResults(t *testing.T) {
	file, err := Parse(strings.NewReader(validDoc))
	require.NoError(t, err)

	r := &Runner{Concurrency: 2, Version: "test"}
	report, err := r.Run(t.Context(), file.Filters)
	require.NoError(t, err)

	assert.Equal(t, header.KindFilterReport, report.Kind)
	assert.NotEmpty(t, report.Metadata[header.MetadataRunID])
	assert.Equal(t, "test", report.Metadata[header.MetadataVersion])

	require.Len(t, report.Results, 3)
	assert.Equal(t, 1, report.Failed)

	assert.Equal(t, "recent-paid", report.Results[0].Name)
	assert.True(t, report.Results[0].OK())
	assert.Equal(t, "createdFrom=2024-01-01+00%3A00%3A00&limit=50&paymentStatus=PAID", report.Results[0].Query)

	assert.True(t, report.Results[1].OK())
	assert.True(t, report.Results[1].Update)

	assert.False(t, report.Results[2].OK())
	assert.Equal(t, qerrors.CategoryNegativeNumber, report.Results[2].Category)
	assert.Equal(t, orders.ParamTotalFrom, report.Results[2].Field)
	assert.Zero(t, report.Results[2].Params.Len())
}

func TestRunnerFailFast(t *testing.T) {
	defs := []Definition{
		{Name: "bad", Limit: ptr(-1)},
	}
	report, err := (&Runner{FailFast: true}).Run(t.Context(), defs)
	require.Error(t, err)
	assert.Equal(t, qerrors.CategoryNegativeNumber, qerrors.CategoryOf(err))
	assert.Contains(t, err.Error(), `filter "bad"`)
	assert.Equal(t, 1, report.Failed)
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	defs := []Definition{{Name: "a", Limit: ptr(1)}, {Name: "b", Limit: ptr(2)}}
	report, err := (&Runner{}).Run(ctx, defs)
	require.Error(t, err)

	var se *qerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, qerrors.ErrCodeInternal, se.Code)
	assert.Equal(t, 2, report.Failed)
	for _, res := range report.Results {
		assert.True(t, res.Skipped)
	}
}

func TestRunnerEmpty(t *testing.T) {
	report, err := (&Runner{}).Run(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Zero(t, report.Failed)
}

func TestRunnerRateLimitTimesOut(t *testing.T) {
	defs := make([]Definition, 5)
	for i := range defs {
		defs[i] = Definition{Name: fmt.Sprintf("f%d", i), Limit: ptr(i)}
	}

	// one start per 10s with a burst of 1 cannot finish five builds in 100ms
	r := &Runner{Concurrency: 1, Rate: 0.1, Timeout: 100 * time.Millisecond}
	report, err := r.Run(t.Context(), defs)
	require.Error(t, err)

	var se *qerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, qerrors.ErrCodeTimeout, se.Code)
	assert.True(t, report.Results[0].OK())
	assert.Equal(t, 4, report.Failed)
}
