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

package header

import (
	"testing"
	"time"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindFilterDefinitions, true},
		{KindFilterReport, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAppliesOptions(t *testing.T) {
	h := New(WithKind(KindFilterReport), WithMetadata(MetadataRunID, "abc"))

	if h.Kind != KindFilterReport {
		t.Errorf("Kind = %q, want %q", h.Kind, KindFilterReport)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, APIVersion)
	}
	if h.Metadata[MetadataRunID] != "abc" {
		t.Errorf("run id = %q, want abc", h.Metadata[MetadataRunID])
	}

	h = New(WithAPIVersion("v0"))
	if h.APIVersion != "v0" {
		t.Errorf("APIVersion = %q, want v0", h.APIVersion)
	}
}

func TestInit(t *testing.T) {
	h := New(WithMetadata(MetadataRunID, "abc"))
	h.Init(KindFilterReport, APIVersion, "v1.2.3")

	if h.Kind != KindFilterReport {
		t.Errorf("Kind = %q, want %q", h.Kind, KindFilterReport)
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", h.Metadata[MetadataTimestamp], err)
	}
	if h.Metadata[MetadataVersion] != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", h.Metadata[MetadataVersion])
	}
	if h.Metadata[MetadataRunID] != "abc" {
		t.Error("Init dropped existing metadata")
	}

	var empty Header
	empty.Init(KindFilterDefinitions, APIVersion, "")
	if _, ok := empty.Metadata[MetadataVersion]; ok {
		t.Error("empty version should not be recorded")
	}
}
