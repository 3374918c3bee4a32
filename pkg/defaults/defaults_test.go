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

package defaults

import (
	"testing"
	"time"
)

func TestBatchDefaults(t *testing.T) {
	if BatchTimeout < time.Second || BatchTimeout > time.Minute {
		t.Errorf("BatchTimeout (%v) outside expected range", BatchTimeout)
	}
	if BatchConcurrency < 1 {
		t.Errorf("BatchConcurrency (%d) must be positive", BatchConcurrency)
	}
	if BatchMaxFilters < BatchConcurrency {
		t.Errorf("BatchMaxFilters (%d) should not be below BatchConcurrency (%d)", BatchMaxFilters, BatchConcurrency)
	}
	if BatchMaxFileSize <= 0 {
		t.Errorf("BatchMaxFileSize (%d) must be positive", BatchMaxFileSize)
	}
}
