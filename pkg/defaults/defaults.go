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

// Package defaults holds the tuning constants shared by orderq components.
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.BatchTimeout)
//	defer cancel()
package defaults

import "time"

// Batch filter building.
const (
	// BatchTimeout bounds a whole batch run. A shorter parent deadline wins.
	BatchTimeout = 30 * time.Second

	// BatchConcurrency is the number of filters built at once.
	BatchConcurrency = 8

	// BatchMaxFilters caps the number of definitions read from one file.
	BatchMaxFilters = 1000
)

// BatchMaxFileSize caps the size of a definitions file in bytes.
const BatchMaxFileSize = 4 << 20
