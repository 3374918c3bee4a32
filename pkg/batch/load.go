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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/orderquery/pkg/defaults"
	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
	"github.com/NVIDIA/orderquery/pkg/header"
)

var validate = validator.New()

// File is a definitions document.
type File struct {
	header.Header `yaml:",inline"`

	Filters []Definition `json:"filters" yaml:"filters" validate:"required,min=1,unique=Name,dive"`
}

// Load reads and validates the definitions file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, qerrors.WrapWithContext(qerrors.ErrCodeNotFound, "failed to open definitions file", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes and validates a definitions document. Unknown keys are
// rejected.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(io.LimitReader(r, defaults.BatchMaxFileSize+1))
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInternal, "failed to read definitions", err)
	}
	if len(data) > defaults.BatchMaxFileSize {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest, "definitions exceed maximum size",
			map[string]any{"limit": defaults.BatchMaxFileSize})
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "definitions document is empty")
		}
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidRequest, "failed to decode definitions", err)
	}

	if file.Kind != "" && file.Kind != header.KindFilterDefinitions {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest, "unexpected document kind",
			map[string]any{"kind": file.Kind, "expected": header.KindFilterDefinitions})
	}
	if len(file.Filters) > defaults.BatchMaxFilters {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest, "too many filter definitions",
			map[string]any{"count": len(file.Filters), "limit": defaults.BatchMaxFilters})
	}
	if err := validate.Struct(&file); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidRequest, "invalid definitions", err)
	}
	return &file, nil
}
