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
	"regexp"
	"strconv"
	"strings"
	"time"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

// DateLayout is the canonical date form sent to the order API.
const DateLayout = "2006-01-02 15:04:05"

var (
	calendarPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	epochDigits    = regexp.MustCompile(`^\d+$`)

	// calendarLayouts are tried in order for inputs with a YYYY-MM-DD prefix.
	calendarLayouts = []string{
		DateLayout,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		time.DateOnly,
	}
)

// Date validates a date filter value. Calendar strings are returned in
// DateLayout, converted to UTC when they carry a zone offset; positive epoch
// seconds are returned unchanged.
func Date(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", qerrors.NewInvalidArgument(qerrors.CategoryMissingDate, field, "date is required")
	}

	switch {
	case calendarPrefix.MatchString(raw):
		for _, layout := range calendarLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return Time(t.UTC()), nil
			}
		}
		return "", invalidDate(field, raw)
	case epochDigits.MatchString(raw):
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || secs <= 0 {
			return "", invalidDate(field, raw)
		}
		return raw, nil
	default:
		return "", invalidDate(field, raw)
	}
}

// Time formats t in DateLayout. Native times are always valid.
func Time(t time.Time) string {
	return t.Format(DateLayout)
}

func invalidDate(field, raw string) *qerrors.StructuredError {
	return qerrors.NewInvalidArgument(qerrors.CategoryInvalidDate, field,
		"date must be YYYY-MM-DD[ HH:MM:SS] or positive epoch seconds").
		With("value", raw)
}
