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

package status

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	qerrors "github.com/NVIDIA/orderquery/pkg/errors"
)

// Field used in errors when no caller field name is supplied.
const defaultField = "status"

var separators = regexp.MustCompile(`[\s,]+`)

// Set is an ordered, de-duplicated list of normalized status tokens.
type Set []string

// String returns the comma-joined form used as a request parameter value.
func (s Set) String() string {
	return strings.Join(s, ",")
}

// Contains reports whether token is in the set.
func (s Set) Contains(token string) bool {
	return slices.Contains(s, token)
}

// Union returns the tokens of s followed by tokens of other not already
// present, preserving first-seen order.
func (s Set) Union(other Set) Set {
	out := make(Set, 0, len(s)+len(other))
	out = appendUnique(out, s...)
	return appendUnique(out, other...)
}

// Parse splits an already normalized, comma-joined value back into a Set
// without validating it.
func Parse(joined string) Set {
	return appendUnique(nil, tokenize(joined)...)
}

// Validate validates a comma or whitespace delimited list of statuses against
// the whitelist and returns the normalized tokens.
func Validate(raw string, wl *Whitelist) (Set, error) {
	return ValidateField(defaultField, raw, wl)
}

// ValidateField is Validate with the field name reported in errors.
func ValidateField(field, raw string, wl *Whitelist) (Set, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, qerrors.NewInvalidArgument(qerrors.CategoryMissingValue, field, "status list is empty")
	}
	if wl.IsEmpty() {
		return nil, qerrors.NewInvalidArgument(qerrors.CategoryInvalidWhitelist, field, "status whitelist is empty")
	}

	var set Set
	for _, token := range tokenize(upper(raw)) {
		if !wl.Contains(token) {
			return nil, qerrors.NewInvalidArgument(qerrors.CategoryInvalidStatus, field, "invalid status "+token).
				With("requested", token).
				With("allowed", wl.Members())
		}
		set = appendUnique(set, token)
	}
	if len(set) == 0 {
		return nil, qerrors.NewInvalidArgument(qerrors.CategoryMissingValue, field, "status list has no statuses")
	}
	return set, nil
}

// ValidateSingle validates raw and requires it to name exactly one status.
func ValidateSingle(raw string, wl *Whitelist) (string, error) {
	return ValidateSingleField(defaultField, raw, wl)
}

// ValidateSingleField is ValidateSingle with the field name reported in errors.
func ValidateSingleField(field, raw string, wl *Whitelist) (string, error) {
	set, err := ValidateField(field, raw, wl)
	if err != nil {
		return "", err
	}
	if len(set) > 1 {
		return "", qerrors.NewInvalidArgument(qerrors.CategoryMultipleStatuses, field, "multiple statuses are not supported").
			With("requested", set.String())
	}
	return set[0], nil
}

func tokenize(s string) []string {
	parts := separators.Split(s, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func appendUnique(dst Set, tokens ...string) Set {
	for _, t := range tokens {
		if !slices.Contains(dst, t) {
			dst = append(dst, t)
		}
	}
	return dst
}
