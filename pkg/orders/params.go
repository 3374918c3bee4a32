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

package orders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params is an ordered parameter bag. Keys keep the position of their first
// write; later writes replace the value in place.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty Params.
func NewParams() Params {
	return Params{values: make(map[string]any)}
}

// ParamsOf creates Params from key/value pairs in the given order.
// It panics on an odd number of arguments or a non-string key.
func ParamsOf(kv ...any) Params {
	if len(kv)%2 != 0 {
		panic("orders.ParamsOf: odd number of arguments")
	}
	p := NewParams()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("orders.ParamsOf: key %v is not a string", kv[i]))
		}
		p.set(key, kv[i+1])
	}
	return p
}

func (p *Params) set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	return slices.Clone(p.keys)
}

// Len returns the number of keys.
func (p Params) Len() int {
	return len(p.keys)
}

// Clone returns a copy that shares no storage with p.
func (p Params) Clone() Params {
	out := Params{
		keys:   slices.Clone(p.keys),
		values: make(map[string]any, len(p.values)),
	}
	for k, v := range p.values {
		out.values[k] = v
	}
	return out
}

// Map returns the parameters as a plain map.
func (p Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Values stringifies every parameter for use as an HTTP query.
func (p Params) Values() url.Values {
	out := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		out.Set(k, FormatValue(p.values[k]))
	}
	return out
}

// FormatValue renders a parameter value the way it is sent on the wire.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// MarshalJSON writes the parameters as a JSON object in insertion order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal param %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the parameters as a YAML mapping in insertion order.
func (p Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range p.keys {
		var val yaml.Node
		if err := val.Encode(p.values[k]); err != nil {
			return nil, fmt.Errorf("failed to marshal param %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// String returns the URL-encoded form of the parameters.
func (p Params) String() string {
	return p.Values().Encode()
}
