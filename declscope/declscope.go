// Copyright 2024 Google Inc. All rights reserved.
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

// Package declscope provides ValueScope implementations that do not depend
// on parsing a declarative build-description language. jumbo.ValueScope is
// the boundary the core ingestion logic is written against; declscope is one
// concrete way to satisfy it, built directly from Go values or from a small
// JSON document, rather than from a hand-parsed grammar.
package declscope

import "github.com/jumbogen/jumbogen"

// MapValueScope is a ValueScope backed by a fixed map of declared values. It
// tracks which names were consumed, mirroring packedProperty.unpacked in the
// teacher's own unpack.go, so callers can warn about declared-but-unused
// properties the way the teacher's context.go does for module properties.
type MapValueScope struct {
	values   map[string]jumbo.Value
	consumed map[string]bool
}

// NewMapValueScope returns a ValueScope exposing exactly the given values.
func NewMapValueScope(values map[string]jumbo.Value) *MapValueScope {
	return &MapValueScope{values: values}
}

func (s *MapValueScope) Lookup(name string, consume bool) (jumbo.Value, bool) {
	v, ok := s.values[name]
	if ok && consume {
		if s.consumed == nil {
			s.consumed = make(map[string]bool)
		}
		s.consumed[name] = true
	}
	return v, ok
}

// Unconsumed returns the declared names that were never looked up with
// consume set to true.
func (s *MapValueScope) Unconsumed() []string {
	var names []string
	for name := range s.values {
		if !s.consumed[name] {
			names = append(names, name)
		}
	}
	return names
}

// Str builds a string-typed Value, for tests and for adapters that already
// hold typed Go values rather than raw declaration text.
func Str(s string) jumbo.Value {
	return jumbo.Value{Kind: jumbo.KindString, Str: s}
}

// BoolVal builds a bool-typed Value.
func BoolVal(b bool) jumbo.Value {
	return jumbo.Value{Kind: jumbo.KindBool, Bool: b}
}

// IntVal builds an int-typed Value.
func IntVal(i int64) jumbo.Value {
	return jumbo.Value{Kind: jumbo.KindInt, Int: i}
}

// ListVal builds a list-typed Value.
func ListVal(items ...jumbo.Value) jumbo.Value {
	return jumbo.Value{Kind: jumbo.KindList, List: items}
}
