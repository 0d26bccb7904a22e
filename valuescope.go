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

package jumbo

import "text/scanner"

// ValueKind is the declared type of a Value read from a ValueScope.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a typed value read out of the declared build description, with
// attached source-location metadata for diagnostics.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
	Int  int64
	List []Value
	Pos  scanner.Position
}

// ValueScope exposes the declared values of a single target by symbolic
// name. It generalizes the teacher's unpackProperties/parser.Property
// machinery so this package's ingestion logic can run against any scope
// implementation, such as the declscope subpackage's map- and JSON-backed
// scopes or a synthetic scope built for tests.
type ValueScope interface {
	// Lookup returns the named value and true if it was declared. consume
	// marks the value as read, for scopes that track which declared
	// properties were never consumed (mirroring packedProperty.unpacked in
	// the teacher's unpack.go).
	Lookup(name string, consume bool) (Value, bool)
}
