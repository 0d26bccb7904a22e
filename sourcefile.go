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

import (
	"path/filepath"
	"strings"
)

// SourceType is a closed classification of the kinds of files that can
// appear in a target's source list.
type SourceType int

const (
	TypeUnknown SourceType = iota
	TypeC
	TypeCPP
	TypeMM
	TypeH
	TypeM
	TypeASM
	TypeS
	TypeObject
	TypeDef
	TypeRC
	TypeGo
	TypeRust
)

func (t SourceType) String() string {
	switch t {
	case TypeC:
		return "C"
	case TypeCPP:
		return "CPP"
	case TypeMM:
		return "MM"
	case TypeH:
		return "H"
	case TypeM:
		return "M"
	case TypeASM:
		return "ASM"
	case TypeS:
		return "S"
	case TypeObject:
		return "OBJECT"
	case TypeDef:
		return "DEF"
	case TypeRC:
		return "RC"
	case TypeGo:
		return "GO"
	case TypeRust:
		return "RUST"
	default:
		return "UNKNOWN"
	}
}

// extensionTypes maps a lowercased file extension (without the leading dot)
// to the SourceType it is classified as. Extensions not present here
// classify as TypeUnknown.
var extensionTypes = map[string]SourceType{
	"c":   TypeC,
	"cc":  TypeCPP,
	"cpp": TypeCPP,
	"cxx": TypeCPP,
	"mm":  TypeMM,
	"h":   TypeH,
	"hh":  TypeH,
	"hpp": TypeH,
	"inc": TypeH,
	"m":   TypeM,
	"asm": TypeASM,
	"s":   TypeS,
	"o":   TypeObject,
	"obj": TypeObject,
	"def": TypeDef,
	"rc":  TypeRC,
	"go":  TypeGo,
	"rs":  TypeRust,
}

// jumboExtensions gives the canonical file extension for each SourceType
// that can appear as the output of an aggregate, keyed by the type the
// aggregate's members share.
var jumboExtensions = map[SourceType]string{
	TypeC:   "c",
	TypeCPP: "cc",
	TypeMM:  "mm",
}

// SourceFile is an opaque, comparable reference to a single path in the
// build tree, classified by extension at construction time. Two SourceFiles
// are equal iff their paths are equal; the Type is derived data, not part of
// identity.
type SourceFile struct {
	path string
	typ  SourceType
}

// NewSourceFile constructs a SourceFile for path, classifying its Type from
// the path's extension.
func NewSourceFile(path string) SourceFile {
	return SourceFile{path: path, typ: classify(path)}
}

func classify(path string) SourceType {
	ext := filepath.Ext(path)
	if len(ext) == 0 {
		return TypeUnknown
	}
	ext = ext[1:] // drop the leading dot
	if t, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return t
	}
	return TypeUnknown
}

// Path returns the file's path as supplied to NewSourceFile.
func (s SourceFile) Path() string { return s.path }

// Type returns the file's classified SourceType.
func (s SourceFile) Type() SourceType { return s.typ }

// IsNull reports whether s is the zero SourceFile.
func (s SourceFile) IsNull() bool { return s.path == "" }

// Equal reports whether s and o refer to the same path. Equality is by path
// identity only, matching the data model's comparable-path contract.
func (s SourceFile) Equal(o SourceFile) bool { return s.path == o.path }

// eligibleForJumbo reports whether sources of this type can be merged into
// an aggregate at all.
func (t SourceType) eligibleForJumbo() bool {
	switch t {
	case TypeC, TypeCPP, TypeMM:
		return true
	default:
		return false
	}
}

// languageFamily buckets a SourceType into the mutual-compatibility classes
// used for the "more than one language used in target sources" check.
// C, CPP, M, and MM are treated as one compatible family; every other
// compilable type is its own family. Types that carry no language opinion
// (headers, objects, linker defs, resources) return familyNone and never
// participate in the mixed-language check.
type languageFamily int

const (
	familyNone languageFamily = iota
	familyCLike
	familyASM
	familyGo
	familyRust
)

func (t SourceType) family() languageFamily {
	switch t {
	case TypeC, TypeCPP, TypeM, TypeMM:
		return familyCLike
	case TypeASM, TypeS:
		return familyASM
	case TypeGo:
		return familyGo
	case TypeRust:
		return familyRust
	default:
		return familyNone
	}
}

// jumboExtension returns the canonical aggregate file extension for t and
// true if t is a type that can head an aggregate.
func (t SourceType) jumboExtension() (string, bool) {
	ext, ok := jumboExtensions[t]
	return ext, ok
}
