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
	"testing"
)

// testScope is a minimal ValueScope for unit tests in this package, kept
// separate from the declscope subpackage to avoid an import cycle.
type testScope struct {
	values map[string]Value
}

func (s *testScope) Lookup(name string, consume bool) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

func newTarget(sources ...string) *Target {
	t := NewTarget("mytarget", "src", "gen")
	for _, s := range sources {
		t.Sources = append(t.Sources, NewSourceFile(filepath.Join(t.DeclDir, s)))
	}
	return t
}

func TestIngestJumboAllowed(t *testing.T) {
	target := newTarget("a.cc", "b.cc")
	scope := &testScope{values: map[string]Value{
		"jumbo_allowed": {Kind: KindBool, Bool: true},
	}}

	ingestor := &ConfigurationIngestor{Target: target, Scope: scope}
	if err := ingestor.Ingest(); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if !target.JumboAllowed {
		t.Errorf("target.JumboAllowed = false, want true")
	}
}

func TestIngestJumboAllowedAbsentDefaultsFalse(t *testing.T) {
	target := newTarget("a.cc")
	ingestor := &ConfigurationIngestor{Target: target, Scope: &testScope{values: map[string]Value{}}}
	if err := ingestor.Ingest(); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if target.JumboAllowed {
		t.Errorf("target.JumboAllowed = true, want false")
	}
}

func TestIngestJumboAllowedTypeMismatch(t *testing.T) {
	target := newTarget("a.cc")
	scope := &testScope{values: map[string]Value{
		"jumbo_allowed": {Kind: KindString, Str: "yes"},
	}}
	ingestor := &ConfigurationIngestor{Target: target, Scope: scope}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want TypeMismatch")
	}
	if err.Kind != TypeMismatch {
		t.Errorf("err.Kind = %v, want %v", err.Kind, TypeMismatch)
	}
}

func TestIngestExcludedSourcesSkippedWhenNotAllowed(t *testing.T) {
	target := newTarget("a.cc", "b.cc")
	scope := &testScope{values: map[string]Value{
		"jumbo_allowed":          {Kind: KindBool, Bool: false},
		"jumbo_excluded_sources": {Kind: KindList, List: []Value{{Kind: KindString, Str: "b.cc"}}},
	}}
	ingestor := &ConfigurationIngestor{Target: target, Scope: scope}
	if err := ingestor.Ingest(); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(target.JumboExcludedSources) != 0 {
		t.Errorf("target.JumboExcludedSources = %v, want empty (silently skipped)", target.JumboExcludedSources)
	}
}

func TestIngestExcludedSourcesNotInSources(t *testing.T) {
	target := newTarget("a.cc")
	scope := &testScope{values: map[string]Value{
		"jumbo_allowed":          {Kind: KindBool, Bool: true},
		"jumbo_excluded_sources": {Kind: KindList, List: []Value{{Kind: KindString, Str: "missing.cc"}}},
	}}
	ingestor := &ConfigurationIngestor{Target: target, Scope: scope}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want ReferentialIntegrity")
	}
	if err.Kind != ReferentialIntegrity {
		t.Errorf("err.Kind = %v, want %v", err.Kind, ReferentialIntegrity)
	}
}

func TestIngestMergeLimitOutOfRange(t *testing.T) {
	target := newTarget("a.cc")
	scope := &testScope{values: map[string]Value{
		"jumbo_allowed":         {Kind: KindBool, Bool: true},
		"jumbo_file_merge_limit": {Kind: KindInt, Int: 1},
	}}
	ingestor := &ConfigurationIngestor{Target: target, Scope: scope}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want ValueOutOfRange")
	}
	if err.Kind != ValueOutOfRange {
		t.Errorf("err.Kind = %v, want %v", err.Kind, ValueOutOfRange)
	}
}

func TestIngestUnsupportedSourceKind(t *testing.T) {
	target := newTarget("a.unknownext")
	ingestor := &ConfigurationIngestor{Target: target, Scope: &testScope{values: map[string]Value{}}}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want UnsupportedSourceKind")
	}
	if err.Kind != UnsupportedSourceKind {
		t.Errorf("err.Kind = %v, want %v", err.Kind, UnsupportedSourceKind)
	}
}

func TestIngestMixedLanguages(t *testing.T) {
	target := newTarget("a.cc", "b.rs")
	ingestor := &ConfigurationIngestor{Target: target, Scope: &testScope{values: map[string]Value{}}}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want MixedLanguages")
	}
	if err.Kind != MixedLanguages {
		t.Errorf("err.Kind = %v, want %v", err.Kind, MixedLanguages)
	}
}

func TestIngestSourceTypesUsedRecordsAltCrateRoot(t *testing.T) {
	target := newTarget("a.rs")
	target.HasAltCrateRoot = true
	ingestor := &ConfigurationIngestor{Target: target, Scope: &testScope{values: map[string]Value{}}}
	if err := ingestor.Ingest(); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if !target.SourceTypesUsed[TypeRust] {
		t.Errorf("SourceTypesUsed[TypeRust] = false, want true when HasAltCrateRoot is set")
	}
}

// TestIngestAltCrateRootConflictsWithOtherLanguage covers GN's
// ValidateSources() ordering: the alternate crate root's implied RUST type
// is recorded before the mixed-language check runs, so a Go-family source
// list paired with an alternate crate root is rejected as mixed languages
// rather than silently accepted.
func TestIngestAltCrateRootConflictsWithOtherLanguage(t *testing.T) {
	target := newTarget("a.go")
	target.HasAltCrateRoot = true
	ingestor := &ConfigurationIngestor{Target: target, Scope: &testScope{values: map[string]Value{}}}
	err := ingestor.Ingest()
	if err == nil {
		t.Fatal("Ingest() error = nil, want MixedLanguages")
	}
	if err.Kind != MixedLanguages {
		t.Errorf("err.Kind = %v, want %v", err.Kind, MixedLanguages)
	}
}
