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
	"log"
	"text/scanner"
)

const (
	propJumboAllowed    = "jumbo_allowed"
	propJumboExcluded   = "jumbo_excluded_sources"
	propJumboMergeLimit = "jumbo_file_merge_limit"
	minMergeLimit       = 2
)

// permittedSourceTypes is the set of Types allowed anywhere in a target's
// sources list.
var permittedSourceTypes = map[SourceType]bool{
	TypeC:      true,
	TypeCPP:    true,
	TypeH:      true,
	TypeM:      true,
	TypeMM:     true,
	TypeS:      true,
	TypeASM:    true,
	TypeObject: true,
	TypeDef:    true,
	TypeGo:     true,
	TypeRust:   true,
	TypeRC:     true,
}

// Decision records what a ConfigurationIngestor step actually did, so the
// legacy silent-decline behavior documented by the specification is
// observable instead of being indistinguishable from "nothing was declared".
type Decision int

const (
	DecisionApplied Decision = iota
	DecisionAbsent
	// DecisionSkippedJumboNotAllowed marks a step that declined to apply a
	// declared value because jumbo_allowed is false on the target. This is
	// a deliberate, named replication of the legacy compatibility behavior
	// described in the specification's open questions, not an oversight.
	DecisionSkippedJumboNotAllowed
)

// ConfigurationIngestor reads and validates the jumbo_* configuration for a
// single Target from a ValueScope.
type ConfigurationIngestor struct {
	Target *Target
	Scope  ValueScope

	// Resolver resolves jumbo_excluded_sources entries relative to the
	// target's declaration directory. Defaults to DefaultPathResolver.
	Resolver PathResolver

	// Logger receives a line whenever a step resolves to
	// DecisionSkippedJumboNotAllowed, so the silent-decline path stays
	// observable. Defaults to the standard logger if nil.
	Logger *log.Logger
}

func (c *ConfigurationIngestor) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

func (c *ConfigurationIngestor) resolver() PathResolver {
	if c.Resolver != nil {
		return c.Resolver
	}
	return DefaultPathResolver{}
}

// Ingest runs the ordered sequence of fill steps and the source-list
// validation, matching the order fixed by SPEC_FULL.md §1: the general
// source list is validated and typed first, then the jumbo options are
// filled in, so fill_jumbo_excluded_sources can compare against a fully
// validated, already-typed source list.
func (c *ConfigurationIngestor) Ingest() *Error {
	if err := c.validateSourceList(); err != nil {
		return err
	}
	if _, err := c.fillJumboAllowed(); err != nil {
		return err
	}
	if _, err := c.fillJumboExcludedSources(); err != nil {
		return err
	}
	if _, err := c.fillJumboFileMergeLimit(); err != nil {
		return err
	}
	return nil
}

func (c *ConfigurationIngestor) fillJumboAllowed() (Decision, *Error) {
	v, ok := c.Scope.Lookup(propJumboAllowed, true)
	if !ok {
		return DecisionAbsent, nil
	}
	if v.Kind != KindBool {
		return DecisionAbsent, newError(TypeMismatch, v.Pos,
			"%s: expecting bool, got %s", propJumboAllowed, v.Kind)
	}
	c.Target.JumboAllowed = v.Bool
	return DecisionApplied, nil
}

func (c *ConfigurationIngestor) fillJumboExcludedSources() (Decision, *Error) {
	v, ok := c.Scope.Lookup(propJumboExcluded, true)
	if !ok {
		return DecisionAbsent, nil
	}
	if !c.Target.JumboAllowed {
		c.logger().Printf("jumbo: %s declared but jumbo_allowed is false on %q; ignoring (legacy compatibility)",
			propJumboExcluded, c.Target.Name)
		return DecisionSkippedJumboNotAllowed, nil
	}
	if v.Kind != KindList {
		return DecisionAbsent, newError(TypeMismatch, v.Pos,
			"%s: expecting list, got %s", propJumboExcluded, v.Kind)
	}

	excluded := make([]SourceFile, 0, len(v.List))
	for _, elem := range v.List {
		if elem.Kind != KindString {
			return DecisionAbsent, newError(TypeMismatch, elem.Pos,
				"%s: expecting string in list, got %s", propJumboExcluded, elem.Kind)
		}
		resolved, err := c.resolver().ResolveSource(c.Target.DeclDir, elem.Str)
		if err != nil {
			return DecisionAbsent, newError(ReferentialIntegrity, elem.Pos, "%s: %s", propJumboExcluded, err)
		}
		excluded = append(excluded, resolved)
	}

	if err := ValidateReferentialSubset("Excluded file not in sources", excluded, c.Target.Sources, v.Pos); err != nil {
		return DecisionAbsent, err
	}

	c.Target.JumboExcludedSources = excluded
	return DecisionApplied, nil
}

func (c *ConfigurationIngestor) fillJumboFileMergeLimit() (Decision, *Error) {
	v, ok := c.Scope.Lookup(propJumboMergeLimit, true)
	if !ok {
		return DecisionAbsent, nil
	}
	if !c.Target.JumboAllowed {
		c.logger().Printf("jumbo: %s declared but jumbo_allowed is false on %q; ignoring (legacy compatibility)",
			propJumboMergeLimit, c.Target.Name)
		return DecisionSkippedJumboNotAllowed, nil
	}
	if v.Kind != KindInt {
		return DecisionAbsent, newError(TypeMismatch, v.Pos,
			"%s: expecting int, got %s", propJumboMergeLimit, v.Kind)
	}
	if v.Int < minMergeLimit {
		return DecisionAbsent, newError(ValueOutOfRange, v.Pos, "Value must be greater than 1.")
	}
	c.Target.JumboFileMergeLimit = int(v.Int)
	return DecisionApplied, nil
}

// validateSourceList checks every source's Type against the permitted set,
// records SourceTypesUsed, and enforces the single-language-family rule.
func (c *ConfigurationIngestor) validateSourceList() *Error {
	t := c.Target
	t.SourceTypesUsed = make(map[SourceType]bool, len(t.Sources))

	var firstFamily languageFamily
	var firstFamilySrc SourceFile
	haveFamily := false

	// An alternate crate-root path counts as using TypeRust before the
	// mixed-language check runs, the same order GN's ValidateSources()
	// calls source_types_used().Set(SOURCE_RS) ahead of MixedSourceUsed():
	// a target with a Go-family source list and an alternate crate root
	// must still fail as mixed languages.
	if t.HasAltCrateRoot {
		t.SourceTypesUsed[TypeRust] = true
		firstFamily = familyRust
		firstFamilySrc = NewSourceFile("<alternate crate root>")
		haveFamily = true
	}

	for _, src := range t.Sources {
		if src.Type() == TypeUnknown {
			return newError(UnsupportedSourceKind, scanner.Position{},
				"Only source, header, and object files belong in the sources of a target.")
		}
		if !permittedSourceTypes[src.Type()] {
			return newError(UnsupportedSourceKind, scanner.Position{},
				"Only source, header, and object files belong in the sources of a target.")
		}
		t.SourceTypesUsed[src.Type()] = true

		family := src.Type().family()
		if family == familyNone {
			continue
		}
		if !haveFamily {
			firstFamily, firstFamilySrc = family, src
			haveFamily = true
			continue
		}
		if family != firstFamily {
			return newError(MixedLanguages, scanner.Position{},
				"More than one language used in target sources: %q (%s) vs %q (%s).",
				firstFamilySrc.Path(), firstFamily, src.Path(), family)
		}
	}

	return nil
}

func (f languageFamily) String() string {
	switch f {
	case familyCLike:
		return "C/C++/ObjC family"
	case familyASM:
		return "assembly"
	case familyGo:
		return "Go"
	case familyRust:
		return "Rust"
	default:
		return "none"
	}
}
