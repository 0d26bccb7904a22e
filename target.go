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

// DefaultMergeLimit is the merge limit a target gets when it never sets
// jumbo_file_merge_limit explicitly.
const DefaultMergeLimit = 50

// Aggregate is a single generated jumbo file: its output path and the
// ordered list of source files it includes.
type Aggregate struct {
	Output   SourceFile
	Included []SourceFile
}

// Target is the jumbo-relevant projection of a build target: the subset of
// fields this core reads and writes. The rest of the target object model
// (rules, dependencies, non-jumbo properties) is an external collaborator
// outside this package's scope.
type Target struct {
	// Name is the target's short identifier, used to form aggregate file
	// names.
	Name string

	// DeclDir is the directory the target was declared in, used to resolve
	// relative paths named in jumbo_excluded_sources.
	DeclDir string

	// GeneratedDir is the target's output directory for generated files,
	// supplied by the generator framework.
	GeneratedDir string

	// Sources is the ordered list of source files declared for the target.
	// Order is significant and preserved from the declaration site.
	Sources []SourceFile

	// HasAltCrateRoot marks that the target declares an alternate Rust
	// crate-root path adjacent to (but not part of) Sources; when true the
	// target is treated as using TypeRust regardless of what appears in
	// Sources, per the source-list validation rules.
	HasAltCrateRoot bool

	// JumboAllowed mirrors the jumbo_allowed configuration value.
	JumboAllowed bool

	// JumboExcludedSources mirrors jumbo_excluded_sources: sources to
	// exclude from aggregation. Every element must also appear in Sources.
	JumboExcludedSources []SourceFile

	// JumboFileMergeLimit mirrors jumbo_file_merge_limit: the maximum
	// number of sources per aggregate.
	JumboFileMergeLimit int

	// JumboFiles holds the planner's output once AggregatePlanner has run.
	// It is populated exactly once and is read-only afterward.
	JumboFiles []Aggregate

	// SourceTypesUsed records which SourceTypes occurred in Sources, filled
	// in by the source-list validation step.
	SourceTypesUsed map[SourceType]bool
}

// NewTarget returns a Target with JumboFileMergeLimit defaulted to
// DefaultMergeLimit, matching the data model's documented default.
func NewTarget(name, declDir, generatedDir string) *Target {
	return &Target{
		Name:                name,
		DeclDir:             declDir,
		GeneratedDir:        generatedDir,
		JumboFileMergeLimit: DefaultMergeLimit,
	}
}

// excludesSource reports whether src appears in t.JumboExcludedSources, by
// SourceFile equality.
func (t *Target) excludesSource(src SourceFile) bool {
	for _, excluded := range t.JumboExcludedSources {
		if excluded.Equal(src) {
			return true
		}
	}
	return false
}

// containsSource reports whether src appears in t.Sources, by SourceFile
// equality.
func (t *Target) containsSource(src SourceFile) bool {
	for _, s := range t.Sources {
		if s.Equal(src) {
			return true
		}
	}
	return false
}
