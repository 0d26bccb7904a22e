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

// Package jumbo implements the jumbo source aggregation core of a
// build-graph generator.
//
// The surrounding generator ingests a declarative build description and
// produces per-target metadata; this package is invoked once per target
// during that phase to reduce compiler invocations by concatenating many
// translation units into fewer generated "jumbo" files. Each jumbo file is a
// generated source file whose contents are a sequence of #include
// directives pulling in the underlying source files, so the downstream
// compiler compiles one aggregate instead of many small files.
//
// Three steps run in order for a given target:
//
//   - ConfigurationIngestor reads jumbo_allowed, jumbo_excluded_sources, and
//     jumbo_file_merge_limit from a ValueScope and validates them against the
//     target's source list.
//   - AggregatePlanner partitions the target's eligible sources into an
//     ordered list of Aggregates.
//   - AggregateEmitter writes each Aggregate's generated content to disk
//     through a change-detecting Writer.
//
// This package does not parse the declarative build language, does not
// compile anything, and does not decide whether jumbo mode is enabled
// globally; those remain the responsibility of the enclosing generator,
// reached only through the collaborator interfaces declared alongside each
// step.
package jumbo
