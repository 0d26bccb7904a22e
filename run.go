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
	"sync"
	"text/scanner"
)

// schedulerSink is the process-wide diagnostic sink the emitter falls back
// to when no per-call Diagnostics is supplied, matching the specification's
// description of the "legacy convenience" global (GN's g_scheduler). It
// provides atomic append semantics since the enclosing generator may invoke
// this package concurrently for distinct targets.
type schedulerSink struct {
	mu     sync.Mutex
	errors []error
}

func (s *schedulerSink) Report(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, err)
	log.Printf("jumbo: %s", err)
}

// Errors returns a snapshot of every error reported to this sink so far.
func (s *schedulerSink) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]error, len(s.errors))
	copy(out, s.errors)
	return out
}

// globalDiagnostics is the default Diagnostics used by AggregateEmitter.Emit
// when its Diags field is left nil. Prefer passing an explicit Diagnostics
// to RunForTarget or AggregateEmitter directly; this exists only for parity
// with the legacy global convenience described in the specification's
// design notes, not as the recommended integration point.
var globalDiagnostics = &schedulerSink{}

// GlobalDiagnostics returns the process-wide default Diagnostics sink.
func GlobalDiagnostics() Diagnostics { return globalDiagnostics }

// RunForTarget runs ingestion, planning, and emission for a single target,
// in that order, against the supplied collaborators. It is the single
// combined entry point mentioned in the specification's external-interfaces
// section; callers that want finer control can instead construct and drive
// ConfigurationIngestor, AggregatePlanner, and AggregateEmitter directly.
func RunForTarget(target *Target, scope ValueScope, resolver PathResolver, outputter PathOutputter, writer Writer, diags Diagnostics) *Error {
	ingestor := &ConfigurationIngestor{Target: target, Scope: scope, Resolver: resolver}
	if err := ingestor.Ingest(); err != nil {
		return err
	}

	if !target.JumboAllowed {
		return nil
	}

	planner := &AggregatePlanner{Target: target, Resolver: resolver}
	if err := planner.Plan(); err != nil {
		return newError(IOFailure, scanner.Position{}, "planning %s: %s", target.Name, err)
	}

	emitter := &AggregateEmitter{Target: target, Outputter: outputter, Writer: writer, Diags: diags}
	emitter.Emit()

	return nil
}
