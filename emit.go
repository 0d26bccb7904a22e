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
	"bytes"
	"log"
	"os"
	"path/filepath"
	"text/scanner"
)

// jumboFileHeader names the generator in the boilerplate comment emitted at
// the top of every aggregate; analogous to GN's "Generated with 'gn gen'
// command." banner.
const jumboFileHeader = "/* This is a Jumbo file. Don't edit. Generated with 'jumbogen plan' command. */\n\n"

// AggregateEmitter materializes a target's planned Aggregates as text files
// on disk, through a change-detecting Writer.
type AggregateEmitter struct {
	Target *Target

	Outputter PathOutputter
	Writer    Writer
	Diags     Diagnostics

	Logger *log.Logger
}

func (e *AggregateEmitter) outputter() PathOutputter {
	if e.Outputter != nil {
		return e.Outputter
	}
	return RelativePathOutputter{}
}

func (e *AggregateEmitter) writer() Writer {
	if e.Writer != nil {
		return e.Writer
	}
	return FileWriter{}
}

func (e *AggregateEmitter) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// Emit writes every planned aggregate to disk. On the first write failure
// it reports the error to Diags (if set) and stops; aggregates written
// before the failure remain on disk, matching the specification's
// persistence contract.
//
// All of a target's aggregates share one generated directory, so the
// directory is created once up front from the first aggregate's output
// path, rather than once per aggregate — matching JumboWriter::Run, which
// calls CreateDirectory a single time using jumbo_files()[0]'s directory
// before writing any aggregate.
func (e *AggregateEmitter) Emit() {
	if len(e.Target.JumboFiles) == 0 {
		return
	}

	dir := filepath.Dir(e.Target.JumboFiles[0].Output.Path())
	if err := os.MkdirAll(dir, 0o777); err != nil {
		diagErr := newError(IOFailure, scanner.Position{}, "creating %s: %s", dir, err)
		e.report(diagErr)
		return
	}

	for _, agg := range e.Target.JumboFiles {
		if err := e.writeAggregate(agg); err != nil {
			diagErr := newError(IOFailure, scanner.Position{}, "writing %s: %s", agg.Output.Path(), err)
			e.report(diagErr)
			return
		}
	}
}

func (e *AggregateEmitter) report(err *Error) {
	if e.Diags != nil {
		e.Diags.Report(err)
	} else {
		globalDiagnostics.Report(err)
	}
}

func (e *AggregateEmitter) writeAggregate(agg Aggregate) error {
	content := e.render(agg)

	changed, err := e.writer().WriteIfChanged(agg.Output.Path(), content)
	if err != nil {
		return err
	}

	if changed {
		e.logger().Printf("jumbo: wrote %s (%d includes, %d bytes)", agg.Output.Path(), len(agg.Included), len(content))
	} else {
		e.logger().Printf("jumbo: %s unchanged (%d includes)", agg.Output.Path(), len(agg.Included))
	}
	return nil
}

func (e *AggregateEmitter) render(agg Aggregate) []byte {
	var buf bytes.Buffer
	buf.WriteString(jumboFileHeader)
	for _, src := range agg.Included {
		buf.WriteString("#include \"")
		buf.WriteString(e.outputter().Rewrite(agg.Output, src))
		buf.WriteString("\"\n")
	}
	return buf.Bytes()
}
