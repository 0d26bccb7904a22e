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

// Command jumbogen plans and emits jumbo aggregate files for one or more
// targets described by a small JSON document, without depending on any
// particular build-description language or build-graph generator.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jumbogen/jumbogen"
	"github.com/jumbogen/jumbogen/declscope"
)

var version = "0.1.0-dev"

func main() {
	var dryRun bool
	var verbose bool
	var root string
	var out string

	rootCmd := &cobra.Command{
		Use:   "jumbogen",
		Short: "Plan and emit jumbo source aggregates for build targets",
		Long: `jumbogen reads one or more target declarations and, for each target
that opts into jumbo_allowed, emits the jumbo_*.{c,cc,mm} aggregate files a
build system can compile instead of the original sources, folding multiple
translation units into fewer, larger ones to cut compile overhead.`,
	}
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "plan aggregates without writing any files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report unused properties and print the planned aggregates as JSON")
	rootCmd.PersistentFlags().StringVar(&root, "root", "", "declaration root to resolve sources against, overriding each target.json's decl_dir")
	rootCmd.PersistentFlags().StringVar(&out, "out", "", "build output root that each target.json's generated_dir is resolved under")

	planCmd := &cobra.Command{
		Use:   "plan <target.json>...",
		Short: "Plan (and by default emit) jumbo aggregates for the given target declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args, root, out, dryRun, verbose)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jumbogen %s\n", version)
		},
	}

	rootCmd.AddCommand(planCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlan(paths []string, root, out string, dryRun bool, verbose bool) error {
	resolver := jumbo.DefaultPathResolver{}
	outputter := jumbo.RelativePathOutputter{}
	diags := jumbo.GlobalDiagnostics()

	failed := 0
	for _, path := range paths {
		if err := planOne(path, root, out, resolver, outputter, diags, dryRun, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "jumbogen: %s: %s\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(paths))
	}
	return nil
}

func planOne(path string, root, out string, resolver jumbo.PathResolver, outputter jumbo.PathOutputter, diags jumbo.Diagnostics, dryRun bool, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	target, rawSources, scope, err := declscope.FromJSON(data)
	if err != nil {
		return err
	}

	// --root replaces the JSON document's decl_dir, and --out is prefixed to
	// its generated_dir, so a caller driving many target.json files from one
	// build invocation doesn't have to repeat the same roots in every file.
	if root != "" {
		target.DeclDir = root
	}
	if out != "" {
		target.GeneratedDir = filepath.Join(out, target.GeneratedDir)
	}

	for _, raw := range rawSources {
		src, err := resolver.ResolveSource(target.DeclDir, raw)
		if err != nil {
			return err
		}
		target.Sources = append(target.Sources, src)
	}

	var writer jumbo.Writer
	if dryRun {
		writer = dryRunWriter{}
	} else {
		writer = jumbo.FileWriter{}
	}

	if jerr := jumbo.RunForTarget(target, scope, resolver, outputter, writer, diags); jerr != nil {
		return jerr
	}

	if unconsumed := scope.Unconsumed(); verbose && len(unconsumed) > 0 {
		fmt.Fprintf(os.Stderr, "jumbogen: %s: unused properties: %v\n", target.Name, unconsumed)
	}

	if verbose || dryRun {
		return printPlan(target)
	}
	return nil
}

func printPlan(target *jumbo.Target) error {
	type aggregateSummary struct {
		Output  string   `json:"output"`
		Sources []string `json:"sources"`
	}
	summaries := make([]aggregateSummary, 0, len(target.JumboFiles))
	for _, agg := range target.JumboFiles {
		sources := make([]string, 0, len(agg.Included))
		for _, src := range agg.Included {
			sources = append(sources, src.Path())
		}
		summaries = append(summaries, aggregateSummary{Output: agg.Output.Path(), Sources: sources})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"target":     target.Name,
		"aggregates": summaries,
	})
}

// dryRunWriter reports every write as a change without touching disk, so
// --dry-run can still print what would have been written.
type dryRunWriter struct{}

func (dryRunWriter) WriteIfChanged(path string, content []byte) (bool, error) {
	return true, nil
}
