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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWriterWritesNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.cc")

	var w FileWriter
	changed, err := w.WriteIfChanged(path, []byte("hello\n"))
	if err != nil {
		t.Fatalf("WriteIfChanged() error = %v", err)
	}
	if !changed {
		t.Errorf("WriteIfChanged() changed = false, want true for a new file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "hello\n" {
		t.Errorf("file contents = %q, want %q", got, "hello\n")
	}
}

// TestFileWriterLeavesIdenticalContentUntouched covers the change-detection
// property from §8: rewriting identical content must not disturb the file's
// mtime.
func TestFileWriterLeavesIdenticalContentUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cc")

	var w FileWriter
	if _, err := w.WriteIfChanged(path, []byte("same\n")); err != nil {
		t.Fatalf("first WriteIfChanged() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	before := info.ModTime()

	// Force the clock forward far enough that a real rewrite would be
	// detectable even on filesystems with coarse mtime resolution.
	time.Sleep(10 * time.Millisecond)

	changed, err := w.WriteIfChanged(path, []byte("same\n"))
	if err != nil {
		t.Fatalf("second WriteIfChanged() error = %v", err)
	}
	if changed {
		t.Errorf("WriteIfChanged() changed = true, want false for identical content")
	}

	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime().Equal(before) {
		t.Errorf("mtime changed from %v to %v after rewriting identical content", before, info.ModTime())
	}
}

func TestFileWriterRewritesChangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cc")

	var w FileWriter
	if _, err := w.WriteIfChanged(path, []byte("v1\n")); err != nil {
		t.Fatalf("first WriteIfChanged() error = %v", err)
	}
	changed, err := w.WriteIfChanged(path, []byte("v2\n"))
	if err != nil {
		t.Fatalf("second WriteIfChanged() error = %v", err)
	}
	if !changed {
		t.Errorf("WriteIfChanged() changed = false, want true for different content")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "v2\n" {
		t.Errorf("file contents = %q, want %q", got, "v2\n")
	}
}

func TestFileWriterToleratesConcurrentDirCreation(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "gen", "foo")
	if err := os.MkdirAll(sub, 0o777); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	var w FileWriter
	if _, err := w.WriteIfChanged(filepath.Join(sub, "out.cc"), []byte("x\n")); err != nil {
		t.Fatalf("WriteIfChanged() into pre-existing dir error = %v", err)
	}
}
