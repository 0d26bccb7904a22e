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

	"github.com/jumbogen/jumbogen/pathtools"
)

// PathResolver resolves user-facing relative paths into canonical
// SourceFiles, mirroring GN's SourceDir::ResolveRelativeFile and
// GetBuildDirForTargetAsSourceDir.
type PathResolver interface {
	// ResolveSource resolves raw relative to declDir into a SourceFile.
	ResolveSource(declDir, raw string) (SourceFile, error)
	// ResolveGenerated resolves filename relative to a target's generated
	// directory into a SourceFile.
	ResolveGenerated(genDir, filename string) (SourceFile, error)
}

// DefaultPathResolver resolves paths against the local filesystem using
// plain lexical joining; it does not require the referenced files to exist
// (a jumbo file's own output path, for instance, is resolved before it is
// written).
type DefaultPathResolver struct {
	// FS is consulted only by Exists; path resolution never touches it.
	// A nil FS makes Exists use pathtools.OsFs.
	FS pathtools.FileSystem
}

func (r DefaultPathResolver) ResolveSource(declDir, raw string) (SourceFile, error) {
	if declDir == "" || filepath.IsAbs(raw) {
		return NewSourceFile(raw), nil
	}
	return NewSourceFile(pathtools.PrefixPaths([]string{raw}, declDir)[0]), nil
}

func (r DefaultPathResolver) ResolveGenerated(genDir, filename string) (SourceFile, error) {
	return NewSourceFile(filepath.Join(genDir, filename)), nil
}

// Exists reports whether src is present on the filesystem backing r. It is
// for callers that want to warn about declared sources that don't exist on
// disk without making that a hard ingestion error, since this core does not
// otherwise stat input files.
func (r DefaultPathResolver) Exists(src SourceFile) (bool, error) {
	backing := r.FS
	if backing == nil {
		backing = pathtools.OsFs
	}
	exists, _, err := backing.Exists(src.Path())
	return exists, err
}
