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

import "path/filepath"

// PathOutputter formats a SourceFile as the string that should appear
// inside an #include directive, relative to a base directory. It mirrors
// GN's PathOutput with ESCAPE_NONE: no shell or path escaping.
type PathOutputter interface {
	Rewrite(base SourceFile, src SourceFile) string
}

// RelativePathOutputter rewrites paths as a filepath.Rel-style relative
// path from base's directory to src, always using forward slashes so the
// emitted #include directives are portable regardless of host OS.
type RelativePathOutputter struct{}

func (RelativePathOutputter) Rewrite(base SourceFile, src SourceFile) string {
	baseDir := filepath.Dir(base.Path())
	rel, err := filepath.Rel(baseDir, src.Path())
	if err != nil {
		// base and src are on different volumes or otherwise incomparable;
		// fall back to the absolute/declared path rather than fail, since
		// this is purely cosmetic include-path formatting.
		rel = src.Path()
	}
	return filepath.ToSlash(rel)
}
