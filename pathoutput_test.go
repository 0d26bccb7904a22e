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

import "testing"

// TestRelativePathOutputterRewrite covers scenario E: an aggregate four
// directories under the repo root including sources back at the root
// rewrites them as a four-level-deep "../../../../" relative include path.
func TestRelativePathOutputterRewrite(t *testing.T) {
	output := NewSourceFile("out/Debug/gen/foo/bar_jumbo_cc_0.cc")

	testCases := []struct {
		src  string
		want string
	}{
		{"foo/a.cc", "../../../../foo/a.cc"},
		{"foo/subdir/b.cc", "../../../../foo/subdir/b.cc"},
	}

	var out RelativePathOutputter
	for _, tc := range testCases {
		if got := out.Rewrite(output, NewSourceFile(tc.src)); got != tc.want {
			t.Errorf("Rewrite(%q, %q) = %q, want %q", output.Path(), tc.src, got, tc.want)
		}
	}
}

func TestRelativePathOutputterUsesForwardSlashes(t *testing.T) {
	output := NewSourceFile("gen/bar_jumbo_cc_0.cc")
	var out RelativePathOutputter
	got := out.Rewrite(output, NewSourceFile("gen/a.cc"))
	if got != "a.cc" {
		t.Errorf("Rewrite() = %q, want %q", got, "a.cc")
	}
}
