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

package declscope

import (
	"encoding/json"
	"fmt"

	"github.com/jumbogen/jumbogen"
	"github.com/jumbogen/jumbogen/proptools"
)

// jsonTarget is the on-disk shape the CLI reads: the subset of a target's
// declared properties this package's ingestion logic cares about. Pointer
// fields distinguish "not declared" from "declared false/zero", the same
// distinction proptools.BoolDefault and friends exist to resolve for
// Blueprint property structs.
type jsonTarget struct {
	Name                 string   `json:"name"`
	DeclDir              string   `json:"decl_dir"`
	GeneratedDir         string   `json:"generated_dir"`
	Sources              []string `json:"sources"`
	JumboAllowed         *bool    `json:"jumbo_allowed"`
	JumboExcludedSources []string `json:"jumbo_excluded_sources"`
	JumboFileMergeLimit  *int64   `json:"jumbo_file_merge_limit"`
}

// FromJSON decodes a single target declaration and returns the Target it
// describes along with a ValueScope exposing its jumbo_* properties. The
// Target's Sources are left empty and the declared sources are returned
// unresolved (raw strings); callers resolve them through a PathResolver and
// fill Target.Sources before ingestion, as cmd/jumbogen does.
func FromJSON(data []byte) (*jumbo.Target, []string, *MapValueScope, error) {
	var jt jsonTarget
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, nil, nil, fmt.Errorf("declscope: %w", err)
	}

	target := jumbo.NewTarget(jt.Name, jt.DeclDir, jt.GeneratedDir)

	values := make(map[string]jumbo.Value)
	if jt.JumboAllowed != nil {
		values["jumbo_allowed"] = BoolVal(proptools.Bool(jt.JumboAllowed))
	}
	if jt.JumboExcludedSources != nil {
		items := make([]jumbo.Value, len(jt.JumboExcludedSources))
		for i, s := range jt.JumboExcludedSources {
			items[i] = Str(s)
		}
		values["jumbo_excluded_sources"] = ListVal(items...)
	}
	if jt.JumboFileMergeLimit != nil {
		values["jumbo_file_merge_limit"] = IntVal(*jt.JumboFileMergeLimit)
	}

	return target, jt.Sources, NewMapValueScope(values), nil
}
