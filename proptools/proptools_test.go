// Copyright 2020 Google Inc. All rights reserved.
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

package proptools

import "testing"

func TestBoolNilIsFalse(t *testing.T) {
	if Bool(nil) != false {
		t.Errorf("Bool(nil) = true, want false")
	}
}

func TestBoolFollowsPointer(t *testing.T) {
	tr, fa := true, false
	if !Bool(&tr) {
		t.Errorf("Bool(&true) = false, want true")
	}
	if Bool(&fa) {
		t.Errorf("Bool(&false) = true, want false")
	}
}

func TestBoolDefault(t *testing.T) {
	tr := true
	if got := BoolDefault(&tr, false); got != true {
		t.Errorf("BoolDefault(&true, false) = %v, want true", got)
	}
	if got := BoolDefault(nil, true); got != true {
		t.Errorf("BoolDefault(nil, true) = %v, want true", got)
	}
	if got := BoolDefault(nil, false); got != false {
		t.Errorf("BoolDefault(nil, false) = %v, want false", got)
	}
}
