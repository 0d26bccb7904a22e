// Copyright 2016 Google Inc. All rights reserved.
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

// Package pathtools provides small filesystem- and path-string helpers
// shared by this package's path resolution. It is trimmed to the surface
// DefaultPathResolver actually exercises (Exists, PrefixPaths); the
// original's glob expansion and mock filesystem support a declarative
// build-description loader this core does not own.
package pathtools

import (
	"os"
)

// FileSystem abstracts the filesystem backing for existence checks, so a
// caller (or test) can substitute a fake without touching the real disk.
type FileSystem interface {
	Exists(name string) (bool, bool, error)
}

// OsFs is the FileSystem backed by the local disk.
var OsFs FileSystem = osFs{}

// osFs implements FileSystem using the local disk.
type osFs struct{}

func (osFs) Exists(name string) (bool, bool, error) {
	stat, err := os.Stat(name)
	if err == nil {
		return true, stat.IsDir(), nil
	} else if os.IsNotExist(err) {
		return false, false, nil
	} else {
		return false, false, err
	}
}
