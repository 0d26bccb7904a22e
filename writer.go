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
	"os"
	"path/filepath"
)

// Writer persists generated content to disk, leaving the file untouched
// when its existing bytes already match exactly. Downstream build tools key
// off mtime, so unconditional rewriting would cause spurious recompilation
// of every aggregate; this is a hard correctness requirement, not an
// optimization.
type Writer interface {
	WriteIfChanged(path string, content []byte) (changed bool, err error)
}

// FileWriter is the default Writer, backed by the local filesystem. It
// creates the parent directory if missing and tolerates concurrent creation
// of the same directory (EEXIST is not an error), matching the concurrency
// model's directory-creation contract.
type FileWriter struct{}

func (FileWriter) WriteIfChanged(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	} else if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return false, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return false, err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return false, err
	}

	return true, nil
}
