/*
Copyright 2024 The OMEN-Go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to a temp file in the same directory as
// path, then renames it into place. Rename is atomic on POSIX
// filesystems, so a reader never observes a partially written file
// (spec.md §5 "Session files are rewritten atomically", which this
// repository applies to every on-disk artifact, not just sessions).
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &RuleError{code: errWriteFailed, msg: "cannot create directory " + dir + ": " + err.Error()}
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")

	if err != nil {
		return &RuleError{code: errWriteFailed, msg: "cannot create temp file in " + dir + ": " + err.Error()}
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &RuleError{code: errWriteFailed, msg: "cannot write " + tmpName + ": " + err.Error()}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &RuleError{code: errWriteFailed, msg: "cannot close " + tmpName + ": " + err.Error()}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &RuleError{code: errWriteFailed, msg: "cannot rename " + tmpName + " to " + path + ": " + err.Error()}
	}

	return nil
}
