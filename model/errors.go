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

import "github.com/lakiw/go-omen"

const (
	errOpenConfig  = omen.ERR_READ_MODEL
	errBadVersion  = omen.ERR_MODEL_VERSION
	errBadLevel    = omen.ERR_MODEL_LEVEL
	errEmptyTable  = omen.ERR_MODEL_EMPTY
	errWriteFailed = omen.ERR_WRITE_FAILED
)

// RuleError is returned by every loader/saver failure path spec.md §7
// lists for the model, carrying the offending error code alongside a
// human-readable message (mirroring the reference codebase's IOError).
type RuleError struct {
	code int
	msg  string
}

func (this *RuleError) Error() string {
	return this.msg
}

// Code returns the ERR_* constant associated with this failure.
func (this *RuleError) Code() int {
	return this.code
}
