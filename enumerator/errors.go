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

package enumerator

import "github.com/lakiw/go-omen"

const (
	errOpenSession     = omen.ERR_READ_MODEL
	errSessionMismatch = omen.ERR_SESSION_MISMATCH
	errWriteFailed     = omen.ERR_WRITE_FAILED
)
