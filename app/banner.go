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

// Package app holds the two CLI front-ends' shared plumbing: the
// startup banner and the event-to-stderr progress printer, so
// cmd/omentrain and cmd/omenguess present a consistent face (spec.md §6
// external interfaces, expanded with the ambient CLI stack).
package app

import (
	"fmt"
	"io"

	omen "github.com/lakiw/go-omen"
)

// Banner writes the one-line startup header both binaries print before
// doing any work.
func Banner(w io.Writer, toolName string) {
	fmt.Fprintf(w, "%s %s\n", toolName, omen.Version)
}
