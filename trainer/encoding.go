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

// Package trainer is the corpus-ingesting side of OMEN (spec.md §4.1):
// admissibility filtering, raw-count accumulation via model.Counter, and
// discretisation/save of the resulting model.
package trainer

import "unicode/utf8"

// EncodingDetector is the collaborator spec.md §1 explicitly excludes
// from this core's scope ("file-encoding autodetection of the training
// corpus"): Trainer calls it only when the caller did not name an
// encoding explicitly (spec.md §6 "-e/--encoding... if omitted, the
// trainer invokes the autodetect collaborator and takes its first
// suggestion").
type EncodingDetector interface {
	// Detect returns its best-guess encoding name for sample, a leading
	// chunk of the corpus file.
	Detect(sample []byte) string
}

// DefaultEncodingDetector is the minimal built-in EncodingDetector: it
// distinguishes UTF-8 (including a byte-order mark) from Latin-1 by
// byte-validity scanning only, with no statistical language modelling.
// That is enough to satisfy spec.md §6's "take its first suggestion"
// contract without overreaching into the autodetection scope spec.md §1
// withholds.
type DefaultEncodingDetector struct{}

const utf8BOM = "\xef\xbb\xbf"

// Detect implements EncodingDetector.
func (DefaultEncodingDetector) Detect(sample []byte) string {
	if len(sample) >= 3 && string(sample[:3]) == utf8BOM {
		return "utf-8"
	}

	if utf8.Valid(sample) {
		return "utf-8"
	}

	return "latin-1"
}
