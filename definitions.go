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

// Package omen defines the top level constants and interfaces shared by
// the OMEN trainer and enumerator.
//
// The actual table, discretisation, walker and persistence code lives in
// the sub-packages (alphabet, model, trainer, walker, enumerator); this
// package only carries the exported error codes and the Event/Listener
// pair used to report progress out of the trainer and enumerator without
// either one depending on the app/CLI layer.
package omen

const (
	ERR_MISSING_PARAM    = 1
	ERR_OPEN_CORPUS      = 2
	ERR_ALPHABET_SIZE    = 3
	ERR_READ_MODEL       = 4
	ERR_MODEL_VERSION    = 5
	ERR_MODEL_LEVEL      = 6
	ERR_MODEL_EMPTY      = 7
	ERR_SESSION_MISMATCH = 8
	ERR_WRITE_FAILED     = 9
	ERR_INVALID_PARAM    = 10
	ERR_UNKNOWN          = 127
)

// Version is the on-disk/program version string written to config.txt and
// compared against a caller-supplied minimum by the model loader, and
// written into every session file for the sanity check in spec.md §4.5.
const Version = "1.0"

// DefaultAlphabet is used when the trainer is not asked to learn an
// alphabet from the corpus (spec.md §6 "-a/--alphabet").
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!.*@-_$#<?"

// DefaultMaxLevel is L_max from spec.md §3.
const DefaultMaxLevel = 10

// DefaultNGram is n from spec.md §3.
const DefaultNGram = 4

// DefaultMaxLength caps admissible training candidates (spec.md §4.1).
const DefaultMaxLength = 20

// DefaultRuleName is the ruleset name used when none is given on the
// command line (spec.md §6).
const DefaultRuleName = "Default"

// DefaultSessionName is the session identifier used when none is given
// on the command line (spec.md §6).
const DefaultSessionName = "default"
