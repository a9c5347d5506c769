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

// Package alphabet defines the ordered symbol set OMEN trains and
// enumerates over, plus the optional corpus-driven alphabet learner
// (spec.md §4.6).
package alphabet

import "fmt"

// MinLearnedSize is the smallest alphabet size the learner will accept;
// below this OMEN rejects the request as likely user error (spec.md §4.6
// and §7 "Alphabet size < 10").
const MinLearnedSize = 10

// Alphabet is an ordered set of atomic symbols. Membership is decided by
// exact string equality (spec.md §3); each entry is treated as opaque,
// never split into runes.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// New builds an Alphabet from an ordered list of symbols. Duplicate
// symbols are dropped, keeping the first occurrence, so the resulting
// index assignment is stable.
func New(symbols []string) *Alphabet {
	a := &Alphabet{
		symbols: make([]string, 0, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}

	for _, s := range symbols {
		if _, exists := a.index[s]; exists {
			continue
		}

		a.index[s] = len(a.symbols)
		a.symbols = append(a.symbols, s)
	}

	return a
}

// FromString builds an Alphabet by splitting a string into one symbol per
// byte. This is the representation used for the default printable-ASCII
// alphabet (spec.md §6 "-a/--alphabet").
func FromString(s string) *Alphabet {
	symbols := make([]string, 0, len(s))

	for i := 0; i < len(s); i++ {
		symbols = append(symbols, string(s[i]))
	}

	return New(symbols)
}

// Len returns the alphabet size A.
func (this *Alphabet) Len() int {
	return len(this.symbols)
}

// Symbols returns the ordered symbol slice. Callers must not mutate it.
func (this *Alphabet) Symbols() []string {
	return this.symbols
}

// Contains reports whether s is a member of the alphabet.
func (this *Alphabet) Contains(s string) bool {
	_, exists := this.index[s]
	return exists
}

// IndexOf returns the position of s in the alphabet, or -1 if absent.
func (this *Alphabet) IndexOf(s string) int {
	if idx, exists := this.index[s]; exists {
		return idx
	}

	return -1
}

// Admissible reports whether every symbol of s (split one byte at a time,
// per spec.md §1 "treating each alphabet entry as an opaque atomic
// symbol") is a member of the alphabet.
func (this *Alphabet) Admissible(s string) bool {
	for i := 0; i < len(s); i++ {
		if !this.Contains(string(s[i])) {
			return false
		}
	}

	return true
}

// Split breaks s into its constituent alphabet symbols. It assumes s is
// Admissible; behaviour is undefined otherwise.
func (this *Alphabet) Split(s string) []string {
	out := make([]string, len(s))

	for i := 0; i < len(s); i++ {
		out[i] = string(s[i])
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (this *Alphabet) String() string {
	return fmt.Sprintf("Alphabet{%d symbols}", len(this.symbols))
}
