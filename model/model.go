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
	"strconv"

	"github.com/lakiw/go-omen/alphabet"
)

// Model is the immutable, read-only view of a trained ruleset: the four
// discretised tables plus the config metadata (spec.md §3 "Model").
// Once returned by Load or Build, a Model is never mutated; the
// enumerator only mutates its own walker state (spec.md §3 "Lifecycle").
type Model struct {
	Config   *Config
	Alphabet *alphabet.Alphabet
	IP       *LevelTable
	EP       EPTable
	CP       CPTable
	LN       *LevelTable
}

// NGram returns n.
func (this *Model) NGram() int {
	return this.Config.NGram
}

// MaxLevel returns L_max.
func (this *Model) MaxLevel() int {
	return this.Config.MaxLevel
}

// IPLen returns n-1, the fixed length of every IP/EP/CP-context string.
func (this *Model) IPLen() int {
	return this.Config.NGram - 1
}

// CPBucket returns the next-symbol bucket for context at level. Contexts
// absent from CP (never observed during training) contribute no
// continuations at any level, per spec.md §3 "A missing (c, level) pair
// means 'no next symbol with that level from c'".
func (this *Model) CPBucket(context string, level int) []string {
	lt, exists := this.CP[context]

	if !exists {
		return nil
	}

	return lt.Bucket(level)
}

// CPContext returns the LevelTable for context, or nil if context was never
// observed.
func (this *Model) CPContext(context string) *LevelTable {
	return this.CP[context]
}

// LNValue decodes the string stored in an LN bucket entry back to its
// integer k value (CP-application count).
func LNValue(entry string) int {
	k, _ := strconv.Atoi(entry)
	return k
}

// Length returns the guess length (in symbols) corresponding to a LN
// entry: n-1+k.
func (this *Model) Length(k int) int {
	return this.IPLen() + k
}

// Build assembles a Model from a trained Counter, an alphabet, n-gram
// order and L_max. cfg is used as given: Build does not assign a UUID;
// Save does that when cfg.UUID is empty.
func Build(a *alphabet.Alphabet, ngram, maxLevel int, counter *Counter, cfg *Config) *Model {
	ip, ep, cp, ln := counter.Build(maxLevel)

	return &Model{
		Config:   cfg,
		Alphabet: a,
		IP:       ip,
		EP:       ep,
		CP:       cp,
		LN:       ln,
	}
}
