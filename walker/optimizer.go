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

// Package walker implements the inner guess-structure state machine
// (spec.md §4.3): given a fixed IP prefix, a fixed CP-application count
// and a target CP-level-sum, it enumerates every CP-continuation that
// spends exactly that sum, plus the TMTO optimizer that speeds up
// lookups for shallow contexts.
package walker

import "github.com/lakiw/go-omen/model"

// DefaultCacheDepth is D from spec.md §4.3 "Optimizer role (TMTO)": the
// deepest walker slot whose context bucket is served from the
// optimizer's cache rather than a fresh CP lookup.
const DefaultCacheDepth = 4

// Optimizer is the time-memory trade-off cache spec.md §4.3 describes:
// for contexts encountered at shallow slot depths it memoises the
// *LevelTable lookup, trading a little memory for avoiding repeated map
// probing into a potentially large CP table. It never changes which
// guesses are produced, only how fast a bucket is found. A GuessStructure
// does all its CP lookups through its Optimizer, so it must be given a
// non-nil one.
type Optimizer struct {
	cp    model.CPTable
	depth int
	cache map[string]*model.LevelTable
}

// NewOptimizer builds an Optimizer over cp that caches contexts first
// requested at a slot depth <= depth. A negative depth disables caching
// entirely (every lookup goes straight to cp); depth 0 caches slot 0 only.
func NewOptimizer(cp model.CPTable, depth int) *Optimizer {
	return &Optimizer{
		cp:    cp,
		depth: depth,
		cache: make(map[string]*model.LevelTable),
	}
}

// Bucket returns the LevelTable of next-symbols for ctx, using the cache
// when slotDepth is within the optimizer's cached depth.
func (this *Optimizer) Bucket(ctx string, slotDepth int) *model.LevelTable {
	if slotDepth > this.depth {
		return this.cp[ctx]
	}

	if lt, cached := this.cache[ctx]; cached {
		return lt
	}

	lt := this.cp[ctx]
	this.cache[ctx] = lt

	return lt
}
