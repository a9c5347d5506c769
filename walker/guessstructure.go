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

package walker

import "strings"

// slot is one position of the parse tree spec.md §4.3 describes: the
// context it was resolved from, the level/index chosen within that
// context's bucket, and the symbol that (level, index) names.
type slot struct {
	context string
	level   int
	index   int
	symbol  string
}

// GuessStructure is the inner walker of spec.md §4.3: fixed IP prefix p,
// fixed CP-application count k, target CP-sum S. Repeated Next() calls
// produce, in a deterministic order, every p·x1x2...xk whose CP levels
// sum to exactly S.
type GuessStructure struct {
	opt       *Optimizer
	prefix    string
	k         int
	target    int
	slots     []slot
	started   bool
	exhausted bool
}

// New builds a GuessStructure. prefix must have length n-1; opt must not
// be nil (callers construct one Optimizer per model and share it across
// every GuessStructure instantiated against that model).
func New(opt *Optimizer, prefix string, k, target int) *GuessStructure {
	return &GuessStructure{
		opt:    opt,
		prefix: prefix,
		k:      k,
		target: target,
		slots:  make([]slot, k),
	}
}

// Next produces the next guess and reports whether one was produced; it
// returns ("", false) once the walker is exhausted (spec.md §4.3 "After
// the last satisfying string, next() returns 'none'").
func (this *GuessStructure) Next() (string, bool) {
	if this.exhausted {
		return "", false
	}

	var ok bool

	if !this.started {
		this.started = true
		ok = this.first()
	} else {
		ok = this.advance()
	}

	if !ok {
		this.exhausted = true
		return "", false
	}

	return this.guessString(), true
}

// Exhausted reports whether Next has returned false at least once.
func (this *GuessStructure) Exhausted() bool {
	return this.exhausted
}

func (this *GuessStructure) guessString() string {
	var b strings.Builder
	b.WriteString(this.prefix)

	for _, s := range this.slots {
		b.WriteString(s.symbol)
	}

	return b.String()
}

// first resolves the lowest-(level,index) assignment for every slot,
// spec.md §4.3 "First guess at a slot: lowest l >= 0...".
func (this *GuessStructure) first() bool {
	if this.k == 0 {
		return this.target == 0
	}

	return this.fillFrom(0, this.prefix, this.target, 0, 0)
}

// advance implements spec.md §4.3's rightmost-first odometer: try the
// next (level, index) at the rightmost slot first; if that slot's
// possibilities are exhausted, carry to the slot on its left and retry
// there, refilling every slot to its right from scratch.
func (this *GuessStructure) advance() bool {
	if this.k == 0 {
		return false
	}

	// prefixSums[i] is the total level already spent by slots [0, i);
	// cheaper incremental tracking is possible but k is always small
	// (<= max_length).
	prefixSums := make([]int, this.k+1)

	for i := 0; i < this.k; i++ {
		prefixSums[i+1] = prefixSums[i] + this.slots[i].level
	}

	for i := this.k - 1; i >= 0; i-- {
		s := this.slots[i]
		remaining := this.target - prefixSums[i]

		if this.fillFrom(i, s.context, remaining, s.level, s.index+1) {
			return true
		}
	}

	return false
}

// fillFrom assigns slots[i:] so their levels sum exactly to budget,
// starting the search for slot i's level at minLevel (and, only at that
// exact level, starting its bucket index at minIndex — every other level
// tried starts its bucket at index 0). It recurses left to right,
// performing the depth-first fallback spec.md §4.3's feasibility-pruning
// paragraph calls for: a level/index is only kept once every slot to its
// right has found a feasible completion.
func (this *GuessStructure) fillFrom(i int, ctx string, budget, minLevel, minIndex int) bool {
	if budget < 0 {
		return false
	}

	lt := this.opt.Bucket(ctx, i)

	if lt == nil {
		return false
	}

	last := i == this.k-1

	if last {
		if minLevel > budget {
			return false
		}

		level := budget
		bucket := lt.Bucket(level)
		startIdx := 0

		if level == minLevel {
			startIdx = minIndex
		}

		if startIdx >= len(bucket) {
			return false
		}

		this.slots[i] = slot{context: ctx, level: level, index: startIdx, symbol: bucket[startIdx]}

		return true
	}

	maxLevel := lt.MaxLevel()

	if budget < maxLevel {
		maxLevel = budget
	}

	for level := minLevel; level <= maxLevel; level++ {
		bucket := lt.Bucket(level)
		startIdx := 0

		if level == minLevel {
			startIdx = minIndex
		}

		for idx := startIdx; idx < len(bucket); idx++ {
			sym := bucket[idx]
			nextCtx := ctx[1:] + sym

			if this.fillFrom(i+1, nextCtx, budget-level, 0, 0) {
				this.slots[i] = slot{context: ctx, level: level, index: idx, symbol: sym}
				return true
			}
		}
	}

	return false
}

// State is the (level, index) pair of every slot plus whether the first
// guess has already been emitted — the subset of walker state spec.md
// §4.5 requires a saved session to capture. Contexts and symbols are not
// part of it: Restore recomputes them deterministically from the model,
// since they are a pure function of (prefix, slot levels/indices).
type State struct {
	Started bool
	Levels  []int
	Indices []int
}

// Snapshot captures this walker's resumable state.
func (this *GuessStructure) Snapshot() State {
	st := State{
		Started: this.started,
		Levels:  make([]int, this.k),
		Indices: make([]int, this.k),
	}

	for i, s := range this.slots {
		st.Levels[i] = s.level
		st.Indices[i] = s.index
	}

	return st
}

// Restore replays st against this walker's (opt, prefix, k, target),
// recomputing each slot's context and symbol from its saved (level,
// index). It fails (returning false) if st is inconsistent with the
// current model — e.g. a saved index no longer exists in the
// corresponding bucket, which can only happen if the model changed
// underneath the session (spec.md §7 "Session UUID / version / rule-name
// mismatch" is the primary guard against that; this is a second,
// structural check).
func (this *GuessStructure) Restore(st State) bool {
	if !st.Started {
		this.started = false
		this.exhausted = false
		return true
	}

	if len(st.Levels) != this.k || len(st.Indices) != this.k {
		return false
	}

	ctx := this.prefix

	for i := 0; i < this.k; i++ {
		lt := this.opt.Bucket(ctx, i)

		if lt == nil {
			return false
		}

		level := st.Levels[i]
		idx := st.Indices[i]
		sym, ok := lt.At(level, idx)

		if !ok {
			return false
		}

		this.slots[i] = slot{context: ctx, level: level, index: idx, symbol: sym}
		ctx = ctx[1:] + sym
	}

	this.started = true
	this.exhausted = false

	return true
}
