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

// Package enumerator is the top-level OMEN driver (spec.md §4.4): it
// decomposes a target total level T into (LN, IP, CP-sum) triples in the
// stable nested order spec.md §4.4 mandates, drives a walker.GuessStructure
// across each feasible triple, and owns the auto-increment-T outer loop.
package enumerator

import (
	"github.com/lakiw/go-omen/model"
	"github.com/lakiw/go-omen/walker"
)

// levelCursor walks a LevelTable's non-empty buckets from lowest to
// highest level, and within a bucket from index 0 upward — the iteration
// order spec.md §4.4's decomposition loop needs for both the LN and IP
// axes.
type levelCursor struct {
	lt    *model.LevelTable
	level int
	index int
}

func newLevelCursor(lt *model.LevelTable) *levelCursor {
	c := &levelCursor{lt: lt}
	c.reset()
	return c
}

// reset repositions the cursor at the first (lowest-level) entry.
// Returns false if the table has no non-empty bucket at all.
func (this *levelCursor) reset() bool {
	level, ok := this.lt.FirstNonEmpty()

	if !ok {
		return false
	}

	this.level = level
	this.index = 0

	return true
}

// advance moves to the next entry after the current one, rolling over to
// the next non-empty level when the current bucket is exhausted. Returns
// false once every entry has been visited.
func (this *levelCursor) advance() bool {
	if this.index+1 < this.lt.Size(this.level) {
		this.index++
		return true
	}

	level, ok := this.lt.NextNonEmpty(this.level, this.lt.MaxLevel())

	if !ok {
		return false
	}

	this.level = level
	this.index = 0

	return true
}

func (this *levelCursor) value() string {
	v, _ := this.lt.At(this.level, this.index)
	return v
}

// Enumerator is the public driver type: construct one per loaded Model,
// then call NextGuess repeatedly.
type Enumerator struct {
	m     *model.Model
	opt   *walker.Optimizer
	ipLen int

	t    int
	auto bool
	maxT int

	lnCursor    *levelCursor
	ipCursor    *levelCursor
	comboReady  bool
	gs          *walker.GuessStructure
	gsPrefix    string
	gsK         int
	gsTarget    int
	initialized bool
}

// New constructs an Enumerator over m, starting T at LN_min + IP_min and
// with auto_increment_T set (spec.md §4.4 "T starts at LN_min + IP_min").
// The model must satisfy the loader's non-empty-IP/LN invariant; New
// panics if it does not. model.Load enforces that invariant; model.Build
// does not check it.
func New(m *model.Model) *Enumerator {
	if _, ok := m.IP.FirstNonEmpty(); !ok {
		panic("enumerator: model has an empty IP table")
	}

	if _, ok := m.LN.FirstNonEmpty(); !ok {
		panic("enumerator: model has an empty LN table")
	}

	lnCursor := newLevelCursor(m.LN)
	ipCursor := newLevelCursor(m.IP)

	e := &Enumerator{
		m:          m,
		opt:        walker.NewOptimizer(m.CP, walker.DefaultCacheDepth),
		ipLen:      m.IPLen(),
		auto:       true,
		lnCursor:   lnCursor,
		ipCursor:   ipCursor,
		comboReady: true,
	}

	e.t = e.lnCursor.level + e.ipCursor.level
	e.maxT = maxFeasibleT(m)
	e.initialized = true

	return e
}

// maxFeasibleT bounds the highest T any guess can ever be emitted at: the
// model is finite (bounded alphabet, bounded length), so the outer
// auto_increment_T loop must eventually stop instead of spinning forever
// once every combination has been exhausted. IP_max + LN_max bounds the
// prefix/length contribution; maxK (the most CP applications any LN entry
// can demand) times the shared CP max level bounds every CP-walk's
// contribution. The result may over-count (not every (level,k) pair is
// actually reachable), but it never under-counts, so no feasible guess is
// ever cut off early.
func maxFeasibleT(m *model.Model) int {
	maxK := 0

	for lvl := 0; lvl <= m.LN.MaxLevel(); lvl++ {
		for _, entry := range m.LN.Bucket(lvl) {
			if k := model.LNValue(entry); k > maxK {
				maxK = k
			}
		}
	}

	return m.IP.MaxLevel() + m.LN.MaxLevel() + maxK*m.MaxLevel()
}

// SetAutoIncrement toggles auto_increment_T (spec.md §4.4).
func (this *Enumerator) SetAutoIncrement(auto bool) {
	this.auto = auto
}

// AutoIncrement reports the current auto_increment_T flag.
func (this *Enumerator) AutoIncrement() bool {
	return this.auto
}

// T returns the current target total level.
func (this *Enumerator) T() int {
	return this.t
}

// nextCombo advances (lnCursor, ipCursor) to the next pair in
// LN-outer/IP-inner nested order (spec.md §4.4's loop nesting). Returns
// false once every pair has been visited since the last reset.
func (this *Enumerator) nextCombo() bool {
	if this.ipCursor.advance() {
		return true
	}

	if this.lnCursor.advance() {
		this.ipCursor.reset()
		return true
	}

	return false
}

// NextGuess produces the next guess and the T it was emitted at (spec.md
// §4.4 "next_guess() -> (string, T) | none"). It returns ("", 0, false)
// when the model is exhausted at the current T and either
// auto_increment_T is false or T has reached the bound computed by
// maxFeasibleT.
func (this *Enumerator) NextGuess() (string, int, bool) {
	for {
		if this.gs != nil {
			if s, ok := this.gs.Next(); ok {
				return s, this.t, true
			}

			this.gs = nil
		}

		if this.comboReady {
			this.comboReady = false
			s := this.t - this.lnCursor.level - this.ipCursor.level

			if s >= 0 {
				p := this.ipCursor.value()
				k := model.LNValue(this.lnCursor.value())
				this.gsPrefix = p
				this.gsK = k
				this.gsTarget = s
				this.gs = walker.New(this.opt, p, k, s)
			}

			continue
		}

		if this.nextCombo() {
			this.comboReady = true
			continue
		}

		if !this.auto || this.t >= this.maxT {
			return "", 0, false
		}

		this.t++
		this.lnCursor.reset()
		this.ipCursor.reset()
		this.comboReady = true
	}
}
