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

// Package model holds the discretised OMEN tables (IP, EP, CP, LN), their
// training-time construction from raw counts, and their on-disk
// load/save format (spec.md §3, §4.1, §4.2, §6).
package model

// LevelTable is the common shape behind IP, LN, and each CP context's
// bucket set: a dense array of buckets indexed by level 0..LMax, each
// bucket holding its members in stable insertion (tie-break) order
// (spec.md §3 "Bucket order defines tie-breaking", §9 "cache-friendly
// implementation flattens per-context buckets into small packed arrays
// indexed by level").
type LevelTable struct {
	buckets [][]string
}

// NewLevelTable allocates a LevelTable with maxLevel+1 empty buckets.
func NewLevelTable(maxLevel int) *LevelTable {
	return &LevelTable{buckets: make([][]string, maxLevel+1)}
}

// Add appends key to the bucket for level, preserving insertion order.
func (this *LevelTable) Add(level int, key string) {
	this.buckets[level] = append(this.buckets[level], key)
}

// Bucket returns the ordered members at level. The returned slice must
// not be mutated by the caller.
func (this *LevelTable) Bucket(level int) []string {
	if level < 0 || level >= len(this.buckets) {
		return nil
	}

	return this.buckets[level]
}

// At returns the key at (level, index), and whether it exists.
func (this *LevelTable) At(level, index int) (string, bool) {
	b := this.Bucket(level)

	if index < 0 || index >= len(b) {
		return "", false
	}

	return b[index], true
}

// Size returns the number of entries in the bucket at level.
func (this *LevelTable) Size(level int) int {
	return len(this.Bucket(level))
}

// MaxLevel returns the highest level this table can hold (LMax).
func (this *LevelTable) MaxLevel() int {
	return len(this.buckets) - 1
}

// FirstNonEmpty returns the lowest level with a non-empty bucket, and
// false if every bucket is empty (spec.md §4.2 "IP or LN has no
// non-empty bucket").
func (this *LevelTable) FirstNonEmpty() (int, bool) {
	for level := 0; level < len(this.buckets); level++ {
		if len(this.buckets[level]) > 0 {
			return level, true
		}
	}

	return 0, false
}

// NextNonEmpty returns the lowest level strictly greater than after with
// a non-empty bucket, up to and including limit. Returns false if none
// exists.
func (this *LevelTable) NextNonEmpty(after, limit int) (int, bool) {
	if limit > this.MaxLevel() {
		limit = this.MaxLevel()
	}

	for level := after + 1; level <= limit; level++ {
		if len(this.buckets[level]) > 0 {
			return level, true
		}
	}

	return 0, false
}

// LevelOf performs the linear scan spec.md §4.4 "parse" uses to report a
// key's level: the lowest level whose bucket contains key. Returns false
// if key is not present at any level.
func (this *LevelTable) LevelOf(key string) (int, bool) {
	for level, bucket := range this.buckets {
		for _, k := range bucket {
			if k == key {
				return level, true
			}
		}
	}

	return 0, false
}

// EPTable maps an (n-1)-symbol end-prefix string to its level. It is
// queried by key only, never bucketed (spec.md §3).
type EPTable map[string]int

// CPTable maps an (n-1)-symbol context to its level-bucketed set of next
// symbols (spec.md §3). A missing context means "no observations from
// this context" — enumeration treats it as contributing zero
// continuations.
type CPTable map[string]*LevelTable
