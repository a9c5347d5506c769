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

import "strconv"

// smoothingFloor is the lowest smoothed count any key this implementation
// discretises can have: a single raw observation (spec.md §4.1's
// "additive one-count") plus the virtual +1 applied to every key that
// appears at all. Keys that never appear in the corpus are never
// materialised in the first place (see the Open Question note in
// DESIGN.md), so 2 — not 1 — is the real achievable floor.
const smoothingFloor = 2

// Build discretises the counts accumulated by this Counter into the four
// OMEN tables, applying spec.md §4.1's additive smoothing and the level()
// mapping from discretize.go. maxLevel is L_max.
func (this *Counter) Build(maxLevel int) (ip *LevelTable, ep EPTable, cp CPTable, ln *LevelTable) {
	ip = buildLevelTable(this.ipOrder, this.ipCounts, maxLevel)

	ep = make(EPTable, len(this.epCounts))
	epTotal := 0

	for _, k := range this.epOrder {
		epTotal += this.epCounts[k] + 1
	}

	for _, k := range this.epOrder {
		ep[k] = level(this.epCounts[k]+1, epTotal, smoothingFloor, maxLevel)
	}

	cp = make(CPTable, len(this.cpCounts))

	for _, ctx := range this.cpOrder {
		cc := this.cpCounts[ctx]
		total := cc.total + len(cc.order)
		lt := NewLevelTable(maxLevel)

		for _, sym := range cc.order {
			lvl := level(cc.next[sym]+1, total, smoothingFloor, maxLevel)
			lt.Add(lvl, sym)
		}

		cp[ctx] = lt
	}

	ln = buildLNTable(this.lnCounts, this.ngram, this.maxLength, maxLevel)

	return ip, ep, cp, ln
}

// buildLevelTable builds the IP table: discretise raw per-key counts (+1
// smoothing each) against their shared total, bucketed in first-seen
// order. EP uses the same formula but is built inline in Build, as a
// plain key-to-level map.
func buildLevelTable(order []string, counts map[string]int, maxLevel int) *LevelTable {
	total := 0

	for _, k := range order {
		total += counts[k] + 1
	}

	lt := NewLevelTable(maxLevel)

	for _, k := range order {
		lvl := level(counts[k]+1, total, smoothingFloor, maxLevel)
		lt.Add(lvl, k)
	}

	return lt
}

// buildLNTable discretises the length table. Unlike IP/EP/CP, the LN key
// space (k = length - (n-1), for length in [n-1, maxLength]) is always
// small (at most maxLength entries), so spec.md §4.1's additive smoothing
// is applied over the *entire* key space exactly as specified, not just
// observed lengths: every k in [0, maxLength-(n-1)] gets a virtual +1,
// guaranteeing every representable length is enumerable even if no
// training candidate had that exact length.
func buildLNTable(counts map[int]int, ngram, maxLength, maxLevel int) *LevelTable {
	minLen := ngram - 1
	maxK := maxLength - minLen

	if maxK < 0 {
		maxK = 0
	}

	total := 0

	for k := 0; k <= maxK; k++ {
		total += counts[minLen+k] + 1
	}

	lt := NewLevelTable(maxLevel)

	for k := 0; k <= maxK; k++ {
		lvl := level(counts[minLen+k]+1, total, smoothingFloor, maxLevel)
		lt.Add(lvl, strconv.Itoa(k))
	}

	return lt
}
