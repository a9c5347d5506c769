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

package alphabet

import (
	"fmt"
	"sort"
)

// Generator learns an alphabet from a training corpus: a single streaming
// pass counts per-symbol frequency, then the top-K symbols (by count,
// ties broken by first-seen order for determinism) are retained
// (spec.md §4.6).
type Generator struct {
	size      int
	counts    map[string]int
	firstSeen map[string]int
	next      int
}

// NewGenerator creates a Generator targeting the given alphabet size. size
// must be >= MinLearnedSize; callers are expected to have already applied
// the spec.md §7 "Alphabet size < 10" CLI-level rejection.
func NewGenerator(size int) (*Generator, error) {
	if size < MinLearnedSize {
		return nil, fmt.Errorf("alphabet size must be >= %d, got %d", MinLearnedSize, size)
	}

	return &Generator{
		size:      size,
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}, nil
}

// Process feeds one candidate password through the per-symbol frequency
// count. Symbols are single bytes, matching the atomic-symbol convention
// used throughout this package.
func (this *Generator) Process(candidate string) {
	for i := 0; i < len(candidate); i++ {
		s := string(candidate[i])

		if _, seen := this.counts[s]; !seen {
			this.firstSeen[s] = this.next
			this.next++
		}

		this.counts[s]++
	}
}

// Alphabet returns the learned Alphabet: the top-K most frequent symbols
// observed, ties broken by first-seen order.
func (this *Generator) Alphabet() *Alphabet {
	symbols := make([]string, 0, len(this.counts))

	for s := range this.counts {
		symbols = append(symbols, s)
	}

	sort.Slice(symbols, func(i, j int) bool {
		ci, cj := this.counts[symbols[i]], this.counts[symbols[j]]

		if ci != cj {
			return ci > cj
		}

		return this.firstSeen[symbols[i]] < this.firstSeen[symbols[j]]
	})

	if len(symbols) > this.size {
		symbols = symbols[:this.size]
	}

	return New(symbols)
}
