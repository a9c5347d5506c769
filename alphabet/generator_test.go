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

import "testing"

func TestNewGeneratorRejectsSmallSize(t *testing.T) {
	if _, err := NewGenerator(MinLearnedSize - 1); err == nil {
		t.Fatalf("NewGenerator should reject a size below MinLearnedSize")
	}
}

func TestGeneratorTopKByFrequency(t *testing.T) {
	gen, err := NewGenerator(10)

	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	// 11 distinct symbols, frequencies 11 down to 1; requesting 10 should
	// drop exactly the least frequent one.
	symbols := "abcdefghijk"

	for i, s := range symbols {
		count := len(symbols) - i

		for n := 0; n < count; n++ {
			gen.Process(string(s))
		}
	}

	a := gen.Alphabet()

	if a.Len() != 10 {
		t.Fatalf("Alphabet().Len() = %d, want 10", a.Len())
	}

	if a.Contains("k") {
		t.Fatalf("least frequent symbol 'k' should have been dropped")
	}

	if !a.Contains("a") {
		t.Fatalf("most frequent symbol 'a' should be retained")
	}
}

func TestGeneratorTieBreakFirstSeen(t *testing.T) {
	gen, err := NewGenerator(10)

	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	// z, then y, then 8 filler symbols all with the same count as z/y;
	// first-seen order must break the tie, so z (seen first) outranks y.
	for _, s := range []string{"z", "y", "a", "b", "c", "d", "e", "f", "g", "h"} {
		gen.Process(s)
	}

	gen.Process("i") // push total distinct symbols to 11, forcing a cut

	a := gen.Alphabet()

	if a.Len() != 10 {
		t.Fatalf("Alphabet().Len() = %d, want 10", a.Len())
	}

	if a.Contains("i") {
		t.Fatalf("last-seen tied symbol 'i' should have been cut")
	}

	if !a.Contains("z") {
		t.Fatalf("first-seen tied symbol 'z' should be retained")
	}
}

func TestAlphabetAdmissibleAndSplit(t *testing.T) {
	a := FromString("ab")

	if !a.Admissible("aabb") {
		t.Fatalf("aabb should be admissible over alphabet {a,b}")
	}

	if a.Admissible("aabc") {
		t.Fatalf("aabc should not be admissible over alphabet {a,b}")
	}

	split := a.Split("aab")

	if len(split) != 3 || split[0] != "a" || split[1] != "a" || split[2] != "b" {
		t.Fatalf("Split(aab) = %v, want [a a b]", split)
	}
}
