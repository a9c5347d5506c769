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

import (
	"testing"

	"github.com/lakiw/go-omen/model"
)

// scenario1CP builds the CP table from spec.md §8 scenario 1: context
// "a" ties {a,b} at level 0, context "b" has {a} at level 0.
func scenario1CP() model.CPTable {
	ctxA := model.NewLevelTable(2)
	ctxA.Add(0, "a")
	ctxA.Add(0, "b")

	ctxB := model.NewLevelTable(2)
	ctxB.Add(0, "a")

	return model.CPTable{"a": ctxA, "b": ctxB}
}

func TestGuessStructureTieBreakOrder(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	gs := New(opt, "a", 1, 0)

	first, ok := gs.Next()

	if !ok || first != "aa" {
		t.Fatalf("first guess = (%q,%v), want (aa,true)", first, ok)
	}

	second, ok := gs.Next()

	if !ok || second != "ab" {
		t.Fatalf("second guess = (%q,%v), want (ab,true)", second, ok)
	}

	if _, ok := gs.Next(); ok {
		t.Fatalf("walker should be exhausted after 2 guesses")
	}
}

func TestGuessStructureSingleContinuation(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	gs := New(opt, "b", 1, 0)

	first, ok := gs.Next()

	if !ok || first != "ba" {
		t.Fatalf("first guess = (%q,%v), want (ba,true)", first, ok)
	}

	if _, ok := gs.Next(); ok {
		t.Fatalf("walker should be exhausted after 1 guess")
	}
}

func TestGuessStructureNoFeasibleTarget(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	// context "b" only has a level-0 bucket; target 1 is infeasible.
	gs := New(opt, "b", 1, 1)

	if _, ok := gs.Next(); ok {
		t.Fatalf("walker should report no guesses for an infeasible target")
	}
}

func TestGuessStructureZeroApplications(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	gs := New(opt, "a", 0, 0)

	first, ok := gs.Next()

	if !ok || first != "a" {
		t.Fatalf("k=0 guess = (%q,%v), want (a,true)", first, ok)
	}

	if _, ok := gs.Next(); ok {
		t.Fatalf("k=0 walker should be exhausted after 1 guess")
	}
}

func TestGuessStructureMultiStepDeterministic(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)

	var first []string
	gs := New(opt, "a", 2, 0)

	for {
		s, ok := gs.Next()

		if !ok {
			break
		}

		first = append(first, s)
	}

	opt2 := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	gs2 := New(opt2, "a", 2, 0)

	var second []string

	for {
		s, ok := gs2.Next()

		if !ok {
			break
		}

		second = append(second, s)
	}

	if len(first) != len(second) {
		t.Fatalf("non-deterministic guess counts: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic guess at index %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestGuessStructureSnapshotRestore(t *testing.T) {
	opt := NewOptimizer(scenario1CP(), DefaultCacheDepth)
	gs := New(opt, "a", 1, 0)

	first, _ := gs.Next()

	st := gs.Snapshot()

	gs2 := New(opt, "a", 1, 0)

	if !gs2.Restore(st) {
		t.Fatalf("Restore should succeed against the same model")
	}

	// gs2 now mirrors gs's position: its next call should match gs's next.
	want, _ := gs.Next()
	got, ok := gs2.Next()

	if !ok || got != want {
		t.Fatalf("after restore, Next() = (%q,%v), want (%q,true)", got, ok, want)
	}

	_ = first
}
