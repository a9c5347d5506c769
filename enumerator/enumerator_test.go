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

package enumerator

import (
	"testing"

	"github.com/lakiw/go-omen/alphabet"
	"github.com/lakiw/go-omen/model"
)

// buildScenario1Model trains spec.md §8 scenario 1's tiny corpus into a
// full Model: alphabet {a,b}, n=2, L_max=2, corpus {aa, ab, ba}.
func buildScenario1Model(t *testing.T) *model.Model {
	t.Helper()

	a := alphabet.New([]string{"a", "b"})
	counter := model.NewCounter(a, 2, 2)
	counter.Process("aa")
	counter.Process("ab")
	counter.Process("ba")

	cfg := &model.Config{Version: "1.0", NGram: 2, MaxLevel: 2}

	return model.Build(a, 2, 2, counter, cfg)
}

func emitN(e *Enumerator, n int) []string {
	out := make([]string, 0, n)

	for i := 0; i < n; i++ {
		s, _, ok := e.NextGuess()

		if !ok {
			break
		}

		out = append(out, s)
	}

	return out
}

// TestInvariantI1TotalLevel checks I1: IP_level + LN_level + sum(CP
// levels) equals the T the guess was emitted at.
func TestInvariantI1TotalLevel(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	for i := 0; i < 50; i++ {
		guess, total, ok := e.NextGuess()

		if !ok {
			break
		}

		report := e.Parse(guess)

		sum := report.IPLevel + report.LengthLevel

		for _, step := range report.Steps {
			sum += step.Level
		}

		if sum != total {
			t.Fatalf("guess %q: IP+LN+sum(CP) = %d, want T = %d", guess, sum, total)
		}
	}
}

// TestInvariantI2NonDecreasingT checks I2: T is non-decreasing across
// consecutive emissions.
func TestInvariantI2NonDecreasingT(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	lastT := -1

	for i := 0; i < 100; i++ {
		_, total, ok := e.NextGuess()

		if !ok {
			break
		}

		if total < lastT {
			t.Fatalf("T decreased: %d after %d", total, lastT)
		}

		lastT = total
	}
}

// TestInvariantI3NoDuplicates checks I3: no guess repeats within a
// single enumeration pass.
func TestInvariantI3NoDuplicates(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		guess, _, ok := e.NextGuess()

		if !ok {
			break
		}

		if seen[guess] {
			t.Fatalf("guess %q emitted twice", guess)
		}

		seen[guess] = true
	}
}

// TestInvariantI4TrainingStringsEnumerable checks I4: every admissible
// training string is eventually emitted.
func TestInvariantI4TrainingStringsEnumerable(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	want := map[string]bool{"aa": false, "ab": false, "ba": false}
	guesses := emitN(e, 500)

	for _, g := range guesses {
		if _, relevant := want[g]; relevant {
			want[g] = true
		}
	}

	for s, found := range want {
		if !found {
			t.Fatalf("training string %q was never enumerated within 500 guesses", s)
		}
	}
}

// TestInvariantI6Deterministic checks I6: two independent runs over the
// same model emit identical streams.
func TestInvariantI6Deterministic(t *testing.T) {
	m1 := buildScenario1Model(t)
	m2 := buildScenario1Model(t)

	e1 := New(m1)
	e2 := New(m2)

	g1 := emitN(e1, 100)
	g2 := emitN(e2, 100)

	if len(g1) != len(g2) {
		t.Fatalf("run lengths differ: %d vs %d", len(g1), len(g2))
	}

	for i := range g1 {
		if g1[i] != g2[i] {
			t.Fatalf("runs diverge at guess %d: %q vs %q", i, g1[i], g2[i])
		}
	}
}

// TestInvariantI5SaveLoadRoundTrip checks I5: save/load resumes exactly
// the suffix of the uninterrupted sequence.
func TestInvariantI5SaveLoadRoundTrip(t *testing.T) {
	m := buildScenario1Model(t)
	full := emitN(New(m), 20)

	e := New(m)
	first := emitN(e, 10)

	dir := t.TempDir()

	if err := e.Save(dir, "sess", "Default"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	resumed := New(m)

	if err := resumed.Load(dir, "sess", "Default"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	second := emitN(resumed, 10)

	got := append(first, second...)

	if len(got) != len(full) {
		t.Fatalf("round-tripped sequence length %d != uninterrupted length %d", len(got), len(full))
	}

	for i := range full {
		if got[i] != full[i] {
			t.Fatalf("round-tripped sequence diverges at %d: %q vs %q", i, got[i], full[i])
		}
	}
}

func TestLoadRejectsUUIDMismatch(t *testing.T) {
	m1 := buildScenario1Model(t)
	e := New(m1)
	_ = emitN(e, 5)

	dir := t.TempDir()

	if err := e.Save(dir, "sess", "Default"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m2 := buildScenario1Model(t)
	m2.Config.UUID = "deliberately-different-uuid"

	resumed := New(m2)

	if err := resumed.Load(dir, "sess", "Default"); err == nil {
		t.Fatalf("Load should reject a session whose UUID does not match the model")
	}
}

func TestLimitStopsAfterExactCount(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	got := emitN(e, 5)

	if len(got) != 5 {
		t.Fatalf("emitN(5) produced %d guesses, want 5", len(got))
	}
}

func TestParseReportsLevels(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)

	report := e.Parse("aa")

	if !report.IPFound {
		t.Fatalf("parse(aa) should find an IP level for context 'a'")
	}

	if !report.LengthFound {
		t.Fatalf("parse(aa) should find a length level")
	}

	if len(report.Steps) != 1 {
		t.Fatalf("parse(aa) should report exactly 1 CP step, got %d", len(report.Steps))
	}

	if report.Steps[0].Context != "a" || report.Steps[0].Symbol != "a" {
		t.Fatalf("parse(aa) CP step = %+v, want context=a symbol=a", report.Steps[0])
	}
}

func TestAutoIncrementDisabledStopsAtT(t *testing.T) {
	m := buildScenario1Model(t)
	e := New(m)
	e.SetAutoIncrement(false)

	startT := e.T()
	count := 0

	for {
		_, total, ok := e.NextGuess()

		if !ok {
			break
		}

		if total != startT {
			t.Fatalf("got guess at T=%d while auto-increment is disabled and start T=%d", total, startT)
		}

		count++

		if count > 10000 {
			t.Fatalf("enumeration with auto-increment disabled did not terminate")
		}
	}
}
