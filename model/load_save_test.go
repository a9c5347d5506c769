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
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/lakiw/go-omen/alphabet"
)

// buildScenario1 trains the tiny corpus from spec.md §8 scenario 1:
// alphabet {a,b}, n=2, L_max=2, corpus {aa, ab, ba}.
func buildScenario1(t *testing.T) *Model {
	t.Helper()

	a := alphabet.New([]string{"a", "b"})
	counter := NewCounter(a, 2, 2)

	counter.Process("aa")
	counter.Process("ab")
	counter.Process("ba")

	cfg := &Config{
		Program:          "omentrain",
		Version:          "1.0",
		TrainingFile:     "corpus.txt",
		AlphabetEncoding: "utf-8",
		NGram:            2,
		MaxLevel:         2,
	}

	return Build(a, 2, 2, counter, cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := buildScenario1(t)

	if err := Save(dir, "Default", m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if m.Config.UUID == "" {
		t.Fatalf("Save should assign a UUID when none was set")
	}

	loaded, err := Load(dir, "Default", "1.0")

	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Config.UUID != m.Config.UUID {
		t.Fatalf("UUID mismatch after round trip: %q != %q", loaded.Config.UUID, m.Config.UUID)
	}

	if loaded.Config.NGram != 2 || loaded.Config.MaxLevel != 2 {
		t.Fatalf("config mismatch after round trip: %+v", loaded.Config)
	}

	for level := 0; level <= 2; level++ {
		want := m.IP.Bucket(level)
		got := loaded.IP.Bucket(level)

		if len(want) != len(got) {
			t.Fatalf("IP bucket %d length mismatch: want %v got %v", level, want, got)
		}

		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("IP bucket %d entry %d mismatch: want %q got %q", level, i, want[i], got[i])
			}
		}
	}

	for ctx, lt := range m.CP {
		gotLT, exists := loaded.CP[ctx]

		if !exists {
			t.Fatalf("CP context %q missing after round trip", ctx)
		}

		for level := 0; level <= 2; level++ {
			if !equalStrings(lt.Bucket(level), gotLT.Bucket(level)) {
				t.Fatalf("CP[%q] bucket %d mismatch: want %v got %v", ctx, level, lt.Bucket(level), gotLT.Bucket(level))
			}
		}
	}
}

// TestOnDiskLayoutMatchesSpec checks the literal line format spec.md §6
// mandates (and output_file_io.py implements): EP.level uses the same
// LEVEL<TAB>PREFIX order as IP.level, CP.level is a 2-field
// LEVEL<TAB>CONTEXT+NEXTSYM line, and LN.level holds one bare level per
// line, positionally.
func TestOnDiskLayoutMatchesSpec(t *testing.T) {
	dir := t.TempDir()
	m := buildScenario1(t)

	if err := Save(dir, "Default", m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ruleDir := rulesDir(dir, "Default")

	epBytes, err := os.ReadFile(ruleDir + string(os.PathSeparator) + "EP.level")

	if err != nil {
		t.Fatalf("reading EP.level: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(string(epBytes)), "\n") {
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)

		if len(fields) != 2 {
			t.Fatalf("EP.level line %q: want 2 tab-separated fields", line)
		}

		if _, err := strconv.Atoi(fields[0]); err != nil {
			t.Fatalf("EP.level line %q: first field must be the level, got %v", line, err)
		}
	}

	cpBytes, err := os.ReadFile(ruleDir + string(os.PathSeparator) + "CP.level")

	if err != nil {
		t.Fatalf("reading CP.level: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(string(cpBytes)), "\n") {
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)

		if len(fields) != 2 {
			t.Fatalf("CP.level line %q: want exactly 2 fields (level, context+symbol)", line)
		}

		if _, err := strconv.Atoi(fields[0]); err != nil {
			t.Fatalf("CP.level line %q: first field must be the level, got %v", line, err)
		}

		// context (IPLen=1) + next symbol (1 byte) = 2 bytes.
		if len(fields[1]) != m.IPLen()+1 {
			t.Fatalf("CP.level line %q: second field should be context+symbol (%d bytes), got %d", line, m.IPLen()+1, len(fields[1]))
		}
	}

	lnBytes, err := os.ReadFile(ruleDir + string(os.PathSeparator) + "LN.level")

	if err != nil {
		t.Fatalf("reading LN.level: %v", err)
	}

	lnLines := strings.Split(strings.TrimSpace(string(lnBytes)), "\n")

	for _, line := range lnLines {
		if line == "" {
			continue
		}

		if strings.Contains(line, "\t") {
			t.Fatalf("LN.level line %q: should hold a bare level, not a tab-separated pair", line)
		}

		if _, err := strconv.Atoi(line); err != nil {
			t.Fatalf("LN.level line %q: %v", line, err)
		}
	}
}

func TestLoadRejectsOldVersion(t *testing.T) {
	dir := t.TempDir()
	m := buildScenario1(t)

	if err := Save(dir, "Default", m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := Load(dir, "Default", "2.0"); err == nil {
		t.Fatalf("Load should reject a model older than the required minimum version")
	}
}

func TestLoadRejectsMissingRule(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir, "NoSuchRule", "1.0"); err == nil {
		t.Fatalf("Load should fail for a rule directory that was never written")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
