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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	ipFileName       = "IP.level"
	epFileName       = "EP.level"
	cpFileName       = "CP.level"
	lnFileName       = "LN.level"
	alphabetFileName = "alphabet.txt"
)

// rulesDir returns Rules/<name>, the directory layout spec.md §6 mandates
// for a trained ruleset.
func rulesDir(root, name string) string {
	return root + string(os.PathSeparator) + "Rules" + string(os.PathSeparator) + name
}

// Save writes the four level tables, the alphabet and config.txt under
// Rules/<name> beneath root, assigning a fresh UUID if cfg.UUID is empty
// (spec.md §3 "UUID... generated once, at training time").
func Save(root, name string, m *Model) error {
	dir := rulesDir(root, name)

	if m.Config.UUID == "" {
		m.Config.UUID = uuid.New().String()
	}

	if err := writeLevelTable(dir, ipFileName, m.IP); err != nil {
		return err
	}

	if err := writeEPTable(dir, m.EP); err != nil {
		return err
	}

	if err := writeCPTable(dir, m.CP); err != nil {
		return err
	}

	if err := writeLNTable(dir, m.LN); err != nil {
		return err
	}

	if err := writeAlphabet(dir, m.Alphabet.Symbols()); err != nil {
		return err
	}

	return WriteConfig(dir, m.Config)
}

// writeLevelTable serialises a LevelTable as "<level>\t<key>" lines, one
// per bucket member, in bucket/insertion order so reloading reproduces
// identical tie-breaking (spec.md §3 "Bucket order defines tie-breaking").
func writeLevelTable(dir, name string, lt *LevelTable) error {
	var b strings.Builder

	for level := 0; level <= lt.MaxLevel(); level++ {
		for _, key := range lt.Bucket(level) {
			fmt.Fprintf(&b, "%d\t%s\n", level, key)
		}
	}

	path := dir + string(os.PathSeparator) + name

	return writeFileAtomic(path, []byte(b.String()))
}

// writeEPTable serialises EP as "<level>\t<prefix>" lines, the same field
// order as IP.level (spec.md §6 "EP.level: lines LEVEL<TAB>PREFIX"; the
// original trainer's output_file_io.py writes ep_level before the key the
// same way it writes ip_level).
func writeEPTable(dir string, ep EPTable) error {
	var b strings.Builder

	for key, level := range ep {
		fmt.Fprintf(&b, "%d\t%s\n", level, key)
	}

	path := dir + string(os.PathSeparator) + epFileName

	return writeFileAtomic(path, []byte(b.String()))
}

// writeCPTable serialises CP as "<level>\t<context><nextsym>" lines, the
// context and the transition's next symbol concatenated into one field
// (spec.md §6 "CP.level: lines LEVEL<TAB>CONTEXT+NEXTSYM"; grounded on
// output_file_io.py's `str(level[0]) + "\t" + key + last_letter`).
func writeCPTable(dir string, cp CPTable) error {
	var b strings.Builder

	for ctx, lt := range cp {
		for level := 0; level <= lt.MaxLevel(); level++ {
			for _, sym := range lt.Bucket(level) {
				fmt.Fprintf(&b, "%d\t%s%s\n", level, ctx, sym)
			}
		}
	}

	path := dir + string(os.PathSeparator) + cpFileName

	return writeFileAtomic(path, []byte(b.String()))
}

// writeLNTable serialises LN positionally: one line per k (CP-application
// count) from 0 upward, holding only that length's level. Line 0 is
// length n-1, not length 1; lengths below n-1 get no line (grounded on
// output_file_io.py's
// `for length, count in enumerate(ln_lookup): file.write(str(count[0])...`,
// which likewise writes nothing but the level, one per line, in length
// order). The LN LevelTable stores its keys as strconv-formatted k values
// (see buildLNTable), so recovering the k order means decoding every
// bucket member back to an int and sorting.
func writeLNTable(dir string, lt *LevelTable) error {
	type entry struct {
		k, level int
	}

	var entries []entry

	for level := 0; level <= lt.MaxLevel(); level++ {
		for _, key := range lt.Bucket(level) {
			k, err := strconv.Atoi(key)

			if err != nil {
				continue
			}

			entries = append(entries, entry{k: k, level: level})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].k < entries[j].k })

	var b strings.Builder

	for _, e := range entries {
		fmt.Fprintf(&b, "%d\n", e.level)
	}

	path := dir + string(os.PathSeparator) + lnFileName

	return writeFileAtomic(path, []byte(b.String()))
}

// writeAlphabet writes one symbol per line.
func writeAlphabet(dir string, symbols []string) error {
	var b strings.Builder

	for _, s := range symbols {
		fmt.Fprintln(&b, s)
	}

	path := dir + string(os.PathSeparator) + alphabetFileName

	return writeFileAtomic(path, []byte(b.String()))
}
