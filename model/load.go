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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lakiw/go-omen/alphabet"
)

// Load reads Rules/<name> beneath root and reconstructs a Model,
// rejecting it per spec.md §4.2/§7 if: the directory or any table file
// is missing or unreadable, the config version is older than
// minVersion, any level read from disk falls outside [0, maxLevel], or
// the IP or LN table ends up with no non-empty bucket at all.
func Load(root, name, minVersion string) (*Model, error) {
	dir := rulesDir(root, name)

	cfg, err := ReadConfig(dir)

	if err != nil {
		return nil, err
	}

	if versionLess(cfg.Version, minVersion) {
		return nil, &RuleError{code: errBadVersion, msg: fmt.Sprintf("rule %q has version %s, require >= %s", name, cfg.Version, minVersion)}
	}

	symbols, err := readAlphabet(dir)

	if err != nil {
		return nil, err
	}

	a := alphabet.New(symbols)
	maxLevel := cfg.MaxLevel

	ip, err := readLevelTable(dir, ipFileName, maxLevel)

	if err != nil {
		return nil, err
	}

	if _, ok := ip.FirstNonEmpty(); !ok {
		return nil, &RuleError{code: errEmptyTable, msg: fmt.Sprintf("rule %q: IP table is empty", name)}
	}

	ep, err := readEPTable(dir, maxLevel)

	if err != nil {
		return nil, err
	}

	cp, err := readCPTable(dir, maxLevel, cfg.NGram-1)

	if err != nil {
		return nil, err
	}

	ln, err := readLNTable(dir, maxLevel)

	if err != nil {
		return nil, err
	}

	if _, ok := ln.FirstNonEmpty(); !ok {
		return nil, &RuleError{code: errEmptyTable, msg: fmt.Sprintf("rule %q: LN table is empty", name)}
	}

	return &Model{
		Config:   cfg,
		Alphabet: a,
		IP:       ip,
		EP:       ep,
		CP:       cp,
		LN:       ln,
	}, nil
}

// versionLess reports whether have is an older version string than want,
// comparing dot-separated numeric components left to right (spec.md §7
// "Model file version too old").
func versionLess(have, want string) bool {
	hp := strings.Split(have, ".")
	wp := strings.Split(want, ".")

	for i := 0; i < len(hp) || i < len(wp); i++ {
		var h, w int

		if i < len(hp) {
			h, _ = strconv.Atoi(hp[i])
		}

		if i < len(wp) {
			w, _ = strconv.Atoi(wp[i])
		}

		if h != w {
			return h < w
		}
	}

	return false
}

func readAlphabet(dir string) ([]string, error) {
	path := dir + string(os.PathSeparator) + alphabetFileName

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	var symbols []string
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		symbols = append(symbols, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return symbols, nil
}

// readLevelTable parses "<level>\t<key>" lines into a LevelTable,
// rejecting any line whose level falls outside [0, maxLevel] (spec.md §7
// "Level value out of range").
func readLevelTable(dir, name string, maxLevel int) (*LevelTable, error) {
	path := dir + string(os.PathSeparator) + name

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	lt := NewLevelTable(maxLevel)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		level, key, err := splitLevelLine(line)

		if err != nil {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: %v", path, err)}
		}

		if level < 0 || level > maxLevel {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: level %d out of range [0,%d]", path, level, maxLevel)}
		}

		lt.Add(level, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return lt, nil
}

func splitLevelLine(line string) (int, string, error) {
	idx := strings.IndexByte(line, '\t')

	if idx < 0 {
		return 0, "", fmt.Errorf("malformed line %q", line)
	}

	level, err := strconv.Atoi(line[:idx])

	if err != nil {
		return 0, "", fmt.Errorf("malformed level in line %q: %v", line, err)
	}

	return level, line[idx+1:], nil
}

// readEPTable parses "<level>\t<prefix>" lines (same field order as
// IP.level — spec.md §6).
func readEPTable(dir string, maxLevel int) (EPTable, error) {
	path := dir + string(os.PathSeparator) + epFileName

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	ep := make(EPTable)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		level, key, err := splitLevelLine(line)

		if err != nil {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: %v", path, err)}
		}

		if level < 0 || level > maxLevel {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: level %d out of range [0,%d]", path, level, maxLevel)}
		}

		ep[key] = level
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return ep, nil
}

// readCPTable parses "<level>\t<context><nextsym>" lines (spec.md §6
// "CP.level: lines LEVEL<TAB>CONTEXT+NEXTSYM"): the field after the level
// is split into the ipLen-symbol context and the final transition symbol.
// Each alphabet symbol is exactly one byte (see alphabet.Split), so the
// split point is simply ipLen bytes from the start of the field.
func readCPTable(dir string, maxLevel, ipLen int) (CPTable, error) {
	path := dir + string(os.PathSeparator) + cpFileName

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	cp := make(CPTable)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		level, field, err := splitLevelLine(line)

		if err != nil {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: %v", path, err)}
		}

		if level < 0 || level > maxLevel {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: level %d out of range [0,%d]", path, level, maxLevel)}
		}

		if len(field) < ipLen+1 {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: malformed line %q", path, line)}
		}

		ctx, sym := field[:ipLen], field[ipLen:]

		lt, exists := cp[ctx]

		if !exists {
			lt = NewLevelTable(maxLevel)
			cp[ctx] = lt
		}

		lt.Add(level, sym)
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return cp, nil
}

// readLNTable parses LN.level's positional format as writeLNTable writes
// it: one bare level per line, line i giving k = i's level, where
// k = length - (n-1). Line 0 is therefore length n-1, not length 1; for
// n > 2 the file has no lines for lengths below n-1.
func readLNTable(dir string, maxLevel int) (*LevelTable, error) {
	path := dir + string(os.PathSeparator) + lnFileName

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	lt := NewLevelTable(maxLevel)
	scanner := bufio.NewScanner(f)
	k := 0

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		level, err := strconv.Atoi(line)

		if err != nil || level < 0 || level > maxLevel {
			return nil, &RuleError{code: errBadLevel, msg: fmt.Sprintf("%s: bad level in line %q", path, line)}
		}

		lt.Add(level, strconv.Itoa(k))
		k++
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return lt, nil
}
