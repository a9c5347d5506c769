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
)

// Config is the metadata persisted alongside the four tables: program
// version, training settings, and the UUID used to sanity-check session
// restores (spec.md §3 "Lifecycle", §6 config.txt).
type Config struct {
	// program_details
	Program string
	Version string
	Author  string
	Contact string

	// training_settings
	TrainingFile     string
	AlphabetEncoding string
	NGram            int
	MaxLevel         int
	UUID             string
}

const configFileName = "config.txt"

// WriteConfig writes config.txt under dir in the section/key=value
// layout spec.md §6 mandates.
func WriteConfig(dir string, cfg *Config) error {
	path := dir + string(os.PathSeparator) + configFileName

	var b strings.Builder
	fmt.Fprintln(&b, "[program_details]")
	fmt.Fprintf(&b, "program=%s\n", cfg.Program)
	fmt.Fprintf(&b, "version=%s\n", cfg.Version)
	fmt.Fprintf(&b, "author=%s\n", cfg.Author)
	fmt.Fprintf(&b, "contact=%s\n", cfg.Contact)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "[training_settings]")
	fmt.Fprintf(&b, "training_file=%s\n", cfg.TrainingFile)
	fmt.Fprintf(&b, "alphabet_encoding=%s\n", cfg.AlphabetEncoding)
	fmt.Fprintf(&b, "ngram=%d\n", cfg.NGram)
	fmt.Fprintf(&b, "max_level=%d\n", cfg.MaxLevel)
	fmt.Fprintf(&b, "uuid=%s\n", cfg.UUID)

	return writeFileAtomic(path, []byte(b.String()))
}

// ReadConfig parses config.txt under dir.
func ReadConfig(dir string) (*Config, error) {
	path := dir + string(os.PathSeparator) + configFileName

	f, err := os.Open(path)

	if err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	defer f.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')

		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		switch key {
		case "program":
			cfg.Program = value
		case "version":
			cfg.Version = value
		case "author":
			cfg.Author = value
		case "contact":
			cfg.Contact = value
		case "training_file":
			cfg.TrainingFile = value
		case "alphabet_encoding":
			cfg.AlphabetEncoding = value
		case "ngram":
			cfg.NGram, _ = strconv.Atoi(value)
		case "max_level":
			cfg.MaxLevel, _ = strconv.Atoi(value)
		case "uuid":
			cfg.UUID = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &RuleError{code: errOpenConfig, msg: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	return cfg, nil
}
