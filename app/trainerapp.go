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

package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	omen "github.com/lakiw/go-omen"
	"github.com/lakiw/go-omen/trainer"
)

// parseTrainerArgs walks os.Args-style tokens into a trainer.Options,
// following the reference codebase's argsMap convention (Kanzi.go's
// processCommandLine): a context flag is recognised, then the next token,
// whatever it is (or the "--flag=value" suffix), fills it.
func parseTrainerArgs(args []string) (trainer.Options, error) {
	opts := trainer.Options{
		RuleName: omen.DefaultRuleName,
		NGram:    omen.DefaultNGram,
		MaxLevel: omen.DefaultMaxLevel,
		Program:  "omentrain",
	}

	opts.MaxLength = omen.DefaultMaxLength

	for i := 1; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])

		switch {
		case arg == "-t" || arg == "--training":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			opts.TrainingFile = args[i]

		case strings.HasPrefix(arg, "--training="):
			opts.TrainingFile = strings.TrimPrefix(arg, "--training=")

		case arg == "-e" || arg == "--encoding":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			opts.Encoding = args[i]

		case strings.HasPrefix(arg, "--encoding="):
			opts.Encoding = strings.TrimPrefix(arg, "--encoding=")

		case arg == "-a" || arg == "--alphabet":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			k, err := strconv.Atoi(args[i])

			if err != nil {
				return opts, fmt.Errorf("invalid alphabet size %q", args[i])
			}

			opts.AlphabetSize = k

		case strings.HasPrefix(arg, "--alphabet="):
			k, err := strconv.Atoi(strings.TrimPrefix(arg, "--alphabet="))

			if err != nil {
				return opts, fmt.Errorf("invalid alphabet size in %q", arg)
			}

			opts.AlphabetSize = k

		case arg == "-r" || arg == "--rule":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			opts.RuleName = args[i]

		case strings.HasPrefix(arg, "--rule="):
			opts.RuleName = strings.TrimPrefix(arg, "--rule=")

		case arg == "-n" || arg == "--ngram":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			n, err := strconv.Atoi(args[i])

			if err != nil {
				return opts, fmt.Errorf("invalid ngram %q", args[i])
			}

			opts.NGram = n

		case strings.HasPrefix(arg, "--ngram="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--ngram="))

			if err != nil {
				return opts, fmt.Errorf("invalid ngram in %q", arg)
			}

			opts.NGram = n

		default:
			return opts, fmt.Errorf("unrecognised argument %q", arg)
		}
	}

	if opts.TrainingFile == "" {
		return opts, fmt.Errorf("missing required -t/--training FILE")
	}

	if opts.NGram < 2 || opts.NGram > 5 {
		return opts, fmt.Errorf("ngram must be in {2,3,4,5}, got %d", opts.NGram)
	}

	return opts, nil
}

// RunTrainer is the entry point cmd/omentrain's main delegates to. It
// returns the process exit code (spec.md §6 "Exit code 0 on success,
// non-zero on corpus-open failure, alphabet-size sanity failure, or
// write failure").
func RunTrainer(args []string, rulesRoot string, stdout, stderr io.Writer) int {
	Banner(stdout, "omentrain")

	opts, err := parseTrainerArgs(args)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return omen.ERR_INVALID_PARAM
	}

	listener := NewInfoPrinter(stderr, false)
	t := trainer.New(opts, nil, listener)

	if _, err := t.Run(rulesRoot); err != nil {
		fmt.Fprintln(stderr, err)
		return errCode(err)
	}

	return 0
}
