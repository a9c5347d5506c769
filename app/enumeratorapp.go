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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	omen "github.com/lakiw/go-omen"
	"github.com/lakiw/go-omen/enumerator"
	"github.com/lakiw/go-omen/model"
)

func zeroTime() time.Time {
	return time.Time{}
}

// autosaveInterval is how many emitted guesses pass between automatic
// session saves, matching the reference codebase's enumNG.py
// ("if num_guesses % 1000000 == 0: cracker.save_session()") so a crash
// mid-run loses at most this many guesses instead of the whole session.
const autosaveInterval = 1000000

// EnumeratorOptions configures a single omenguess run (spec.md §6
// enumerator CLI flags).
type EnumeratorOptions struct {
	RuleName    string
	SessionName string
	Load        bool
	Debug       bool
	Test        bool
	Limit       int
}

func parseEnumeratorArgs(args []string) (EnumeratorOptions, error) {
	opts := EnumeratorOptions{
		RuleName:    omen.DefaultRuleName,
		SessionName: omen.DefaultSessionName,
	}

	for i := 1; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])

		switch {
		case arg == "-r" || arg == "--rule":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			opts.RuleName = args[i]

		case strings.HasPrefix(arg, "--rule="):
			opts.RuleName = strings.TrimPrefix(arg, "--rule=")

		case arg == "-s" || arg == "--session":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			opts.SessionName = args[i]

		case strings.HasPrefix(arg, "--session="):
			opts.SessionName = strings.TrimPrefix(arg, "--session=")

		case arg == "-l" || arg == "--load":
			opts.Load = true

		case arg == "-d" || arg == "--debug":
			opts.Debug = true

		case arg == "-t" || arg == "--test":
			opts.Test = true

		case arg == "-n" || arg == "--limit":
			i++

			if i >= len(args) {
				return opts, fmt.Errorf("missing value for %s", arg)
			}

			n, err := strconv.Atoi(args[i])

			if err != nil || n <= 0 {
				return opts, fmt.Errorf("invalid limit %q", args[i])
			}

			opts.Limit = n

		case strings.HasPrefix(arg, "--limit="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--limit="))

			if err != nil || n <= 0 {
				return opts, fmt.Errorf("invalid limit in %q", arg)
			}

			opts.Limit = n

		default:
			return opts, fmt.Errorf("unrecognised argument %q", arg)
		}
	}

	return opts, nil
}

// RunEnumerator is the entry point cmd/omenguess's main delegates to.
func RunEnumerator(args []string, rulesRoot, sessionDir string, stdin io.Reader, stdout, stderr io.Writer) int {
	Banner(stderr, "omenguess")

	opts, err := parseEnumeratorArgs(args)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return omen.ERR_INVALID_PARAM
	}

	m, err := model.Load(rulesRoot, opts.RuleName, omen.Version)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return errCode(err)
	}

	e := enumerator.New(m)

	if opts.Load {
		if err := e.Load(sessionDir, opts.SessionName, opts.RuleName); err != nil {
			fmt.Fprintln(stderr, err)
			return errCode(err)
		}
	}

	if opts.Test {
		return runParseLoop(e, stdin, stdout)
	}

	listener := NewInfoPrinter(stderr, opts.Debug)

	return runGuessLoop(e, opts, listener, sessionDir, stdout, stderr)
}

func runGuessLoop(e *enumerator.Enumerator, opts EnumeratorOptions, listener *InfoPrinter, sessionDir string, stdout, stderr io.Writer) int {
	listener.ProcessEvent(omen.NewEvent(omen.EVT_ENUM_START, 0, e.T(), "", zeroTime()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGPIPE)
	defer signal.Stop(sigCh)

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	var seen, count int64
	lastLevel := e.T()

	for {
		select {
		case <-sigCh:
			saveSession(e, opts, sessionDir, stderr)
			return 0
		default:
		}

		if opts.Limit > 0 && count >= int64(opts.Limit) {
			return 0
		}

		guess, t, ok := e.NextGuess()

		if !ok {
			return 0
		}

		seen++

		if t != lastLevel {
			lastLevel = t
			listener.ProcessEvent(omen.NewEvent(omen.EVT_ENUM_LEVEL, seen, t, "", zeroTime()))
		}

		// Debug mode reports diagnostics instead of normal guess output
		// (spec.md §6 "-d/--debug"; the original's enumNG.py takes the
		// same either/or branch on num_guesses): no guess is printed, no
		// autosave happens, and the guess does not count toward --limit.
		if opts.Debug {
			if seen%1000 == 0 {
				listener.ProcessEvent(omen.NewEvent(omen.EVT_ENUM_RATE, seen, t, "", zeroTime()))
			}

			continue
		}

		if _, err := fmt.Fprintln(w, guess); err != nil {
			if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
				saveSession(e, opts, sessionDir, stderr)
				return 0
			}

			fmt.Fprintln(stderr, err)
			return omen.ERR_WRITE_FAILED
		}

		count++

		if count%autosaveInterval == 0 {
			saveSession(e, opts, sessionDir, stderr)
		}
	}
}

func saveSession(e *enumerator.Enumerator, opts EnumeratorOptions, sessionDir string, stderr io.Writer) {
	if err := e.Save(sessionDir, opts.SessionName, opts.RuleName); err != nil {
		fmt.Fprintln(stderr, err)
	}
}

func runParseLoop(e *enumerator.Enumerator, stdin io.Reader, stdout io.Writer) int {
	scanner := bufio.NewScanner(stdin)

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			continue
		}

		report := e.Parse(line)
		printParseReport(stdout, report)
	}

	return 0
}

func printParseReport(w io.Writer, r enumerator.ParseReport) {
	fmt.Fprintf(w, "length=%d level=%d found=%v\n", r.Length, r.LengthLevel, r.LengthFound)
	fmt.Fprintf(w, "ip=%q level=%d found=%v\n", r.IP, r.IPLevel, r.IPFound)

	for _, step := range r.Steps {
		fmt.Fprintf(w, "cp=%q->%q level=%d found=%v\n", step.Context, step.Symbol, step.Level, step.Found)
	}

	fmt.Fprintf(w, "ep=%q level=%d found=%v\n", r.EP, r.EPLevel, r.EPFound)
}

func errCode(err error) int {
	if coder, ok := err.(interface{ Code() int }); ok {
		return coder.Code()
	}

	return omen.ERR_UNKNOWN
}
