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

package trainer

import (
	"bufio"
	"fmt"
	"os"
	"time"

	omen "github.com/lakiw/go-omen"
	"github.com/lakiw/go-omen/alphabet"
	"github.com/lakiw/go-omen/model"
)

// progressInterval is how many admissible candidates Run processes
// between EVT_TRAIN_PROGRESS notifications.
const progressInterval = 50000

// Options configures a single training run (spec.md §4.1 "Inputs",
// §6 trainer CLI flags).
type Options struct {
	TrainingFile string
	Encoding     string // empty triggers autodetection
	AlphabetSize int    // > 0 means "learn an alphabet of this size"
	RuleName     string
	NGram        int
	MaxLevel     int
	MaxLength    int
	Program      string
	Author       string
	Contact      string
}

// Trainer runs a single training pass per Options, reporting progress
// through an omen.Listener.
type Trainer struct {
	opts     Options
	detector EncodingDetector
	listener omen.Listener
}

// New constructs a Trainer. detector defaults to DefaultEncodingDetector
// when nil; listener may be nil to discard all events.
func New(opts Options, detector EncodingDetector, listener omen.Listener) *Trainer {
	if detector == nil {
		detector = DefaultEncodingDetector{}
	}

	return &Trainer{opts: opts, detector: detector, listener: listener}
}

func (this *Trainer) emit(evt *omen.Event) {
	if this.listener != nil {
		this.listener.ProcessEvent(evt)
	}
}

// Run executes the full training pass and writes the resulting ruleset
// under rulesRoot/Rules/<RuleName>, returning the assembled Model.
func (this *Trainer) Run(rulesRoot string) (*model.Model, error) {
	if this.opts.AlphabetSize > 0 && this.opts.AlphabetSize < alphabet.MinLearnedSize {
		return nil, newTrainError(omen.ERR_ALPHABET_SIZE, fmt.Sprintf("requested alphabet size %d is below the minimum of %d", this.opts.AlphabetSize, alphabet.MinLearnedSize))
	}

	this.emit(omen.NewEvent(omen.EVT_TRAIN_START, 0, 0, "", time.Time{}))

	encoding := this.opts.Encoding

	if encoding == "" {
		sample, err := readSample(this.opts.TrainingFile)

		if err != nil {
			return nil, newTrainError(omen.ERR_OPEN_CORPUS, fmt.Sprintf("cannot open %s: %v", this.opts.TrainingFile, err))
		}

		encoding = this.detector.Detect(sample)
	}

	var a *alphabet.Alphabet

	if this.opts.AlphabetSize > 0 {
		learned, err := this.learnAlphabet()

		if err != nil {
			return nil, err
		}

		a = learned
	} else {
		a = alphabet.FromString(omen.DefaultAlphabet)
	}

	counter := model.NewCounter(a, this.opts.NGram, this.opts.MaxLength)

	if err := this.countCorpus(counter); err != nil {
		return nil, err
	}

	this.emit(omen.NewEvent(omen.EVT_TRAIN_END, int64(counter.Trained()), 0, "", time.Time{}))

	cfg := &model.Config{
		Program:          this.opts.Program,
		Version:          omen.Version,
		Author:           this.opts.Author,
		Contact:          this.opts.Contact,
		TrainingFile:     this.opts.TrainingFile,
		AlphabetEncoding: encoding,
		NGram:            this.opts.NGram,
		MaxLevel:         this.opts.MaxLevel,
	}

	m := model.Build(a, this.opts.NGram, this.opts.MaxLevel, counter, cfg)

	if err := model.Save(rulesRoot, this.opts.RuleName, m); err != nil {
		return nil, err
	}

	return m, nil
}

// learnAlphabet performs the single streaming frequency pass spec.md
// §4.6 describes.
func (this *Trainer) learnAlphabet() (*alphabet.Alphabet, error) {
	f, err := os.Open(this.opts.TrainingFile)

	if err != nil {
		return nil, newTrainError(omen.ERR_OPEN_CORPUS, fmt.Sprintf("cannot open %s: %v", this.opts.TrainingFile, err))
	}

	defer f.Close()

	gen, err := alphabet.NewGenerator(this.opts.AlphabetSize)

	if err != nil {
		return nil, newTrainError(omen.ERR_ALPHABET_SIZE, err.Error())
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		gen.Process(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, newTrainError(omen.ERR_OPEN_CORPUS, fmt.Sprintf("error reading %s: %v", this.opts.TrainingFile, err))
	}

	return gen.Alphabet(), nil
}

// countCorpus performs the counting pass spec.md §4.1 describes,
// reporting progress every progressInterval admissible candidates.
func (this *Trainer) countCorpus(counter *model.Counter) error {
	f, err := os.Open(this.opts.TrainingFile)

	if err != nil {
		return newTrainError(omen.ERR_OPEN_CORPUS, fmt.Sprintf("cannot open %s: %v", this.opts.TrainingFile, err))
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lastReport := 0

	for scanner.Scan() {
		counter.Process(scanner.Text())

		if counter.Trained()-lastReport >= progressInterval {
			lastReport = counter.Trained()
			this.emit(omen.NewEvent(omen.EVT_TRAIN_PROGRESS, int64(counter.Trained()), 0, "", time.Time{}))
		}
	}

	if err := scanner.Err(); err != nil {
		return newTrainError(omen.ERR_OPEN_CORPUS, fmt.Sprintf("error reading %s: %v", this.opts.TrainingFile, err))
	}

	return nil
}

func readSample(path string) ([]byte, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	buf := make([]byte, 4096)
	n, err := f.Read(buf)

	if err != nil && n == 0 {
		return nil, err
	}

	return buf[:n], nil
}
