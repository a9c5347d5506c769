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
	"github.com/lakiw/go-omen/alphabet"
)

// cpCounts tracks, for a single context, the raw count of every observed
// next symbol plus the context's total, so per-context normalisation
// (spec.md §4.1 "for CP, per-context normalisation") can be applied at
// discretisation time.
type cpCounts struct {
	next  map[string]int
	order []string // first-seen order, for stable bucket tie-breaking
	total int
}

func newCPCounts() *cpCounts {
	return &cpCounts{next: make(map[string]int)}
}

func (this *cpCounts) add(symbol string) {
	if _, seen := this.next[symbol]; !seen {
		this.order = append(this.order, symbol)
	}

	this.next[symbol]++
	this.total++
}

// Counter accumulates raw frequency counts for the four OMEN tables
// during a single training pass (spec.md §4.1 "Counting").
type Counter struct {
	alphabet    *alphabet.Alphabet
	ngram       int
	maxLength   int
	ipCounts    map[string]int
	ipOrder     []string
	epCounts    map[string]int
	epOrder     []string
	cpCounts    map[string]*cpCounts
	cpOrder     []string
	lnCounts    map[int]int
	encodingErr int
	trained     int
}

// NewCounter creates a Counter for the given alphabet, n-gram order and
// max candidate length.
func NewCounter(a *alphabet.Alphabet, ngram, maxLength int) *Counter {
	return &Counter{
		alphabet:  a,
		ngram:     ngram,
		maxLength: maxLength,
		ipCounts:  make(map[string]int),
		epCounts:  make(map[string]int),
		cpCounts:  make(map[string]*cpCounts),
		lnCounts:  make(map[int]int),
	}
}

// EncodingErrors returns the number of candidates skipped because they
// were inadmissible (spec.md §4.1 "Filter", §7 "Inadmissible input
// line").
func (this *Counter) EncodingErrors() int {
	return this.encodingErr
}

// Trained returns the number of admissible candidates counted so far.
func (this *Counter) Trained() int {
	return this.trained
}

// Process counts one training candidate. Inadmissible candidates are
// silently skipped and counted in EncodingErrors (spec.md §4.1, §7).
func (this *Counter) Process(candidate string) {
	n := this.ngram
	l := len(candidate)

	if l < n-1 || l > this.maxLength || !this.alphabet.Admissible(candidate) {
		this.encodingErr++
		return
	}

	this.trained++
	symbols := this.alphabet.Split(candidate)

	ip := joinSymbols(symbols[0 : n-1])

	if _, seen := this.ipCounts[ip]; !seen {
		this.ipOrder = append(this.ipOrder, ip)
	}

	this.ipCounts[ip]++

	ep := joinSymbols(symbols[l-(n-1) : l])

	if _, seen := this.epCounts[ep]; !seen {
		this.epOrder = append(this.epOrder, ep)
	}

	this.epCounts[ep]++

	for i := 0; i <= l-n; i++ {
		ctx := joinSymbols(symbols[i : i+n-1])
		next := symbols[i+n-1]

		cc, exists := this.cpCounts[ctx]

		if !exists {
			cc = newCPCounts()
			this.cpCounts[ctx] = cc
			this.cpOrder = append(this.cpOrder, ctx)
		}

		cc.add(next)
	}

	this.lnCounts[l]++
}

func joinSymbols(symbols []string) string {
	var b []byte

	for _, s := range symbols {
		b = append(b, s...)
	}

	return string(b)
}
