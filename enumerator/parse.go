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

import "strconv"

// CPStep is one conditional-prefix transition reported by Parse: the
// context it was taken from, the symbol it produced, and the level the
// model assigns that transition.
type CPStep struct {
	Context string
	Symbol  string
	Level   int
	Found   bool
}

// ParseReport is the structured diagnostic spec.md §4.4's `parse`
// operation produces: the levels the model assigns to a candidate's IP,
// each CP step, EP, and LN (spec.md §8 scenario 6).
type ParseReport struct {
	Length      int
	LengthLevel int
	LengthFound bool

	IP      string
	IPLevel int
	IPFound bool

	Steps []CPStep

	EP      string
	EPLevel int
	EPFound bool
}

// Parse reports, without mutating any enumerator state, the levels this
// Enumerator's model assigns to s's IP, CP steps, EP and LN (spec.md
// §4.4 "parse(s): diagnostic... Informational only").
func (this *Enumerator) Parse(s string) ParseReport {
	var report ParseReport

	n1 := this.ipLen
	symbols := this.m.Alphabet.Split(s)
	l := len(symbols)

	report.Length = l
	k := l - n1

	if k >= 0 {
		if lvl, ok := this.m.LN.LevelOf(strconv.Itoa(k)); ok {
			report.LengthLevel = lvl
			report.LengthFound = true
		}
	}

	if l >= n1 {
		ip := join(symbols[0:n1])
		report.IP = ip

		if lvl, ok := this.m.IP.LevelOf(ip); ok {
			report.IPLevel = lvl
			report.IPFound = true
		}

		ep := join(symbols[l-n1 : l])
		report.EP = ep

		if lvl, ok := this.m.EP[ep]; ok {
			report.EPLevel = lvl
			report.EPFound = true
		}

		for i := 0; i <= l-n1-1; i++ {
			ctx := join(symbols[i : i+n1])
			next := symbols[i+n1]

			step := CPStep{Context: ctx, Symbol: next}

			if lt, exists := this.m.CP[ctx]; exists {
				if lvl, ok := lt.LevelOf(next); ok {
					step.Level = lvl
					step.Found = true
				}
			}

			report.Steps = append(report.Steps, step)
		}
	}

	return report
}

func join(symbols []string) string {
	var b []byte

	for _, s := range symbols {
		b = append(b, s...)
	}

	return string(b)
}

