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
	"sync"
	"time"

	omen "github.com/lakiw/go-omen"
)

// InfoPrinter is an omen.Listener that writes one line per event to an
// io.Writer (normally os.Stderr), mirroring the reference codebase's
// InfoPrinter/BlockListener split between its compressor and
// decompressor (spec.md §6.3 "shared CLI plumbing").
type InfoPrinter struct {
	writer    io.Writer
	debug     bool
	lock      sync.Mutex
	lastCount int64
	lastTime  time.Time
}

// NewInfoPrinter creates an InfoPrinter. debug enables the periodic
// guesses/second diagnostic EVT_ENUM_RATE line; without it, every other
// event type (training start/progress/end, enumeration start and
// level-change) is still printed.
func NewInfoPrinter(w io.Writer, debug bool) *InfoPrinter {
	return &InfoPrinter{writer: w, debug: debug, lastTime: time.Now()}
}

// ProcessEvent implements omen.Listener.
func (this *InfoPrinter) ProcessEvent(evt *omen.Event) {
	this.lock.Lock()
	defer this.lock.Unlock()

	switch evt.Type() {
	case omen.EVT_TRAIN_START:
		fmt.Fprintln(this.writer, "training started")

	case omen.EVT_TRAIN_PROGRESS:
		fmt.Fprintf(this.writer, "%d candidates processed\n", evt.Count())

	case omen.EVT_TRAIN_END:
		fmt.Fprintf(this.writer, "training finished: %d candidates\n", evt.Count())

	case omen.EVT_ENUM_START:
		fmt.Fprintln(this.writer, "enumeration started")

	case omen.EVT_ENUM_LEVEL:
		fmt.Fprintf(this.writer, "target level: %d\n", evt.Level())

	case omen.EVT_ENUM_RATE:
		if !this.debug {
			return
		}

		elapsed := evt.Time().Sub(this.lastTime).Seconds()
		delta := evt.Count() - this.lastCount
		rate := 0.0

		if elapsed > 0 {
			rate = float64(delta) / elapsed
		}

		fmt.Fprintf(this.writer, "guesses: %d level: %d rate: %.1f/s\n", evt.Count(), evt.Level(), rate)
		this.lastCount = evt.Count()
		this.lastTime = evt.Time()
	}
}
