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

package omen

import (
	"fmt"
	"time"
)

const (
	EVT_TRAIN_START    = 0 // Training starts
	EVT_TRAIN_PROGRESS = 1 // N candidates parsed so far
	EVT_TRAIN_END      = 2 // Training/smoothing/save finished
	EVT_ENUM_START     = 3 // Enumeration starts
	EVT_ENUM_LEVEL     = 4 // Target total level T changed
	EVT_ENUM_RATE      = 5 // Periodic guesses/second sample (debug mode)
)

// Event reports a single point of progress out of the trainer or the
// enumerator. It carries enough generic fields to cover both: a message,
// a running count and a target level.
type Event struct {
	eventType int
	count     int64
	level     int
	eventTime time.Time
	msg       string
}

// NewEvent creates a new Event. If evtTime is the zero Time, time.Now()
// is used.
func NewEvent(evtType int, count int64, level int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, count: count, level: level, msg: msg, eventTime: evtTime}
}

// Type returns the event type (one of the EVT_* constants).
func (this *Event) Type() int {
	return this.eventType
}

// Count returns the running count carried by the event (candidates parsed,
// guesses emitted, depending on Type()).
func (this *Event) Count() int64 {
	return this.count
}

// Level returns the target total level associated with the event. Trainer
// events, which have no target level, carry 0.
func (this *Event) Level() int {
	return this.level
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	switch this.eventType {
	case EVT_TRAIN_START:
		return "training started"
	case EVT_TRAIN_PROGRESS:
		return fmt.Sprintf("%d candidates parsed", this.count)
	case EVT_TRAIN_END:
		return "training finished"
	case EVT_ENUM_START:
		return "enumeration started"
	case EVT_ENUM_LEVEL:
		return fmt.Sprintf("target level %d", this.level)
	case EVT_ENUM_RATE:
		return fmt.Sprintf("guesses: %d level: %d", this.count, this.level)
	}

	return ""
}

// Listener is implemented by event consumers (the app package's status
// printer, or a test harness collecting progress samples).
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}
