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

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lakiw/go-omen/walker"
)

const sessionFileSuffix = ".sav"

// SessionError is returned by every session save/load failure path
// spec.md §7 lists, carrying the offending ERR_* code.
type SessionError struct {
	code int
	msg  string
}

func (this *SessionError) Error() string {
	return this.msg
}

// Code returns the ERR_* constant associated with this failure.
func (this *SessionError) Code() int {
	return this.code
}

// sessionRecord is the gob-encoded on-disk shape. Version, RuleName and
// UUID are always the first three logical fields consulted on load
// (spec.md §6 "must begin with (version, rule name, UUID) tuple"); gob
// does not guarantee wire field order, so Load decodes the whole record
// and checks them before touching anything else, which is observably
// equivalent for every caller that only sees Load's accept/reject
// decision.
type sessionRecord struct {
	Version  string
	RuleName string
	UUID     string

	T    int
	Auto bool

	LNLevel int
	LNIndex int
	IPLevel int
	IPIndex int

	ComboReady bool
	GSPrefix   string
	GSK        int
	GSTarget   int
	GSState    walker.State
}

func sessionPath(dir, name string) string {
	return filepath.Join(dir, name+sessionFileSuffix)
}

// Save writes this Enumerator's full resumable state to
// <dir>/<name>.sav: model version, rule name, model UUID, current T,
// auto_increment_T, the IP/LN cursor positions, and the guess
// structure's parse-tree state (spec.md §4.5). The write is atomic
// (temp file + rename), so a crash mid-save never leaves a corrupt
// session behind (spec.md §5 "Session files are rewritten atomically").
func (this *Enumerator) Save(dir, name, ruleName string) error {
	rec := sessionRecord{
		Version:    this.m.Config.Version,
		RuleName:   ruleName,
		UUID:       this.m.Config.UUID,
		T:          this.t,
		Auto:       this.auto,
		LNLevel:    this.lnCursor.level,
		LNIndex:    this.lnCursor.index,
		IPLevel:    this.ipCursor.level,
		IPIndex:    this.ipCursor.index,
		ComboReady: this.comboReady,
		GSPrefix:   this.gsPrefix,
		GSK:        this.gsK,
		GSTarget:   this.gsTarget,
	}

	if this.gs != nil {
		rec.GSState = this.gs.Snapshot()
	}

	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(&rec); err != nil {
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("encode session: %v", err)}
	}

	path := sessionPath(dir, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}

	tmp, err := os.CreateTemp(dir, ".tmp-session-*")

	if err != nil {
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("cannot create temp session file: %v", err)}
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("cannot write session: %v", err)}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("cannot close session: %v", err)}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &SessionError{code: errWriteFailed, msg: fmt.Sprintf("cannot rename session into place: %v", err)}
	}

	return nil
}

// Load reads <dir>/<name>.sav and resumes this Enumerator from it,
// rejecting the session if its version, rule name or UUID disagrees
// with the model this Enumerator was constructed from (spec.md §4.5,
// §7 "Session UUID / version / rule-name mismatch").
func (this *Enumerator) Load(dir, name, ruleName string) error {
	path := sessionPath(dir, name)

	data, err := os.ReadFile(path)

	if err != nil {
		return &SessionError{code: errOpenSession, msg: fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	var rec sessionRecord

	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return &SessionError{code: errOpenSession, msg: fmt.Sprintf("cannot decode %s: %v", path, err)}
	}

	if rec.Version != this.m.Config.Version {
		return &SessionError{code: errSessionMismatch, msg: fmt.Sprintf("session version %s does not match model version %s", rec.Version, this.m.Config.Version)}
	}

	if rec.RuleName != ruleName {
		return &SessionError{code: errSessionMismatch, msg: fmt.Sprintf("session rule %q does not match requested rule %q", rec.RuleName, ruleName)}
	}

	if rec.UUID != this.m.Config.UUID {
		return &SessionError{code: errSessionMismatch, msg: "session UUID does not match loaded model UUID"}
	}

	this.t = rec.T
	this.auto = rec.Auto
	this.lnCursor.level = rec.LNLevel
	this.lnCursor.index = rec.LNIndex
	this.ipCursor.level = rec.IPLevel
	this.ipCursor.index = rec.IPIndex
	this.comboReady = rec.ComboReady
	this.gsPrefix = rec.GSPrefix
	this.gsK = rec.GSK
	this.gsTarget = rec.GSTarget

	if rec.GSState.Started {
		gs := walker.New(this.opt, rec.GSPrefix, rec.GSK, rec.GSTarget)

		if !gs.Restore(rec.GSState) {
			return &SessionError{code: errSessionMismatch, msg: "session walker state is inconsistent with the loaded model"}
		}

		this.gs = gs
	} else {
		this.gs = nil
	}

	return nil
}
