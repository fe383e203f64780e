// Copyright 2026 The Varphi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package varphi

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError reports a malformed lexeme, unexpected token, or incomplete
// rule encountered while lexing or parsing a Varphi program. Line and
// Column are both 1's based.
type SyntaxError struct {
	Line    int
	Column  int
	Message string

	// SourceLine is the offending source line, and Caret is a line of
	// spaces and a single '^' pointing at Column within it. Both are
	// empty if Line falls outside the source text; a Column past the end
	// of the line puts the caret just after the line's last character.
	SourceLine string
	Caret      string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: syntax error: %s", e.Line, e.Column, e.Message)
	if e.SourceLine != "" {
		fmt.Fprintf(&b, "\n    %s\n    %s", e.SourceLine, e.Caret)
	}
	return b.String()
}

// newSyntaxError builds a SyntaxError for line:col within source, rendering
// the offending line and a caret under the offending column. source is the
// full program text; line and column are both 1's based.
func newSyntaxError(source string, line, column int, format string, args ...interface{}) *SyntaxError {
	e := &SyntaxError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
	lines := strings.Split(source, "\n")
	if line >= 1 && line <= len(lines) {
		e.SourceLine = lines[line-1]
		col := column - 1
		if col < 0 {
			col = 0
		}
		if col > len(e.SourceLine) {
			col = len(e.SourceLine)
		}
		e.Caret = strings.Repeat(" ", col) + "^"
	}
	return e
}

// NoTallyError reports that an input tape was empty, or contained only
// blanks, and so contained no tally (1) to anchor the tape against.
type NoTallyError struct{}

func (NoTallyError) Error() string {
	return "input tape must contain at least one tally (1)"
}

// InvalidTapeCharacterError reports a byte in an input tape stream that is
// not a valid tape character ('0', '1') or line terminator.
type InvalidTapeCharacterError struct {
	ASCII byte
}

func (e InvalidTapeCharacterError) Error() string {
	return fmt.Sprintf("invalid tape character (ASCII #%d)", e.ASCII)
}

// DomainError reports that an input tape was supplied to a Program whose
// Initial state is unset (an empty program).
type DomainError struct{}

func (DomainError) Error() string {
	return "input provided to an empty Turing machine"
}

// ErrHalted is the sentinel signal raised when Machine.Step or
// Machine.ArmNext finds no rule matching the current (state, symbol). It is
// control flow, not a real error in the taxonomy sense: callers recover it
// at the machine driver and it never escapes a well-formed driver loop.
var ErrHalted = errors.New("machine halted")

// ArmingViolation reports a caller bug in the arm/commit protocol used by a
// debug driver: Commit called without a preceding ArmNext, or ArmNext
// called twice without an intervening Commit.
type ArmingViolation struct {
	Op string // "arm" or "commit"
}

func (e ArmingViolation) Error() string {
	switch e.Op {
	case "arm":
		return "arm_next called while an instruction is already armed"
	default:
		return "commit called with no instruction armed"
	}
}
