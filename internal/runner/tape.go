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

// Package runner drives a *varphi.Machine to completion, reading an
// initial tape from an io.Reader and printing its progress in one of
// several output shapes. Each driver differs only in what it prints
// around an identical Machine.Step loop.
package runner

import (
	"bufio"
	"io"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

// ReadTapeFromReader reads a tape definition from r: leading '0' bytes are
// skipped, the first '1' anchors the tape at cell 0, and reading continues
// until a line terminator or EOF. A '\r' alone ends the tape exactly like
// '\n'; a "\r\n" pair ends it at the '\r' (this mirrors the byte-at-a-time
// reference behavior this was ported from, which treats '\r' and '\n' as
// interchangeable single-byte terminators rather than recognizing the
// two-byte CRLF sequence). Bytes after the terminator, such as that
// trailing '\n', stay available to later reads of r only when r is itself
// a *bufio.Reader; otherwise the internal buffer may consume them.
//
// It returns NoTallyError if a line terminator or EOF is reached before any
// '1' is seen, or InvalidTapeCharacterError for any byte that is not '0',
// '1', '\n', or '\r'.
func ReadTapeFromReader(r io.Reader) (*varphi.Tape, error) {
	br := bufio.NewReader(r)

	found := false
	for !found {
		b, err := br.ReadByte()
		if err == io.EOF {
			return nil, varphi.NoTallyError{}
		}
		if err != nil {
			return nil, err
		}
		switch b {
		case '1':
			found = true
		case '\n', '\r':
			return nil, varphi.NoTallyError{}
		case '0':
			// leading blank, keep scanning
		default:
			return nil, varphi.InvalidTapeCharacterError{ASCII: b}
		}
	}

	symbols := []varphi.Symbol{varphi.Tally}
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch b {
		case '\n', '\r':
			return varphi.NewTapeFromSymbols(symbols), nil
		case '0':
			symbols = append(symbols, varphi.Blank)
		case '1':
			symbols = append(symbols, varphi.Tally)
		default:
			return nil, varphi.InvalidTapeCharacterError{ASCII: b}
		}
	}
	return varphi.NewTapeFromSymbols(symbols), nil
}
