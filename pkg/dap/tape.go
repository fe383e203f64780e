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

package dap

import (
	"strings"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

// TapeFromString builds a Tape from a launch request's "tape" argument.
// Unlike ReadTapeFromReader, which only trims leading blanks (it is
// reading a byte stream with no natural end other than the terminator),
// a launch argument is a complete string, so both leading and trailing
// '0's are trimmed before the tally check — mirroring how this was ported
// from a single get_tape_from_string helper that received the whole
// string at once.
func TapeFromString(s string) (*varphi.Tape, error) {
	trimmed := strings.Trim(s, "0")
	if trimmed == "" || trimmed[0] != '1' {
		return nil, varphi.NoTallyError{}
	}
	syms := make([]varphi.Symbol, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '0':
			syms[i] = varphi.Blank
		case '1':
			syms[i] = varphi.Tally
		default:
			return nil, varphi.InvalidTapeCharacterError{ASCII: trimmed[i]}
		}
	}
	return varphi.NewTapeFromSymbols(syms), nil
}
