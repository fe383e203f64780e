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

package runner

import (
	"strings"
	"testing"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

func TestReadTapeFromReaderSkipsLeadingBlanks(t *testing.T) {
	tape, err := ReadTapeFromReader(strings.NewReader("00101\n"))
	if err != nil {
		t.Fatalf("ReadTapeFromReader: %v", err)
	}
	if got, want := tape.Render(), "101"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestReadTapeFromReaderTerminators(t *testing.T) {
	for _, tt := range []struct {
		name, in, want string
	}{
		{"newline", "11\n", "11"},
		{"cr alone", "11\r", "11"},
		{"eof", "11", "11"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tape, err := ReadTapeFromReader(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadTapeFromReader: %v", err)
			}
			if got := tape.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadTapeFromReaderNoTally(t *testing.T) {
	for _, in := range []string{"\n", "000\n", ""} {
		_, err := ReadTapeFromReader(strings.NewReader(in))
		if _, ok := err.(varphi.NoTallyError); !ok {
			t.Errorf("ReadTapeFromReader(%q) err = %v, want NoTallyError", in, err)
		}
	}
}

func TestReadTapeFromReaderInvalidCharacter(t *testing.T) {
	_, err := ReadTapeFromReader(strings.NewReader("1a\n"))
	bad, ok := err.(varphi.InvalidTapeCharacterError)
	if !ok {
		t.Fatalf("ReadTapeFromReader err = %v, want InvalidTapeCharacterError", err)
	}
	if bad.ASCII != 'a' {
		t.Errorf("InvalidTapeCharacterError.ASCII = %q, want 'a'", bad.ASCII)
	}
}
