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

import "testing"

func TestTapeDefaultsBlank(t *testing.T) {
	tape := NewTape()
	if s := tape.Get(5); s != Blank {
		t.Errorf("Get(5) = %v, want Blank", s)
	}
	if s := tape.Get(-5); s != Blank {
		t.Errorf("Get(-5) = %v, want Blank", s)
	}
}

func TestTapeBoundsMonotonic(t *testing.T) {
	tape := NewTape()
	lo, hi := tape.Bounds()
	if lo != 0 || hi != 0 {
		t.Fatalf("initial bounds = %d,%d, want 0,0", lo, hi)
	}
	tape.Set(3, Tally)
	lo, hi = tape.Bounds()
	if lo != 0 || hi != 3 {
		t.Errorf("bounds after Set(3) = %d,%d, want 0,3", lo, hi)
	}
	tape.Set(-2, Tally)
	lo, hi = tape.Bounds()
	if lo != -2 || hi != 3 {
		t.Errorf("bounds after Set(-2) = %d,%d, want -2,3", lo, hi)
	}
	// Reading cells already inside the touched range leaves the bounds as
	// they are: they never narrow.
	tape.Get(-2)
	tape.Get(3)
	lo2, hi2 := tape.Bounds()
	if lo2 != lo || hi2 != hi {
		t.Errorf("bounds narrowed after reads: %d,%d -> %d,%d", lo, hi, lo2, hi2)
	}
}

func TestTapeRenderStability(t *testing.T) {
	tape := NewTape()
	tape.Set(0, Tally)
	before := tape.Render()
	tape.Get(2) // widen bounds without writing
	after := tape.Render()
	if before == after {
		t.Fatalf("Render did not widen after Get(2): got %q both times", before)
	}
	if after != "100" {
		t.Errorf("Render() = %q, want %q", after, "100")
	}
}

func TestTapeFromSymbols(t *testing.T) {
	tape := NewTapeFromSymbols([]Symbol{Tally, Tally, Blank, Tally})
	if got, want := tape.Render(), "1101"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestHeadReadWriteMove(t *testing.T) {
	tape := NewTape()
	head := NewHead(tape)
	head.Write(Tally)
	if s := head.Read(); s != Tally {
		t.Errorf("Read() = %v, want Tally", s)
	}
	head.Right()
	if head.Index() != 1 {
		t.Errorf("Index() = %d, want 1", head.Index())
	}
	if s := head.Read(); s != Blank {
		t.Errorf("Read() at cell 1 = %v, want Blank", s)
	}
	head.Left()
	head.Left()
	if head.Index() != -1 {
		t.Errorf("Index() = %d, want -1", head.Index())
	}
}

func TestDebugView(t *testing.T) {
	tape := NewTapeFromSymbols([]Symbol{Tally, Blank, Tally})
	head := NewHead(tape)
	head.Right()
	if got, want := DebugView(tape, head), "{1}[0]1"; got != want {
		t.Errorf("DebugView = %q, want %q", got, want)
	}
}

func TestDebugViewHeadOnZero(t *testing.T) {
	tape := NewTapeFromSymbols([]Symbol{Tally})
	head := NewHead(tape)
	if got, want := DebugView(tape, head), "[{1}]"; got != want {
		t.Errorf("DebugView = %q, want %q", got, want)
	}
}

func TestDebugViewHeadPastTouched(t *testing.T) {
	tape := NewTapeFromSymbols([]Symbol{Tally})
	head := NewHead(tape)
	head.Right()
	head.Right()
	if got, want := DebugView(tape, head), "{1}0[0]"; got != want {
		t.Errorf("DebugView = %q, want %q", got, want)
	}
}
