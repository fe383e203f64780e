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

import "strings"

// Tape is a bi-infinite mapping from integer cell indices to Symbol,
// defaulting to Blank for any index never written. It is backed by two
// growing slices, one for non-negative indices and one for negative
// indices (cell -1 is neg[0], cell -2 is neg[1], ...), which keeps
// sequential head movement — the dominant access pattern — cache-friendly
// without the bookkeeping of a sparse map.
type Tape struct {
	pos []Symbol
	neg []Symbol

	minTouched int
	maxTouched int
}

// NewTape returns an all-blank tape.
func NewTape() *Tape {
	return &Tape{}
}

// NewTapeFromSymbols returns a tape whose cells 0, 1, 2, ... hold syms in
// order; all other cells are blank.
func NewTapeFromSymbols(syms []Symbol) *Tape {
	t := NewTape()
	for i, s := range syms {
		t.Set(i, s)
	}
	return t
}

func (t *Tape) touch(i int) {
	if i < t.minTouched {
		t.minTouched = i
	}
	if i > t.maxTouched {
		t.maxTouched = i
	}
}

// Get returns the symbol at cell i, widening the tape's touched bounds to
// include i. A cell that has never been written reads as Blank.
func (t *Tape) Get(i int) Symbol {
	t.touch(i)
	if i >= 0 {
		if i < len(t.pos) {
			return t.pos[i]
		}
		return Blank
	}
	j := -i - 1
	if j < len(t.neg) {
		return t.neg[j]
	}
	return Blank
}

// Set stores s at cell i, widening the tape's touched bounds to include i.
func (t *Tape) Set(i int, s Symbol) {
	t.touch(i)
	if i >= 0 {
		t.pos = growTo(t.pos, i+1)
		t.pos[i] = s
		return
	}
	j := -i - 1
	t.neg = growTo(t.neg, j+1)
	t.neg[j] = s
}

func growTo(s []Symbol, n int) []Symbol {
	for len(s) < n {
		s = append(s, Blank)
	}
	return s
}

// Bounds returns the smallest and largest cell index ever read or written.
// Both start at 0 before any access.
func (t *Tape) Bounds() (min, max int) {
	return t.minTouched, t.maxTouched
}

// Render returns the tape's cells over [min_touched, max_touched] as '0'
// and '1' characters.
func (t *Tape) Render() string {
	return t.render(t.minTouched, t.maxTouched)
}

func (t *Tape) render(lo, hi int) string {
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		if t.peek(i) == Tally {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// peek reads cell i without widening the touched bounds; used for
// rendering, which must not itself perturb min_touched/max_touched.
func (t *Tape) peek(i int) Symbol {
	if i >= 0 {
		if i < len(t.pos) {
			return t.pos[i]
		}
		return Blank
	}
	j := -i - 1
	if j < len(t.neg) {
		return t.neg[j]
	}
	return Blank
}

// Head holds the tape's read/write cursor.
type Head struct {
	tape  *Tape
	index int
}

// NewHead returns a Head positioned at cell 0 of tape.
func NewHead(tape *Tape) *Head {
	return &Head{tape: tape}
}

// Index returns the head's current cell index.
func (h *Head) Index() int { return h.index }

// Read returns the symbol at the head's current cell.
func (h *Head) Read() Symbol { return h.tape.Get(h.index) }

// Write stores s at the head's current cell.
func (h *Head) Write(s Symbol) { h.tape.Set(h.index, s) }

// Left moves the head one cell to the left.
func (h *Head) Left() { h.index-- }

// Right moves the head one cell to the right.
func (h *Head) Right() { h.index++ }

// DebugView renders the tape over [min(min_touched, head.index),
// max(max_touched, head.index)], wrapping the cell at original index 0 in "{}" and the
// cell at the head's current index in "[]" (nesting as "[{c}]" if the head
// sits on cell 0).
func DebugView(t *Tape, h *Head) string {
	lo, hi := t.Bounds()
	if h.index > hi {
		hi = h.index
	}
	if h.index < lo {
		lo = h.index
	}
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		ch := byte('0')
		if t.peek(i) == Tally {
			ch = '1'
		}
		s := string(ch)
		if i == 0 {
			s = "{" + s + "}"
		}
		if i == h.index {
			s = "[" + s + "]"
		}
		b.WriteString(s)
	}
	return b.String()
}
