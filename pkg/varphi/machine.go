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
	"math/rand"
	"time"
)

// Chooser picks which of n candidate instructions to follow when a
// (state, symbol) key has more than one. It is an explicit dependency of
// Machine, rather than a process-global random source, so that tests can
// fix a seed or a sequence of choices without touching package state.
type Chooser interface {
	// Choose returns an index in [0, n). n is always >= 1.
	Choose(n int) int
}

// RandChooser is the runtime default Chooser: uniform random choice.
type RandChooser struct {
	rnd *rand.Rand
}

// NewRandChooser returns a RandChooser seeded from the current time.
func NewRandChooser() *RandChooser {
	return &RandChooser{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Choose implements Chooser.
func (c *RandChooser) Choose(n int) int {
	if n <= 1 {
		return 0
	}
	return c.rnd.Intn(n)
}

// FixedChooser always picks the same candidate index, clamped to the
// available range. It is used by tests that need a deterministic machine.
type FixedChooser struct {
	Index int
}

// Choose implements Chooser.
func (c FixedChooser) Choose(n int) int {
	if c.Index >= n {
		return n - 1
	}
	return c.Index
}

// SeqChooser replays a fixed sequence of choice indices, one per call, and
// falls back to index 0 once the sequence is exhausted. It is used by
// tests that need to drive a nondeterministic machine down a specific path
// across multiple steps.
type SeqChooser struct {
	seq []int
	at  int
}

// NewSeqChooser returns a SeqChooser that replays seq in order.
func NewSeqChooser(seq ...int) *SeqChooser {
	return &SeqChooser{seq: seq}
}

// Choose implements Chooser.
func (c *SeqChooser) Choose(n int) int {
	idx := 0
	if c.at < len(c.seq) {
		idx = c.seq[c.at]
		c.at++
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// Machine is a running instance of a Program against a Tape. Construct one
// per run with NewMachine; Program is immutable and may be shared across
// many Machines (though nothing here runs two Machines concurrently against
// the same Tape).
type Machine struct {
	Program *Program
	Tape    *Tape
	Head    *Head
	State   StateID

	choose Chooser
	armed  *Instruction
}

// NewMachine constructs a Machine over program and tape, starting at
// program's initial state. It returns a DomainError if program has no
// initial state (i.e., program is empty).
func NewMachine(program *Program, tape *Tape, choose Chooser) (*Machine, error) {
	initial, ok := program.Initial()
	if !ok {
		return nil, DomainError{}
	}
	return &Machine{
		Program: program,
		Tape:    tape,
		Head:    NewHead(tape),
		State:   initial,
		choose:  choose,
	}, nil
}

// candidates returns the instruction list for the machine's current
// (state, symbol) key.
func (m *Machine) candidates() []Instruction {
	return m.Program.Instructions(m.State, m.Head.Read())
}

func (m *Machine) apply(inst Instruction) {
	m.State = inst.Next
	m.Head.Write(inst.Write)
	if inst.Move == Left {
		m.Head.Left()
	} else {
		m.Head.Right()
	}
}

// Step executes one transition: it reads the current cell, selects an
// instruction (via the machine's Chooser if more than one matches), and
// applies it. It returns ErrHalted, wrapping nothing further, if no rule
// matches the current (state, symbol).
func (m *Machine) Step() (Instruction, error) {
	list := m.candidates()
	if len(list) == 0 {
		return Instruction{}, ErrHalted
	}
	inst := list[m.choose.Choose(len(list))]
	m.apply(inst)
	return inst, nil
}

// ArmNext computes the instruction Step would apply next, without applying
// it, and remembers it as the machine's armed instruction. It exists for
// the DAP driver, which must report the line about to execute before
// mutating state. It returns an ArmingViolation if an instruction is
// already armed, or ErrHalted if no rule matches.
func (m *Machine) ArmNext() (Instruction, error) {
	if m.armed != nil {
		return Instruction{}, ArmingViolation{Op: "arm"}
	}
	list := m.candidates()
	if len(list) == 0 {
		return Instruction{}, ErrHalted
	}
	inst := list[m.choose.Choose(len(list))]
	m.armed = &inst
	return inst, nil
}

// Commit applies the instruction previously computed by ArmNext and clears
// it. One ArmNext; Commit pair is observationally identical to one Step
// given the same Chooser outcome. It returns an ArmingViolation if no
// instruction is armed.
func (m *Machine) Commit() error {
	if m.armed == nil {
		return ArmingViolation{Op: "commit"}
	}
	inst := *m.armed
	m.armed = nil
	m.apply(inst)
	return nil
}

// Armed reports the currently armed instruction, if any.
func (m *Machine) Armed() (Instruction, bool) {
	if m.armed == nil {
		return Instruction{}, false
	}
	return *m.armed, true
}
