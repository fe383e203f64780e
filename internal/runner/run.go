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
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

// step runs m to completion, calling onStep after every successful
// transition. It returns once m.Step reports varphi.ErrHalted, or the
// first unexpected error.
func step(m *varphi.Machine, onStep func()) error {
	for {
		if _, err := m.Step(); err != nil {
			if errors.Is(err, varphi.ErrHalted) {
				return nil
			}
			return err
		}
		if onStep != nil {
			onStep()
		}
	}
}

// RunPlain reads a tape from in, runs program to completion, and writes
// the final tape (with no surrounding text) to out.
func RunPlain(program *varphi.Program, in io.Reader, out io.Writer) error {
	tape, err := ReadTapeFromReader(in)
	if err != nil {
		return err
	}
	m, err := varphi.NewMachine(program, tape, varphi.NewRandChooser())
	if err != nil {
		return err
	}
	if err := step(m, nil); err != nil {
		return err
	}
	fmt.Fprintln(out, tape.Render())
	return nil
}

// RunWithPrompts is RunPlain with "Input Tape: "/"Output Tape: " framing
// prompts around the run.
func RunWithPrompts(program *varphi.Program, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Input Tape: ")
	tape, err := ReadTapeFromReader(in)
	if err != nil {
		return err
	}
	m, err := varphi.NewMachine(program, tape, varphi.NewRandChooser())
	if err != nil {
		return err
	}
	if err := step(m, nil); err != nil {
		return err
	}
	fmt.Fprintf(out, "Output Tape: %s\n", tape.Render())
	return nil
}

// RunWithComplexity is RunPlain with the final tape labelled "Output Tape: ",
// plus a trailing step count and a count of distinct tape cells the run
// ever touched.
func RunWithComplexity(program *varphi.Program, in io.Reader, out io.Writer) error {
	tape, err := ReadTapeFromReader(in)
	if err != nil {
		return err
	}
	m, err := varphi.NewMachine(program, tape, varphi.NewRandChooser())
	if err != nil {
		return err
	}
	steps := 0
	if err := step(m, func() { steps++ }); err != nil {
		return err
	}
	lo, hi := tape.Bounds()
	fmt.Fprintf(out, "Output Tape: %s\n", tape.Render())
	fmt.Fprintf(out, "Number of Steps: %d\n", steps)
	fmt.Fprintf(out, "Number of Tape Cells Accessed: %d\n", hi-lo+1)
	return nil
}

// RunDebugTerminal runs program interactively: before every step it prints
// the current state name and a DebugView of the tape, then blocks on in
// for a single byte (any byte, typically ENTER) before applying the next
// transition. It reports the final tape, step count, and accessed-cell
// count once the machine halts.
func RunDebugTerminal(program *varphi.Program, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Input Tape: ")
	br := bufio.NewReader(in)
	tape, err := ReadTapeFromReader(br)
	if err != nil {
		return err
	}
	m, err := varphi.NewMachine(program, tape, varphi.NewRandChooser())
	if err != nil {
		return err
	}

	steps := 0
	for {
		name, _ := program.StateName(m.State)
		fmt.Fprintf(out, "State:  %s\n", name)
		fmt.Fprintf(out, "Tape:  %s\n", varphi.DebugView(tape, m.Head))
		fmt.Fprintln(out, "Press ENTER to step...")
		if _, err := br.ReadByte(); err != nil && err != io.EOF {
			return err
		}
		if _, err := m.Step(); err != nil {
			if errors.Is(err, varphi.ErrHalted) {
				break
			}
			return err
		}
		steps++
	}

	lo, hi := tape.Bounds()
	fmt.Fprintf(out, "Output Tape: %s\n", tape.Render())
	fmt.Fprintf(out, "Number of Steps: %d\n", steps)
	fmt.Fprintf(out, "Number of Tape Cells Accessed: %d\n", hi-lo+1)
	return nil
}
