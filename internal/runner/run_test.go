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
	"bytes"
	"strings"
	"testing"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

const incrementProgram = "q0 1 q0 1 R\nq0 0 qf 1 L\n"

func mustCompile(t *testing.T, src string) *varphi.Program {
	t.Helper()
	p, err := varphi.Compile(src, "test")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return p
}

func TestRunPlain(t *testing.T) {
	p := mustCompile(t, incrementProgram)
	var out bytes.Buffer
	if err := RunPlain(p, strings.NewReader("11\n"), &out); err != nil {
		t.Fatalf("RunPlain: %v", err)
	}
	if got, want := out.String(), "111\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunWithPrompts(t *testing.T) {
	p := mustCompile(t, incrementProgram)
	var out bytes.Buffer
	if err := RunWithPrompts(p, strings.NewReader("11\n"), &out); err != nil {
		t.Fatalf("RunWithPrompts: %v", err)
	}
	want := "Input Tape: Output Tape: 111\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunWithComplexity(t *testing.T) {
	p := mustCompile(t, incrementProgram)
	var out bytes.Buffer
	if err := RunWithComplexity(p, strings.NewReader("11\n"), &out); err != nil {
		t.Fatalf("RunWithComplexity: %v", err)
	}
	want := "Output Tape: 111\nNumber of Steps: 3\nNumber of Tape Cells Accessed: 3\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunDebugTerminal(t *testing.T) {
	p := mustCompile(t, incrementProgram)
	var out bytes.Buffer
	// "11\n" is the tape; the rest are ENTER presses, one per prompt: three
	// for the three steps, plus one for the prompt printed before the final
	// attempt that finds the machine halted.
	in := strings.NewReader("11\n\n\n\n\n")
	if err := RunDebugTerminal(p, in, &out); err != nil {
		t.Fatalf("RunDebugTerminal: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Input Tape: ",
		"State:  q0\n",
		"Tape:  [{1}]1\n",
		"Press ENTER to step...",
		"Output Tape: 111\n",
		"Number of Steps: 3\n",
		"Number of Tape Cells Accessed: 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; full output:\n%s", want, got)
		}
	}
}

func TestRunPlainPropagatesNoTally(t *testing.T) {
	p := mustCompile(t, incrementProgram)
	var out bytes.Buffer
	err := RunPlain(p, strings.NewReader("\n"), &out)
	if _, ok := err.(varphi.NoTallyError); !ok {
		t.Errorf("RunPlain err = %v, want NoTallyError", err)
	}
}

func TestRunPlainDomainErrorOnEmptyProgram(t *testing.T) {
	p := mustCompile(t, "")
	var out bytes.Buffer
	err := RunPlain(p, strings.NewReader("1\n"), &out)
	if _, ok := err.(varphi.DomainError); !ok {
		t.Errorf("RunPlain on empty program: err = %v, want DomainError", err)
	}
}
