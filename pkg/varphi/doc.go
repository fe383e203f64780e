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

// Package varphi implements the Varphi language: a lexer and parser that
// turn source text into a transition table, and a single-tape Turing
// machine that executes it.
//
// A Varphi program is a sequence of five-tuple lines:
//
//	q_src sigma_read q_dst sigma_write direction
//
// where sigma is one of the tape symbols '0' (blank) or '1' (tally), and
// direction is 'L' or 'R'. At its simplest, package varphi is used through
// Compile, which parses source text and returns a *Program:
//
//	prog, err := varphi.Compile(source, "add1.var")
//	if err != nil {
//	    // err is a *SyntaxError with line, column, and a source excerpt.
//	}
//
// A Program is immutable once built. Running it requires a Tape and a
// Machine:
//
//	m, err := varphi.NewMachine(prog, tape, varphi.NewRandChooser())
//	if err != nil {
//	    // err is a DomainError: prog has no initial state.
//	}
//	for {
//	    if _, err := m.Step(); errors.Is(err, varphi.ErrHalted) {
//	        break
//	    }
//	}
package varphi
