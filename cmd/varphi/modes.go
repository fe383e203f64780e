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

package main

import (
	"io"

	"github.com/varphi-lang/varphi/internal/runner"
	"github.com/varphi-lang/varphi/pkg/varphi"
)

// mode is one pluggable execution driver: a function that runs a compiled
// program to completion against a tape read from in, writing whatever that
// driver's output shape is to out. cmd/varphi selects exactly one mode per
// invocation based on its flags, the same registry-lookup pattern used to
// select an output formatter from a --format flag.
type mode struct {
	name string
	help string
	run  func(program *varphi.Program, in io.Reader, out io.Writer) error
}

var modes = map[string]*mode{}

func register(m *mode) {
	modes[m.name] = m
}

func init() {
	register(&mode{
		name: "plain",
		help: "run to completion, printing only the final tape",
		run:  runner.RunPlain,
	})
	register(&mode{
		name: "prompts",
		help: "run to completion, framing the tape with Input/Output Tape prompts",
		run:  runner.RunWithPrompts,
	})
	register(&mode{
		name: "complexity",
		help: "run to completion, additionally reporting step and cell-access counts",
		run:  runner.RunWithComplexity,
	})
	register(&mode{
		name: "debug",
		help: "step interactively over a terminal, printing state and tape before each step",
		run:  runner.RunDebugTerminal,
	})
}
