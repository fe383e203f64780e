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

// Program varphi runs a transition-table source file as a single-tape,
// two-symbol Turing machine, either to completion against an input tape
// read from standard input, or under the control of a Debug Adapter
// Protocol client.
//
// Usage: varphi [-d | -a | -c | -p] [-v] FILE
//
// The CLI argument-parsing surface itself is intentionally thin: beyond
// flag registration, the only argument check is that exactly one FILE is
// given.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/varphi-lang/varphi/internal/loader"
	"github.com/varphi-lang/varphi/pkg/dap"
)

// version is the CLI's reported version string. There is no release
// process yet that stamps this at build time, so it stays a literal.
const version = "0.1.0"

var stop = os.Exit

func main() {
	var (
		debugTerminal bool
		debugAdapter  bool
		complexity    bool
		prompts       bool
		showVersion   bool
		lexDebug      bool
	)
	getopt.BoolVarLong(&debugTerminal, "debug", 'd', "step interactively over a terminal")
	getopt.BoolVarLong(&debugAdapter, "debug-adapter", 'a', "speak the Debug Adapter Protocol over stdin/stdout")
	getopt.BoolVarLong(&complexity, "complexity", 'c', "report step and tape-cell-access counts")
	getopt.BoolVarLong(&prompts, "enable-prompts", 'p', "frame the tape with Input/Output Tape prompts")
	getopt.BoolVarLong(&showVersion, "version", 'v', "print the version and exit")
	getopt.BoolVarLong(&lexDebug, "lexdebug", 0, "") // undocumented: trace lexer states/tokens to stderr
	getopt.SetParameters("FILE")
	getopt.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "varphi: exactly one FILE argument is required")
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}
	path := args[0]

	program, err := loader.FromFileDebug(path, lexDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
		return
	}

	if debugAdapter {
		sess := dap.NewSession(program, dap.NewFrameReader(os.Stdin), dap.NewFrameWriter(os.Stdout))
		if err := sess.Serve(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		return
	}

	name := selectedMode(debugTerminal, complexity, prompts)
	if err := modes[name].run(program, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
}

// selectedMode resolves the flag combination to a mode name. debugTerminal
// takes precedence over complexity over prompts, matching the order the
// flags are declared above; declaring more than one is not rejected, it
// just picks the most specific driver.
func selectedMode(debugTerminal, complexity, prompts bool) string {
	switch {
	case debugTerminal:
		return "debug"
	case complexity:
		return "complexity"
	case prompts:
		return "prompts"
	default:
		return "plain"
	}
}
