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

// Package loader reads a transition-table source file from disk and
// compiles it into a *varphi.Program.
package loader

import (
	"fmt"
	"os"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

// FromFile reads and compiles the program at path. The returned error is
// either an I/O error wrapped with fmt.Errorf, or a *varphi.SyntaxError
// from the compiler.
func FromFile(path string) (*varphi.Program, error) {
	return FromFileDebug(path, false)
}

// FromFileDebug is FromFile with the lexer's state/token trace optionally
// written to os.Stderr as the file is compiled; see varphi.ParseDebug.
func FromFileDebug(path string, debug bool) (*varphi.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return varphi.CompileDebug(string(src), path, debug)
}
