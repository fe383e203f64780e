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

// This file builds an immutable *Program out of the ParsedRule sequence
// Parse produces: it interns state names into StateIDs (resolving forward
// references in a single pass, since a rule may name a destination state
// before that state is ever a source), and assembles the per-(state,
// symbol) instruction lists, deduplicating exact repeats and preserving
// source order.

// Compile parses source and builds a Program from it in one step. path
// labels error messages and otherwise has no effect.
func Compile(source, path string) (*Program, error) {
	return CompileDebug(source, path, false)
}

// CompileDebug is Compile with the lexer's state/token trace optionally
// written to os.Stderr as parsing proceeds; see ParseDebug.
func CompileDebug(source, path string, debug bool) (*Program, error) {
	rules, err := ParseDebug(source, path, debug)
	if err != nil {
		return nil, err
	}
	return Build(rules), nil
}

// Build constructs a Program from an already-parsed rule sequence. Build is
// purely constructive: it never rejects a rule sequence, and does not check
// for unused states or unreachable rules.
func Build(rules []ParsedRule) *Program {
	p := &Program{
		index: make(map[string]StateID),
		rules: make(map[ruleKey][]Instruction),
	}

	intern := func(name string) StateID {
		if id, ok := p.index[name]; ok {
			return id
		}
		id := StateID(len(p.names))
		p.names = append(p.names, name)
		p.index[name] = id
		return id
	}

	for i, r := range rules {
		src := intern(r.QSrc)
		dst := intern(r.QDst)
		if i == 0 {
			p.initial = src
			p.hasInitial = true
		}

		inst := Instruction{Next: dst, Write: r.SigmaWrite, Move: r.Move, Line: r.Line}
		key := ruleKey{State: src, Read: r.SigmaRead}
		if !hasInstruction(p.rules[key], inst) {
			p.rules[key] = append(p.rules[key], inst)
		}
	}

	return p
}

func hasInstruction(list []Instruction, inst Instruction) bool {
	for _, existing := range list {
		if existing == inst {
			return true
		}
	}
	return false
}
