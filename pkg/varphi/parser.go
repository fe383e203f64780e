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

// This file implements Parse, which parses Varphi source text into a
// sequence of ParsedRule records. The grammar is flat:
//
//	program := (line NEWLINE*)* EOF
//	line    := STATE_ID TAPE_SYMBOL STATE_ID TAPE_SYMBOL DIRECTION
//
// The parser stops at the first syntax error, whether raised by the lexer
// (a malformed byte) or by itself (an unexpected token).

// ParsedRule is one five-tuple line, still in source form: state names have
// not yet been resolved to StateIDs. Line is the rule's 1-based source
// line, taken from its leading STATE_ID token.
type ParsedRule struct {
	QSrc       string
	SigmaRead  Symbol
	QDst       string
	SigmaWrite Symbol
	Move       Direction
	Line       int
}

// parser consumes tokens from a lexer with one token of lookahead.
type parser struct {
	lex    *lexer
	source string
	peeked *token
}

// Parse parses source into a sequence of ParsedRule records. path is used
// only to label error messages and has no effect on parsing. An empty (or
// all-comments-and-blank-lines) program parses successfully to a nil slice.
func Parse(source, path string) ([]ParsedRule, error) {
	return ParseDebug(source, path, false)
}

// ParseDebug is Parse with the lexer's state/token trace optionally written
// to os.Stderr as lexing proceeds. It exists for cmd/varphi's undocumented
// -lexdebug developer flag.
func ParseDebug(source, path string, debug bool) ([]ParsedRule, error) {
	p := &parser{lex: newLexer(source, path, debug), source: source}

	var rules []ParsedRule
	p.skipNewlines()
	for p.peek().kind != tokEOF {
		rule, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		p.skipNewlines()
	}
	if p.lex.err != nil {
		return nil, p.lex.err
	}
	return rules, nil
}

func (p *parser) next() token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.lex.NextToken()
}

func (p *parser) peek() token {
	if p.peeked == nil {
		t := p.lex.NextToken()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *parser) skipNewlines() {
	for p.peek().kind == tokNewline {
		p.next()
	}
}

// eofErr reports why the input ended early: the lexer's own SyntaxError if
// it stopped on a malformed byte, otherwise a generic unexpected-EOF error.
func (p *parser) eofErr() error {
	if p.lex.err != nil {
		return p.lex.err
	}
	return newSyntaxError(p.source, p.lex.line, p.lex.col+1, "unexpected end of file")
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind == tokEOF {
		return t, p.eofErr()
	}
	if t.kind != k {
		return t, newSyntaxError(p.source, t.line, t.col, "expected %s, found %s %q", what, t.kind, t.text)
	}
	return t, nil
}

func (p *parser) parseLine() (ParsedRule, error) {
	var r ParsedRule

	qSrc, err := p.expect(tokStateID, "a state name")
	if err != nil {
		return r, err
	}
	r.Line = qSrc.line
	r.QSrc = qSrc.text

	read, err := p.expect(tokSymbol, "a tape symbol ('0' or '1')")
	if err != nil {
		return r, err
	}
	r.SigmaRead = symbolFromToken(read)

	qDst, err := p.expect(tokStateID, "a state name")
	if err != nil {
		return r, err
	}
	r.QDst = qDst.text

	write, err := p.expect(tokSymbol, "a tape symbol ('0' or '1')")
	if err != nil {
		return r, err
	}
	r.SigmaWrite = symbolFromToken(write)

	dir, err := p.expect(tokDirection, "a direction ('L' or 'R')")
	if err != nil {
		return r, err
	}
	r.Move = directionFromToken(dir)

	if t := p.peek(); t.kind != tokNewline && t.kind != tokEOF {
		return r, newSyntaxError(p.source, t.line, t.col, "expected end of line, found %s %q", t.kind, t.text)
	}
	return r, nil
}

func symbolFromToken(t token) Symbol {
	if t.text == "1" {
		return Tally
	}
	return Blank
}

func directionFromToken(t token) Direction {
	if t.text == "R" {
		return Right
	}
	return Left
}
