// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/lex"
	"github.com/cpehle/arbor/pkg/source"
)

// Parser drives the two-pass construction of a Module from source text. It
// holds its Lexer by composition -- forwarding Peek/Get/Location to it --
// rather than embedding it, so that Parser can freely swap in a fresh
// rewound Lexer for pass 2 without disturbing its own exported surface.
type Parser struct {
	src    string
	lexer  *lex.Lexer
	module *ast.Module
	opts   Options

	// procedural holds every procedural-block symbol registered by pass 1,
	// in declaration order, so pass 2 can visit exactly these without
	// walking the full (variables-and-all) symbol table.
	procedural []ast.Symbol

	// declared accumulates STATE/PARAMETER/ASSIGNED variable declarations
	// during pass 1, for addVariablesToSymbols to install once the whole
	// file has been scanned.
	declared []declaredVar
}

// New constructs a Parser that will build a fresh Module from src.
func New(src, filename string, opts Options) *Parser {
	return &Parser{
		src:    src,
		lexer:  lex.NewLexer(src),
		module: ast.NewModule(src, filename),
		opts:   opts,
	}
}

// newBare constructs a Parser with no attached Module, for the standalone
// grammar entry points used by tests that exercise one production in
// isolation.
func newBare(text string) *Parser {
	return &Parser{src: text, lexer: lex.NewLexer(text)}
}

// ParseModule parses src in its entirety and returns the resulting Module.
// Diagnostics are recorded on the module rather than returned; inspect
// Module.Status/Errors/FirstError.
func ParseModule(src, filename string, opts Options) *ast.Module {
	p := New(src, filename, opts)
	return p.Parse()
}

// Parse runs pass 1 (descriptive blocks, symbol table) followed, if pass 1
// completed without error, by pass 2 (procedural block bodies).  Per spec
// §7, pass 2 only ever runs against a symbol table pass 1 believes is
// sound: attempting to parse bodies against a table with unresolved
// duplicate-declaration errors would only produce confusing cascades.
func (p *Parser) Parse() *ast.Module {
	log := p.opts.logger()
	log.WithField("filename", p.module.Filename()).Debug("parser: pass 1 starting")

	p.pass1()
	p.addVariablesToSymbols()

	if p.module.Status() != ast.StatusHappy {
		log.WithField("errors", len(p.module.Errors())).Warn("parser: pass 1 recorded errors, skipping pass 2")
		return p.module
	}

	log.Debug("parser: pass 2 starting")
	p.pass2()

	return p.module
}

// ----------------------------------------------------------------------------
// Lexer forwarding
// ----------------------------------------------------------------------------

func (p *Parser) peek() lex.Token       { return p.lexer.Peek() }
func (p *Parser) peekKind() lex.TokenKind { return p.lexer.Peek().Kind }
func (p *Parser) get() lex.Token        { return p.lexer.Get() }
func (p *Parser) location() source.Location { return p.lexer.Location() }

// expect consumes the next token if it has the given kind, else returns a
// syntax error without consuming anything.  It manufactures the "expected X
// but found Y" diagnostic for a required token kind (spec §7); expectName
// does the same for declared names.
func (p *Parser) expect(kind lex.TokenKind) (lex.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf(tok.Location, "expected %s but found %s", kind, tok.Kind)
	}

	return p.get(), nil
}

// expectName consumes an IDENTIFIER, or an intrinsic keyword (min, max, exp,
// log, abs, cnexp, sparse) used as a declared name rather than a call, since
// spec §9's open question makes these keywords only within
// expression-primary position: everywhere else -- LOCAL, STATE, PARAMETER
// and ASSIGNED lists -- their spelling is just another identifier.
func (p *Parser) expectName() (lex.Token, error) {
	tok := p.peek()
	if tok.Kind == lex.IDENTIFIER || lex.IsIntrinsic(tok.Kind) || tok.Kind == lex.KW_CNEXP || tok.Kind == lex.KW_SPARSE {
		return p.get(), nil
	}

	return tok, p.errorf(tok.Location, "expected %s but found %s", lex.IDENTIFIER, tok.Kind)
}

// peekIsName reports whether the token at the cursor would be accepted by
// expectName, without consuming it.
func (p *Parser) peekIsName() bool {
	kind := p.peekKind()
	return kind == lex.IDENTIFIER || lex.IsIntrinsic(kind) || kind == lex.KW_CNEXP || kind == lex.KW_SPARSE
}

func (p *Parser) errorf(loc source.Location, format string, args ...any) error {
	return source.NewSyntaxError(loc, format, args...)
}

func (p *Parser) recordError(err error) {
	se, ok := err.(*source.SyntaxError)
	if !ok {
		se = source.NewSyntaxError(p.location(), "%s", err.Error())
	}

	p.module.AddError(*se)
}

// ----------------------------------------------------------------------------
// Structural helpers shared by both passes
// ----------------------------------------------------------------------------

// skipParenGroup skips a balanced "(...)" group if one is present at the
// cursor, without interpreting its contents.  Used in pass 1 to discard
// PROCEDURE/FUNCTION parameter lists, which this front end's data model
// does not retain (spec §3.3 lists no parameter fields on Procedure or
// Function).
func (p *Parser) skipParenGroup() error {
	if p.peekKind() != lex.LPAREN {
		return nil
	}

	depth := 0

	for {
		tok := p.get()

		switch tok.Kind {
		case lex.LPAREN:
			depth++
		case lex.RPAREN:
			depth--
		case lex.EOF:
			return p.errorf(tok.Location, "unterminated parameter list")
		}

		if depth == 0 {
			return nil
		}
	}
}

// skipBalancedBraces consumes tokens up to and including the '}' that
// matches an already-consumed '{', counting nested braces but never
// interpreting their contents -- the pass 1 "skip the procedural block
// body" behaviour of spec §4.2.
func (p *Parser) skipBalancedBraces() error {
	depth := 1

	for depth > 0 {
		tok := p.get()

		switch tok.Kind {
		case lex.LBRACE:
			depth++
		case lex.RBRACE:
			depth--
		case lex.EOF:
			return p.errorf(tok.Location, "unbalanced braces")
		}
	}

	return nil
}

// parseIdentList parses a run of identifiers, comma-separated or merely
// space-separated (both forms appear in mechanism source in the wild), and
// returns their spellings in order.
func (p *Parser) parseIdentList() []string {
	var names []string

	for p.peekKind() == lex.IDENTIFIER {
		names = append(names, p.get().Spelling)

		if p.peekKind() == lex.COMMA {
			p.get()
		}
	}

	return names
}

// parseUnitText parses a "(...)" group and reconstructs its contents by
// concatenating token spellings, without a separating space.  Unit
// descriptors ("mV", "mA/cm2") are retained for display but never
// dimensionally interpreted by this front end (spec §4.2's UNITS block is
// likewise parsed-but-uninterpreted).
func (p *Parser) parseUnitText() (string, error) {
	if _, err := p.expect(lex.LPAREN); err != nil {
		return "", err
	}

	var text string

	depth := 1

	for depth > 0 {
		tok := p.get()

		switch tok.Kind {
		case lex.LPAREN:
			depth++
		case lex.RPAREN:
			depth--
		case lex.EOF:
			return "", p.errorf(tok.Location, "unterminated unit expression")
		}

		if depth > 0 {
			text += tok.Spelling
		}
	}

	return text, nil
}
