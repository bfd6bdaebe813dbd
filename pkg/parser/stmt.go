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

// parseBlock parses a brace-delimited statement sequence, consuming the
// opening '{' itself.  Used for if/else bodies and nested INITIAL blocks,
// where pass 2 has not already consumed the brace on the caller's behalf.
func (p *Parser) parseBlock(nested bool) (*ast.BlockExpr, error) {
	loc := p.peek().Location

	if _, err := p.expect(lex.LBRACE); err != nil {
		return nil, err
	}

	return p.parseBlockBody(loc, nested)
}

// parseBlockBody parses statements up to (and including) a closing '}',
// assuming the opening brace was already consumed by the caller -- the
// shape pass 2 needs when rewinding directly onto a procedural block's
// body, whose leading '{' was consumed and discarded back in pass 1.
func (p *Parser) parseBlockBody(loc source.Location, nested bool) (*ast.BlockExpr, error) {
	stmts := []ast.Expr{}

	for p.peekKind() != lex.RBRACE && p.peekKind() != lex.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(lex.RBRACE); err != nil {
		return nil, err
	}

	return ast.NewBlockExpr(loc, stmts, nested), nil
}

// parseStatement dispatches on the lookahead token to the statement form it
// introduces, falling back to a line expression (spec §4.4's statement
// grammar).
func (p *Parser) parseStatement() (ast.Expr, error) {
	switch p.peekKind() {
	case lex.KW_LOCAL:
		return p.parseLocal()
	case lex.KW_SOLVE:
		return p.parseSolve()
	case lex.KW_CONDUCTANCE:
		return p.parseConductance()
	case lex.KW_IF:
		return p.parseIf()
	case lex.KW_INITIAL:
		loc := p.get().Location
		body, err := p.parseBlock(true)
		if err != nil {
			return nil, err
		}

		return ast.NewInitialExpr(loc, body), nil
	case lex.KW_CONSERVE:
		return p.parseConserve()
	case lex.TILDE:
		return p.parseReaction()
	default:
		return p.parseLineExpression()
	}
}

// parseLocal implements "LOCAL name (, name)*"; a trailing comma with no
// following identifier, and a name repeated within the same declaration,
// are both rejected (spec §4.4's LOCAL edge cases).
func (p *Parser) parseLocal() (*ast.LocalDecl, error) {
	loc := p.get().Location // LOCAL

	seen := map[string]bool{}

	first, err := p.expectName()
	if err != nil {
		return nil, err
	}

	names := []string{first.Spelling}
	seen[first.Spelling] = true

	for p.peekKind() == lex.COMMA {
		commaTok := p.get()

		if !p.peekIsName() {
			return nil, p.errorf(commaTok.Location, "trailing comma in LOCAL declaration")
		}

		name, err := p.expectName()
		if err != nil {
			return nil, err
		}

		if seen[name.Spelling] {
			return nil, p.errorf(name.Location, "duplicate LOCAL name %q", name.Spelling)
		}

		seen[name.Spelling] = true
		names = append(names, name.Spelling)
	}

	return ast.NewLocalDecl(loc, names), nil
}

// parseSolve implements "SOLVE name (METHOD (cnexp|sparse))?".
func (p *Parser) parseSolve() (*ast.SolveExpr, error) {
	loc := p.get().Location // SOLVE

	target, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	method := ast.MethodNone

	if p.peekKind() == lex.KW_METHOD {
		p.get()

		tok := p.peek()

		switch tok.Kind {
		case lex.KW_CNEXP:
			p.get()

			method = ast.MethodCnexp
		case lex.KW_SPARSE:
			p.get()

			method = ast.MethodSparse
		default:
			return nil, p.errorf(tok.Location, "expected cnexp or sparse after METHOD")
		}
	}

	return ast.NewSolveExpr(loc, target.Spelling, method), nil
}

// parseConductance implements "CONDUCTANCE name (USEION ion)?"; with no
// USEION clause the conductance is categorised as nonspecific (spec §4.4).
func (p *Parser) parseConductance() (*ast.ConductanceExpr, error) {
	loc := p.get().Location // CONDUCTANCE

	variable, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if p.peekKind() != lex.KW_USEION {
		return ast.NewConductanceExpr(loc, variable.Spelling, "", ast.IonNonspecific), nil
	}

	p.get()

	ion, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	return ast.NewConductanceExpr(loc, variable.Spelling, ion.Spelling, ast.CategorizeIon(ion.Spelling)), nil
}

// parseIf implements "IF (cond) block (ELSE (IF ... | block))?".  An
// "else if" is represented by recursing into parseIf again and hanging the
// result straight off False, so a chain of else-ifs nests IfExprs rather
// than flattening into a list (spec §4.4).
func (p *Parser) parseIf() (*ast.IfExpr, error) {
	loc := p.get().Location // IF

	if _, err := p.expect(lex.LPAREN); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN); err != nil {
		return nil, err
	}

	trueBranch, err := p.parseBlock(true)
	if err != nil {
		return nil, err
	}

	var falseBranch ast.Expr

	if p.peekKind() == lex.KW_ELSE {
		p.get()

		if p.peekKind() == lex.KW_IF {
			nested, err := p.parseIf()
			if err != nil {
				return nil, err
			}

			falseBranch = nested
		} else {
			block, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}

			falseBranch = block
		}
	}

	return ast.NewIfExpr(loc, cond, trueBranch, falseBranch), nil
}
