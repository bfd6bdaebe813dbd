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

// This file exposes one function per grammar production named in spec §6,
// each exercising a single rule of the grammar in isolation over a bare
// snippet of text -- the surface the test suite in this package drives
// directly, independent of a full two-pass Module parse.
package parser

import (
	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/lex"
)

// finished rejects trailing input the grammar rule under test did not
// consume, so a standalone entry point cannot silently ignore garbage
// following a well-formed snippet.
func (p *Parser) finished() error {
	if p.peekKind() != lex.EOF {
		tok := p.peek()
		return p.errorf(tok.Location, "unexpected trailing input %s", tok.Kind)
	}

	return nil
}

// ParseExpression parses a single expression (spec §4.3, no assignment).
func ParseExpression(text string) (ast.Expr, error) {
	p := newBare(text)

	e, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseLineExpression parses a statement-level expression, admitting
// right-associative assignment to an identifier lvalue.
func ParseLineExpression(text string) (ast.Expr, error) {
	p := newBare(text)

	e, err := p.parseLineExpression()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseProcedure parses a complete "PROCEDURE name(...) { ... }" block.
func ParseProcedure(text string) (*ast.Procedure, error) {
	p := newBare(text)

	loc, err := p.expect(lex.KW_PROCEDURE)
	if err != nil {
		return nil, err
	}

	name, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if err := p.skipParenGroup(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	sym := ast.NewProcedure(loc.Location, name.Spelling, ast.ProcNormal, 0, 0, 0)
	sym.Body = body

	return sym, nil
}

// ParseFunction parses a complete "FUNCTION name(...) { ... }" block.
func ParseFunction(text string) (*ast.Function, error) {
	p := newBare(text)

	loc, err := p.expect(lex.KW_FUNCTION)
	if err != nil {
		return nil, err
	}

	name, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if err := p.skipParenGroup(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	sym := ast.NewFunction(loc.Location, name.Spelling, 0, 0, 0)
	sym.Body = body

	return sym, nil
}

// ParseSolve parses a single "SOLVE name (METHOD ...)?" statement.
func ParseSolve(text string) (*ast.SolveExpr, error) {
	p := newBare(text)

	e, err := p.parseSolve()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseConductance parses a single "CONDUCTANCE name (USEION ion)?"
// statement.
func ParseConductance(text string) (*ast.ConductanceExpr, error) {
	p := newBare(text)

	e, err := p.parseConductance()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseIf parses a single "IF (...) {...} (ELSE ...)?" statement.
func ParseIf(text string) (*ast.IfExpr, error) {
	p := newBare(text)

	e, err := p.parseIf()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseLocal parses a single "LOCAL name (, name)*" statement.
func ParseLocal(text string) (*ast.LocalDecl, error) {
	p := newBare(text)

	e, err := p.parseLocal()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseStoichTerm parses a single stoichiometric term, e.g. "-2A".
func ParseStoichTerm(text string) (*ast.StoichTermExpr, error) {
	p := newBare(text)

	e, err := p.parseStoichTerm()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseStoichExpression parses a full stoichiometric expression, e.g.
// "-2A + B - C".
func ParseStoichExpression(text string) (*ast.StoichExpr, error) {
	p := newBare(text)

	e, err := p.parseStoichExpression()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseReactionExpression parses a complete reaction statement, including
// its leading '~'.
func ParseReactionExpression(text string) (*ast.ReactionExpr, error) {
	p := newBare(text)

	e, err := p.parseReaction()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseConserveExpression parses a complete "CONSERVE stoich = expr"
// statement.
func ParseConserveExpression(text string) (*ast.ConserveExpr, error) {
	p := newBare(text)

	e, err := p.parseConserve()
	if err != nil {
		return nil, err
	}

	if err := p.finished(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseStateBlock parses a single "STATE { ... }" block and installs its
// declared variables directly into m -- the one entry point that mutates a
// Module rather than returning a fresh node, used by tests exercising
// addVariablesToSymbols-style installation without a full Parse.
func ParseStateBlock(text string, m *ast.Module) error {
	p := &Parser{src: text, lexer: lex.NewLexer(text), module: m}

	if err := p.parseStateBlockInto(m); err != nil {
		return err
	}

	for _, dv := range p.declared {
		v := ast.NewVariable(dv.loc, dv.name, dv.vis, dv.unit, dv.hasDefault, dv.value, dv.rng)

		if err := m.Symbols().Declare(v); err != nil {
			return p.errorf(dv.loc, "duplicate declaration of %q", dv.name)
		}
	}

	return p.finished()
}
