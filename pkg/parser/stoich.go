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
	"strconv"

	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/lex"
)

// parseStoichTerm implements the standalone stoichiometric-term grammar of
// spec §4.5: an optional leading sign, an optional integer coefficient
// (defaulting to 1), and an identifier.  A real literal in coefficient
// position -- "3e2" lexes whole as REAL, never as INTEGER "3" followed by
// an identifier -- is rejected here, since no identifier follows it.
func (p *Parser) parseStoichTerm() (*ast.StoichTermExpr, error) {
	negative := false

	switch p.peekKind() {
	case lex.MINUS:
		p.get()

		negative = true
	case lex.PLUS:
		p.get()
	}

	return p.parseStoichTermBody(negative)
}

func (p *Parser) parseStoichTermBody(negative bool) (*ast.StoichTermExpr, error) {
	loc := p.location()

	coefficient := int64(1)

	if p.peekKind() == lex.INTEGER {
		tok := p.get()

		v, err := strconv.ParseInt(tok.Spelling, 10, 64)
		if err != nil {
			return nil, p.errorf(tok.Location, "malformed stoichiometric coefficient %q", tok.Spelling)
		}

		coefficient = v
	}

	name, err := p.expect(lex.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	return ast.NewStoichTermExpr(loc, coefficient, negative, name.Spelling), nil
}

func startsStoichTerm(kind lex.TokenKind) bool {
	switch kind {
	case lex.MINUS, lex.PLUS, lex.INTEGER, lex.IDENTIFIER:
		return true
	default:
		return false
	}
}

// parseStoichExpression implements "term ((+|-) term)*", possibly empty
// (spec §4.5: CONSERVE's left side may be empty, e.g. "CONSERVE = 0").  A
// separator's sign determines the sign of the term that follows it; only
// the very first term may additionally carry its own leading sign, via
// parseStoichTerm.
func (p *Parser) parseStoichExpression() (*ast.StoichExpr, error) {
	loc := p.location()

	if !startsStoichTerm(p.peekKind()) {
		return ast.NewStoichExpr(loc, nil), nil
	}

	first, err := p.parseStoichTerm()
	if err != nil {
		return nil, err
	}

	terms := []*ast.StoichTermExpr{first}

	for {
		switch p.peekKind() {
		case lex.PLUS:
			p.get()

			t, err := p.parseStoichTermBody(false)
			if err != nil {
				return nil, err
			}

			terms = append(terms, t)
		case lex.MINUS:
			p.get()

			t, err := p.parseStoichTermBody(true)
			if err != nil {
				return nil, err
			}

			terms = append(terms, t)
		default:
			return ast.NewStoichExpr(loc, terms), nil
		}
	}
}

// parseReaction implements "~ stoich <-> stoich (fwd, rev)" (spec §4.5). A
// one-directional "->" is rejected because expect(ARROW) fails outright on
// the RARROW token.
func (p *Parser) parseReaction() (*ast.ReactionExpr, error) {
	loc := p.get().Location // ~

	lhs, err := p.parseStoichExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.ARROW); err != nil {
		return nil, err
	}

	rhs, err := p.parseStoichExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.LPAREN); err != nil {
		return nil, err
	}

	forward, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA); err != nil {
		return nil, err
	}

	reverse, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN); err != nil {
		return nil, err
	}

	return ast.NewReactionExpr(loc, lhs, rhs, forward, reverse), nil
}

// parseConserve implements "CONSERVE stoich = expr" (spec §4.5).
func (p *Parser) parseConserve() (*ast.ConserveExpr, error) {
	loc := p.get().Location // CONSERVE

	lhs, err := p.parseStoichExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.EQUALS); err != nil {
		return nil, err
	}

	rhs, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	return ast.NewConserveExpr(loc, lhs, rhs), nil
}
