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

// binaryPrecedence implements the precedence table of spec §4.3.
// Assignment (level 1) is deliberately absent: it is handled only by
// parseLineExpression, one level above this table, since it may appear
// only at statement position and is right-associative across the whole
// statement rather than composable mid-expression.
func binaryPrecedence(kind lex.TokenKind) (int, bool) {
	switch kind {
	case lex.LT, lex.LE, lex.GT, lex.GE, lex.EQEQ, lex.NE:
		return 2, true
	case lex.PLUS, lex.MINUS:
		return 3, true
	case lex.STAR, lex.SLASH:
		return 4, true
	case lex.CARET:
		return 5, true
	default:
		return 0, false
	}
}

func binaryOpFor(kind lex.TokenKind) ast.BinaryOp {
	switch kind {
	case lex.LT:
		return ast.OpLt
	case lex.LE:
		return ast.OpLe
	case lex.GT:
		return ast.OpGt
	case lex.GE:
		return ast.OpGe
	case lex.EQEQ:
		return ast.OpEq
	case lex.NE:
		return ast.OpNe
	case lex.PLUS:
		return ast.OpAdd
	case lex.MINUS:
		return ast.OpSub
	case lex.STAR:
		return ast.OpMul
	case lex.SLASH:
		return ast.OpDiv
	case lex.CARET:
		return ast.OpPow
	default:
		panic("binaryOpFor: not a binary operator token")
	}
}

// minExprPrec is the lowest precedence level parseExpression itself
// recognises (comparisons); it is used pervasively as the "parse a full
// expression, no assignment" starting point.
const minExprPrec = 2

// parseExpression implements the precedence-climbing grammar of spec §4.3.
// ^ is right-associative (recursing at the same precedence on its right
// operand); every other binary operator is left-associative (recursing one
// level higher).
func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		prec, ok := binaryPrecedence(tok.Kind)
		if !ok || prec < minPrec {
			return lhs, nil
		}

		p.get()

		nextMin := prec + 1
		if tok.Kind == lex.CARET {
			nextMin = prec
		}

		rhs, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}

		lhs = ast.NewBinaryExpr(lhs.Location(), binaryOpFor(tok.Kind), lhs, rhs)
	}
}

// parsePrimary parses a literal, identifier, call, parenthesised
// sub-expression, or one of the unary-position intrinsics (exp/log/abs) and
// prefix +/-.  Because unary operators are parsed here, at primary
// position, rather than as a lower-precedence level of parseExpression,
// they bind tighter than ^ (spec §4.3): "-2^2" parses as (-2)^2.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case lex.PLUS, lex.MINUS:
		p.get()

		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		op := ast.OpPos
		if tok.Kind == lex.MINUS {
			op = ast.OpNeg
		}

		return ast.NewUnaryExpr(tok.Location, op, operand), nil

	case lex.KW_EXP, lex.KW_LOG, lex.KW_ABS:
		p.get()

		if _, err := p.expect(lex.LPAREN); err != nil {
			return nil, err
		}

		arg, err := p.parseExpression(minExprPrec)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN); err != nil {
			return nil, err
		}

		return ast.NewUnaryExpr(tok.Location, unaryIntrinsicOp(tok.Kind), arg), nil

	case lex.KW_MIN, lex.KW_MAX:
		p.get()

		if _, err := p.expect(lex.LPAREN); err != nil {
			return nil, err
		}

		a, err := p.parseExpression(minExprPrec)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.COMMA); err != nil {
			return nil, err
		}

		b, err := p.parseExpression(minExprPrec)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN); err != nil {
			return nil, err
		}

		op := ast.OpMin
		if tok.Kind == lex.KW_MAX {
			op = ast.OpMax
		}

		return ast.NewBinaryExpr(tok.Location, op, a, b), nil

	case lex.IDENTIFIER:
		p.get()

		if p.peekKind() != lex.LPAREN {
			return ast.NewIdentifierExpr(tok.Location, tok.Spelling), nil
		}

		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}

		return ast.NewCallExpr(tok.Location, tok.Spelling, args), nil

	case lex.INTEGER:
		p.get()

		v, err := strconv.ParseInt(tok.Spelling, 10, 64)
		if err != nil {
			return nil, p.errorf(tok.Location, "malformed integer literal %q", tok.Spelling)
		}

		return ast.NewIntegerExpr(tok.Location, v), nil

	case lex.REAL:
		p.get()

		v, err := strconv.ParseFloat(tok.Spelling, 64)
		if err != nil {
			return nil, p.errorf(tok.Location, "malformed real literal %q", tok.Spelling)
		}

		return ast.NewRealExpr(tok.Location, v), nil

	case lex.LPAREN:
		p.get()

		e, err := p.parseExpression(minExprPrec)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN); err != nil {
			return nil, err
		}

		return e, nil

	default:
		return nil, p.errorf(tok.Location, "unexpected token %s in expression", tok.Kind)
	}
}

func unaryIntrinsicOp(kind lex.TokenKind) ast.UnaryOp {
	switch kind {
	case lex.KW_EXP:
		return ast.OpExp
	case lex.KW_LOG:
		return ast.OpLog
	case lex.KW_ABS:
		return ast.OpAbs
	default:
		panic("unaryIntrinsicOp: not a unary intrinsic token")
	}
}

func (p *Parser) parseArgList() ([]ast.Expr, error) {
	if _, err := p.expect(lex.LPAREN); err != nil {
		return nil, err
	}

	args := []ast.Expr{}

	if p.peekKind() != lex.RPAREN {
		arg, err := p.parseExpression(minExprPrec)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		for p.peekKind() == lex.COMMA {
			p.get()

			arg, err := p.parseExpression(minExprPrec)
			if err != nil {
				return nil, err
			}

			args = append(args, arg)
		}
	}

	if _, err := p.expect(lex.RPAREN); err != nil {
		return nil, err
	}

	return args, nil
}

// parseLineExpression implements level 1 of spec §4.3: a statement-level
// expression, which may be a plain expression or a right-associative chain
// of assignments to identifier lvalues ("a = b = c").  Because
// parseExpression never itself recognises '=', an assignment written inside
// parentheses -- "(x = 3)" -- is rejected: the inner parseExpression call
// stops at 'x', and the enclosing ')' check then fails on the unconsumed
// '=' with an "expected )" diagnostic.
func (p *Parser) parseLineExpression() (ast.Expr, error) {
	loc := p.location()

	lhs, err := p.parseExpression(minExprPrec)
	if err != nil {
		return nil, err
	}

	if p.peekKind() != lex.EQUALS {
		return lhs, nil
	}

	target, ok := ast.AsIdentifier(lhs)
	if !ok {
		return nil, p.errorf(loc, "assignment target must be an identifier")
	}

	p.get() // '='

	rhs, err := p.parseLineExpression()
	if err != nil {
		return nil, err
	}

	return ast.NewAssignmentExpr(loc, target, rhs), nil
}
