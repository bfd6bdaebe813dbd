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
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/parser"
)

func TestCaretIsRightAssociative(t *testing.T) {
	e, err := parser.ParseExpression("2^3^2")
	require.NoError(t, err)

	top, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, top.Op)

	base, ok := ast.AsInteger(top.Lhs)
	require.True(t, ok)
	assert.Equal(t, int64(2), base.Value)

	inner, ok := ast.AsBinary(top.Rhs)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, inner.Op)

	three, ok := ast.AsInteger(inner.Lhs)
	require.True(t, ok)
	assert.Equal(t, int64(3), three.Value)

	two, ok := ast.AsInteger(inner.Rhs)
	require.True(t, ok)
	assert.Equal(t, int64(2), two.Value)
}

func TestParenthesesOverrideCaretAssociativity(t *testing.T) {
	e, err := parser.ParseExpression("(2^2)^3")
	require.NoError(t, err)

	top, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, top.Op)

	inner, ok := ast.AsBinary(top.Lhs)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, inner.Op)

	exponent, ok := ast.AsInteger(top.Rhs)
	require.True(t, ok)
	assert.Equal(t, int64(3), exponent.Value)
}

func TestUnaryMinusBindsTighterThanCaret(t *testing.T) {
	// Per spec, unary +/- is parsed at primary position, so "-2^2" is
	// (-2)^2, not -(2^2).
	e, err := parser.ParseExpression("-2^2")
	require.NoError(t, err)

	top, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, top.Op)

	neg, ok := ast.AsUnary(top.Lhs)
	require.True(t, ok)
	assert.Equal(t, ast.OpNeg, neg.Op)
}

func TestAdditiveIsLeftAssociative(t *testing.T) {
	e, err := parser.ParseExpression("1 - 2 - 3")
	require.NoError(t, err)

	top, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, top.Op)

	_, ok = ast.AsBinary(top.Lhs)
	assert.True(t, ok, "left operand should itself be (1 - 2)")

	rhs, ok := ast.AsInteger(top.Rhs)
	require.True(t, ok)
	assert.Equal(t, int64(3), rhs.Value)
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	e, err := parser.ParseExpression("1 + 2 * 3")
	require.NoError(t, err)

	top, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, top.Op)

	rhs, ok := ast.AsBinary(top.Rhs)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestExpLogAbsParseAsUnary(t *testing.T) {
	for op, text := range map[ast.UnaryOp]string{
		ast.OpExp: "exp(x)",
		ast.OpLog: "log(x)",
		ast.OpAbs: "abs(x)",
	} {
		e, err := parser.ParseExpression(text)
		require.NoError(t, err)

		u, ok := ast.AsUnary(e)
		require.True(t, ok, "%s should parse as UnaryExpr", text)
		assert.Equal(t, op, u.Op)

		id, ok := ast.AsIdentifier(u.Operand)
		require.True(t, ok)
		assert.Equal(t, "x", id.Name)
	}
}

func TestMinMaxParseAsBinary(t *testing.T) {
	e, err := parser.ParseExpression("min(a, b)")
	require.NoError(t, err)

	b, ok := ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpMin, b.Op)

	e, err = parser.ParseExpression("max(a, b)")
	require.NoError(t, err)

	b, ok = ast.AsBinary(e)
	require.True(t, ok)
	assert.Equal(t, ast.OpMax, b.Op)
}

func TestGenericCallExpression(t *testing.T) {
	e, err := parser.ParseExpression("foo(a, b, c)")
	require.NoError(t, err)

	call, ok := ast.AsCall(e)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Callee)
	assert.Len(t, call.Args, 3)
}

func TestCallWithNoArguments(t *testing.T) {
	e, err := parser.ParseExpression("foo()")
	require.NoError(t, err)

	call, ok := ast.AsCall(e)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestBareIdentifierIsNotACall(t *testing.T) {
	e, err := parser.ParseExpression("v")
	require.NoError(t, err)

	id, ok := ast.AsIdentifier(e)
	require.True(t, ok)
	assert.Equal(t, "v", id.Name)
}

func TestAssignmentInsideParensIsRejected(t *testing.T) {
	_, err := parser.ParseExpression("(x = 3)")
	assert.Error(t, err)
}

func TestPlainAssignmentIsRejectedByParseExpression(t *testing.T) {
	// ParseExpression never recognises '=' at all; a bare assignment is
	// trailing input as far as it's concerned.
	_, err := parser.ParseExpression("x = 3")
	assert.Error(t, err)
}

func TestLineExpressionAcceptsAssignment(t *testing.T) {
	e, err := parser.ParseLineExpression("x = 3")
	require.NoError(t, err)

	a, ok := ast.AsAssignment(e)
	require.True(t, ok)
	assert.Equal(t, "x", a.Target.Name)

	v, ok := ast.AsInteger(a.Value)
	require.True(t, ok)
	assert.Equal(t, int64(3), v.Value)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	e, err := parser.ParseLineExpression("a = b = c")
	require.NoError(t, err)

	outer, ok := ast.AsAssignment(e)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Target.Name)

	inner, ok := ast.AsAssignment(outer.Value)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.Name)
}

func TestAssignmentTargetMustBeIdentifier(t *testing.T) {
	_, err := parser.ParseLineExpression("1 + 2 = 3")
	assert.Error(t, err)
}

func TestPrecedenceRoundTripsThroughRepeatedParses(t *testing.T) {
	// Parsing the same text twice must produce structurally identical
	// trees -- the "idempotent reparse" invariant applied to expressions.
	const text = "a + b * c - d / e ^ f"

	e1, err := parser.ParseExpression(text)
	require.NoError(t, err)

	e2, err := parser.ParseExpression(text)
	require.NoError(t, err)

	assert.Equal(t, exprShape(e1), exprShape(e2))
}

// exprShape renders enough of an expression tree's structure (kind and
// operator, recursively) to compare two parses for equality without
// depending on unexported fields or pointer identity.
func exprShape(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.IntegerExpr:
		return "int"
	case *ast.RealExpr:
		return "real"
	case *ast.IdentifierExpr:
		return "id:" + v.Name
	case *ast.CallExpr:
		s := "call:" + v.Callee + "("
		for _, a := range v.Args {
			s += exprShape(a) + ","
		}

		return s + ")"
	case *ast.UnaryExpr:
		return "(" + string(v.Op) + exprShape(v.Operand) + ")"
	case *ast.BinaryExpr:
		return "(" + exprShape(v.Lhs) + string(v.Op) + exprShape(v.Rhs) + ")"
	default:
		return "?"
	}
}
