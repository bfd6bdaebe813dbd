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

func TestLocalDeclaresNamesInOrder(t *testing.T) {
	l, err := parser.ParseLocal("LOCAL x, y, z")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, l.Names)
}

func TestLocalRejectsTrailingComma(t *testing.T) {
	_, err := parser.ParseLocal("LOCAL x, y,")
	assert.Error(t, err)
}

func TestLocalRejectsDuplicateName(t *testing.T) {
	_, err := parser.ParseLocal("LOCAL x, y, x")
	assert.Error(t, err)
}

func TestSolveWithoutMethod(t *testing.T) {
	s, err := parser.ParseSolve("SOLVE states")
	require.NoError(t, err)
	assert.Equal(t, "states", s.Target)
	assert.Equal(t, ast.MethodNone, s.Method)
}

func TestSolveWithCnexpMethod(t *testing.T) {
	s, err := parser.ParseSolve("SOLVE states METHOD cnexp")
	require.NoError(t, err)
	assert.Equal(t, "states", s.Target)
	assert.Equal(t, ast.MethodCnexp, s.Method)
}

func TestSolveWithSparseMethod(t *testing.T) {
	s, err := parser.ParseSolve("SOLVE states METHOD sparse")
	require.NoError(t, err)
	assert.Equal(t, ast.MethodSparse, s.Method)
}

func TestSolveRejectsUnknownMethod(t *testing.T) {
	_, err := parser.ParseSolve("SOLVE states METHOD euler")
	assert.Error(t, err)
}

func TestConductanceDefaultsToNonspecific(t *testing.T) {
	c, err := parser.ParseConductance("CONDUCTANCE g")
	require.NoError(t, err)
	assert.Equal(t, "g", c.Variable)
	assert.Equal(t, ast.IonNonspecific, c.Category)
	assert.Empty(t, c.IonName)
}

func TestConductanceWithUseionCategorizesKnownIon(t *testing.T) {
	c, err := parser.ParseConductance("CONDUCTANCE gna USEION na")
	require.NoError(t, err)
	assert.Equal(t, "na", c.IonName)
	assert.Equal(t, ast.IonNa, c.Category)
}

func TestConductanceWithUseionCategorizesUnknownIonAsOther(t *testing.T) {
	c, err := parser.ParseConductance("CONDUCTANCE gx USEION x")
	require.NoError(t, err)
	assert.Equal(t, ast.IonOther, c.Category)
}

func TestIfWithoutElse(t *testing.T) {
	i, err := parser.ParseIf("IF (v > 0) { x = 1 }")
	require.NoError(t, err)
	assert.Nil(t, i.False)
	assert.Len(t, i.True.Stmts, 1)
}

func TestIfElseIsPlainBlock(t *testing.T) {
	i, err := parser.ParseIf("IF (v > 0) { x = 1 } ELSE { x = 2 }")
	require.NoError(t, err)

	block, ok := ast.AsBlock(i.False)
	require.True(t, ok)
	assert.Len(t, block.Stmts, 1)
}

func TestElseIfNestsAsIfExprRatherThanFlattening(t *testing.T) {
	i, err := parser.ParseIf(`
		IF (v > 0) {
			x = 1
		} ELSE IF (v < 0) {
			x = 2
		} ELSE {
			x = 3
		}
	`)
	require.NoError(t, err)

	nested, ok := ast.AsIf(i.False)
	require.True(t, ok, "an else-if must chain as a nested IfExpr, not a flattened list")

	finalBlock, ok := ast.AsBlock(nested.False)
	require.True(t, ok)
	assert.Len(t, finalBlock.Stmts, 1)
}

func TestBlockRejectsUnterminatedBody(t *testing.T) {
	_, err := parser.ParseIf("IF (v > 0) { x = 1")
	assert.Error(t, err)
}
