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

	"github.com/cpehle/arbor/pkg/parser"
)

func TestStoichTermDefaultsCoefficientToOne(t *testing.T) {
	term, err := parser.ParseStoichTerm("A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), term.Coefficient)
	assert.False(t, term.Negative)
	assert.Equal(t, "A", term.Name)
}

func TestStoichTermParsesLeadingCoefficientAndSign(t *testing.T) {
	term, err := parser.ParseStoichTerm("-2A")
	require.NoError(t, err)
	assert.Equal(t, int64(2), term.Coefficient)
	assert.True(t, term.Negative)
	assert.Equal(t, int64(-2), term.Value())
}

func TestStoichTermRejectsRealLiteralAsCoefficient(t *testing.T) {
	// "3e2" lexes as a single REAL token, so no IDENTIFIER can follow it in
	// coefficient position.
	_, err := parser.ParseStoichTerm("3e2")
	assert.Error(t, err)
}

func TestStoichExpressionAccumulatesSignedTerms(t *testing.T) {
	e, err := parser.ParseStoichExpression("-2A + B - 3C")
	require.NoError(t, err)
	require.Len(t, e.Terms, 3)

	assert.Equal(t, int64(-2), e.Terms[0].Value())
	assert.Equal(t, int64(1), e.Terms[1].Value())
	assert.Equal(t, int64(-3), e.Terms[2].Value())

	assert.EqualValues(t, 6, e.AbsCoefficientSum())
}

func TestStoichExpressionMayBeEmpty(t *testing.T) {
	e, err := parser.ParseStoichExpression("")
	require.NoError(t, err)
	assert.Empty(t, e.Terms)
}

func TestReactionParsesBidirectionalArrowAndRateExpressions(t *testing.T) {
	r, err := parser.ParseReactionExpression("~ 2A + B <-> C (k1, k2)")
	require.NoError(t, err)

	assert.Len(t, r.Lhs.Terms, 2)
	assert.Len(t, r.Rhs.Terms, 1)
	assert.NotNil(t, r.Forward)
	assert.NotNil(t, r.Reverse)
}

func TestReactionRejectsOneDirectionalArrow(t *testing.T) {
	_, err := parser.ParseReactionExpression("~ A -> B (k1, k2)")
	assert.Error(t, err)
}

func TestConserveParsesStoichAndScalarSides(t *testing.T) {
	c, err := parser.ParseConserveExpression("CONSERVE A + B = total")
	require.NoError(t, err)
	assert.Len(t, c.Lhs.Terms, 2)
	assert.NotNil(t, c.Rhs)
}

func TestConserveCoefficientsPreserveSign(t *testing.T) {
	c, err := parser.ParseConserveExpression("CONSERVE -A + 2B = 0")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), c.Lhs.Terms[0].Value())
	assert.Equal(t, int64(2), c.Lhs.Terms[1].Value())
}
