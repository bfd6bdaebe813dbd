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

const hhLikeMechanism = `
TITLE Hodgkin-Huxley-like sodium channel

NEURON {
	SUFFIX hhna
	USEION na READ ena WRITE ina
	RANGE gnabar, gna
	GLOBAL minf, mtau
}

UNITS {
	(mV) = (millivolt)
	(mA) = (milliamp)
}

PARAMETER {
	gnabar = 0.12 (mho/cm2)
}

ASSIGNED {
	v (mV)
	ena (mV)
	ina (mA/cm2)
	gna (mho/cm2)
	minf
	mtau (ms)
}

STATE {
	m
}

INITIAL {
	m = minf
}

BREAKPOINT {
	SOLVE states METHOD cnexp
	gna = gnabar * m * m * m
	ina = gna * (v - ena)
}

DERIVATIVE states {
	m = (minf - m) / mtau
}

FUNCTION alpha(v (mV)) {
	alpha = exp(v)
}

NET_RECEIVE(weight) {
	m = m + weight
}
`

func TestParseModuleFullMechanism(t *testing.T) {
	m := parser.ParseModule(hhLikeMechanism, "hhna.mod", parser.Options{})

	require.Equal(t, ast.StatusHappy, m.Status(), "unexpected errors: %v", m.Errors())
	assert.Equal(t, "hhna", m.Name())
	assert.Contains(t, m.Title, "Hodgkin-Huxley")

	assert.True(t, m.Symbols().Has("gnabar"))
	assert.True(t, m.Symbols().Has("m"))
	assert.True(t, m.Symbols().Has("alpha"))
	assert.True(t, m.Symbols().Has("net_receive"))

	breakpoint, ok := ast.AsProcedure(mustLookup(t, m, "breakpoint"))
	if ok {
		require.NotNil(t, breakpoint.Body)
	}

	fn, ok := ast.AsFunction(mustLookup(t, m, "alpha"))
	require.True(t, ok)
	require.NotNil(t, fn.Body)
	assert.Len(t, fn.Body.Stmts, 1)

	nr, ok := ast.AsNetReceive(mustLookup(t, m, "net_receive"))
	require.True(t, ok)
	assert.Equal(t, []string{"weight"}, nr.EventArgs)
	require.NotNil(t, nr.Body)
}

func mustLookup(t *testing.T, m *ast.Module, name string) ast.Symbol {
	t.Helper()

	sym, ok := m.Symbols().Lookup(name)
	require.True(t, ok, "expected %q to be declared", name)

	return sym
}

func TestAssignedAndUseionSharingAVariableIsNotADuplicate(t *testing.T) {
	const src = `
NEURON {
	SUFFIX test
	USEION na READ ena WRITE ina
}

ASSIGNED {
	ena (mV)
	ina (mA/cm2)
}
`
	m := parser.ParseModule(src, "dup.mod", parser.Options{})
	require.Equal(t, ast.StatusHappy, m.Status(), "unexpected errors: %v", m.Errors())
	assert.True(t, m.Symbols().Has("ena"))
	assert.True(t, m.Symbols().Has("ina"))
}

func TestDuplicateDeclarationAcrossBlocksIsAnError(t *testing.T) {
	const src = `
NEURON {
	SUFFIX test
}

PARAMETER {
	gbar = 1
}

ASSIGNED {
	gbar (mho/cm2)
}
`
	m := parser.ParseModule(src, "dup2.mod", parser.Options{})
	assert.Equal(t, ast.StatusError, m.Status())
}

func TestPass1RecoveryContinuesAtNextTopLevelKeyword(t *testing.T) {
	// The malformed PARAMETER block should record an error and recovery
	// should resume scanning at STATE, so state variables are still
	// declared afterwards.
	const src = `
NEURON {
	SUFFIX test
}

PARAMETER {
	123 456
}

STATE {
	m
}
`
	m := parser.ParseModule(src, "recover.mod", parser.Options{})
	assert.Equal(t, ast.StatusError, m.Status())
	assert.True(t, m.Symbols().Has("m"), "recovery should reach the STATE block after the broken PARAMETER block")
}

func TestPass2NeverRunsWhenPass1Failed(t *testing.T) {
	const src = `
NEURON {
	SUFFIX test
}

PARAMETER {
	123 456
}

BREAKPOINT {
	x = 1
}
`
	m := parser.ParseModule(src, "abort.mod", parser.Options{})
	assert.Equal(t, ast.StatusError, m.Status())

	bp, ok := m.Symbols().Lookup("breakpoint")
	if ok {
		proc, ok := ast.AsProcedure(bp)
		require.True(t, ok)
		assert.Nil(t, proc.Body, "pass 2 must not run once pass 1 recorded an error")
	}
}

func TestReparsingTheSameSourceIsIdempotent(t *testing.T) {
	m1 := parser.ParseModule(hhLikeMechanism, "hhna.mod", parser.Options{})
	m2 := parser.ParseModule(hhLikeMechanism, "hhna.mod", parser.Options{})

	require.Equal(t, ast.StatusHappy, m1.Status())
	require.Equal(t, ast.StatusHappy, m2.Status())
	assert.Equal(t, m1.Symbols().Names(), m2.Symbols().Names())
}

func TestUnitsBlockIsRetainedButUninterpreted(t *testing.T) {
	const src = `
NEURON {
	SUFFIX test
}

UNITS {
	(mA) = (milliamp)
	(mV) = (millivolt)
}
`
	m := parser.ParseModule(src, "units.mod", parser.Options{})
	require.Equal(t, ast.StatusHappy, m.Status())
	require.Len(t, m.Units, 2)
	assert.Equal(t, "(mA)", m.Units[0].From)
	assert.Equal(t, "(milliamp)", m.Units[0].To)
}

func TestRangeAndGlobalAcceptCommaOrSpaceSeparatedLists(t *testing.T) {
	const src = `
NEURON {
	SUFFIX test
	RANGE gnabar, gna
	GLOBAL minf mtau
}
`
	m := parser.ParseModule(src, "lists.mod", parser.Options{})
	require.Equal(t, ast.StatusHappy, m.Status())
	assert.Equal(t, []string{"gnabar", "gna"}, m.Neuron.Range)
	assert.Equal(t, []string{"minf", "mtau"}, m.Neuron.Global)
}

func TestStateBlockEntryPointInstallsVariablesDirectly(t *testing.T) {
	m := ast.NewModule("", "")

	err := parser.ParseStateBlock("STATE { m h n }", m)
	require.NoError(t, err)

	assert.True(t, m.Symbols().Has("m"))
	assert.True(t, m.Symbols().Has("h"))
	assert.True(t, m.Symbols().Has("n"))
}

func TestStateBlockVariableLocationPointsAtItsOwnName(t *testing.T) {
	m := ast.NewModule("", "")

	err := parser.ParseStateBlock("STATE { m h n }", m)
	require.NoError(t, err)

	mVar, ok := ast.AsVariable(mustLookup(t, m, "m"))
	require.True(t, ok)
	assert.Equal(t, uint32(9), mVar.Location().Column)

	hVar, ok := ast.AsVariable(mustLookup(t, m, "h"))
	require.True(t, ok)
	assert.Equal(t, uint32(11), hVar.Location().Column)

	nVar, ok := ast.AsVariable(mustLookup(t, m, "n"))
	require.True(t, ok)
	assert.Equal(t, uint32(13), nVar.Location().Column)
}
