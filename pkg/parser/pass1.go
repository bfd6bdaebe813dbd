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
	"github.com/cpehle/arbor/pkg/source"
)

// declared accumulates the raw variable declarations seen across STATE,
// PARAMETER and ASSIGNED while pass 1 walks the file; they are installed
// into the symbol table together by addVariablesToSymbols once every
// section has been read, so that a name reused across two sections is
// diagnosed exactly once, at the second occurrence, regardless of section
// order.
type declaredVar struct {
	name string
	vis  ast.VariableVisibility
	loc  source.Location
	unit string

	hasDefault bool
	value      float64
	rng        *ast.Range
}

// pass1 scans every descriptive block at the top level, and registers every
// procedural block header (skipping over its body) for pass 2.  On error
// within one top-level construct, it discards the error's own recursion and
// resynchronises at the next top-level keyword -- "block-level error
// recovery" (spec §7) -- rather than aborting the whole file over one bad
// section.
func (p *Parser) pass1() {
	for {
		tok := p.peek()

		switch tok.Kind {
		case lex.EOF:
			return
		case lex.KW_TITLE:
			p.recoverable(p.parseTitleBlock)
		case lex.KW_NEURON:
			p.recoverable(p.parseNeuronBlock)
		case lex.KW_STATE:
			p.recoverable(p.parseStateBlockTop)
		case lex.KW_PARAMETER:
			p.recoverable(p.parseParameterBlock)
		case lex.KW_ASSIGNED:
			p.recoverable(p.parseAssignedBlock)
		case lex.KW_UNITS:
			p.recoverable(p.parseUnitsBlock)
		case lex.KW_PROCEDURE, lex.KW_FUNCTION, lex.KW_INITIAL, lex.KW_BREAKPOINT,
			lex.KW_KINETIC, lex.KW_DERIVATIVE, lex.KW_LINEAR, lex.KW_NET_RECEIVE:
			p.recoverable(p.registerProceduralBlock)
		default:
			p.recoverable(func() error {
				return p.errorf(tok.Location, "unexpected top-level token %s", tok.Kind)
			})
		}
	}
}

// recoverable runs fn; if it errors, the error is recorded and the cursor
// is advanced to the next top-level keyword (or EOF) so pass 1 can keep
// discovering the rest of the symbol table.
func (p *Parser) recoverable(fn func() error) {
	if err := fn(); err != nil {
		p.recordError(err)
		p.opts.logger().WithError(err).Warn("pass1: recovering at next top-level keyword")
		p.skipToNextTopLevelKeyword()
	}
}

func isTopLevelKeyword(kind lex.TokenKind) bool {
	switch kind {
	case lex.KW_TITLE, lex.KW_NEURON, lex.KW_STATE, lex.KW_PARAMETER, lex.KW_ASSIGNED,
		lex.KW_UNITS, lex.KW_PROCEDURE, lex.KW_FUNCTION, lex.KW_INITIAL, lex.KW_BREAKPOINT,
		lex.KW_KINETIC, lex.KW_DERIVATIVE, lex.KW_LINEAR, lex.KW_NET_RECEIVE:
		return true
	default:
		return false
	}
}

func (p *Parser) skipToNextTopLevelKeyword() {
	for {
		kind := p.peekKind()
		if kind == lex.EOF || isTopLevelKeyword(kind) {
			return
		}

		p.get()
	}
}

func (p *Parser) parseTitleBlock() error {
	p.get() // TITLE
	p.module.Title = p.lexer.ScanRestOfLine()

	return nil
}

func (p *Parser) parseNeuronBlock() error {
	p.get() // NEURON

	if _, err := p.expect(lex.LBRACE); err != nil {
		return err
	}

	for p.peekKind() != lex.RBRACE {
		tok := p.peek()

		switch tok.Kind {
		case lex.KW_SUFFIX:
			p.get()

			name, err := p.expect(lex.IDENTIFIER)
			if err != nil {
				return err
			}

			p.module.Neuron.Suffix = name.Spelling
		case lex.KW_POINT_PROCESS:
			p.get()

			name, err := p.expect(lex.IDENTIFIER)
			if err != nil {
				return err
			}

			p.module.Neuron.PointProcess = name.Spelling
		case lex.KW_NONSPECIFIC_CURRENT:
			p.get()
			p.module.Neuron.NonspecificCurrents = append(p.module.Neuron.NonspecificCurrents, p.parseIdentList()...)
		case lex.KW_RANGE:
			p.get()
			p.module.Neuron.Range = append(p.module.Neuron.Range, p.parseIdentList()...)
		case lex.KW_GLOBAL:
			p.get()
			p.module.Neuron.Global = append(p.module.Neuron.Global, p.parseIdentList()...)
		case lex.KW_USEION:
			p.get()

			ion, err := p.expect(lex.IDENTIFIER)
			if err != nil {
				return err
			}

			dep := ast.IonDep{Ion: ion.Spelling}

			for more := true; more; {
				switch p.peekKind() {
				case lex.KW_READ:
					p.get()
					dep.Read = append(dep.Read, p.parseIdentList()...)
				case lex.KW_WRITE:
					p.get()
					dep.Write = append(dep.Write, p.parseIdentList()...)
				case lex.KW_VALENCE:
					p.get()

					v, err := p.expect(lex.INTEGER)
					if err != nil {
						return p.errorf(v.Location, "malformed VALENCE clause")
					}

					n, convErr := strconv.Atoi(v.Spelling)
					if convErr != nil {
						return p.errorf(v.Location, "malformed VALENCE clause")
					}

					dep.Valence = &n
				default:
					more = false
				}
			}

			p.module.Neuron.IonDeps = append(p.module.Neuron.IonDeps, dep)
		default:
			return p.errorf(tok.Location, "unrecognised NEURON clause %s", tok.Kind)
		}
	}

	_, err := p.expect(lex.RBRACE)

	return err
}

func (p *Parser) parseStateBlockTop() error {
	return p.parseStateBlockInto(p.module)
}

// parseStateBlockInto implements the STATE grammar, recording each declared
// name onto m.StateVars, and the name with its optional unit onto
// p.declared.  Factored out so ParseStateBlock
// (the standalone, module-mutating testing entry point of spec §6) can share
// it.
func (p *Parser) parseStateBlockInto(m *ast.Module) error {
	p.get() // STATE

	if _, err := p.expect(lex.LBRACE); err != nil {
		return err
	}

	for p.peekIsName() {
		loc := p.peek().Location
		name := p.get().Spelling

		unit := ""
		if p.peekKind() == lex.LPAREN {
			u, err := p.parseUnitText()
			if err != nil {
				return err
			}

			unit = u
		}

		m.StateVars = append(m.StateVars, name)
		p.declared = append(p.declared, declaredVar{name: name, vis: ast.VisState, loc: loc, unit: unit})
	}

	_, err := p.expect(lex.RBRACE)

	return err
}

func (p *Parser) parseParameterBlock() error {
	p.get() // PARAMETER

	if _, err := p.expect(lex.LBRACE); err != nil {
		return err
	}

	for p.peekIsName() {
		loc := p.peek().Location
		name := p.get().Spelling

		dv := declaredVar{name: name, vis: ast.VisParameter, loc: loc}

		if p.peekKind() == lex.EQUALS {
			p.get()

			v, err := p.parseSignedNumber()
			if err != nil {
				return err
			}

			dv.hasDefault = true
			dv.value = v
		}

		if p.peekKind() == lex.LPAREN {
			u, err := p.parseUnitText()
			if err != nil {
				return err
			}

			dv.unit = u
		}

		if p.peekKind() == lex.LT {
			p.get()

			lo, err := p.parseSignedNumber()
			if err != nil {
				return err
			}

			if _, err := p.expect(lex.COMMA); err != nil {
				return err
			}

			hi, err := p.parseSignedNumber()
			if err != nil {
				return err
			}

			if _, err := p.expect(lex.GT); err != nil {
				return err
			}

			dv.rng = &ast.Range{Low: lo, High: hi}
		}

		p.module.Parameters = append(p.module.Parameters, name)
		p.declared = append(p.declared, dv)
	}

	_, err := p.expect(lex.RBRACE)

	return err
}

func (p *Parser) parseAssignedBlock() error {
	p.get() // ASSIGNED

	if _, err := p.expect(lex.LBRACE); err != nil {
		return err
	}

	for p.peekIsName() {
		loc := p.peek().Location
		name := p.get().Spelling

		unit := ""
		if p.peekKind() == lex.LPAREN {
			u, err := p.parseUnitText()
			if err != nil {
				return err
			}

			unit = u
		}

		p.module.Assigned = append(p.module.Assigned, name)
		p.declared = append(p.declared, declaredVar{name: name, vis: ast.VisAssigned, loc: loc, unit: unit})
	}

	_, err := p.expect(lex.RBRACE)

	return err
}

func (p *Parser) parseUnitsBlock() error {
	p.get() // UNITS

	if _, err := p.expect(lex.LBRACE); err != nil {
		return err
	}

	for p.peekKind() == lex.LPAREN {
		loc := p.peek().Location

		from, err := p.parseUnitText()
		if err != nil {
			return err
		}

		if _, err := p.expect(lex.EQUALS); err != nil {
			return err
		}

		to, err := p.parseUnitText()
		if err != nil {
			return err
		}

		p.module.Units = append(p.module.Units, ast.UnitDecl{Loc: loc, From: from, To: to})
	}

	_, err := p.expect(lex.RBRACE)

	return err
}

// parseSignedNumber parses an optionally-signed INTEGER or REAL literal and
// returns its value, without constructing an AST node -- used by PARAMETER
// defaults and range bounds, which are plain numeric metadata rather than
// expressions.
func (p *Parser) parseSignedNumber() (float64, error) {
	negative := false

	switch p.peekKind() {
	case lex.MINUS:
		p.get()

		negative = true
	case lex.PLUS:
		p.get()
	}

	tok := p.peek()

	var v float64

	switch tok.Kind {
	case lex.INTEGER:
		p.get()

		n, err := strconv.ParseInt(tok.Spelling, 10, 64)
		if err != nil {
			return 0, p.errorf(tok.Location, "malformed integer literal %q", tok.Spelling)
		}

		v = float64(n)
	case lex.REAL:
		p.get()

		f, err := strconv.ParseFloat(tok.Spelling, 64)
		if err != nil {
			return 0, p.errorf(tok.Location, "malformed real literal %q", tok.Spelling)
		}

		v = f
	default:
		return 0, p.errorf(tok.Location, "expected a number but found %s", tok.Kind)
	}

	if negative {
		v = -v
	}

	return v, nil
}

// registerProceduralBlock consumes one procedural block's header, records
// where pass 2 should rewind onto its body, and skips the (unparsed) body
// via balanced-brace counting.
func (p *Parser) registerProceduralBlock() error {
	kind := p.get().Kind
	loc := p.lexer.Current().Location

	switch kind {
	case lex.KW_PROCEDURE, lex.KW_FUNCTION:
		name, err := p.expect(lex.IDENTIFIER)
		if err != nil {
			return err
		}

		if err := p.skipParenGroup(); err != nil {
			return err
		}

		if _, err := p.expect(lex.LBRACE); err != nil {
			return err
		}

		offset, line, col := p.lexer.Position()

		if err := p.skipBalancedBraces(); err != nil {
			return err
		}

		if kind == lex.KW_PROCEDURE {
			sym := ast.NewProcedure(loc, name.Spelling, procKindFor(kind), offset, line, col)
			return p.declareProcedural(sym, loc, name.Spelling)
		}

		sym := ast.NewFunction(loc, name.Spelling, offset, line, col)

		return p.declareProcedural(sym, loc, name.Spelling)

	case lex.KW_DERIVATIVE, lex.KW_KINETIC, lex.KW_LINEAR:
		name, err := p.expect(lex.IDENTIFIER)
		if err != nil {
			return err
		}

		if _, err := p.expect(lex.LBRACE); err != nil {
			return err
		}

		offset, line, col := p.lexer.Position()

		if err := p.skipBalancedBraces(); err != nil {
			return err
		}

		sym := ast.NewProcedure(loc, name.Spelling, procKindFor(kind), offset, line, col)

		return p.declareProcedural(sym, loc, name.Spelling)

	case lex.KW_BREAKPOINT, lex.KW_INITIAL:
		name := "breakpoint"
		if kind == lex.KW_INITIAL {
			name = "initial"
		}

		if _, err := p.expect(lex.LBRACE); err != nil {
			return err
		}

		offset, line, col := p.lexer.Position()

		if err := p.skipBalancedBraces(); err != nil {
			return err
		}

		sym := ast.NewProcedure(loc, name, procKindFor(kind), offset, line, col)

		return p.declareProcedural(sym, loc, name)

	case lex.KW_NET_RECEIVE:
		offset, line, col := p.lexer.Position()

		if err := p.skipParenGroup(); err != nil {
			return err
		}

		if _, err := p.expect(lex.LBRACE); err != nil {
			return err
		}

		if err := p.skipBalancedBraces(); err != nil {
			return err
		}

		sym := ast.NewNetReceive(loc, offset, line, col)

		return p.declareProcedural(sym, loc, sym.SymbolName())

	default:
		return p.errorf(loc, "unreachable procedural block kind %s", kind)
	}
}

func (p *Parser) declareProcedural(sym ast.Symbol, loc source.Location, name string) error {
	if err := p.module.Symbols().Declare(sym); err != nil {
		return p.errorf(loc, "duplicate declaration of %q", name)
	}

	p.procedural = append(p.procedural, sym)

	return nil
}

func procKindFor(kind lex.TokenKind) ast.ProcedureKind {
	switch kind {
	case lex.KW_KINETIC:
		return ast.ProcKinetic
	case lex.KW_DERIVATIVE:
		return ast.ProcDerivative
	case lex.KW_BREAKPOINT:
		return ast.ProcBreakpoint
	case lex.KW_INITIAL:
		return ast.ProcInitial
	case lex.KW_LINEAR:
		return ast.ProcLinear
	default:
		return ast.ProcNormal
	}
}

// addVariablesToSymbols installs every variable collected while scanning
// STATE/PARAMETER/ASSIGNED, then any NEURON ion-read/write or
// NONSPECIFIC_CURRENT name not already declared, catching cross-section
// duplicate names (spec §8 "Symbol uniqueness").  A name that appears both
// in ASSIGNED and as a USEION READ/WRITE target -- an extremely common
// pattern in real mechanism files -- is deliberately not treated as a
// duplicate: the ASSIGNED declaration wins and the ion reference is left
// unregistered, since it names the same quantity rather than a conflicting
// one.
func (p *Parser) addVariablesToSymbols() {
	for _, dv := range p.declared {
		v := ast.NewVariable(dv.loc, dv.name, dv.vis, dv.unit, dv.hasDefault, dv.value, dv.rng)

		if err := p.module.Symbols().Declare(v); err != nil {
			p.recordError(p.errorf(dv.loc, "duplicate declaration of %q", dv.name))
		}
	}

	implicit := append([]string{}, p.module.Neuron.NonspecificCurrents...)

	for _, dep := range p.module.Neuron.IonDeps {
		implicit = append(implicit, dep.Read...)
		implicit = append(implicit, dep.Write...)
	}

	for _, name := range implicit {
		if p.module.Symbols().Has(name) {
			continue
		}

		v := ast.NewVariable(p.location(), name, ast.VisIndexedIon, "", false, 0, nil)

		// Declare cannot fail here since Has just confirmed the name is
		// free, but ignore any error defensively rather than panic.
		_ = p.module.Symbols().Declare(v)
	}
}
