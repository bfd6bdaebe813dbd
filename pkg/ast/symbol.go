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
package ast

import (
	"fmt"

	"github.com/cpehle/arbor/pkg/source"
)

// SymbolKind discriminates the concrete type behind a Symbol.
type SymbolKind uint

const (
	SymProcedure SymbolKind = iota
	SymFunction
	SymNetReceive
	SymVariable
)

// Symbol is the closed set of top-level declaration variants stored in a
// Module's symbol table.
type Symbol interface {
	Node
	Kind() SymbolKind
	SymbolName() string
	symbolNode()
}

type symBase struct {
	Loc  source.Location
	Name string
}

func (s symBase) Location() source.Location { return s.Loc }
func (s symBase) SymbolName() string        { return s.Name }
func (symBase) symbolNode()                 {}

// ProcedureKind tags which procedural-block flavour a Procedure represents.
// NetReceive has its own Symbol variant (it carries declared event
// arguments) but shares this tag space for uniform reporting.
type ProcedureKind uint

const (
	ProcNormal ProcedureKind = iota
	ProcKinetic
	ProcDerivative
	ProcBreakpoint
	ProcInitial
	ProcLinear
	ProcNetReceive
)

// Procedure is a PROCEDURE, INITIAL, BREAKPOINT, KINETIC, DERIVATIVE or
// LINEAR block.  Body is nil until pass 2 parses this block's contents.
type Procedure struct {
	symBase
	ProcKind ProcedureKind
	Body     *BlockExpr
	// BodyOffset/BodyLine/BodyColumn record where in the source this
	// block's body starts, so pass 2 can rewind a fresh lexer onto it
	// (spec §9 "two-pass via lexer rewind") without buffering tokens.
	BodyOffset int
	BodyLine   uint32
	BodyColumn uint32
}

// NewProcedure constructs a procedural-block symbol whose body has not yet
// been parsed; pass 2 fills in Body once it rewinds onto BodyOffset.
func NewProcedure(loc source.Location, name string, kind ProcedureKind, bodyOffset int, bodyLine, bodyColumn uint32) *Procedure {
	return &Procedure{
		symBase:    symBase{loc, name},
		ProcKind:   kind,
		BodyOffset: bodyOffset,
		BodyLine:   bodyLine,
		BodyColumn: bodyColumn,
	}
}

// Kind identifies this symbol as SymProcedure.
func (s *Procedure) Kind() SymbolKind { return SymProcedure }

// Function is a FUNCTION block.  Represented separately from Procedure
// because a function's name is also an implicit local used to hold its
// return value, per NMODL convention.
type Function struct {
	symBase
	Body       *BlockExpr
	BodyOffset int
	BodyLine   uint32
	BodyColumn uint32
}

// NewFunction constructs a function symbol whose body has not yet been
// parsed.
func NewFunction(loc source.Location, name string, bodyOffset int, bodyLine, bodyColumn uint32) *Function {
	return &Function{
		symBase:    symBase{loc, name},
		BodyOffset: bodyOffset,
		BodyLine:   bodyLine,
		BodyColumn: bodyColumn,
	}
}

// Kind identifies this symbol as SymFunction.
func (s *Function) Kind() SymbolKind { return SymFunction }

// NetReceive is the NET_RECEIVE block, which additionally declares the
// names of the event arguments delivered with each synaptic event.
type NetReceive struct {
	symBase
	Body       *BlockExpr
	EventArgs  []string
	BodyOffset int
	BodyLine   uint32
	BodyColumn uint32
}

// NewNetReceive constructs a NET_RECEIVE symbol whose event-argument list
// and body have not yet been parsed.
func NewNetReceive(loc source.Location, bodyOffset int, bodyLine, bodyColumn uint32) *NetReceive {
	return &NetReceive{
		symBase:    symBase{loc, "net_receive"},
		BodyOffset: bodyOffset,
		BodyLine:   bodyLine,
		BodyColumn: bodyColumn,
	}
}

// Kind identifies this symbol as SymNetReceive.
func (s *NetReceive) Kind() SymbolKind { return SymNetReceive }

// VariableVisibility classifies how a Variable was declared.
type VariableVisibility string

// The recognised variable visibilities.
const (
	VisState     VariableVisibility = "state"
	VisParameter VariableVisibility = "parameter"
	VisAssigned  VariableVisibility = "assigned"
	VisLocal     VariableVisibility = "local"
	VisIndexedIon VariableVisibility = "ion"
)

// Range is the optional "<lo, hi>" clause on a PARAMETER declaration.
type Range struct {
	Low  float64
	High float64
}

// Variable is a STATE, PARAMETER, ASSIGNED, LOCAL or ion-indexed variable
// declaration.
type Variable struct {
	symBase
	Visibility VariableVisibility
	Unit       string // "" if no unit was declared
	HasDefault bool
	Default    float64
	Range      *Range // nil if no range clause was given
}

// NewVariable constructs a variable symbol.  rng may be nil.
func NewVariable(loc source.Location, name string, visibility VariableVisibility, unit string, hasDefault bool, value float64, rng *Range) *Variable {
	return &Variable{
		symBase:    symBase{loc, name},
		Visibility: visibility,
		Unit:       unit,
		HasDefault: hasDefault,
		Default:    value,
		Range:      rng,
	}
}

// Kind identifies this symbol as SymVariable.
func (s *Variable) Kind() SymbolKind { return SymVariable }

// String renders enough of a Variable for debugging and test failure
// output.
func (s *Variable) String() string {
	return fmt.Sprintf("Variable{%s, visibility=%s, unit=%q}", s.Name, s.Visibility, s.Unit)
}

// AsProcedure returns s as a *Procedure, if it is one.
func AsProcedure(s Symbol) (*Procedure, bool) { v, ok := s.(*Procedure); return v, ok }

// AsFunction returns s as a *Function, if it is one.
func AsFunction(s Symbol) (*Function, bool) { v, ok := s.(*Function); return v, ok }

// AsNetReceive returns s as a *NetReceive, if it is one.
func AsNetReceive(s Symbol) (*NetReceive, bool) { v, ok := s.(*NetReceive); return v, ok }

// AsVariable returns s as a *Variable, if it is one.
func AsVariable(s Symbol) (*Variable, bool) { v, ok := s.(*Variable); return v, ok }

// SymbolTable is an insertion-ordered map from declared name to Symbol,
// mirroring the ordered environments go-corset builds while resolving
// declarations (pkg/zkc/compiler/parser/environment.go), so that
// downstream code generation emits symbols deterministically in
// declaration order.
type SymbolTable struct {
	order   []string
	entries map[string]Symbol
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]Symbol)}
}

// Declare adds sym to the table.  It returns an error (without modifying
// the table) if a symbol with the same name was already declared -- the
// "Symbol uniqueness" invariant of spec §8.
func (t *SymbolTable) Declare(sym Symbol) error {
	name := sym.SymbolName()
	if _, exists := t.entries[name]; exists {
		return fmt.Errorf("duplicate declaration of %q", name)
	}

	t.entries[name] = sym
	t.order = append(t.order, name)

	return nil
}

// Lookup returns the symbol declared under name, if any.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := t.entries[name]
	return sym, ok
}

// Has reports whether name has been declared.
func (t *SymbolTable) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Names returns the declared names in declaration order.
func (t *SymbolTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Symbols returns the declared symbols in declaration order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}

	return out
}

// Len returns the number of declared symbols.
func (t *SymbolTable) Len() int {
	return len(t.order)
}
