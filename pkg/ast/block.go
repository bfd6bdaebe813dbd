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

import "github.com/cpehle/arbor/pkg/source"

// BlockExpr is an ordered sequence of statements.  IsNested distinguishes a
// block introduced by if/else from a procedural block's top-level body;
// free-standing braces are not statements (spec §4.4).
type BlockExpr struct {
	exprBase
	Stmts    []Expr
	IsNested bool
}

// NewBlockExpr constructs a block from a (possibly empty, never nil-element)
// statement list.
func NewBlockExpr(loc source.Location, stmts []Expr, nested bool) *BlockExpr {
	if stmts == nil {
		stmts = []Expr{}
	}

	return &BlockExpr{exprBase{loc}, stmts, nested}
}

// Kind identifies this node as KindBlock.
func (e *BlockExpr) Kind() Kind { return KindBlock }

// WellFormed reports whether every statement in this block is non-null,
// the invariant spec §8 calls "Block well-formedness".
func (e *BlockExpr) WellFormed() bool {
	for _, s := range e.Stmts {
		if s == nil {
			return false
		}
	}

	return true
}

// IfExpr is a conditional.  False is nil (no else clause), a *BlockExpr
// (a plain else), or an *IfExpr (an "else if", chained via False).
type IfExpr struct {
	exprBase
	Cond  Expr
	True  *BlockExpr
	False Expr
}

// NewIfExpr constructs an if/else node.
func NewIfExpr(loc source.Location, cond Expr, trueBranch *BlockExpr, falseBranch Expr) *IfExpr {
	return &IfExpr{exprBase{loc}, cond, trueBranch, falseBranch}
}

// Kind identifies this node as KindIf.
func (e *IfExpr) Kind() Kind { return KindIf }

// LocalDecl declares a set of block-local variable names, in the order
// they were written; duplicates within a single declaration are rejected
// by the parser before this node is constructed.
type LocalDecl struct {
	exprBase
	Names []string
}

// NewLocalDecl constructs a local-declaration node.
func NewLocalDecl(loc source.Location, names []string) *LocalDecl {
	return &LocalDecl{exprBase{loc}, names}
}

// Kind identifies this node as KindLocalDecl.
func (e *LocalDecl) Kind() Kind { return KindLocalDecl }

// Method enumerates the numerical integration methods a SOLVE statement may
// request.
type Method string

// The recognised SOLVE methods; MethodNone means no METHOD clause was
// given.
const (
	MethodNone   Method = "none"
	MethodCnexp  Method = "cnexp"
	MethodSparse Method = "sparse"
)

// SolveExpr requests numerical solution of a named procedural block.
type SolveExpr struct {
	exprBase
	Target string
	Method Method
}

// NewSolveExpr constructs a solve node.
func NewSolveExpr(loc source.Location, target string, method Method) *SolveExpr {
	return &SolveExpr{exprBase{loc}, target, method}
}

// Kind identifies this node as KindSolve.
func (e *SolveExpr) Kind() Kind { return KindSolve }

// IonCategory classifies the ion referenced by a CONDUCTANCE statement.
type IonCategory string

// The recognised ion categories.  IonOther covers any USEION name besides
// the three built in species; IonNonspecific is used when no USEION clause
// was given.
const (
	IonNa          IonCategory = "na"
	IonK           IonCategory = "k"
	IonCa          IonCategory = "ca"
	IonNonspecific IonCategory = "nonspecific"
	IonOther       IonCategory = "other"
)

// CategorizeIon maps an ion name (as written after USEION) onto its
// category.
func CategorizeIon(name string) IonCategory {
	switch name {
	case "na":
		return IonNa
	case "k":
		return IonK
	case "ca":
		return IonCa
	default:
		return IonOther
	}
}

// ConductanceExpr declares which variable carries a mechanism's
// conductance and which ion it belongs to.
type ConductanceExpr struct {
	exprBase
	Variable string
	IonName  string // "" when Category is IonNonspecific
	Category IonCategory
}

// NewConductanceExpr constructs a conductance node.
func NewConductanceExpr(loc source.Location, variable, ionName string, category IonCategory) *ConductanceExpr {
	return &ConductanceExpr{exprBase{loc}, variable, ionName, category}
}

// Kind identifies this node as KindConductance.
func (e *ConductanceExpr) Kind() Kind { return KindConductance }

// InitialExpr wraps a nested INITIAL block found inside a procedural
// block (as opposed to the top-level INITIAL block, which pass 1 already
// registers as its own procedure symbol).
type InitialExpr struct {
	exprBase
	Body *BlockExpr
}

// NewInitialExpr constructs an initial-block node.
func NewInitialExpr(loc source.Location, body *BlockExpr) *InitialExpr {
	return &InitialExpr{exprBase{loc}, body}
}

// Kind identifies this node as KindInitial.
func (e *InitialExpr) Kind() Kind { return KindInitial }

// AsBlock returns e as a *BlockExpr, if it is one.
func AsBlock(e Expr) (*BlockExpr, bool) { v, ok := e.(*BlockExpr); return v, ok }

// AsIf returns e as an *IfExpr, if it is one.
func AsIf(e Expr) (*IfExpr, bool) { v, ok := e.(*IfExpr); return v, ok }

// AsLocalDecl returns e as a *LocalDecl, if it is one.
func AsLocalDecl(e Expr) (*LocalDecl, bool) { v, ok := e.(*LocalDecl); return v, ok }

// AsSolve returns e as a *SolveExpr, if it is one.
func AsSolve(e Expr) (*SolveExpr, bool) { v, ok := e.(*SolveExpr); return v, ok }

// AsConductance returns e as a *ConductanceExpr, if it is one.
func AsConductance(e Expr) (*ConductanceExpr, bool) { v, ok := e.(*ConductanceExpr); return v, ok }

// AsInitial returns e as an *InitialExpr, if it is one.
func AsInitial(e Expr) (*InitialExpr, bool) { v, ok := e.(*InitialExpr); return v, ok }
