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

// Package ast defines the polymorphic expression tree and the symbol table
// entries produced by the parser.  The tagged-variant discipline the
// original design used ("downcast by kind") is replaced by a Go interface
// (Expr / Symbol) with one concrete struct per variant, plus a Kind()
// method for fast discrimination and a family of As* helpers standing in
// for the pattern-matched accessors called for in the design notes.
package ast

import "github.com/cpehle/arbor/pkg/source"

// Kind discriminates the concrete type behind an Expr, allowing callers to
// switch on it without a full Go type switch when only the tag is needed.
type Kind uint

const (
	KindInteger Kind = iota
	KindReal
	KindIdentifier
	KindCall
	KindUnary
	KindBinary
	KindBlock
	KindIf
	KindLocalDecl
	KindSolve
	KindConductance
	KindStoichTerm
	KindStoich
	KindReaction
	KindConserve
	KindInitial
	KindAssignment
)

// Node is implemented by every AST node: expressions and symbols alike.
type Node interface {
	// Location returns the position in the source text at which this node
	// begins.
	Location() source.Location
}

// Expr is the closed set of expression-tree node variants.  Only types
// defined in this package implement it, via the unexported exprNode
// method.
type Expr interface {
	Node
	// Kind identifies which concrete variant this node is.
	Kind() Kind
	exprNode()
}

type exprBase struct {
	Loc source.Location
}

func (e exprBase) Location() source.Location { return e.Loc }
func (exprBase) exprNode()                   {}
