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

// IntegerExpr is an integer literal.
type IntegerExpr struct {
	exprBase
	Value int64
}

// NewIntegerExpr constructs an integer literal node.
func NewIntegerExpr(loc source.Location, value int64) *IntegerExpr {
	return &IntegerExpr{exprBase{loc}, value}
}

// Kind identifies this node as KindInteger.
func (e *IntegerExpr) Kind() Kind { return KindInteger }

// RealExpr is a floating-point literal.
type RealExpr struct {
	exprBase
	Value float64
}

// NewRealExpr constructs a real literal node.
func NewRealExpr(loc source.Location, value float64) *RealExpr {
	return &RealExpr{exprBase{loc}, value}
}

// Kind identifies this node as KindReal.
func (e *RealExpr) Kind() Kind { return KindReal }

// IdentifierExpr names a variable, procedure, function or ion.  Binding to
// a Symbol is a downstream pass's responsibility; this node holds only the
// spelling.
type IdentifierExpr struct {
	exprBase
	Name string
}

// NewIdentifierExpr constructs an identifier node.
func NewIdentifierExpr(loc source.Location, name string) *IdentifierExpr {
	return &IdentifierExpr{exprBase{loc}, name}
}

// Kind identifies this node as KindIdentifier.
func (e *IdentifierExpr) Kind() Kind { return KindIdentifier }

// CallExpr is a call to a named procedure, function or unrecognised
// intrinsic, with an ordered, non-null argument list.
type CallExpr struct {
	exprBase
	Callee string
	Args   []Expr
}

// NewCallExpr constructs a call node.
func NewCallExpr(loc source.Location, callee string, args []Expr) *CallExpr {
	return &CallExpr{exprBase{loc}, callee, args}
}

// Kind identifies this node as KindCall.
func (e *CallExpr) Kind() Kind { return KindCall }

// UnaryOp enumerates the operators a UnaryExpr may carry.
type UnaryOp string

// The unary operators recognised by the grammar.  exp/log/abs are the
// single-argument intrinsics, distinguished at parse time from a generic
// call by their reserved spelling, and take exactly one parenthesised
// argument (spec §3.3).
const (
	OpPos UnaryOp = "+"
	OpNeg UnaryOp = "-"
	OpExp UnaryOp = "exp"
	OpLog UnaryOp = "log"
	OpAbs UnaryOp = "abs"
)

// UnaryExpr applies a prefix operator to a single operand.
type UnaryExpr struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

// NewUnaryExpr constructs a unary node.
func NewUnaryExpr(loc source.Location, op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{exprBase{loc}, op, operand}
}

// Kind identifies this node as KindUnary.
func (e *UnaryExpr) Kind() Kind { return KindUnary }

// BinaryOp enumerates the operators a BinaryExpr may carry, including the
// statement-level assignment operator and the two-argument intrinsics
// min/max.
type BinaryOp string

// The binary operators recognised by the grammar, in the precedence order
// from spec §4.3 (lowest first).
const (
	OpAssign BinaryOp = "="
	OpLt     BinaryOp = "<"
	OpLe     BinaryOp = "<="
	OpGt     BinaryOp = ">"
	OpGe     BinaryOp = ">="
	OpEq     BinaryOp = "=="
	OpNe     BinaryOp = "!="
	OpAdd    BinaryOp = "+"
	OpSub    BinaryOp = "-"
	OpMul    BinaryOp = "*"
	OpDiv    BinaryOp = "/"
	OpPow    BinaryOp = "^"
	OpMin    BinaryOp = "min"
	OpMax    BinaryOp = "max"
)

// BinaryExpr applies an infix operator (or the min/max intrinsics, or
// assignment) to two operands.
type BinaryExpr struct {
	exprBase
	Op  BinaryOp
	Lhs Expr
	Rhs Expr
}

// NewBinaryExpr constructs a binary node.
func NewBinaryExpr(loc source.Location, op BinaryOp, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{exprBase{loc}, op, lhs, rhs}
}

// Kind identifies this node as KindBinary.
func (e *BinaryExpr) Kind() Kind { return KindBinary }

// AssignmentExpr is a statement-level assignment.  The Target must be an
// lvalue: a bare identifier, or (per the downstream binder) an
// ion-qualified one -- both are represented here as IdentifierExpr, since
// distinguishing the two requires symbol resolution, which is out of
// scope for this front end.
type AssignmentExpr struct {
	exprBase
	Target *IdentifierExpr
	Value  Expr
}

// NewAssignmentExpr constructs an assignment node.
func NewAssignmentExpr(loc source.Location, target *IdentifierExpr, value Expr) *AssignmentExpr {
	return &AssignmentExpr{exprBase{loc}, target, value}
}

// Kind identifies this node as KindAssignment.
func (e *AssignmentExpr) Kind() Kind { return KindAssignment }

// ----------------------------------------------------------------------------
// Downcast helpers, standing in for the "is_*" predicates of the original
// design (spec §9): each returns the concrete node and true when e holds
// the requested variant.
// ----------------------------------------------------------------------------

// AsInteger returns e as an *IntegerExpr, if it is one.
func AsInteger(e Expr) (*IntegerExpr, bool) { v, ok := e.(*IntegerExpr); return v, ok }

// AsReal returns e as a *RealExpr, if it is one.
func AsReal(e Expr) (*RealExpr, bool) { v, ok := e.(*RealExpr); return v, ok }

// AsIdentifier returns e as an *IdentifierExpr, if it is one.
func AsIdentifier(e Expr) (*IdentifierExpr, bool) { v, ok := e.(*IdentifierExpr); return v, ok }

// AsCall returns e as a *CallExpr, if it is one.
func AsCall(e Expr) (*CallExpr, bool) { v, ok := e.(*CallExpr); return v, ok }

// AsUnary returns e as a *UnaryExpr, if it is one.
func AsUnary(e Expr) (*UnaryExpr, bool) { v, ok := e.(*UnaryExpr); return v, ok }

// AsBinary returns e as a *BinaryExpr, if it is one.
func AsBinary(e Expr) (*BinaryExpr, bool) { v, ok := e.(*BinaryExpr); return v, ok }

// AsAssignment returns e as an *AssignmentExpr, if it is one.
func AsAssignment(e Expr) (*AssignmentExpr, bool) { v, ok := e.(*AssignmentExpr); return v, ok }
