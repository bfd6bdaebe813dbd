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

// StoichTermExpr is a single signed, integer-weighted species reference
// within a stoichiometric expression, e.g. "2A" or "-B".
type StoichTermExpr struct {
	exprBase
	// Coefficient is the unsigned magnitude; it defaults to 1 when no
	// digits were written.
	Coefficient int64
	Negative    bool
	Name        string
}

// NewStoichTermExpr constructs a stoichiometric term.
func NewStoichTermExpr(loc source.Location, coefficient int64, negative bool, name string) *StoichTermExpr {
	return &StoichTermExpr{exprBase{loc}, coefficient, negative, name}
}

// Kind identifies this node as KindStoichTerm.
func (e *StoichTermExpr) Kind() Kind { return KindStoichTerm }

// Value returns the signed coefficient of this term.
func (e *StoichTermExpr) Value() int64 {
	if e.Negative {
		return -e.Coefficient
	}

	return e.Coefficient
}

// StoichExpr is an ordered, possibly empty list of stoichiometric terms.
type StoichExpr struct {
	exprBase
	Terms []*StoichTermExpr
}

// NewStoichExpr constructs a stoichiometric expression from its terms.
func NewStoichExpr(loc source.Location, terms []*StoichTermExpr) *StoichExpr {
	if terms == nil {
		terms = []*StoichTermExpr{}
	}

	return &StoichExpr{exprBase{loc}, terms}
}

// Kind identifies this node as KindStoich.
func (e *StoichExpr) Kind() Kind { return KindStoich }

// AbsCoefficientSum returns the sum of |coefficient| across all terms,
// which spec §8 requires to equal the number of identifier tokens
// consumed while parsing this expression.
func (e *StoichExpr) AbsCoefficientSum() int64 {
	var total int64
	for _, t := range e.Terms {
		total += t.Coefficient
	}

	return total
}

// ReactionExpr is a kinetic reaction scheme: lhs <-> rhs (forward, reverse).
type ReactionExpr struct {
	exprBase
	Lhs     *StoichExpr
	Rhs     *StoichExpr
	Forward Expr
	Reverse Expr
}

// NewReactionExpr constructs a reaction node.
func NewReactionExpr(loc source.Location, lhs, rhs *StoichExpr, forward, reverse Expr) *ReactionExpr {
	return &ReactionExpr{exprBase{loc}, lhs, rhs, forward, reverse}
}

// Kind identifies this node as KindReaction.
func (e *ReactionExpr) Kind() Kind { return KindReaction }

// ConserveExpr constrains a stoichiometric sum to equal a scalar
// expression: CONSERVE lhs = rhs.
type ConserveExpr struct {
	exprBase
	Lhs *StoichExpr
	Rhs Expr
}

// NewConserveExpr constructs a conserve node.
func NewConserveExpr(loc source.Location, lhs *StoichExpr, rhs Expr) *ConserveExpr {
	return &ConserveExpr{exprBase{loc}, lhs, rhs}
}

// Kind identifies this node as KindConserve.
func (e *ConserveExpr) Kind() Kind { return KindConserve }

// AsStoichTerm returns e as a *StoichTermExpr, if it is one.
func AsStoichTerm(e Expr) (*StoichTermExpr, bool) { v, ok := e.(*StoichTermExpr); return v, ok }

// AsStoich returns e as a *StoichExpr, if it is one.
func AsStoich(e Expr) (*StoichExpr, bool) { v, ok := e.(*StoichExpr); return v, ok }

// AsReaction returns e as a *ReactionExpr, if it is one.
func AsReaction(e Expr) (*ReactionExpr, bool) { v, ok := e.(*ReactionExpr); return v, ok }

// AsConserve returns e as a *ConserveExpr, if it is one.
func AsConserve(e Expr) (*ConserveExpr, bool) { v, ok := e.(*ConserveExpr); return v, ok }
