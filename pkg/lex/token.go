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

// Package lex implements the character-stream lexer for the mechanism
// description language: identifier/number classification, keyword
// recognition and multi-character operator scanning.
package lex

import (
	"fmt"

	"github.com/cpehle/arbor/pkg/source"
)

// TokenKind tags every distinct lexical category recognised by the lexer.
type TokenKind uint

// The full set of token kinds.  The two terminal kinds ERROR and EOF come
// first, followed by punctuation and single/double character operators,
// literals and reserved words.
const (
	ERROR TokenKind = iota
	EOF

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	APOSTROPHE
	TILDE

	// Arithmetic / assignment operators
	EQUALS
	PLUS
	MINUS
	STAR
	SLASH
	CARET

	// Comparison operators
	LT
	LE
	GT
	GE
	EQEQ
	NE

	// Reaction arrows
	ARROW   // <->
	RARROW  // ->  (one-directional; rejected by the reaction grammar)

	// Literals
	INTEGER
	IDENTIFIER
	REAL
	STRING

	// Block keywords
	KW_PROCEDURE
	KW_FUNCTION
	KW_LOCAL
	KW_SOLVE
	KW_METHOD
	KW_CONDUCTANCE
	KW_USEION
	KW_NONSPECIFIC
	KW_NONSPECIFIC_CURRENT
	KW_INITIAL
	KW_IF
	KW_ELSE
	KW_STATE
	KW_PARAMETER
	KW_ASSIGNED
	KW_UNITS
	KW_NEURON
	KW_BREAKPOINT
	KW_KINETIC
	KW_DERIVATIVE
	KW_LINEAR
	KW_NET_RECEIVE
	KW_CONSERVE
	KW_TITLE
	KW_SUFFIX
	KW_POINT_PROCESS
	KW_RANGE
	KW_GLOBAL
	KW_READ
	KW_WRITE
	KW_VALENCE

	// Intrinsic names.  The lexer always returns these kinds for their
	// spellings; the parser also accepts them as declared names in LOCAL,
	// STATE, PARAMETER and ASSIGNED lists.
	KW_MIN
	KW_MAX
	KW_EXP
	KW_LOG
	KW_ABS
	KW_CNEXP
	KW_SPARSE
)

var tokenNames = map[TokenKind]string{
	ERROR: "ERROR", EOF: "EOF",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", COMMA: ",",
	APOSTROPHE: "'", TILDE: "~",
	EQUALS: "=", PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", CARET: "^",
	LT: "<", LE: "<=", GT: ">", GE: ">=", EQEQ: "==", NE: "!=",
	ARROW: "<->", RARROW: "->",
	INTEGER: "INTEGER", IDENTIFIER: "IDENTIFIER", REAL: "REAL", STRING: "STRING",
	KW_PROCEDURE: "PROCEDURE", KW_FUNCTION: "FUNCTION", KW_LOCAL: "LOCAL",
	KW_SOLVE: "SOLVE", KW_METHOD: "METHOD", KW_CONDUCTANCE: "CONDUCTANCE",
	KW_USEION: "USEION", KW_NONSPECIFIC: "NONSPECIFIC",
	KW_NONSPECIFIC_CURRENT: "NONSPECIFIC_CURRENT", KW_INITIAL: "INITIAL",
	KW_IF: "IF", KW_ELSE: "ELSE", KW_STATE: "STATE", KW_PARAMETER: "PARAMETER",
	KW_ASSIGNED: "ASSIGNED", KW_UNITS: "UNITS", KW_NEURON: "NEURON",
	KW_BREAKPOINT: "BREAKPOINT", KW_KINETIC: "KINETIC", KW_DERIVATIVE: "DERIVATIVE",
	KW_LINEAR: "LINEAR", KW_NET_RECEIVE: "NET_RECEIVE", KW_CONSERVE: "CONSERVE",
	KW_TITLE: "TITLE", KW_SUFFIX: "SUFFIX", KW_POINT_PROCESS: "POINT_PROCESS",
	KW_RANGE: "RANGE", KW_GLOBAL: "GLOBAL", KW_READ: "READ", KW_WRITE: "WRITE",
	KW_VALENCE: "VALENCE",
	KW_MIN: "min", KW_MAX: "max", KW_EXP: "exp", KW_LOG: "log", KW_ABS: "abs",
	KW_CNEXP: "cnexp", KW_SPARSE: "sparse",
}

// String renders a token kind by name, for diagnostics.
func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}

	return fmt.Sprintf("TokenKind(%d)", uint(k))
}

// Token pairs a lexical category with the exact text matched and the
// location at which it starts.
type Token struct {
	Kind     TokenKind
	Spelling string
	Location source.Location
}

// String renders a token for diagnostics and test failure output.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Spelling, t.Location)
}

// Is reports whether this token has the given kind.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}
