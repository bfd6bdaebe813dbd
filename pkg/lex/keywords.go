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
package lex

// keywords is the reserved-word table, built once at package initialisation
// as immutable data (spec §9 "global reserved-word / intrinsic tables").
// Block keywords are uppercase as written in mechanism source files;
// intrinsic names are lowercase.
var keywords = map[string]TokenKind{
	"PROCEDURE":            KW_PROCEDURE,
	"FUNCTION":             KW_FUNCTION,
	"LOCAL":                KW_LOCAL,
	"SOLVE":                KW_SOLVE,
	"METHOD":               KW_METHOD,
	"CONDUCTANCE":          KW_CONDUCTANCE,
	"USEION":               KW_USEION,
	"NONSPECIFIC":          KW_NONSPECIFIC,
	"NONSPECIFIC_CURRENT":  KW_NONSPECIFIC_CURRENT,
	"INITIAL":              KW_INITIAL,
	"IF":                   KW_IF,
	"ELSE":                 KW_ELSE,
	"STATE":                KW_STATE,
	"PARAMETER":            KW_PARAMETER,
	"ASSIGNED":             KW_ASSIGNED,
	"UNITS":                KW_UNITS,
	"NEURON":               KW_NEURON,
	"BREAKPOINT":           KW_BREAKPOINT,
	"KINETIC":              KW_KINETIC,
	"DERIVATIVE":           KW_DERIVATIVE,
	"LINEAR":               KW_LINEAR,
	"NET_RECEIVE":          KW_NET_RECEIVE,
	"CONSERVE":             KW_CONSERVE,
	"TITLE":                KW_TITLE,
	"SUFFIX":               KW_SUFFIX,
	"POINT_PROCESS":        KW_POINT_PROCESS,
	"RANGE":                KW_RANGE,
	"GLOBAL":               KW_GLOBAL,
	"READ":                 KW_READ,
	"WRITE":                KW_WRITE,
	"VALENCE":              KW_VALENCE,
	"min":                  KW_MIN,
	"max":                  KW_MAX,
	"exp":                  KW_EXP,
	"log":                  KW_LOG,
	"abs":                  KW_ABS,
	"cnexp":                KW_CNEXP,
	"sparse":               KW_SPARSE,
}

// LookupKeyword returns the keyword token kind for name, or IDENTIFIER (and
// false) if name is not a reserved word.
func LookupKeyword(name string) (TokenKind, bool) {
	kind, ok := keywords[name]
	return kind, ok
}

// IsIntrinsic reports whether kind names one of the built-in math functions
// (min, max, exp, log, abs).
func IsIntrinsic(kind TokenKind) bool {
	switch kind {
	case KW_MIN, KW_MAX, KW_EXP, KW_LOG, KW_ABS:
		return true
	default:
		return false
	}
}
