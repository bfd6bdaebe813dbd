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

// Package source provides location tracking and diagnostic reporting shared
// by the lexer, parser and AST.
package source

import "fmt"

// Location identifies a single character position within a source file,
// counting lines and columns from one.
type Location struct {
	Line   uint32
	Column uint32
}

// NewLocation constructs a location at a given line and column.
func NewLocation(line, column uint32) Location {
	return Location{line, column}
}

// String formats this location as "line:column", used in diagnostics.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before returns true if this location occurs strictly before other in the
// same file.
func (l Location) Before(other Location) bool {
	return l.Line < other.Line || (l.Line == other.Line && l.Column < other.Column)
}
