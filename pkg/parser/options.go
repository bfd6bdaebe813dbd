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

// Package parser implements the two-pass recursive-descent parser: pass 1
// scans descriptive blocks and populates a Module's symbol table, pass 2
// parses procedural block bodies into AST attached to the corresponding
// symbols.  Parser holds a Lexer by composition and forwards Peek/Get/
// Location to it rather than embedding it.  The lexer's Status is not
// forwarded; a lexical error reaches the parser as an ERROR token.
package parser

import log "github.com/sirupsen/logrus"

// Options configures a Parser.  It is passed by value, mirroring
// go-corset's small per-command configuration structs
// (pkg/cmd/zkc/root.go's field.Config) rather than mutable global state.
type Options struct {
	// Logger receives a Debug-level trace entry as each pass starts, and
	// Warn-level entries when pass 1 recovers after a descriptive-block
	// error.  Defaults to logrus.StandardLogger().
	Logger *log.Logger
	// Filename is not read by the parser; the Module's filename comes from
	// the filename argument of New or ParseModule.
	Filename string
	// MaxErrors reserves room for future multi-error batching in pass 2;
	// pass 2 currently always aborts on the first error, per spec.
	MaxErrors int
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return log.StandardLogger()
}
