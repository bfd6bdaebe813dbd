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

// Status reports whether a Module accumulated any diagnostics while being
// parsed.
type Status uint

const (
	// StatusHappy indicates the module parsed with no errors.
	StatusHappy Status = iota
	// StatusError indicates at least one diagnostic was recorded.
	StatusError
)

// IonDep captures one USEION clause: the ion species, which of its
// variables this mechanism reads and writes, and its optional declared
// valence.
type IonDep struct {
	Ion     string
	Read    []string
	Write   []string
	Valence *int // nil when no VALENCE clause was given
}

// NeuronInfo captures the declarations made inside a mechanism's NEURON
// block.
type NeuronInfo struct {
	Suffix              string
	PointProcess        string
	NonspecificCurrents []string
	IonDeps             []IonDep
	Range               []string
	Global              []string
}

// UnitDecl is one entry of a UNITS block: "(from) = (to)".  UNITS is
// parsed and retained but not semantically interpreted, per spec §4.2.
type UnitDecl struct {
	Loc  source.Location
	From string
	To   string
}

// Module is the container populated by a single Parser.Parse call: the
// mechanism's declarative metadata plus its full symbol table.  A Module
// is not shared across goroutines during parsing (spec §5); once parsing
// completes it may safely be read concurrently by downstream passes.
type Module struct {
	sourceText string
	filename   string

	Title      string
	Neuron     NeuronInfo
	StateVars  []string
	Parameters []string
	Assigned   []string
	Units      []UnitDecl

	symbols *SymbolTable
	errors  []source.SyntaxError
}

// NewModule constructs an empty module over the given source text and
// filename (used only for diagnostics).
func NewModule(sourceText, filename string) *Module {
	return &Module{
		sourceText: sourceText,
		filename:   filename,
		symbols:    NewSymbolTable(),
	}
}

// SourceText returns the original source text this module was parsed from.
func (m *Module) SourceText() string {
	return m.sourceText
}

// Filename returns the filename associated with this module, for
// diagnostics; it may be empty.
func (m *Module) Filename() string {
	return m.filename
}

// Symbols returns the module's symbol table.
func (m *Module) Symbols() *SymbolTable {
	return m.symbols
}

// AddError appends a diagnostic to the module.  Used by the parser during
// pass 1's block-level error recovery (spec §7: "continue at the next
// top-level keyword only in pass 1 descriptive scanning").
func (m *Module) AddError(err source.SyntaxError) {
	m.errors = append(m.errors, err)
}

// Errors returns every diagnostic accumulated while parsing this module.
func (m *Module) Errors() []source.SyntaxError {
	return m.errors
}

// FirstError returns the first diagnostic recorded, or nil if the module
// parsed cleanly.
func (m *Module) FirstError() *source.SyntaxError {
	if len(m.errors) == 0 {
		return nil
	}

	return &m.errors[0]
}

// Status reports StatusError if any diagnostic was recorded, else
// StatusHappy.
func (m *Module) Status() Status {
	if len(m.errors) > 0 {
		return StatusError
	}

	return StatusHappy
}

// Name returns the mechanism's declared name: its SUFFIX if it is a
// distributed mechanism, else its POINT_PROCESS name, else empty.
func (m *Module) Name() string {
	if m.Neuron.Suffix != "" {
		return m.Neuron.Suffix
	}

	return m.Neuron.PointProcess
}
