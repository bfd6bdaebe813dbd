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
package parser

import (
	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/lex"
	"github.com/cpehle/arbor/pkg/source"
)

// pass2 walks the procedural blocks pass 1 registered, rewinding a fresh
// Lexer onto each one's recorded body offset and parsing its statements.
// Per spec §7, pass 2 aborts entirely -- not merely the current block -- on
// the first error, since a malformed body downstream of a truncated one
// would only produce noise.
func (p *Parser) pass2() {
	for _, sym := range p.procedural {
		switch s := sym.(type) {
		case *ast.Procedure:
			body, err := p.parseProceduralBody(s.BodyOffset, s.BodyLine, s.BodyColumn)
			if err != nil {
				p.recordError(err)
				return
			}

			s.Body = body

		case *ast.Function:
			body, err := p.parseProceduralBody(s.BodyOffset, s.BodyLine, s.BodyColumn)
			if err != nil {
				p.recordError(err)
				return
			}

			s.Body = body

		case *ast.NetReceive:
			if err := p.parseNetReceiveBody(s); err != nil {
				p.recordError(err)
				return
			}
		}
	}
}

// parseProceduralBody rewinds a sub-parser onto a block body whose leading
// '{' pass 1 already consumed, and parses statements up to the matching
// '}'.
func (p *Parser) parseProceduralBody(offset int, line, col uint32) (*ast.BlockExpr, error) {
	sub := p.subParserAt(offset, line, col)
	return sub.parseBlockBody(source.NewLocation(line, col), false)
}

// parseNetReceiveBody rewinds onto the point right after the NET_RECEIVE
// keyword (before its parameter list), parses the declared event-argument
// list, and then the block body -- the one procedural form whose header
// carries data pass 2, not pass 1, must capture (spec §4.2, §9).
func (p *Parser) parseNetReceiveBody(s *ast.NetReceive) error {
	sub := p.subParserAt(s.BodyOffset, s.BodyLine, s.BodyColumn)

	if _, err := sub.expect(lex.LPAREN); err != nil {
		return err
	}

	args := []string{}

	if sub.peekKind() != lex.RPAREN {
		name, err := sub.expect(lex.IDENTIFIER)
		if err != nil {
			return err
		}

		args = append(args, name.Spelling)

		for sub.peekKind() == lex.COMMA {
			sub.get()

			name, err := sub.expect(lex.IDENTIFIER)
			if err != nil {
				return err
			}

			args = append(args, name.Spelling)
		}
	}

	if _, err := sub.expect(lex.RPAREN); err != nil {
		return err
	}

	body, err := sub.parseBlock(false)
	if err != nil {
		return err
	}

	s.EventArgs = args
	s.Body = body

	return nil
}

// subParserAt constructs a Parser sharing this Parser's module and options
// but reading from a freshly rewound Lexer -- the "two-pass via lexer
// rewind" design of spec §9, avoiding any token buffering between passes.
func (p *Parser) subParserAt(offset int, line, col uint32) *Parser {
	return &Parser{
		src:    p.src,
		lexer:  lex.NewLexerAt(p.src, offset, line, col),
		module: p.module,
		opts:   p.opts,
	}
}
