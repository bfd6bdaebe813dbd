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
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpehle/arbor/pkg/ast"
	"github.com/cpehle/arbor/pkg/parser"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "log pass 1/pass 2 trace output")
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mdlcheck FILE",
	Short: "Parse a mechanism source file and report its status.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := log.StandardLogger()
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		filename := args[0]

		src, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		module := parser.ParseModule(string(src), filename, parser.Options{Logger: logger, Filename: filename})

		report(module)

		if module.Status() != ast.StatusHappy {
			os.Exit(1)
		}

		return nil
	},
}

// report prints a module's status, first error, and symbol summary to
// stdout -- the smoke-test surface this tool exists to exercise.
func report(m *ast.Module) {
	name := m.Name()
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Printf("mechanism: %s\n", name)

	if m.Title != "" {
		fmt.Printf("title: %s\n", m.Title)
	}

	if m.Status() != ast.StatusHappy {
		fmt.Printf("status: ERROR (%d diagnostic(s))\n", len(m.Errors()))

		if first := m.FirstError(); first != nil {
			fmt.Printf("first error: %s\n", first.Error())
		}

		return
	}

	fmt.Println("status: OK")
	fmt.Printf("symbols: %d\n", m.Symbols().Len())

	for _, sym := range m.Symbols().Symbols() {
		fmt.Printf("  %-12s %s\n", symbolKindLabel(sym), sym.SymbolName())
	}
}

func symbolKindLabel(sym ast.Symbol) string {
	switch sym.Kind() {
	case ast.SymProcedure:
		return "procedure"
	case ast.SymFunction:
		return "function"
	case ast.SymNetReceive:
		return "net_receive"
	case ast.SymVariable:
		v, _ := ast.AsVariable(sym)
		return string(v.Visibility)
	default:
		return "symbol"
	}
}
