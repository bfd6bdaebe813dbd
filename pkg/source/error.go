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
package source

import "fmt"

// SyntaxError is a structured diagnostic record retaining the location in
// the original source where the error arose, along with a human-readable
// message.  It implements the standard error interface so it can be
// returned or wrapped like any other Go error.
type SyntaxError struct {
	// Message describing what went wrong.
	Message string
	// Location within the source file at which the error was detected.
	Location Location
}

// NewSyntaxError constructs a syntax error at a given location.
func NewSyntaxError(loc Location, message string, args ...any) *SyntaxError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	return &SyntaxError{message, loc}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location.String(), e.Message)
}
