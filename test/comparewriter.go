// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package test

import "strings"

// CompareWriter is an io.Writer that accumulates everything written to it so
// that a test can check the output against an expected string.
type CompareWriter struct {
	b strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.b.Write(p)
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.b.Reset()
}

// Compare the accumulated output with the expected string.
func (cw *CompareWriter) Compare(expected string) bool {
	return cw.b.String() == expected
}

func (cw *CompareWriter) String() string {
	return cw.b.String()
}
