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

package logger

import (
	"strings"
	"testing"

	"github.com/gopher64/gopher64/test"
)

func TestCoalesce(t *testing.T) {
	l := newLogger(10)

	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")
	test.Equate(t, len(l.entries), 1)

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: hello (repeat x3)\n")

	l.log("test", "goodbye")
	test.Equate(t, len(l.entries), 2)
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(3)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")
	l.log("test", "d")
	test.Equate(t, len(l.entries), 3)

	// oldest entry has been lost
	test.Equate(t, l.entries[0].Detail, "b")
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "test: b\ntest: c\n")

	// asking for more entries than exist is not an error
	s.Reset()
	l.tail(s, 100)
	test.Equate(t, s.String(), "test: a\ntest: b\ntest: c\n")
}
