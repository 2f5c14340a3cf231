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

// Package test contains functions useful for testing CPU registers. In
// particular it defines equality tests between registers and literal values,
// including the status register against a flag pattern string.
package test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/cpu/registers"
)

// EquateRegisters tests a register type against an expected value. The
// expected value is usually an int but for the status register a string of
// the form "Sv-BdIzc" can be used, where an upper-case letter means the flag
// is expected to be set and a lower-case letter means it is expected to be
// clear.
func EquateRegisters(t *testing.T, r, expected interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Fatalf("unhandled register type for EquateRegisters() function (%T)", r)

	case *registers.Register:
		switch expected := expected.(type) {
		case int:
			if int(r.Value()) != expected {
				t.Errorf("register %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), expected)
			}
		default:
			t.Fatalf("unhandled expected type for Register (%T)", expected)
		}

	case *registers.ProgramCounter:
		switch expected := expected.(type) {
		case int:
			if int(r.Address()) != expected {
				t.Errorf("program counter failed (%#04x - wanted %#04x)", r.Address(), expected)
			}
		default:
			t.Fatalf("unhandled expected type for ProgramCounter (%T)", expected)
		}

	case *registers.StackPointer:
		switch expected := expected.(type) {
		case int:
			if int(r.Value()) != expected {
				t.Errorf("stack pointer failed (%#02x - wanted %#02x)", r.Value(), expected)
			}
		default:
			t.Fatalf("unhandled expected type for StackPointer (%T)", expected)
		}

	case *registers.StatusRegister:
		switch expected := expected.(type) {
		case int:
			if int(r.Value()) != expected {
				t.Errorf("status register failed (%#02x - wanted %#02x)", r.Value(), expected)
			}
		case string:
			if len(expected) != 8 {
				t.Fatalf("status flag pattern must be a string of 8 chars")
			}
			if r.String() != expected {
				t.Errorf("status register failed (%s - wanted %s)", r.String(), expected)
			}
		default:
			t.Fatalf("unhandled expected type for StatusRegister (%T)", expected)
		}
	}
}
