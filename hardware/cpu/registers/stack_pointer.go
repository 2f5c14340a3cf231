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

package registers

import "fmt"

// the stack is always in page one of memory.
const stackOrigin = uint16(0x0100)

// StackPointer is an 8 bit register. Unlike the general purpose Register
// type, the Address() function folds in the page one offset. The stack
// pointer wraps around inside page one and never touches any other page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) *StackPointer {
	return &StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#04x", sp.Address())
}

// Value returns the current value of the stack pointer without the page one
// offset. This is the value that is transferred by the TSX instruction.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16 bit address on page one that the stack pointer
// is currently pointing to.
func (sp StackPointer) Address() uint16 {
	return stackOrigin | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment stack pointer, wrapping around page one as required.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement stack pointer, wrapping around page one as required.
func (sp *StackPointer) Decrement() {
	sp.value--
}
