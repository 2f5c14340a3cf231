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

// Package keyboard feeds typed characters to the machine through the KERNAL
// keyboard queue rather than through the keyboard matrix. The queue lives at
// a fixed address in the KERNAL work area with its length in the zero page;
// the interpreter drains it from its idle loop. The package translates from
// ASCII and does not interpret keys further.
package keyboard

import (
	"github.com/gopher64/gopher64/hardware/memory"
	"github.com/gopher64/gopher64/hardware/memory/addresses"
)

// Keyboard injects keys into the KERNAL keyboard queue.
type Keyboard struct {
	mem *memory.Memory
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard(mem *memory.Memory) *Keyboard {
	return &Keyboard{mem: mem}
}

// Translate converts an ASCII rune to its PETSCII equivalent. The second
// return value is false if the rune has no equivalent.
func Translate(r rune) (uint8, bool) {
	switch {
	case r == '\n' || r == '\r':
		return 0x0d, true
	case r >= 'a' && r <= 'z':
		// unshifted letters
		return uint8(r) - 0x20, true
	case r >= 'A' && r <= 'Z':
		// shifted letters
		return uint8(r) + 0x80, true
	case r >= ' ' && r <= '@':
		// digits and most punctuation map straight across
		return uint8(r), true
	case r == '[' || r == ']':
		return uint8(r), true
	}

	return 0x00, false
}

// Queue a single rune. Returns false if the rune has no PETSCII equivalent
// or if the queue is full.
func (kb *Keyboard) Queue(r rune) bool {
	v, ok := Translate(r)
	if !ok {
		return false
	}

	ndx := kb.mem.RAM[addresses.NDX]
	if ndx >= addresses.MaxNDX {
		return false
	}

	kb.mem.RAM[addresses.KEYD+uint16(ndx)] = v
	kb.mem.RAM[addresses.NDX] = ndx + 1

	return true
}

// QueueString queues as much of the string as fits, returning the number of
// runes queued.
func (kb *Keyboard) QueueString(s string) int {
	n := 0
	for _, r := range s {
		if !kb.Queue(r) {
			break
		}
		n++
	}
	return n
}

// Stop presses the STOP key. The KERNAL polls the flag during interrupt
// handling.
func (kb *Keyboard) Stop() {
	kb.mem.RAM[addresses.STKEY] = 0x7f
}

// ReleaseStop releases the STOP key.
func (kb *Keyboard) ReleaseStop() {
	kb.mem.RAM[addresses.STKEY] = 0xff
}
