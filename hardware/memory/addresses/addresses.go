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

// Package addresses names the well known addresses in the KERNAL and BASIC
// work areas. The canonical names are the ones used in the original ROM
// listings.
package addresses

// The 6510 processor port. The data direction register and the port itself
// occupy the first two bytes of the address space. The low three bits of the
// port drive the bank latch.
const (
	ProcessorPortDDR  = uint16(0x0000)
	ProcessorPort     = uint16(0x0001)
	ProcessorPortMask = uint8(0x07)
)

// Cassette control bits of the processor port. The motor bit is active low.
const (
	CassetteSense = uint8(0x10)
	CassetteMotor = uint8(0x20)
)

// Zero page addresses used by the BASIC interpreter. Each is a 16 bit
// pointer stored low byte first.
const (
	TXTTAB = uint16(0x002b) // start of BASIC program text
	VARTAB = uint16(0x002d) // start of BASIC variables (end of program + 1)
	ARYTAB = uint16(0x002f) // start of BASIC arrays
	STREND = uint16(0x0031) // end of BASIC arrays (start of free space)
)

// Addresses in the KERNAL work area relating to the keyboard.
const (
	NDX    = uint16(0x00c6) // number of characters in the keyboard queue
	STKEY  = uint16(0x0091) // stop key indicator (0x7f when STOP pressed)
	KEYD   = uint16(0x0277) // the keyboard queue itself
	MaxNDX = 10             // capacity of the keyboard queue
)

// The screen matrix and the start of BASIC program text in an unexpanded
// machine.
const (
	ScreenMatrix = uint16(0x0400)
	BASICStart   = uint16(0x0801)
)
