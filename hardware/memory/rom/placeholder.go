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

package rom

import (
	"github.com/gopher64/gopher64/hardware/memory"
)

// the placeholder KERNAL. hand assembled. it sets up the stack, empties the
// keyboard queue, points the VIC at the screen matrix and character set,
// clears the screen, prints a ready prompt and idles with interrupts
// enabled. the IRQ handler acknowledges the CIA1 and VIC interrupt sources
// so that raster interrupts do not wedge the machine.
//
//	E000  78            SEI
//	E001  A2 FD         LDX #$FD
//	E003  9A            TXS
//	E004  A9 00         LDA #$00
//	E006  85 C6         STA $C6
//	E008  A9 14         LDA #$14
//	E00A  8D 18 D0      STA $D018
//	E00D  A9 20         LDA #$20
//	E00F  A2 00         LDX #$00
//	E011  9D 00 04      STA $0400,X
//	E014  9D 00 05      STA $0500,X
//	E017  9D 00 06      STA $0600,X
//	E01A  9D 00 07      STA $0700,X
//	E01D  E8            INX
//	E01E  D0 F1         BNE $E011
//	E020  A2 00         LDX #$00
//	E022  BD 38 E0      LDA $E038,X
//	E025  F0 06         BEQ $E02D
//	E027  9D 00 04      STA $0400,X
//	E02A  E8            INX
//	E02B  D0 F5         BNE $E022
//	E02D  58            CLI
//	E02E  4C 2E E0      JMP $E02E
//
//	E040  48            PHA
//	E041  AD 0D DC      LDA $DC0D
//	E044  AD 19 D0      LDA $D019
//	E047  8D 19 D0      STA $D019
//	E04A  68            PLA
//	E04B  40            RTI
//
//	E050  40            RTI
var placeholderKernal = []uint8{
	0x78, 0xa2, 0xfd, 0x9a, 0xa9, 0x00, 0x85, 0xc6,
	0xa9, 0x14, 0x8d, 0x18, 0xd0, 0xa9, 0x20, 0xa2,
	0x00, 0x9d, 0x00, 0x04, 0x9d, 0x00, 0x05, 0x9d,
	0x00, 0x06, 0x9d, 0x00, 0x07, 0xe8, 0xd0, 0xf1,
	0xa2, 0x00, 0xbd, 0x38, 0xe0, 0xf0, 0x06, 0x9d,
	0x00, 0x04, 0xe8, 0xd0, 0xf5, 0x58, 0x4c, 0x2e,
	0xe0,
}

// the ready prompt in screen codes, at 0xe038.
var placeholderMessage = []uint8{
	0x12, 0x05, 0x01, 0x04, 0x19, 0x2e, 0x00,
}

var placeholderIRQ = []uint8{
	0x48, 0xad, 0x0d, 0xdc, 0xad, 0x19, 0xd0, 0x8d,
	0x19, 0xd0, 0x68, 0x40,
}

// Placeholder installs the built-in KERNAL and character set. The BASIC ROM
// is left empty; the placeholder KERNAL never banks it in.
func Placeholder(mem *memory.Memory) {
	for i := range mem.BasicROM {
		mem.BasicROM[i] = 0x00
	}
	for i := range mem.KernalROM {
		mem.KernalROM[i] = 0x00
	}

	copy(mem.KernalROM[0x0000:], placeholderKernal)
	copy(mem.KernalROM[0x0038:], placeholderMessage)
	copy(mem.KernalROM[0x0040:], placeholderIRQ)
	mem.KernalROM[0x0050] = 0x40 // RTI

	// hardware vectors
	mem.KernalROM[0x1ffa] = 0x50 // NMI
	mem.KernalROM[0x1ffb] = 0xe0
	mem.KernalROM[0x1ffc] = 0x00 // RESET
	mem.KernalROM[0x1ffd] = 0xe0
	mem.KernalROM[0x1ffe] = 0x40 // IRQ
	mem.KernalROM[0x1fff] = 0xe0

	// a diagnostic character set. every glyph renders the bit pattern of its
	// character code as six stripes, so screen memory can be read by eye.
	// space is left blank
	for ch := 0; ch < 0x200; ch++ {
		val := uint8(ch)
		if ch&0xff == 0x20 {
			val = 0x00
		}
		o := ch * 8
		mem.CharROM[o] = 0x00
		for row := 1; row < 7; row++ {
			mem.CharROM[o+row] = val
		}
		mem.CharROM[o+7] = 0x00
	}
}
