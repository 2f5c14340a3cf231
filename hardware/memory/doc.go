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

// Package memory implements the memory system of the C64. The 6510 address
// space is fully decoded: every address resolves to RAM, to one of the three
// ROMs, or to a chip register in the IO area, depending on the state of the
// bank latch in the 6510 processor port.
//
// The memorymap sub-package handles the translation of address and bank
// latch to memory area. The cpubus and chipbus sub-packages define the
// interfaces through which the CPU and the chips access memory.
//
// Two details of the hardware are worth noting. First, writes to an address
// where a ROM is banked in fall through to the RAM underneath; the ROMs are
// read only but the RAM below them is not. Second, the colour RAM is a 4 bit
// chip and always visible in the IO area; reads return only the low nibble.
package memory
