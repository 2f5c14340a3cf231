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

// Package chipbus defines the interfaces between the memory system and the
// chips that occupy the IO area of the memory map.
package chipbus

// Chip is implemented by any chip with registers that appear in the IO area
// of the memory map (the VIC, the SID and the two CIAs). The register
// argument has already been masked down to the chip's register window by the
// memory package; mirroring of the chip registers throughout the chip's page
// is therefore invisible to implementations.
type Chip interface {
	ChipRead(register uint8) uint8
	ChipWrite(register uint8, data uint8)
}

// VideoBus is the view of memory as seen by the VIC chip. The VIC has a 14
// bit address bus and sees a different 16k of memory depending on the bank
// selected on CIA2 port A. The translation from 14 bit to 16 bit address,
// including the character ROM shadow, happens inside the memory package.
type VideoBus interface {
	VideoRead(address uint16) uint8
	ColorRead(address uint16) uint8
}
