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

package vic

// Dimensions of the text mode screen.
const (
	ScreenCols  = 40
	ScreenRows  = 25
	ScreenChars = ScreenCols * ScreenRows
)

// base of the screen matrix within the VIC's 16k view. bits 7-4 of the
// memory pointer register, in units of 1k.
func (vic *VIC) videoMatrixBase() uint16 {
	return uint16(vic.registers[regMemory]>>4) << 10
}

// base of the character set within the VIC's 16k view. bits 3-1 of the
// memory pointer register, in units of 2k.
func (vic *VIC) charsetBase() uint16 {
	return uint16((vic.registers[regMemory]>>1)&0x07) << 11
}

// ScreenChar returns the character code at the given offset into the 40x25
// screen matrix, read through the video bus. The VIC bank and the character
// ROM shadow are the memory system's concern.
func (vic *VIC) ScreenChar(offset int) uint8 {
	return vic.bus.VideoRead(vic.videoMatrixBase() + uint16(offset%ScreenChars))
}

// ScreenColor returns the colour nibble for the given offset into the
// screen matrix.
func (vic *VIC) ScreenColor(offset int) uint8 {
	return vic.bus.ColorRead(uint16(offset % ScreenChars))
}

// CharPattern returns one row of the glyph for the given character code.
func (vic *VIC) CharPattern(code uint8, row int) uint8 {
	return vic.bus.VideoRead(vic.charsetBase() + uint16(code)*8 + uint16(row&0x07))
}

// BorderColor returns the border colour nibble.
func (vic *VIC) BorderColor() uint8 {
	return vic.registers[regBorder] & 0x0f
}

// BackgroundColor returns the background colour nibble.
func (vic *VIC) BackgroundColor() uint8 {
	return vic.registers[regBackgrnd] & 0x0f
}
