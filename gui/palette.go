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

package gui

// Palette is the sixteen colour palette shared by all renderers. The RGB
// values follow Pepto's measurements of a real machine rather than the
// saturated colours of the service manual.
var Palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xff, 0xff, 0xff}, // white
	{0x68, 0x37, 0x2b}, // red
	{0x70, 0xa4, 0xb2}, // cyan
	{0x6f, 0x3d, 0x86}, // purple
	{0x58, 0x8d, 0x43}, // green
	{0x35, 0x28, 0x79}, // blue
	{0xb8, 0xc7, 0x6f}, // yellow
	{0x6f, 0x4f, 0x25}, // orange
	{0x43, 0x39, 0x00}, // brown
	{0x9a, 0x67, 0x59}, // light red
	{0x44, 0x44, 0x44}, // dark grey
	{0x6c, 0x6c, 0x6c}, // mid grey
	{0x9a, 0xd2, 0x84}, // light green
	{0x6c, 0x5e, 0xb5}, // light blue
	{0x95, 0x95, 0x95}, // light grey
}
