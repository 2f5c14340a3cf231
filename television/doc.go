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

// Package television provides frame signalling and pacing for the emulation.
// Unlike a real television it renders nothing itself; the VIC signals the
// completion of each frame and attached PixelRenderer implementations read
// the screen matrix, colour RAM and character set out of the memory system
// in whatever way suits them.
//
// The television is also the natural home of the frame rate limiter. The
// machine loop runs as fast as it can and the television blocks at each
// NewFrame() until the requested frame rate allows it to continue.
package television
