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

// Package vic implements the video interface chip. The VIC is the timing
// heart of the C64: it owns the raster counter and the emulation counts a
// frame as complete when the raster wraps, at which point the television is
// signalled.
//
// The chip is stepped by the cycle rather than by the pixel. Exact analog
// timing (badlines, sprite stalls, border units) is out of scope; what is
// kept is the raster counter, the raster compare interrupt and the memory
// interface that a text mode screen is built from.
package vic
