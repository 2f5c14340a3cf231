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

// Package tape implements the datasette. A tape is a sequence of pulse
// lengths in CPU cycles; as the tape is stepped each completed pulse is an
// edge on CIA1's FLAG line, which the loader in the KERNAL times to recover
// the bits. The machine only steps the tape while the motor bit of the
// processor port is active.
//
// Tapes can be loaded from TAP images or from audio recordings of real
// cassettes in WAV or MP3 format, converted to pulses by zero crossing
// detection.
package tape
