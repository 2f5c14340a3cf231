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

// Package cia implements the 6526 complex interface adapter. The C64 has
// two: CIA1 drives the keyboard matrix and raises IRQs, CIA2 drives the
// serial bus and the VIC bank selection and raises NMIs. The distinction is
// made by the machine, not by this package; both are the same chip.
//
// The interval timers and the interrupt control register are the parts that
// matter to most programs and they are implemented fully. The time of day
// clock and the serial shift register are register stores only. Timer B
// counts system clocks only; the timer A underflow counting modes are not
// implemented.
package cia
