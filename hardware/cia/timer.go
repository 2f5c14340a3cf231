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

package cia

import "fmt"

// control register bits common to both timers.
const (
	crStart     = uint8(0x01)
	crOneShot   = uint8(0x08)
	crForceLoad = uint8(0x10)
)

// timer is one of the two 16 bit interval timers in a CIA.
type timer struct {
	label string

	// the counter decrements every cycle while the timer is started. on
	// underflow it is reloaded from the latch
	counter uint16
	latch   uint16

	// the control register. the force load bit is a strobe and is never
	// stored
	control uint8
}

func (tmr *timer) String() string {
	return fmt.Sprintf("%s=%#04x latch=%#04x ctrl=%#02x", tmr.label, tmr.counter, tmr.latch, tmr.control)
}

func (tmr *timer) reset() {
	// the latch of a 6526 timer is all ones at power on
	tmr.counter = 0xffff
	tmr.latch = 0xffff
	tmr.control = 0x00
}

func (tmr *timer) writeLo(data uint8) {
	tmr.latch = (tmr.latch & 0xff00) | uint16(data)
}

// writing the high byte of a stopped timer also loads the counter.
func (tmr *timer) writeHi(data uint8) {
	tmr.latch = (tmr.latch & 0x00ff) | (uint16(data) << 8)
	if tmr.control&crStart != crStart {
		tmr.counter = tmr.latch
	}
}

func (tmr *timer) writeControl(data uint8) {
	if data&crForceLoad == crForceLoad {
		tmr.counter = tmr.latch
	}
	tmr.control = data & ^crForceLoad
}

// step the timer forward n cycles, returning the number of underflows that
// occurred. a one-shot timer stops on the first underflow.
func (tmr *timer) step(n int) int {
	if tmr.control&crStart != crStart {
		return 0
	}

	underflows := 0
	for n > 0 {
		if int(tmr.counter) >= n {
			tmr.counter -= uint16(n)
			return underflows
		}

		// the cycle that takes the counter below zero reloads it from the
		// latch
		n -= int(tmr.counter) + 1
		tmr.counter = tmr.latch
		underflows++

		if tmr.control&crOneShot == crOneShot {
			tmr.control &= ^crStart
			return underflows
		}
	}

	return underflows
}
