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

import (
	"fmt"
)

// the sixteen registers of the 6526. addresses arriving through ChipRead and
// ChipWrite have already been masked down to this range.
const (
	regPRA  = 0x00
	regPRB  = 0x01
	regDDRA = 0x02
	regDDRB = 0x03
	regTALo = 0x04
	regTAHi = 0x05
	regTBLo = 0x06
	regTBHi = 0x07
	regTOD0 = 0x08
	regTOD1 = 0x09
	regTOD2 = 0x0a
	regTOD3 = 0x0b
	regSDR  = 0x0c
	regICR  = 0x0d
	regCRA  = 0x0e
	regCRB  = 0x0f
)

// bits of the interrupt control register.
const (
	icrTimerA = uint8(0x01)
	icrTimerB = uint8(0x02)
	icrAlarm  = uint8(0x04)
	icrSDR    = uint8(0x08)
	icrFLAG   = uint8(0x10)
)

// CIA implements the 6526 complex interface adapter. It implements the
// chipbus.Chip interface.
type CIA struct {
	label string

	timerA timer
	timerB timer

	// interrupt flags accumulate until the ICR is read; the mask selects
	// which flags assert the interrupt line
	icrFlags uint8
	icrMask  uint8

	// the peripheral ports. no peripherals are modelled so input bits read
	// as pulled high
	pra  uint8
	prb  uint8
	ddra uint8
	ddrb uint8

	// the time of day clock and the serial shift register are stores only
	tod [4]uint8
	sdr uint8
}

// NewCIA is the preferred method of initialisation for the CIA type. The
// label appears in log entries and String() output.
func NewCIA(label string) *CIA {
	cia := &CIA{label: label}
	cia.timerA.label = "TA"
	cia.timerB.label = "TB"
	cia.Reset()
	return cia
}

func (cia *CIA) String() string {
	return fmt.Sprintf("%s: %s %s icr=%#02x/%#02x", cia.label, cia.timerA.String(), cia.timerB.String(), cia.icrFlags, cia.icrMask)
}

// Reset the CIA to its power on state.
func (cia *CIA) Reset() {
	cia.timerA.reset()
	cia.timerB.reset()
	cia.icrFlags = 0x00
	cia.icrMask = 0x00
	cia.pra = 0x00
	cia.prb = 0x00
	cia.ddra = 0x00
	cia.ddrb = 0x00
	cia.tod = [4]uint8{}
	cia.sdr = 0x00
}

// Step the CIA forward n cycles.
func (cia *CIA) Step(n int) {
	if cia.timerA.step(n) > 0 {
		cia.icrFlags |= icrTimerA
	}
	if cia.timerB.step(n) > 0 {
		cia.icrFlags |= icrTimerB
	}
}

// IRQ returns the state of the interrupt line. The line stays asserted
// until the flags are cleared by a read of the ICR.
func (cia *CIA) IRQ() bool {
	return cia.icrFlags&cia.icrMask != 0x00
}

// SetFlag pulses the FLAG input. On CIA1 the line is wired to the cassette
// read head.
func (cia *CIA) SetFlag() {
	cia.icrFlags |= icrFLAG
}

// PortA returns the effective value of peripheral port A. Input bits read
// as pulled high.
func (cia *CIA) PortA() uint8 {
	return cia.pra | ^cia.ddra
}

// ChipRead is an implementation of chipbus.Chip.
func (cia *CIA) ChipRead(register uint8) uint8 {
	switch register {
	case regPRA:
		return cia.pra | ^cia.ddra
	case regPRB:
		return cia.prb | ^cia.ddrb
	case regDDRA:
		return cia.ddra
	case regDDRB:
		return cia.ddrb
	case regTALo:
		return uint8(cia.timerA.counter)
	case regTAHi:
		return uint8(cia.timerA.counter >> 8)
	case regTBLo:
		return uint8(cia.timerB.counter)
	case regTBHi:
		return uint8(cia.timerB.counter >> 8)
	case regTOD0, regTOD1, regTOD2, regTOD3:
		return cia.tod[register-regTOD0]
	case regSDR:
		return cia.sdr
	case regICR:
		// reading the ICR returns the accumulated flags, with bit 7 echoing
		// the interrupt line, and clears them
		v := cia.icrFlags
		if cia.IRQ() {
			v |= 0x80
		}
		cia.icrFlags = 0x00
		return v
	case regCRA:
		return cia.timerA.control
	case regCRB:
		return cia.timerB.control
	}

	return 0x00
}

// ChipWrite is an implementation of chipbus.Chip.
func (cia *CIA) ChipWrite(register uint8, data uint8) {
	switch register {
	case regPRA:
		cia.pra = data
	case regPRB:
		cia.prb = data
	case regDDRA:
		cia.ddra = data
	case regDDRB:
		cia.ddrb = data
	case regTALo:
		cia.timerA.writeLo(data)
	case regTAHi:
		cia.timerA.writeHi(data)
	case regTBLo:
		cia.timerB.writeLo(data)
	case regTBHi:
		cia.timerB.writeHi(data)
	case regTOD0, regTOD1, regTOD2, regTOD3:
		cia.tod[register-regTOD0] = data
	case regSDR:
		cia.sdr = data
	case regICR:
		// bit 7 selects whether the written bits set or clear the mask
		if data&0x80 == 0x80 {
			cia.icrMask |= data & 0x1f
		} else {
			cia.icrMask &= ^(data & 0x1f)
		}
	case regCRA:
		cia.timerA.writeControl(data)
	case regCRB:
		cia.timerB.writeControl(data)
	}
}
