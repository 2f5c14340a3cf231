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

package cia_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/cia"
	"github.com/gopher64/gopher64/test"
)

func TestTimerUnderflow(t *testing.T) {
	c := cia.NewCIA("CIA1")

	// load timer A with 10 and start it in continuous mode
	c.ChipWrite(0x04, 10)
	c.ChipWrite(0x05, 0)
	c.ChipWrite(0x0e, 0x01)

	// nine cycles later the counter is at one and no underflow has occurred
	c.Step(9)
	test.Equate(t, c.ChipRead(0x04), 1)
	test.Equate(t, c.ChipRead(0x0d), 0x00)

	// two more cycles and the timer has underflowed and reloaded
	c.Step(2)
	test.Equate(t, c.ChipRead(0x04), 10)

	// the underflow flag is set but without a mask the line is not raised
	test.Equate(t, c.IRQ(), false)
	test.Equate(t, c.ChipRead(0x0d), 0x01)

	// reading the ICR has cleared the flag
	test.Equate(t, c.ChipRead(0x0d), 0x00)
}

func TestTimerInterrupt(t *testing.T) {
	c := cia.NewCIA("CIA1")

	// enable the timer A interrupt
	c.ChipWrite(0x0d, 0x81)

	c.ChipWrite(0x04, 5)
	c.ChipWrite(0x05, 0)
	c.ChipWrite(0x0e, 0x01)

	c.Step(6)
	test.Equate(t, c.IRQ(), true)

	// bit 7 of the ICR echoes the interrupt line. reading clears the flags
	// and drops the line
	test.Equate(t, c.ChipRead(0x0d), 0x81)
	test.Equate(t, c.IRQ(), false)

	// clearing mask bits requires bit 7 of the written value to be unset
	c.ChipWrite(0x0d, 0x01)
	c.Step(6)
	test.Equate(t, c.IRQ(), false)
}

func TestOneShot(t *testing.T) {
	c := cia.NewCIA("CIA2")

	// start timer A in one-shot mode
	c.ChipWrite(0x04, 3)
	c.ChipWrite(0x05, 0)
	c.ChipWrite(0x0e, 0x09)

	// the timer stops after the first underflow
	c.Step(100)
	test.Equate(t, c.ChipRead(0x0d), 0x01)
	test.Equate(t, c.ChipRead(0x04), 3)
	test.Equate(t, c.ChipRead(0x0e), 0x08)

	// restarting runs it once more
	c.ChipWrite(0x0e, 0x09)
	c.Step(4)
	test.Equate(t, c.ChipRead(0x0d), 0x01)
}

func TestForceLoad(t *testing.T) {
	c := cia.NewCIA("CIA1")

	// writing the high byte of a stopped timer loads the counter
	c.ChipWrite(0x06, 0x34)
	c.ChipWrite(0x07, 0x12)
	test.Equate(t, c.ChipRead(0x06), 0x34)
	test.Equate(t, c.ChipRead(0x07), 0x12)

	// a running timer only takes the new latch on force load
	c.ChipWrite(0x0f, 0x01)
	c.Step(4)
	c.ChipWrite(0x06, 0xff)
	c.ChipWrite(0x07, 0x00)
	test.Equate(t, c.ChipRead(0x07), 0x12)
	c.ChipWrite(0x0f, 0x11)
	test.Equate(t, c.ChipRead(0x06), 0xff)
	test.Equate(t, c.ChipRead(0x07), 0x00)

	// the force load bit is a strobe and is not stored
	test.Equate(t, c.ChipRead(0x0f), 0x01)
}

func TestFlagLine(t *testing.T) {
	c := cia.NewCIA("CIA1")

	c.SetFlag()
	test.Equate(t, c.IRQ(), false)
	test.Equate(t, c.ChipRead(0x0d), 0x10)

	c.ChipWrite(0x0d, 0x90)
	c.SetFlag()
	test.Equate(t, c.IRQ(), true)
	test.Equate(t, c.ChipRead(0x0d), 0x90)
}

func TestPorts(t *testing.T) {
	c := cia.NewCIA("CIA2")

	// input bits read as pulled high
	test.Equate(t, c.ChipRead(0x00), 0xff)
	test.Equate(t, c.PortA(), 0xff)

	// output bits read back the written value
	c.ChipWrite(0x02, 0x03)
	c.ChipWrite(0x00, 0x01)
	test.Equate(t, c.PortA(), 0xfd)
}
