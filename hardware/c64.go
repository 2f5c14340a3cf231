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

package hardware

import (
	"github.com/gopher64/gopher64/hardware/cia"
	"github.com/gopher64/gopher64/hardware/cpu"
	"github.com/gopher64/gopher64/hardware/memory"
	"github.com/gopher64/gopher64/hardware/memory/addresses"
	"github.com/gopher64/gopher64/hardware/memory/cpubus"
	"github.com/gopher64/gopher64/hardware/memory/memorymap"
	"github.com/gopher64/gopher64/hardware/sid"
	"github.com/gopher64/gopher64/hardware/tape"
	"github.com/gopher64/gopher64/hardware/vic"
	"github.com/gopher64/gopher64/prgloader"
	"github.com/gopher64/gopher64/television"
)

// C64 is the main container for the emulated components of the machine.
type C64 struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
	SID  *sid.SID

	// Tape is nil unless a tape has been attached
	Tape *tape.Tape

	// tv is not part of the C64 but is attached to it
	TV *television.Television

	// the NMI is edge triggered so the previous state of the CIA2 line is
	// needed
	nmiState bool
}

// NewC64 creates a new C64 and everything associated with the hardware. It
// is used for all aspects of emulation: headless runs, regular play and
// performance measurement.
func NewC64(tv *television.Television) (*C64, error) {
	c64 := &C64{TV: tv}

	c64.Mem = memory.NewMemory()
	c64.CPU = cpu.NewCPU(c64.Mem)
	c64.VIC = vic.NewVIC(tv, c64.Mem)
	c64.CIA1 = cia.NewCIA("CIA1")
	c64.CIA2 = cia.NewCIA("CIA2")
	c64.SID = sid.NewSID()

	if err := c64.Mem.AttachIO(memorymap.OriginVIC, memorymap.MemtopVIC, memorymap.MaskVIC, c64.VIC); err != nil {
		return nil, err
	}
	if err := c64.Mem.AttachIO(memorymap.OriginSID, memorymap.MemtopSID, memorymap.MaskSID, c64.SID); err != nil {
		return nil, err
	}
	if err := c64.Mem.AttachIO(memorymap.OriginCIA1, memorymap.MemtopCIA1, memorymap.MaskCIA, c64.CIA1); err != nil {
		return nil, err
	}
	if err := c64.Mem.AttachIO(memorymap.OriginCIA2, memorymap.MemtopCIA2, memorymap.MaskCIA, c64.CIA2); err != nil {
		return nil, err
	}

	return c64, nil
}

// Reset emulates the reset line of the machine. ROM contents and chip
// attachments survive; everything else returns to its power on state. The
// program counter is loaded from the reset vector.
func (c64 *C64) Reset() {
	c64.Mem.Reset()
	c64.VIC.Reset()
	c64.CIA1.Reset()
	c64.CIA2.Reset()
	c64.SID.Reset()
	c64.TV.Reset()

	c64.CPU.Reset()
	c64.CPU.LoadPCIndirect(cpubus.Reset)

	c64.nmiState = false
}

// stepChips runs the chips forward by the given number of cycles.
func (c64 *C64) stepChips(cycles int) error {
	if err := c64.VIC.Step(cycles); err != nil {
		return err
	}
	c64.CIA1.Step(cycles)
	c64.CIA2.Step(cycles)
	c64.SID.Step(cycles)

	// the VIC bank follows the two low bits of CIA2 port A, inverted
	c64.Mem.SetVICBank(^c64.CIA2.PortA() & 0x03)

	return nil
}

// Step the emulation forward one CPU instruction, running the chips for the
// cycles the instruction consumed and servicing the interrupt lines.
// Returns the total number of cycles consumed.
func (c64 *C64) Step() (int, error) {
	cycles, err := c64.CPU.ExecuteInstruction()
	if err != nil {
		return 0, err
	}

	if err := c64.stepChips(cycles); err != nil {
		return cycles, err
	}

	// the IRQ line is level triggered. CIA1 and the VIC share it
	if c64.CIA1.IRQ() || c64.VIC.IRQ() {
		if n := c64.CPU.IRQ(); n > 0 {
			cycles += n
			if err := c64.stepChips(n); err != nil {
				return cycles, err
			}
		}
	}

	// the NMI line is edge triggered. only CIA2 drives it
	nmi := c64.CIA2.IRQ()
	if nmi && !c64.nmiState {
		n := c64.CPU.NMI()
		cycles += n
		if err := c64.stepChips(n); err != nil {
			return cycles, err
		}
	}
	c64.nmiState = nmi

	// the tape only moves while the motor bit of the processor port is held
	// low. every completed pulse is an edge on CIA1's FLAG line
	if c64.Tape != nil && c64.Mem.RAM[addresses.ProcessorPort]&addresses.CassetteMotor == 0x00 {
		for i := 0; i < c64.Tape.Step(cycles); i++ {
			c64.CIA1.SetFlag()
		}
	}

	if b := c64.SID.Audio(); len(b) > 0 {
		if err := c64.TV.SetAudio(b); err != nil {
			return cycles, err
		}
	}

	return cycles, nil
}

// AttachTape puts a tape in the datasette, rewound and with the play button
// down.
func (c64 *C64) AttachTape(tp *tape.Tape) {
	tp.Rewind()
	c64.Tape = tp
}

// AttachPRG copies a loaded program into RAM at its load address. A program
// loading at the BASIC start is made visible to the interpreter by moving
// the end-of-program pointers.
func (c64 *C64) AttachPRG(loader *prgloader.Loader) error {
	if err := loader.Load(); err != nil {
		return err
	}

	c64.Mem.Load(loader.Origin, loader.Data)

	if loader.Origin == addresses.BASICStart {
		end := loader.Origin + uint16(len(loader.Data))
		c64.Mem.Write16(addresses.VARTAB, end)
		c64.Mem.Write16(addresses.ARYTAB, end)
		c64.Mem.Write16(addresses.STREND, end)
	}

	return nil
}
