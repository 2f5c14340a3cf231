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

package memory_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/memory"
	"github.com/gopher64/gopher64/hardware/memory/addresses"
	"github.com/gopher64/gopher64/hardware/memory/memorymap"
	"github.com/gopher64/gopher64/test"
)

// mockChip records the last register access. reads echo the register number
// so that tests can check the mask that was applied.
type mockChip struct {
	lastRegister uint8
	lastData     uint8
}

func (ch *mockChip) ChipRead(register uint8) uint8 {
	ch.lastRegister = register
	return register
}

func (ch *mockChip) ChipWrite(register uint8, data uint8) {
	ch.lastRegister = register
	ch.lastData = data
}

func TestProcessorPort(t *testing.T) {
	mem := memory.NewMemory()

	// power on state
	test.Equate(t, mem.RAM[addresses.ProcessorPortDDR], 0x2f)
	test.Equate(t, mem.RAM[addresses.ProcessorPort], 0x37)
	test.Equate(t, mem.Bank(), 0x07)

	// writing the port changes the bank latch
	mem.Write(addresses.ProcessorPort, 0x34)
	test.Equate(t, mem.Bank(), 0x04)

	// port bits set to input in the DDR read as pulled high
	mem.Write(addresses.ProcessorPort, 0x35)
	mem.Write(addresses.ProcessorPortDDR, 0x2d)
	test.Equate(t, mem.Bank(), 0x07)
}

func TestROMBanking(t *testing.T) {
	mem := memory.NewMemory()
	mem.BasicROM[0x0000] = 0x94
	mem.KernalROM[0x0000] = 0x85
	mem.CharROM[0x0000] = 0x3c

	// ROMs visible at power on
	test.Equate(t, mem.Read(0xa000), 0x94)
	test.Equate(t, mem.Read(0xe000), 0x85)

	// writes to ROM areas land in the RAM underneath
	mem.Write(0xa000, 0x11)
	mem.Write(0xe000, 0x22)
	test.Equate(t, mem.Read(0xa000), 0x94)
	test.Equate(t, mem.Read(0xe000), 0x85)
	test.Equate(t, mem.RAM[0xa000], 0x11)
	test.Equate(t, mem.RAM[0xe000], 0x22)

	// banking the ROMs out reveals the RAM
	mem.Write(addresses.ProcessorPort, 0x34)
	test.Equate(t, mem.Read(0xa000), 0x11)
	test.Equate(t, mem.Read(0xe000), 0x22)

	// each ROM answers to its own latch bit. LORAM alone restores BASIC but
	// not the KERNAL
	mem.Write(addresses.ProcessorPort, 0x35)
	test.Equate(t, mem.Read(0xa000), 0x94)
	test.Equate(t, mem.Read(0xe000), 0x22)

	// the character ROM appears at 0xd000 when CHAREN is clear
	mem.Write(addresses.ProcessorPort, 0x33)
	test.Equate(t, mem.Read(0xd000), 0x3c)
}

func TestChipWindows(t *testing.T) {
	mem := memory.NewMemory()

	vic := &mockChip{}
	sid := &mockChip{}
	cia1 := &mockChip{}
	cia2 := &mockChip{}
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginVIC, memorymap.MemtopVIC, memorymap.MaskVIC, vic))
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginSID, memorymap.MemtopSID, memorymap.MaskSID, sid))
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginCIA1, memorymap.MemtopCIA1, memorymap.MaskCIA, cia1))
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginCIA2, memorymap.MemtopCIA2, memorymap.MaskCIA, cia2))

	// chip registers repeat throughout their window
	mem.Write(0xd020, 0x0e)
	test.Equate(t, vic.lastRegister, 0x20)
	test.Equate(t, vic.lastData, 0x0e)
	mem.Write(0xd3e0, 0x06)
	test.Equate(t, vic.lastRegister, 0x20)

	mem.Write(0xd418, 0x0f)
	test.Equate(t, sid.lastRegister, 0x18)
	mem.Write(0xd438, 0x0f)
	test.Equate(t, sid.lastRegister, 0x18)

	test.Equate(t, mem.Read(0xdc04), 0x04)
	test.Equate(t, cia1.lastRegister, 0x04)
	test.Equate(t, mem.Read(0xdc14), 0x04)

	mem.Write(0xdd00, 0x03)
	test.Equate(t, cia2.lastRegister, 0x00)
	test.Equate(t, cia2.lastData, 0x03)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory()

	// unattached chips and the expansion port pages read as open bus
	test.Equate(t, mem.Read(0xd000), 0xff)
	test.Equate(t, mem.Read(0xd400), 0xff)
	test.Equate(t, mem.Read(0xde00), 0xff)
	test.Equate(t, mem.Read(0xdf00), 0xff)
}

func TestColorRAM(t *testing.T) {
	mem := memory.NewMemory()

	// only the low nibble of the colour RAM is implemented
	mem.Write(0xd800, 0xfe)
	test.Equate(t, mem.Read(0xd800), 0x0e)
	test.Equate(t, mem.ColorRead(0x0000), 0x0e)

	// the colour RAM answers before the bank latch is consulted. with CHAREN
	// clear the rest of the page shows the character ROM but the colour RAM
	// is still visible and writes never reach the RAM underneath
	mem.CharROM[0x0000] = 0x3c
	mem.CharROM[0x0800] = 0xaa
	mem.Write(addresses.ProcessorPort, 0x33)
	test.Equate(t, mem.Read(0xd000), 0x3c)
	mem.Write(0xd800, 0x07)
	test.Equate(t, mem.Read(0xd800), 0x07)
	test.Equate(t, mem.RAM[0xd800], 0x00)
}

func TestVideoBus(t *testing.T) {
	mem := memory.NewMemory()
	mem.CharROM[0x0000] = 0x3c
	mem.RAM[0x1000] = 0x55
	mem.RAM[0x0400] = 0x01
	mem.RAM[0x8400] = 0x02

	// in bank 0 the character ROM shadows the RAM at offset 0x1000
	test.Equate(t, mem.VideoRead(0x1000), 0x3c)
	test.Equate(t, mem.VideoRead(0x0400), 0x01)

	// in bank 2 the shadow is still present
	mem.SetVICBank(2)
	test.Equate(t, mem.VideoRead(0x1000), 0x3c)
	test.Equate(t, mem.VideoRead(0x0400), 0x02)

	// banks 1 and 3 see the RAM
	mem.SetVICBank(1)
	test.Equate(t, mem.VideoRead(0x1000), 0x00)
	mem.RAM[0x5000] = 0x66
	test.Equate(t, mem.VideoRead(0x1000), 0x66)

	// the VIC address bus is 14 bits wide
	mem.SetVICBank(0)
	test.Equate(t, mem.VideoRead(0x4400), mem.VideoRead(0x0400))
}

func TestPointers(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write16(addresses.TXTTAB, 0x0801)
	test.Equate(t, mem.Read(addresses.TXTTAB), 0x01)
	test.Equate(t, mem.Read(addresses.TXTTAB+1), 0x08)
	test.Equate(t, mem.Read16(addresses.TXTTAB), 0x0801)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	mem.Load(0x0801, []uint8{0x0b, 0x08, 0x0a, 0x00})
	test.Equate(t, mem.RAM[0x0801], 0x0b)
	test.Equate(t, mem.RAM[0x0804], 0x00)

	// loading ignores the bank latch
	mem.BasicROM[0x0000] = 0x94
	mem.Load(0xa000, []uint8{0x77})
	test.Equate(t, mem.Read(0xa000), 0x94)
	test.Equate(t, mem.RAM[0xa000], 0x77)
}

func TestAttachIO(t *testing.T) {
	mem := memory.NewMemory()

	// windows must be inside the IO area
	test.ExpectedFailure(t, mem.AttachIO(0xc000, 0xc0ff, 0xff, &mockChip{}))

	// windows must not overlap the colour RAM
	test.ExpectedFailure(t, mem.AttachIO(0xd800, 0xd8ff, 0xff, &mockChip{}))

	// windows must not overlap one another
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginCIA1, memorymap.MemtopCIA1, memorymap.MaskCIA, &mockChip{}))
	test.ExpectedFailure(t, mem.AttachIO(0xdc80, 0xdcff, 0xff, &mockChip{}))
}

func TestPeek(t *testing.T) {
	mem := memory.NewMemory()

	cia1 := &mockChip{}
	test.ExpectedSuccess(t, mem.AttachIO(memorymap.OriginCIA1, memorymap.MemtopCIA1, memorymap.MaskCIA, cia1))

	// Peek of the IO area returns the RAM underneath without touching the
	// chip
	mem.RAM[0xdc04] = 0x99
	test.Equate(t, mem.Peek(0xdc04), 0x99)
	test.Equate(t, cia1.lastRegister, 0x00)

	mem.KernalROM[0x1ffc] = 0xe2
	test.Equate(t, mem.Peek(0xfffc), 0xe2)
}
