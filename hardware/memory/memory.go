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

package memory

import (
	"fmt"

	"github.com/gopher64/gopher64/hardware/memory/addresses"
	"github.com/gopher64/gopher64/hardware/memory/chipbus"
	"github.com/gopher64/gopher64/hardware/memory/memorymap"
)

// ioWindow associates a chip with a range of addresses inside the IO area.
type ioWindow struct {
	origin uint16
	memtop uint16
	mask   uint8
	chip   chipbus.Chip
}

// Memory is the complete memory system of the C64. It implements the
// cpubus.Memory interface for the CPU and the chipbus.VideoBus interface for
// the VIC.
type Memory struct {
	// RAM backs the entire 64k address space. reads from an area where a ROM
	// is banked in are satisfied from the ROM arrays below but writes always
	// land here
	RAM [0x10000]uint8

	BasicROM  [0x2000]uint8
	KernalROM [0x2000]uint8
	CharROM   [0x1000]uint8

	// the colour RAM is a separate 4 bit chip. it is not affected by the
	// bank latch
	ColorRAM [0x0400]uint8

	// the chips attached to the IO area of the memory map
	windows []ioWindow

	// which 16k of memory the VIC sees. driven by the two low bits of CIA2
	// port A (inverted)
	vicBank uint8
}

// NewMemory is the preferred method of initialisation for the memory system.
// Chips must be attached with AttachIO() before the IO area is touched; an
// address with no chip behind it reads as open bus.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// AttachIO registers a chip with a range of addresses inside the IO area.
// The register number passed to the chip is the IO address masked with the
// supplied mask; chip registers therefore repeat throughout the window.
//
// Ranges must lie inside the IO area and must not overlap the colour RAM or
// a previously attached chip.
func (mem *Memory) AttachIO(origin uint16, memtop uint16, mask uint8, chip chipbus.Chip) error {
	if origin > memtop || origin < memorymap.OriginIO || memtop > memorymap.MemtopIO {
		return fmt.Errorf("memory: IO window %#04x-%#04x outside of IO area", origin, memtop)
	}
	if origin <= memorymap.MemtopColorRAM && memtop >= memorymap.OriginColorRAM {
		return fmt.Errorf("memory: IO window %#04x-%#04x overlaps colour RAM", origin, memtop)
	}
	for _, w := range mem.windows {
		if origin <= w.memtop && memtop >= w.origin {
			return fmt.Errorf("memory: IO window %#04x-%#04x overlaps %#04x-%#04x", origin, memtop, w.origin, w.memtop)
		}
	}

	mem.windows = append(mem.windows, ioWindow{
		origin: origin,
		memtop: memtop,
		mask:   mask,
		chip:   chip,
	})

	return nil
}

// Reset the memory system to its power on state. The contents of the ROM
// arrays are not touched.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0x00
	}
	for i := range mem.ColorRAM {
		mem.ColorRAM[i] = 0x00
	}

	// power on state of the 6510 processor port. all ROMs and the IO area
	// banked in
	mem.RAM[addresses.ProcessorPortDDR] = 0x2f
	mem.RAM[addresses.ProcessorPort] = memorymap.BankDefault

	mem.vicBank = 0
}

// Bank returns the effective value of the bank latch. Port bits set to input
// in the data direction register read as pulled high.
func (mem *Memory) Bank() uint8 {
	ddr := mem.RAM[addresses.ProcessorPortDDR]
	port := mem.RAM[addresses.ProcessorPort]
	return (port | ^ddr) & addresses.ProcessorPortMask
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	// the colour RAM chip responds before the bank latch is consulted
	if address >= memorymap.OriginColorRAM && address <= memorymap.MemtopColorRAM {
		return mem.ColorRAM[address&memorymap.MaskColorRAM] & 0x0f
	}

	switch memorymap.MapAddress(address, mem.Bank()) {
	case memorymap.BASIC:
		return mem.BasicROM[address^memorymap.OriginBASIC]
	case memorymap.Kernal:
		return mem.KernalROM[address^memorymap.OriginKernal]
	case memorymap.CharROM:
		return mem.CharROM[address&0x0fff]
	case memorymap.IO:
		return mem.ioRead(address)
	}

	return mem.RAM[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	if address >= memorymap.OriginColorRAM && address <= memorymap.MemtopColorRAM {
		mem.ColorRAM[address&memorymap.MaskColorRAM] = data & 0x0f
		return
	}

	if memorymap.MapAddress(address, mem.Bank()) == memorymap.IO {
		mem.ioWrite(address, data)
		return
	}

	// ROM areas write through to the RAM underneath
	mem.RAM[address] = data
}

func (mem *Memory) ioRead(address uint16) uint8 {
	for _, w := range mem.windows {
		if address >= w.origin && address <= w.memtop {
			return w.chip.ChipRead(uint8(address) & w.mask)
		}
	}

	// the expansion port pages and unattached chips read as open bus
	return 0xff
}

func (mem *Memory) ioWrite(address uint16, data uint8) {
	for _, w := range mem.windows {
		if address >= w.origin && address <= w.memtop {
			w.chip.ChipWrite(uint8(address)&w.mask, data)
			return
		}
	}
}

// Peek returns the value at the address without the side effects of a chip
// read. For addresses in the IO area the RAM underneath is returned.
func (mem *Memory) Peek(address uint16) uint8 {
	switch memorymap.MapAddress(address, mem.Bank()) {
	case memorymap.BASIC:
		return mem.BasicROM[address^memorymap.OriginBASIC]
	case memorymap.Kernal:
		return mem.KernalROM[address^memorymap.OriginKernal]
	case memorymap.CharROM:
		return mem.CharROM[address&0x0fff]
	}

	return mem.RAM[address]
}

// Read16 reads a 16 bit pointer stored low byte first.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// Write16 writes a 16 bit pointer low byte first.
func (mem *Memory) Write16(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// Load copies data directly into RAM starting at the given address. The bank
// latch is ignored; loading never touches the ROMs or the IO area.
func (mem *Memory) Load(address uint16, data []uint8) {
	copy(mem.RAM[address:], data)
}

// SetVICBank selects which 16k of memory the VIC sees. The bank number is
// the inverted value of the two low bits of CIA2 port A.
func (mem *Memory) SetVICBank(bank uint8) {
	mem.vicBank = bank & 0x03
}

// VideoRead is an implementation of chipbus.VideoBus. In banks 0 and 2 the
// character ROM shadows the RAM at offset 0x1000 of the VIC's address space.
func (mem *Memory) VideoRead(address uint16) uint8 {
	address &= 0x3fff

	if mem.vicBank&0x01 == 0x00 && address >= 0x1000 && address <= 0x1fff {
		return mem.CharROM[address&0x0fff]
	}

	return mem.RAM[(uint16(mem.vicBank)<<14)|address]
}

// ColorRead is an implementation of chipbus.VideoBus.
func (mem *Memory) ColorRead(address uint16) uint8 {
	return mem.ColorRAM[address&memorymap.MaskColorRAM] & 0x0f
}
