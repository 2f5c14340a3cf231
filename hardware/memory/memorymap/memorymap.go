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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case CharROM:
		return "CharROM"
	case IO:
		return "IO"
	case Kernal:
		return "KERNAL"
	}

	return "undefined"
}

// The different memory areas an address can resolve to. Which area an
// address falls within depends on the bank latch as well as on the address
// itself; the decision is handled by the MapAddress() function.
const (
	Undefined Area = iota
	RAM
	BASIC
	CharROM
	IO
	Kernal
)

// The three low bits of the 6510 processor port that control the memory
// banks. Each bit is tested independently: LORAM and HIRAM select the two
// ROM areas and CHAREN selects between the IO area and the character ROM.
const (
	LORAM  = uint8(0x01)
	HIRAM  = uint8(0x02)
	CHAREN = uint8(0x04)

	// value of the bank latch at power on. all ROMs and the IO area visible.
	BankDefault = uint8(0x37)
)

// The origin and memory top for each switchable area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This can be done elegantly with
// (address^origin) rather than subtraction.
const (
	OriginBASIC  = uint16(0xa000)
	MemtopBASIC  = uint16(0xbfff)
	OriginIO     = uint16(0xd000)
	MemtopIO     = uint16(0xdfff)
	OriginKernal = uint16(0xe000)
	MemtopKernal = uint16(0xffff)
)

// The chip windows within the IO area. Chip registers repeat throughout
// their window; the masks keep only the relevant bits of an IO address.
const (
	OriginVIC      = uint16(0xd000)
	MemtopVIC      = uint16(0xd3ff)
	OriginSID      = uint16(0xd400)
	MemtopSID      = uint16(0xd7ff)
	OriginColorRAM = uint16(0xd800)
	MemtopColorRAM = uint16(0xdbff)
	OriginCIA1     = uint16(0xdc00)
	MemtopCIA1     = uint16(0xdcff)
	OriginCIA2     = uint16(0xdd00)
	MemtopCIA2     = uint16(0xddff)
	OriginIO1      = uint16(0xde00)
	MemtopIO1      = uint16(0xdeff)
	OriginIO2      = uint16(0xdf00)
	MemtopIO2      = uint16(0xdfff)

	MaskVIC      = uint8(0x3f)
	MaskSID      = uint8(0x1f)
	MaskCIA      = uint8(0x0f)
	MaskColorRAM = uint16(0x03ff)
)

// Memtop is the top most address of memory in the C64.
const Memtop = uint16(0xffff)

// The bank decision table. One row per switchable window of memory; each row
// maps the eight possible values of the bank latch to the area that responds.
//
// Each window answers to a single bit of the latch. LORAM selects the BASIC
// ROM, HIRAM the KERNAL ROM, and CHAREN selects between the IO area and the
// character ROM.
var decisionTable = []struct {
	origin uint16
	memtop uint16
	area   [8]Area
}{
	{OriginBASIC, MemtopBASIC, [8]Area{RAM, BASIC, RAM, BASIC, RAM, BASIC, RAM, BASIC}},
	{OriginIO, MemtopIO, [8]Area{CharROM, CharROM, CharROM, CharROM, IO, IO, IO, IO}},
	{OriginKernal, MemtopKernal, [8]Area{RAM, RAM, Kernal, Kernal, RAM, RAM, Kernal, Kernal}},
}

// MapAddress returns the memory area an address resolves to, given the
// current value of the bank latch. The address itself is not changed; unlike
// machines with partial address decoding there are no mirrors to normalise.
func MapAddress(address uint16, bank uint8) Area {
	for _, w := range decisionTable {
		if address >= w.origin && address <= w.memtop {
			return w.area[bank&0x07]
		}
	}
	return RAM
}

// IsArea returns true if the address is in the specified area under the
// given bank latch.
func IsArea(address uint16, bank uint8, area Area) bool {
	return MapAddress(address, bank) == area
}
