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

package memorymap_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/memory/memorymap"
	"github.com/gopher64/gopher64/test"
)

func TestMapAddress(t *testing.T) {
	// each entry maps one probe address under one bank latch value
	tests := []struct {
		address uint16
		bank    uint8
		area    memorymap.Area
	}{
		// the default bank at power on. all ROMs and the IO area visible
		{0x0000, 0x07, memorymap.RAM},
		{0x9fff, 0x07, memorymap.RAM},
		{0xa000, 0x07, memorymap.BASIC},
		{0xbfff, 0x07, memorymap.BASIC},
		{0xc000, 0x07, memorymap.RAM},
		{0xd000, 0x07, memorymap.IO},
		{0xdfff, 0x07, memorymap.IO},
		{0xe000, 0x07, memorymap.Kernal},
		{0xffff, 0x07, memorymap.Kernal},

		// LORAM clear removes the BASIC ROM and nothing else
		{0xa000, 0x06, memorymap.RAM},
		{0xe000, 0x06, memorymap.Kernal},
		{0xd000, 0x06, memorymap.IO},

		// HIRAM clear removes the KERNAL ROM and nothing else
		{0xa000, 0x05, memorymap.BASIC},
		{0xe000, 0x05, memorymap.RAM},
		{0xd000, 0x05, memorymap.IO},

		// CHAREN clear swaps the IO area for the character ROM
		{0xd000, 0x03, memorymap.CharROM},
		{0xa000, 0x03, memorymap.BASIC},
		{0xe000, 0x03, memorymap.Kernal},

		// each window answers to its own bit only
		{0xd000, 0x04, memorymap.IO},
		{0xd000, 0x00, memorymap.CharROM},
		{0xa000, 0x00, memorymap.RAM},
		{0xe000, 0x00, memorymap.RAM},

		// LORAM alone is enough for the BASIC ROM
		{0xa000, 0x01, memorymap.BASIC},
		{0xd000, 0x01, memorymap.CharROM},

		// HIRAM alone gives the KERNAL but not BASIC
		{0xa000, 0x02, memorymap.RAM},
		{0xe000, 0x02, memorymap.Kernal},
		{0xd000, 0x02, memorymap.CharROM},
	}

	for _, tst := range tests {
		area := memorymap.MapAddress(tst.address, tst.bank)
		if area != tst.area {
			t.Errorf("address %#04x in bank %d mapped to %s (expected %s)", tst.address, tst.bank, area, tst.area)
		}
	}
}

func TestIsArea(t *testing.T) {
	test.Equate(t, memorymap.IsArea(0xd020, 0x07, memorymap.IO), true)
	test.Equate(t, memorymap.IsArea(0xd020, 0x03, memorymap.IO), false)
	test.Equate(t, memorymap.IsArea(0xfffc, 0x07, memorymap.Kernal), true)
}
