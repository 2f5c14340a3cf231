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

package vic

import (
	"fmt"

	"github.com/gopher64/gopher64/hardware/memory/chipbus"
	"github.com/gopher64/gopher64/television"
)

// the registers the VIC gives special treatment. everything else is a plain
// store.
const (
	regControl1  = 0x11
	regRaster    = 0x12
	regMemory    = 0x18
	regInterrupt = 0x19
	regEnable    = 0x1a
	regBorder    = 0x20
	regBackgrnd  = 0x21
)

// bits of the interrupt register.
const (
	irqRaster = uint8(0x01)
)

// VIC implements the video interface chip. It implements the chipbus.Chip
// interface.
type VIC struct {
	tv television.TelevisionVIC

	// the VIC reads memory through its own 14 bit bus
	bus chipbus.VideoBus

	// backing store for the registers with no special behaviour
	registers [64]uint8

	// raster position. the raster counter is nine bits wide
	raster    int
	lineCycle int

	// the raster line that triggers the raster interrupt. nine bits, the
	// high bit written through bit 7 of control register 1
	rasterCompare int

	// interrupt flags and enable mask
	flags  uint8
	enable uint8
}

// NewVIC is the preferred method of initialisation for the VIC type.
func NewVIC(tv television.TelevisionVIC, bus chipbus.VideoBus) *VIC {
	vic := &VIC{tv: tv, bus: bus}
	vic.Reset()
	return vic
}

func (vic *VIC) String() string {
	return fmt.Sprintf("raster=%d/%d cmp=%d flags=%#02x enable=%#02x", vic.raster, vic.lineCycle, vic.rasterCompare, vic.flags, vic.enable)
}

// Reset the VIC to its power on state.
func (vic *VIC) Reset() {
	vic.registers = [64]uint8{}
	vic.raster = 0
	vic.lineCycle = 0
	vic.rasterCompare = 0
	vic.flags = 0x00
	vic.enable = 0x00
}

// Raster returns the current raster line.
func (vic *VIC) Raster() int {
	return vic.raster
}

// IRQ returns the state of the interrupt line. The line stays asserted
// until the flag is acknowledged with a write to the interrupt register.
func (vic *VIC) IRQ() bool {
	return vic.flags&vic.enable&0x0f != 0x00
}

// Step the VIC forward n cycles. An error can only come from the television
// at a frame boundary.
func (vic *VIC) Step(n int) error {
	spec := vic.tv.GetSpec()

	for i := 0; i < n; i++ {
		vic.lineCycle++
		if vic.lineCycle < spec.CyclesPerScanline {
			continue
		}
		vic.lineCycle = 0

		vic.raster++
		if vic.raster >= spec.ScanlinesTotal {
			vic.raster = 0
			if err := vic.tv.NewFrame(); err != nil {
				return err
			}
		}

		if vic.raster == vic.rasterCompare {
			vic.flags |= irqRaster
		}
	}

	return nil
}

// ChipRead is an implementation of chipbus.Chip.
func (vic *VIC) ChipRead(register uint8) uint8 {
	switch register {
	case regControl1:
		// bit 7 reads back the high bit of the raster counter, not of the
		// compare value
		v := vic.registers[regControl1] & 0x7f
		if vic.raster > 0xff {
			v |= 0x80
		}
		return v
	case regRaster:
		return uint8(vic.raster)
	case regInterrupt:
		v := vic.flags | 0x70
		if vic.IRQ() {
			v |= 0x80
		}
		return v
	case regEnable:
		return vic.enable | 0xf0
	}

	if register >= 0x2f {
		// the unconnected registers at the top of the window
		return 0xff
	}

	return vic.registers[register]
}

// ChipWrite is an implementation of chipbus.Chip.
func (vic *VIC) ChipWrite(register uint8, data uint8) {
	switch register {
	case regControl1:
		vic.registers[regControl1] = data
		vic.rasterCompare = (vic.rasterCompare & 0x00ff) | (int(data&0x80) << 1)
		return
	case regRaster:
		// the raster register is the compare target on write
		vic.rasterCompare = (vic.rasterCompare & 0x0100) | int(data)
		return
	case regInterrupt:
		// writing a one acknowledges the flag
		vic.flags &= ^(data & 0x0f)
		return
	case regEnable:
		vic.enable = data & 0x0f
		return
	}

	vic.registers[register] = data
}
