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

package vic_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/vic"
	"github.com/gopher64/gopher64/television"
	"github.com/gopher64/gopher64/test"
)

type mockTV struct {
	frames int
}

func (tv *mockTV) NewFrame() error {
	tv.frames++
	return nil
}

func (tv *mockTV) GetSpec() television.Spec {
	return television.SpecPAL
}

// mockBus records the last video bus access and echoes the low byte of the
// address.
type mockBus struct {
	lastVideo uint16
	lastColor uint16
}

func (bus *mockBus) VideoRead(address uint16) uint8 {
	bus.lastVideo = address
	return uint8(address)
}

func (bus *mockBus) ColorRead(address uint16) uint8 {
	bus.lastColor = address
	return 0x0e
}

func TestRasterCounting(t *testing.T) {
	tv := &mockTV{}
	v := vic.NewVIC(tv, &mockBus{})

	test.Equate(t, v.Raster(), 0)

	// one scanline
	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerScanline))
	test.Equate(t, v.Raster(), 1)
	test.Equate(t, v.ChipRead(0x12), 1)

	// a raster line above 255 sets bit 7 of control register 1
	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerScanline*299))
	test.Equate(t, v.Raster(), 300)
	test.Equate(t, v.ChipRead(0x12), 0x2c)
	test.Equate(t, v.ChipRead(0x11)&0x80, 0x80)

	test.Equate(t, tv.frames, 0)
}

func TestFrameSignalling(t *testing.T) {
	tv := &mockTV{}
	v := vic.NewVIC(tv, &mockBus{})

	// a complete frame wraps the raster and signals the television
	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerFrame))
	test.Equate(t, v.Raster(), 0)
	test.Equate(t, tv.frames, 1)

	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerFrame*3))
	test.Equate(t, tv.frames, 4)
}

func TestRasterInterrupt(t *testing.T) {
	tv := &mockTV{}
	v := vic.NewVIC(tv, &mockBus{})

	// compare with line 100, interrupt enabled
	v.ChipWrite(0x12, 100)
	v.ChipWrite(0x11, 0x1b)
	v.ChipWrite(0x1a, 0x01)

	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerScanline*99))
	test.Equate(t, v.IRQ(), false)

	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerScanline))
	test.Equate(t, v.IRQ(), true)
	test.Equate(t, v.ChipRead(0x19)&0x81, 0x81)

	// acknowledge by writing a one to the flag
	v.ChipWrite(0x19, 0x01)
	test.Equate(t, v.IRQ(), false)

	// without the enable bit the flag is still set on a match but the line
	// stays low
	v.ChipWrite(0x1a, 0x00)
	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerFrame))
	test.Equate(t, v.IRQ(), false)
	test.Equate(t, v.ChipRead(0x19)&0x01, 0x01)
}

func TestRasterInterruptHighLine(t *testing.T) {
	tv := &mockTV{}
	v := vic.NewVIC(tv, &mockBus{})

	// bit 7 of control register 1 is the ninth bit of the compare value.
	// line 300 = 0x12c
	v.ChipWrite(0x12, 0x2c)
	v.ChipWrite(0x11, 0x9b)
	v.ChipWrite(0x1a, 0x01)

	test.ExpectedSuccess(t, v.Step(television.SpecPAL.CyclesPerScanline*300))
	test.Equate(t, v.IRQ(), true)
}

func TestScreenAccess(t *testing.T) {
	tv := &mockTV{}
	bus := &mockBus{}
	v := vic.NewVIC(tv, bus)

	// screen matrix at 0x0400, character set at 0x1000
	v.ChipWrite(0x18, 0x14)

	v.ScreenChar(0)
	test.Equate(t, bus.lastVideo, 0x0400)
	v.ScreenChar(41)
	test.Equate(t, bus.lastVideo, 0x0429)

	v.CharPattern(0x01, 2)
	test.Equate(t, bus.lastVideo, 0x100a)

	v.ScreenColor(10)
	test.Equate(t, bus.lastColor, 10)
	test.Equate(t, v.ScreenColor(10), 0x0e)
}

func TestColorRegisters(t *testing.T) {
	tv := &mockTV{}
	v := vic.NewVIC(tv, &mockBus{})

	v.ChipWrite(0x20, 0xfe)
	v.ChipWrite(0x21, 0xf6)
	test.Equate(t, v.BorderColor(), 0x0e)
	test.Equate(t, v.BackgroundColor(), 0x06)
}
