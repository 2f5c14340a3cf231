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

package cpu_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/cpu"
	rtest "github.com/gopher64/gopher64/hardware/cpu/registers/test"
	"github.com/gopher64/gopher64/hardware/memory/cpubus"
	"github.com/gopher64/gopher64/test"
)

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testSubroutines(t, mc, mem)
	testBrkRti(t, mc, mem)
	testInterrupts(t, mc, mem)
	testCycleCounts(t, mc, mem)
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// the interrupt disable flag is set on reset
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")
	rtest.EquateRegisters(t, mc.SP, 0xfd)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZC")
	step(t, mc) // CLC
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")
	step(t, mc) // CLI
	rtest.EquateRegisters(t, &mc.Status, "sv-bdiZc")
	step(t, mc) // SEI
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")
	step(t, mc) // SED
	rtest.EquateRegisters(t, &mc.Status, "sv-bDIZc")
	step(t, mc) // CLD
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")
	step(t, mc) // CLV
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")

	// PHP; PLP
	origin = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	rtest.EquateRegisters(t, mc.SP, 0xfc)
	mem.assert(t, 0x01fd, 0x26)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	rtest.EquateRegisters(t, mc.A, 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	rtest.EquateRegisters(t, mc.A, 3)
	test.Equate(t, mc.Status.Carry, true)

	// subtraction crossing zero clears carry
	origin = mem.putInstructions(origin, 0xe9, 4)
	step(t, mc) // SBC #4
	rtest.EquateRegisters(t, mc.A, 0xff)
	test.Equate(t, mc.Status.Carry, false)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// SED; LDA immediate; CLC; ADC immediate
	origin = mem.putInstructions(origin, 0xf8, 0xa9, 0x09, 0x18, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$09
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	rtest.EquateRegisters(t, mc.A, 0x10)
	test.Equate(t, mc.Status.Carry, false)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 0x01)
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	rtest.EquateRegisters(t, mc.A, 0x09)
	test.Equate(t, mc.Status.Carry, true)

	// decimal addition on the hundreds boundary sets carry
	origin = mem.putInstructions(origin, 0xa9, 0x99, 0x18, 0x69, 0x01)
	step(t, mc) // LDA #$99
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	rtest.EquateRegisters(t, mc.A, 0x00)
	test.Equate(t, mc.Status.Carry, true)
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	rtest.EquateRegisters(t, mc.A, 0)
	step(t, mc) // ORA #$FF
	rtest.EquateRegisters(t, mc.A, 0xff)
	rtest.EquateRegisters(t, &mc.Status, "Sv-bdIzc")
	step(t, mc) // EOR #$F0
	rtest.EquateRegisters(t, mc.A, 0x0f)
	step(t, mc) // AND #$01
	rtest.EquateRegisters(t, mc.A, 0x01)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	rtest.EquateRegisters(t, mc.A, 2)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIzc")
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 1)
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	origin = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	rtest.EquateRegisters(t, mc.A, 1)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIzc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIZC")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateRegisters(t, &mc.Status, "Sv-bdIzc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x40)
	rtest.EquateRegisters(t, &mc.Status, "sv-bdIzc")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // INX
	rtest.EquateRegisters(t, mc.X, 6)
	step(t, mc) // DEX
	rtest.EquateRegisters(t, mc.X, 5)

	// LDA immediate; PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	rtest.EquateRegisters(t, mc.SP, 0xfc)
	step(t, mc) // LDA #0
	rtest.EquateRegisters(t, mc.A, 0)
	test.Equate(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	rtest.EquateRegisters(t, mc.A, 5)
	rtest.EquateRegisters(t, mc.SP, 0xfd)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	origin = mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // TAY
	rtest.EquateRegisters(t, mc.Y, 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	rtest.EquateRegisters(t, mc.A, 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	rtest.EquateRegisters(t, mc.A, 2)
	step(t, mc) // INY
	rtest.EquateRegisters(t, mc.Y, 3)
	step(t, mc) // DEY
	rtest.EquateRegisters(t, mc.Y, 2)

	// TSX; LDX immediate; TXS
	origin = mem.putInstructions(origin, 0xba, 0xa2, 100, 0x9a)
	step(t, mc) // TSX
	rtest.EquateRegisters(t, mc.X, 0xfd)
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	rtest.EquateRegisters(t, mc.SP, 100)
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// data in the zero page and on page one
	mem.putInstructions(0x0080, 0x12, 0x34, 0x00, 0x56)
	mem.putInstructions(0x0200, 123, 43)
	mem.putInstructions(0x02a2, 47)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x80)
	step(t, mc) // LDA $80
	rtest.EquateRegisters(t, mc.A, 0x12)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x80)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $80,X
	rtest.EquateRegisters(t, mc.A, 0x34)

	// LDY immediate; LDX zero page,Y
	origin = mem.putInstructions(origin, 0xa0, 3, 0xb6, 0x80)
	step(t, mc) // LDY #3
	step(t, mc) // LDX $80,Y
	rtest.EquateRegisters(t, mc.X, 0x56)

	// zero page indexing wraps around inside the zero page
	origin = mem.putInstructions(origin, 0xa2, 0x81, 0xb5, 0xff)
	step(t, mc) // LDX #$81
	step(t, mc) // LDA $FF,X
	rtest.EquateRegisters(t, mc.A, 0x12)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x02)
	step(t, mc) // LDA $0200
	rtest.EquateRegisters(t, mc.A, 123)

	// LDX immediate; LDA absolute,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0x00, 0x02)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $0200,X
	rtest.EquateRegisters(t, mc.A, 43)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 0xa2, 0xb9, 0x00, 0x02)
	step(t, mc) // LDY #$A2
	step(t, mc) // LDA $0200,Y
	rtest.EquateRegisters(t, mc.A, 47)

	// LDX immediate; LDA (indirect,X)
	mem.putInstructions(0x0094, 0x00, 0x02)
	origin = mem.putInstructions(origin, 0xa2, 4, 0xa1, 0x90)
	step(t, mc) // LDX #4
	step(t, mc) // LDA ($90,X)
	rtest.EquateRegisters(t, mc.A, 123)

	// LDY immediate; LDA (indirect),Y
	mem.putInstructions(0x0092, 0x00, 0x02)
	origin = mem.putInstructions(origin, 0xa0, 1, 0xb1, 0x92)
	step(t, mc) // LDY #1
	step(t, mc) // LDA ($92),Y
	rtest.EquateRegisters(t, mc.A, 43)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// LDA immediate; STA zero page; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x42, 0x85, 0x80, 0x8d, 0x00, 0x02)
	step(t, mc) // LDA #$42
	step(t, mc) // STA $80
	mem.assert(t, 0x0080, 0x42)
	step(t, mc) // STA $0200
	mem.assert(t, 0x0200, 0x42)

	// LDX immediate; STX zero page; LDY immediate; STY zero page
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0x86, 0x81, 0xa0, 0x02, 0x84, 0x82)
	step(t, mc) // LDX #1
	step(t, mc) // STX $81
	mem.assert(t, 0x0081, 0x01)
	step(t, mc) // LDY #2
	step(t, mc) // STY $82
	mem.assert(t, 0x0082, 0x02)

	// INC zero page; DEC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x80, 0xc6, 0x80)
	step(t, mc) // INC $80
	mem.assert(t, 0x0080, 0x43)
	step(t, mc) // DEC $80
	mem.assert(t, 0x0080, 0x42)

	// ASL zero page; ROR zero page
	origin = mem.putInstructions(origin, 0x06, 0x80, 0x66, 0x80)
	step(t, mc) // ASL $80
	mem.assert(t, 0x0080, 0x84)
	test.Equate(t, mc.Status.Carry, false)
	step(t, mc) // ROR $80
	mem.assert(t, 0x0080, 0x42)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(0x1000)

	// LDA immediate (sets zero flag)
	mem.putInstructions(0x1000, 0xa9, 0x00)
	step(t, mc) // LDA #0

	// branch taken within the same page consumes one extra cycle
	mem.putInstructions(0x1002, 0xf0, 0x10)
	test.Equate(t, step(t, mc), 3) // BEQ +16
	rtest.EquateRegisters(t, mc.PC, 0x1014)

	// branch not taken
	mem.putInstructions(0x1014, 0xd0, 0x02)
	test.Equate(t, step(t, mc), 2) // BNE +2
	rtest.EquateRegisters(t, mc.PC, 0x1016)

	// branch taken across a page boundary consumes two extra cycles
	mem.putInstructions(0x1016, 0xf0, 0xe0)
	test.Equate(t, step(t, mc), 4) // BEQ -32
	rtest.EquateRegisters(t, mc.PC, 0x0ff8)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(0x1000)

	// JMP absolute
	mem.putInstructions(0x1000, 0x4c, 0x34, 0x12)
	test.Equate(t, step(t, mc), 3) // JMP $1234
	rtest.EquateRegisters(t, mc.PC, 0x1234)

	// JMP indirect
	mem.putInstructions(0x0280, 0x00, 0x20)
	mem.putInstructions(0x1234, 0x6c, 0x80, 0x02)
	test.Equate(t, step(t, mc), 5) // JMP ($0280)
	rtest.EquateRegisters(t, mc.PC, 0x2000)

	// when the indirect address sits on a page boundary the high byte of the
	// jump address is read from the zero byte of the same page
	mem.putInstructions(0x02ff, 0x34)
	mem.putInstructions(0x0200, 0x12)
	mem.putInstructions(0x2000, 0x6c, 0xff, 0x02)
	step(t, mc) // JMP ($02FF)
	rtest.EquateRegisters(t, mc.PC, 0x1234)
}

func testSubroutines(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(0x1000)

	// JSR absolute
	mem.putInstructions(0x1000, 0x20, 0x00, 0x11)
	test.Equate(t, step(t, mc), 6) // JSR $1100
	rtest.EquateRegisters(t, mc.PC, 0x1100)
	rtest.EquateRegisters(t, mc.SP, 0xfb)

	// the return address on the stack points at the last byte of the JSR
	// operand, not the next instruction
	mem.assert(t, 0x01fd, 0x10)
	mem.assert(t, 0x01fc, 0x02)

	// RTS
	mem.putInstructions(0x1100, 0x60)
	test.Equate(t, step(t, mc), 6) // RTS
	rtest.EquateRegisters(t, mc.PC, 0x1003)
	rtest.EquateRegisters(t, mc.SP, 0xfd)

	// a return address pulled across the top of the stack wraps inside the
	// stack page. the high byte never comes from 0x0200
	mem.putInstructions(0x1003, 0xa2, 0xfe, 0x9a, 0x60)
	mem.putInstructions(0x01ff, 0x33)
	mem.putInstructions(0x0100, 0x12)
	mem.putInstructions(0x0200, 0x99)
	step(t, mc) // LDX #$FE
	step(t, mc) // TXS
	step(t, mc) // RTS
	rtest.EquateRegisters(t, mc.PC, 0x1234)
	rtest.EquateRegisters(t, mc.SP, 0x00)
}

func testBrkRti(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(0x1000)

	// BRK vectors through the IRQ vector
	mem.putInstructions(cpubus.IRQ, 0x00, 0x12)
	mem.putInstructions(0x1000, 0x00)
	test.Equate(t, step(t, mc), 7) // BRK
	rtest.EquateRegisters(t, mc.PC, 0x1200)
	rtest.EquateRegisters(t, mc.SP, 0xfa)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// the pushed return address skips the BRK padding byte
	mem.assert(t, 0x01fd, 0x10)
	mem.assert(t, 0x01fc, 0x02)

	// RTI restores the status register and the program counter
	mem.putInstructions(0x1200, 0x40)
	test.Equate(t, step(t, mc), 6) // RTI
	rtest.EquateRegisters(t, mc.PC, 0x1002)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
}

func testInterrupts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(0x1000)

	mem.putInstructions(cpubus.IRQ, 0x00, 0x20)
	mem.putInstructions(cpubus.NMI, 0x00, 0x30)

	// IRQ is masked by the interrupt disable flag, which is set on reset
	test.Equate(t, mc.IRQ(), 0)
	rtest.EquateRegisters(t, mc.PC, 0x1000)

	// CLI
	mem.putInstructions(0x1000, 0x58)
	step(t, mc)
	test.Equate(t, mc.IRQ(), 7)
	rtest.EquateRegisters(t, mc.PC, 0x2000)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// NMI cannot be masked
	test.Equate(t, mc.NMI(), 7)
	rtest.EquateRegisters(t, mc.PC, 0x3000)
}

func testCycleCounts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	origin := uint16(0x1000)
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)

	// LDA immediate; LDA zero page; LDA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x01, 0xa5, 0x80, 0xad, 0x00, 0x02)
	test.Equate(t, step(t, mc), 2) // LDA #$01
	test.Equate(t, step(t, mc), 3) // LDA $80
	test.Equate(t, step(t, mc), 4) // LDA $0200

	// LDX immediate; LDA absolute,X (no page crossing)
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0x00, 0x02)
	step(t, mc)                    // LDX #$01
	test.Equate(t, step(t, mc), 4) // LDA $0200,X

	// LDA absolute,X with page crossing
	origin = mem.putInstructions(origin, 0xbd, 0xff, 0x02)
	test.Equate(t, step(t, mc), 5) // LDA $02FF,X

	// STA absolute,X always takes five cycles, page crossing or not
	origin = mem.putInstructions(origin, 0x9d, 0x00, 0x02)
	test.Equate(t, step(t, mc), 5) // STA $0200,X

	// INC absolute,X
	origin = mem.putInstructions(origin, 0xfe, 0x00, 0x02)
	test.Equate(t, step(t, mc), 7) // INC $0200,X

	// LDY immediate; LDA (indirect),Y with page crossing
	mem.putInstructions(0x0090, 0x80, 0x02)
	origin = mem.putInstructions(origin, 0xa0, 0xa0, 0xb1, 0x90)
	step(t, mc)                    // LDY #$A0
	test.Equate(t, step(t, mc), 6) // LDA ($90),Y
}
