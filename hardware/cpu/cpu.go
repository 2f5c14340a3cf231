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

package cpu

import (
	"fmt"

	"github.com/gopher64/gopher64/hardware/cpu/instructions"
	"github.com/gopher64/gopher64/hardware/cpu/registers"
	"github.com/gopher64/gopher64/hardware/memory/cpubus"
	"github.com/gopher64/gopher64/logger"
)

// CPU implements the 6510 found in the C64. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	PC     *registers.ProgramCounter
	A      *registers.Register
	X      *registers.Register
	Y      *registers.Register
	SP     *registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 *registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// undocumented opcodes are logged the first time they are executed
	logged [256]bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. Does not load the PC with the RESET
// vector. Use LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	mc.PC.Load(mc.read16Bit(indirectAddress))
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read8BitPC reads 8 bits from the memory location pointed to by PC and
// advances the PC.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC and
// advances the PC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage reads a 16 bit pointer from the zero page. The high byte
// of the pointer wraps around inside the zero page, it never comes from page
// one.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) push(data uint8) {
	mc.mem.Write(mc.SP.Address(), data)
	mc.SP.Decrement()
}

func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// branch adjusts the PC if the branch condition is true. Returns the number
// of extra cycles consumed; one for a branch taken and two if the branch
// crosses a page boundary.
func (mc *CPU) branch(flag bool, offset uint16) int {
	if !flag {
		return 0
	}

	// the offset is an 8 bit two's complement value. propagate the sign bit
	// into the most significant bits of the 16 bit value before adding
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	oldPC := mc.PC.Address()
	mc.PC.Add(offset)

	if oldPC&0xff00 != mc.PC.Address()&0xff00 {
		return 2
	}

	return 1
}

// interrupt pushes the PC and the status register onto the stack and loads
// the PC from the vector. The break flag is cleared in the pushed status
// byte; only the BRK instruction pushes it set.
func (mc *CPU) interrupt(vector uint16) {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.Status.Break = false
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))
}

// InterruptCycles is the number of cycles consumed by servicing an interrupt.
const InterruptCycles = 7

// IRQ services a maskable interrupt request. Returns the number of cycles
// consumed, which is zero when the interrupt disable flag is set.
func (mc *CPU) IRQ() int {
	if mc.Status.InterruptDisable {
		return 0
	}
	mc.interrupt(cpubus.IRQ)
	return InterruptCycles
}

// NMI services a non maskable interrupt. Returns the number of cycles
// consumed.
func (mc *CPU) NMI() int {
	mc.interrupt(cpubus.NMI)
	return InterruptCycles
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Returns the number of cycles consumed by the instruction, including any
// extra cycles caused by page crossing or branching.
func (mc *CPU) ExecuteInstruction() (int, error) {
	opcodeAddress := mc.PC.Address()
	opcode := mc.read8BitPC()
	defn := mc.instructions[opcode]

	if defn.Undocumented && !mc.logged[opcode] {
		mc.logged[opcode] = true
		logger.Logf("CPU", "undocumented opcode (%#02x) at (%#04x)", opcode, opcodeAddress)
	}

	cycles := defn.Cycles

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is only used by some addressing mode and effect combinations. for
	// instructions which are read-modify-write, the value will change during
	// execution and be used to write back to memory
	var value uint8

	// get address to use when reading/writing from/to memory (note that in
	// the case of immediate addressing, we are actually getting the value to
	// use in the instruction, not the address)
	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it advances the PC by two bytes despite
			// being an implied addressing instruction. the second byte is a
			// padding byte that is read and discarded
			mc.PC.Add(1)
		}

	case instructions.Immediate:
		value = mc.read8BitPC()

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// address is an offset value from the current PC position
		address = uint16(mc.read8BitPC())

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			address = mc.read16BitPC()
		}

		// else... for JSR, addresses are read slightly differently so we
		// defer this part of the operation to the operator switch below

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command
		indirectAddress := mc.read16BitPC()

		if indirectAddress&0x00ff == 0x00ff {
			// the 6510 cannot cross a page boundary when reading the
			// indirect address. the high byte is read from the zero byte of
			// the same page rather than the zero byte of the next page
			lo := mc.mem.Read(indirectAddress)
			hi := mc.mem.Read(indirectAddress & 0xff00)
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address = mc.read16Bit(indirectAddress)
		}

	case instructions.IndexedIndirect: // x indexing
		// the indexed address wraps around inside the zero page
		indirectAddress := mc.read8BitPC() + mc.X.Value()
		address = mc.read16BitZeroPage(indirectAddress)

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		indirectAddress := mc.read8BitPC()
		indexedAddress := mc.read16BitZeroPage(indirectAddress)
		address = indexedAddress + uint16(mc.Y.Value())

		if defn.PageSensitive && indexedAddress&0xff00 != address&0xff00 {
			cycles++
		}

	case instructions.AbsoluteIndexedX:
		indexedAddress := mc.read16BitPC()
		address = indexedAddress + uint16(mc.X.Value())

		if defn.PageSensitive && indexedAddress&0xff00 != address&0xff00 {
			cycles++
		}

	case instructions.AbsoluteIndexedY:
		indexedAddress := mc.read16BitPC()
		address = indexedAddress + uint16(mc.Y.Value())

		if defn.PageSensitive && indexedAddress&0xff00 != address&0xff00 {
			cycles++
		}

	case instructions.ZeroPageIndexedX:
		// the indexed address wraps around inside the zero page
		address = uint16(mc.read8BitPC() + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX and STX
		address = uint16(mc.read8BitPC() + mc.Y.Value())

	default:
		return 0, fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using address found in the addressing mode
	// switch above only when:
	// a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//	- for implied modes, we don't need a value
	// b) instruction is 'Read' or 'RMW'
	//	- for write modes, we only use the address to write a value we already
	//	  have
	//	- for flow modes, the use of the address is very specific
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	// actually perform instruction based on the operator
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		mc.push(mc.Status.Value())

	case instructions.Plp:
		mc.Status.FromValue(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = mc.acc8
			r.Load(value)
		} else {
			r = mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = mc.acc8
			r.Load(value)
		} else {
			r = mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			// the zero, overflow and sign flags of a decimal subtraction are
			// those of the equivalent binary subtraction
			mc.acc8.Load(mc.A.Value())
			_, mc.Status.Overflow = mc.acc8.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.acc8.IsZero()
			mc.Status.Sign = mc.acc8.IsNegative()

			mc.Status.Carry = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = mc.acc8
			r.Load(value)
		} else {
			r = mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = mc.acc8
			r.Load(value)
		} else {
			r = mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Inc:
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Dec:
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Cmp:
		r := mc.acc8
		r.Load(mc.A.Value())

		// maybe surprisingly, CMP can be implemented with binary subtract
		// even if decimal mode is active (the meaning is the same)
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Cpx:
		r := mc.acc8
		r.Load(mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Cpy:
		r := mc.acc8
		r.Load(mc.Y.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		cycles += mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		cycles += mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		cycles += mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		cycles += mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		cycles += mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		cycles += mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		cycles += mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		cycles += mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		lo := mc.read8BitPC()

		// the current value of the PC is now correct, even though we've only
		// read one byte of the address so far. remember, RTS increments the
		// PC when read from the stack, meaning that the PC will be correct at
		// that point

		// push MSB of PC onto stack, and decrement SP
		mc.push(uint8(mc.PC.Address() >> 8))

		// push LSB of PC onto stack, and decrement SP
		mc.push(uint8(mc.PC.Address()))

		// perform jump
		hi := mc.read8BitPC()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case instructions.Rts:
		// pull the return address one byte at a time. the stack pointer
		// wraps inside the stack page, the high byte never comes from the
		// page above
		lo := mc.pull()
		hi := mc.pull()

		// load and correct PC
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

	case instructions.Brk:
		// push PC onto the stack (same effect as JSR)
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// push status register and set the break flag
		mc.push(mc.Status.Value())
		mc.Status.Break = true
		mc.Status.InterruptDisable = true

		// perform jump
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))

	case instructions.Rti:
		// pull status register (same effect as PLP)
		mc.Status.FromValue(mc.pull())

		// pull program counter (same effect as RTS except that there is no
		// need to add one to the return address)
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	default:
		return 0, fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		mc.mem.Write(address, value)
	}

	return cycles, nil
}
