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

package instructions

// Operator identifies the operation performed by an instruction, independent
// of addressing mode.
type Operator int

// List of operators for the documented 6510 instruction set.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

func (op Operator) String() string {
	switch op {
	case Adc:
		return "ADC"
	case And:
		return "AND"
	case Asl:
		return "ASL"
	case Bcc:
		return "BCC"
	case Bcs:
		return "BCS"
	case Beq:
		return "BEQ"
	case Bit:
		return "BIT"
	case Bmi:
		return "BMI"
	case Bne:
		return "BNE"
	case Bpl:
		return "BPL"
	case Brk:
		return "BRK"
	case Bvc:
		return "BVC"
	case Bvs:
		return "BVS"
	case Clc:
		return "CLC"
	case Cld:
		return "CLD"
	case Cli:
		return "CLI"
	case Clv:
		return "CLV"
	case Cmp:
		return "CMP"
	case Cpx:
		return "CPX"
	case Cpy:
		return "CPY"
	case Dec:
		return "DEC"
	case Dex:
		return "DEX"
	case Dey:
		return "DEY"
	case Eor:
		return "EOR"
	case Inc:
		return "INC"
	case Inx:
		return "INX"
	case Iny:
		return "INY"
	case Jmp:
		return "JMP"
	case Jsr:
		return "JSR"
	case Lda:
		return "LDA"
	case Ldx:
		return "LDX"
	case Ldy:
		return "LDY"
	case Lsr:
		return "LSR"
	case Nop:
		return "NOP"
	case Ora:
		return "ORA"
	case Pha:
		return "PHA"
	case Php:
		return "PHP"
	case Pla:
		return "PLA"
	case Plp:
		return "PLP"
	case Rol:
		return "ROL"
	case Ror:
		return "ROR"
	case Rti:
		return "RTI"
	case Rts:
		return "RTS"
	case Sbc:
		return "SBC"
	case Sec:
		return "SEC"
	case Sed:
		return "SED"
	case Sei:
		return "SEI"
	case Sta:
		return "STA"
	case Stx:
		return "STX"
	case Sty:
		return "STY"
	case Tax:
		return "TAX"
	case Tay:
		return "TAY"
	case Tsx:
		return "TSX"
	case Txa:
		return "TXA"
	case Txs:
		return "TXS"
	case Tya:
		return "TYA"
	}
	return "unknown operator"
}
