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

// Package cpu implements the 6510 found in the C64. The CPU is driven with
// the ExecuteInstruction() function, which steps the CPU forward one whole
// instruction and returns the number of colour clock cycles consumed,
// including any extra cycles caused by page crossing or branching. The rest
// of the machine catches up by running the chips for that many cycles.
//
// Interrupts are not polled by the CPU itself. The machine checks the
// interrupt lines of the chips between instructions and calls IRQ() or NMI()
// as required.
//
// Register logic is implemented by the types in the registers sub-package
// and the instruction table lives in the instructions sub-package.
package cpu
