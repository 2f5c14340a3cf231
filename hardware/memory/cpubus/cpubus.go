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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Memory type in the memory package implements this interface and
// maps the read/write address to the correct memory area, meaning that CPU
// access need not care which part of memory it is touching.
//
// The 6510 address space is fully decoded. Every address maps to something,
// so neither operation can fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The interrupt vectors of the 6510. Each is the address of a 16 bit pointer
// to the service routine.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
