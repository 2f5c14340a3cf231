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

package main_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/memory/rom"
	"github.com/gopher64/gopher64/television"
)

func BenchmarkMachine(b *testing.B) {
	tv, err := television.NewTelevision("PAL")
	if err != nil {
		b.Fatal(err)
	}
	tv.SetFPSCap(false)

	c64, err := hardware.NewC64(tv)
	if err != nil {
		b.Fatal(err)
	}

	rom.Placeholder(c64.Mem)
	c64.Reset()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c64.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
