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

package television

import (
	"fmt"
	"strings"
)

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"PAL", "NTSC"}

// Spec defines the raster geometry and frame rate of a television protocol.
// The C64 ties the machine clock to the video chip so the spec also defines
// how many CPU cycles make up a scanline and a frame.
type Spec struct {
	ID string

	ScanlinesTotal    int
	CyclesPerScanline int

	// CyclesPerFrame is ScanlinesTotal multiplied by CyclesPerScanline
	CyclesPerFrame int

	FramesPerSecond float32
}

// SpecPAL is the specification for PAL machines. The 6569 VIC produces 312
// scanlines of 63 cycles each.
var SpecPAL = Spec{
	ID:                "PAL",
	ScanlinesTotal:    312,
	CyclesPerScanline: 63,
	CyclesPerFrame:    19656,
	FramesPerSecond:   50.125,
}

// SpecNTSC is the specification for NTSC machines. The 6567R8 VIC produces
// 263 scanlines of 65 cycles each.
var SpecNTSC = Spec{
	ID:                "NTSC",
	ScanlinesTotal:    263,
	CyclesPerScanline: 65,
	CyclesPerFrame:    17095,
	FramesPerSecond:   59.83,
}

// GetSpec returns the Spec with the given ID. The ID is not case sensitive.
func GetSpec(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "PAL":
		return SpecPAL, nil
	case "NTSC":
		return SpecNTSC, nil
	}
	return Spec{}, fmt.Errorf("television: unsupported specification (%s)", id)
}
