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

// Package rom loads the BASIC, KERNAL and character generator ROM images
// into the memory system. The images can be supplied as three separate files
// or as a single 64k image, as produced by dumping the address space of a
// running machine.
//
// The package does not ship the Commodore ROMs. When no images are supplied
// the Placeholder() function installs a minimal built-in KERNAL and character
// set, enough to reach a ready state and to run injected programs that do not
// call into the real KERNAL.
package rom

import (
	"fmt"
	"os"

	"github.com/gopher64/gopher64/hardware/memory"
	"github.com/gopher64/gopher64/logger"
)

// Expected sizes of the individual ROM images.
const (
	SizeBasic    = 0x2000
	SizeKernal   = 0x2000
	SizeChar     = 0x1000
	SizeCombined = 0x10000
)

// Offsets of the individual ROMs within a combined 64k image.
const (
	offsetBasic  = 0xa000
	offsetChar   = 0xd000
	offsetKernal = 0xe000
)

func readImage(filename string, size int) ([]byte, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("rom: %w", err)
	}
	if len(d) != size {
		return nil, fmt.Errorf("rom: %s: wrong size (%d bytes, expected %d)", filename, len(d), size)
	}
	return d, nil
}

// Load reads the three ROM images into the memory system. All three files
// must be present and of the correct size.
func Load(mem *memory.Memory, basicFile string, kernalFile string, charFile string) error {
	basic, err := readImage(basicFile, SizeBasic)
	if err != nil {
		return err
	}

	kernal, err := readImage(kernalFile, SizeKernal)
	if err != nil {
		return err
	}

	char, err := readImage(charFile, SizeChar)
	if err != nil {
		return err
	}

	copy(mem.BasicROM[:], basic)
	copy(mem.KernalROM[:], kernal)
	copy(mem.CharROM[:], char)

	return nil
}

// LoadCombined reads a single 64k image and slices the three ROMs out of it
// at their natural offsets.
func LoadCombined(mem *memory.Memory, combinedFile string) error {
	d, err := readImage(combinedFile, SizeCombined)
	if err != nil {
		return err
	}

	copy(mem.BasicROM[:], d[offsetBasic:offsetBasic+SizeBasic])
	copy(mem.CharROM[:], d[offsetChar:offsetChar+SizeChar])
	copy(mem.KernalROM[:], d[offsetKernal:offsetKernal+SizeKernal])

	return nil
}

// Install loads ROM images according to the supplied paths. An empty kernal
// path installs the built-in placeholder ROMs instead. A kernal path with
// empty basic and char paths is treated as a combined 64k image.
func Install(mem *memory.Memory, basicFile string, kernalFile string, charFile string) error {
	if kernalFile == "" {
		logger.Log("rom", "no ROM images supplied, using built-in placeholder")
		Placeholder(mem)
		return nil
	}

	if basicFile == "" && charFile == "" {
		return LoadCombined(mem, kernalFile)
	}

	return Load(mem, basicFile, kernalFile, charFile)
}
