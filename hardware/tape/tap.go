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

package tape

import (
	"bytes"
	"fmt"
	"os"
)

// the fixed part of the TAP header. version byte follows immediately, data
// length is a 32bit little endian value at offset 0x10 and the pulse stream
// begins at offset 0x14.
var tapMagic = []byte("C64-TAPE-RAW")

const tapHeaderLen = 0x14

// loadTAP reads a TAP image. a data byte is a pulse length in units of eight
// cycles. a zero byte is an overflow marker: in version 0 images it stands
// for the longest expressible pulse, in version 1 images it is followed by
// the exact length in cycles as a 24bit little endian value.
func loadTAP(filename string) ([]int, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	if len(d) < tapHeaderLen || !bytes.Equal(d[:len(tapMagic)], tapMagic) {
		return nil, fmt.Errorf("tap: not a TAP image: %s", filename)
	}

	version := d[0x0c]
	if version > 1 {
		return nil, fmt.Errorf("tap: unsupported TAP version: %d", version)
	}

	length := int(d[0x10]) | int(d[0x11])<<8 | int(d[0x12])<<16 | int(d[0x13])<<24
	if tapHeaderLen+length > len(d) {
		return nil, fmt.Errorf("tap: truncated TAP image: %s", filename)
	}
	data := d[tapHeaderLen : tapHeaderLen+length]

	pulses := make([]int, 0, len(data))

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b != 0x00 {
			pulses = append(pulses, int(b)*8)
			continue
		}

		if version == 0 {
			pulses = append(pulses, 256*8)
			continue
		}

		if i+3 >= len(data) {
			return nil, fmt.Errorf("tap: truncated overflow pulse: %s", filename)
		}
		pulses = append(pulses, int(data[i+1])|int(data[i+2])<<8|int(data[i+3])<<16)
		i += 3
	}

	return pulses, nil
}
