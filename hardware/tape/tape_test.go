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

package tape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher64/gopher64/hardware/tape"
	"github.com/gopher64/gopher64/test"
)

// writeTAP builds a TAP image around the supplied pulse stream.
func writeTAP(t *testing.T, version uint8, data []byte) string {
	t.Helper()

	img := []byte("C64-TAPE-RAW")
	img = append(img, version, 0x00, 0x00, 0x00)
	img = append(img,
		uint8(len(data)), uint8(len(data)>>8), uint8(len(data)>>16), uint8(len(data)>>24))
	img = append(img, data...)

	fn := filepath.Join(t.TempDir(), "tape.tap")
	test.ExpectedSuccess(t, os.WriteFile(fn, img, 0644))
	return fn
}

func TestTAPLoading(t *testing.T) {
	// three short pulses and a version 1 overflow pulse of 0x000400 cycles
	fn := writeTAP(t, 1, []byte{0x30, 0x42, 0x30, 0x00, 0x00, 0x04, 0x00})

	tp, err := tape.NewTape(fn)
	test.ExpectedSuccess(t, err)
	test.Equate(t, tp.IsEnd(), false)

	// first pulse is 0x30*8 = 384 cycles
	test.Equate(t, tp.Step(383), 0)
	test.Equate(t, tp.Step(1), 1)

	// second pulse is 0x42*8 = 528 cycles. stepping a long way covers the
	// remaining three pulses: 528 + 384 + 1024
	test.Equate(t, tp.Step(528+384+1024), 3)
	test.Equate(t, tp.IsEnd(), true)
	test.Equate(t, tp.Step(1000), 0)

	tp.Rewind()
	test.Equate(t, tp.IsEnd(), false)
	test.Equate(t, tp.Step(384), 1)
}

func TestTAPVersionZero(t *testing.T) {
	// in a version 0 image the zero byte is the longest expressible pulse
	fn := writeTAP(t, 0, []byte{0x00, 0x10})

	tp, err := tape.NewTape(fn)
	test.ExpectedSuccess(t, err)

	test.Equate(t, tp.Step(256*8), 1)
	test.Equate(t, tp.Step(0x10*8), 1)
	test.Equate(t, tp.IsEnd(), true)
}

func TestBadTAP(t *testing.T) {
	dir := t.TempDir()

	// wrong magic
	fn := filepath.Join(dir, "bad.tap")
	test.ExpectedSuccess(t, os.WriteFile(fn, []byte("C64-TAPE-XXXXXXXXXXX"), 0644))
	_, err := tape.NewTape(fn)
	test.ExpectedFailure(t, err)

	// unsupported version
	fn = writeTAP(t, 2, []byte{0x30})
	_, err = tape.NewTape(fn)
	test.ExpectedFailure(t, err)

	// truncated overflow pulse
	fn = writeTAP(t, 1, []byte{0x00, 0x01})
	_, err = tape.NewTape(fn)
	test.ExpectedFailure(t, err)

	// unknown extension
	fn = filepath.Join(dir, "tape.d64")
	test.ExpectedSuccess(t, os.WriteFile(fn, []byte{0x00}, 0644))
	_, err = tape.NewTape(fn)
	test.ExpectedFailure(t, err)
}
