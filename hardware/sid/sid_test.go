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

package sid_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/sid"
	"github.com/gopher64/gopher64/test"
)

func TestSampleRendering(t *testing.T) {
	s := sid.NewSID()

	// 2200 cycles at 22 cycles per sample is exactly 100 samples
	s.Step(2200)
	b := s.Audio()
	test.Equate(t, len(b), 100)

	// the buffer has been drained
	test.Equate(t, len(s.Audio()), 0)

	// a silent SID renders zero amplitude
	for _, v := range b {
		test.Equate(t, v, 0)
	}
}

func TestVoiceOutput(t *testing.T) {
	s := sid.NewSID()

	// full volume
	s.ChipWrite(0x18, 0x0f)

	// voice 1: sawtooth, maximum frequency, full sustain, gate on
	s.ChipWrite(0x00, 0xff)
	s.ChipWrite(0x01, 0xff)
	s.ChipWrite(0x06, 0xf0)
	s.ChipWrite(0x04, 0x21)

	s.Step(2200)
	b := s.Audio()
	test.Equate(t, len(b), 100)

	// a gated sawtooth at maximum frequency is not silence
	quiet := true
	for _, v := range b {
		if v > 0x10 {
			quiet = false
		}
	}
	test.Equate(t, quiet, false)

	// dropping the gate leaves the mix resting at the centre value
	s.ChipWrite(0x04, 0x20)
	s.Step(2200)
	for _, v := range s.Audio() {
		test.Equate(t, v, 0x80)
	}
}

func TestReadBack(t *testing.T) {
	s := sid.NewSID()

	// most registers are write only
	s.ChipWrite(0x00, 0xff)
	test.Equate(t, s.ChipRead(0x00), 0x00)

	// no paddles attached
	test.Equate(t, s.ChipRead(0x19), 0xff)
	test.Equate(t, s.ChipRead(0x1a), 0xff)

	// voice 3 oscillator read back. maximum frequency advances the top
	// byte of the accumulator quickly
	s.ChipWrite(0x0e, 0xff)
	s.ChipWrite(0x0f, 0xff)
	s.Step(256)
	if s.ChipRead(0x1b) == 0x00 {
		t.Errorf("voice 3 oscillator not advancing")
	}

	// voice 3 envelope read back
	s.ChipWrite(0x14, 0xa0)
	s.ChipWrite(0x12, 0x11)
	test.Equate(t, s.ChipRead(0x1c), 0xa0)
}
