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

package sid

// bits of the voice control register.
const (
	ctrlGate     = uint8(0x01)
	ctrlTriangle = uint8(0x10)
	ctrlSawtooth = uint8(0x20)
	ctrlPulse    = uint8(0x40)
	ctrlNoise    = uint8(0x80)
)

// voice is one of the three tone generators in the SID.
type voice struct {
	freq       uint16
	pulseWidth uint16 // 12 bits
	control    uint8

	attackDecay    uint8
	sustainRelease uint8

	// 24 bit phase accumulator, advanced by freq every cycle
	accumulator uint32

	// noise shift register
	noise uint32
}

func (v *voice) reset() {
	v.freq = 0
	v.pulseWidth = 0
	v.control = 0
	v.attackDecay = 0
	v.sustainRelease = 0
	v.accumulator = 0
	v.noise = 0x7ffff8
}

// step the phase accumulator forward n cycles.
func (v *voice) step(n int) {
	prev := v.accumulator
	v.accumulator = (v.accumulator + uint32(v.freq)*uint32(n)) & 0xffffff

	// clock the noise register when bit 19 of the accumulator rises
	if v.control&ctrlNoise == ctrlNoise && v.accumulator&0x080000 != prev&0x080000 {
		bit := ((v.noise >> 22) ^ (v.noise >> 17)) & 0x01
		v.noise = ((v.noise << 1) | bit) & 0x7fffff
	}
}

// envelope returns the amplitude of the voice as a 4 bit value. the full
// ADSR curve is not modelled; a gated voice sounds at its sustain level.
func (v *voice) envelope() uint8 {
	if v.control&ctrlGate != ctrlGate {
		return 0x00
	}
	return v.sustainRelease >> 4
}

// output returns the waveform output of the voice as an 8 bit value centred
// on 0x80.
func (v *voice) output() uint8 {
	if v.envelope() == 0x00 {
		return 0x80
	}

	// the top 12 bits of the accumulator drive the waveform generators
	phase := uint16(v.accumulator >> 12)

	var wave uint16
	switch {
	case v.control&ctrlNoise == ctrlNoise:
		wave = uint16(v.noise>>11) & 0x0fff
	case v.control&ctrlPulse == ctrlPulse:
		if phase < v.pulseWidth&0x0fff {
			wave = 0x0fff
		}
	case v.control&ctrlSawtooth == ctrlSawtooth:
		wave = phase
	case v.control&ctrlTriangle == ctrlTriangle:
		wave = phase << 1
		if phase&0x0800 == 0x0800 {
			wave = ^wave
		}
		wave &= 0x0fff
	default:
		return 0x80
	}

	// scale the 12 bit waveform to 8 bits and apply the envelope
	return uint8(int(wave>>4) * int(v.envelope()) / 15)
}
