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

import (
	"fmt"
)

// SampleFreq is the nominal sample frequency of the rendered PCM stream.
const SampleFreq = 44100

// one sample is rendered every cyclesPerSample cycles. with a PAL clock of
// 985248Hz this gives a rate a shade over SampleFreq.
const cyclesPerSample = 22

// the register offset of each voice and the global registers. addresses
// arriving through ChipRead and ChipWrite have already been masked down to
// five bits.
const (
	regFreqLo  = 0x00
	regFreqHi  = 0x01
	regPWLo    = 0x02
	regPWHi    = 0x03
	regControl = 0x04
	regAD      = 0x05
	regSR      = 0x06

	voiceRegs = 0x07

	regFilterLo  = 0x15
	regFilterHi  = 0x16
	regResFilt   = 0x17
	regModeVol   = 0x18
	regPaddleX   = 0x19
	regPaddleY   = 0x1a
	regOsc3      = 0x1b
	regEnv3      = 0x1c
)

// SID implements the 6581 sound interface device. It implements the
// chipbus.Chip interface.
type SID struct {
	voices [3]voice

	// the filter is a register store only
	filterLo uint8
	filterHi uint8
	resFilt  uint8
	modeVol  uint8

	// count of cycles toward the next sample
	sampleClk int

	// samples rendered since the last call to Audio()
	buffer []uint8
}

// NewSID is the preferred method of initialisation for the SID type.
func NewSID() *SID {
	s := &SID{}
	s.Reset()
	return s
}

func (s *SID) String() string {
	return fmt.Sprintf("ctrl=%#02x/%#02x/%#02x vol=%#02x", s.voices[0].control, s.voices[1].control, s.voices[2].control, s.modeVol&0x0f)
}

// Reset the SID to its power on state.
func (s *SID) Reset() {
	for i := range s.voices {
		s.voices[i].reset()
	}
	s.filterLo = 0
	s.filterHi = 0
	s.resFilt = 0
	s.modeVol = 0
	s.sampleClk = 0
	s.buffer = s.buffer[:0]
}

// Step the SID forward n cycles, rendering samples as sample boundaries
// pass.
func (s *SID) Step(n int) {
	for n > 0 {
		c := cyclesPerSample - s.sampleClk
		if c > n {
			s.sampleClk += n
			for i := range s.voices {
				s.voices[i].step(n)
			}
			return
		}

		for i := range s.voices {
			s.voices[i].step(c)
		}
		n -= c
		s.sampleClk = 0
		s.buffer = append(s.buffer, s.sample())
	}
}

// sample mixes the three voices down to one 8 bit value, scaled by the
// volume register.
func (s *SID) sample() uint8 {
	mix := 0
	for i := range s.voices {
		mix += int(s.voices[i].output())
	}
	mix /= len(s.voices)

	vol := int(s.modeVol & 0x0f)
	return uint8(mix * vol / 15)
}

// Audio returns the samples rendered since the last call. The returned
// slice is only valid until the next call to Step().
func (s *SID) Audio() []uint8 {
	b := s.buffer
	s.buffer = s.buffer[:0]
	return b
}

// ChipRead is an implementation of chipbus.Chip.
func (s *SID) ChipRead(register uint8) uint8 {
	switch register {
	case regPaddleX, regPaddleY:
		// no paddles attached
		return 0xff
	case regOsc3:
		return uint8(s.voices[2].accumulator >> 16)
	case regEnv3:
		return s.voices[2].envelope() << 4
	}

	// the remaining registers are write only
	return 0x00
}

// ChipWrite is an implementation of chipbus.Chip.
func (s *SID) ChipWrite(register uint8, data uint8) {
	if register < voiceRegs*3 {
		v := &s.voices[register/voiceRegs]
		switch register % voiceRegs {
		case regFreqLo:
			v.freq = (v.freq & 0xff00) | uint16(data)
		case regFreqHi:
			v.freq = (v.freq & 0x00ff) | (uint16(data) << 8)
		case regPWLo:
			v.pulseWidth = (v.pulseWidth & 0x0f00) | uint16(data)
		case regPWHi:
			v.pulseWidth = (v.pulseWidth & 0x00ff) | (uint16(data&0x0f) << 8)
		case regControl:
			v.control = data
		case regAD:
			v.attackDecay = data
		case regSR:
			v.sustainRelease = data
		}
		return
	}

	switch register {
	case regFilterLo:
		s.filterLo = data
	case regFilterHi:
		s.filterHi = data
	case regResFilt:
		s.resFilt = data
	case regModeVol:
		s.modeVol = data
	}

	// writes to the read only registers are absorbed
}
