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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gopher64/gopher64/logger"
)

// the CPU clock frequency pulse lengths are measured against. pulse lengths
// only need to be accurate to the tolerances of the tape loader so the PAL
// clock is close enough for either machine type.
const cyclesPerSecond = 985248

// Tape is a sequence of pulse lengths played back against the machine clock.
type Tape struct {
	Filename string

	// every pulse length on the tape, in CPU cycles
	pulses []int

	// playback position. countdown is the unplayed remainder of the current
	// pulse
	idx       int
	countdown int
}

// NewTape loads a tape from file. TAP images are read directly; WAV and MP3
// recordings are decoded to PCM and converted to pulses by zero crossing
// detection.
func NewTape(filename string) (*Tape, error) {
	tp := &Tape{Filename: filename}

	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tap":
		tp.pulses, err = loadTAP(filename)
	case ".wav", ".mp3":
		var p pcmData
		p, err = getPCM(filename)
		if err == nil {
			tp.pulses = pulsesFromPCM(p)
		}
	default:
		return nil, fmt.Errorf("tape: unrecognised file extension: %s", filename)
	}

	if err != nil {
		return nil, fmt.Errorf("tape: %w", err)
	}

	if len(tp.pulses) == 0 {
		return nil, fmt.Errorf("tape: no pulses in %s", filename)
	}

	logger.Logf("tape", "%s: %d pulses", filepath.Base(filename), len(tp.pulses))

	tp.Rewind()

	return tp, nil
}

func (tp *Tape) String() string {
	return fmt.Sprintf("%s: pulse %d of %d", filepath.Base(tp.Filename), tp.idx, len(tp.pulses))
}

// Rewind the tape to the beginning.
func (tp *Tape) Rewind() {
	tp.idx = 0
	tp.countdown = 0
}

// IsEnd returns true once the last pulse has played out.
func (tp *Tape) IsEnd() bool {
	return tp.idx >= len(tp.pulses)
}

// Step the tape forward by the given number of cycles, returning the number
// of pulses that completed. each completed pulse is an edge on the FLAG line
// of CIA1.
func (tp *Tape) Step(cycles int) int {
	edges := 0

	for cycles > 0 && tp.idx < len(tp.pulses) {
		if tp.countdown == 0 {
			tp.countdown = tp.pulses[tp.idx]
		}

		if tp.countdown > cycles {
			tp.countdown -= cycles
			break
		}

		cycles -= tp.countdown
		tp.countdown = 0
		tp.idx++
		edges++
	}

	return edges
}
