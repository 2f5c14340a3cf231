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
)

// Television is the reference television implementation. It counts frames,
// forwards frame and audio events to attached renderers and mixers, and
// paces the emulation to the frame rate of the specification.
type Television struct {
	spec Spec

	frameNum int

	renderers []PixelRenderer
	mixers    []AudioMixer

	lmtr limiter
}

// NewTelevision creates a new instance of the television for the given
// specification ID.
func NewTelevision(id string) (*Television, error) {
	spec, err := GetSpec(id)
	if err != nil {
		return nil, err
	}

	tv := &Television{spec: spec}
	tv.lmtr.init(spec.FramesPerSecond)

	return tv, nil
}

func (tv *Television) String() string {
	return fmt.Sprintf("%s [frame: %d]", tv.spec.ID, tv.frameNum)
}

// GetSpec returns the television specification.
func (tv *Television) GetSpec() Spec {
	return tv.spec
}

// AddPixelRenderer adds a renderer to the television. Renderers are
// notified of frames in the order they were added.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer adds an audio mixer to the television.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// Reset the television to an initial state. Attached renderers and mixers
// are kept.
func (tv *Television) Reset() {
	tv.frameNum = 0
}

// Frame returns the number of frames completed since the last reset.
func (tv *Television) Frame() int {
	return tv.frameNum
}

// NewFrame is called by the VIC at the completion of every frame. The call
// blocks if the emulation is running ahead of the requested frame rate.
func (tv *Television) NewFrame() error {
	tv.frameNum++

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum); err != nil {
			return err
		}
	}

	tv.lmtr.checkFrame()
	tv.lmtr.measureActual()

	return nil
}

// SetAudio forwards a buffer of PCM samples to the attached mixers.
func (tv *Television) SetAudio(samples []uint8) error {
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			return err
		}
	}
	return nil
}

// SetFPS requests the number of frames per second. A value of zero or less
// requests the rate of the specification.
func (tv *Television) SetFPS(fps float32) {
	tv.lmtr.setRate(fps)
}

// GetReqFPS returns the requested number of frames per second.
func (tv *Television) GetReqFPS() float32 {
	return tv.lmtr.requested.Load().(float32)
}

// GetActualFPS returns the measured number of frames per second.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.actual.Load().(float32)
}

// SetFPSCap turns frame rate limiting on and off. Headless runs and
// performance measurement turn it off.
func (tv *Television) SetFPSCap(limit bool) {
	tv.lmtr.active = limit
}

// End gently closes all attached renderers and mixers. The television
// should be considered unusable afterwards.
func (tv *Television) End() error {
	var rerr error
	for _, r := range tv.renderers {
		if err := r.EndRendering(); err != nil && rerr == nil {
			rerr = err
		}
	}
	for _, m := range tv.mixers {
		if err := m.EndMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}
	return rerr
}
