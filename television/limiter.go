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
	"sync/atomic"
	"time"
)

type limiter struct {
	// whether to wait on the pulse each frame
	active bool

	// the refresh rate of the TV specification
	refreshRate float32

	// the requested number of frames per second. stored atomically so that
	// a GUI thread can read it while the emulation runs
	requested atomic.Value // float32

	// the measured number of frames per second
	actual atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when the frame rate changes
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func (lmtr *limiter) init(refreshRate float32) {
	lmtr.active = true
	lmtr.refreshRate = refreshRate
	lmtr.requested.Store(float32(0))
	lmtr.actual.Store(float32(0))
	lmtr.measureTime = time.Now()
	lmtr.pulse = time.NewTicker(time.Millisecond * 10)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.setRate(refreshRate)
}

func (lmtr *limiter) setRate(fps float32) {
	// a value of zero or less means the rate of the TV specification
	if fps <= 0.0 {
		fps = lmtr.refreshRate
	}

	lmtr.requested.Store(fps)

	rate := float32(1000000.0) / fps
	dur, _ := time.ParseDuration(fmt.Sprintf("%fus", rate))
	lmtr.pulse.Reset(dur)

	// restart measurement
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// checkFrame is called every frame.
func (lmtr *limiter) checkFrame() {
	lmtr.measureCt++
	if lmtr.active {
		<-lmtr.pulse.C
	}
}

// measures the actual frame rate on every tick of the measuring pulse.
func (lmtr *limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))

		// reset time and count ready for the next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0

	default:
	}
}
