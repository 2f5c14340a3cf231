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

package hardware

// The continueCheck() function passed to Run() is called at the end of every
// CPU instruction, which can still be expensive. PerformanceBrake is a
// standard value for filtering out expensive code paths within a
// continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function should return false when the emulation should stop; cancellation
// is cooperative and only happens at instruction boundaries.
func (c64 *C64) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	running := true
	var err error

	for running {
		if _, err = c64.Step(); err != nil {
			return err
		}

		if running, err = continueCheck(); err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for FPS measurement and tests.
func (c64 *C64) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	targetFrame := c64.TV.Frame() + numFrames

	running := true
	var err error

	for running && c64.TV.Frame() < targetFrame {
		if _, err = c64.Step(); err != nil {
			return err
		}

		if running, err = continueCheck(c64.TV.Frame()); err != nil {
			return err
		}
	}

	return nil
}
