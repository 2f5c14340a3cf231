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

package performance

import "github.com/gopher64/gopher64/television"

// CalcFPS converts a frame count measured over a duration (in seconds) into
// a frame rate, along with how close that rate comes to the nominal rate of
// the attached television, as a percentage.
func CalcFPS(tv *television.Television, numFrames int, duration float64) (float64, float64) {
	fps := float64(numFrames) / duration
	nominal := float64(tv.GetSpec().FramesPerSecond)
	return fps, fps / nominal * 100
}
