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

// TelevisionVIC exposes only the functions required by the VIC.
type TelevisionVIC interface {
	NewFrame() error
	GetSpec() Spec
}

// PixelRenderer implementations display, or otherwise work with, the frames
// produced by the emulation. The television does not push pixels; on each
// NewFrame() event the renderer reads the screen matrix, colour RAM and
// character set from the memory system.
//
// Implementations often find it convenient to maintain a reference to the
// machine being rendered.
type PixelRenderer interface {
	// NewFrame is called at the completion of every frame.
	NewFrame(frameNum int) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with the sound produced by the SID; most
// probably playing it or writing it to disk.
type AudioMixer interface {
	SetAudio(samples []uint8) error

	// the AudioMixer should be considered unusable after EndMixing() has
	// been called
	EndMixing() error
}
