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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/gopher64/gopher64/logger"
	"github.com/hajimehoshi/go-mp3"
)

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

func getPCM(filename string) (pcmData, error) {
	p := pcmData{
		data: make([]float32, 0),
	}

	f, err := os.Open(filename)
	if err != nil {
		return p, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return p, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log("tape", "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		p.data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		p.totalTime = dur.Seconds()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}

		logger.Log("tape", "loading from mp3 file")

		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, fmt.Errorf("mp3: %w", err)
			}

			// index increment of 4 because:
			//  - two bytes per sample per channel
			//  - we only want the left channel
			for i := 0; i < chunkLen; i += 4 {
				// little endian 16 bit sample
				f := int(chunk[i]) | (int(chunk[i+1]) << 8)

				// adjust value if it is not zero (same as interpreting
				// as two's complement)
				if f != 0 {
					f -= 32768
				}

				p.data = append(p.data, float32(f))
			}
		}

		// the go-mp3 stream is always 16bit little endian with two channels,
		// whatever the source file
		p.sampleRate = float64(dec.SampleRate())
		p.totalTime = float64(len(p.data)) / p.sampleRate
	}

	logger.Logf("tape", "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf("tape", "total time: %.02fs", p.totalTime)

	return p, nil
}

// pulsesFromPCM converts a sampled waveform to pulse lengths. a pulse runs
// from one positive going zero crossing to the next.
func pulsesFromPCM(p pcmData) []int {
	pulses := make([]int, 0, len(p.data)/8)

	last := 0
	prev := float32(0)
	for i, v := range p.data {
		if prev <= 0 && v > 0 {
			if i > last {
				pulses = append(pulses, int(float64(i-last)*cyclesPerSecond/p.sampleRate))
			}
			last = i
		}
		prev = v
	}

	return pulses
}
