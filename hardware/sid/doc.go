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

// Package sid implements the 6581 sound interface device. Three voices with
// 24 bit phase accumulators and the four waveforms, mixed down to 8 bit
// mono PCM at roughly 44.1kHz. The envelope generator is simplified: a
// gated voice sounds at its sustain level immediately. The analog filter is
// register store only.
//
// Samples accumulate in an internal buffer as the chip is stepped; the
// machine drains the buffer to the television's audio mixers.
package sid
