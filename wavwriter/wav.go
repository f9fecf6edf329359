// This file is part of vgasim.
//
// vgasim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgasim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgasim.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the design's tone output to disk as a
// WAV file. Note that audio data is buffered in memory in its entirity, and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/vgasim/curated"
	"github.com/jetsetilly/vgasim/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// BitDepth of each sample.
const BitDepth = 16

// amplitude of the tone
const amplitude = 8192

// WavWriter implements the simulation.AudioMixer interface.
type WavWriter struct {
	filename string

	// number of design ticks per second
	clockHz int

	// accumulates SampleFreq for every tick. a sample is emitted when the
	// accumulator reaches clockHz
	acc int

	// number of ticks and number of ticks with the tone asserted since the
	// last sample
	ticks int
	high  int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, clockHz int) (*WavWriter, error) {
	if clockHz < SampleFreq {
		return nil, curated.Errorf("wavwriter: %v", "clock is slower than the sample rate")
	}

	aw := &WavWriter{
		filename: filename,
		clockHz:  clockHz,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the simulation.AudioMixer interface.
func (aw *WavWriter) SetAudio(speaker bool) error {
	aw.ticks++
	if speaker {
		aw.high++
	}

	aw.acc += SampleFreq
	if aw.acc < aw.clockHz {
		return nil
	}
	aw.acc -= aw.clockHz

	aw.buffer = append(aw.buffer, aw.high*amplitude/aw.ticks)
	aw.ticks = 0
	aw.high = 0

	return nil
}

// NumSamples returns the number of samples collected so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing writes the collected samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, BitDepth, 1, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
