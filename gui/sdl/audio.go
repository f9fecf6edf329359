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

package sdl

import (
	"github.com/jetsetilly/vgasim/curated"

	"github.com/veandco/go-sdl2/sdl"
)

// sample rate of the audio device
const sampleFreq = 44100

// number of samples queued in one go
const bufferLength = 512

// the queue is cleared if it grows beyond this many bytes
const maxQueued = bufferLength * 8

// tone amplitude above silence
const amplitude = 32

// Audio implements the simulation.AudioMixer interface. The tone output of the
// design is played through the default audio device.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// number of design ticks per second
	clockHz int

	// see the wavwriter package for how the tick rate is reduced to the
	// sample rate
	acc   int
	ticks int
	high  int

	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(clockHz int) (*Audio, error) {
	aud := &Audio{
		clockHz: clockHz,
		buffer:  make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdl: audio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the simulation.AudioMixer interface.
func (aud *Audio) SetAudio(speaker bool) error {
	aud.ticks++
	if speaker {
		aud.high++
	}

	aud.acc += sampleFreq
	if aud.acc < aud.clockHz {
		return nil
	}
	aud.acc -= aud.clockHz

	aud.buffer[aud.bufferCt] = aud.spec.Silence + uint8(aud.high*amplitude/aud.ticks)
	aud.bufferCt++
	aud.ticks = 0
	aud.high = 0

	if aud.bufferCt >= len(aud.buffer) {
		return aud.flushAudio()
	}

	return nil
}

func (aud *Audio) flushAudio() error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}
	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdl: audio: %v", err)
	}
	aud.bufferCt = 0
	return nil
}

// EndMixing flushes any remaining audio and closes the audio device.
func (aud *Audio) EndMixing() error {
	defer sdl.CloseAudioDevice(aud.id)
	aud.buffer = aud.buffer[:aud.bufferCt]
	return aud.flushAudio()
}
