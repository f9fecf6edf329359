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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/digest"
	"github.com/jetsetilly/vgasim/hardware/testcard"
	"github.com/jetsetilly/vgasim/simulation"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/test"
	"github.com/jetsetilly/vgasim/userinput"
)

// run the simulation for a number of frames and return the digests
func run(t *testing.T, frames int, move bool) (string, string) {
	t.Helper()

	spec := specification.SpecVGA
	opts, err := simulation.NewOptions(spec)
	test.DemandSuccess(t, err)
	sim := simulation.NewSimulation(spec, testcard.NewTestCard(spec), opts, 1)
	sim.Television().SetQuiet(true)

	aud := digest.NewAudio()
	sim.AddAudioMixer(aud)
	vid := digest.NewVideo()

	if move {
		test.DemandSuccess(t, sim.HandleCommand(userinput.CmdToggleLock, int(userinput.DirForward)))
	}

	cfg := opts.Config()
	for sim.Testbench().FrameCount < frames {
		sim.PrepareInputs()
		sim.ApplyInputs(userinput.Keys{}, cfg)
		sim.RunBatch(cfg)
		vid.Frame(sim.Television().Buffer())
	}

	return vid.Hash(), aud.Hash()
}

func TestDeterminism(t *testing.T) {
	v1, a1 := run(t, 3, false)
	v2, a2 := run(t, 3, false)
	test.ExpectEquality(t, v1, v2)
	test.ExpectEquality(t, a1, a2)

	// moving changes the picture and sounds the tone
	v3, a3 := run(t, 3, true)
	test.ExpectInequality(t, v1, v3)
	test.ExpectInequality(t, a1, a3)
}

func TestReset(t *testing.T) {
	vid := digest.NewVideo()
	zero := vid.Hash()

	aud := digest.NewAudio()
	test.ExpectEquality(t, aud.Hash(), zero)
	test.DemandSuccess(t, aud.SetAudio(true))
	test.ExpectInequality(t, aud.Hash(), zero)
	aud.ResetDigest()
	test.ExpectEquality(t, aud.Hash(), zero)
}
