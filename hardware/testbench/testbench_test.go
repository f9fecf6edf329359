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

package testbench_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/hardware/testbench"
	"github.com/jetsetilly/vgasim/test"
)

// sequence is a design that outputs a predefined list of outputs
type sequence struct {
	in   signal.Inputs
	outs []signal.Outputs
	idx  int

	// number of ticks with the write strobe asserted
	strobed int
}

func (s *sequence) Inputs() *signal.Inputs {
	return &s.in
}

func (s *sequence) Tick() {
	s.idx++
	if s.in.WriteNewPosition {
		s.strobed++
	}
}

func (s *sequence) Outputs() signal.Outputs {
	return s.outs[(s.idx-1)%len(s.outs)]
}

func (s *sequence) Registers() signal.Registers {
	return signal.Registers{}
}

func TestSyncEdges(t *testing.T) {
	d := &sequence{outs: []signal.Outputs{
		{HSync: true},
		{HSync: true, VSync: true},
		{VSync: true},
		{},
		{},
	}}
	tb := testbench.NewTestbench(d, 1)

	tb.Tick()
	test.ExpectFailure(t, tb.HSyncStopped())
	tb.Tick()
	test.ExpectFailure(t, tb.HSyncStopped())
	tb.Tick()
	test.ExpectSuccess(t, tb.HSyncStopped())
	test.ExpectFailure(t, tb.VSyncStopped())
	tb.Tick()
	test.ExpectFailure(t, tb.HSyncStopped())
	test.ExpectSuccess(t, tb.VSyncStopped())
	test.ExpectEquality(t, tb.FrameCount, 1)
	tb.Tick()
	test.ExpectFailure(t, tb.VSyncStopped())
	test.ExpectEquality(t, tb.TickCount, uint64(5))
}

func TestDoubleClock(t *testing.T) {
	d := &sequence{outs: []signal.Outputs{
		{HSync: true},
		{},
	}}
	tb := testbench.NewTestbench(d, 2)

	// the edge happens on the second clock of the first tick
	tb.Tick()
	test.ExpectSuccess(t, tb.HSyncStopped())
	test.ExpectEquality(t, tb.TickCount, uint64(2))
	tb.Tick()
	test.ExpectSuccess(t, tb.HSyncStopped())
}

func TestExamine(t *testing.T) {
	d := &sequence{outs: []signal.Outputs{
		{VSync: true},
		{},
		{Speaker: true},
		{},
	}}
	tb := testbench.NewTestbench(d, 1)
	tb.Examine(true)

	// the first frame has no tone before it ends
	tb.Tick()
	tb.Tick()
	test.ExpectFailure(t, tb.Paused())

	// tone in the second frame pauses at the end of the frame
	tb.Tick()
	tb.Tick()
	test.ExpectFailure(t, tb.Paused())
	tb.Tick()
	tb.Tick()
	test.ExpectSuccess(t, tb.Paused())
	test.ExpectFailure(t, tb.ExamineMode)

	tb.Pause(false)
	test.ExpectFailure(t, tb.Paused())
}

func TestBigNum(t *testing.T) {
	test.ExpectEquality(t, testbench.BigNum(0), "0")
	test.ExpectEquality(t, testbench.BigNum(999), "999")
	test.ExpectEquality(t, testbench.BigNum(1000), "1,000")
	test.ExpectEquality(t, testbench.BigNum(25000000), "25,000,000")
}

func TestWriteStrobe(t *testing.T) {
	d := &sequence{outs: []signal.Outputs{{}}}
	tb := testbench.NewTestbench(d, 1)

	tb.Inputs().WriteNewPosition = true
	for range 100 {
		tb.Tick()
	}
	test.ExpectEquality(t, d.strobed, 1)
	test.ExpectFailure(t, tb.Inputs().WriteNewPosition)

	// double clocking does not lengthen the pulse
	d = &sequence{outs: []signal.Outputs{{}}}
	tb = testbench.NewTestbench(d, 2)
	tb.Inputs().WriteNewPosition = true
	tb.Tick()
	tb.Tick()
	test.ExpectEquality(t, d.strobed, 1)
}
