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

// Package testbench wraps a signal.Design with the housekeeping needed by the
// host. It counts ticks and frames, detects the end of the sync pulses, and
// implements pausing and the examine mode.
package testbench

import (
	"fmt"

	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/logger"
)

// Testbench drives a signal.Design.
type Testbench struct {
	design signal.Design

	// number of design clocks per call to Tick(). the sync edges of the
	// individual clocks are combined
	clocksPerTick int

	// total number of design clocks
	TickCount uint64

	// number of times the vertical sync pulse has ended
	FrameCount int

	prevHSync bool
	prevVSync bool

	hsyncStopped bool
	vsyncStopped bool

	paused bool

	// log every vertical sync
	LogVSync bool

	// pause at the end of the first frame that produced a tone
	ExamineMode         bool
	ExamineConditionMet bool
}

// NewTestbench is the preferred method of initialisation for the Testbench
// type. The clocksPerTick value will be one in most cases.
func NewTestbench(design signal.Design, clocksPerTick int) *Testbench {
	return &Testbench{
		design:        design,
		clocksPerTick: max(clocksPerTick, 1),
	}
}

func (tb *Testbench) String() string {
	return fmt.Sprintf("frame=%d ticks=%s", tb.FrameCount, BigNum(tb.TickCount))
}

// Inputs returns the input pins of the design.
func (tb *Testbench) Inputs() *signal.Inputs {
	return tb.design.Inputs()
}

// Outputs returns the output pins of the design after the most recent tick.
func (tb *Testbench) Outputs() signal.Outputs {
	return tb.design.Outputs()
}

// Registers returns the live navigation registers of the design.
func (tb *Testbench) Registers() signal.Registers {
	return tb.design.Registers()
}

// HSyncStopped returns true if the horizontal sync pulse ended during the most
// recent tick.
func (tb *Testbench) HSyncStopped() bool {
	return tb.hsyncStopped
}

// VSyncStopped returns true if the vertical sync pulse ended during the most
// recent tick.
func (tb *Testbench) VSyncStopped() bool {
	return tb.vsyncStopped
}

// Tick the design. The write new position strobe is a one clock pulse and is
// deasserted after the first clock.
func (tb *Testbench) Tick() {
	tb.hsyncStopped = false
	tb.vsyncStopped = false

	for range tb.clocksPerTick {
		tb.design.Tick()
		tb.design.Inputs().WriteNewPosition = false
		tb.TickCount++

		out := tb.design.Outputs()
		if tb.prevHSync && !out.HSync {
			tb.hsyncStopped = true
		}
		if tb.prevVSync && !out.VSync {
			tb.vsyncStopped = true
		}
		tb.prevHSync = out.HSync
		tb.prevVSync = out.VSync

		if out.Speaker {
			tb.ExamineConditionMet = true
		}
	}

	if tb.vsyncStopped {
		tb.FrameCount++

		if tb.LogVSync {
			logger.Logf(logger.Allow, "testbench", "VSYNC ended: frame %d (ticks %s)", tb.FrameCount, BigNum(tb.TickCount))
		}

		if tb.ExamineMode {
			if tb.ExamineConditionMet {
				logger.Logf(logger.Allow, "testbench", "examine: tone in frame %d", tb.FrameCount)
				tb.ExamineMode = false
				tb.Pause(true)
			}
			tb.ExamineConditionMet = false
		}
	}
}

// Pause or resume.
func (tb *Testbench) Pause(pause bool) {
	if pause == tb.paused {
		return
	}
	tb.paused = pause
	if pause {
		logger.Logf(logger.Allow, "testbench", "paused at frame %d", tb.FrameCount)
	} else {
		logger.Log(logger.Allow, "testbench", "resumed")
	}
}

// Paused returns true if the testbench is paused.
func (tb *Testbench) Paused() bool {
	return tb.paused
}

// Examine starts examine mode.
func (tb *Testbench) Examine(on bool) {
	tb.ExamineMode = on
	tb.ExamineConditionMet = false
}

// BigNum formats a number with comma separators.
func BigNum(n uint64) string {
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
