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

package television

import (
	"fmt"

	"github.com/jetsetilly/vgasim/television/specification"
)

// Sync is the information about the signal that the raster needs for each
// tick.
type Sync struct {
	// the sync pulses ended on this tick
	HSyncEnded bool
	VSyncEnded bool

	// any colour channel is non-zero
	Lit bool
}

// Event is a bit field that describes what happened during a raster step.
type Event uint8

// List of valid Event bits.
const (
	EventHorizAdjust Event = 1 << iota
	EventVertShift
	EventNewLine
	EventNewFrame
)

// Raster is the state of the beam position recovery. It is a value type.
// Step() returns an updated copy.
type Raster struct {
	// the beam position
	Col int
	Row int

	// counting the blank clocks after the end of the horizontal sync pulse
	Counting     bool
	BlankCounter int

	// estimated number of blank clocks between the end of the horizontal sync
	// pulse and the first visible pixel
	HorizAdjust int

	// estimated row of the first visible line of the frame
	VertShift int

	// number of ticks until the estimates can be adjusted
	Settle int
}

// NewRaster returns a raster with estimates that are deliberately too high, at
// twice the back porch lengths of the specification. The settle period is one
// frame.
func NewRaster(spec specification.Spec) Raster {
	return Raster{
		HorizAdjust: spec.HorizBackPorch * 2,
		VertShift:   spec.VertBackPorch * 2,
		Settle:      spec.FrameClocks(),
	}
}

func (r Raster) String() string {
	return fmt.Sprintf("col=%d row=%d hadj=%d vshift=%d", r.Col, r.Row, r.HorizAdjust, r.VertShift)
}

// Settled returns true if the estimates can be adjusted.
func (r Raster) Settled() bool {
	return r.Settle <= 0
}

// Step the raster by one tick.
func (r Raster) Step(sig Sync) (Raster, Event) {
	var ev Event

	if r.Settle > 0 {
		r.Settle--
	}

	if sig.HSyncEnded {
		r.Counting = true
		r.BlankCounter = 0
	}

	if r.Counting {
		if r.BlankCounter >= r.HorizAdjust {
			// the expected number of blank clocks has passed so this is the
			// start of a new line
			r.Counting = false
			r.Col = 0
			r.Row++
			ev |= EventNewLine
		} else if sig.Lit {
			// a lit pixel before the expected number of blank clocks. the
			// beam position doesn't advance while unsettled
			if r.Settled() {
				r.HorizAdjust = r.BlankCounter
				ev |= EventHorizAdjust
			}
		} else {
			r.Col++
			r.BlankCounter++
		}
	} else {
		r.Col++
	}

	if sig.VSyncEnded {
		r.Row = 0
		ev |= EventNewFrame
	}

	if sig.Lit && r.Settled() && r.Row < r.VertShift {
		r.VertShift = r.Row
		ev |= EventVertShift
	}

	return r, ev
}
