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

// Package testcard is a software model of a VGA design. It produces a
// 640x480 picture of a square room as seen from the position held in its
// navigation registers. The design moves through the room when its motion pins
// are asserted and sounds a tone while moving.
//
// The picture has a one pixel white border so that the first and last pixels
// of every visible line, and every pixel of the first and last visible lines,
// are lit.
package testcard

import (
	"math"

	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/navigation"
	"github.com/jetsetilly/vgasim/television/specification"
)

// RoomSize is the width and height of the room in map cells.
const RoomSize = 16

// size of a map cell in pixels when the map is shown
const mapCell = 8

// half period of the tone in ticks. about 440Hz at 25MHz
const toneHalfPeriod = 28409

// DefaultRegisters are the navigation registers after a reset. The player is
// in the middle of the room facing east.
var DefaultRegisters = navigation.State{
	PX: RoomSize / 2, PY: RoomSize / 2,
	FX: 1.0, FY: 0.0,
	VX: 0.0, VY: 0.5,
}.Registers()

type column struct {
	top    int
	bottom int
	wall   [3]uint8
}

// TestCard implements the signal.Design interface.
type TestCard struct {
	spec specification.Spec

	in   signal.Inputs
	out  signal.Outputs
	regs signal.Registers

	// position of the beam in the design's own timing
	h int
	v int

	// the scene is calculated once per frame
	nav     navigation.State
	columns []column

	ticks  uint64
	moving bool

	// a new position was written since the last frame
	written bool
}

// NewTestCard is the preferred method of initialisation for the TestCard type.
func NewTestCard(spec specification.Spec) *TestCard {
	tc := &TestCard{
		spec:    spec,
		regs:    DefaultRegisters,
		columns: make([]column, spec.HorizActive),
	}
	tc.scene()
	return tc
}

// Inputs implements the signal.Design interface.
func (tc *TestCard) Inputs() *signal.Inputs {
	return &tc.in
}

// Outputs implements the signal.Design interface.
func (tc *TestCard) Outputs() signal.Outputs {
	return tc.out
}

// Registers implements the signal.Design interface.
func (tc *TestCard) Registers() signal.Registers {
	return tc.regs
}

// Position returns the position of the beam that will be output by the next
// call to Tick().
func (tc *TestCard) Position() (int, int) {
	return tc.h, tc.v
}

// Tick implements the signal.Design interface.
func (tc *TestCard) Tick() {
	tc.ticks++

	if tc.in.Reset {
		tc.h = 0
		tc.v = 0
		tc.regs = DefaultRegisters
		tc.out = signal.Outputs{}
		tc.moving = false
		tc.written = false
		return
	}

	if tc.in.WriteNewPosition {
		tc.regs = tc.in.NewPosition
		tc.written = true
	}

	if tc.h == 0 && tc.v == 0 {
		tc.move()
		tc.scene()
	}

	tc.out = tc.pixel()

	tc.h++
	if tc.h >= tc.spec.HorizTotal() {
		tc.h = 0
		tc.v++
		if tc.v >= tc.spec.VertTotal() {
			tc.v = 0
		}
	}
}

// move the player according to the motion pins. a position written during
// the previous frame counts as movement for the tone.
func (tc *TestCard) move() {
	in := tc.in
	tc.moving = in.MoveForward || in.MoveBack || in.MoveLeft || in.MoveRight || tc.written
	tc.written = false

	nav := navigation.FromRegisters(tc.regs)
	if in.MoveForward {
		nav.Forward(navigation.Walk)
	}
	if in.MoveBack {
		nav.Forward(-navigation.Walk)
	}
	if in.MoveLeft {
		nav.Strafe(-navigation.Walk)
	}
	if in.MoveRight {
		nav.Strafe(navigation.Walk)
	}
	tc.regs = nav.Registers()
}

// scene casts one ray per column against the walls of the room.
func (tc *TestCard) scene() {
	tc.nav = navigation.FromRegisters(tc.regs)
	nav := tc.nav
	height := tc.spec.VertActive

	for x := range tc.columns {
		camera := 2*float64(x)/float64(len(tc.columns)) - 1
		rx := nav.FX + nav.VX*camera
		ry := nav.FY + nav.VY*camera

		dist, hit, xside := wallDistance(nav.PX, nav.PY, rx, ry)

		h := height
		if dist > 0 {
			h = min(int(float64(height)/dist), height)
		}

		c := &tc.columns[x]
		c.top = (height - h) / 2
		c.bottom = c.top + h

		// walls facing east/west are red and walls facing north/south are
		// blue. alternate cells are dimmer
		shade := uint8(3)
		if int(math.Floor(hit))%2 == 1 {
			shade = 2
		}
		if xside {
			c.wall = [3]uint8{shade, 0, 0}
		} else {
			c.wall = [3]uint8{0, 0, shade}
		}
	}
}

// wallDistance returns the distance along the ray to the wall of the room, the
// coordinate along the wall that the ray hit, and whether the wall is an east
// or west wall. the distance is in units of the ray's length.
func wallDistance(px, py, rx, ry float64) (float64, float64, bool) {
	tx := -1.0
	if rx > 0 {
		tx = (RoomSize - px) / rx
	} else if rx < 0 {
		tx = -px / rx
	}

	ty := -1.0
	if ry > 0 {
		ty = (RoomSize - py) / ry
	} else if ry < 0 {
		ty = -py / ry
	}

	if ty < 0 || (tx >= 0 && tx < ty) {
		return tx, py + ry*tx, true
	}
	return ty, px + rx*ty, false
}

func (tc *TestCard) pixel() signal.Outputs {
	var out signal.Outputs

	spec := tc.spec
	h := tc.h
	v := tc.v

	hsyncStart := spec.HorizActive + spec.HorizFrontPorch
	out.HSync = h >= hsyncStart && h < hsyncStart+spec.HorizSync

	vsyncStart := spec.VertActive + spec.VertFrontPorch
	out.VSync = v >= vsyncStart && v < vsyncStart+spec.VertSync

	out.Speaker = tc.moving && (tc.ticks/toneHalfPeriod)%2 == 0

	if h >= spec.HorizActive || v >= spec.VertActive {
		return out
	}

	switch {
	case h == 0 || v == 0 || h == spec.HorizActive-1 || v == spec.VertActive-1:
		out.Red, out.Green, out.Blue = 3, 3, 3
	case tc.in.ShowMap && h < RoomSize*mapCell && v < RoomSize*mapCell:
		out.Red, out.Green, out.Blue = tc.mapPixel(h, v)
	default:
		c := tc.columns[h]
		switch {
		case v < c.top:
			out.Blue = 1
		case v >= c.bottom:
			out.Red, out.Green, out.Blue = 1, 1, 1
		default:
			out.Red, out.Green, out.Blue = c.wall[0], c.wall[1], c.wall[2]
		}
	}

	return out
}

func (tc *TestCard) mapPixel(h, v int) (uint8, uint8, uint8) {
	nav := tc.nav
	if int(math.Floor(nav.PX)) == h/mapCell && int(math.Floor(nav.PY)) == v/mapCell {
		return 3, 3, 0
	}
	if h%mapCell == 0 || v%mapCell == 0 {
		return 1, 1, 1
	}
	return 0, 1, 0
}
