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

// Package navigation is the floating point model of the navigation vectors of
// the simulated design: the player position, the facing direction and the
// viewplane (camera plane).
package navigation

import (
	"fmt"
	"math"

	"github.com/jetsetilly/vgasim/fixedpoint"
	"github.com/jetsetilly/vgasim/hardware/signal"
)

// MoveQuantum is the smallest unit of movement. It is 2^-9 of a map cell.
const MoveQuantum = 1.0 / 512.0

// Movement speeds.
const (
	Crawl = 4 * MoveQuantum
	Walk  = 10 * MoveQuantum
	Run   = 18 * MoveQuantum
)

// State of the navigation vectors.
type State struct {
	PX, PY float64
	FX, FY float64
	VX, VY float64
}

func (s State) String() string {
	return fmt.Sprintf("p=(%.3f,%.3f) f=(%.3f,%.3f) v=(%.3f,%.3f)", s.PX, s.PY, s.FX, s.FY, s.VX, s.VY)
}

// FromRegisters decodes the registers of a design.
func FromRegisters(r signal.Registers) State {
	return State{
		PX: fixedpoint.Decode(r.PlayerX, fixedpoint.Full),
		PY: fixedpoint.Decode(r.PlayerY, fixedpoint.Full),
		FX: fixedpoint.Decode(r.FacingX, fixedpoint.Full),
		FY: fixedpoint.Decode(r.FacingY, fixedpoint.Full),
		VX: fixedpoint.Decode(r.VplaneX, fixedpoint.Full),
		VY: fixedpoint.Decode(r.VplaneY, fixedpoint.Full),
	}
}

// Registers encodes the state for writing to a design.
func (s State) Registers() signal.Registers {
	return signal.Registers{
		PlayerX: fixedpoint.Encode(s.PX),
		PlayerY: fixedpoint.Encode(s.PY),
		FacingX: fixedpoint.Encode(s.FX),
		FacingY: fixedpoint.Encode(s.FY),
		VplaneX: fixedpoint.Encode(s.VX),
		VplaneY: fixedpoint.Encode(s.VY),
	}
}

// rotate a single vector. a positive angle turns the vector anticlockwise on
// screen, where the y axis points down.
func rotate(x, y, sin, cos float64) (float64, float64) {
	return x*cos + y*sin, -x*sin + y*cos
}

// Rotate the facing and viewplane vectors by the angle (in radians). The
// player position is unchanged.
func (s *State) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	s.FX, s.FY = rotate(s.FX, s.FY, sin, cos)
	s.VX, s.VY = rotate(s.VX, s.VY, sin, cos)
}

// Forward moves the player along the facing vector. A negative distance moves
// the player backwards.
func (s *State) Forward(distance float64) {
	s.PX += s.FX * distance
	s.PY += s.FY * distance
}

// Strafe moves the player along the viewplane vector. A negative distance
// moves the player to the left.
func (s *State) Strafe(distance float64) {
	s.PX += s.VX * distance
	s.PY += s.VY * distance
}
