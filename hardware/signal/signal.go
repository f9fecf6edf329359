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

// Package signal defines the boundary between the host and a simulated VGA
// design. The design is stepped one clock at a time with Tick(). Between ticks
// the host writes to the input pins and reads the output pins.
package signal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/vgasim/fixedpoint"
)

// Registers are the navigation vectors of the design. Each value is a Q12.12
// fixed point number. See the fixedpoint package.
type Registers struct {
	PlayerX uint32
	PlayerY uint32
	FacingX uint32
	FacingY uint32
	VplaneX uint32
	VplaneY uint32
}

func (r Registers) String() string {
	return fmt.Sprintf("p=(%.3f,%.3f) f=(%.3f,%.3f) v=(%.3f,%.3f)",
		fixedpoint.Decode(r.PlayerX, fixedpoint.Full), fixedpoint.Decode(r.PlayerY, fixedpoint.Full),
		fixedpoint.Decode(r.FacingX, fixedpoint.Full), fixedpoint.Decode(r.FacingY, fixedpoint.Full),
		fixedpoint.Decode(r.VplaneX, fixedpoint.Full), fixedpoint.Decode(r.VplaneY, fixedpoint.Full),
	)
}

// Inputs are the pins driven by the host.
type Inputs struct {
	Reset   bool
	ShowMap bool

	// the design's own motion pins
	MoveForward bool
	MoveLeft    bool
	MoveBack    bool
	MoveRight   bool

	// while WriteNewPosition is asserted the design loads NewPosition into
	// its navigation registers
	WriteNewPosition bool
	NewPosition      Registers
}

// Outputs are the pins driven by the design.
type Outputs struct {
	// sync pulses. true while the pulse is active
	HSync bool
	VSync bool

	// two bits per colour channel
	Red   uint8
	Green uint8
	Blue  uint8

	// tone generation
	Speaker bool
}

// Lit returns true if any colour channel is non-zero.
func (o Outputs) Lit() bool {
	return o.Red|o.Green|o.Blue != 0
}

func (o Outputs) String() string {
	s := strings.Builder{}
	if o.HSync {
		s.WriteString("HS ")
	}
	if o.VSync {
		s.WriteString("VS ")
	}
	if o.Speaker {
		s.WriteString("SPK ")
	}
	s.WriteString(fmt.Sprintf("rgb=%d%d%d", o.Red, o.Green, o.Blue))
	return s.String()
}

// Design is implemented by a simulated VGA design.
type Design interface {
	// Inputs returns the input pins of the design. The pins can be written to
	// between calls to Tick()
	Inputs() *Inputs

	// Tick advances the design by one clock
	Tick()

	// Outputs returns the state of the output pins after the most recent Tick()
	Outputs() Outputs

	// Registers returns the live navigation registers
	Registers() Registers
}
