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

// Package override lets the host take control of the navigation vectors of the
// simulated design. While the controller is active the host keeps its own
// floating point copy of the vectors, moves it according to user input, and
// writes it to the design on every refresh batch.
package override

import (
	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/navigation"
	"github.com/jetsetilly/vgasim/userinput"
)

// Rotation per batch when a turn key is held.
const KeyTurn = 0.01

// Rotation per unit of relative mouse motion. Moving the mouse to the right
// turns to the right, which is the opposite sign to KeyTurn.
const MouseTurn = 0.002

// Mode is implemented by Inactive and *Active.
type Mode interface {
	isMode()
}

// Inactive is the mode of a controller that is not overriding the design.
type Inactive struct{}

func (Inactive) isMode() {}

// Active is the mode of a controller that is overriding the design. It holds
// the vectors that are written to the design.
type Active struct {
	Nav navigation.State
}

func (*Active) isMode() {}

// Controller switches between Inactive and Active modes. The zero value is an
// inactive controller.
type Controller struct {
	mode Mode
}

// Mode returns the current mode. The result will be Inactive or *Active.
func (c *Controller) Mode() Mode {
	if c.mode == nil {
		return Inactive{}
	}
	return c.mode
}

// IsActive returns true if the controller is overriding the design.
func (c *Controller) IsActive() bool {
	_, ok := c.mode.(*Active)
	return ok
}

// Activate the controller. The vectors are loaded from the design's live
// registers and the direction locks are released. The map lock is kept.
//
// Nothing is written to the design until the first call to Drive(). If the
// controller is already active then the function does nothing.
func (c *Controller) Activate(regs signal.Registers, locks *userinput.Locks) {
	if c.IsActive() {
		return
	}

	a := &Active{Nav: navigation.FromRegisters(regs)}
	c.mode = a

	if locks != nil {
		locks.ClearDirections()
	}

	logger.Logf(logger.Allow, "override", "activated: %s", a.Nav)
}

// Deactivate the controller. Nothing is written to the design.
func (c *Controller) Deactivate() {
	if !c.IsActive() {
		return
	}
	c.mode = Inactive{}
	logger.Log(logger.Allow, "override", "deactivated")
}

// Toggle between the modes.
func (c *Controller) Toggle(regs signal.Registers, locks *userinput.Locks) {
	if c.IsActive() {
		c.Deactivate()
	} else {
		c.Activate(regs, locks)
	}
}

// Drive the design's inputs for the next refresh batch. When active, the
// vectors are moved according to the keys and written to the new position
// pins, and the write strobe is asserted. The strobe is a one clock pulse and
// is cleared by the testbench. When inactive the write strobe is
// deasserted and the new position pins are untouched.
func (c *Controller) Drive(in *signal.Inputs, keys userinput.Keys, motionScale float64) {
	switch m := c.mode.(type) {
	case *Active:
		m.Tick(keys, motionScale)
		in.NewPosition = m.Nav.Registers()
		in.WriteNewPosition = true
	default:
		in.WriteNewPosition = false
	}
}

// Tick moves the vectors according to the keys. Rotation is applied before
// translation. The motion scale multiplies both the rotation and the
// translation.
func (a *Active) Tick(keys userinput.Keys, motionScale float64) {
	angle := 0.0
	if keys.TurnLeft {
		angle += KeyTurn
	}
	if keys.TurnRight {
		angle -= KeyTurn
	}
	angle -= float64(keys.MouseDX) * MouseTurn

	if angle != 0 {
		a.Nav.Rotate(angle * motionScale)
	}

	m := navigation.Walk
	if keys.Run {
		m = navigation.Run
	}
	m *= motionScale

	if keys.Forward {
		a.Nav.Forward(m)
	}
	if keys.Back {
		a.Nav.Forward(-m)
	}
	if keys.StrafeLeft {
		a.Nav.Strafe(-m)
	}
	if keys.StrafeRight {
		a.Nav.Strafe(m)
	}
}
