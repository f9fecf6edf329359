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

package override_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/fixedpoint"
	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/navigation"
	"github.com/jetsetilly/vgasim/override"
	"github.com/jetsetilly/vgasim/test"
	"github.com/jetsetilly/vgasim/userinput"
)

var designRegisters = navigation.State{PX: 2.5, PY: 3.5, FX: 1, FY: 0, VX: 0, VY: -0.5}.Registers()

func TestZeroValue(t *testing.T) {
	var c override.Controller
	test.ExpectFailure(t, c.IsActive())
	_, ok := c.Mode().(override.Inactive)
	test.ExpectSuccess(t, ok)
}

func TestActivate(t *testing.T) {
	var c override.Controller
	locks := userinput.Locks{Forward: true, Left: true, Map: true}

	c.Activate(designRegisters, &locks)
	test.ExpectSuccess(t, c.IsActive())
	test.ExpectEquality(t, locks, userinput.Locks{Map: true})

	a, ok := c.Mode().(*override.Active)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, a.Nav, navigation.FromRegisters(designRegisters))

	// activating again doesn't reload the vectors
	a.Nav.PX = 10
	c.Activate(signal.Registers{}, &locks)
	test.ExpectEquality(t, c.Mode().(*override.Active).Nav.PX, 10.0)
}

func TestActivateDeactivateWritesNothing(t *testing.T) {
	var c override.Controller

	in := signal.Inputs{MoveForward: true, NewPosition: signal.Registers{PlayerX: 0x123}}
	before := in

	c.Activate(designRegisters, nil)
	c.Deactivate()
	test.ExpectEquality(t, in, before)
	test.ExpectFailure(t, c.IsActive())

	// the strobe is deasserted while inactive
	in.WriteNewPosition = true
	c.Drive(&in, userinput.Keys{}, 1.0)
	test.ExpectFailure(t, in.WriteNewPosition)
	test.ExpectEquality(t, in.NewPosition, before.NewPosition)
}

func TestDriveWithoutInput(t *testing.T) {
	var c override.Controller
	var in signal.Inputs

	c.Activate(designRegisters, nil)
	c.Drive(&in, userinput.Keys{}, 1.0)
	test.ExpectSuccess(t, in.WriteNewPosition)
	test.ExpectEquality(t, in.NewPosition, designRegisters)
}

func TestDriveForward(t *testing.T) {
	var c override.Controller
	var in signal.Inputs

	c.Activate(designRegisters, nil)
	c.Drive(&in, userinput.Keys{Forward: true}, 1.0)
	test.ExpectEquality(t, fixedpoint.Decode(in.NewPosition.PlayerX, fixedpoint.Full), 2.5+navigation.Walk)
	test.ExpectEquality(t, in.NewPosition.PlayerY, designRegisters.PlayerY)

	c.Drive(&in, userinput.Keys{Back: true, Run: true}, 1.0)
	test.ExpectEquality(t, fixedpoint.Decode(in.NewPosition.PlayerX, fixedpoint.Full), 2.5+navigation.Walk-navigation.Run)

	// strafing right follows the viewplane, which points up in this test
	c.Drive(&in, userinput.Keys{StrafeRight: true}, 2.0)
	test.ExpectEquality(t, fixedpoint.Decode(in.NewPosition.PlayerY, fixedpoint.Full), 3.5-0.5*navigation.Walk*2)
}

func TestTurn(t *testing.T) {
	var left, mouse override.Active
	left.Nav = navigation.State{FX: 1, VY: 0.5}
	mouse.Nav = left.Nav

	left.Tick(userinput.Keys{TurnLeft: true}, 1.0)

	// a negative mouse movement turns the same way as the left key
	mouse.Tick(userinput.Keys{MouseDX: -5}, 1.0)
	test.ExpectApproximate(t, mouse.Nav.FY, left.Nav.FY, 1e-12)
	test.ExpectApproximate(t, mouse.Nav.FX, left.Nav.FX, 1e-12)

	// turning left moves the facing vector towards negative y
	test.ExpectSuccess(t, left.Nav.FY < 0)
}

func TestRotationBeforeTranslation(t *testing.T) {
	var a override.Active
	a.Nav = navigation.State{FX: 1, VY: 0.5}

	a.Tick(userinput.Keys{TurnLeft: true, Forward: true}, 1.0)

	// the player moved along the rotated facing vector
	test.ExpectApproximate(t, a.Nav.PX, a.Nav.FX*navigation.Walk, 1e-12)
	test.ExpectApproximate(t, a.Nav.PY, a.Nav.FY*navigation.Walk, 1e-12)
}
