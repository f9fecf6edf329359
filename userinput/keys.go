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

package userinput

// Keys is the state of the held keys at the moment the simulation asks for
// them. The GUI is responsible for filling in the state.
type Keys struct {
	// W, S, A and D
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool

	// left and right cursor keys
	TurnLeft  bool
	TurnRight bool

	// left shift
	Run bool

	// tab and R
	Map   bool
	Reset bool

	// relative mouse motion accumulated since the previous batch
	MouseDX int
}
