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

// Event represents all the different types of input event.
type Event interface{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key press or release. Key is the name of the key as
// reported by the GUI. eg. "A", "Left", "Space", "Keypad +".
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// EventMouseMotion is relative motion of the mouse.
type EventMouseMotion struct {
	DX int
	DY int
}

// EventQuit is sent when the host wants the simulation to end. For example,
// the window has been closed.
type EventQuit struct{}
