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

// Package userinput translates input from the host GUI into commands for the
// simulation. It hides the details of the GUI implementation from the
// simulation and the details of the simulation from the GUI.
//
// Events are sent to Controllers.HandleUserInput() which interprets them and
// forwards the result to an implementation of the HandleInput interface.
//
// Keys held down for the duration of a refresh batch are reported separately
// with the Keys type, because the simulation reads them once per batch rather
// than once per event.
//
// The GUI implementation in use during development was SDL and so key names
// follow SDL's scancode names.
package userinput
