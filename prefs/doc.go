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

// Package prefs holds the runtime preference values for the application. Each
// type stores its value atomically so that a value can be changed by the
// input handler while it is being read by the display or the simulation.
//
// Hooks can be attached to a value. The pre hook is called before the value is
// changed and can veto the change by returning an error. The post hook is
// called after the change.
//
// Preferences can be given on the command line as a list of key::value pairs
// separated by semi-colons. The list is pushed onto a stack with
// PushCommandLineStack() and values are taken from the top of the stack with
// GetCommandLinePref() or ApplyCommandLine(). There is no disk persistence.
package prefs
