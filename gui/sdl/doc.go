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

// Package sdl implements the simulation.Host interface with an SDL window.
//
// The frame buffer of the television is copied to a streaming texture every
// time the simulation presents. The status line and the optional vector guides
// are drawn underneath and on top of the frame buffer respectively.
//
// All functions must be called from the main thread.
package sdl
