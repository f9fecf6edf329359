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

// Package television reconstructs a two dimensional image from the one
// dimensional signal of a VGA design.
//
// The design's signal does not say where a line or a frame begins. The only
// clues are the ends of the sync pulses and the first lit pixel after them. The
// Raster type recovers the beam position from these clues. It keeps an estimate
// of the number of blank clocks between the end of the horizontal sync pulse
// and the start of the visible line, and an estimate of the first visible line
// of the frame. Both estimates start high and only ever decrease.
//
// Estimates are not adjusted until the raster has settled. This is a number of
// ticks, one frame by default, during which the design is given the
// opportunity to produce a steady signal.
//
// The Television type drives a Raster and writes the signal to a frame
// buffer at the recovered beam position.
package television
