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

// Package simulation runs a simulated VGA design and reconstructs its picture.
//
// The simulation proceeds in refresh batches. For each batch the host is
// serviced for user input, the input pins of the design are set, and then the
// design is ticked a number of times determined by the refresh granularity.
// Every tick the signal is given to the television, which writes it to the
// frame buffer. At the end of the batch the frame buffer is presented by the
// host.
//
// Runtime options are held in the Options type and are read once per batch
// into a Config value, which is given to the batch.
package simulation
