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

// Package digest is used to create cryptographic hashes of the output of the
// simulation. The digests are chained so that the final value depends on every
// frame or every tone sample seen. This makes them useful for checking that
// changes to the simulation don't change its output.
package digest

// Digest implementations compute a cryptographic hash of simulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
