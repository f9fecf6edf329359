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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and remember the pattern they
// were created with.
//
//	e := curated.Errorf("sdl: %v", err)
//
//	if curated.Is(e, "sdl: %v") {
//		...
//	}
//
// Has() is similar to Is() but checks whether the pattern occurs anywhere in
// the chain of curated errors.
//
// The Error() function normalises the message so that duplicate adjacent
// parts are removed. In other words, wrapping an error with the same prefix
// as the wrapped error is harmless:
//
//	curated.Errorf("wav: %v", curated.Errorf("wav: no samples"))
//
// produces the message "wav: no samples".
package curated
