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

// Package modalflag wraps the flag package from the standard library so that
// a program can have modes, each with its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(). If
// sub-modes have been added with AddSubModes() then the first non-flag
// argument is compared against them (case insensitively). The first sub-mode
// in the list is the default. After Parse() the selected mode is available with
// Mode(), and NewMode() prepares for the flags of that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		...
//	}
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		...
//	}
//
// Help is printed to Output when the -help flag is given and Parse() returns
// ParseHelp.
package modalflag
